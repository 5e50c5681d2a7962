package models

// Basket is a shopper's in-progress selection, scoped to one local calendar
// day: a unique index on (shopper_id, basket_created_date) enforces at most
// one basket per shopper per day.
type Basket struct {
	ID          int64  `gorm:"column:basket_id;primaryKey;autoIncrement"`
	ShopperID   int64  `gorm:"column:shopper_id;not null"`
	CreatedDate string `gorm:"column:basket_created_date;not null"`
}

func (Basket) TableName() string { return "shopper_baskets" }
