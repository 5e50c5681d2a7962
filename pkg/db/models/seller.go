package models

// Seller is a merchant offering products through the catalog.
type Seller struct {
	ID   int64  `gorm:"column:seller_id;primaryKey;autoIncrement"`
	Name string `gorm:"column:seller_name;not null"`
}

func (Seller) TableName() string { return "sellers" }
