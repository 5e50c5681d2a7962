package models

// Product belongs to exactly one category; prices live on seller offers.
type Product struct {
	ID          int64  `gorm:"column:product_id;primaryKey;autoIncrement"`
	Description string `gorm:"column:product_description;not null"`
	CategoryID  int64  `gorm:"column:category_id;not null"`
}

func (Product) TableName() string { return "products" }
