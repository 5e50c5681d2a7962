package models

// Category groups products for browsing.
type Category struct {
	ID          int64  `gorm:"column:category_id;primaryKey;autoIncrement"`
	Description string `gorm:"column:category_description;not null"`
}

func (Category) TableName() string { return "categories" }
