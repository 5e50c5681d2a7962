package models

import "github.com/WillBladon-Whittam/Parana-Database/pkg/currency"

// BasketLine is one product entry within a basket. The composite primary
// key (basket_id, product_id) allows at most one line per product
// regardless of seller, and Price snapshots the offer price at add time.
type BasketLine struct {
	BasketID  int64          `gorm:"column:basket_id;primaryKey"`
	ProductID int64          `gorm:"column:product_id;primaryKey"`
	SellerID  int64          `gorm:"column:seller_id;not null"`
	Quantity  int            `gorm:"column:quantity;not null"`
	Price     currency.Pence `gorm:"column:price_pence;not null"`
}

func (BasketLine) TableName() string { return "basket_contents" }
