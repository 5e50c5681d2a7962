package models

import "github.com/WillBladon-Whittam/Parana-Database/pkg/currency"

// SellerOffer is one seller's price for a product. A product may carry
// offers from several sellers.
type SellerOffer struct {
	ProductID int64          `gorm:"column:product_id;primaryKey"`
	SellerID  int64          `gorm:"column:seller_id;primaryKey"`
	Price     currency.Pence `gorm:"column:price_pence;not null"`
}

func (SellerOffer) TableName() string { return "product_sellers" }
