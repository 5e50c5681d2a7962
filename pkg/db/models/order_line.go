package models

import (
	"github.com/WillBladon-Whittam/Parana-Database/pkg/currency"
	"github.com/WillBladon-Whittam/Parana-Database/pkg/enums"
)

// OrderLine captures the snapshot of one basket line at checkout: product,
// seller, quantity and the price captured when the item was added.
type OrderLine struct {
	OrderID   int64            `gorm:"column:order_id;primaryKey"`
	ProductID int64            `gorm:"column:product_id;primaryKey"`
	SellerID  int64            `gorm:"column:seller_id;primaryKey"`
	Quantity  int              `gorm:"column:quantity;not null"`
	Price     currency.Pence   `gorm:"column:price_pence;not null"`
	Status    enums.LineStatus `gorm:"column:ordered_product_status;not null"`
}

func (OrderLine) TableName() string { return "ordered_products" }
