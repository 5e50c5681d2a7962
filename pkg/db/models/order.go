package models

import (
	"github.com/WillBladon-Whittam/Parana-Database/pkg/enums"
	"github.com/google/uuid"
)

// Order is the immutable header written at checkout. Orders and their
// lines are append-only history.
type Order struct {
	ID        int64             `gorm:"column:order_id;primaryKey;autoIncrement"`
	Reference uuid.UUID         `gorm:"column:order_reference;not null"`
	ShopperID int64             `gorm:"column:shopper_id;not null"`
	OrderDate string            `gorm:"column:order_date;not null"`
	Status    enums.OrderStatus `gorm:"column:order_status;not null"`
	Lines     []OrderLine       `gorm:"foreignKey:OrderID"`
}

func (Order) TableName() string { return "shopper_orders" }
