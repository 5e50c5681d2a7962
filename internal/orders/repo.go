package orders

import (
	"context"

	"github.com/WillBladon-Whittam/Parana-Database/pkg/currency"
	"gorm.io/gorm"
)

// historyRow is one ordered product joined with its labels, newest order
// first.
type historyRow struct {
	OrderID     int64          `gorm:"column:order_id"`
	Reference   string         `gorm:"column:order_reference"`
	OrderDate   string         `gorm:"column:order_date"`
	OrderStatus string         `gorm:"column:order_status"`
	ProductID   int64          `gorm:"column:product_id"`
	Description string         `gorm:"column:product_description"`
	SellerID    int64          `gorm:"column:seller_id"`
	SellerName  string         `gorm:"column:seller_name"`
	Quantity    int            `gorm:"column:quantity"`
	UnitPrice   currency.Pence `gorm:"column:price_pence"`
	LineStatus  string         `gorm:"column:ordered_product_status"`
}

// Repository exposes read access to a shopper's order history.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an orders repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListByShopper returns every ordered product for the shopper, most recent
// order first. Line order within an order follows product description.
func (r *Repository) ListByShopper(ctx context.Context, shopperID int64) ([]historyRow, error) {
	var rows []historyRow
	err := r.db.WithContext(ctx).
		Table("shopper_orders AS so").
		Select(`so.order_id, so.order_reference, so.order_date, so.order_status,
			op.product_id, p.product_description, op.seller_id, s.seller_name,
			op.quantity, op.price_pence, op.ordered_product_status`).
		Joins("JOIN ordered_products op ON op.order_id = so.order_id").
		Joins("JOIN products p ON p.product_id = op.product_id").
		Joins("JOIN sellers s ON s.seller_id = op.seller_id").
		Where("so.shopper_id = ?", shopperID).
		Order("so.order_date DESC, so.order_id DESC, p.product_description ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
