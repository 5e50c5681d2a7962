package checkout

import (
	"context"

	"github.com/WillBladon-Whittam/Parana-Database/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes the persistence operations checkout needs. Every
// method is expected to run inside the checkout transaction.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a checkout repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return &Repository{db: tx}
}

// ListBasketLines returns the basket's raw lines.
func (r *Repository) ListBasketLines(ctx context.Context, basketID int64) ([]models.BasketLine, error) {
	var lines []models.BasketLine
	err := r.db.WithContext(ctx).
		Where("basket_id = ?", basketID).
		Order("product_id ASC").
		Find(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// CreateOrder inserts the order header, capturing the generated identifier.
func (r *Repository) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

// CreateOrderLines inserts the order's lines in one statement.
func (r *Repository) CreateOrderLines(ctx context.Context, lines []models.OrderLine) error {
	if len(lines) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&lines).Error
}

// DeleteBasketLines removes every line belonging to the basket.
func (r *Repository) DeleteBasketLines(ctx context.Context, basketID int64) error {
	return r.db.WithContext(ctx).
		Where("basket_id = ?", basketID).
		Delete(&models.BasketLine{}).Error
}

// DeleteBasket removes the basket row itself.
func (r *Repository) DeleteBasket(ctx context.Context, basketID int64) error {
	return r.db.WithContext(ctx).
		Where("basket_id = ?", basketID).
		Delete(&models.Basket{}).Error
}
