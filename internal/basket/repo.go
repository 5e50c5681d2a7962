package basket

import (
	"context"
	"errors"

	"github.com/WillBladon-Whittam/Parana-Database/pkg/currency"
	"github.com/WillBladon-Whittam/Parana-Database/pkg/db/models"
	"gorm.io/gorm"
)

// lineRow is the joined shape returned by ListLines.
type lineRow struct {
	ProductID   int64          `gorm:"column:product_id"`
	SellerID    int64          `gorm:"column:seller_id"`
	Description string         `gorm:"column:product_description"`
	SellerName  string         `gorm:"column:seller_name"`
	Quantity    int            `gorm:"column:quantity"`
	UnitPrice   currency.Pence `gorm:"column:price_pence"`
}

// Repository exposes persistence operations for basket data.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a basket repository bound to the provided DB.
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

// FindByShopperAndDate returns the shopper's basket for the given day, or
// nil when none exists.
func (r *Repository) FindByShopperAndDate(ctx context.Context, shopperID int64, day string) (*models.Basket, error) {
	var basket models.Basket
	err := r.db.WithContext(ctx).
		Where("shopper_id = ? AND basket_created_date = ?", shopperID, day).
		First(&basket).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &basket, nil
}

// Create inserts a new basket, capturing the generated identifier.
func (r *Repository) Create(ctx context.Context, basket *models.Basket) (*models.Basket, error) {
	if err := r.db.WithContext(ctx).Create(basket).Error; err != nil {
		return nil, err
	}
	return basket, nil
}

// FindOffer returns the seller offer for (product, seller), or nil when the
// seller does not offer the product.
func (r *Repository) FindOffer(ctx context.Context, productID, sellerID int64) (*models.SellerOffer, error) {
	var offer models.SellerOffer
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND seller_id = ?", productID, sellerID).
		First(&offer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &offer, nil
}

// InsertLine adds a line to a basket. Duplicate products surface as the
// composite primary key violation.
func (r *Repository) InsertLine(ctx context.Context, line *models.BasketLine) error {
	return r.db.WithContext(ctx).Create(line).Error
}

// ListLines returns the basket's lines with product and seller labels,
// ordered by product description.
func (r *Repository) ListLines(ctx context.Context, basketID int64) ([]lineRow, error) {
	var rows []lineRow
	err := r.db.WithContext(ctx).
		Table("basket_contents AS bc").
		Select("bc.product_id, bc.seller_id, bc.quantity, bc.price_pence, p.product_description, s.seller_name").
		Joins("JOIN products p ON p.product_id = bc.product_id").
		Joins("JOIN sellers s ON s.seller_id = bc.seller_id").
		Where("bc.basket_id = ?", basketID).
		Order("p.product_description ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateQuantity sets the quantity of one line, reporting how many rows
// matched.
func (r *Repository) UpdateQuantity(ctx context.Context, basketID, productID int64, quantity int) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.BasketLine{}).
		Where("basket_id = ? AND product_id = ?", basketID, productID).
		Update("quantity", quantity)
	return result.RowsAffected, result.Error
}

// DeleteLine removes one line, reporting how many rows matched.
func (r *Repository) DeleteLine(ctx context.Context, basketID, productID int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("basket_id = ? AND product_id = ?", basketID, productID).
		Delete(&models.BasketLine{})
	return result.RowsAffected, result.Error
}
