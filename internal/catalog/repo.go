// Package catalog is the read-only browse path: categories, products in a
// category, and seller offers for a product. Every listing returns
// identifiers alongside labels so callers map a displayed index straight
// back to an ID and never resolve a selection by its text.
package catalog

import (
	"context"

	"github.com/WillBladon-Whittam/Parana-Database/internal/repo"
	"github.com/WillBladon-Whittam/Parana-Database/pkg/currency"
	pkgerrors "github.com/WillBladon-Whittam/Parana-Database/pkg/errors"
	"gorm.io/gorm"
)

// Option is one selectable row in a displayed listing.
type Option struct {
	ID    int64  `gorm:"column:id"`
	Label string `gorm:"column:label"`
}

// Offer is one seller's priced offer for a product.
type Offer struct {
	SellerID   int64          `gorm:"column:seller_id"`
	SellerName string         `gorm:"column:seller_name"`
	Price      currency.Pence `gorm:"column:price_pence"`
}

// Repository serves catalog listings. All queries are read-only.
type Repository struct {
	repo.Base
}

// NewRepository constructs a catalog repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// ListCategories returns all categories ordered by description.
func (r *Repository) ListCategories(ctx context.Context) ([]Option, error) {
	var rows []Option
	err := r.DB(ctx).
		Table("categories").
		Select("category_id AS id, category_description AS label").
		Order("category_description ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing categories")
	}
	return rows, nil
}

// ListProducts returns the products of a category ordered by description.
func (r *Repository) ListProducts(ctx context.Context, categoryID int64) ([]Option, error) {
	var rows []Option
	err := r.DB(ctx).
		Table("products").
		Select("product_id AS id, product_description AS label").
		Where("category_id = ?", categoryID).
		Order("product_description ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing products")
	}
	return rows, nil
}

// ListOffers returns the seller offers for a product ordered by seller name.
func (r *Repository) ListOffers(ctx context.Context, productID int64) ([]Offer, error) {
	var rows []Offer
	err := r.DB(ctx).
		Table("product_sellers AS ps").
		Select("ps.seller_id, s.seller_name, ps.price_pence").
		Joins("JOIN sellers s ON s.seller_id = ps.seller_id").
		Where("ps.product_id = ?", productID).
		Order("s.seller_name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing offers")
	}
	return rows, nil
}
