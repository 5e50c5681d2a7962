package shoppers

import (
	"context"
	"errors"
	"fmt"

	"github.com/WillBladon-Whittam/Parana-Database/internal/repo"
	"github.com/WillBladon-Whittam/Parana-Database/pkg/db/models"
	pkgerrors "github.com/WillBladon-Whittam/Parana-Database/pkg/errors"
	"gorm.io/gorm"
)

// Repository reads shopper reference data. It is the session gate: an
// unknown ID is a fatal error, not a recoverable one.
type Repository struct {
	repo.Base
}

// NewRepository constructs a shopper repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// FindByID returns the shopper for the given ID.
func (r *Repository) FindByID(ctx context.Context, shopperID int64) (*models.Shopper, error) {
	var shopper models.Shopper
	err := r.DB(ctx).
		Where("shopper_id = ?", shopperID).
		First(&shopper).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnknownShopper,
				fmt.Sprintf("shopper ID %d is not a valid shopper ID", shopperID))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading shopper")
	}
	return &shopper, nil
}
