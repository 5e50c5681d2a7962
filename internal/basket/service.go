package basket

import (
	"context"
	"fmt"

	"github.com/WillBladon-Whittam/Parana-Database/pkg/currency"
	"github.com/WillBladon-Whittam/Parana-Database/pkg/db"
	"github.com/WillBladon-Whittam/Parana-Database/pkg/db/models"
	pkgerrors "github.com/WillBladon-Whittam/Parana-Database/pkg/errors"
	"github.com/WillBladon-Whittam/Parana-Database/pkg/validate"
	"gorm.io/gorm"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service owns the basket lifecycle and line mutations. Every mutation runs
// inside a transaction so no action leaves a half-mutated basket behind.
type Service struct {
	repo *Repository
	tx   txRunner
}

// NewService builds the basket service.
func NewService(repo *Repository, tx txRunner) (*Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("basket repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("tx runner required")
	}
	return &Service{repo: repo, tx: tx}, nil
}

// CurrentForDay resolves the shopper's basket for the given day, creating
// one lazily when none exists yet.
func (s *Service) CurrentForDay(ctx context.Context, shopperID int64, day string) (*models.Basket, error) {
	var current *models.Basket
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		found, err := repo.FindByShopperAndDate(ctx, shopperID, day)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading basket")
		}
		if found != nil {
			current = found
			return nil
		}

		created, err := repo.Create(ctx, &models.Basket{ShopperID: shopperID, CreatedDate: day})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating basket")
		}
		current = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return current, nil
}

// AddItem snapshots the offer price for (product, seller) and inserts a
// basket line. A product already in the basket, via any seller, is a
// duplicate: the caller should change the quantity or remove it instead.
func (s *Service) AddItem(ctx context.Context, in AddItemInput) error {
	if err := validate.Struct(in); err != nil {
		return err
	}

	return s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		offer, err := repo.FindOffer(ctx, in.ProductID, in.SellerID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading offer")
		}
		if offer == nil {
			return pkgerrors.New(pkgerrors.CodeNotFound, "that seller does not offer this product")
		}

		line := &models.BasketLine{
			BasketID:  in.BasketID,
			ProductID: in.ProductID,
			SellerID:  in.SellerID,
			Quantity:  in.Quantity,
			Price:     offer.Price,
		}
		if err := repo.InsertLine(ctx, line); err != nil {
			if db.IsUniqueViolation(err) {
				return pkgerrors.Wrap(pkgerrors.CodeDuplicateLine, err,
					"this product is already in your basket - change its quantity or remove it instead")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "adding basket line")
		}
		return nil
	})
}

// View returns the basket's lines with computed per-line totals and the
// grand total. An empty basket is reported through View.Empty.
func (s *Service) View(ctx context.Context, basketID int64) (*View, error) {
	rows, err := s.repo.ListLines(ctx, basketID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing basket lines")
	}

	view := &View{BasketID: basketID}
	lineTotals := make([]currency.Pence, 0, len(rows))
	for _, row := range rows {
		line := Line{
			ProductID:   row.ProductID,
			SellerID:    row.SellerID,
			Description: row.Description,
			SellerName:  row.SellerName,
			Quantity:    row.Quantity,
			UnitPrice:   row.UnitPrice,
			LineTotal:   row.UnitPrice.Mul(row.Quantity),
		}
		view.Lines = append(view.Lines, line)
		lineTotals = append(lineTotals, line.LineTotal)
	}
	view.GrandTotal = currency.Sum(lineTotals...)
	return view, nil
}

// ChangeQuantity updates an existing line's quantity. A non-positive
// quantity is rejected before anything is written.
func (s *Service) ChangeQuantity(ctx context.Context, in ChangeQuantityInput) error {
	if err := validate.Struct(in); err != nil {
		return err
	}

	return s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		affected, err := s.repo.WithTx(tx).UpdateQuantity(ctx, in.BasketID, in.ProductID, in.NewQuantity)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "updating quantity")
		}
		if affected == 0 {
			return pkgerrors.New(pkgerrors.CodeNotFound, "that product is not in your basket")
		}
		return nil
	})
}

// RemoveItem deletes one line. Confirmation is the caller's concern; by the
// time this runs the removal is decided.
func (s *Service) RemoveItem(ctx context.Context, basketID, productID int64) error {
	return s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		affected, err := s.repo.WithTx(tx).DeleteLine(ctx, basketID, productID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "removing basket line")
		}
		if affected == 0 {
			return pkgerrors.New(pkgerrors.CodeNotFound, "that product is not in your basket")
		}
		return nil
	})
}
