package checkout

import (
	"context"
	"fmt"

	"github.com/WillBladon-Whittam/Parana-Database/pkg/currency"
	"github.com/WillBladon-Whittam/Parana-Database/pkg/db"
	"github.com/WillBladon-Whittam/Parana-Database/pkg/db/models"
	"github.com/WillBladon-Whittam/Parana-Database/pkg/enums"
	pkgerrors "github.com/WillBladon-Whittam/Parana-Database/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Receipt summarises a completed checkout.
type Receipt struct {
	OrderID    int64
	Reference  uuid.UUID
	LineCount  int
	GrandTotal currency.Pence
}

// Service converts a basket into an immutable order. The conversion is a
// single transaction: insert the order header, insert one order line per
// basket line, delete the basket lines, delete the basket. A failure at any
// step rolls the whole conversion back, leaving the basket untouched.
type Service struct {
	repo *Repository
	tx   txRunner
}

// NewService builds the checkout service.
func NewService(repo *Repository, tx txRunner) (*Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("checkout repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("tx runner required")
	}
	return &Service{repo: repo, tx: tx}, nil
}

// Execute checks out the shopper's basket, dating the order with the given
// day. An empty basket is rejected before anything is written.
func (s *Service) Execute(ctx context.Context, shopperID, basketID int64, day string) (*Receipt, error) {
	var receipt *Receipt
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		basketLines, err := repo.ListBasketLines(ctx, basketID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading basket lines")
		}
		if len(basketLines) == 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "your basket is empty - add some items before checking out")
		}

		order, err := repo.CreateOrder(ctx, &models.Order{
			Reference: uuid.New(),
			ShopperID: shopperID,
			OrderDate: day,
			Status:    enums.OrderStatusPlaced,
		})
		if err != nil {
			return classifyWriteError(err, "creating order")
		}

		orderLines := make([]models.OrderLine, 0, len(basketLines))
		var total currency.Pence
		for _, line := range basketLines {
			orderLines = append(orderLines, models.OrderLine{
				OrderID:   order.ID,
				ProductID: line.ProductID,
				SellerID:  line.SellerID,
				Quantity:  line.Quantity,
				Price:     line.Price,
				Status:    enums.LineStatusPlaced,
			})
			total += line.Price.Mul(line.Quantity)
		}
		if err := repo.CreateOrderLines(ctx, orderLines); err != nil {
			return classifyWriteError(err, "creating order lines")
		}

		if err := repo.DeleteBasketLines(ctx, basketID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clearing basket lines")
		}
		if err := repo.DeleteBasket(ctx, basketID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "removing basket")
		}

		receipt = &Receipt{
			OrderID:    order.ID,
			Reference:  order.Reference,
			LineCount:  len(orderLines),
			GrandTotal: total,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// classifyWriteError distinguishes referential integrity failures, where a
// basket line points at catalog rows that no longer exist, from plain
// persistence trouble.
func classifyWriteError(err error, action string) error {
	if db.IsForeignKeyViolation(err) {
		return pkgerrors.Wrap(pkgerrors.CodeConflict, err,
			"an item in your basket is no longer available - remove it and try again")
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, action)
}
