package orders

import (
	"context"
	"fmt"

	pkgerrors "github.com/WillBladon-Whittam/Parana-Database/pkg/errors"
)

// Service exposes the shopper's immutable order history.
type Service struct {
	repo *Repository
}

// NewService builds the orders service.
func NewService(repo *Repository) (*Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	return &Service{repo: repo}, nil
}

// HistoryFor returns the shopper's orders grouped newest first. A shopper
// with no orders gets an empty history, not an error.
func (s *Service) HistoryFor(ctx context.Context, shopperID int64) (*History, error) {
	rows, err := s.repo.ListByShopper(ctx, shopperID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading order history")
	}
	return groupRows(rows), nil
}
