package basket

import "github.com/WillBladon-Whittam/Parana-Database/pkg/currency"

// Line is one basket entry with its computed total.
type Line struct {
	ProductID   int64
	SellerID    int64
	Description string
	SellerName  string
	Quantity    int
	UnitPrice   currency.Pence
	LineTotal   currency.Pence
}

// View is a basket with per-line and grand totals computed.
type View struct {
	BasketID   int64
	Lines      []Line
	GrandTotal currency.Pence
}

// Empty reports whether the basket holds no lines.
func (v *View) Empty() bool {
	return v == nil || len(v.Lines) == 0
}

// AddItemInput carries the data required to add a line to a basket.
type AddItemInput struct {
	BasketID  int64 `validate:"required"`
	ProductID int64 `validate:"required"`
	SellerID  int64 `validate:"required"`
	Quantity  int   `validate:"gt=0"`
}

// ChangeQuantityInput carries the data required to update a line quantity.
type ChangeQuantityInput struct {
	BasketID    int64 `validate:"required"`
	ProductID   int64 `validate:"required"`
	NewQuantity int   `validate:"gt=0"`
}
