package orders

import "github.com/WillBladon-Whittam/Parana-Database/pkg/currency"

// Line is one product within a past order.
type Line struct {
	ProductID   int64
	Description string
	SellerID    int64
	SellerName  string
	Quantity    int
	UnitPrice   currency.Pence
	Status      string
}

// Order is one past order with its lines and total.
type Order struct {
	ID        int64
	Reference string
	Date      string
	Status    string
	Lines     []Line
	Total     currency.Pence
}

// History is a shopper's orders, newest first.
type History struct {
	Orders []Order
}

// Empty reports whether the shopper has placed no orders.
func (h *History) Empty() bool {
	return h == nil || len(h.Orders) == 0
}

// groupRows folds the flat join result into per-order groups, preserving
// the query's newest-first order.
func groupRows(rows []historyRow) *History {
	history := &History{}
	for _, row := range rows {
		if n := len(history.Orders); n == 0 || history.Orders[n-1].ID != row.OrderID {
			history.Orders = append(history.Orders, Order{
				ID:        row.OrderID,
				Reference: row.Reference,
				Date:      row.OrderDate,
				Status:    row.OrderStatus,
			})
		}
		order := &history.Orders[len(history.Orders)-1]
		order.Lines = append(order.Lines, Line{
			ProductID:   row.ProductID,
			Description: row.Description,
			SellerID:    row.SellerID,
			SellerName:  row.SellerName,
			Quantity:    row.Quantity,
			UnitPrice:   row.UnitPrice,
			Status:      row.LineStatus,
		})
		order.Total += row.UnitPrice.Mul(row.Quantity)
	}
	return history
}
