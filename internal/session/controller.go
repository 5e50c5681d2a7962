package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/WillBladon-Whittam/Parana-Database/internal/basket"
	"github.com/WillBladon-Whittam/Parana-Database/internal/catalog"
	"github.com/WillBladon-Whittam/Parana-Database/internal/checkout"
	"github.com/WillBladon-Whittam/Parana-Database/internal/orders"
	"github.com/WillBladon-Whittam/Parana-Database/pkg/db/models"
	pkgerrors "github.com/WillBladon-Whittam/Parana-Database/pkg/errors"
	"github.com/WillBladon-Whittam/Parana-Database/pkg/logger"
)

// Consumer-side views of the services the session drives.
type (
	ShopperDirectory interface {
		FindByID(ctx context.Context, shopperID int64) (*models.Shopper, error)
	}

	Catalog interface {
		ListCategories(ctx context.Context) ([]catalog.Option, error)
		ListProducts(ctx context.Context, categoryID int64) ([]catalog.Option, error)
		ListOffers(ctx context.Context, productID int64) ([]catalog.Offer, error)
	}

	BasketService interface {
		CurrentForDay(ctx context.Context, shopperID int64, day string) (*models.Basket, error)
		AddItem(ctx context.Context, in basket.AddItemInput) error
		View(ctx context.Context, basketID int64) (*basket.View, error)
		ChangeQuantity(ctx context.Context, in basket.ChangeQuantityInput) error
		RemoveItem(ctx context.Context, basketID, productID int64) error
	}

	CheckoutService interface {
		Execute(ctx context.Context, shopperID, basketID int64, day string) (*checkout.Receipt, error)
	}

	OrderHistory interface {
		HistoryFor(ctx context.Context, shopperID int64) (*orders.History, error)
	}
)

const (
	menuHistory = iota + 1
	menuAddItem
	menuViewBasket
	menuChangeQuantity
	menuRemoveItem
	menuCheckout
	menuExit
)

// Controller runs the interactive shopping session: one shopper, one menu
// loop, one basket per calendar day. Only a fatal error or Exit ends the
// loop; everything else is reported and the menu comes back.
type Controller struct {
	shoppers ShopperDirectory
	catalog  Catalog
	baskets  BasketService
	checkout CheckoutService
	orders   OrderHistory
	logg     *logger.Logger
	now      func() time.Time
}

// NewController wires the session against its services.
func NewController(
	shoppers ShopperDirectory,
	cat Catalog,
	baskets BasketService,
	chk CheckoutService,
	history OrderHistory,
	logg *logger.Logger,
) (*Controller, error) {
	if shoppers == nil || cat == nil || baskets == nil || chk == nil || history == nil {
		return nil, fmt.Errorf("session controller requires all services")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &Controller{
		shoppers: shoppers,
		catalog:  cat,
		baskets:  baskets,
		checkout: chk,
		orders:   history,
		logg:     logg,
		now:      time.Now,
	}, nil
}

// WithClock overrides the session clock. Used by tests.
func (c *Controller) WithClock(now func() time.Time) *Controller {
	if now != nil {
		c.now = now
	}
	return c
}

func (c *Controller) today() string {
	return c.now().Format("2006-01-02")
}

// RunInteractive asks for the shopper ID first, then drives the session.
func (c *Controller) RunInteractive(ctx context.Context, in io.Reader, out io.Writer) error {
	prompt := NewPrompter(in, out)
	shopperID, err := prompt.Int("Enter your shopper ID", 1, math.MaxInt32)
	if errors.Is(err, ErrInputClosed) {
		return nil
	}
	if err != nil {
		return err
	}
	return c.run(ctx, shopperID, prompt, out)
}

// Run drives the session for the given shopper ID until Exit, end of input,
// or a fatal error.
func (c *Controller) Run(ctx context.Context, shopperID int64, in io.Reader, out io.Writer) error {
	return c.run(ctx, shopperID, NewPrompter(in, out), out)
}

func (c *Controller) run(ctx context.Context, shopperID int64, prompt *Prompter, out io.Writer) error {
	ctx = c.logg.WithShopperID(ctx, shopperID)

	shopper, err := c.shoppers.FindByID(ctx, shopperID)
	if err != nil {
		c.report(ctx, out, err)
		return err
	}
	c.logg.Info(ctx, "session started")
	fmt.Fprintf(out, "Welcome to Paraná, %s %s!\n", shopper.FirstName, shopper.Surname)

	for {
		fmt.Fprint(out, `
PARANÁ - SHOPPER MAIN MENU
1. Display your order history
2. Add an item to your basket
3. View your basket
4. Change the quantity of an item in your basket
5. Remove an item from your basket
6. Checkout
7. Exit
`)
		choice, err := prompt.Int("Enter an option", menuHistory, menuExit)
		if errors.Is(err, ErrInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}

		var actionErr error
		switch choice {
		case menuHistory:
			actionErr = c.showHistory(ctx, shopperID, out)
		case menuAddItem:
			actionErr = c.addItem(ctx, shopperID, prompt, out)
		case menuViewBasket:
			actionErr = c.viewBasket(ctx, shopperID, out)
		case menuChangeQuantity:
			actionErr = c.changeQuantity(ctx, shopperID, prompt, out)
		case menuRemoveItem:
			actionErr = c.removeItem(ctx, shopperID, prompt, out)
		case menuCheckout:
			actionErr = c.checkoutBasket(ctx, shopperID, prompt, out)
		case menuExit:
			c.logg.Info(ctx, "session ended")
			fmt.Fprintln(out, "Thank you for shopping with Paraná. Goodbye!")
			return nil
		}

		if errors.Is(actionErr, ErrInputClosed) {
			return nil
		}
		if actionErr != nil {
			c.report(ctx, out, actionErr)
			if pkgerrors.IsFatal(actionErr) {
				return actionErr
			}
		}
	}
}

// report prints the shopper-facing message and logs the underlying cause
// with the driver-level dump attached.
func (c *Controller) report(ctx context.Context, out io.Writer, err error) {
	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}
	meta := pkgerrors.MetadataFor(typed.Code())

	dump := pkgerrors.Dump(err)
	ctx = c.logg.WithFields(ctx, map[string]any{
		"error_code":           dump.Code,
		"error_chain":          dump.Chain,
		"pg_code":              dump.PGCode,
		"pg_message":           dump.PGMessage,
		"pg_constraint":        dump.PGConstraint,
		"sqlite_code":          dump.SQLiteCode,
		"sqlite_extended_code": dump.SQLiteExtendedCode,
		"sqlite_message":       dump.SQLiteMessage,
	})
	c.logg.Error(ctx, "action failed", err)

	msg := typed.Message()
	if msg == "" {
		msg = meta.PublicMessage
	}
	fmt.Fprintln(out, msg)

	if meta.DetailsAllowed {
		if details, ok := typed.Details().(map[string]string); ok {
			fields := make([]string, 0, len(details))
			for field := range details {
				fields = append(fields, field)
			}
			sort.Strings(fields)
			for _, field := range fields {
				fmt.Fprintf(out, " - %s %s\n", field, details[field])
			}
		}
	}
	if meta.Retryable {
		fmt.Fprintln(out, "Please try again.")
	}
}

// currentBasket resolves today's basket lazily, so a shopper who only
// browses never creates one row of basket state.
func (c *Controller) currentBasket(ctx context.Context, shopperID int64) (*models.Basket, error) {
	return c.baskets.CurrentForDay(ctx, shopperID, c.today())
}

func (c *Controller) showHistory(ctx context.Context, shopperID int64, out io.Writer) error {
	history, err := c.orders.HistoryFor(ctx, shopperID)
	if err != nil {
		return err
	}
	renderHistory(out, history)
	return nil
}

func (c *Controller) addItem(ctx context.Context, shopperID int64, prompt *Prompter, out io.Writer) error {
	categories, err := c.catalog.ListCategories(ctx)
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		fmt.Fprintln(out, "There are no categories to browse.")
		return nil
	}
	category, err := chooseOption(prompt, out, "Product categories", categories)
	if err != nil {
		return err
	}

	products, err := c.catalog.ListProducts(ctx, category.ID)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		fmt.Fprintln(out, "There are no products in this category.")
		return nil
	}
	product, err := chooseOption(prompt, out, "Products", products)
	if err != nil {
		return err
	}

	offers, err := c.catalog.ListOffers(ctx, product.ID)
	if err != nil {
		return err
	}
	if len(offers) == 0 {
		fmt.Fprintln(out, "No seller currently offers this product.")
		return nil
	}
	offer, err := chooseOffer(prompt, out, offers)
	if err != nil {
		return err
	}

	quantity, err := prompt.Int("Enter a quantity", 1, 999)
	if err != nil {
		return err
	}

	current, err := c.currentBasket(ctx, shopperID)
	if err != nil {
		return err
	}
	ctx = c.logg.WithBasketID(ctx, current.ID)

	if err := c.baskets.AddItem(ctx, basket.AddItemInput{
		BasketID:  current.ID,
		ProductID: product.ID,
		SellerID:  offer.SellerID,
		Quantity:  int(quantity),
	}); err != nil {
		return err
	}
	c.logg.Info(ctx, "item added to basket")
	fmt.Fprintln(out, "Item added to your basket.")
	return nil
}

func (c *Controller) viewBasket(ctx context.Context, shopperID int64, out io.Writer) error {
	current, err := c.currentBasket(ctx, shopperID)
	if err != nil {
		return err
	}
	view, err := c.baskets.View(ctx, current.ID)
	if err != nil {
		return err
	}
	renderBasket(out, view)
	return nil
}

// basketLineForAction resolves which line an action targets: an empty
// basket short-circuits, a single line is picked automatically, and a
// multi-line basket is chosen from a numbered listing.
func (c *Controller) basketLineForAction(ctx context.Context, shopperID int64, prompt *Prompter, out io.Writer) (*models.Basket, *basket.Line, error) {
	current, err := c.currentBasket(ctx, shopperID)
	if err != nil {
		return nil, nil, err
	}
	view, err := c.baskets.View(ctx, current.ID)
	if err != nil {
		return nil, nil, err
	}
	if view.Empty() {
		fmt.Fprintln(out, "Your basket is empty.")
		return current, nil, nil
	}
	if len(view.Lines) == 1 {
		return current, &view.Lines[0], nil
	}

	renderBasket(out, view)
	index, err := prompt.Int("Enter the basket item number", 1, int64(len(view.Lines)))
	if err != nil {
		return nil, nil, err
	}
	return current, &view.Lines[index-1], nil
}

func (c *Controller) changeQuantity(ctx context.Context, shopperID int64, prompt *Prompter, out io.Writer) error {
	current, line, err := c.basketLineForAction(ctx, shopperID, prompt, out)
	if err != nil || line == nil {
		return err
	}

	quantity, err := prompt.Int(fmt.Sprintf("Enter a new quantity for %s", line.Description), 1, 999)
	if err != nil {
		return err
	}
	if err := c.baskets.ChangeQuantity(ctx, basket.ChangeQuantityInput{
		BasketID:    current.ID,
		ProductID:   line.ProductID,
		NewQuantity: int(quantity),
	}); err != nil {
		return err
	}
	fmt.Fprintln(out, "Quantity updated.")
	return nil
}

func (c *Controller) removeItem(ctx context.Context, shopperID int64, prompt *Prompter, out io.Writer) error {
	current, line, err := c.basketLineForAction(ctx, shopperID, prompt, out)
	if err != nil || line == nil {
		return err
	}

	confirmed, err := prompt.Confirm(fmt.Sprintf("Remove %s from your basket?", line.Description))
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Fprintln(out, "Item not removed.")
		return nil
	}
	if err := c.baskets.RemoveItem(ctx, current.ID, line.ProductID); err != nil {
		return err
	}
	fmt.Fprintln(out, "Item removed from your basket.")
	return nil
}

func (c *Controller) checkoutBasket(ctx context.Context, shopperID int64, prompt *Prompter, out io.Writer) error {
	current, err := c.currentBasket(ctx, shopperID)
	if err != nil {
		return err
	}
	view, err := c.baskets.View(ctx, current.ID)
	if err != nil {
		return err
	}
	if view.Empty() {
		fmt.Fprintln(out, "Your basket is empty.")
		return nil
	}

	renderBasket(out, view)
	confirmed, err := prompt.Confirm("Place this order?")
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Fprintln(out, "Checkout cancelled.")
		return nil
	}

	receipt, err := c.checkout.Execute(ctx, shopperID, current.ID, c.today())
	if err != nil {
		return err
	}
	ctx = c.logg.WithOrderID(ctx, receipt.OrderID)
	c.logg.Info(ctx, "order placed")
	fmt.Fprintf(out, "Checkout complete. Order %d (ref %s) placed: %d item(s), %s.\n",
		receipt.OrderID, receipt.Reference, receipt.LineCount, receipt.GrandTotal)
	return nil
}

func chooseOption(prompt *Prompter, out io.Writer, title string, opts []catalog.Option) (catalog.Option, error) {
	fmt.Fprintf(out, "\n%s:\n", title)
	for i, opt := range opts {
		fmt.Fprintf(out, "%d. %s\n", i+1, opt.Label)
	}
	index, err := prompt.Int("Enter an option", 1, int64(len(opts)))
	if err != nil {
		return catalog.Option{}, err
	}
	return opts[index-1], nil
}

func chooseOffer(prompt *Prompter, out io.Writer, offers []catalog.Offer) (catalog.Offer, error) {
	fmt.Fprintln(out, "\nSellers offering this product:")
	for i, offer := range offers {
		fmt.Fprintf(out, "%d. %s (%s)\n", i+1, offer.SellerName, offer.Price)
	}
	index, err := prompt.Int("Enter an option", 1, int64(len(offers)))
	if err != nil {
		return catalog.Offer{}, err
	}
	return offers[index-1], nil
}

func renderBasket(out io.Writer, view *basket.View) {
	if view.Empty() {
		fmt.Fprintln(out, "Your basket is empty.")
		return
	}
	fmt.Fprintln(out, "\nYour basket:")
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tProduct\tSeller\tQty\tPrice\tTotal")
	for i, line := range view.Lines {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%s\n",
			i+1, line.Description, line.SellerName, line.Quantity, line.UnitPrice, line.LineTotal)
	}
	fmt.Fprintf(w, "\t\t\t\tTotal\t%s\n", view.GrandTotal)
	w.Flush()
}

func renderHistory(out io.Writer, history *orders.History) {
	if history.Empty() {
		fmt.Fprintln(out, "No orders placed by this customer.")
		return
	}
	for _, order := range history.Orders {
		fmt.Fprintf(out, "\nOrder %d placed %s (%s) - ref %s\n", order.ID, order.Date, order.Status, order.Reference)
		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "Product\tSeller\tQty\tPrice\tStatus")
		for _, line := range order.Lines {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
				line.Description, line.SellerName, line.Quantity, line.UnitPrice, line.Status)
		}
		fmt.Fprintf(w, "\t\tTotal\t%s\t\n", order.Total)
		w.Flush()
	}
}
