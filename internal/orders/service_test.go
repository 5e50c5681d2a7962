package orders

import (
	"context"
	"fmt"
	"testing"

	"github.com/WillBladon-Whittam/Parana-Database/pkg/currency"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	schema := []string{
		`CREATE TABLE IF NOT EXISTS products (
  product_id INTEGER PRIMARY KEY,
  product_description TEXT NOT NULL,
  category_id INTEGER NOT NULL
);`,
		`CREATE TABLE IF NOT EXISTS sellers (
  seller_id INTEGER PRIMARY KEY,
  seller_name TEXT NOT NULL
);`,
		`CREATE TABLE IF NOT EXISTS shopper_orders (
  order_id INTEGER PRIMARY KEY AUTOINCREMENT,
  order_reference TEXT NOT NULL,
  shopper_id INTEGER NOT NULL,
  order_date TEXT NOT NULL,
  order_status TEXT NOT NULL
);`,
		`CREATE TABLE IF NOT EXISTS ordered_products (
  order_id INTEGER NOT NULL,
  product_id INTEGER NOT NULL,
  seller_id INTEGER NOT NULL,
  quantity INTEGER NOT NULL,
  price_pence INTEGER NOT NULL,
  ordered_product_status TEXT NOT NULL,
  PRIMARY KEY (order_id, product_id, seller_id)
);`,
	}
	for _, ddl := range schema {
		require.NoError(t, db.Exec(ddl).Error)
	}

	seed := []string{
		`INSERT INTO products (product_id, product_description, category_id) VALUES
  (101, 'Apples (1kg)', 1), (102, 'Sourdough Loaf', 1), (103, 'Oat Milk (1L)', 1);`,
		`INSERT INTO sellers (seller_id, seller_name) VALUES (1, 'Amazonia'), (2, 'Brightside Retail');`,
		`INSERT INTO shopper_orders (order_id, order_reference, shopper_id, order_date, order_status) VALUES
  (1, '5a0c2f3e-0000-0000-0000-000000000001', 10023, '2026-08-01', 'Fulfilled'),
  (2, '5a0c2f3e-0000-0000-0000-000000000002', 10023, '2026-08-29', 'Placed'),
  (3, '5a0c2f3e-0000-0000-0000-000000000003', 10024, '2026-08-15', 'Placed');`,
		`INSERT INTO ordered_products (order_id, product_id, seller_id, quantity, price_pence, ordered_product_status) VALUES
  (1, 101, 1, 2, 100, 'Fulfilled'),
  (2, 102, 2, 1, 250, 'Placed'),
  (2, 103, 1, 3, 180, 'Placed'),
  (3, 101, 2, 1, 110, 'Placed');`,
	}
	for _, stmt := range seed {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(NewRepository(setupOrdersTestDB(t)))
	require.NoError(t, err)
	return svc
}

func TestHistoryForGroupsOrdersNewestFirst(t *testing.T) {
	svc := newTestService(t)

	history, err := svc.HistoryFor(context.Background(), 10023)
	require.NoError(t, err)
	require.NotNil(t, history)
	require.Len(t, history.Orders, 2)
	assert.False(t, history.Empty())

	recent := history.Orders[0]
	assert.Equal(t, int64(2), recent.ID)
	assert.Equal(t, "2026-08-29", recent.Date)
	assert.Equal(t, "Placed", recent.Status)
	require.Len(t, recent.Lines, 2)
	// lines ordered by product description: Oat Milk before Sourdough
	assert.Equal(t, "Oat Milk (1L)", recent.Lines[0].Description)
	assert.Equal(t, "Sourdough Loaf", recent.Lines[1].Description)
	assert.Equal(t, currency.Pence(3*180+250), recent.Total)

	older := history.Orders[1]
	assert.Equal(t, int64(1), older.ID)
	require.Len(t, older.Lines, 1)
	assert.Equal(t, "Amazonia", older.Lines[0].SellerName)
	assert.Equal(t, currency.Pence(200), older.Total)
}

func TestHistoryForExcludesOtherShoppers(t *testing.T) {
	svc := newTestService(t)

	history, err := svc.HistoryFor(context.Background(), 10024)
	require.NoError(t, err)
	require.Len(t, history.Orders, 1)
	assert.Equal(t, int64(3), history.Orders[0].ID)
}

func TestHistoryForEmptyWhenNoOrders(t *testing.T) {
	svc := newTestService(t)

	history, err := svc.HistoryFor(context.Background(), 10025)
	require.NoError(t, err)
	assert.True(t, history.Empty())
}
