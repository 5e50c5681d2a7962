package catalog

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

func setupCatalogTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	schema := []string{
		`CREATE TABLE IF NOT EXISTS categories (
  category_id INTEGER PRIMARY KEY AUTOINCREMENT,
  category_description TEXT NOT NULL
);`,
		`CREATE TABLE IF NOT EXISTS products (
  product_id INTEGER PRIMARY KEY AUTOINCREMENT,
  product_description TEXT NOT NULL,
  category_id INTEGER NOT NULL REFERENCES categories (category_id)
);`,
		`CREATE TABLE IF NOT EXISTS sellers (
  seller_id INTEGER PRIMARY KEY AUTOINCREMENT,
  seller_name TEXT NOT NULL
);`,
		`CREATE TABLE IF NOT EXISTS product_sellers (
  product_id INTEGER NOT NULL REFERENCES products (product_id),
  seller_id INTEGER NOT NULL REFERENCES sellers (seller_id),
  price_pence INTEGER NOT NULL,
  PRIMARY KEY (product_id, seller_id)
);`,
	}
	for _, ddl := range schema {
		require.NoError(t, db.Exec(ddl).Error)
	}
	return db
}

func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()

	seed := []string{
		`INSERT INTO categories (category_id, category_description) VALUES
  (1, 'Computing'), (2, 'Audio Equipment');`,
		`INSERT INTO products (product_id, product_description, category_id) VALUES
  (101, 'Wireless Mouse', 1), (102, 'Mechanical Keyboard', 1), (103, 'Bluetooth Speaker', 2);`,
		`INSERT INTO sellers (seller_id, seller_name) VALUES
  (1, 'Brightside Retail'), (2, 'Amazonia');`,
		`INSERT INTO product_sellers (product_id, seller_id, price_pence) VALUES
  (101, 1, 1750), (101, 2, 1899), (102, 1, 6200);`,
	}
	for _, stmt := range seed {
		require.NoError(t, db.Exec(stmt).Error)
	}
}

func TestListCategoriesOrderedByDescription(t *testing.T) {
	db := setupCatalogTestDB(t)
	seedCatalog(t, db)
	repo := NewRepository(db)

	got, err := repo.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Audio Equipment", got[0].Label)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, "Computing", got[1].Label)
}

func TestListProductsFiltersByCategory(t *testing.T) {
	db := setupCatalogTestDB(t)
	seedCatalog(t, db)
	repo := NewRepository(db)

	got, err := repo.ListProducts(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Mechanical Keyboard", got[0].Label)
	assert.Equal(t, "Wireless Mouse", got[1].Label)
	assert.Equal(t, int64(101), got[1].ID)
}

func TestListOffersOrderedBySellerName(t *testing.T) {
	db := setupCatalogTestDB(t)
	seedCatalog(t, db)
	repo := NewRepository(db)

	got, err := repo.ListOffers(context.Background(), 101)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Amazonia", got[0].SellerName)
	assert.Equal(t, currency.Pence(1899), got[0].Price)
	assert.Equal(t, "Brightside Retail", got[1].SellerName)
	assert.Equal(t, currency.Pence(1750), got[1].Price)
}

func TestListProductsEmptyCategory(t *testing.T) {
	db := setupCatalogTestDB(t)
	seedCatalog(t, db)
	repo := NewRepository(db)

	got, err := repo.ListProducts(context.Background(), 99)
	require.NoError(t, err)
	assert.Empty(t, got)
}
