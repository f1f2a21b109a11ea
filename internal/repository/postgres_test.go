package repository_test

import (
	"context"
	"errors"
	"os"
	"slices"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/shop-admin/internal/model"
	"github.com/tuanvumaihuynh/shop-admin/internal/repository"
	"github.com/tuanvumaihuynh/shop-admin/internal/storage/db"
	"github.com/tuanvumaihuynh/shop-admin/internal/storage/db/sqlc"
	"github.com/tuanvumaihuynh/shop-admin/pkg/ptr"
)

var errRollback = errors.New("rollback")

// withRollbackTx runs fn against a migrated database inside a transaction that
// is always rolled back. It skips the test when TEST_POSTGRES_DSN is unset.
func withRollbackTx(t *testing.T, fn func(ctx context.Context, tx db.DB)) {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN is not set")
	}

	ctx := context.Background()
	pgConf, err := pgxpool.ParseConfig(dsn)
	require.NoError(t, err)
	pgConf.ConnConfig.RuntimeParams["timezone"] = "UTC"

	pool, err := pgxpool.NewWithConfig(ctx, pgConf)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, db.Migrate(pool))

	err = db.NewClient(pool).WithTx(ctx, func(tx db.DB) error {
		fn(ctx, tx)
		return errRollback
	})
	require.ErrorIs(t, err, errRollback)
}

type fixture struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
	inventory  repository.InventoryRepository
	history    repository.InventoryHistoryRepository
}

func newFixture(tx db.DB) fixture {
	queries := *sqlc.New()
	return fixture{
		categories: repository.NewCategoryRepository(tx, queries),
		products:   repository.NewProductRepository(tx, queries),
		inventory:  repository.NewInventoryRepository(tx, queries),
		history:    repository.NewInventoryHistoryRepository(tx, queries),
	}
}

func (f fixture) product(t *testing.T, ctx context.Context, categoryID int64, price string, qty, threshold int) model.Product {
	t.Helper()

	p, err := f.products.CreateProduct(ctx, repository.CreateProductParams{
		Name:       "product-" + uuid.NewString()[:8],
		Sku:        uuid.NewString(),
		Price:      decimal.RequireFromString(price),
		CategoryID: categoryID,
	})
	require.NoError(t, err)

	_, err = f.inventory.CreateInventory(ctx, repository.CreateInventoryParams{
		ProductID:       p.ID,
		InitialQuantity: qty,
		Threshold:       threshold,
	})
	require.NoError(t, err)

	return p
}

func TestPostgresCategory(t *testing.T) {
	t.Run("Should refuse to delete a category with products", func(t *testing.T) {
		withRollbackTx(t, func(ctx context.Context, tx db.DB) {
			f := newFixture(tx)
			c, err := f.categories.CreateCategory(ctx, "Peripherals")
			require.NoError(t, err)
			f.product(t, ctx, c.ID, "9.99", 1, 0)

			err = f.categories.DeleteCategory(ctx, c.ID)
			assert.ErrorIs(t, err, repository.ErrForeignKeyViolation)
		})
	})

	t.Run("Should report missing category", func(t *testing.T) {
		withRollbackTx(t, func(ctx context.Context, tx db.DB) {
			_, err := newFixture(tx).categories.GetCategory(ctx, -1)
			assert.ErrorIs(t, err, repository.ErrNotFound)
		})
	})
}

func TestPostgresLowStock(t *testing.T) {
	withRollbackTx(t, func(ctx context.Context, tx db.DB) {
		f := newFixture(tx)
		c, err := f.categories.CreateCategory(ctx, "Cables")
		require.NoError(t, err)

		atThreshold := f.product(t, ctx, c.ID, "1.00", 5, 5)
		above := f.product(t, ctx, c.ID, "1.00", 6, 5)

		collect := func(override *int) []int64 {
			var ids []int64
			for item, err := range f.inventory.ListLowStock(ctx, override) {
				require.NoError(t, err)
				if item.ProductID == atThreshold.ID || item.ProductID == above.ID {
					ids = append(ids, item.ProductID)
				}
			}
			return ids
		}

		assert.Equal(t, []int64{atThreshold.ID}, collect(nil))
		assert.Equal(t, []int64{atThreshold.ID, above.ID}, collect(ptr.New(6)))
		assert.Empty(t, collect(ptr.New(4)))
	})
}

func TestPostgresSalesSummary(t *testing.T) {
	withRollbackTx(t, func(ctx context.Context, tx db.DB) {
		f := newFixture(tx)
		keyboards, err := f.categories.CreateCategory(ctx, "Keyboards")
		require.NoError(t, err)
		mice, err := f.categories.CreateCategory(ctx, "Mice")
		require.NoError(t, err)

		p1 := f.product(t, ctx, keyboards.ID, "10.99", 100, 0)
		p2 := f.product(t, ctx, keyboards.ID, "15.99", 100, 0)
		p3 := f.product(t, ctx, mice.ID, "2.50", 100, 0)

		var customerID int64
		require.NoError(t, tx.QueryRow(ctx,
			`INSERT INTO customers (name, email, phone) VALUES ('Ann', $1, $2) RETURNING id`,
			uuid.NewString()+"@example.com", uuid.NewString(),
		).Scan(&customerID))

		type item struct {
			productID int64
			qty       int
		}
		order := func(createdAt time.Time, items ...item) {
			var orderID int64
			require.NoError(t, tx.QueryRow(ctx,
				`INSERT INTO orders (customer_id, created_at) VALUES ($1, $2) RETURNING id`,
				customerID, createdAt,
			).Scan(&orderID))
			for _, it := range items {
				_, err := tx.Exec(ctx,
					`INSERT INTO order_items (order_id, product_id, quantity) VALUES ($1, $2, $3)`,
					orderID, it.productID, it.qty,
				)
				require.NoError(t, err)
			}
		}

		order(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), item{p1.ID, 2}, item{p2.ID, 1})
		order(time.Date(2024, 1, 31, 23, 59, 0, 0, time.UTC), item{p3.ID, 1})
		order(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), item{p3.ID, 7}, item{p1.ID, 1})

		reports := repository.NewReportRepository(tx, *sqlc.New())
		jan1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		jan31 := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
		feb1 := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

		summary := func(params repository.SalesSummaryParams) []model.SalesSummary {
			rows, err := reports.SalesSummary(ctx, params)
			require.NoError(t, err)
			return rows
		}
		assertRow := func(row model.SalesSummary, productID, qty int64, sales string) {
			assert.Equal(t, productID, row.ProductID)
			assert.Equal(t, qty, row.TotalQuantity)
			assert.True(t, decimal.RequireFromString(sales).Equal(row.TotalSales),
				"total sales %s, want %s", row.TotalSales, sales)
		}

		// product filter leaves out the other product of the same order
		rows := summary(repository.SalesSummaryParams{StartDate: &jan1, EndDate: &jan31, ProductID: &p1.ID})
		require.Len(t, rows, 1)
		assertRow(rows[0], p1.ID, 2, "21.98")

		rows = summary(repository.SalesSummaryParams{ProductID: &p1.ID})
		require.Len(t, rows, 1)
		assertRow(rows[0], p1.ID, 3, "32.97")

		// end date is inclusive of the whole UTC day
		rows = summary(repository.SalesSummaryParams{StartDate: &jan1, EndDate: &jan31, ProductID: &p3.ID})
		require.Len(t, rows, 1)
		assertRow(rows[0], p3.ID, 1, "2.50")

		rows = summary(repository.SalesSummaryParams{CategoryID: &keyboards.ID})
		require.Len(t, rows, 2)
		assertRow(rows[0], p1.ID, 3, "32.97")
		assertRow(rows[1], p2.ID, 1, "15.99")

		rows = summary(repository.SalesSummaryParams{CategoryID: &mice.ID})
		require.Len(t, rows, 1)
		assertRow(rows[0], p3.ID, 8, "20.00")

		rows = summary(repository.SalesSummaryParams{StartDate: &feb1, CategoryID: &mice.ID})
		require.Len(t, rows, 1)
		assertRow(rows[0], p3.ID, 7, "17.50")

		rows = summary(repository.SalesSummaryParams{EndDate: &jan31, CategoryID: &mice.ID})
		require.Len(t, rows, 1)
		assertRow(rows[0], p3.ID, 1, "2.50")

		rows = summary(repository.SalesSummaryParams{StartDate: &feb1, CategoryID: &keyboards.ID})
		require.Len(t, rows, 1)
		assertRow(rows[0], p1.ID, 1, "10.99")

		rows = summary(repository.SalesSummaryParams{EndDate: &jan31, CategoryID: &keyboards.ID})
		require.Len(t, rows, 2)
		assertRow(rows[0], p1.ID, 2, "21.98")
		assertRow(rows[1], p2.ID, 1, "15.99")

		assert.Empty(t, summary(repository.SalesSummaryParams{StartDate: &feb1, ProductID: &p2.ID}))
	})
}

func TestPostgresInventoryFeed(t *testing.T) {
	withRollbackTx(t, func(ctx context.Context, tx db.DB) {
		f := newFixture(tx)
		feed := repository.NewInventoryFeedRepository(tx, *sqlc.New())

		c, err := f.categories.CreateCategory(ctx, "Mice")
		require.NoError(t, err)
		p := f.product(t, ctx, c.ID, "5.00", 10, 8)

		change, err := f.history.CreateInventoryChange(ctx, repository.CreateInventoryChangeParams{
			ProductID:      p.ID,
			QuantityChange: -3,
			NewQuantity:    7,
			ChangedAt:      time.Now(),
		})
		require.NoError(t, err)

		_, err = f.inventory.UpdateThreshold(ctx, p.ID, 2)
		require.NoError(t, err)

		ok, err := feed.TryLockFeed(ctx, "test-"+uuid.NewString())
		require.NoError(t, err)
		require.True(t, ok)

		pending := func() []model.InventoryFeedEntry {
			entries, err := feed.ListPendingEntries(ctx, 10000)
			require.NoError(t, err)
			return entries
		}
		byChangeID := func(e model.InventoryFeedEntry) bool { return e.ID == change.ID }

		entries := pending()
		idx := slices.IndexFunc(entries, byChangeID)
		require.NotEqual(t, -1, idx)
		assert.Equal(t, p.Name, entries[idx].ProductName)
		require.NotNil(t, entries[idx].Threshold)
		assert.Equal(t, 8, *entries[idx].Threshold, "threshold is taken when the change is written")

		require.NoError(t, feed.MarkPublished(ctx, []int64{change.ID}))
		assert.False(t, slices.ContainsFunc(pending(), byChangeID))
	})
}
