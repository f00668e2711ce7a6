package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockItemRepository creates a GormItemRepository with a mocked SQL connection
func newMockItemRepository(t *testing.T) (*GormItemRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormItemRepository(gormDB), mock, mockDB
}

func TestNewGormItemRepository(t *testing.T) {
	repo, _, mockDB := newMockItemRepository(t)
	defer mockDB.Close()

	assert.NotNil(t, repo)
	assert.NotNil(t, repo.db)
}

func TestGormItemRepository_FindByID(t *testing.T) {
	t.Run("finds existing item", func(t *testing.T) {
		repo, mock, mockDB := newMockItemRepository(t)
		defer mockDB.Close()

		itemID := uuid.New()
		now := time.Now()
		rows := sqlmock.NewRows([]string{
			"id", "name", "description", "price", "quantity", "created_at", "updated_at",
		}).AddRow(itemID, "Hammer", "a hammer", "9.9900", int64(5), now, now)

		mock.ExpectQuery(`SELECT \* FROM "items" WHERE id = \$1`).
			WithArgs(itemID, 1).
			WillReturnRows(rows)

		item, err := repo.FindByID(context.Background(), itemID)
		require.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, itemID, item.ID)
		assert.Equal(t, "Hammer", item.Name)
		assert.True(t, item.Price.Equal(decimal.NewFromFloat(9.99)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns nil for missing item", func(t *testing.T) {
		repo, mock, mockDB := newMockItemRepository(t)
		defer mockDB.Close()

		itemID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "items"`).
			WithArgs(itemID, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		item, err := repo.FindByID(context.Background(), itemID)
		require.NoError(t, err)
		assert.Nil(t, item)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormItemRepository_FindByName(t *testing.T) {
	t.Run("finds existing item", func(t *testing.T) {
		repo, mock, mockDB := newMockItemRepository(t)
		defer mockDB.Close()

		itemID := uuid.New()
		now := time.Now()
		rows := sqlmock.NewRows([]string{
			"id", "name", "description", "price", "quantity", "created_at", "updated_at",
		}).AddRow(itemID, "Wrench", "", "4.5000", int64(2), now, now)

		mock.ExpectQuery(`SELECT \* FROM "items" WHERE name = \$1`).
			WithArgs("Wrench", 1).
			WillReturnRows(rows)

		item, err := repo.FindByName(context.Background(), "Wrench")
		require.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, "Wrench", item.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns nil for missing item", func(t *testing.T) {
		repo, mock, mockDB := newMockItemRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "items"`).
			WithArgs("Nothing", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		item, err := repo.FindByName(context.Background(), "Nothing")
		require.NoError(t, err)
		assert.Nil(t, item)
	})
}

func TestGormItemRepository_GetAll(t *testing.T) {
	t.Run("returns all items", func(t *testing.T) {
		repo, mock, mockDB := newMockItemRepository(t)
		defer mockDB.Close()

		now := time.Now()
		rows := sqlmock.NewRows([]string{
			"id", "name", "description", "price", "quantity", "created_at", "updated_at",
		}).
			AddRow(uuid.New(), "A", "", "1.0000", int64(1), now, now).
			AddRow(uuid.New(), "B", "", "2.0000", int64(2), now, now)

		mock.ExpectQuery(`SELECT \* FROM "items" ORDER BY created_at`).
			WillReturnRows(rows)

		items, err := repo.GetAll(context.Background())
		require.NoError(t, err)
		assert.Len(t, items, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty store yields empty slice", func(t *testing.T) {
		repo, mock, mockDB := newMockItemRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "items"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		items, err := repo.GetAll(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})
}

func TestGormItemRepository_Save(t *testing.T) {
	repo, mock, mockDB := newMockItemRepository(t)
	defer mockDB.Close()

	item, err := catalog.NewItem("Drill", "cordless", decimal.NewFromFloat(79.90), 3)
	require.NoError(t, err)

	mock.ExpectExec(`INSERT INTO "items" .* ON CONFLICT \("id"\) DO UPDATE SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Save(context.Background(), item))
	assert.NoError(t, mock.ExpectationsWereMet())
}
