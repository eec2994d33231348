package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"canteen/internal/domain"
	apperrors "canteen/internal/errors"
	"canteen/internal/testutil"
)

// Unit Tests

func TestNewMySQLOrderRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLOrderRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

// Integration Tests

func insertTestOrder(t *testing.T, db *sql.DB, repo *MySQLOrderRepository, userID uint) string {
	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	order := domain.Order{
		UUID:   uuid.New().String(),
		UserID: userID,
		Status: domain.OrderStatusCreated,
	}

	require.NoError(t, repo.Insert(context.Background(), tx, order))
	require.NoError(t, tx.Commit())

	return order.UUID
}

func TestOrderRepository_InsertAndFindByUUID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	userID := testutil.SeedUser(t, db, "alice")
	repo := NewMySQLOrderRepository(db)

	orderUUID := insertTestOrder(t, db, repo, userID)

	found, err := repo.FindByUUID(context.Background(), orderUUID)
	require.NoError(t, err)
	assert.Equal(t, orderUUID, found.UUID)
	assert.Equal(t, userID, found.UserID)
	assert.Equal(t, domain.OrderStatusCreated, found.Status)
	assert.False(t, found.CreatedAt.IsZero())
}

func TestOrderRepository_FindByUUID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	_, err := repo.FindByUUID(context.Background(), uuid.New().String())
	require.Error(t, err)

	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok, "expected NotFoundError, got %T", err)
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	userID := testutil.SeedUser(t, db, "alice")
	repo := NewMySQLOrderRepository(db)

	orderUUID := insertTestOrder(t, db, repo, userID)

	err := repo.UpdateStatus(context.Background(), orderUUID, domain.OrderStatusRunning)
	require.NoError(t, err)

	found, err := repo.FindByUUID(context.Background(), orderUUID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusRunning, found.Status)
}

func TestOrderRepository_UpdateStatus_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	err := repo.UpdateStatus(context.Background(), uuid.New().String(), domain.OrderStatusRunning)
	require.Error(t, err)

	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok, "expected NotFoundError, got %T", err)
}

func TestOrderRepository_FindAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	userID := testutil.SeedUser(t, db, "alice")
	repo := NewMySQLOrderRepository(db)

	insertTestOrder(t, db, repo, userID)
	insertTestOrder(t, db, repo, userID)

	orders, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}
