package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	catalogrepo "canteen/internal/catalog/repository"
	"canteen/internal/dto"
	apperrors "canteen/internal/errors"
	orderrepo "canteen/internal/order/repository"
	"canteen/internal/testutil"
)

// Integration tests: exercise the full transactional build against a real
// database so the commit/rollback semantics are what is actually verified.

func newIntegrationService(db *sql.DB) *OrderCreationService {
	return NewOrderCreationService(
		db,
		orderrepo.NewMySQLOrderRepository(db),
		orderrepo.NewMySQLOrderDetailRepository(db),
		orderrepo.NewMySQLOrderPlaceRepository(db),
		catalogrepo.NewMySQLFoodRepository(db),
		catalogrepo.NewMySQLPlaceRepository(db),
		zap.NewNop(),
		5*time.Second,
	)
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count)
	require.NoError(t, err)
	return count
}

func TestCreateOrder_BalancedOrderPersisted(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	userID := testutil.SeedUser(t, db, "alice")
	testutil.SeedFood(t, db, "bread")
	testutil.SeedFood(t, db, "soup")
	testutil.SeedPlace(t, db, "table1")

	svc := newIntegrationService(db)

	order, err := svc.CreateOrder(context.Background(), userID,
		[]dto.FoodItem{
			{Name: "bread", Quantity: 2, WithdrawalOrder: 1},
			{Name: "soup", Quantity: 1, WithdrawalOrder: 2},
		},
		[]dto.PlaceItem{
			{Name: "table1", Quantity: 3},
		})
	require.NoError(t, err)
	require.NotNil(t, order)

	var status string
	err = db.QueryRow(`SELECT status FROM Orders WHERE uuid = ?`, order.UUID).Scan(&status)
	require.NoError(t, err)
	assert.Equal(t, "CREATED", status)

	var detailCount int
	err = db.QueryRow(`SELECT COUNT(*) FROM OrderDetails WHERE orderUuid = ?`, order.UUID).Scan(&detailCount)
	require.NoError(t, err)
	assert.Equal(t, 2, detailCount)

	var placeCount int
	err = db.QueryRow(`SELECT COUNT(*) FROM OrderPlaces WHERE orderUuid = ?`, order.UUID).Scan(&placeCount)
	require.NoError(t, err)
	assert.Equal(t, 1, placeCount)
}

func TestCreateOrder_QuantityMismatchLeavesNothing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	userID := testutil.SeedUser(t, db, "alice")
	testutil.SeedFood(t, db, "bread")
	testutil.SeedPlace(t, db, "table1")

	svc := newIntegrationService(db)

	_, err := svc.CreateOrder(context.Background(), userID,
		[]dto.FoodItem{{Name: "bread", Quantity: 3}},
		[]dto.PlaceItem{{Name: "table1", Quantity: 2}})
	require.Error(t, err)

	_, ok := apperrors.IsQuantityMismatchError(err)
	require.True(t, ok, "expected QuantityMismatchError, got %T", err)

	assert.Equal(t, 0, countRows(t, db, "Orders"))
	assert.Equal(t, 0, countRows(t, db, "OrderDetails"))
	assert.Equal(t, 0, countRows(t, db, "OrderPlaces"))

	// The catalog itself must be untouched by the rollback.
	assert.Equal(t, 1, countRows(t, db, "Foods"))
	assert.Equal(t, 1, countRows(t, db, "Places"))
}

func TestCreateOrder_UnresolvableFirstFoodLeavesNothing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	userID := testutil.SeedUser(t, db, "alice")
	testutil.SeedFood(t, db, "bread")
	testutil.SeedPlace(t, db, "table1")

	svc := newIntegrationService(db)

	_, err := svc.CreateOrder(context.Background(), userID,
		[]dto.FoodItem{
			{Name: "caviar", Quantity: 1},
			{Name: "bread", Quantity: 1},
		},
		[]dto.PlaceItem{{Name: "table1", Quantity: 2}})
	require.Error(t, err)

	_, ok := apperrors.IsInvalidParameterError(err)
	require.True(t, ok, "expected InvalidParameterError, got %T", err)

	assert.Equal(t, 0, countRows(t, db, "Orders"))
	assert.Equal(t, 0, countRows(t, db, "OrderDetails"))
}

func TestCreateOrder_UnresolvableLastPlaceLeavesNothing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	userID := testutil.SeedUser(t, db, "alice")
	testutil.SeedFood(t, db, "bread")
	testutil.SeedPlace(t, db, "table1")

	svc := newIntegrationService(db)

	// Valid food and place rows are staged before the failing lookup; the
	// rollback must discard them all.
	_, err := svc.CreateOrder(context.Background(), userID,
		[]dto.FoodItem{{Name: "bread", Quantity: 2}},
		[]dto.PlaceItem{
			{Name: "table1", Quantity: 1},
			{Name: "balcony", Quantity: 1},
		})
	require.Error(t, err)

	_, ok := apperrors.IsInvalidParameterError(err)
	require.True(t, ok, "expected InvalidParameterError, got %T", err)

	assert.Equal(t, 0, countRows(t, db, "Orders"))
	assert.Equal(t, 0, countRows(t, db, "OrderDetails"))
	assert.Equal(t, 0, countRows(t, db, "OrderPlaces"))
}

func TestCreateOrder_EmptyOrderBalances(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	userID := testutil.SeedUser(t, db, "alice")

	svc := newIntegrationService(db)

	// Both sums are zero, so the balance check passes and an empty order
	// shell is committed.
	order, err := svc.CreateOrder(context.Background(), userID, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, countRows(t, db, "Orders"))
	assert.Equal(t, 0, countRows(t, db, "OrderDetails"))
	assert.NotEmpty(t, order.UUID)
}
