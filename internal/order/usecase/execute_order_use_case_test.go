package usecase

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"canteen/internal/domain"
	"canteen/internal/dto"
	apperrors "canteen/internal/errors"
)

// Mock implementations

type mockOrderRepository struct {
	FindByUUIDFunc   func(ctx context.Context, orderUUID string) (*domain.Order, error)
	FindAllFunc      func(ctx context.Context) ([]domain.Order, error)
	UpdateStatusFunc func(ctx context.Context, orderUUID string, status domain.OrderStatus) error

	updateStatusCalls int
}

func (m *mockOrderRepository) FindByUUID(ctx context.Context, orderUUID string) (*domain.Order, error) {
	return m.FindByUUIDFunc(ctx, orderUUID)
}

func (m *mockOrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	return m.FindAllFunc(ctx)
}

func (m *mockOrderRepository) UpdateStatus(ctx context.Context, orderUUID string, status domain.OrderStatus) error {
	m.updateStatusCalls++
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, orderUUID, status)
	}
	return nil
}

type mockOrderDetailRepository struct {
	FindLinesByOrderUUIDFunc func(ctx context.Context, orderUUID string) ([]domain.FoodLine, error)
}

func (m *mockOrderDetailRepository) FindLinesByOrderUUID(ctx context.Context, orderUUID string) ([]domain.FoodLine, error) {
	return m.FindLinesByOrderUUIDFunc(ctx, orderUUID)
}

type mockOrderPlaceRepository struct {
	FindLinesByOrderUUIDFunc func(ctx context.Context, orderUUID string) ([]domain.PlaceLine, error)
}

func (m *mockOrderPlaceRepository) FindLinesByOrderUUID(ctx context.Context, orderUUID string) ([]domain.PlaceLine, error) {
	return m.FindLinesByOrderUUIDFunc(ctx, orderUUID)
}

type mockExecutionPublisher struct {
	HasSubscribersFunc func(ctx context.Context) (bool, error)

	published  []dto.ExecutionMessage
	publishErr error
}

func (m *mockExecutionPublisher) HasSubscribers(ctx context.Context) (bool, error) {
	return m.HasSubscribersFunc(ctx)
}

func (m *mockExecutionPublisher) PublishExecution(ctx context.Context, msg dto.ExecutionMessage) error {
	if m.publishErr != nil {
		return m.publishErr
	}
	m.published = append(m.published, msg)
	return nil
}

func createdOrder(uuid string) *domain.Order {
	return &domain.Order{UUID: uuid, UserID: 1, Status: domain.OrderStatusCreated}
}

func newTestExecuteOrderUseCase(
	orderRepo *mockOrderRepository,
	detailRepo *mockOrderDetailRepository,
	placeRepo *mockOrderPlaceRepository,
	publisher *mockExecutionPublisher,
) *ExecuteOrderUseCase {
	return NewExecuteOrderUseCase(orderRepo, detailRepo, placeRepo, publisher, zap.NewNop())
}

// Tests

func TestExecuteOrder_OrderNotFound(t *testing.T) {
	ctx := context.Background()

	orderRepo := &mockOrderRepository{
		FindByUUIDFunc: func(ctx context.Context, orderUUID string) (*domain.Order, error) {
			return nil, apperrors.NewNotFoundError("order not found")
		},
	}
	publisher := &mockExecutionPublisher{}

	uc := newTestExecuteOrderUseCase(orderRepo, &mockOrderDetailRepository{}, &mockOrderPlaceRepository{}, publisher)

	err := uc.ExecuteOrder(ctx, "missing-uuid")

	if _, ok := apperrors.IsNotFoundError(err); !ok {
		t.Errorf("expected NotFoundError, got %T", err)
	}
	if len(publisher.published) != 0 {
		t.Errorf("expected no publish, got %d", len(publisher.published))
	}
}

func TestExecuteOrder_AlreadyStarted(t *testing.T) {
	ctx := context.Background()

	for _, status := range []domain.OrderStatus{domain.OrderStatusRunning, domain.OrderStatusCompleted, domain.OrderStatusFailed} {
		orderRepo := &mockOrderRepository{
			FindByUUIDFunc: func(ctx context.Context, orderUUID string) (*domain.Order, error) {
				return &domain.Order{UUID: orderUUID, UserID: 1, Status: status}, nil
			},
		}
		publisher := &mockExecutionPublisher{
			HasSubscribersFunc: func(ctx context.Context) (bool, error) { return true, nil },
		}

		uc := newTestExecuteOrderUseCase(orderRepo, &mockOrderDetailRepository{}, &mockOrderPlaceRepository{}, publisher)

		err := uc.ExecuteOrder(ctx, "uuid-1")

		if _, ok := apperrors.IsAlreadyStartedError(err); !ok {
			t.Errorf("status %s: expected AlreadyStartedError, got %T", status, err)
		}
		if len(publisher.published) != 0 {
			t.Errorf("status %s: expected no publish, got %d", status, len(publisher.published))
		}
	}
}

func TestExecuteOrder_NoSubscribers(t *testing.T) {
	ctx := context.Background()

	orderRepo := &mockOrderRepository{
		FindByUUIDFunc: func(ctx context.Context, orderUUID string) (*domain.Order, error) {
			return createdOrder(orderUUID), nil
		},
	}
	publisher := &mockExecutionPublisher{
		HasSubscribersFunc: func(ctx context.Context) (bool, error) { return false, nil },
	}

	uc := newTestExecuteOrderUseCase(orderRepo, &mockOrderDetailRepository{}, &mockOrderPlaceRepository{}, publisher)

	err := uc.ExecuteOrder(ctx, "uuid-1")

	if _, ok := apperrors.IsChannelUnavailableError(err); !ok {
		t.Errorf("expected ChannelUnavailableError, got %T", err)
	}
	if len(publisher.published) != 0 {
		t.Errorf("expected no publish, got %d", len(publisher.published))
	}
	if orderRepo.updateStatusCalls != 0 {
		t.Errorf("expected status untouched, got %d update calls", orderRepo.updateStatusCalls)
	}
}

func TestExecuteOrder_Success(t *testing.T) {
	ctx := context.Background()

	orderRepo := &mockOrderRepository{
		FindByUUIDFunc: func(ctx context.Context, orderUUID string) (*domain.Order, error) {
			return createdOrder(orderUUID), nil
		},
	}
	detailRepo := &mockOrderDetailRepository{
		FindLinesByOrderUUIDFunc: func(ctx context.Context, orderUUID string) ([]domain.FoodLine, error) {
			return []domain.FoodLine{{Food: "bread", Quantity: 2, WithdrawalOrder: 1}}, nil
		},
	}
	placeRepo := &mockOrderPlaceRepository{
		FindLinesByOrderUUIDFunc: func(ctx context.Context, orderUUID string) ([]domain.PlaceLine, error) {
			return []domain.PlaceLine{{Place: "table1", Quantity: 2}}, nil
		},
	}
	publisher := &mockExecutionPublisher{
		HasSubscribersFunc: func(ctx context.Context) (bool, error) { return true, nil },
	}

	uc := newTestExecuteOrderUseCase(orderRepo, detailRepo, placeRepo, publisher)

	err := uc.ExecuteOrder(ctx, "uuid-1")

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(publisher.published) != 1 {
		t.Fatalf("expected exactly one publish, got %d", len(publisher.published))
	}

	msg := publisher.published[0]
	if msg.MessageKind != dto.MessageKindExecuteOrder {
		t.Errorf("expected message kind %q, got %q", dto.MessageKindExecuteOrder, msg.MessageKind)
	}
	if msg.OrderUUID != "uuid-1" {
		t.Errorf("unexpected order uuid %q", msg.OrderUUID)
	}
	if len(msg.Payload.Foods) != 1 || msg.Payload.Foods[0].Food != "bread" {
		t.Errorf("unexpected food lines %+v", msg.Payload.Foods)
	}
	if len(msg.Payload.Places) != 1 || msg.Payload.Places[0].Place != "table1" {
		t.Errorf("unexpected place lines %+v", msg.Payload.Places)
	}

	// Dispatch must not advance the lifecycle; that is the executor's job.
	if orderRepo.updateStatusCalls != 0 {
		t.Errorf("expected no status update, got %d calls", orderRepo.updateStatusCalls)
	}
}

func TestExecuteOrder_SubscriberCheckFails(t *testing.T) {
	ctx := context.Background()

	orderRepo := &mockOrderRepository{
		FindByUUIDFunc: func(ctx context.Context, orderUUID string) (*domain.Order, error) {
			return createdOrder(orderUUID), nil
		},
	}
	publisher := &mockExecutionPublisher{
		HasSubscribersFunc: func(ctx context.Context) (bool, error) {
			return false, apperrors.NewInternalError("channel closed", nil)
		},
	}

	uc := newTestExecuteOrderUseCase(orderRepo, &mockOrderDetailRepository{}, &mockOrderPlaceRepository{}, publisher)

	err := uc.ExecuteOrder(ctx, "uuid-1")

	if _, ok := apperrors.IsInternalError(err); !ok {
		t.Errorf("expected InternalError, got %T", err)
	}
}
