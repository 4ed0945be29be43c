package commands_test

import (
	"context"
	"log/slog"
	"testing"

	"grubdash/internal/core/application/usecases/commands"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) Remove(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderEventPublisher struct{ mock.Mock }

func (m *MockOrderEventPublisher) Publish(ctx context.Context, event ports.OrderChangedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func eventOfType(eventType ports.OrderEventType) any {
	return mock.MatchedBy(func(e ports.OrderChangedEvent) bool {
		return e.Type == eventType && e.Order != nil && !e.OccurredAt.IsZero()
	})
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func intPtr(v int) *int {
	return &v
}

func newDetails(t *testing.T, deliverTo string) order.Details {
	t.Helper()
	details, err := order.NewDetails(order.Draft{
		DeliverTo:    deliverTo,
		MobileNumber: "555-1234",
		HasDishes:    true,
		Dishes:       []order.DraftDish{{Name: "Falafel", Quantity: intPtr(2)}},
	})
	require.NoError(t, err)
	return details
}

func storedOrder(t *testing.T, id string, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(id, newDetails(t, "120 Main St"), status)
	require.NoError(t, err)
	return o
}
