package orderrepo_test

import (
	"context"
	"testing"

	"grubdash/internal/adapters/out/memory/orderrepo"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id string, aggregate any) {
	m.Called(id, aggregate)
}

// directAccess hands the table to the repository without locking.
type directAccess struct {
	table *orderrepo.Table
}

func (a directAccess) Read(fn func(t *orderrepo.Table) error) error  { return fn(a.table) }
func (a directAccess) Write(fn func(t *orderrepo.Table) error) error { return fn(a.table) }

type OrderRepositoryTestSuite struct {
	suite.Suite
	table      *orderrepo.Table
	repository *orderrepo.MemoryOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryTestSuite) SetupTest() {
	suite.table = orderrepo.NewTable()
	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewMemoryOrderRepository(directAccess{table: suite.table}, suite.tracker)
}

func (suite *OrderRepositoryTestSuite) newOrder(id, deliverTo string, status order.Status) *order.Order {
	quantity := 3
	details, err := order.NewDetails(order.Draft{
		DeliverTo:    deliverTo,
		MobileNumber: "555-1234",
		HasDishes:    true,
		Dishes: []order.DraftDish{{
			ID:          "d1",
			Name:        "Dolcelatte and chickpea spaghetti",
			Description: "Spaghetti topped with a blend of dolcelatte and fresh chickpeas",
			ImageURL:    "https://images.example.com/spaghetti.jpg",
			Price:       19,
			Quantity:    &quantity,
		}},
	})
	suite.Require().NoError(err)

	o, err := order.RestoreOrder(id, details, status)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryTestSuite) TestAddAndGet() {
	ctx := context.Background()
	o := suite.newOrder("a1", "120 Main St", order.Unset)

	suite.Require().NoError(suite.repository.Add(ctx, o))

	got, err := suite.repository.Get(ctx, "a1")
	suite.Require().NoError(err)
	suite.True(o.IsEqual(got))
	suite.Equal("120 Main St", got.DeliverTo())
	suite.Equal(order.Unset, got.Status())
	suite.Equal(o.Dishes(), got.Dishes())
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", "a1", o)
}

func (suite *OrderRepositoryTestSuite) TestAdd_DuplicateID() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder("a1", "1 Elm St", order.Unset)))

	err := suite.repository.Add(ctx, suite.newOrder("a1", "2 Elm St", order.Unset))

	suite.ErrorIs(err, orderrepo.ErrOrderAlreadyExists)
	suite.Equal(1, suite.table.Len())
}

func (suite *OrderRepositoryTestSuite) TestAdd_NotConstructed() {
	err := suite.repository.Add(context.Background(), &order.Order{})

	suite.ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.Zero(suite.table.Len())
}

func (suite *OrderRepositoryTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), "missing")

	suite.ErrorIs(err, errs.ErrObjectNotFound)
	suite.Equal("Order does not exist: missing", errs.Cause(err).Error())
}

func (suite *OrderRepositoryTestSuite) TestGet_ReturnsIndependentCopies() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder("a1", "1 Elm St", order.Pending)))

	first, err := suite.repository.Get(ctx, "a1")
	suite.Require().NoError(err)
	suite.Require().NoError(first.Replace("", first.Details(), "preparing"))

	second, err := suite.repository.Get(ctx, "a1")
	suite.Require().NoError(err)
	suite.Equal(order.Pending, second.Status())
}

func (suite *OrderRepositoryTestSuite) TestUpdate() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder("a1", "1 Elm St", order.Unset)))

	suite.Require().NoError(suite.repository.Update(ctx, suite.newOrder("a1", "9 Oak Ave", order.OutForDelivery)))

	got, err := suite.repository.Get(ctx, "a1")
	suite.Require().NoError(err)
	suite.Equal("9 Oak Ave", got.DeliverTo())
	suite.Equal(order.OutForDelivery, got.Status())
}

func (suite *OrderRepositoryTestSuite) TestUpdate_NotFound() {
	err := suite.repository.Update(context.Background(), suite.newOrder("zz", "1 Elm St", order.Pending))

	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryTestSuite) TestRemove() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder("a1", "1 Elm St", order.Unset)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder("a2", "2 Elm St", order.Unset)))

	suite.Require().NoError(suite.repository.Remove(ctx, "a1"))

	_, err := suite.repository.Get(ctx, "a1")
	suite.ErrorIs(err, errs.ErrObjectNotFound)
	suite.ErrorIs(suite.repository.Remove(ctx, "a1"), errs.ErrObjectNotFound)
	suite.Equal(1, suite.table.Len())
}

func (suite *OrderRepositoryTestSuite) TestGetAll_InsertionOrder() {
	ctx := context.Background()
	for _, id := range []string{"c", "a", "b"} {
		suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder(id, "1 Elm St", order.Unset)))
	}

	orders, err := suite.repository.GetAll(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(orders, 3)
	suite.Equal("c", orders[0].ID())
	suite.Equal("a", orders[1].ID())
	suite.Equal("b", orders[2].ID())
}

func (suite *OrderRepositoryTestSuite) TestGetAll_Empty() {
	orders, err := suite.repository.GetAll(context.Background())

	suite.Require().NoError(err)
	suite.NotNil(orders)
	suite.Empty(orders)
}

func (suite *OrderRepositoryTestSuite) TestCanceledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	suite.ErrorIs(suite.repository.Add(ctx, suite.newOrder("a1", "1 Elm St", order.Unset)), context.Canceled)
	_, err := suite.repository.GetAll(ctx)
	suite.ErrorIs(err, context.Canceled)
}

func TestOrderRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryTestSuite))
}
