package orderrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite runs OrderRepository against a real
// PostgreSQL container.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DeliveryOrder_RoundTrips() {
	ctx := context.Background()
	original := suite.newDeliveryOrder()

	suite.Require().NoError(suite.repository.Add(ctx, original))

	got, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Equal(original.ID(), got.ID())
	suite.Equal("Juan Dela Cruz", got.CustomerName())
	suite.Equal("+639171234567", got.CustomerPhone())
	suite.Equal(order.Delivery, got.ServiceType())
	suite.Equal(order.Pending, got.Status())
	suite.True(original.Total().Equal(got.Total()))
	suite.Equal("BGC, Taguig", got.DeliveryAddress())
	suite.Require().NotNil(got.DeliveryLocation())
	suite.True(original.DeliveryLocation().IsEqual(*got.DeliveryLocation()))
	suite.Require().NotNil(got.DeliveryFee())
	suite.Equal("108", got.DeliveryFee().String())
	suite.Equal("q-1", got.QuotationID())
	suite.False(got.HasCourierOrder())
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", original.ID(), original)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_PickupOrder_StoresNoDeliveryColumns() {
	ctx := context.Background()
	pickup, err := order.NewOrder(kernel.NewUUID(), "Maria", "0917 765 4321", order.Pickup, decimal.RequireFromString("120"))
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, pickup))

	var dto orderrepo.OrderDTO
	suite.Require().NoError(suite.db.First(&dto, "id = ?", pickup.ID().Bytes()).Error)
	suite.Nil(dto.DeliveryLat)
	suite.Nil(dto.DeliveryAddress)
	suite.False(dto.DeliveryFee.Valid)
	suite.Nil(dto.LalamoveQuotationID)
	suite.Nil(dto.LalamoveOrderID)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	got, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatus() {
	ctx := context.Background()
	o := suite.newDeliveryOrder()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(o.ChangeStatus(order.Confirmed))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, got.Status())
	suite.True(got.NeedsCourierDispatch())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NeverWritesCourierColumns() {
	ctx := context.Background()
	o := suite.newConfirmedDeliveryOrder()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(o.AttachCourierOrder("107900701184", delivery.CourierStatusAssigningDriver, "https://share.example/1"))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.False(got.HasCourierOrder())
	suite.Empty(got.CourierStatus())
	suite.Empty(got.TrackingURL())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleAggregateKeepsAttachedCourierOrder() {
	ctx := context.Background()
	o := suite.newConfirmedDeliveryOrder()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	stale, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)

	attached, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(attached.AttachCourierOrder("A-1", delivery.CourierStatusAssigningDriver, "https://share.example/a"))
	suite.Require().NoError(suite.repository.AttachCourierOrder(ctx, attached))

	suite.Require().NoError(stale.ChangeStatus(order.Preparing))
	suite.Require().NoError(suite.repository.Update(ctx, stale))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Preparing, got.Status())
	suite.Equal("A-1", got.CourierOrderID())
	suite.Equal(delivery.CourierStatusAssigningDriver, got.CourierStatus())
	suite.Equal("https://share.example/a", got.TrackingURL())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	err := suite.repository.Update(context.Background(), suite.newDeliveryOrder())

	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAttachCourierOrder_FirstWriterWins() {
	ctx := context.Background()
	o := suite.newConfirmedDeliveryOrder()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	first, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.AttachCourierOrder("A-1", delivery.CourierStatusAssigningDriver, "https://share.example/a"))
	suite.Require().NoError(second.AttachCourierOrder("B-2", delivery.CourierStatusAssigningDriver, "https://share.example/b"))

	suite.Require().NoError(suite.repository.AttachCourierOrder(ctx, first))
	err = suite.repository.AttachCourierOrder(ctx, second)
	suite.ErrorIs(err, order.ErrCourierOrderAlreadyAttached)

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal("A-1", got.CourierOrderID())
	suite.Equal("https://share.example/a", got.TrackingURL())
	suite.False(got.NeedsCourierDispatch())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAttachCourierOrder_ConcurrentWriters() {
	ctx := context.Background()
	o := suite.newConfirmedDeliveryOrder()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	const writers = 5
	results := make(chan error, writers)
	var wg sync.WaitGroup
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			loaded, err := suite.repository.Get(ctx, o.ID())
			if err != nil {
				results <- err
				return
			}
			if err = loaded.AttachCourierOrder(string(rune('A'+i)), delivery.CourierStatusAssigningDriver, ""); err != nil {
				results <- err
				return
			}
			results <- suite.repository.AttachCourierOrder(ctx, loaded)
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, rejected int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case suite.ErrorIs(err, order.ErrCourierOrderAlreadyAttached):
			rejected++
		}
	}
	suite.Equal(1, succeeded)
	suite.Equal(writers-1, rejected)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAttachCourierOrder_Errors() {
	ctx := context.Background()

	suite.Run("without courier order id", func() {
		o := suite.newConfirmedDeliveryOrder()
		suite.Require().NoError(suite.repository.Add(ctx, o))

		err := suite.repository.AttachCourierOrder(ctx, o)
		suite.ErrorIs(err, errs.ErrValueIsRequired)
	})

	suite.Run("unknown order", func() {
		o := suite.newConfirmedDeliveryOrder()
		suite.Require().NoError(o.AttachCourierOrder("X", "", ""))

		err := suite.repository.AttachCourierOrder(ctx, o)
		suite.ErrorIs(err, errs.ErrObjectNotFound)
	})
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateCourierStatus_KeepsOperatorStatus() {
	ctx := context.Background()
	o := suite.attachedOrder(ctx, "A-1", delivery.CourierStatusAssigningDriver)

	polled, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)

	operator, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(operator.ChangeStatus(order.Cancelled))
	suite.Require().NoError(suite.repository.Update(ctx, operator))

	suite.Require().NoError(polled.UpdateCourierStatus(delivery.CourierStatusOnGoing, "https://share.example/live"))
	suite.Require().NoError(suite.repository.UpdateCourierStatus(ctx, polled))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Cancelled, got.Status())
	suite.Equal(delivery.CourierStatusOnGoing, got.CourierStatus())
	suite.Equal("https://share.example/live", got.TrackingURL())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateCourierStatus_Errors() {
	ctx := context.Background()

	suite.Run("without courier order id", func() {
		o := suite.newConfirmedDeliveryOrder()
		suite.Require().NoError(suite.repository.Add(ctx, o))

		err := suite.repository.UpdateCourierStatus(ctx, o)
		suite.ErrorIs(err, errs.ErrValueIsRequired)
	})

	suite.Run("different courier order", func() {
		stored := suite.attachedOrder(ctx, "A-1", delivery.CourierStatusAssigningDriver)

		other, err := order.RestoreOrder(order.Snapshot{
			ID:               stored.ID(),
			CustomerName:     stored.CustomerName(),
			CustomerPhone:    stored.CustomerPhone(),
			ServiceType:      stored.ServiceType(),
			Total:            stored.Total(),
			Status:           stored.Status(),
			CreatedAt:        stored.CreatedAt(),
			DeliveryAddress:  stored.DeliveryAddress(),
			DeliveryLocation: stored.DeliveryLocation(),
			DeliveryFee:      stored.DeliveryFee(),
			QuotationID:      stored.QuotationID(),
			CourierOrderID:   "B-2",
			CourierStatus:    delivery.CourierStatusCompleted,
		})
		suite.Require().NoError(err)

		err = suite.repository.UpdateCourierStatus(ctx, other)
		suite.ErrorIs(err, errs.ErrObjectNotFound)

		got, err := suite.repository.Get(ctx, stored.ID())
		suite.Require().NoError(err)
		suite.Equal(delivery.CourierStatusAssigningDriver, got.CourierStatus())
	})
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllWithActiveCourier_SkipsFinalAndUnattached() {
	ctx := context.Background()

	active := suite.attachedOrder(ctx, "A-1", delivery.CourierStatusPickedUp)
	_ = suite.attachedOrder(ctx, "A-2", delivery.CourierStatusCompleted)
	noStatus := suite.attachedOrder(ctx, "A-3", "")
	suite.Require().NoError(suite.repository.Add(ctx, suite.newConfirmedDeliveryOrder()))

	orders, err := suite.repository.GetAllWithActiveCourier(ctx)
	suite.Require().NoError(err)

	ids := make([]kernel.UUID, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID())
	}
	suite.ElementsMatch([]kernel.UUID{active.ID(), noStatus.ID()}, ids)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllWithActiveCourier_Empty() {
	orders, err := suite.repository.GetAllWithActiveCourier(context.Background())

	suite.Require().NoError(err)
	suite.Empty(orders)
}

func (suite *OrderRepositoryIntegrationTestSuite) newDeliveryOrder() *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), "Juan Dela Cruz", "09171234567", order.Delivery, decimal.RequireFromString("450.50"))
	suite.Require().NoError(err)
	loc, err := kernel.NewLocation(14.5176, 121.0509)
	suite.Require().NoError(err)
	suite.Require().NoError(o.SetDestination("BGC, Taguig", loc))
	suite.Require().NoError(o.AttachQuotation("q-1", decimal.RequireFromString("108.00")))
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) newConfirmedDeliveryOrder() *order.Order {
	o := suite.newDeliveryOrder()
	suite.Require().NoError(o.ChangeStatus(order.Confirmed))
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) attachedOrder(ctx context.Context, courierID, status string) *order.Order {
	o := suite.newConfirmedDeliveryOrder()
	suite.Require().NoError(suite.repository.Add(ctx, o))
	suite.Require().NoError(o.AttachCourierOrder(courierID, status, ""))
	suite.Require().NoError(suite.repository.AttachCourierOrder(ctx, o))
	return o
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
