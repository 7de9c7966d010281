package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"

	"github.com/shopspring/decimal"
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

func (m *MockOrderRepository) UpdateCourierStatus(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) AttachCourierOrder(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) GetAllWithActiveCourier(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if orders, ok := args.Get(0).([]*order.Order); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
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

type MockStoreSettingsRepository struct{ mock.Mock }

func (m *MockStoreSettingsRepository) Get(ctx context.Context) (delivery.StoreConfig, error) {
	args := m.Called(ctx)
	return args.Get(0).(delivery.StoreConfig), args.Error(1)
}

func (m *MockStoreSettingsRepository) Save(ctx context.Context, cfg delivery.StoreConfig) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

type MockCourierClient struct{ mock.Mock }

func (m *MockCourierClient) RequestQuotation(
	ctx context.Context, cfg delivery.StoreConfig, req delivery.QuotationRequest,
) (delivery.Quotation, error) {
	args := m.Called(ctx, cfg, req)
	return args.Get(0).(delivery.Quotation), args.Error(1)
}

func (m *MockCourierClient) GetQuotation(
	ctx context.Context, cfg delivery.StoreConfig, quotationID string,
) (delivery.Quotation, error) {
	args := m.Called(ctx, cfg, quotationID)
	return args.Get(0).(delivery.Quotation), args.Error(1)
}

func (m *MockCourierClient) PlaceOrder(
	ctx context.Context, cfg delivery.StoreConfig, req delivery.PlaceOrderRequest,
) (delivery.CourierOrder, error) {
	args := m.Called(ctx, cfg, req)
	return args.Get(0).(delivery.CourierOrder), args.Error(1)
}

func (m *MockCourierClient) GetOrder(
	ctx context.Context, cfg delivery.StoreConfig, courierOrderID string,
) (delivery.CourierOrder, error) {
	args := m.Called(ctx, cfg, courierOrderID)
	return args.Get(0).(delivery.CourierOrder), args.Error(1)
}

type MockCourierDispatchQueue struct{ mock.Mock }

func (m *MockCourierDispatchQueue) Enqueue(orderID kernel.UUID) bool {
	args := m.Called(orderID)
	return args.Bool(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testStoreConfig(t *testing.T) delivery.StoreConfig {
	t.Helper()

	loc, err := kernel.NewLocation(14.5547, 121.0244)
	require.NoError(t, err)
	cfg, err := delivery.NewStoreConfig("PH", "MOTORCYCLE", true, "Kusina", "02 8123 4567", "Ayala Ave, Makati", loc)
	require.NoError(t, err)
	return cfg
}

func newDeliveryOrder(t *testing.T, quotationID string) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), "Juan Dela Cruz", "0917-123-4567", order.Delivery, decimal.RequireFromString("450"))
	require.NoError(t, err)
	loc, err := kernel.NewLocation(14.5176, 121.0509)
	require.NoError(t, err)
	require.NoError(t, o.SetDestination("BGC, Taguig", loc))
	if quotationID != "" {
		require.NoError(t, o.AttachQuotation(quotationID, decimal.RequireFromString("108")))
	}
	return o
}

func newConfirmedDeliveryOrder(t *testing.T, quotationID string) *order.Order {
	t.Helper()

	o := newDeliveryOrder(t, quotationID)
	require.NoError(t, o.ChangeStatus(order.Confirmed))
	return o
}
