// Package queries contains read-only operations that bypass the aggregates
// and read the orders table directly.
package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery reads one order with its courier state.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderView is the order as shown to the storefront and operators. Optional
// values are nil or empty when not set.
type OrderView struct {
	ID               kernel.UUID
	CustomerName     string
	CustomerPhone    string
	ServiceType      string
	Status           string
	Total            decimal.Decimal
	CreatedAt        time.Time
	DeliveryAddress  string
	DeliveryLocation *kernel.Location
	DeliveryFee      *decimal.Decimal
	QuotationID      string
	CourierOrderID   string
	CourierStatus    string
	TrackingURL      string
}
