// Package ports defines the contracts between the storefront core and its
// infrastructure: persistence, site settings and the courier aggregator.
package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists commerce changes to an existing order. It never writes
	// the courier columns; see AttachCourierOrder and UpdateCourierStatus.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateCourierStatus writes only the courier status and tracking URL, and
	// only while the stored courier order id matches the aggregate's.
	UpdateCourierStatus(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// AttachCourierOrder stores the courier order id, status and tracking URL
	// only if the stored order has no courier order id yet. It returns
	// order.ErrCourierOrderAlreadyAttached when another writer got there first.
	AttachCourierOrder(ctx context.Context, aggregate *order.Order) error

	// GetAllWithActiveCourier returns orders whose courier order has not
	// reached a final courier status.
	GetAllWithActiveCourier(ctx context.Context) ([]*order.Order, error)
}
