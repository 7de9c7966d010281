// Package commands contains business operations that modify system state or
// call the courier aggregator on the store's behalf.
// Every command follows the same shape: a validated XCommand built by NewXCommand
// and an XCommandHandler whose Handle runs it.
package commands

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages transactions for order operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)

// CourierDispatchQueue accepts orders whose courier order must be created in
// the background. Enqueue never blocks; it reports false when the order was
// dropped.
type CourierDispatchQueue interface {
	Enqueue(orderID kernel.UUID) bool
}
