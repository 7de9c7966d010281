package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrDispatchCourierCommandIsNotConstructed = errors.New(
	"DispatchCourierCommand must be created via NewDispatchCourierCommand constructor",
)

// DispatchCourierCommand creates the courier order for one confirmed order.
type DispatchCourierCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDispatchCourierCommand(orderID kernel.UUID) (DispatchCourierCommand, error) {
	if err := orderID.Validate(); err != nil {
		return DispatchCourierCommand{}, err
	}

	return DispatchCourierCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c DispatchCourierCommand) Validate() error {
	return c.guard.Validate(ErrDispatchCourierCommandIsNotConstructed)
}

func (c DispatchCourierCommand) OrderID() kernel.UUID {
	return c.orderID
}
