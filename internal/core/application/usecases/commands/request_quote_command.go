package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrRequestQuoteCommandIsNotConstructed = errors.New(
	"RequestQuoteCommand must be created via NewRequestQuoteCommand constructor",
)

// RequestQuoteCommand asks for a delivery price from the store to a customer
// address.
//
// Example:
//
//	cmd, err := NewRequestQuoteCommand("BGC, Taguig", 14.5176, 121.0509)
//	if err != nil {
//	    return err
//	}
//	quote, err := handler.Handle(ctx, cmd)
type RequestQuoteCommand struct { //nolint:recvcheck //using for validation
	deliveryAddress  string
	deliveryLocation kernel.Location

	guard guard.ConstructorGuard
}

// NewRequestQuoteCommand rejects an empty address and non-finite or
// out-of-range coordinates.
func NewRequestQuoteCommand(deliveryAddress string, lat, lng float64) (RequestQuoteCommand, error) {
	cmd := RequestQuoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setDeliveryLocation(lat, lng),
	); err != nil {
		return RequestQuoteCommand{}, err
	}

	return cmd, nil
}

func (c RequestQuoteCommand) Validate() error {
	return c.guard.Validate(ErrRequestQuoteCommandIsNotConstructed)
}

func (c RequestQuoteCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

func (c RequestQuoteCommand) DeliveryLocation() kernel.Location {
	return c.deliveryLocation
}

func (c *RequestQuoteCommand) setDeliveryAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}

	c.deliveryAddress = address
	return nil
}

func (c *RequestQuoteCommand) setDeliveryLocation(lat, lng float64) error {
	location, err := kernel.NewLocation(lat, lng)
	if err != nil {
		return err
	}

	c.deliveryLocation = location
	return nil
}
