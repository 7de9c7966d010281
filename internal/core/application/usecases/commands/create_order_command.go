package commands

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// DeliveryDetails is the delivery part of a checkout. QuotationID and
// DeliveryFee come from the quote the customer accepted; an empty QuotationID
// means no courier will be dispatched automatically.
type DeliveryDetails struct {
	Address     string
	Lat         float64
	Lng         float64
	QuotationID string
	DeliveryFee decimal.Decimal
}

// CreateOrderCommand represents a storefront checkout.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), "Juan Dela Cruz", "09171234567",
//	    order.Delivery, decimal.RequireFromString("450"),
//	    &DeliveryDetails{Address: "BGC, Taguig", Lat: 14.5176, Lng: 121.0509,
//	        QuotationID: quote.QuotationID, DeliveryFee: quote.Price})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customerName  string
	customerPhone string
	serviceType   order.ServiceType
	total         decimal.Decimal

	deliveryAddress  string
	deliveryLocation kernel.Location
	quotationID      string
	deliveryFee      decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates a checkout. Delivery orders need details;
// pickup orders must not carry them.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerName string,
	customerPhone string,
	serviceType order.ServiceType,
	total decimal.Decimal,
	details *DeliveryDetails,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		serviceType: serviceType,
		total:       total,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		setRequired(&cmd.customerName, "customerName", customerName),
		setRequired(&cmd.customerPhone, "customerPhone", customerPhone),
		serviceType.Validate(),
		cmd.setDetails(details),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID              { return c.orderID }
func (c CreateOrderCommand) CustomerName() string              { return c.customerName }
func (c CreateOrderCommand) CustomerPhone() string             { return c.customerPhone }
func (c CreateOrderCommand) ServiceType() order.ServiceType    { return c.serviceType }
func (c CreateOrderCommand) Total() decimal.Decimal            { return c.total }
func (c CreateOrderCommand) DeliveryAddress() string           { return c.deliveryAddress }
func (c CreateOrderCommand) DeliveryLocation() kernel.Location { return c.deliveryLocation }
func (c CreateOrderCommand) QuotationID() string               { return c.quotationID }
func (c CreateOrderCommand) DeliveryFee() decimal.Decimal      { return c.deliveryFee }

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setDetails(details *DeliveryDetails) error {
	if c.serviceType == order.Pickup {
		if details != nil {
			return errs.NewValueIsInvalidErrorWithCause("delivery", fmt.Errorf("pickup orders take no delivery details"))
		}
		return nil
	}
	if c.serviceType != order.Delivery {
		return nil
	}
	if details == nil {
		return errs.NewValueIsRequiredError("delivery")
	}

	location, locErr := kernel.NewLocation(details.Lat, details.Lng)
	var addressErr error
	c.deliveryAddress = strings.TrimSpace(details.Address)
	if c.deliveryAddress == "" {
		addressErr = errs.NewValueIsRequiredError("deliveryAddress")
	}
	if err := errors.Join(addressErr, locErr); err != nil {
		return err
	}

	c.deliveryLocation = location
	c.quotationID = strings.TrimSpace(details.QuotationID)
	c.deliveryFee = details.DeliveryFee
	return nil
}
