package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrCourierOrderAlreadyAttached is returned when a second courier order is
	// attached to an order that already has one.
	ErrCourierOrderAlreadyAttached = errs.NewRuleIsViolatedError("courier order is already attached")
)

// Order is the storefront order aggregate. Besides the commerce fields it carries
// the courier integration state:
//   - quotationID: the accepted delivery quotation, set at checkout
//   - deliveryFee: the quoted delivery price
//   - courierOrderID: set once when the courier order is created; its presence
//     prevents any further courier order for this Order
//   - courierStatus and trackingURL mirror the courier's own view
//
// Invariants:
//   - Delivery orders have a destination address and location; pickup orders have none
//   - Only delivery orders carry quotation or courier data
//   - courierOrderID is set at most once
//   - Status transitions follow Status.TransitionTo
type Order struct {
	id            kernel.UUID
	customerName  string
	customerPhone string
	serviceType   ServiceType
	total         decimal.Decimal
	status        Status
	createdAt     time.Time

	deliveryAddress  string
	deliveryLocation *kernel.Location
	deliveryFee      *decimal.Decimal
	quotationID      string
	courierOrderID   string
	courierStatus    string
	trackingURL      string

	isConstructed bool
}

// NewOrder creates a Pending order. Delivery orders additionally need
// SetDestination before they are persisted.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), "Juan Dela Cruz", "09171234567",
//	    order.Delivery, decimal.RequireFromString("450.00"))
//	if err != nil {
//	    return err
//	}
//	err = o.SetDestination("Ayala Ave, Makati", location)
func NewOrder(
	id kernel.UUID,
	customerName string,
	customerPhone string,
	serviceType ServiceType,
	total decimal.Decimal,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerName(customerName),
		o.setCustomerPhone(customerPhone),
		o.setServiceType(serviceType),
		o.setTotal(total),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Snapshot is the full persisted state of an Order, used to rebuild it.
type Snapshot struct {
	ID               kernel.UUID
	CustomerName     string
	CustomerPhone    string
	ServiceType      ServiceType
	Total            decimal.Decimal
	Status           Status
	CreatedAt        time.Time
	DeliveryAddress  string
	DeliveryLocation *kernel.Location
	DeliveryFee      *decimal.Decimal
	QuotationID      string
	CourierOrderID   string
	CourierStatus    string
	TrackingURL      string
}

// RestoreOrder rebuilds an Order from storage, re-checking every invariant.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		createdAt:      s.CreatedAt,
		quotationID:    s.QuotationID,
		courierOrderID: s.CourierOrderID,
		courierStatus:  s.CourierStatus,
		trackingURL:    s.TrackingURL,
		deliveryFee:    s.DeliveryFee,
		isConstructed:  true,
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setCustomerName(s.CustomerName),
		o.setCustomerPhone(s.CustomerPhone),
		o.setServiceType(s.ServiceType),
		o.setTotal(s.Total),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}
	o.status = s.Status

	if s.ServiceType == Delivery && s.DeliveryLocation != nil {
		if err := o.setDestination(s.DeliveryAddress, *s.DeliveryLocation); err != nil {
			return nil, err
		}
	}

	if err := o.validateDeliveryData(); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was built through a constructor and that the
// delivery fields are consistent with its service type.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return o.validateDeliveryData()
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID                    { return o.id }
func (o *Order) CustomerName() string               { return o.customerName }
func (o *Order) CustomerPhone() string              { return o.customerPhone }
func (o *Order) ServiceType() ServiceType           { return o.serviceType }
func (o *Order) Total() decimal.Decimal             { return o.total }
func (o *Order) Status() Status                     { return o.status }
func (o *Order) CreatedAt() time.Time               { return o.createdAt }
func (o *Order) DeliveryAddress() string            { return o.deliveryAddress }
func (o *Order) DeliveryLocation() *kernel.Location { return o.deliveryLocation }
func (o *Order) DeliveryFee() *decimal.Decimal      { return o.deliveryFee }
func (o *Order) QuotationID() string                { return o.quotationID }
func (o *Order) CourierOrderID() string             { return o.courierOrderID }
func (o *Order) CourierStatus() string              { return o.courierStatus }
func (o *Order) TrackingURL() string                { return o.trackingURL }

// HasCourierOrder reports whether a courier order was already created.
func (o *Order) HasCourierOrder() bool {
	return o.courierOrderID != ""
}

// SetDestination records where a delivery order goes. Only allowed while the
// order is still Pending.
func (o *Order) SetDestination(address string, location kernel.Location) error {
	if o.serviceType != Delivery {
		return errs.NewRuleIsViolatedErrorWithCause(
			"destination requires a delivery order",
			fmt.Errorf("order %s is %s", o.id, o.serviceType),
		)
	}
	if o.status != Pending {
		return errs.NewRuleIsViolatedErrorWithCause(
			"destination can only change while pending",
			fmt.Errorf("order %s is %s", o.id, o.status),
		)
	}
	return o.setDestination(address, location)
}

// AttachQuotation stores the quotation accepted at checkout together with its fee.
// It is rejected once a courier order exists.
func (o *Order) AttachQuotation(quotationID string, fee decimal.Decimal) error {
	if o.serviceType != Delivery {
		return errs.NewRuleIsViolatedErrorWithCause(
			"quotation requires a delivery order",
			fmt.Errorf("order %s is %s", o.id, o.serviceType),
		)
	}
	if strings.TrimSpace(quotationID) == "" {
		return errs.NewValueIsRequiredError("quotationId")
	}
	if fee.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("deliveryFee", fmt.Errorf("%s is negative", fee))
	}
	if o.HasCourierOrder() {
		return ErrCourierOrderAlreadyAttached
	}

	o.quotationID = quotationID
	o.deliveryFee = &fee
	return nil
}

// ChangeStatus moves the order along its workflow. Pickup orders never go out
// for delivery.
func (o *Order) ChangeStatus(next Status) error {
	if next == OutForDelivery && o.serviceType == Pickup {
		return errs.NewRuleIsViolatedErrorWithCause(
			"status transition is not allowed",
			fmt.Errorf("pickup order %s cannot be %s", o.id, next),
		)
	}

	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// NeedsCourierDispatch reports whether confirming this order must trigger a
// courier dispatch: it is a confirmed delivery with an accepted quotation and
// no courier order yet.
func (o *Order) NeedsCourierDispatch() bool {
	return o.status == Confirmed && o.CanDispatchCourier()
}

// CanDispatchCourier reports whether a courier order may still be created:
// a delivery with an accepted quotation and no courier order that was
// confirmed and is not completed or cancelled. A dispatch queued on
// confirmation stays valid while the order moves on to preparing or
// out_for_delivery.
func (o *Order) CanDispatchCourier() bool {
	return o.status != Pending &&
		!o.status.IsFinal() &&
		o.serviceType == Delivery &&
		o.quotationID != "" &&
		!o.HasCourierOrder()
}

// AttachCourierOrder records the courier order created for this order. It can
// succeed only once per order.
func (o *Order) AttachCourierOrder(courierOrderID, courierStatus, trackingURL string) error {
	if strings.TrimSpace(courierOrderID) == "" {
		return errs.NewValueIsRequiredError("courierOrderId")
	}
	if o.HasCourierOrder() {
		return ErrCourierOrderAlreadyAttached
	}
	if o.serviceType != Delivery {
		return errs.NewRuleIsViolatedErrorWithCause(
			"courier order requires a delivery order",
			fmt.Errorf("order %s is %s", o.id, o.serviceType),
		)
	}

	o.courierOrderID = courierOrderID
	o.courierStatus = courierStatus
	o.trackingURL = trackingURL
	return nil
}

// UpdateCourierStatus mirrors the courier's latest status. An empty tracking
// URL keeps the previous one.
func (o *Order) UpdateCourierStatus(courierStatus, trackingURL string) error {
	if !o.HasCourierOrder() {
		return errs.NewRuleIsViolatedErrorWithCause(
			"courier status requires a courier order",
			fmt.Errorf("order %s has no courier order", o.id),
		)
	}

	o.courierStatus = courierStatus
	if trackingURL != "" {
		o.trackingURL = trackingURL
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerName = name
	return nil
}

func (o *Order) setCustomerPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return errs.NewValueIsRequiredError("customerPhone")
	}
	o.customerPhone = kernel.NormalizePhone(phone)
	return nil
}

func (o *Order) setServiceType(serviceType ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}
	o.serviceType = serviceType
	return nil
}

func (o *Order) setTotal(total decimal.Decimal) error {
	if total.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("total", fmt.Errorf("%s is negative", total))
	}
	o.total = total
	return nil
}

func (o *Order) setDestination(address string, location kernel.Location) error {
	address = strings.TrimSpace(address)

	var addressErr error
	if address == "" {
		addressErr = errs.NewValueIsRequiredError("deliveryAddress")
	}
	if err := errors.Join(addressErr, location.Validate()); err != nil {
		return err
	}

	o.deliveryAddress = address
	o.deliveryLocation = &location
	return nil
}

func (o *Order) validateDeliveryData() error {
	if o.serviceType == Pickup {
		if o.deliveryLocation != nil || o.quotationID != "" || o.courierOrderID != "" {
			return errs.NewValueIsInvalidErrorWithCause(
				"serviceType",
				fmt.Errorf("pickup order %s carries delivery data", o.id),
			)
		}
		return nil
	}

	if o.deliveryLocation == nil {
		return errs.NewValueIsRequiredError("deliveryLocation")
	}
	return nil
}
