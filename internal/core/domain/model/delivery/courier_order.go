package delivery

import "time"

// Courier order statuses reported by the aggregator.
const (
	CourierStatusAssigningDriver = "ASSIGNING_DRIVER"
	CourierStatusOnGoing         = "ON_GOING"
	CourierStatusPickedUp        = "PICKED_UP"
	CourierStatusCompleted       = "COMPLETED"
	CourierStatusCanceled        = "CANCELED"
	CourierStatusRejected        = "REJECTED"
	CourierStatusExpired         = "EXPIRED"
)

// FinalCourierStatuses lists the statuses after which the aggregator stops
// updating an order.
func FinalCourierStatuses() []string {
	return []string{CourierStatusCompleted, CourierStatusCanceled, CourierStatusRejected, CourierStatusExpired}
}

// IsFinalCourierStatus reports whether the aggregator will not change the status again.
func IsFinalCourierStatus(status string) bool {
	switch status {
	case CourierStatusCompleted, CourierStatusCanceled, CourierStatusRejected, CourierStatusExpired:
		return true
	default:
		return false
	}
}

// Contact is a person at a stop.
type Contact struct {
	StopID  string
	Name    string
	Phone   string
	Remarks string
}

// PlaceOrderRequest turns a quotation into a courier order. ScheduleAt is only
// set for scheduled deliveries; nil means as soon as possible.
type PlaceOrderRequest struct {
	QuotationID  string
	Sender       Contact
	Recipients   []Contact
	IsPODEnabled bool
	Metadata     map[string]string
	ScheduleAt   *time.Time
}

// CourierOrder is the aggregator-side delivery job. Fields the aggregator
// omitted stay empty.
type CourierOrder struct {
	OrderID   string
	Status    string
	ShareLink string
	DriverID  string
}
