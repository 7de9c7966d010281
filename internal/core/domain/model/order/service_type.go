package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// ServiceType tells whether the customer collects the order or a courier brings it.
type ServiceType string

const (
	Delivery ServiceType = "delivery"
	Pickup   ServiceType = "pickup"
)

// ParseServiceType validates the API/persisted representation.
func ParseServiceType(s string) (ServiceType, error) {
	st := ServiceType(s)
	if err := st.Validate(); err != nil {
		return "", err
	}
	return st, nil
}

func (t ServiceType) Validate() error {
	if t != Delivery && t != Pickup {
		return errs.NewValueIsInvalidErrorWithCause("serviceType", fmt.Errorf("%q is not a valid service type", string(t)))
	}
	return nil
}

func (t ServiceType) String() string {
	return string(t)
}
