package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Status represents the lifecycle state of a storefront order.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Preparing ──> OutForDelivery ──> Completed
//	   │            │   └──────────┼──────────────^                ^
//	   │            │              └───────────────────────────────┘ (pickup)
//	   └────────────┴──────────────┴──> Cancelled
//
// Re-applying the current status is accepted as a no-op transition so that
// repeated admin updates stay harmless. Completed and Cancelled are final.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status of a freshly placed order.
	Pending

	// Confirmed means the store accepted the order. For delivery orders this is
	// the point at which a courier is requested.
	Confirmed

	// Preparing means the kitchen is working on the order.
	Preparing

	// OutForDelivery means a courier has picked the order up.
	OutForDelivery

	// Completed means the order was delivered or collected.
	Completed

	// Cancelled means the order was abandoned.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		Confirmed:      "confirmed",
		Preparing:      "preparing",
		OutForDelivery: "out_for_delivery",
		Completed:      "completed",
		Cancelled:      "cancelled",
	}
}

// getTransitions lists the statuses reachable from each non-final status.
func getTransitions() map[Status][]Status {
	//nolint:exhaustive // final and unknown statuses have no outgoing transitions
	return map[Status][]Status{
		Pending:        {Confirmed, Cancelled},
		Confirmed:      {Preparing, OutForDelivery, Cancelled},
		Preparing:      {OutForDelivery, Completed, Cancelled},
		OutForDelivery: {Completed},
	}
}

// ParseStatus converts the persisted/API form ("confirmed") into a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that s is one of the defined statuses other than Unknown.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case name used in storage and the HTTP API.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// DispatchableStatuses lists the statuses in which a missing courier order may
// still be created.
func DispatchableStatuses() []Status {
	return []Status{Confirmed, Preparing, OutForDelivery}
}

// IsFinal reports whether no further transition is possible.
func (s Status) IsFinal() bool {
	return s == Completed || s == Cancelled
}

// TransitionTo returns next when the workflow allows moving from s to next.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s == next {
		return next, nil
	}

	for _, allowed := range getTransitions()[s] {
		if allowed == next {
			return next, nil
		}
	}

	return Unknown, errs.NewRuleIsViolatedErrorWithCause(
		"status transition is not allowed",
		fmt.Errorf("%s cannot move to %s", s, next),
	)
}
