package delivery

import (
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	// ScheduleTolerance is how far in the past a scheduled pickup may be and
	// still be booked, as an immediate delivery.
	ScheduleTolerance = 10 * time.Minute

	// FarFutureSchedule marks schedules worth surfacing to operators.
	FarFutureSchedule = 24 * time.Hour
)

// Stop is one waypoint of a quotation. ID is assigned by the aggregator and is
// empty on outgoing quotation requests.
type Stop struct {
	ID       string
	Location kernel.Location
	Address  string
}

// QuotationRequest asks the aggregator to price a trip. Stops[0] is the origin.
type QuotationRequest struct {
	ServiceType string
	Language    string
	Stops       []Stop
	Item        Item
}

// Quotation is a priced, time-bounded offer. It is valid in [now, ExpiresAt).
type Quotation struct {
	ID         string
	Price      decimal.Decimal
	Currency   string
	ExpiresAt  time.Time
	ScheduleAt *time.Time
	Stops      []Stop
}

// Schedule is the outcome of ResolveSchedule. At is nil for immediate delivery.
type Schedule struct {
	At        *time.Time
	FarFuture bool
}

// ResolveSchedule decides whether the quotation can still be booked at now:
//   - past ExpiresAt: rejected, a fresh quotation is needed
//   - ScheduleAt in the future: booked for that time (FarFuture past 24h)
//   - ScheduleAt at most ScheduleTolerance in the past: booked as immediate
//   - ScheduleAt further in the past: rejected as stale
//
// A zero ExpiresAt means the aggregator did not report one and is not checked.
func (q Quotation) ResolveSchedule(now time.Time) (Schedule, error) {
	if !q.ExpiresAt.IsZero() && !now.Before(q.ExpiresAt) {
		return Schedule{}, errs.NewRuleIsViolatedErrorWithCause(
			"quotation has expired",
			fmt.Errorf("quotation %s expired at %s, request a new quotation", q.ID, q.ExpiresAt.UTC().Format(time.RFC3339)),
		)
	}

	if q.ScheduleAt == nil {
		return Schedule{}, nil
	}

	at := *q.ScheduleAt
	if at.After(now) {
		return Schedule{
			At:        &at,
			FarFuture: at.Sub(now) > FarFutureSchedule,
		}, nil
	}

	if staleness := now.Sub(at); staleness > ScheduleTolerance {
		return Schedule{}, errs.NewRuleIsViolatedErrorWithCause(
			"quotation schedule is stale",
			fmt.Errorf("quotation %s was scheduled for %s, %s ago, request a new quotation",
				q.ID, at.UTC().Format(time.RFC3339), staleness.Round(time.Second)),
		)
	}

	return Schedule{}, nil
}

// ResolveStopIDs fills whichever of sender and recipient is empty from the
// quotation's first and second stop. Supplied ids are kept. It fails only when
// an id is still empty afterwards.
func (q Quotation) ResolveStopIDs(sender, recipient string) (string, string, error) {
	if sender == "" {
		sender = q.stopID(0)
	}
	if recipient == "" {
		recipient = q.stopID(1)
	}

	if sender == "" || recipient == "" {
		return "", "", errs.NewRuleIsViolatedErrorWithCause(
			"quotation has no usable stop identifiers",
			fmt.Errorf("quotation %s returned %d stops", q.ID, len(q.Stops)),
		)
	}
	return sender, recipient, nil
}

func (q Quotation) stopID(i int) string {
	if i >= len(q.Stops) {
		return ""
	}
	return q.Stops[i].ID
}
