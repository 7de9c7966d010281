package queries

import (
	"errors"

	"storefront/internal/pkg/guard"
)

var ErrGetAwaitingCourierOrdersQueryIsNotConstructed = errors.New(
	"GetAwaitingCourierOrdersQuery must be created via NewGetAwaitingCourierOrdersQuery constructor",
)

// GetAwaitingCourierOrdersQuery lists confirmed delivery orders that hold a
// quotation but no courier order: the ones an operator has to dispatch by hand
// after a failed automatic dispatch.
type GetAwaitingCourierOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAwaitingCourierOrdersQuery() GetAwaitingCourierOrdersQuery {
	return GetAwaitingCourierOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAwaitingCourierOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAwaitingCourierOrdersQueryIsNotConstructed)
}
