package queries

import (
	"context"

	"storefront/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetAwaitingCourierOrdersQueryHandler reads the manual dispatch backlog,
// oldest order first: confirmed, preparing or out_for_delivery delivery orders
// with a quotation and no courier order.
type GetAwaitingCourierOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetAwaitingCourierOrdersQueryHandler(db *gorm.DB) GetAwaitingCourierOrdersQueryHandler {
	return GetAwaitingCourierOrdersQueryHandler{db: db}
}

func (h GetAwaitingCourierOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAwaitingCourierOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT`+orderViewColumns+`
		FROM orders
		WHERE status IN ?
			AND service_type = ?
			AND lalamove_quotation_id IS NOT NULL
			AND lalamove_order_id IS NULL
		ORDER BY created_at, id
	`, dispatchableStatuses(), order.Delivery.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		view, scanErr := scanOrderView(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func dispatchableStatuses() []string {
	statuses := order.DispatchableStatuses()
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.String())
	}
	return names
}
