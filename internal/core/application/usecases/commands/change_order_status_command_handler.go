package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler applies status changes and hands confirmed
// delivery orders to the courier dispatcher.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatch   CourierDispatchQueue
	logger     *slog.Logger
}

func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	dispatch CourierDispatchQueue,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		dispatch:   dispatch,
		logger:     logger.With("component", "change_order_status"),
	}
}

// Handle commits the new status and returns the updated order. When the order
// now needs a courier it is enqueued after the commit; the outcome of the
// dispatch never affects the result.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.ChangeStatus(cmd.Status()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if o.NeedsCourierDispatch() {
		if !h.dispatch.Enqueue(o.ID()) {
			h.logger.WarnContext(ctx, "courier dispatch was not queued, retry manually",
				"order_id", o.ID().String(),
				"quotation_id", o.QuotationID())
		}
	}

	return o, nil
}
