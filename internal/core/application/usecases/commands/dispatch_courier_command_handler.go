package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

// ErrCourierDispatchNotNeeded is returned when order.CanDispatchCourier
// reports false for the loaded order.
var ErrCourierDispatchNotNeeded = errs.NewRuleIsViolatedError("courier dispatch is not needed")

// MetadataOrderIDKey carries the storefront order id on courier orders.
const MetadataOrderIDKey = "orderId"

type deliveryOrderCreator interface {
	Handle(ctx context.Context, cmd CreateDeliveryOrderCommand) (delivery.CourierOrder, error)
}

// DispatchCourierCommandHandler books a courier for a confirmed order and
// stores the result on it. The order may have moved on to preparing or
// out_for_delivery since it was confirmed.
type DispatchCourierCommandHandler struct {
	uowFactory OrderUoWFactory
	creator    deliveryOrderCreator
	logger     *slog.Logger
}

func NewDispatchCourierCommandHandler(
	uowFactory OrderUoWFactory,
	creator deliveryOrderCreator,
	logger *slog.Logger,
) DispatchCourierCommandHandler {
	return DispatchCourierCommandHandler{
		uowFactory: uowFactory,
		creator:    creator,
		logger:     logger.With("component", "dispatch_courier"),
	}
}

// Handle re-reads the order and only calls the aggregator when it still has
// no courier order. The courier order is persisted with a conditional write;
// if another dispatch attached one first, order.ErrCourierOrderAlreadyAttached
// is returned and the courier order placed here is left unrecorded.
func (h *DispatchCourierCommandHandler) Handle(ctx context.Context, cmd DispatchCourierCommand) (delivery.CourierOrder, error) {
	if err := cmd.Validate(); err != nil {
		return delivery.CourierOrder{}, err
	}

	orderRepo := h.uowFactory.Create().OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return delivery.CourierOrder{}, err
	}

	log := h.logger.With("order_id", o.ID().String(), "quotation_id", o.QuotationID())

	if !o.CanDispatchCourier() {
		log.InfoContext(ctx, "courier dispatch skipped",
			"status", o.Status().String(),
			"courier_order_id", o.CourierOrderID())
		return delivery.CourierOrder{}, ErrCourierDispatchNotNeeded
	}

	createCmd, err := NewCreateDeliveryOrderCommand(
		o.QuotationID(),
		o.CustomerName(),
		o.CustomerPhone(),
		"",
		"",
		"",
		map[string]string{MetadataOrderIDKey: o.ID().String()},
	)
	if err != nil {
		log.ErrorContext(ctx, "courier dispatch failed", "error", err)
		return delivery.CourierOrder{}, err
	}

	courierOrder, err := h.creator.Handle(ctx, createCmd)
	if err != nil {
		log.ErrorContext(ctx, "courier dispatch failed", "error", err)
		return delivery.CourierOrder{}, fmt.Errorf("create courier order: %w", err)
	}

	if err = o.AttachCourierOrder(courierOrder.OrderID, courierOrder.Status, courierOrder.ShareLink); err != nil {
		log.ErrorContext(ctx, "courier order could not be attached",
			"courier_order_id", courierOrder.OrderID,
			"error", err)
		return courierOrder, err
	}

	if err = orderRepo.AttachCourierOrder(ctx, o); err != nil {
		log.ErrorContext(ctx, "courier order could not be stored",
			"courier_order_id", courierOrder.OrderID,
			"error", err)
		return courierOrder, err
	}

	log.InfoContext(ctx, "courier dispatched",
		"courier_order_id", courierOrder.OrderID,
		"courier_status", courierOrder.Status)

	return courierOrder, nil
}

var _ deliveryOrderCreator = (*CreateDeliveryOrderCommandHandler)(nil)

// IsDispatchSkipped reports whether err only means there was nothing to do.
func IsDispatchSkipped(err error) bool {
	return errors.Is(err, ErrCourierDispatchNotNeeded) || errors.Is(err, order.ErrCourierOrderAlreadyAttached)
}
