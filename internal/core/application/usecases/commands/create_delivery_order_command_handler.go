package commands

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
)

// CreateDeliveryOrderCommandHandler turns a quotation into a courier order.
// It makes at most one GET /quotations and one POST /orders call and never
// retries.
type CreateDeliveryOrderCommandHandler struct {
	settings ports.StoreSettingsRepository
	courier  ports.CourierClient
	logger   *slog.Logger
	now      func() time.Time
}

// NewCreateDeliveryOrderCommandHandler creates the handler. A nil now uses time.Now.
func NewCreateDeliveryOrderCommandHandler(
	settings ports.StoreSettingsRepository,
	courier ports.CourierClient,
	logger *slog.Logger,
	now func() time.Time,
) CreateDeliveryOrderCommandHandler {
	if now == nil {
		now = time.Now
	}
	return CreateDeliveryOrderCommandHandler{
		settings: settings,
		courier:  courier,
		logger:   logger.With("component", "create_delivery_order"),
		now:      now,
	}
}

// Handle validates the command, resolves stop ids and schedule from the
// quotation when needed, and places the courier order.
//
// Errors are errs validation errors, errs.RuleIsViolatedError for an expired
// or stale quotation or missing stop ids, and errs.UpstreamError for
// aggregator failures.
func (h *CreateDeliveryOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateDeliveryOrderCommand,
) (delivery.CourierOrder, error) {
	if err := cmd.Validate(); err != nil {
		return delivery.CourierOrder{}, err
	}

	cfg, err := h.settings.Get(ctx)
	if err != nil {
		return delivery.CourierOrder{}, err
	}

	senderStopID, recipientStopID := cmd.SenderStopID(), cmd.RecipientStopID()
	var schedule delivery.Schedule

	if !cmd.HasStopIDs() {
		quotation, err := h.courier.GetQuotation(ctx, cfg, cmd.QuotationID())
		if err != nil {
			return delivery.CourierOrder{}, err
		}

		schedule, err = quotation.ResolveSchedule(h.now())
		if err != nil {
			return delivery.CourierOrder{}, err
		}
		if schedule.FarFuture {
			h.logger.WarnContext(ctx, "quotation is scheduled far in the future",
				"quotation_id", quotation.ID,
				"schedule_at", *schedule.At)
		}

		senderStopID, recipientStopID, err = quotation.ResolveStopIDs(senderStopID, recipientStopID)
		if err != nil {
			return delivery.CourierOrder{}, err
		}
	}

	req := delivery.PlaceOrderRequest{
		QuotationID: cmd.QuotationID(),
		Sender: delivery.Contact{
			StopID: senderStopID,
			Name:   cfg.StoreName(),
			Phone:  kernel.NormalizePhone(cfg.StorePhone()),
		},
		Recipients: []delivery.Contact{{
			StopID:  recipientStopID,
			Name:    cmd.RecipientName(),
			Phone:   kernel.NormalizePhone(cmd.RecipientPhone()),
			Remarks: cmd.Remarks(),
		}},
		IsPODEnabled: true,
		Metadata:     cmd.Metadata(),
		ScheduleAt:   schedule.At,
	}

	courierOrder, err := h.courier.PlaceOrder(ctx, cfg, req)
	if err != nil {
		return delivery.CourierOrder{}, err
	}

	h.logger.InfoContext(ctx, "courier order placed",
		"quotation_id", cmd.QuotationID(),
		"courier_order_id", courierOrder.OrderID,
		"courier_status", courierOrder.Status)

	return courierOrder, nil
}
