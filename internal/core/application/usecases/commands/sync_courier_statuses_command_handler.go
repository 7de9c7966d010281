package commands

import (
	"context"
	"errors"
	"log/slog"

	"storefront/internal/core/ports"
)

// SyncCourierStatusesCommandHandler polls the aggregator for active courier
// orders and mirrors status and share link onto the orders.
type SyncCourierStatusesCommandHandler struct {
	uowFactory OrderUoWFactory
	settings   ports.StoreSettingsRepository
	courier    ports.CourierClient
	logger     *slog.Logger
}

func NewSyncCourierStatusesCommandHandler(
	uowFactory OrderUoWFactory,
	settings ports.StoreSettingsRepository,
	courier ports.CourierClient,
	logger *slog.Logger,
) SyncCourierStatusesCommandHandler {
	return SyncCourierStatusesCommandHandler{
		uowFactory: uowFactory,
		settings:   settings,
		courier:    courier,
		logger:     logger.With("component", "sync_courier_statuses"),
	}
}

// Handle updates each order independently; one failing order does not stop
// the others. The joined errors are returned.
func (h *SyncCourierStatusesCommandHandler) Handle(ctx context.Context, cmd SyncCourierStatusesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	orderRepo := h.uowFactory.Create().OrderRepository()
	orders, err := orderRepo.GetAllWithActiveCourier(ctx)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		return nil
	}

	cfg, err := h.settings.Get(ctx)
	if err != nil {
		return err
	}

	var errs []error
	for _, o := range orders {
		courierOrder, getErr := h.courier.GetOrder(ctx, cfg, o.CourierOrderID())
		if getErr != nil {
			h.logger.WarnContext(ctx, "courier status unavailable",
				"order_id", o.ID().String(),
				"courier_order_id", o.CourierOrderID(),
				"error", getErr)
			errs = append(errs, getErr)
			continue
		}

		if !changed(o.CourierStatus(), o.TrackingURL(), courierOrder.Status, courierOrder.ShareLink) {
			continue
		}

		if err = o.UpdateCourierStatus(courierOrder.Status, courierOrder.ShareLink); err != nil {
			errs = append(errs, err)
			continue
		}
		if err = orderRepo.UpdateCourierStatus(ctx, o); err != nil {
			errs = append(errs, err)
			continue
		}

		h.logger.InfoContext(ctx, "courier status updated",
			"order_id", o.ID().String(),
			"courier_order_id", o.CourierOrderID(),
			"courier_status", courierOrder.Status)
	}

	return errors.Join(errs...)
}

func changed(status, link, newStatus, newLink string) bool {
	if newStatus == "" {
		return false
	}
	return newStatus != status || (newLink != "" && newLink != link)
}
