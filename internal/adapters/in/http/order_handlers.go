package http

import (
	"context"
	"net/http"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// manualDispatchTimeout bounds an operator dispatch once it has started. The
// courier order is placed even if the operator disconnects.
const manualDispatchTimeout = 30 * time.Second

// CreateOrder handles POST /api/v1/orders - storefront checkout.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	serviceType, err := order.ParseServiceType(req.ServiceType)
	if err != nil {
		return respondError(ctx, err)
	}

	var details *commands.DeliveryDetails
	if req.Delivery != nil {
		details = &commands.DeliveryDetails{
			Address:     req.Delivery.Address,
			Lat:         req.Delivery.Lat,
			Lng:         req.Delivery.Lng,
			QuotationID: req.Delivery.QuotationID,
			DeliveryFee: req.Delivery.DeliveryFee,
		}
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, req.CustomerName, req.CustomerPhone, serviceType, req.Total, details,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if handleErr := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrderFromView(view))
}

// ChangeOrderStatus handles PATCH /api/v1/orders/:id/status. Confirming a
// delivery order queues its courier dispatch; the response does not wait for it.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req ChangeStatusRequest
	if bindErr := ctx.Bind(&req); bindErr != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.handlers.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrderFromAggregate(updated))
}

// GetAwaitingCourierOrders handles GET /api/v1/orders/awaiting-courier - the
// confirmed delivery orders still without a courier.
func (s *Server) GetAwaitingCourierOrders(ctx echo.Context) error {
	views, err := s.handlers.GetAwaitingCourierOrders.Handle(
		ctx.Request().Context(), queries.NewGetAwaitingCourierOrdersQuery(),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Order, len(views))
	for i, view := range views {
		response[i] = newOrderFromView(view)
	}

	return ctx.JSON(http.StatusOK, response)
}

// DispatchCourier handles POST /api/v1/orders/:id/dispatch - an operator retry
// of a failed courier dispatch. It runs synchronously and reports failures.
func (s *Server) DispatchCourier(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDispatchCourierCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	dispatchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx.Request().Context()), manualDispatchTimeout)
	defer cancel()

	courierOrder, err := s.handlers.DispatchCourier.Handle(dispatchCtx, cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newCourierOrderResponse(courierOrder))
}
