package http

import (
	"errors"
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// PostDelivery handles POST /api/v1/delivery - the courier aggregator proxy.
// Action "quote" prices a delivery, action "order" books one from a quotation.
func (s *Server) PostDelivery(ctx echo.Context) error {
	var req DeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	switch req.Action {
	case actionQuote:
		return s.quote(ctx, req)
	case actionOrder:
		return s.placeDeliveryOrder(ctx, req)
	default:
		return badRequest(ctx, `action must be "quote" or "order"`)
	}
}

func (s *Server) quote(ctx echo.Context, req DeliveryRequest) error {
	if req.DeliveryLat == nil || req.DeliveryLng == nil {
		var latErr, lngErr error
		if req.DeliveryLat == nil {
			latErr = errs.NewValueIsRequiredError("deliveryLat")
		}
		if req.DeliveryLng == nil {
			lngErr = errs.NewValueIsRequiredError("deliveryLng")
		}
		return respondError(ctx, errors.Join(latErr, lngErr))
	}

	cmd, err := commands.NewRequestQuoteCommand(req.DeliveryAddress, *req.DeliveryLat, *req.DeliveryLng)
	if err != nil {
		return respondError(ctx, err)
	}

	quote, err := s.handlers.RequestQuote.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newQuoteResponse(quote))
}

func (s *Server) placeDeliveryOrder(ctx echo.Context, req DeliveryRequest) error {
	cmd, err := commands.NewCreateDeliveryOrderCommand(
		req.QuotationID,
		req.RecipientName,
		req.RecipientPhone,
		req.SenderStopID,
		req.RecipientStopID,
		req.Remarks,
		req.Metadata,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	courierOrder, err := s.handlers.CreateDeliveryOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newCourierOrderResponse(courierOrder))
}
