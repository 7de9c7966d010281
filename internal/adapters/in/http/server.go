package http

import (
	"context"
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

type (
	quoteRequester interface {
		Handle(ctx context.Context, cmd commands.RequestQuoteCommand) (commands.QuoteResult, error)
	}

	deliveryOrderCreator interface {
		Handle(ctx context.Context, cmd commands.CreateDeliveryOrderCommand) (delivery.CourierOrder, error)
	}

	orderCreator interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}

	orderStatusChanger interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) (*order.Order, error)
	}

	courierDispatcher interface {
		Handle(ctx context.Context, cmd commands.DispatchCourierCommand) (delivery.CourierOrder, error)
	}

	orderReader interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error)
	}

	awaitingCourierReader interface {
		Handle(ctx context.Context, query queries.GetAwaitingCourierOrdersQuery) ([]queries.OrderView, error)
	}
)

// Handlers groups the use cases the HTTP server delegates to.
type Handlers struct {
	// Command handlers
	RequestQuote        quoteRequester
	CreateDeliveryOrder deliveryOrderCreator
	CreateOrder         orderCreator
	ChangeOrderStatus   orderStatusChanger
	DispatchCourier     courierDispatcher

	// Query handlers
	GetOrder                 orderReader
	GetAwaitingCourierOrders awaitingCourierReader
}

// Server handles the storefront's HTTP requests and coordinates between them
// and the application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterHandlers mounts every route of the server on e.
func RegisterHandlers(e *echo.Echo, s *Server) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/delivery", s.PostDelivery)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/awaiting-courier", s.GetAwaitingCourierOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id/status", s.ChangeOrderStatus)
	api.POST("/orders/:id/dispatch", s.DispatchCourier)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
