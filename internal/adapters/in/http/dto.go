package http

import (
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

const (
	actionQuote = "quote"
	actionOrder = "order"
)

// DeliveryRequest is the body of POST /api/v1/delivery. Action selects which
// of the remaining fields are read.
type DeliveryRequest struct {
	Action string `json:"action"`

	// quote
	DeliveryAddress string   `json:"deliveryAddress"`
	DeliveryLat     *float64 `json:"deliveryLat"`
	DeliveryLng     *float64 `json:"deliveryLng"`

	// order
	QuotationID     string            `json:"quotationId"`
	RecipientName   string            `json:"recipientName"`
	RecipientPhone  string            `json:"recipientPhone"`
	SenderStopID    string            `json:"senderStopId,omitempty"`
	RecipientStopID string            `json:"recipientStopId,omitempty"`
	Remarks         string            `json:"remarks,omitempty"`
	Metadata        map[string]string `json:"metadata,omitempty"`
}

type QuoteResponse struct {
	QuotationID string          `json:"quotationId"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`
	ExpiresAt   *time.Time      `json:"expiresAt"`
}

func newQuoteResponse(q commands.QuoteResult) QuoteResponse {
	resp := QuoteResponse{
		QuotationID: q.QuotationID,
		Price:       q.Price,
		Currency:    q.Currency,
	}
	if !q.ExpiresAt.IsZero() {
		expiresAt := q.ExpiresAt
		resp.ExpiresAt = &expiresAt
	}
	return resp
}

type CourierOrderResponse struct {
	OrderID   string `json:"orderId"`
	Status    string `json:"status"`
	ShareLink string `json:"shareLink"`
	DriverID  string `json:"driverId"`
}

func newCourierOrderResponse(o delivery.CourierOrder) CourierOrderResponse {
	return CourierOrderResponse{
		OrderID:   o.OrderID,
		Status:    o.Status,
		ShareLink: o.ShareLink,
		DriverID:  o.DriverID,
	}
}

// NewOrderRequest is the body of POST /api/v1/orders. Delivery is required for
// delivery orders and must be absent for pickup orders.
type NewOrderRequest struct {
	CustomerName  string          `json:"customerName"`
	CustomerPhone string          `json:"customerPhone"`
	ServiceType   string          `json:"serviceType"`
	Total         decimal.Decimal `json:"total"`
	Delivery      *struct {
		Address     string          `json:"address"`
		Lat         float64         `json:"lat"`
		Lng         float64         `json:"lng"`
		QuotationID string          `json:"quotationId"`
		DeliveryFee decimal.Decimal `json:"deliveryFee"`
	} `json:"delivery"`
}

type ChangeStatusRequest struct {
	Status string `json:"status"`
}

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Order struct {
	ID              string           `json:"id"`
	CustomerName    string           `json:"customerName"`
	CustomerPhone   string           `json:"customerPhone"`
	ServiceType     string           `json:"serviceType"`
	Status          string           `json:"status"`
	Total           decimal.Decimal  `json:"total"`
	CreatedAt       time.Time        `json:"createdAt"`
	DeliveryAddress string           `json:"deliveryAddress,omitempty"`
	Location        *Location        `json:"location,omitempty"`
	DeliveryFee     *decimal.Decimal `json:"deliveryFee,omitempty"`
	QuotationID     string           `json:"lalamoveQuotationId,omitempty"`
	CourierOrderID  string           `json:"lalamoveOrderId,omitempty"`
	CourierStatus   string           `json:"lalamoveStatus,omitempty"`
	TrackingURL     string           `json:"lalamoveTrackingUrl,omitempty"`
}

func newOrderFromView(v queries.OrderView) Order {
	o := Order{
		ID:              v.ID.String(),
		CustomerName:    v.CustomerName,
		CustomerPhone:   v.CustomerPhone,
		ServiceType:     v.ServiceType,
		Status:          v.Status,
		Total:           v.Total,
		CreatedAt:       v.CreatedAt,
		DeliveryAddress: v.DeliveryAddress,
		DeliveryFee:     v.DeliveryFee,
		QuotationID:     v.QuotationID,
		CourierOrderID:  v.CourierOrderID,
		CourierStatus:   v.CourierStatus,
		TrackingURL:     v.TrackingURL,
	}
	if v.DeliveryLocation != nil {
		o.Location = &Location{Lat: v.DeliveryLocation.Lat(), Lng: v.DeliveryLocation.Lng()}
	}
	return o
}

func newOrderFromAggregate(a *order.Order) Order {
	o := Order{
		ID:              a.ID().String(),
		CustomerName:    a.CustomerName(),
		CustomerPhone:   a.CustomerPhone(),
		ServiceType:     a.ServiceType().String(),
		Status:          a.Status().String(),
		Total:           a.Total(),
		CreatedAt:       a.CreatedAt(),
		DeliveryAddress: a.DeliveryAddress(),
		DeliveryFee:     a.DeliveryFee(),
		QuotationID:     a.QuotationID(),
		CourierOrderID:  a.CourierOrderID(),
		CourierStatus:   a.CourierStatus(),
		TrackingURL:     a.TrackingURL(),
	}
	if loc := a.DeliveryLocation(); loc != nil {
		o.Location = &Location{Lat: loc.Lat(), Lng: loc.Lng()}
	}
	return o
}
