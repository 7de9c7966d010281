package ports

import (
	"context"

	"storefront/internal/core/domain/model/delivery"
)

// CourierClient talks to the courier aggregator on behalf of the store
// described by cfg (market and sandbox selection come from it).
// Failures are returned as errs.UpstreamError.
type CourierClient interface {
	RequestQuotation(ctx context.Context, cfg delivery.StoreConfig, req delivery.QuotationRequest) (delivery.Quotation, error)
	GetQuotation(ctx context.Context, cfg delivery.StoreConfig, quotationID string) (delivery.Quotation, error)
	PlaceOrder(ctx context.Context, cfg delivery.StoreConfig, req delivery.PlaceOrderRequest) (delivery.CourierOrder, error)
	GetOrder(ctx context.Context, cfg delivery.StoreConfig, courierOrderID string) (delivery.CourierOrder, error)
}
