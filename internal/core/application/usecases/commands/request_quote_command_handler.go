package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// QuoteResult is the priced offer returned to the storefront.
type QuoteResult struct {
	QuotationID string
	Price       decimal.Decimal
	Currency    string
	ExpiresAt   time.Time
}

// RequestQuoteCommandHandler prices a trip from the store to the customer.
type RequestQuoteCommandHandler struct {
	settings ports.StoreSettingsRepository
	courier  ports.CourierClient
	logger   *slog.Logger
}

func NewRequestQuoteCommandHandler(
	settings ports.StoreSettingsRepository,
	courier ports.CourierClient,
	logger *slog.Logger,
) RequestQuoteCommandHandler {
	return RequestQuoteCommandHandler{
		settings: settings,
		courier:  courier,
		logger:   logger.With("component", "request_quote"),
	}
}

// Handle builds the two-stop quotation request (store first, customer second)
// and returns the aggregator's offer. A response without a quotation id is an
// upstream failure.
func (h *RequestQuoteCommandHandler) Handle(ctx context.Context, cmd RequestQuoteCommand) (QuoteResult, error) {
	if err := cmd.Validate(); err != nil {
		return QuoteResult{}, err
	}

	cfg, err := h.settings.Get(ctx)
	if err != nil {
		return QuoteResult{}, err
	}

	req := delivery.QuotationRequest{
		ServiceType: cfg.ServiceType(),
		Language:    cfg.Language(),
		Stops: []delivery.Stop{
			cfg.Origin(),
			{Location: cmd.DeliveryLocation(), Address: cmd.DeliveryAddress()},
		},
		Item: delivery.DefaultItem(),
	}

	quotation, err := h.courier.RequestQuotation(ctx, cfg, req)
	if err != nil {
		return QuoteResult{}, err
	}
	if quotation.ID == "" {
		return QuoteResult{}, errs.NewUpstreamErrorWithCause(0, "", errors.New("quotation response has no quotationId"))
	}

	h.logger.InfoContext(ctx, "quotation received",
		"quotation_id", quotation.ID,
		"price", quotation.Price.String(),
		"currency", quotation.Currency,
		"expires_at", quotation.ExpiresAt)

	return QuoteResult{
		QuotationID: quotation.ID,
		Price:       quotation.Price,
		Currency:    quotation.Currency,
		ExpiresAt:   quotation.ExpiresAt,
	}, nil
}
