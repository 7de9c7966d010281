// Package lalamove implements ports.CourierClient against the Lalamove v3 REST
// API: HMAC-signed JSON calls for quotations and orders.
package lalamove

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	// SandboxBaseURL and ProductionBaseURL are selected per call by the store's sandbox flag.
	SandboxBaseURL    = "https://rest.sandbox.lalamove.com"
	ProductionBaseURL = "https://rest.lalamove.com"

	// apiVersion prefixes every path, both on the wire and in the signature.
	apiVersion = "/v3"

	defaultTimeout   = 20 * time.Second
	maxResponseBytes = 1 << 20
)

// Config holds the credentials and endpoints of the aggregator.
type Config struct {
	APIKey            string
	APISecret         string
	Timeout           time.Duration
	SandboxBaseURL    string
	ProductionBaseURL string
}

// Client issues signed requests to the aggregator.
type Client struct {
	signer        *Signer
	http          *http.Client
	sandboxURL    string
	productionURL string
	logger        *slog.Logger
}

// NewClient builds a Client. Empty base URLs fall back to the public hosts and
// a zero timeout to 20 seconds.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	sandboxURL := cfg.SandboxBaseURL
	if sandboxURL == "" {
		sandboxURL = SandboxBaseURL
	}
	productionURL := cfg.ProductionBaseURL
	if productionURL == "" {
		productionURL = ProductionBaseURL
	}

	return &Client{
		signer:        NewSigner(cfg.APIKey, cfg.APISecret, time.Now),
		http:          &http.Client{Timeout: timeout},
		sandboxURL:    sandboxURL,
		productionURL: productionURL,
		logger:        logger.With("component", "lalamove_client"),
	}
}

// RequestQuotation prices the trip described by req.
func (c *Client) RequestQuotation(
	ctx context.Context,
	cfg delivery.StoreConfig,
	req delivery.QuotationRequest,
) (delivery.Quotation, error) {
	var out envelope[quotationDTO]
	payload := envelope[quotationRequestDTO]{Data: fromQuotationRequest(req)}
	if err := c.call(ctx, http.MethodPost, "/quotations", payload, cfg.Market(), cfg.Sandbox(), &out); err != nil {
		return delivery.Quotation{}, err
	}
	return out.Data.toDomain(), nil
}

// GetQuotation fetches a previously issued quotation, including its stop ids.
func (c *Client) GetQuotation(
	ctx context.Context,
	cfg delivery.StoreConfig,
	quotationID string,
) (delivery.Quotation, error) {
	var out envelope[quotationDTO]
	if err := c.call(ctx, http.MethodGet, "/quotations/"+url.PathEscape(quotationID), nil, cfg.Market(), cfg.Sandbox(), &out); err != nil {
		return delivery.Quotation{}, err
	}
	return out.Data.toDomain(), nil
}

// PlaceOrder books a courier for a quotation.
func (c *Client) PlaceOrder(
	ctx context.Context,
	cfg delivery.StoreConfig,
	req delivery.PlaceOrderRequest,
) (delivery.CourierOrder, error) {
	var out envelope[orderDTO]
	payload := envelope[placeOrderRequestDTO]{Data: fromPlaceOrderRequest(req)}
	if err := c.call(ctx, http.MethodPost, "/orders", payload, cfg.Market(), cfg.Sandbox(), &out); err != nil {
		return delivery.CourierOrder{}, err
	}
	return out.Data.toDomain(), nil
}

// GetOrder fetches the current state of a courier order.
func (c *Client) GetOrder(
	ctx context.Context,
	cfg delivery.StoreConfig,
	courierOrderID string,
) (delivery.CourierOrder, error) {
	var out envelope[orderDTO]
	if err := c.call(ctx, http.MethodGet, "/orders/"+url.PathEscape(courierOrderID), nil, cfg.Market(), cfg.Sandbox(), &out); err != nil {
		return delivery.CourierOrder{}, err
	}
	return out.Data.toDomain(), nil
}

// call sends one signed request and decodes a 2xx JSON body into out.
// Every failure, including transport errors and undecodable 2xx bodies,
// is returned as *errs.UpstreamError.
func (c *Client) call(
	ctx context.Context,
	method string,
	path string,
	payload any,
	market string,
	sandbox bool,
	out any,
) error {
	body := ""
	if payload != nil && method != http.MethodGet {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode %s %s payload: %w", method, path, err)
		}
		body = string(raw)
	}

	versionedPath := apiVersion + path
	base := c.productionURL
	if sandbox {
		base = c.sandboxURL
	}

	req, err := http.NewRequestWithContext(ctx, method, base+versionedPath, bytes.NewBufferString(body))
	if err != nil {
		return fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Market", market)
	req.Header.Set("Request-ID", uuid.NewString())
	req.Header.Set("Authorization", c.signer.Authorization(method, versionedPath, body))

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.ErrorContext(ctx, "Courier API call failed", "method", method, "path", versionedPath, "error", err)
		return errs.NewUpstreamErrorWithCause(0, "", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return errs.NewUpstreamErrorWithCause(resp.StatusCode, "", err)
	}

	c.logger.DebugContext(ctx, "Courier API call",
		"method", method,
		"path", versionedPath,
		"status", resp.StatusCode,
		"duration", time.Since(started),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errs.NewUpstreamError(resp.StatusCode, string(raw))
	}

	if err = json.Unmarshal(raw, out); err != nil {
		return errs.NewUpstreamErrorWithCause(resp.StatusCode, string(raw), fmt.Errorf("decode response: %w", err))
	}

	return nil
}
