package delivery

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrStoreConfigIsNotConstructed = errors.New("StoreConfig must be created via NewStoreConfig constructor")

// StoreConfig is the delivery configuration of the store, rebuilt from the
// persisted site settings for every request and never mutated afterwards.
type StoreConfig struct { //nolint:recvcheck //using for validation
	market        string
	serviceType   string
	sandbox       bool
	storeName     string
	storePhone    string
	storeAddress  string
	storeLocation kernel.Location

	guard guard.ConstructorGuard
}

// NewStoreConfig validates every field required to quote and book deliveries.
func NewStoreConfig(
	market string,
	serviceType string,
	sandbox bool,
	storeName string,
	storePhone string,
	storeAddress string,
	storeLocation kernel.Location,
) (StoreConfig, error) {
	cfg := StoreConfig{
		market:        strings.ToUpper(strings.TrimSpace(market)),
		serviceType:   strings.TrimSpace(serviceType),
		sandbox:       sandbox,
		storeName:     strings.TrimSpace(storeName),
		storePhone:    strings.TrimSpace(storePhone),
		storeAddress:  strings.TrimSpace(storeAddress),
		storeLocation: storeLocation,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		required("market", cfg.market),
		required("serviceType", cfg.serviceType),
		required("storeName", cfg.storeName),
		required("storePhone", cfg.storePhone),
		required("storeAddress", cfg.storeAddress),
		storeLocation.Validate(),
	); err != nil {
		return StoreConfig{}, err
	}

	return cfg, nil
}

func (c StoreConfig) Validate() error {
	return c.guard.Validate(ErrStoreConfigIsNotConstructed)
}

func (c StoreConfig) Market() string                 { return c.market }
func (c StoreConfig) ServiceType() string            { return c.serviceType }
func (c StoreConfig) Sandbox() bool                  { return c.sandbox }
func (c StoreConfig) StoreName() string              { return c.storeName }
func (c StoreConfig) StorePhone() string             { return c.storePhone }
func (c StoreConfig) StoreAddress() string           { return c.storeAddress }
func (c StoreConfig) StoreLocation() kernel.Location { return c.storeLocation }

// Language is the aggregator language tag of the configured market.
func (c StoreConfig) Language() string {
	return LanguageFor(c.market)
}

// Origin is the pickup stop at the store.
func (c StoreConfig) Origin() Stop {
	return Stop{
		Location: c.storeLocation,
		Address:  c.storeAddress,
	}
}

func required(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
