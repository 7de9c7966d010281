package ports

import (
	"context"

	"storefront/internal/core/domain/model/delivery"
)

// StoreSettingsRepository reads and writes the persisted site settings the
// delivery configuration is built from.
type StoreSettingsRepository interface {
	// Get builds a fresh StoreConfig from the stored settings. Missing settings
	// yield an errs.ObjectNotFoundError.
	Get(ctx context.Context) (delivery.StoreConfig, error)

	// Save replaces the stored settings.
	Save(ctx context.Context, cfg delivery.StoreConfig) error
}
