package settingsrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStoreSettingsRepository implements ports.StoreSettingsRepository using GORM.
type GormStoreSettingsRepository struct {
	db *gorm.DB
}

// NewGormStoreSettingsRepository creates a new GORM settings repository.
func NewGormStoreSettingsRepository(db *gorm.DB) *GormStoreSettingsRepository {
	return &GormStoreSettingsRepository{db: db}
}

// Get reads the settings row and builds a StoreConfig from it. Incomplete
// settings fail StoreConfig validation.
func (r *GormStoreSettingsRepository) Get(ctx context.Context) (delivery.StoreConfig, error) {
	var dto StoreSettingsDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", settingsRowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return delivery.StoreConfig{}, errs.NewObjectNotFoundError("store settings", settingsRowID)
		}
		return delivery.StoreConfig{}, err
	}

	return toDomain(dto)
}

// Save upserts the settings row.
func (r *GormStoreSettingsRepository) Save(ctx context.Context, cfg delivery.StoreConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	dto := fromDomain(cfg)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&dto).Error
}
