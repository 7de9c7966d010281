// Package settingsrepo stores the site settings the delivery configuration is
// built from. The table holds a single row.
package settingsrepo

import (
	"time"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"
)

// settingsRowID is the primary key of the only settings row.
const settingsRowID = 1

// StoreSettingsDTO is the store_settings row.
type StoreSettingsDTO struct {
	ID              int    `gorm:"primaryKey;autoIncrement:false"`
	LalamoveMarket  string `gorm:"column:lalamove_market;type:varchar(8);not null"`
	LalamoveService string `gorm:"column:lalamove_service_type;type:varchar(32);not null"`
	LalamoveSandbox bool   `gorm:"column:lalamove_sandbox;not null"`
	StoreName       string `gorm:"not null"`
	StorePhone      string `gorm:"not null"`
	StoreAddress    string `gorm:"not null"`
	StoreLat        float64
	StoreLng        float64
	UpdatedAt       time.Time
}

// TableName specifies the database table name for the settings row.
func (StoreSettingsDTO) TableName() string {
	return "store_settings"
}

func fromDomain(cfg delivery.StoreConfig) StoreSettingsDTO {
	return StoreSettingsDTO{
		ID:              settingsRowID,
		LalamoveMarket:  cfg.Market(),
		LalamoveService: cfg.ServiceType(),
		LalamoveSandbox: cfg.Sandbox(),
		StoreName:       cfg.StoreName(),
		StorePhone:      cfg.StorePhone(),
		StoreAddress:    cfg.StoreAddress(),
		StoreLat:        cfg.StoreLocation().Lat(),
		StoreLng:        cfg.StoreLocation().Lng(),
	}
}

func toDomain(dto StoreSettingsDTO) (delivery.StoreConfig, error) {
	loc, err := kernel.NewLocation(dto.StoreLat, dto.StoreLng)
	if err != nil {
		return delivery.StoreConfig{}, err
	}

	return delivery.NewStoreConfig(
		dto.LalamoveMarket,
		dto.LalamoveService,
		dto.LalamoveSandbox,
		dto.StoreName,
		dto.StorePhone,
		dto.StoreAddress,
		loc,
	)
}
