// Package orderrepo persists the order aggregate with GORM, mapping it to the
// orders table and back.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders row. Delivery-only columns are nullable; courier
// columns keep their lalamove_ names since the storefront schema shares them.
type OrderDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerName  string          `gorm:"not null"`
	CustomerPhone string          `gorm:"not null"`
	ServiceType   string          `gorm:"type:varchar(16);not null"`
	Status        string          `gorm:"type:varchar(32);not null;index"`
	Total         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt     time.Time

	DeliveryAddress *string
	DeliveryLat     *float64
	DeliveryLng     *float64
	DeliveryFee     decimal.NullDecimal `gorm:"type:numeric(12,2)"`

	LalamoveQuotationID *string `gorm:"column:lalamove_quotation_id"`
	LalamoveOrderID     *string `gorm:"column:lalamove_order_id;uniqueIndex"`
	LalamoveStatus      *string `gorm:"column:lalamove_status"`
	LalamoveTrackingURL *string `gorm:"column:lalamove_tracking_url"`
}

// TableName specifies the database table name for order rows.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:                  o.ID().Bytes(),
		CustomerName:        o.CustomerName(),
		CustomerPhone:       o.CustomerPhone(),
		ServiceType:         o.ServiceType().String(),
		Status:              o.Status().String(),
		Total:               o.Total(),
		CreatedAt:           o.CreatedAt(),
		LalamoveQuotationID: nullable(o.QuotationID()),
		LalamoveOrderID:     nullable(o.CourierOrderID()),
		LalamoveStatus:      nullable(o.CourierStatus()),
		LalamoveTrackingURL: nullable(o.TrackingURL()),
	}

	if loc := o.DeliveryLocation(); loc != nil {
		lat, lng := loc.Lat(), loc.Lng()
		dto.DeliveryLat = &lat
		dto.DeliveryLng = &lng
		dto.DeliveryAddress = nullable(o.DeliveryAddress())
	}
	if fee := o.DeliveryFee(); fee != nil {
		dto.DeliveryFee = decimal.NewNullDecimal(*fee)
	}

	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	serviceType, err := order.ParseServiceType(dto.ServiceType)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	snapshot := order.Snapshot{
		ID:              id,
		CustomerName:    dto.CustomerName,
		CustomerPhone:   dto.CustomerPhone,
		ServiceType:     serviceType,
		Total:           dto.Total,
		Status:          status,
		CreatedAt:       dto.CreatedAt,
		DeliveryAddress: deref(dto.DeliveryAddress),
		QuotationID:     deref(dto.LalamoveQuotationID),
		CourierOrderID:  deref(dto.LalamoveOrderID),
		CourierStatus:   deref(dto.LalamoveStatus),
		TrackingURL:     deref(dto.LalamoveTrackingURL),
	}

	if dto.DeliveryLat != nil && dto.DeliveryLng != nil {
		loc, locErr := kernel.NewLocation(*dto.DeliveryLat, *dto.DeliveryLng)
		if locErr != nil {
			return nil, locErr
		}
		snapshot.DeliveryLocation = &loc
	}
	if dto.DeliveryFee.Valid {
		fee := dto.DeliveryFee.Decimal
		snapshot.DeliveryFee = &fee
	}

	return order.RestoreOrder(snapshot)
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
