package queries

import (
	"context"
	"database/sql"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const orderViewColumns = `
	id,
	customer_name,
	customer_phone,
	service_type,
	status,
	total,
	created_at,
	delivery_address,
	delivery_lat,
	delivery_lng,
	delivery_fee,
	lalamove_quotation_id,
	lalamove_order_id,
	lalamove_status,
	lalamove_tracking_url`

// GetOrderQueryHandler reads a single order view.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError for an unknown id.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT`+orderViewColumns+`
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	view, err := scanOrderView(row)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	return view, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderView(row rowScanner) (OrderView, error) {
	var (
		view                     OrderView
		id                       uuid.UUID
		address, quotationID     sql.NullString
		courierID, courierStatus sql.NullString
		trackingURL              sql.NullString
		lat, lng                 sql.NullFloat64
		fee                      decimal.NullDecimal
	)

	err := row.Scan(
		&id,
		&view.CustomerName,
		&view.CustomerPhone,
		&view.ServiceType,
		&view.Status,
		&view.Total,
		&view.CreatedAt,
		&address,
		&lat,
		&lng,
		&fee,
		&quotationID,
		&courierID,
		&courierStatus,
		&trackingURL,
	)
	if err != nil {
		return OrderView{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderView{}, err
	}
	view.ID = orderID

	if lat.Valid && lng.Valid {
		location, locErr := kernel.NewLocation(lat.Float64, lng.Float64)
		if locErr != nil {
			return OrderView{}, locErr
		}
		view.DeliveryLocation = &location
	}
	if fee.Valid {
		view.DeliveryFee = &fee.Decimal
	}

	view.DeliveryAddress = address.String
	view.QuotationID = quotationID.String
	view.CourierOrderID = courierID.String
	view.CourierStatus = courierStatus.String
	view.TrackingURL = trackingURL.String

	return view, nil
}
