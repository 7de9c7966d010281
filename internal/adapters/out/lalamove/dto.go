package lalamove

import (
	"strconv"
	"time"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// envelope is the {"data": ...} wrapper used by every request and response.
type envelope[T any] struct {
	Data T `json:"data"`
}

type coordinatesDTO struct {
	Lat string `json:"lat"`
	Lng string `json:"lng"`
}

type stopDTO struct {
	StopID      string         `json:"stopId,omitempty"`
	ID          string         `json:"id,omitempty"`
	Coordinates coordinatesDTO `json:"coordinates"`
	Address     string         `json:"address"`
}

type itemDTO struct {
	Quantity             string   `json:"quantity"`
	Weight               string   `json:"weight"`
	Categories           []string `json:"categories"`
	HandlingInstructions []string `json:"handlingInstructions"`
}

type quotationRequestDTO struct {
	ServiceType string    `json:"serviceType"`
	Language    string    `json:"language"`
	Stops       []stopDTO `json:"stops"`
	Item        itemDTO   `json:"item"`
}

type priceBreakdownDTO struct {
	Total    decimal.Decimal `json:"total"`
	Currency string          `json:"currency"`
}

type quotationDTO struct {
	QuotationID    string            `json:"quotationId"`
	ScheduleAt     *time.Time        `json:"scheduleAt,omitempty"`
	ExpiresAt      time.Time         `json:"expiresAt"`
	PriceBreakdown priceBreakdownDTO `json:"priceBreakdown"`
	Stops          []stopDTO         `json:"stops"`
}

type contactDTO struct {
	StopID  string `json:"stopId"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Remarks string `json:"remarks,omitempty"`
}

type placeOrderRequestDTO struct {
	QuotationID  string            `json:"quotationId"`
	Sender       contactDTO        `json:"sender"`
	Recipients   []contactDTO      `json:"recipients"`
	IsPODEnabled bool              `json:"isPODEnabled"`
	Metadata     map[string]string `json:"metadata,omitempty"`
	ScheduleAt   *time.Time        `json:"scheduleAt,omitempty"`
}

type orderDTO struct {
	OrderID   string `json:"orderId"`
	Status    string `json:"status"`
	ShareLink string `json:"shareLink"`
	DriverID  string `json:"driverId"`
}

func fromQuotationRequest(req delivery.QuotationRequest) quotationRequestDTO {
	stops := make([]stopDTO, len(req.Stops))
	for i, s := range req.Stops {
		stops[i] = stopDTO{
			Coordinates: coordinatesDTO{
				Lat: s.Location.LatString(),
				Lng: s.Location.LngString(),
			},
			Address: s.Address,
		}
	}

	return quotationRequestDTO{
		ServiceType: req.ServiceType,
		Language:    req.Language,
		Stops:       stops,
		Item: itemDTO{
			Quantity:             req.Item.Quantity,
			Weight:               req.Item.Weight,
			Categories:           req.Item.Categories,
			HandlingInstructions: req.Item.HandlingInstructions,
		},
	}
}

func (d quotationDTO) toDomain() delivery.Quotation {
	stops := make([]delivery.Stop, len(d.Stops))
	for i, s := range d.Stops {
		id := s.StopID
		if id == "" {
			id = s.ID
		}
		stops[i] = delivery.Stop{
			ID:       id,
			Location: s.Coordinates.toDomain(),
			Address:  s.Address,
		}
	}

	return delivery.Quotation{
		ID:         d.QuotationID,
		Price:      d.PriceBreakdown.Total,
		Currency:   d.PriceBreakdown.Currency,
		ExpiresAt:  d.ExpiresAt,
		ScheduleAt: d.ScheduleAt,
		Stops:      stops,
	}
}

// toDomain is lenient: unparsable coordinates leave a zero Location since
// response stops are only consulted for their identifiers.
func (c coordinatesDTO) toDomain() kernel.Location {
	lat, latErr := strconv.ParseFloat(c.Lat, 64)
	lng, lngErr := strconv.ParseFloat(c.Lng, 64)
	if latErr != nil || lngErr != nil {
		return kernel.Location{}
	}
	loc, err := kernel.NewLocation(lat, lng)
	if err != nil {
		return kernel.Location{}
	}
	return loc
}

func fromPlaceOrderRequest(req delivery.PlaceOrderRequest) placeOrderRequestDTO {
	recipients := make([]contactDTO, len(req.Recipients))
	for i, r := range req.Recipients {
		recipients[i] = fromContact(r)
	}

	return placeOrderRequestDTO{
		QuotationID:  req.QuotationID,
		Sender:       fromContact(req.Sender),
		Recipients:   recipients,
		IsPODEnabled: req.IsPODEnabled,
		Metadata:     req.Metadata,
		ScheduleAt:   req.ScheduleAt,
	}
}

func fromContact(c delivery.Contact) contactDTO {
	return contactDTO{
		StopID:  c.StopID,
		Name:    c.Name,
		Phone:   c.Phone,
		Remarks: c.Remarks,
	}
}

func (d orderDTO) toDomain() delivery.CourierOrder {
	return delivery.CourierOrder{
		OrderID:   d.OrderID,
		Status:    d.Status,
		ShareLink: d.ShareLink,
		DriverID:  d.DriverID,
	}
}
