package kernel

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

const (
	// LatitudeMin and LatitudeMax bound the WGS84 latitude in degrees.
	LatitudeMin = -90.0
	LatitudeMax = 90.0
	// LongitudeMin and LongitudeMax bound the WGS84 longitude in degrees.
	LongitudeMin = -180.0
	LongitudeMax = 180.0
)

// ErrLocationIsNotConstructed is returned when a zero-value Location is used.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError("location must be created via NewLocation")

// Location is an immutable WGS84 point used for store origins and delivery
// destinations. Coordinates are always finite and within range.
//
// Example:
//
//	loc, err := kernel.NewLocation(14.5547, 121.0244)
//	if err != nil {
//	    // reject the request
//	}
//	fmt.Println(loc.LatString(), loc.LngString()) // 14.5547 121.0244
type Location struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewLocation validates and builds a Location. NaN, infinities and out-of-range
// values are rejected.
func NewLocation(lat float64, lng float64) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setLat(lat), loc.setLng(lng)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Lat returns the latitude in degrees.
func (l Location) Lat() float64 {
	return l.lat
}

// Lng returns the longitude in degrees.
func (l Location) Lng() float64 {
	return l.lng
}

// LatString renders the latitude in the shortest decimal form that round-trips.
func (l Location) LatString() string {
	return strconv.FormatFloat(l.lat, 'f', -1, 64)
}

// LngString renders the longitude in the shortest decimal form that round-trips.
func (l Location) LngString() string {
	return strconv.FormatFloat(l.lng, 'f', -1, 64)
}

// IsEqual compares coordinates exactly.
func (l Location) IsEqual(other Location) bool {
	return l.lat == other.lat && l.lng == other.lng
}

func (l Location) String() string {
	return fmt.Sprintf("Location(%s,%s)", l.LatString(), l.LngString())
}

// Validate reports whether the Location was built through NewLocation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

func (l *Location) setLat(lat float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) {
		return errs.NewValueIsInvalidErrorWithCause("lat", fmt.Errorf("%v is not a finite number", lat))
	}
	if lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("lat", lat, LatitudeMin, LatitudeMax)
	}
	l.lat = lat
	return nil
}

func (l *Location) setLng(lng float64) error {
	if math.IsNaN(lng) || math.IsInf(lng, 0) {
		return errs.NewValueIsInvalidErrorWithCause("lng", fmt.Errorf("%v is not a finite number", lng))
	}
	if lng < LongitudeMin || lng > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("lng", lng, LongitudeMin, LongitudeMax)
	}
	l.lng = lng
	return nil
}
