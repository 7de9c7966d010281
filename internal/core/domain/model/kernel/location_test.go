package kernel_test

import (
	"math"
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocation(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lng     float64
		wantErr error
	}{
		{name: "makati", lat: 14.5547, lng: 121.0244},
		{name: "bounds", lat: 90, lng: -180},
		{name: "origin", lat: 0, lng: 0},
		{name: "nan latitude", lat: math.NaN(), lng: 121, wantErr: errs.ErrValueIsInvalid},
		{name: "infinite longitude", lat: 14, lng: math.Inf(1), wantErr: errs.ErrValueIsInvalid},
		{name: "latitude too high", lat: 90.5, lng: 121, wantErr: errs.ErrValueIsOutOfRange},
		{name: "longitude too low", lat: 14, lng: -181, wantErr: errs.ErrValueIsOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := kernel.NewLocation(tt.lat, tt.lng)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Error(t, loc.Validate())
				return
			}
			require.NoError(t, err)
			require.NoError(t, loc.Validate())
			assert.InDelta(t, tt.lat, loc.Lat(), 0)
			assert.InDelta(t, tt.lng, loc.Lng(), 0)
		})
	}
}

func TestNewLocation_ReportsBothCoordinates(t *testing.T) {
	_, err := kernel.NewLocation(math.NaN(), 500)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "lat")
	assert.Contains(t, err.Error(), "lng")
}

func TestLocation_Strings(t *testing.T) {
	loc, err := kernel.NewLocation(14.554729, 121.0244452)
	require.NoError(t, err)

	assert.Equal(t, "14.554729", loc.LatString())
	assert.Equal(t, "121.0244452", loc.LngString())
	assert.Equal(t, "Location(14.554729,121.0244452)", loc.String())
}

func TestLocation_IsEqual(t *testing.T) {
	a, _ := kernel.NewLocation(14.5, 121.0)
	b, _ := kernel.NewLocation(14.5, 121.0)
	c, _ := kernel.NewLocation(14.6, 121.0)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestLocation_ZeroValueIsInvalid(t *testing.T) {
	var loc kernel.Location
	require.ErrorIs(t, loc.Validate(), kernel.ErrLocationIsNotConstructed)
}
