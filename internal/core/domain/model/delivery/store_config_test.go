package delivery_test

import (
	"testing"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreConfig(t *testing.T) {
	loc, _ := kernel.NewLocation(14.5995, 120.9842)

	t.Run("should trim and upper-case market", func(t *testing.T) {
		cfg, err := delivery.NewStoreConfig(" ph ", "MOTORCYCLE", true, "Kusina", "0281234567", "Ermita, Manila", loc)

		require.NoError(t, err)
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "PH", cfg.Market())
		assert.Equal(t, "en_PH", cfg.Language())
		assert.True(t, cfg.Sandbox())

		origin := cfg.Origin()
		assert.Empty(t, origin.ID)
		assert.Equal(t, "Ermita, Manila", origin.Address)
		assert.True(t, loc.IsEqual(origin.Location))
	})

	t.Run("should report every missing field", func(t *testing.T) {
		_, err := delivery.NewStoreConfig("", "", false, "", "", "", kernel.Location{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		for _, field := range []string{"market", "serviceType", "storeName", "storePhone", "storeAddress", "location"} {
			assert.Contains(t, err.Error(), field)
		}
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		require.ErrorIs(t, delivery.StoreConfig{}.Validate(), delivery.ErrStoreConfigIsNotConstructed)
	})
}
