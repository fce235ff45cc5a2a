package city_test

import (
	"testing"

	"swiftwash/internal/core/domain/model/city"
	"swiftwash/internal/core/domain/model/kernel"
	"swiftwash/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nagpurCenter(t *testing.T) kernel.GeoPoint {
	t.Helper()
	center, err := kernel.NewGeoPoint(21.1458, 79.0882)
	require.NoError(t, err)
	return center
}

func TestNewCity(t *testing.T) {
	t.Run("valid city", func(t *testing.T) {
		c, err := city.NewCity("440", "NGP", "Nagpur", "MH", nagpurCenter(t), "nagpur")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "NGP", c.Code())
		assert.Equal(t, "Nagpur", c.Name())
		assert.Equal(t, "MH", c.State())
		assert.Equal(t, "440", c.PostalPrefix())
		assert.False(t, c.IsCatchAll())
	})

	t.Run("empty postal prefix", func(t *testing.T) {
		_, err := city.NewCity("", "NGP", "Nagpur", "MH", nagpurCenter(t))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid codes", func(t *testing.T) {
		for _, code := range []string{"", "NG", "NGPX", "ngp"} {
			_, err := city.NewCity("440", code, "Nagpur", "MH", nagpurCenter(t))
			require.Error(t, err, "code %q", code)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("unconstructed center", func(t *testing.T) {
		var zero kernel.GeoPoint
		_, err := city.NewCity("440", "NGP", "Nagpur", "MH", zero)

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var c city.City
		require.Error(t, c.Validate())
	})
}

func TestCity_MatchesPostal(t *testing.T) {
	c, err := city.NewCity("440", "NGP", "Nagpur", "MH", nagpurCenter(t))
	require.NoError(t, err)

	assert.True(t, c.MatchesPostal("440001"))
	assert.True(t, c.MatchesPostal("440"))
	assert.False(t, c.MatchesPostal("441001"))
	assert.False(t, c.MatchesPostal(""))

	t.Run("catch-all matches any non-empty postal code", func(t *testing.T) {
		catchAll, caErr := city.NewCatchAllCity("GEN", "General", "IN", nagpurCenter(t))
		require.NoError(t, caErr)

		assert.True(t, catchAll.MatchesPostal("999999"))
		assert.False(t, catchAll.MatchesPostal(""))
	})
}

func TestCity_MatchesName(t *testing.T) {
	c, err := city.NewCity("560", "BLR", "Bangalore", "KA", nagpurCenter(t), "bangalore", "bengaluru")
	require.NoError(t, err)

	assert.True(t, c.MatchesName("Bangalore"))
	assert.True(t, c.MatchesName("bengaluru urban"))
	assert.True(t, c.MatchesName("Greater BENGALURU"))
	assert.False(t, c.MatchesName("Mysore"))
	assert.False(t, c.MatchesName(""))

	t.Run("city without aliases never matches by name", func(t *testing.T) {
		noAlias, naErr := city.NewCity("431", "AUR", "Aurangabad", "MH", nagpurCenter(t))
		require.NoError(t, naErr)

		assert.False(t, noAlias.MatchesName("Aurangabad"))
	})
}
