package city_test

import (
	"testing"

	"swiftwash/internal/core/domain/model/city"
	"swiftwash/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	center := nagpurCenter(t)
	ngp, err := city.NewCity("440", "NGP", "Nagpur", "MH", center)
	require.NoError(t, err)
	gen, err := city.NewCatchAllCity("GEN", "General", "IN", center)
	require.NoError(t, err)

	t.Run("valid table", func(t *testing.T) {
		table, tableErr := city.NewTable(ngp, gen)
		require.NoError(t, tableErr)
		assert.Len(t, table.Cities(), 2)
		assert.Equal(t, "GEN", table.CatchAll().Code())
	})

	t.Run("catch-all must be last", func(t *testing.T) {
		_, tableErr := city.NewTable(gen, ngp)
		require.Error(t, tableErr)
	})

	t.Run("missing catch-all", func(t *testing.T) {
		pun, punErr := city.NewCity("411", "PUN", "Pune", "MH", center)
		require.NoError(t, punErr)

		_, tableErr := city.NewTable(ngp, pun)
		require.Error(t, tableErr)
	})

	t.Run("duplicate codes", func(t *testing.T) {
		dup, dupErr := city.NewCity("441", "NGP", "Nagpur Rural", "MH", center)
		require.NoError(t, dupErr)

		_, tableErr := city.NewTable(ngp, dup, gen)
		require.Error(t, tableErr)
	})

	t.Run("unconstructed record", func(t *testing.T) {
		_, tableErr := city.NewTable(ngp, city.City{}, gen)
		require.Error(t, tableErr)
	})

	t.Run("too few records", func(t *testing.T) {
		_, tableErr := city.NewTable(gen)
		require.Error(t, tableErr)
	})
}

func TestDefaultTable(t *testing.T) {
	table := city.DefaultTable()

	t.Run("table ordering is part of the data", func(t *testing.T) {
		codes := make([]string, 0, len(table.Cities()))
		for _, c := range table.Cities() {
			codes = append(codes, c.Code())
		}

		assert.Equal(t,
			[]string{"NGP", "PUN", "MUM", "AUR", "NSK", "BLR", "HBL", "HYD", "DEL", "GEN"},
			codes)
	})

	t.Run("catch-all is last and matches anything", func(t *testing.T) {
		catchAll := table.CatchAll()
		assert.Equal(t, "GEN", catchAll.Code())
		assert.True(t, catchAll.IsCatchAll())
		assert.True(t, catchAll.MatchesPostal("999999"))
	})

	t.Run("by code", func(t *testing.T) {
		mumbai, found := table.ByCode("MUM")
		require.True(t, found)
		assert.Equal(t, "Mumbai", mumbai.Name())

		_, found = table.ByCode("XXX")
		assert.False(t, found)
	})
}

func TestTable_MatchPostal(t *testing.T) {
	table := city.DefaultTable()

	testCases := []struct {
		postal   string
		expected string
	}{
		{"440001", "NGP"},
		{"411038", "PUN"},
		{"400050", "MUM"},
		{"431001", "AUR"},
		{"422101", "NSK"},
		{"560034", "BLR"},
		{"580020", "HBL"},
		{"500081", "HYD"},
		{"110001", "DEL"},
	}

	for _, tc := range testCases {
		c, found := table.MatchPostal(tc.postal)
		require.True(t, found, "postal %s", tc.postal)
		assert.Equal(t, tc.expected, c.Code())
	}

	t.Run("unknown postal does not fall through to catch-all here", func(t *testing.T) {
		_, found := table.MatchPostal("999999")
		assert.False(t, found)
	})

	t.Run("empty postal", func(t *testing.T) {
		_, found := table.MatchPostal("")
		assert.False(t, found)
	})
}

func TestTable_MatchName(t *testing.T) {
	table := city.DefaultTable()

	testCases := []struct {
		name     string
		expected string
	}{
		{"Nagpur", "NGP"},
		{"pune city", "PUN"},
		{"Navi Mumbai", "MUM"},
		{"Bangalore", "BLR"},
		{"Bengaluru", "BLR"},
		{"HYDERABAD", "HYD"},
		{"New Delhi", "DEL"},
	}

	for _, tc := range testCases {
		c, found := table.MatchName(tc.name)
		require.True(t, found, "name %s", tc.name)
		assert.Equal(t, tc.expected, c.Code())
	}

	t.Run("cities without aliases are not name-matchable", func(t *testing.T) {
		for _, name := range []string{"Aurangabad", "Nashik", "Hubli"} {
			_, found := table.MatchName(name)
			assert.False(t, found, "name %s", name)
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		_, found := table.MatchName("Chennai")
		assert.False(t, found)
	})
}

func TestTable_Nearest(t *testing.T) {
	table := city.DefaultTable()

	t.Run("point near mumbai resolves to MUM", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(19.10, 72.90)
		require.NoError(t, err)

		c, err := table.Nearest(point)
		require.NoError(t, err)
		assert.Equal(t, "MUM", c.Code())
	})

	t.Run("point at a city center resolves to that city", func(t *testing.T) {
		delhi, found := table.ByCode("DEL")
		require.True(t, found)

		c, err := table.Nearest(delhi.Center())
		require.NoError(t, err)
		assert.Equal(t, "DEL", c.Code())
	})

	t.Run("unconstructed point", func(t *testing.T) {
		var zero kernel.GeoPoint
		_, err := table.Nearest(zero)
		require.Error(t, err)
	})
}
