package counter_test

import (
	"testing"
	"time"

	"swiftwash/internal/core/domain/model/counter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKey(t *testing.T) {
	t.Run("valid key", func(t *testing.T) {
		key, err := counter.NewKey("NGP", "260829")

		require.NoError(t, err)
		require.NoError(t, key.Validate())
		assert.Equal(t, "NGP", key.CityCode())
		assert.Equal(t, "260829", key.Day())
		assert.Equal(t, "NGP-260829", key.String())
	})

	t.Run("invalid city codes", func(t *testing.T) {
		for _, code := range []string{"", "NG", "NGPX"} {
			_, err := counter.NewKey(code, "260829")
			require.Error(t, err, "code %q", code)
		}
	})

	t.Run("invalid days", func(t *testing.T) {
		for _, day := range []string{"", "2608", "261399", "26aa29"} {
			_, err := counter.NewKey("NGP", day)
			require.Error(t, err, "day %q", day)
		}
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var key counter.Key
		require.Error(t, key.Validate())
	})
}

func TestDay(t *testing.T) {
	t.Run("formats as UTC YYMMDD", func(t *testing.T) {
		moment := time.Date(2026, 8, 29, 15, 4, 5, 0, time.UTC)
		assert.Equal(t, "260829", counter.Day(moment))
	})

	t.Run("converts local times to UTC", func(t *testing.T) {
		// 03:30 IST on Aug 30 is still Aug 29 in UTC.
		ist := time.FixedZone("IST", 5*3600+1800)
		moment := time.Date(2026, 8, 30, 3, 30, 0, 0, ist)
		assert.Equal(t, "260829", counter.Day(moment))
	})
}

func TestFormatSequence(t *testing.T) {
	testCases := []struct {
		value    int
		expected string
	}{
		{1, "001"},
		{42, "042"},
		{999, "999"},
		{1000, "1000"},
		{12345, "12345"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, counter.FormatSequence(tc.value))
	}
}
