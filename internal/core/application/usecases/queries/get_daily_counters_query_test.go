package queries_test

import (
	"testing"

	"swiftwash/internal/core/application/usecases/queries"
	"swiftwash/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetDailyCountersQuery_Valid(t *testing.T) {
	query, err := queries.NewGetDailyCountersQuery("250829")
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "250829", query.Day())
}

func TestNewGetDailyCountersQuery_EmptyDay(t *testing.T) {
	_, err := queries.NewGetDailyCountersQuery("")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewGetDailyCountersQuery_MalformedDay(t *testing.T) {
	for _, day := range []string{"2025-08-29", "251345", "25082", "abcdef"} {
		_, err := queries.NewGetDailyCountersQuery(day)
		require.Error(t, err, day)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid, day)
	}
}

func TestGetDailyCountersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetDailyCountersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetDailyCountersQueryIsNotConstructed)
}
