package queries_test

import (
	"testing"

	"swiftwash/internal/core/application/usecases/queries"
	"swiftwash/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetRecentGenerationsQuery_Valid(t *testing.T) {
	query, err := queries.NewGetRecentGenerationsQuery(20)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, 20, query.Limit())
}

func TestNewGetRecentGenerationsQuery_LimitOutOfRange(t *testing.T) {
	for _, limit := range []int{0, -1, 101} {
		_, err := queries.NewGetRecentGenerationsQuery(limit)
		require.Error(t, err, limit)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange, limit)
	}
}

func TestGetRecentGenerationsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetRecentGenerationsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetRecentGenerationsQueryIsNotConstructed)
}
