package queries

import (
	"errors"
	"time"

	"swiftwash/internal/core/domain/model/kernel"
	"swiftwash/internal/pkg/errs"
	"swiftwash/internal/pkg/guard"
)

var ErrGetRecentGenerationsQueryIsNotConstructed = errors.New(
	"GetRecentGenerationsQuery must be created via NewGetRecentGenerationsQuery constructor",
)

// maxGenerationsLimit caps a single page of audit records.
const maxGenerationsLimit = 100

// GetRecentGenerationsQuery retrieves the most recent order ID generation
// audit records, newest first.
//
// Example:
//
//	query, err := NewGetRecentGenerationsQuery(20)
//	if err != nil {
//	    return err
//	}
//
//	generations, err := handler.Handle(ctx, query)
//	for _, g := range generations {
//	    fmt.Printf("%s generated %s at %s\n", g.UserID, g.OrderID, g.GeneratedAt)
//	}
type GetRecentGenerationsQuery struct { //nolint:recvcheck //using for validation
	limit int

	guard guard.ConstructorGuard
}

// NewGetRecentGenerationsQuery creates a query for the latest audit
// records. The limit must be between 1 and 100.
func NewGetRecentGenerationsQuery(limit int) (GetRecentGenerationsQuery, error) {
	q := GetRecentGenerationsQuery{guard: guard.NewConstructorGuard()}

	if err := q.setLimit(limit); err != nil {
		return GetRecentGenerationsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRecentGenerationsQueryIsNotConstructed if validation fails.
func (q GetRecentGenerationsQuery) Validate() error {
	return q.guard.Validate(ErrGetRecentGenerationsQueryIsNotConstructed)
}

// Limit returns the maximum number of records to return.
func (q GetRecentGenerationsQuery) Limit() int {
	return q.limit
}

func (q *GetRecentGenerationsQuery) setLimit(limit int) error {
	if limit < 1 || limit > maxGenerationsLimit {
		return errs.NewValueIsOutOfRangeError("limit", limit, 1, maxGenerationsLimit)
	}

	q.limit = limit
	return nil
}

// GetRecentGenerationsQueryResponse represents one audit record: the
// generated identifier with its decomposed components plus the request
// context it was generated from.
type GetRecentGenerationsQueryResponse struct {
	ID           kernel.UUID
	OrderID      string
	CityCode     string
	Direction    string
	PostalPrefix string
	ServiceCode  string
	Sequence     string
	UserID       kernel.UUID
	GeneratedAt  time.Time
	PostalCode   string
	CityName     string
}
