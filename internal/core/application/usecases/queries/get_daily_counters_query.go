// Package queries contains read-only operations for retrieving system
// state. Implements the Query pattern for read operations in the CQRS
// architecture. Query handlers bypass the domain model and read
// projections straight from the database.
package queries

import (
	"context"
	"errors"
	"time"

	"swiftwash/internal/pkg/errs"
	"swiftwash/internal/pkg/guard"
)

var ErrGetDailyCountersQueryIsNotConstructed = errors.New(
	"GetDailyCountersQuery must be created via NewGetDailyCountersQuery constructor",
)

// dayLayout matches the date component encoded in order identifiers.
const dayLayout = "060102"

// GetDailyCountersQuery retrieves per-city order volumes for one day.
// Each serviceable city that generated at least one order ID on that day
// produces a row with its current sequence value.
//
// Example:
//
//	query, err := NewGetDailyCountersQuery("250829")
//	if err != nil {
//	    return err
//	}
//
//	counters, err := handler.Handle(ctx, query)
//	for _, c := range counters {
//	    fmt.Printf("%s: %d orders\n", c.CityCode, c.Volume)
//	}
type GetDailyCountersQuery struct { //nolint:recvcheck //using for validation
	day string

	guard guard.ConstructorGuard
}

// NewGetDailyCountersQuery creates a query for one day's counters.
// The day must be in YYMMDD form, the same encoding order identifiers use.
func NewGetDailyCountersQuery(day string) (GetDailyCountersQuery, error) {
	q := GetDailyCountersQuery{guard: guard.NewConstructorGuard()}

	if err := q.setDay(day); err != nil {
		return GetDailyCountersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDailyCountersQueryIsNotConstructed if validation fails.
func (q GetDailyCountersQuery) Validate() error {
	return q.guard.Validate(ErrGetDailyCountersQueryIsNotConstructed)
}

// Day returns the queried day in YYMMDD form.
func (q GetDailyCountersQuery) Day() string {
	return q.day
}

func (q *GetDailyCountersQuery) setDay(day string) error {
	if day == "" {
		return errs.NewValueIsRequiredError("day")
	}
	if _, err := time.Parse(dayLayout, day); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("day", err)
	}

	q.day = day
	return nil
}

// GetDailyCountersQueryResponse represents one city's order volume for
// the queried day. LastUpdatedAt is zero when the backing store does not
// track update timestamps.
type GetDailyCountersQueryResponse struct {
	CityCode      string
	Volume        int
	LastUpdatedAt time.Time
}

// DailyCountersReader is the read-model contract for daily counter
// queries. It is satisfied by GetDailyCountersQueryHandler, which reads
// the relational counter table, and by
// CounterStoreGetDailyCountersQueryHandler, which reads the counter
// store directly. Consumers pick neither: the composition root selects
// the implementation matching the configured counter store.
type DailyCountersReader interface {
	Handle(ctx context.Context, query GetDailyCountersQuery) ([]GetDailyCountersQueryResponse, error)
}
