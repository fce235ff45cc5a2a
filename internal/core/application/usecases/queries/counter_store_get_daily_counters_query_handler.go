package queries

import (
	"context"
	"sort"

	"swiftwash/internal/core/domain/model/city"
	"swiftwash/internal/core/domain/model/counter"
	"swiftwash/internal/core/ports"
)

// CounterStoreGetDailyCountersQueryHandler reads per-city daily volumes
// straight from the counter store. It serves deployments where sequence
// counters live outside the relational database and the counter table
// therefore never receives rows. Because the store keys counters by city
// and day, the handler walks the serviceable city table and asks the
// store for each city's current value.
//
// LastUpdatedAt is left zero: the counter store tracks values, not
// update timestamps.
type CounterStoreGetDailyCountersQueryHandler struct {
	counters ports.CounterRepository
	table    city.Table
}

// NewCounterStoreGetDailyCountersQueryHandler creates a handler backed
// by the given counter store and city table.
func NewCounterStoreGetDailyCountersQueryHandler(
	counters ports.CounterRepository,
	table city.Table,
) CounterStoreGetDailyCountersQueryHandler {
	return CounterStoreGetDailyCountersQueryHandler{counters: counters, table: table}
}

// Handle returns one row per city with activity on the queried day,
// sorted by city code for consistent output.
func (h CounterStoreGetDailyCountersQueryHandler) Handle(
	ctx context.Context,
	query GetDailyCountersQuery,
) ([]GetDailyCountersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	counters := make([]GetDailyCountersQueryResponse, 0)

	for _, c := range h.table.Cities() {
		key, err := counter.NewKey(c.Code(), query.Day())
		if err != nil {
			return nil, err
		}

		value, err := h.counters.Current(ctx, key)
		if err != nil {
			return nil, err
		}
		if value == 0 {
			continue
		}

		counters = append(counters, GetDailyCountersQueryResponse{
			CityCode: c.Code(),
			Volume:   value,
		})
	}

	sort.Slice(counters, func(i, j int) bool {
		return counters[i].CityCode < counters[j].CityCode
	})

	return counters, nil
}
