package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetDailyCountersQueryHandler reads per-city daily volumes from the
// counter table. Cities that generated no orders that day produce no row.
//
// Example:
//
//	handler := NewGetDailyCountersQueryHandler(db)
//	query, _ := NewGetDailyCountersQuery("250829")
//
//	counters, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get daily counters: %v", err)
//	    return err
//	}
type GetDailyCountersQueryHandler struct {
	db *gorm.DB
}

// NewGetDailyCountersQueryHandler creates a handler for daily counter
// queries. Requires a GORM database connection for query execution.
func NewGetDailyCountersQueryHandler(db *gorm.DB) GetDailyCountersQueryHandler {
	return GetDailyCountersQueryHandler{db: db}
}

// Handle executes the query and returns one row per city with activity on
// the queried day, sorted by city code for consistent output.
func (h GetDailyCountersQueryHandler) Handle(
	ctx context.Context,
	query GetDailyCountersQuery,
) ([]GetDailyCountersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	counters := make([]GetDailyCountersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			city_code,
			current_value,
			last_updated_at
		FROM order_counters
		WHERE day = ?
		ORDER BY city_code
	`, query.Day()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var counterResp GetDailyCountersQueryResponse

		err = rows.Scan(
			&counterResp.CityCode,
			&counterResp.Volume,
			&counterResp.LastUpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		counters = append(counters, counterResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counters, nil
}
