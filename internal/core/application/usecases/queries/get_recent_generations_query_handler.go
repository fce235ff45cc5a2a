package queries

import (
	"context"

	"swiftwash/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRecentGenerationsQueryHandler reads the newest audit records from
// the generation trail.
//
// Example:
//
//	handler := NewGetRecentGenerationsQueryHandler(db)
//	query, _ := NewGetRecentGenerationsQuery(20)
//
//	generations, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get recent generations: %v", err)
//	    return err
//	}
type GetRecentGenerationsQueryHandler struct {
	db *gorm.DB
}

// NewGetRecentGenerationsQueryHandler creates a handler for audit trail
// queries. Requires a GORM database connection for query execution.
func NewGetRecentGenerationsQueryHandler(db *gorm.DB) GetRecentGenerationsQueryHandler {
	return GetRecentGenerationsQueryHandler{db: db}
}

// Handle executes the query and returns up to Limit() records, newest
// first.
func (h GetRecentGenerationsQueryHandler) Handle(
	ctx context.Context,
	query GetRecentGenerationsQuery,
) ([]GetRecentGenerationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	generations := make([]GetRecentGenerationsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			city_code,
			direction,
			postal_prefix,
			service_code,
			sequence,
			user_id,
			generated_at,
			postal_code,
			city_name
		FROM order_id_generations
		ORDER BY generated_at DESC
		LIMIT ?
	`, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var generationResp GetRecentGenerationsQueryResponse
		var id, userID uuid.UUID

		err = rows.Scan(
			&id,
			&generationResp.OrderID,
			&generationResp.CityCode,
			&generationResp.Direction,
			&generationResp.PostalPrefix,
			&generationResp.ServiceCode,
			&generationResp.Sequence,
			&userID,
			&generationResp.GeneratedAt,
			&generationResp.PostalCode,
			&generationResp.CityName,
		)
		if err != nil {
			return nil, err
		}

		recordID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		generationResp.ID = recordID

		recordUserID, idErr := kernel.UUIDFromBytes(userID[:])
		if idErr != nil {
			return nil, idErr
		}
		generationResp.UserID = recordUserID

		generations = append(generations, generationResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return generations, nil
}
