// Package auditrepo provides the data transfer object and repository for
// the order ID generation audit trail. The trail is append-only: records
// are never updated or deleted.
package auditrepo

import (
	"time"

	"swiftwash/internal/core/ports"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// GenerationDTO represents the database structure for one audit record.
// The identifier is stored both fully rendered and decomposed into its
// components, so the trail can be filtered by city, service, or day
// without parsing. The originating address is denormalized into the row.
type GenerationDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      string    `gorm:"uniqueIndex"`
	CityCode     string    `gorm:"size:3;index"`
	Direction    string    `gorm:"size:2"`
	PostalPrefix string
	ServiceCode  string         `gorm:"size:3"`
	Sequence     string
	Flags        pq.StringArray `gorm:"type:text[]"`
	UserID       uuid.UUID      `gorm:"type:uuid;index"`
	GeneratedAt  time.Time      `gorm:"index"`
	PostalCode   string
	CityName     string
	Latitude     *float64
	Longitude    *float64
}

// TableName specifies the database table name for audit records.
// Overrides GORM's default naming convention to use "order_id_generations".
func (GenerationDTO) TableName() string {
	return "order_id_generations"
}

// fromDomain converts a generation record to its database representation.
func fromDomain(generation ports.Generation) GenerationDTO {
	var latitude, longitude *float64
	if point := generation.Address.Point; point != nil {
		lat := point.Latitude()
		lng := point.Longitude()
		latitude = &lat
		longitude = &lng
	}

	id := generation.OrderID

	return GenerationDTO{
		ID:           generation.ID.Bytes(),
		OrderID:      id.String(),
		CityCode:     id.CityCode(),
		Direction:    id.Direction().String(),
		PostalPrefix: id.PostalPrefix(),
		ServiceCode:  id.Service().String(),
		Sequence:     id.Sequence(),
		Flags:        pq.StringArray(id.Flags().Tokens()),
		UserID:       generation.UserID.Bytes(),
		GeneratedAt:  generation.GeneratedAt,
		PostalCode:   generation.Address.PostalCode,
		CityName:     generation.Address.CityName,
		Latitude:     latitude,
		Longitude:    longitude,
	}
}
