// Package addressrepo provides the data transfer object and repository
// for customer address lookups. Addresses are written by the customer
// profile flow; the order ID composer only reads them.
package addressrepo

import (
	"time"

	"swiftwash/internal/core/domain/model/kernel"
	"swiftwash/internal/core/ports"

	"github.com/google/uuid"
)

// AddressDTO represents the database structure for one customer address.
// Postal code, city name and coordinates are all individually optional;
// the composer degrades gracefully when some are missing.
type AddressDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;index"`
	PostalCode string
	CityName   string
	Latitude   *float64
	Longitude  *float64
	CreatedAt  time.Time
}

// TableName specifies the database table name for address records.
// Overrides GORM's default naming convention to use "addresses".
func (AddressDTO) TableName() string {
	return "addresses"
}

// toDomain converts a database DTO to the address read model.
// Coordinates map to a GeoPoint only when both are present and valid.
func toDomain(dto AddressDTO) (ports.Address, error) {
	address := ports.Address{
		PostalCode: dto.PostalCode,
		CityName:   dto.CityName,
	}

	if dto.Latitude != nil && dto.Longitude != nil {
		point, err := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if err != nil {
			return ports.Address{}, err
		}
		address.Point = &point
	}

	return address, nil
}
