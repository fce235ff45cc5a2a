// Package counterrepo provides the data transfer object and repository
// for daily sequence counter persistence. The counter table is the source
// of truth for order ID sequence numbers; its increments must stay atomic
// across concurrent allocators on different machines.
package counterrepo

import (
	"time"

	"swiftwash/internal/core/domain/model/counter"
)

// CounterDTO represents the database structure for one daily per-city
// counter. The (city_code, day) pair forms the composite primary key, so
// the upsert in Increment has a unique constraint to conflict on.
type CounterDTO struct {
	CityCode      string `gorm:"primaryKey;size:3"`
	Day           string `gorm:"primaryKey;size:6"`
	CurrentValue  int
	LastUpdatedAt time.Time
}

// TableName specifies the database table name for counter records.
// Overrides GORM's default naming convention to use "order_counters".
func (CounterDTO) TableName() string {
	return "order_counters"
}

// fromKey builds the DTO for a counter's first increment.
func fromKey(key counter.Key, now time.Time) CounterDTO {
	return CounterDTO{
		CityCode:      key.CityCode(),
		Day:           key.Day(),
		CurrentValue:  1,
		LastUpdatedAt: now,
	}
}
