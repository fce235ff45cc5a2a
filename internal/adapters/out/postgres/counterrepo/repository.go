package counterrepo

import (
	"context"
	"errors"
	"time"

	"swiftwash/internal/core/domain/model/counter"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCounterRepository implements CounterRepository using GORM.
type GormCounterRepository struct {
	db *gorm.DB
}

// NewGormCounterRepository creates a new GORM counter repository.
func NewGormCounterRepository(db *gorm.DB) *GormCounterRepository {
	return &GormCounterRepository{db: db}
}

// Increment atomically advances the counter for the given key and returns
// the new value. The whole read-increment-write runs as a single INSERT
// ... ON CONFLICT DO UPDATE ... RETURNING statement, so two concurrent
// allocators on the same key can never observe the same value: the row
// lock taken by the first statement serializes the second behind it.
func (r *GormCounterRepository) Increment(ctx context.Context, key counter.Key) (int, error) {
	if err := key.Validate(); err != nil {
		return 0, err
	}

	dto := fromKey(key, time.Now().UTC())
	err := r.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "city_code"}, {Name: "day"}},
				DoUpdates: clause.Assignments(map[string]any{
					"current_value":   gorm.Expr("order_counters.current_value + 1"),
					"last_updated_at": dto.LastUpdatedAt,
				}),
			},
			clause.Returning{Columns: []clause.Column{{Name: "current_value"}}},
		).
		Create(&dto).Error
	if err != nil {
		return 0, err
	}

	return dto.CurrentValue, nil
}

// Current returns the counter's present value without mutating it.
// Returns 0 for a key that has never been incremented.
func (r *GormCounterRepository) Current(ctx context.Context, key counter.Key) (int, error) {
	if err := key.Validate(); err != nil {
		return 0, err
	}

	var dto CounterDTO
	err := r.db.WithContext(ctx).
		First(&dto, "city_code = ? AND day = ?", key.CityCode(), key.Day()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return dto.CurrentValue, nil
}
