package addressrepo

import (
	"context"
	"errors"

	"swiftwash/internal/core/domain/model/kernel"
	"swiftwash/internal/core/ports"
	"swiftwash/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAddressRepository implements AddressProvider using GORM.
type GormAddressRepository struct {
	db *gorm.DB
}

// NewGormAddressRepository creates a new GORM address repository.
func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

// PrimaryAddress returns the user's first registered address.
// Returns an ObjectNotFoundError when the user has no address on file.
func (r *GormAddressRepository) PrimaryAddress(ctx context.Context, userID kernel.UUID) (ports.Address, error) {
	if err := userID.Validate(); err != nil {
		return ports.Address{}, err
	}

	var dto AddressDTO
	err := r.db.WithContext(ctx).
		Order("created_at").
		First(&dto, "user_id = ?", userID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Address{}, errs.NewObjectNotFoundError("address", userID.String())
		}
		return ports.Address{}, err
	}

	return toDomain(dto)
}
