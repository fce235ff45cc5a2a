package auditrepo

import (
	"context"

	"swiftwash/internal/core/ports"

	"gorm.io/gorm"
)

// GormAuditRepository implements AuditRepository using GORM.
type GormAuditRepository struct {
	db *gorm.DB
}

// NewGormAuditRepository creates a new GORM audit repository.
func NewGormAuditRepository(db *gorm.DB) *GormAuditRepository {
	return &GormAuditRepository{db: db}
}

// Add appends a generation record to the audit trail.
func (r *GormAuditRepository) Add(ctx context.Context, generation ports.Generation) error {
	if err := generation.ID.Validate(); err != nil {
		return err
	}
	if err := generation.OrderID.Validate(); err != nil {
		return err
	}

	dto := fromDomain(generation)
	return r.db.WithContext(ctx).Create(&dto).Error
}
