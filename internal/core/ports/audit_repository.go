package ports

import (
	"context"
	"time"

	"swiftwash/internal/core/domain/model/kernel"
	"swiftwash/internal/core/domain/model/orderid"
)

// Generation is the audit record appended for every generated order
// identifier: the full identifier with its decomposed components, the
// requesting user, the generation timestamp, and the originating address.
type Generation struct {
	ID          kernel.UUID
	OrderID     orderid.OrderID
	UserID      kernel.UUID
	GeneratedAt time.Time
	Address     Address
}

// AuditRepository defines the append-only contract for the order-ID
// generation audit trail. Records are never updated or deleted.
type AuditRepository interface {
	// Add appends a generation record to the audit trail.
	Add(ctx context.Context, generation Generation) error
}
