package ports

import (
	"context"

	"swiftwash/internal/core/domain/model/kernel"
)

// Address is the raw customer address record consumed from the address
// store. Every field is optional individually; the geo resolver degrades
// gracefully when some are missing. Point is nil when the record carries
// no coordinates.
type Address struct {
	PostalCode string
	CityName   string
	Point      *kernel.GeoPoint
}

// HasUsableInput reports whether the address carries at least one input
// the order ID composer can work with: a postal code or coordinates.
func (a Address) HasUsableInput() bool {
	return a.PostalCode != "" || a.Point != nil
}

// AddressProvider defines the lookup contract for customer addresses.
// The order ID composer reads at most one address per user.
type AddressProvider interface {
	// PrimaryAddress returns the user's primary (first registered)
	// address. Returns an error wrapping errs.ErrObjectNotFound when the
	// user has no address on file, which the caller surfaces as a
	// precondition failure.
	PrimaryAddress(ctx context.Context, userID kernel.UUID) (Address, error)
}
