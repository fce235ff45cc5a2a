package orderid

import (
	"errors"
	"strings"

	"swiftwash/internal/core/domain/model/kernel"
	"swiftwash/internal/pkg/errs"
	"swiftwash/internal/pkg/guard"
)

// prefix is the fixed brand prefix of every order identifier.
const prefix = "SW"

// ErrOrderIDIsNotConstructed is returned when attempting to use an
// improperly initialized OrderID. OrderIDs must be created via NewOrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"order ID must be created via NewOrderID constructor")

// OrderID is the immutable, human-readable order identifier together with
// its decomposed components. The rendered form is
//
//	SW-{cityCode}-{direction}-{postalPrefix}-{serviceCode}-{sequence}[-{flag}...]
//
// Uniqueness is guaranteed within a (city code, date) scope by the
// sequence component; global uniqueness follows because city, date and
// sequence are all encoded in the identifier.
//
// Example:
//
//	id, err := orderid.NewOrderID("NGP", kernel.North, "440",
//	    orderid.ServiceWash, "001", orderid.NewFlags(true, false, false))
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(id) // Output: SW-NGP-N-440-WSH-001-URG
type OrderID struct { //nolint:recvcheck //using for validation
	cityCode     string
	direction    kernel.Direction
	postalPrefix string
	service      ServiceCode
	sequence     string
	flags        Flags

	guard guard.ConstructorGuard
}

// NewOrderID assembles an identifier from its components.
// The city code must be a 3-letter code, the postal prefix non-empty, and
// the sequence a non-empty zero-padded decimal string as issued by the
// sequence allocator.
func NewOrderID(
	cityCode string,
	direction kernel.Direction,
	postalPrefix string,
	service ServiceCode,
	sequence string,
	flags Flags,
) (OrderID, error) {
	id := OrderID{
		direction: direction,
		flags:     flags,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.setCityCode(cityCode),
		id.setPostalPrefix(postalPrefix),
		id.setService(service),
		id.setSequence(sequence),
	); err != nil {
		return OrderID{}, err
	}

	return id, nil
}

// Validate checks that the OrderID was created through NewOrderID.
// Returns ErrOrderIDIsNotConstructed for the zero value.
func (id OrderID) Validate() error {
	return id.guard.Validate(ErrOrderIDIsNotConstructed)
}

// CityCode returns the 3-letter canonical city code component.
func (id OrderID) CityCode() string {
	return id.cityCode
}

// Direction returns the compass direction component.
func (id OrderID) Direction() kernel.Direction {
	return id.direction
}

// PostalPrefix returns the postal-prefix component.
func (id OrderID) PostalPrefix() string {
	return id.postalPrefix
}

// Service returns the service-type component.
func (id OrderID) Service() ServiceCode {
	return id.service
}

// Sequence returns the zero-padded daily sequence component.
func (id OrderID) Sequence() string {
	return id.sequence
}

// Flags returns the optional flag components.
func (id OrderID) Flags() Flags {
	return id.flags
}

// String renders the full dash-delimited identifier.
// This method implements the fmt.Stringer interface.
func (id OrderID) String() string {
	parts := []string{
		prefix,
		id.cityCode,
		id.direction.String(),
		id.postalPrefix,
		id.service.String(),
		id.sequence,
	}
	parts = append(parts, id.flags.Tokens()...)
	return strings.Join(parts, "-")
}

// setCityCode sets the city code with validation.
// Note: We intentionally use pointer receivers for these private setters to
// keep construction-time validation self-encapsulated.
func (id *OrderID) setCityCode(cityCode string) error {
	if len(cityCode) != 3 || cityCode != strings.ToUpper(cityCode) {
		return errs.NewValueIsInvalidError("cityCode")
	}

	id.cityCode = cityCode
	return nil
}

func (id *OrderID) setPostalPrefix(postalPrefix string) error {
	if postalPrefix == "" {
		return errs.NewValueIsRequiredError("postalPrefix")
	}

	id.postalPrefix = postalPrefix
	return nil
}

func (id *OrderID) setService(service ServiceCode) error {
	switch service {
	case ServiceIroning, ServiceWash, ServiceSwift, ServiceGeneric:
		id.service = service
		return nil
	default:
		return errs.NewValueIsInvalidError("service")
	}
}

func (id *OrderID) setSequence(sequence string) error {
	if sequence == "" {
		return errs.NewValueIsRequiredError("sequence")
	}
	for _, r := range sequence {
		if r < '0' || r > '9' {
			return errs.NewValueIsInvalidError("sequence")
		}
	}

	id.sequence = sequence
	return nil
}
