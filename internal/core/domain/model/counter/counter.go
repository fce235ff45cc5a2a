package counter

import (
	"errors"
	"fmt"
	"time"

	"swiftwash/internal/pkg/errs"
	"swiftwash/internal/pkg/guard"
)

// dayLayout is the YYMMDD calendar-day layout used in counter keys.
// Days are always computed in UTC so every process in the fleet agrees on
// when a city's sequence resets.
const dayLayout = "060102"

// ErrKeyIsNotConstructed is returned when attempting to use an improperly
// initialized Key. Keys must be created via NewKey.
var ErrKeyIsNotConstructed = errs.NewValueIsRequiredError(
	"counter key must be created via NewKey constructor")

// Key identifies one daily sequence counter: the pair of a canonical city
// code and a UTC calendar day. Each key owns an independent, monotonically
// increasing series starting at 1.
//
// Example:
//
//	key, err := counter.NewKey("NGP", counter.Day(time.Now()))
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(key) // Output: NGP-260829
type Key struct { //nolint:recvcheck //using for validation
	cityCode string
	day      string

	guard guard.ConstructorGuard
}

// Day formats a point in time as the UTC YYMMDD day stamp used in keys.
func Day(t time.Time) string {
	return t.UTC().Format(dayLayout)
}

// NewKey creates a counter key from a 3-letter city code and a YYMMDD day
// stamp as produced by Day.
func NewKey(cityCode string, day string) (Key, error) {
	k := Key{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(k.setCityCode(cityCode), k.setDay(day)); err != nil {
		return Key{}, err
	}

	return k, nil
}

// Validate checks that the Key was created through NewKey.
// Returns ErrKeyIsNotConstructed for the zero value.
func (k Key) Validate() error {
	return k.guard.Validate(ErrKeyIsNotConstructed)
}

// CityCode returns the canonical city code component.
func (k Key) CityCode() string {
	return k.cityCode
}

// Day returns the YYMMDD day component.
func (k Key) Day() string {
	return k.day
}

// String renders the persisted key form "{cityCode}-{day}".
// This method implements the fmt.Stringer interface.
func (k Key) String() string {
	return fmt.Sprintf("%s-%s", k.cityCode, k.day)
}

// FormatSequence renders an allocated sequence value as the zero-padded
// decimal string embedded in order identifiers. Values are padded to three
// digits; beyond 999 the field simply grows wider, it is never truncated.
func FormatSequence(value int) string {
	return fmt.Sprintf("%03d", value)
}

// setCityCode sets the city code with validation.
// Note: We intentionally use pointer receivers for these private setters to
// keep construction-time validation self-encapsulated.
func (k *Key) setCityCode(cityCode string) error {
	if len(cityCode) != 3 {
		return errs.NewValueIsInvalidError("cityCode")
	}

	k.cityCode = cityCode
	return nil
}

func (k *Key) setDay(day string) error {
	if _, err := time.Parse(dayLayout, day); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("day", err)
	}

	k.day = day
	return nil
}
