package city

import (
	"errors"
	"fmt"
	"strings"

	"swiftwash/internal/core/domain/model/kernel"
	"swiftwash/internal/pkg/errs"
	"swiftwash/internal/pkg/guard"
)

// codeLength is the fixed length of canonical city codes.
const codeLength = 3

// ErrCityIsNotConstructed is returned when attempting to use an improperly
// initialized City. Cities must be created via NewCity or NewCatchAllCity.
var ErrCityIsNotConstructed = errs.NewValueIsRequiredError(
	"city must be created via NewCity or NewCatchAllCity constructors")

// City is an immutable record describing one service city: the postal-code
// prefix that maps to it, its canonical 3-letter code, display name, state,
// reference center coordinates, and the lowercase name aliases it is known
// by. A catch-all city matches any postal code and is used as the final
// resolution fallback.
//
// Example:
//
//	center, _ := kernel.NewGeoPoint(21.1458, 79.0882)
//	nagpur, err := city.NewCity("440", "NGP", "Nagpur", "MH", center, "nagpur")
//	if err != nil {
//	    // Handle validation error
//	}
type City struct { //nolint:recvcheck //using for validation
	postalPrefix string
	code         string
	name         string
	state        string
	center       kernel.GeoPoint
	aliases      []string
	catchAll     bool

	guard guard.ConstructorGuard
}

// NewCity creates a city record matching postal codes with the given prefix.
// The code must be exactly three uppercase letters, the postal prefix and
// name must be non-empty, and the center must be a constructed GeoPoint.
// Aliases are optional lowercase substrings matched against free-text city
// names during resolution.
func NewCity(
	postalPrefix string,
	code string,
	name string,
	state string,
	center kernel.GeoPoint,
	aliases ...string,
) (City, error) {
	c := City{
		state:   state,
		aliases: aliases,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setPostalPrefix(postalPrefix),
		c.setCode(code),
		c.setName(name),
		c.setCenter(center),
	); err != nil {
		return City{}, err
	}

	return c, nil
}

// NewCatchAllCity creates the fallback city record that matches every
// postal code. A table must contain exactly one catch-all record, and it
// must be the last entry so that specific cities are tried first.
func NewCatchAllCity(code string, name string, state string, center kernel.GeoPoint) (City, error) {
	c := City{
		state:    state,
		catchAll: true,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setCode(code),
		c.setName(name),
		c.setCenter(center),
	); err != nil {
		return City{}, err
	}

	return c, nil
}

// Validate checks that the City was created through a constructor.
// Returns ErrCityIsNotConstructed for the zero value.
func (c City) Validate() error {
	return c.guard.Validate(ErrCityIsNotConstructed)
}

// Code returns the canonical 3-letter city code (e.g. "NGP").
func (c City) Code() string {
	return c.code
}

// Name returns the city's display name.
func (c City) Name() string {
	return c.name
}

// State returns the two-letter state abbreviation.
func (c City) State() string {
	return c.state
}

// Center returns the city's reference center used for direction and
// distance computations.
func (c City) Center() kernel.GeoPoint {
	return c.center
}

// PostalPrefix returns the postal-code prefix this city matches.
// Empty for a catch-all city.
func (c City) PostalPrefix() string {
	return c.postalPrefix
}

// IsCatchAll reports whether this record matches any postal code.
func (c City) IsCatchAll() bool {
	return c.catchAll
}

// MatchesPostal reports whether the given postal code maps to this city.
// A catch-all city matches every non-empty postal code.
func (c City) MatchesPostal(postalCode string) bool {
	if postalCode == "" {
		return false
	}
	if c.catchAll {
		return true
	}
	return strings.HasPrefix(postalCode, c.postalPrefix)
}

// MatchesName reports whether the given free-text city name refers to this
// city. Matching is a case-insensitive substring test against the city's
// aliases, mirroring how customer-entered names arrive ("New Nagpur East"
// still matches "nagpur").
func (c City) MatchesName(cityName string) bool {
	if cityName == "" || len(c.aliases) == 0 {
		return false
	}

	lower := strings.ToLower(cityName)
	for _, alias := range c.aliases {
		if strings.Contains(lower, alias) {
			return true
		}
	}
	return false
}

// String returns a human-readable representation of the city record.
// This method implements the fmt.Stringer interface.
func (c City) String() string {
	return fmt.Sprintf("City(%s %s/%s)", c.code, c.name, c.state)
}

// setPostalPrefix sets the postal prefix with validation.
// Note: We intentionally use pointer receivers for these private setters to
// keep construction-time validation self-encapsulated.
func (c *City) setPostalPrefix(postalPrefix string) error {
	if postalPrefix == "" {
		return errs.NewValueIsRequiredError("postalPrefix")
	}

	c.postalPrefix = postalPrefix
	return nil
}

func (c *City) setCode(code string) error {
	if len(code) != codeLength || code != strings.ToUpper(code) {
		return errs.NewValueIsInvalidError("code")
	}

	c.code = code
	return nil
}

func (c *City) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *City) setCenter(center kernel.GeoPoint) error {
	if err := center.Validate(); err != nil {
		return err
	}

	c.center = center
	return nil
}
