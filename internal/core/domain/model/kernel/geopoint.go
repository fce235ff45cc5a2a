package kernel

import (
	"errors"
	"fmt"
	"math"

	"swiftwash/internal/pkg/errs"
	"swiftwash/internal/pkg/guard"
)

const (
	// LatitudeMin is the minimum valid latitude in degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the maximum valid latitude in degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the minimum valid longitude in degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the maximum valid longitude in degrees.
	LongitudeMax = 180.0

	// earthRadiusKm is the mean Earth radius used for great-circle distances.
	earthRadiusKm = 6371.0
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly
// initialized GeoPoint. GeoPoints must be created via NewGeoPoint to ensure
// their coordinates are within valid bounds.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint represents a geographic position as a latitude/longitude pair
// in decimal degrees. GeoPoint is an immutable value object; the zero value
// is invalid and fails validation - use NewGeoPoint to create instances.
//
// Example:
//
//	p, err := kernel.NewGeoPoint(21.1458, 79.0882)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Point: %s", p) // Output: GeoPoint(21.145800,79.088200)
type GeoPoint struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint with the supplied coordinates.
// Latitude must be within [-90, 90] and longitude within [-180, 180];
// values outside these bounds produce a validation error.
func NewGeoPoint(latitude float64, longitude float64) (GeoPoint, error) {
	p := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(p.setLatitude(latitude), p.setLongitude(longitude)); err != nil {
		return GeoPoint{}, err
	}

	return p, nil
}

// Validate checks that the GeoPoint was created through NewGeoPoint.
// Returns ErrGeoPointIsNotConstructed for the zero value.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Latitude returns the latitude in decimal degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in decimal degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// String returns a human-readable representation of the point.
// This method implements the fmt.Stringer interface.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%f,%f)", p.latitude, p.longitude)
}

// IsEqual compares two points for equality of both coordinates.
// Both points must be properly constructed for the comparison to succeed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.latitude == other.latitude && p.longitude == other.longitude, nil
}

// DistanceKm calculates the great-circle distance to another point in
// kilometers using the haversine formula with a mean Earth radius of 6371 km.
// Both points must be properly constructed for the calculation to succeed.
//
// Example:
//
//	nagpur, _ := kernel.NewGeoPoint(21.1458, 79.0882)
//	mumbai, _ := kernel.NewGeoPoint(19.0760, 72.8777)
//	km, _ := nagpur.DistanceKm(mumbai) // ≈ 680 km
func (p GeoPoint) DistanceKm(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	dLat := radians(other.latitude - p.latitude)
	dLng := radians(other.longitude - p.longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(p.latitude))*math.Cos(radians(other.latitude))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c, nil
}

// DirectionFrom computes the compass direction of this point relative to a
// center point. The bearing is the planar angle atan2(Δlng, Δlat) - not a
// true geodesic bearing, which is acceptable at city scale - normalized to
// [0, 360) and bucketed into eight 45° sectors centered on the cardinal and
// intercardinal directions.
// Both points must be properly constructed for the computation to succeed.
func (p GeoPoint) DirectionFrom(center GeoPoint) (Direction, error) {
	if err := errors.Join(p.Validate(), center.Validate()); err != nil {
		return North, err
	}

	deltaLat := p.latitude - center.latitude
	deltaLng := p.longitude - center.longitude

	angle := math.Atan2(deltaLng, deltaLat) * (180 / math.Pi)
	if angle < 0 {
		angle += 360
	}

	return directionFromBearing(angle), nil
}

// setLatitude sets the latitude with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, so that construction-time validation stays encapsulated
// in private setters.
func (p *GeoPoint) setLatitude(latitude float64) error {
	if latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}

	p.latitude = latitude
	return nil
}

// setLongitude sets the longitude with validation.
func (p *GeoPoint) setLongitude(longitude float64) error {
	if longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}

	p.longitude = longitude
	return nil
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
