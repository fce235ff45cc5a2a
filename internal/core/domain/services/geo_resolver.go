package services

import (
	"swiftwash/internal/core/domain/model/city"
	"swiftwash/internal/core/domain/model/kernel"
)

// GeoResolver is a domain service that maps a raw customer address - any
// combination of postal code, free-text city name, and coordinates - to a
// canonical city record and a compass direction relative to that city's
// center.
//
// Resolution order, first success wins:
//  1. Postal-prefix match against the specific cities in table order
//  2. Case-insensitive alias match on the city name
//  3. Nearest city center by great-circle distance to the coordinates
//  4. The table's catch-all record
//
// Resolution never fails: absence of usable input degrades to the
// catch-all city and the default direction (north) rather than an error,
// because order-ID generation must always succeed once an address exists.
//
// GeoResolver is stateless and safe for unlimited concurrent use.
//
// Example usage:
//
//	resolver := services.NewGeoResolver(city.DefaultTable())
//	point, _ := kernel.NewGeoPoint(21.20, 79.10)
//	resolved := resolver.Resolve("440001", "Nagpur", &point)
//	// resolved.City.Code() == "NGP", resolved.Direction per bearing
type GeoResolver struct {
	table city.Table
}

// NewGeoResolver creates a resolver over the given city table.
func NewGeoResolver(table city.Table) GeoResolver {
	return GeoResolver{table: table}
}

// Resolution is the outcome of resolving an address: the matched city and
// the direction of the address relative to that city's center.
type Resolution struct {
	City      city.City
	Direction kernel.Direction
}

// Resolve maps the address inputs to a city and direction. The point is
// optional; pass nil when the address carries no coordinates. See the
// GeoResolver type documentation for the resolution order.
func (r GeoResolver) Resolve(postalCode string, cityName string, point *kernel.GeoPoint) Resolution {
	resolved := r.resolveCity(postalCode, cityName, point)

	direction := kernel.North
	if point != nil {
		if d, err := point.DirectionFrom(resolved.Center()); err == nil {
			direction = d
		}
	}

	return Resolution{City: resolved, Direction: direction}
}

func (r GeoResolver) resolveCity(postalCode string, cityName string, point *kernel.GeoPoint) city.City {
	if c, found := r.table.MatchPostal(postalCode); found {
		return c
	}

	if c, found := r.table.MatchName(cityName); found {
		return c
	}

	if point != nil {
		if c, err := r.table.Nearest(*point); err == nil {
			return c
		}
	}

	return r.table.CatchAll()
}
