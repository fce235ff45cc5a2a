package city

import (
	"swiftwash/internal/core/domain/model/kernel"
	"swiftwash/internal/pkg/errs"
)

// Table is an ordered, immutable list of city records. Order is part of the
// data: postal matching scans the table front to back and the first match
// wins, so more specific cities must precede broader ones. The last record
// must be the single catch-all entry, guaranteeing that every input
// ultimately resolves to some city.
type Table struct {
	cities []City
}

// NewTable builds a table from the given records, validating the ordering
// invariant: at least two records, every record constructed, city codes
// unique, and exactly one catch-all record sitting in the last position.
func NewTable(cities ...City) (Table, error) {
	if len(cities) < 2 {
		return Table{}, errs.NewValueIsInvalidError("cities")
	}

	seen := make(map[string]struct{}, len(cities))
	for i, c := range cities {
		if err := c.Validate(); err != nil {
			return Table{}, err
		}

		if _, dup := seen[c.Code()]; dup {
			return Table{}, errs.NewValueIsInvalidError("cities: duplicate code " + c.Code())
		}
		seen[c.Code()] = struct{}{}

		isLast := i == len(cities)-1
		if c.IsCatchAll() != isLast {
			return Table{}, errs.NewValueIsInvalidError("cities: catch-all record must be the single last entry")
		}
	}

	table := Table{cities: make([]City, len(cities))}
	copy(table.cities, cities)
	return table, nil
}

// Cities returns the records in table order.
func (t Table) Cities() []City {
	out := make([]City, len(t.cities))
	copy(out, t.cities)
	return out
}

// CatchAll returns the final fallback record.
func (t Table) CatchAll() City {
	return t.cities[len(t.cities)-1]
}

// ByCode looks up a record by its canonical code.
func (t Table) ByCode(code string) (City, bool) {
	for _, c := range t.cities {
		if c.Code() == code {
			return c, true
		}
	}
	return City{}, false
}

// MatchPostal returns the first specific (non-catch-all) record whose
// postal prefix matches the given postal code, in table order. The
// catch-all is deliberately excluded here: it applies only after name and
// coordinate matching are exhausted too.
func (t Table) MatchPostal(postalCode string) (City, bool) {
	for _, c := range t.cities {
		if c.IsCatchAll() {
			continue
		}
		if c.MatchesPostal(postalCode) {
			return c, true
		}
	}
	return City{}, false
}

// MatchName returns the first record one of whose aliases appears in the
// given free-text city name, in table order.
func (t Table) MatchName(cityName string) (City, bool) {
	for _, c := range t.cities {
		if c.MatchesName(cityName) {
			return c, true
		}
	}
	return City{}, false
}

// Nearest returns the record whose center minimizes the great-circle
// distance to the given point. Ties break in table order: the first
// encountered minimum wins. The catch-all record participates like any
// other, matching how the production data behaves for points far from
// every service city.
func (t Table) Nearest(point kernel.GeoPoint) (City, error) {
	if err := point.Validate(); err != nil {
		return City{}, err
	}

	nearest := t.cities[0]
	minDistance, err := point.DistanceKm(t.cities[0].Center())
	if err != nil {
		return City{}, err
	}

	for _, c := range t.cities[1:] {
		distance, distErr := point.DistanceKm(c.Center())
		if distErr != nil {
			return City{}, distErr
		}
		if distance < minDistance {
			minDistance = distance
			nearest = c
		}
	}

	return nearest, nil
}

// DefaultTable returns the production city table. Ordering is significant
// and preserved from the service's rollout history: Maharashtra cities
// first, then Karnataka, Telangana, Delhi NCR, and the GEN catch-all last.
// Name aliases exist only for the six cities customers commonly type by
// name; the remaining cities are matched by postal code or coordinates.
func DefaultTable() Table {
	table, err := NewTable(
		mustCity("440", "NGP", "Nagpur", "MH", 21.1458, 79.0882, "nagpur"),
		mustCity("411", "PUN", "Pune", "MH", 18.5204, 73.8567, "pune"),
		mustCity("400", "MUM", "Mumbai", "MH", 19.0760, 72.8777, "mumbai"),
		mustCity("431", "AUR", "Aurangabad", "MH", 19.8762, 75.3433),
		mustCity("422", "NSK", "Nashik", "MH", 19.9975, 73.7898),
		mustCity("560", "BLR", "Bangalore", "KA", 12.9716, 77.5946, "bangalore", "bengaluru"),
		mustCity("580", "HBL", "Hubli", "KA", 15.3647, 75.1240),
		mustCity("500", "HYD", "Hyderabad", "TS", 17.3850, 78.4867, "hyderabad"),
		mustCity("110", "DEL", "Delhi", "DL", 28.7041, 77.1025, "delhi"),
		mustCatchAll("GEN", "General", "IN", 20.5937, 78.9629),
	)
	if err != nil {
		// The default table is static data validated by tests; a failure
		// here is a programming error.
		panic(err)
	}
	return table
}

func mustCity(prefix, code, name, state string, lat, lng float64, aliases ...string) City {
	center, err := kernel.NewGeoPoint(lat, lng)
	if err != nil {
		panic(err)
	}
	c, err := NewCity(prefix, code, name, state, center, aliases...)
	if err != nil {
		panic(err)
	}
	return c
}

func mustCatchAll(code, name, state string, lat, lng float64) City {
	center, err := kernel.NewGeoPoint(lat, lng)
	if err != nil {
		panic(err)
	}
	c, err := NewCatchAllCity(code, name, state, center)
	if err != nil {
		panic(err)
	}
	return c
}
