package kernel

// Direction represents one of the eight compass sectors used to describe
// an address's position relative to its city center. The zero value is
// North, which is also the defined default when no coordinates are
// available for a direction computation.
type Direction int

const (
	// North is the sector centered on a bearing of 0°.
	North Direction = iota
	// NorthEast is the sector centered on a bearing of 45°.
	NorthEast
	// East is the sector centered on a bearing of 90°.
	East
	// SouthEast is the sector centered on a bearing of 135°.
	SouthEast
	// South is the sector centered on a bearing of 180°.
	South
	// SouthWest is the sector centered on a bearing of 225°.
	SouthWest
	// West is the sector centered on a bearing of 270°.
	West
	// NorthWest is the sector centered on a bearing of 315°.
	NorthWest
)

var directionCodes = [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// String returns the short compass code for the direction ("N", "NE", ...).
// Unknown values render as "N" so a direction is always printable.
// This method implements the fmt.Stringer interface.
func (d Direction) String() string {
	if d < North || d > NorthWest {
		return directionCodes[North]
	}
	return directionCodes[d]
}

// directionFromBearing buckets a bearing in [0, 360) degrees into one of
// the eight sectors. Sector boundaries are offset by 22.5° so that North
// is centered on 0°.
func directionFromBearing(angle float64) Direction {
	sector := int((angle+22.5)/45) % 8
	return Direction(sector)
}
