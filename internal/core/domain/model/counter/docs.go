// Package counter models the daily sequence counters that make order
// identifiers unique. A counter is a persisted monotonic integer scoped to
// one city and one UTC calendar day, identified by a Key and mutated only
// through the atomic allocation operation exposed by the counter
// repository port.
//
// Counters are created lazily on first allocation for a (city, day) pair
// and retained indefinitely for audit purposes.
package counter
