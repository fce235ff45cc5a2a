// Package orderid provides the order identifier domain model: the OrderID
// value object with its decomposed components, the service-type code
// mapping, and the optional flag tokens.
//
// An order identifier encodes, in order: the brand prefix, the canonical
// city code, the compass direction of the pickup address relative to the
// city center, the postal-code prefix, the 3-letter service code, the
// zero-padded daily sequence number, and zero or more flag tokens in a
// fixed order (urgent, referred, student).
//
// Example: SW-NGP-NE-440-WSH-001-URG
//
// OrderIDs are immutable once constructed. Uniqueness within a city and
// day is the sequence allocator's responsibility; this package only
// models and renders the identifier.
package orderid
