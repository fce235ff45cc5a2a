// Package city provides the static service-city data model for the order ID
// service. It implements the City record value object and the ordered Table
// that city resolution runs against.
//
// Key business rules:
//   - The table is ordered; postal matching scans it front to back and the
//     first match wins
//   - The single catch-all record is always last, so every input resolves
//     to some city
//   - City codes are unique 3-letter uppercase abbreviations
//   - Name aliases are lowercase substrings matched case-insensitively
//     against customer-entered city names
//
// The production table is exposed through DefaultTable and is loaded once
// at process start; records are immutable after construction.
package city
