package orderid

import "strings"

// ServiceCode is the 3-letter token identifying the ordered service type
// inside an order identifier.
type ServiceCode string

const (
	// ServiceIroning covers ironing-only orders.
	ServiceIroning ServiceCode = "IRN"
	// ServiceWash covers wash and regular laundry orders.
	ServiceWash ServiceCode = "WSH"
	// ServiceSwift covers express turnaround orders.
	ServiceSwift ServiceCode = "SFT"
	// ServiceGeneric is the fallback for unrecognized order types.
	ServiceGeneric ServiceCode = "GEN"
)

// ServiceCodeFor maps a customer-facing order type to its code.
// Matching is case-insensitive; unrecognized types map to ServiceGeneric
// rather than failing, since the order type is free text from the apps.
func ServiceCodeFor(orderType string) ServiceCode {
	switch strings.ToLower(orderType) {
	case "ironing", "iron":
		return ServiceIroning
	case "wash", "washing", "laundry":
		return ServiceWash
	case "swift", "express":
		return ServiceSwift
	default:
		return ServiceGeneric
	}
}

// String returns the 3-letter token.
// This method implements the fmt.Stringer interface.
func (s ServiceCode) String() string {
	return string(s)
}
