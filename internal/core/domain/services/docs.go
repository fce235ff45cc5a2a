// Package services provides domain services for the order ID service that
// operate across multiple domain entities. It implements logic that doesn't
// naturally belong to a single aggregate root.
//
// The package includes:
//   - GeoResolver: A domain service mapping raw customer addresses to a
//     canonical city record and compass direction
//
// Domain services here are pure and stateless, making them safe for
// unlimited concurrent use without synchronization.
package services
