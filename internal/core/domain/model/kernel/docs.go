// Package kernel provides the shared domain primitives of the intake service.
//
// The package includes:
//   - UUID: the identifier value object used for wizard sessions
//   - Coordinates: a validated latitude/longitude pair reported by geolocation
//
// Both are immutable value objects whose zero values fail validation, so they
// must be created through their constructors.
package kernel
