// Package services provides domain services of the intake wizard that do not belong
// to a single aggregate.
//
// The package includes:
//   - SimulatedRouteEstimator: the fake distance, duration and price shown while the
//     customer fills the form
package services
