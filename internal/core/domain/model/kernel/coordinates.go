package kernel

import (
	"errors"
	"fmt"

	"intake/internal/pkg/errs"
	"intake/internal/pkg/guard"
)

const (
	// LatitudeMin is the southernmost valid latitude in degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the northernmost valid latitude in degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the westernmost valid longitude in degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the easternmost valid longitude in degrees.
	LongitudeMax = 180.0
)

// ErrCoordinatesAreNotConstructed is returned when Coordinates were not created via NewCoordinates.
var ErrCoordinatesAreNotConstructed = errs.NewValueIsRequiredError(
	"coordinates must be created via NewCoordinates constructor")

// Coordinates is a WGS84 position reported by the client's geolocation provider.
// It is an immutable value object; the zero value is invalid.
//
// Example:
//
//	pos, err := kernel.NewCoordinates(48.8566, 2.3522)
//	if err != nil {
//	    // latitude or longitude out of range
//	}
//	fmt.Println(pos) // Coordinates(48.856600,2.352200)
type Coordinates struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewCoordinates validates latitude in [LatitudeMin, LatitudeMax] and longitude in
// [LongitudeMin, LongitudeMax]. Both violations are reported together.
func NewCoordinates(latitude, longitude float64) (Coordinates, error) {
	c := Coordinates{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(c.setLatitude(latitude), c.setLongitude(longitude)); err != nil {
		return Coordinates{}, err
	}

	return c, nil
}

// Validate returns ErrCoordinatesAreNotConstructed for the zero value.
func (c Coordinates) Validate() error {
	return c.guard.Validate(ErrCoordinatesAreNotConstructed)
}

// Latitude returns the latitude in degrees.
func (c Coordinates) Latitude() float64 {
	return c.latitude
}

// Longitude returns the longitude in degrees.
func (c Coordinates) Longitude() float64 {
	return c.longitude
}

// String implements fmt.Stringer.
func (c Coordinates) String() string {
	return fmt.Sprintf("Coordinates(%f,%f)", c.latitude, c.longitude)
}

// IsEqual compares two constructed coordinates.
func (c Coordinates) IsEqual(other Coordinates) (bool, error) {
	if err := errors.Join(c.Validate(), other.Validate()); err != nil {
		return false, err
	}
	return c == other, nil
}

func (c *Coordinates) setLatitude(latitude float64) error {
	if latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}
	c.latitude = latitude
	return nil
}

func (c *Coordinates) setLongitude(longitude float64) error {
	if longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}
	c.longitude = longitude
	return nil
}
