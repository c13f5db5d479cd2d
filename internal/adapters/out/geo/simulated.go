// Package geo implements ports.ReverseGeocoder.
package geo

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"strconv"

	"intake/internal/core/domain/model/kernel"
	"intake/internal/core/domain/model/order"
	"intake/internal/core/domain/services"
)

const (
	SimulatedStreet = "123 Rue de la Géolocalisation"
	SimulatedCity   = "Votre Ville (Simulée)"

	minPostalCode  = 10000
	postalCodeSpan = 89999
)

type globalRandom struct{}

func (globalRandom) IntN(n int) int { return rand.IntN(n) } //nolint:gosec // fake postal code

// SimulatedReverseGeocoder ignores the position and returns a fixed street and city
// with a random postal code in [10000, 99998].
type SimulatedReverseGeocoder struct {
	random services.RandomSource
	logger *slog.Logger
}

// NewSimulatedReverseGeocoder uses random for the postal code; nil selects math/rand/v2.
func NewSimulatedReverseGeocoder(random services.RandomSource, logger *slog.Logger) SimulatedReverseGeocoder {
	if random == nil {
		random = globalRandom{}
	}
	return SimulatedReverseGeocoder{random: random, logger: logger.With("component", "reverse-geocoder")}
}

func (g SimulatedReverseGeocoder) Reverse(ctx context.Context, position kernel.Coordinates) (order.Address, error) {
	if err := ctx.Err(); err != nil {
		return order.Address{}, err
	}
	if err := position.Validate(); err != nil {
		return order.Address{}, err
	}

	postalCode := strconv.Itoa(minPostalCode + g.random.IntN(postalCodeSpan))
	g.logger.DebugContext(ctx, "position resolved",
		"position", position.String(),
		"postal_code", postalCode)
	return order.NewAddress(SimulatedStreet, SimulatedCity, postalCode), nil
}
