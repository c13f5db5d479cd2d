package services

import (
	"math"
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"

	"intake/internal/core/domain/model/order"
	"intake/internal/core/domain/model/wizard"
)

const (
	minDistanceKm   = 10
	distanceSpanKm  = 200
	minutesPerKm    = 1.2
	baseCost        = 50.0
	costPerKm       = 1.5
	costPerWeightKg = 2.5
)

// leading decimal literal, the way browsers read a number typed into a text field
var leadingNumber = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)

// RandomSource supplies uniform integers in [0, n).
type RandomSource interface {
	IntN(n int) int
}

type globalRandom struct{}

func (globalRandom) IntN(n int) int { return rand.IntN(n) } //nolint:gosec // simulated distance, not security sensitive

// SimulatedRouteEstimator produces a plausible but fake route estimate. There is no
// routing backend: the distance is drawn at random and the cost derived from it.
//
// Formula:
//
//	distance = uniform integer in [10, 209] km
//	time     = round(distance × 1.2) minutes
//	cost     = 50 + distance × 1.5 + weight × 2.5
//
// Example usage:
//
//	estimator := services.NewSimulatedRouteEstimator(nil)
//	estimate := estimator.Estimate(pickup, delivery, "12.5")
//	if estimate == nil {
//	    // an address is incomplete or the weight is empty
//	}
type SimulatedRouteEstimator struct {
	random RandomSource
}

// NewSimulatedRouteEstimator uses random for the distance draw; nil selects the
// process-wide generator of math/rand/v2.
func NewSimulatedRouteEstimator(random RandomSource) SimulatedRouteEstimator {
	if random == nil {
		random = globalRandom{}
	}
	return SimulatedRouteEstimator{random: random}
}

// Estimate returns nil unless both addresses are complete and a weight was entered.
func (e SimulatedRouteEstimator) Estimate(pickup, delivery order.Address, weight string) *wizard.RouteEstimate {
	if !pickup.IsComplete() || !delivery.IsComplete() || weight == "" {
		return nil
	}

	distance := e.random.IntN(distanceSpanKm) + minDistanceKm

	return &wizard.RouteEstimate{
		DistanceKm:  distance,
		TimeMinutes: int(math.Round(float64(distance) * minutesPerKm)),
		Cost:        baseCost + float64(distance)*costPerKm + ParseLeadingFloat(weight)*costPerWeightKg,
	}
}

// ParseLeadingFloat reads the longest decimal prefix of s after leading whitespace,
// so "12kg" is 12 and "3.5.1" is 3.5. Anything without a numeric prefix is 0, and so
// is a prefix that does not fit a finite float64 ("Infinity", "1e999").
func ParseLeadingFloat(s string) float64 {
	prefix := leadingNumber.FindString(strings.TrimLeft(s, " \t\n\r\f\v"))
	if prefix == "" {
		return 0
	}
	value, err := strconv.ParseFloat(prefix, 64)
	if err != nil || math.IsInf(value, 0) || math.IsNaN(value) {
		return 0
	}
	return value
}
