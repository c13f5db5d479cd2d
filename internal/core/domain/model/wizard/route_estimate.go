package wizard

import (
	"intake/internal/core/domain/model/order"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// RouteEstimate is the simulated trip shown to the customer while filling the form.
type RouteEstimate struct {
	DistanceKm  int
	TimeMinutes int
	Cost        float64
}

// Estimator computes a RouteEstimate. It returns nil while the inputs are incomplete.
type Estimator interface {
	Estimate(pickup, delivery order.Address, weight string) *RouteEstimate
}

// FormattedCost renders the cost in euros the way a French reader expects it, e.g. "120,50 €".
func (e RouteEstimate) FormattedCost() string {
	return message.NewPrinter(language.French).Sprintf("%.2f €", e.Cost)
}
