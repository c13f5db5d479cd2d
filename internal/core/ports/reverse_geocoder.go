package ports

import (
	"context"

	"intake/internal/core/domain/model/kernel"
	"intake/internal/core/domain/model/order"
)

// ReverseGeocoder resolves a device position to a postal address.
type ReverseGeocoder interface {
	Reverse(ctx context.Context, position kernel.Coordinates) (order.Address, error)
}
