package queries

import (
	"errors"

	"intake/internal/pkg/guard"
)

var ErrGetFormOptionsQueryIsNotConstructed = errors.New(
	"GetFormOptionsQuery must be created via NewGetFormOptionsQuery constructor",
)

// GetFormOptionsQuery lists the choices the order form offers. It has no parameters.
type GetFormOptionsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetFormOptionsQuery() GetFormOptionsQuery {
	return GetFormOptionsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetFormOptionsQuery) Validate() error {
	return q.guard.Validate(ErrGetFormOptionsQueryIsNotConstructed)
}

type TimeSlotOption struct {
	Value string
	Label string
}

type CategoryOption struct {
	Code                    string
	Label                   string
	InstructionsPlaceholder string
}

// GetFormOptionsQueryResponse holds the pickup time slots in chronological order and
// the parcel categories in display order.
type GetFormOptionsQueryResponse struct {
	TimeSlots  []TimeSlotOption
	Categories []CategoryOption
}
