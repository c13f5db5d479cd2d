package queries

import (
	"context"

	"intake/internal/core/domain/model/order"
)

type GetFormOptionsQueryHandler struct{}

func NewGetFormOptionsQueryHandler() GetFormOptionsQueryHandler {
	return GetFormOptionsQueryHandler{}
}

func (h GetFormOptionsQueryHandler) Handle(
	_ context.Context,
	query GetFormOptionsQuery,
) (GetFormOptionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetFormOptionsQueryResponse{}, err
	}

	slots := order.TimeSlots()
	response := GetFormOptionsQueryResponse{
		TimeSlots:  make([]TimeSlotOption, 0, len(slots)),
		Categories: make([]CategoryOption, 0, len(order.Categories())),
	}
	for _, slot := range slots {
		response.TimeSlots = append(response.TimeSlots, TimeSlotOption{Value: slot.Value, Label: slot.Label})
	}
	for _, category := range order.Categories() {
		response.Categories = append(response.Categories, CategoryOption{
			Code:                    category.String(),
			Label:                   category.Label(),
			InstructionsPlaceholder: category.InstructionsPlaceholder(),
		})
	}
	return response, nil
}
