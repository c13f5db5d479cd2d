package queries

import (
	"context"

	"intake/internal/core/domain/model/order"
	"intake/internal/core/domain/model/wizard"
	"intake/internal/core/ports"
)

// GetSessionQueryHandler loads a session from the repository and projects it.
type GetSessionQueryHandler struct {
	repo ports.SessionRepository
}

func NewGetSessionQueryHandler(repo ports.SessionRepository) GetSessionQueryHandler {
	return GetSessionQueryHandler{repo: repo}
}

// Handle returns errs.ObjectNotFoundError for an unknown or expired session.
func (h GetSessionQueryHandler) Handle(ctx context.Context, query GetSessionQuery) (GetSessionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSessionQueryResponse{}, err
	}

	session, err := h.repo.Get(ctx, query.SessionID())
	if err != nil {
		return GetSessionQueryResponse{}, err
	}
	return NewSessionView(session), nil
}

// NewSessionView projects a session into its read model.
func NewSessionView(s *wizard.Session) GetSessionQueryResponse {
	details := s.Details()
	parcel := details.Parcel()
	customer := details.Customer()

	view := GetSessionQueryResponse{
		ID:              s.ID(),
		Stage:           s.Stage().String(),
		Version:         s.Version(),
		Confirming:      s.IsConfirming(),
		PickupAddress:   addressView(details.PickupAddress()),
		DeliveryAddress: addressView(details.DeliveryAddress()),
		PickupDate:      details.PickupDate(),
		PickupTime:      details.PickupTime(),
		PickupDateTime:  details.PickupDateTime(),
		Parcel: ParcelView{
			Weight:                  parcel.Weight(),
			Length:                  parcel.Length(),
			Width:                   parcel.Width(),
			Height:                  parcel.Height(),
			Contents:                parcel.Contents(),
			Category:                parcel.Category().String(),
			CategoryLabel:           parcel.Category().Label(),
			SpecialInstructions:     parcel.SpecialInstructions(),
			InstructionsPlaceholder: parcel.Category().InstructionsPlaceholder(),
		},
		Customer: CustomerView{
			Name:  customer.Name(),
			Phone: customer.Phone(),
			Email: customer.Email(),
		},
		FormError:           s.FormError(),
		FormInfo:            s.FormInfo(),
		NotificationWarning: s.NotificationWarning(),
		ConfirmationMessage: s.ConfirmationMessage(),
	}

	if estimate := s.Estimate(); estimate != nil {
		view.Estimate = &EstimateView{
			DistanceKm:    estimate.DistanceKm,
			TimeMinutes:   estimate.TimeMinutes,
			Cost:          estimate.Cost,
			FormattedCost: estimate.FormattedCost(),
		}
	}
	return view
}

func addressView(a order.Address) AddressView {
	return AddressView{Street: a.Street(), City: a.City(), PostalCode: a.PostalCode()}
}
