package commands

import (
	"context"

	"intake/internal/core/domain/model/order"
	"intake/internal/core/domain/model/wizard"
	"intake/internal/core/ports"
)

// UpdateAddressCommandHandler applies address edits. The route estimate follows
// every change of either address.
type UpdateAddressCommandHandler struct {
	repo ports.SessionRepository
}

func NewUpdateAddressCommandHandler(repo ports.SessionRepository) UpdateAddressCommandHandler {
	return UpdateAddressCommandHandler{repo: repo}
}

func (h UpdateAddressCommandHandler) Handle(ctx context.Context, cmd UpdateAddressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	_, err := mutateSession(ctx, h.repo, cmd.SessionID(), func(s *wizard.Session) error {
		set := s.SetPickupAddressField
		if cmd.Target() == DeliveryAddress {
			set = s.SetDeliveryAddressField
		}

		for _, field := range []order.AddressField{order.Street, order.City, order.PostalCode} {
			value, ok := cmd.Value(field)
			if !ok {
				continue
			}
			if err := set(field, value); err != nil {
				return err
			}
		}
		return nil
	})
	return err
}
