package commands

import (
	"context"

	"intake/internal/core/domain/model/order"
	"intake/internal/core/domain/model/wizard"
	"intake/internal/core/ports"
)

// UpdateParcelCommandHandler applies parcel edits.
type UpdateParcelCommandHandler struct {
	repo ports.SessionRepository
}

func NewUpdateParcelCommandHandler(repo ports.SessionRepository) UpdateParcelCommandHandler {
	return UpdateParcelCommandHandler{repo: repo}
}

func (h UpdateParcelCommandHandler) Handle(ctx context.Context, cmd UpdateParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	_, err := mutateSession(ctx, h.repo, cmd.SessionID(), func(s *wizard.Session) error {
		for _, field := range []order.ParcelField{
			order.Weight, order.Length, order.Width, order.Height, order.Contents, order.SpecialInstructions,
		} {
			value, ok := cmd.Value(field)
			if !ok {
				continue
			}
			if err := s.SetParcelField(field, value); err != nil {
				return err
			}
		}
		if cmd.Category() != order.UnknownCategory {
			return s.SetParcelCategory(cmd.Category())
		}
		return nil
	})
	return err
}
