package commands

import (
	"context"

	"intake/internal/core/domain/model/order"
	"intake/internal/core/domain/model/wizard"
	"intake/internal/core/ports"
)

// UpdateCustomerCommandHandler applies customer contact edits.
type UpdateCustomerCommandHandler struct {
	repo ports.SessionRepository
}

func NewUpdateCustomerCommandHandler(repo ports.SessionRepository) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{repo: repo}
}

func (h UpdateCustomerCommandHandler) Handle(ctx context.Context, cmd UpdateCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	_, err := mutateSession(ctx, h.repo, cmd.SessionID(), func(s *wizard.Session) error {
		for _, field := range []order.CustomerField{order.Name, order.Phone, order.Email} {
			value, ok := cmd.Value(field)
			if !ok {
				continue
			}
			if err := s.SetCustomerField(field, value); err != nil {
				return err
			}
		}
		return nil
	})
	return err
}
