package commands

import (
	"context"
	"log/slog"

	"intake/internal/core/domain/model/wizard"
	"intake/internal/core/ports"
)

// ReportGeolocationCommandHandler fills the pickup address from a reported position or
// shows why geolocation failed. Geolocation is a convenience: a geocoder error is shown
// to the customer like an unavailable position and never fails the request.
type ReportGeolocationCommandHandler struct {
	repo     ports.SessionRepository
	geocoder ports.ReverseGeocoder
	logger   *slog.Logger
}

func NewReportGeolocationCommandHandler(
	repo ports.SessionRepository,
	geocoder ports.ReverseGeocoder,
	logger *slog.Logger,
) ReportGeolocationCommandHandler {
	return ReportGeolocationCommandHandler{
		repo:     repo,
		geocoder: geocoder,
		logger:   logger.With("component", "geolocation"),
	}
}

func (h ReportGeolocationCommandHandler) Handle(ctx context.Context, cmd ReportGeolocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	_, err := mutateSession(ctx, h.repo, cmd.SessionID(), func(s *wizard.Session) error {
		position, ok := cmd.Position()
		if !ok {
			return s.RecordGeolocationFailure(cmd.Failure())
		}

		address, err := h.geocoder.Reverse(ctx, position)
		if err != nil {
			h.logger.WarnContext(ctx, "reverse geocoding failed",
				"session_id", cmd.SessionID().String(),
				"position", position.String(),
				"error", err)
			return s.RecordGeolocationFailure(wizard.PositionUnavailable)
		}

		return s.ApplyGeolocatedAddress(address)
	})
	return err
}
