package http

import (
	"log/slog"
	"net/http"

	"intake/internal/core/application/usecases/commands"
	"intake/internal/core/application/usecases/queries"
	"intake/internal/core/domain/model/kernel"
	"intake/internal/core/domain/model/order"
	"intake/internal/core/domain/model/wizard"
	"intake/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Handlers groups the use cases exposed over HTTP.
type Handlers struct {
	StartSession      commands.StartSessionCommandHandler
	UpdateAddress     commands.UpdateAddressCommandHandler
	SchedulePickup    commands.SchedulePickupCommandHandler
	UpdateParcel      commands.UpdateParcelCommandHandler
	UpdateCustomer    commands.UpdateCustomerCommandHandler
	ReportGeolocation commands.ReportGeolocationCommandHandler
	ProceedToSummary  commands.ProceedToSummaryCommandHandler
	ReturnToForm      commands.ReturnToFormCommandHandler
	ConfirmOrder      commands.ConfirmOrderCommandHandler
	StartNewOrder     commands.StartNewOrderCommandHandler
	DiscardSession    commands.DiscardSessionCommandHandler

	GetSession     queries.GetSessionQueryHandler
	GetFormOptions queries.GetFormOptionsQueryHandler
}

// Server implements servers.ServerInterface. Every command is followed by a read of
// the session, so mutating endpoints answer with the resulting session state.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(h Handlers, logger *slog.Logger) *Server {
	return &Server{h: h, logger: logger.With("component", "http-server")}
}

// GetFormOptions handles GET /api/v1/form-options.
func (s *Server) GetFormOptions(ctx echo.Context) error {
	options, err := s.h.GetFormOptions.Handle(ctx.Request().Context(), queries.NewGetFormOptionsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toFormOptions(options))
}

// StartSession handles POST /api/v1/sessions.
func (s *Server) StartSession(ctx echo.Context) error {
	id := kernel.NewUUID()
	cmd, err := commands.NewStartSessionCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.StartSession.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondWithSession(ctx, http.StatusCreated, id)
}

// GetSession handles GET /api/v1/sessions/{sessionId}.
func (s *Server) GetSession(ctx echo.Context, sessionID openapi_types.UUID) error {
	id, err := kernel.UUIDFromGoogle(sessionID)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondWithSession(ctx, http.StatusOK, id)
}

// DiscardSession handles DELETE /api/v1/sessions/{sessionId}.
func (s *Server) DiscardSession(ctx echo.Context, sessionID openapi_types.UUID) error {
	id, err := kernel.UUIDFromGoogle(sessionID)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewDiscardSessionCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.DiscardSession.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// UpdatePickupAddress handles PATCH /api/v1/sessions/{sessionId}/pickup-address.
func (s *Server) UpdatePickupAddress(ctx echo.Context, sessionID openapi_types.UUID) error {
	return s.updateAddress(ctx, sessionID, commands.PickupAddress)
}

// UpdateDeliveryAddress handles PATCH /api/v1/sessions/{sessionId}/delivery-address.
func (s *Server) UpdateDeliveryAddress(ctx echo.Context, sessionID openapi_types.UUID) error {
	return s.updateAddress(ctx, sessionID, commands.DeliveryAddress)
}

func (s *Server) updateAddress(ctx echo.Context, sessionID openapi_types.UUID, target commands.AddressTarget) error {
	var body servers.AddressPatch
	if err := bindAndValidate(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}
	id, err := kernel.UUIDFromGoogle(sessionID)
	if err != nil {
		return s.fail(ctx, err)
	}

	fields := make(map[order.AddressField]string)
	setIfPresent(fields, order.Street, body.Street)
	setIfPresent(fields, order.City, body.City)
	setIfPresent(fields, order.PostalCode, body.PostalCode)

	cmd, err := commands.NewUpdateAddressCommand(id, target, fields)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.UpdateAddress.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondWithSession(ctx, http.StatusOK, id)
}

// SchedulePickup handles PUT /api/v1/sessions/{sessionId}/schedule.
func (s *Server) SchedulePickup(ctx echo.Context, sessionID openapi_types.UUID) error {
	var body servers.Schedule
	if err := bindAndValidate(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}
	id, err := kernel.UUIDFromGoogle(sessionID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewSchedulePickupCommand(id, body.Date, body.Time)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.SchedulePickup.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondWithSession(ctx, http.StatusOK, id)
}

// UpdateParcel handles PATCH /api/v1/sessions/{sessionId}/parcel.
func (s *Server) UpdateParcel(ctx echo.Context, sessionID openapi_types.UUID) error {
	var body servers.ParcelPatch
	if err := bindAndValidate(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}
	id, err := kernel.UUIDFromGoogle(sessionID)
	if err != nil {
		return s.fail(ctx, err)
	}

	fields := make(map[order.ParcelField]string)
	setIfPresent(fields, order.Weight, body.Weight)
	setIfPresent(fields, order.Length, body.Length)
	setIfPresent(fields, order.Width, body.Width)
	setIfPresent(fields, order.Height, body.Height)
	setIfPresent(fields, order.Contents, body.Contents)
	setIfPresent(fields, order.SpecialInstructions, body.SpecialInstructions)

	category := order.UnknownCategory
	if body.Category != nil {
		if category, err = order.ParseCategory(string(*body.Category)); err != nil {
			return s.fail(ctx, err)
		}
	}

	cmd, err := commands.NewUpdateParcelCommand(id, fields, category)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.UpdateParcel.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondWithSession(ctx, http.StatusOK, id)
}

// UpdateCustomer handles PATCH /api/v1/sessions/{sessionId}/customer.
func (s *Server) UpdateCustomer(ctx echo.Context, sessionID openapi_types.UUID) error {
	var body servers.CustomerPatch
	if err := bindAndValidate(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}
	id, err := kernel.UUIDFromGoogle(sessionID)
	if err != nil {
		return s.fail(ctx, err)
	}

	fields := make(map[order.CustomerField]string)
	setIfPresent(fields, order.Name, body.Name)
	setIfPresent(fields, order.Phone, body.Phone)
	setIfPresent(fields, order.Email, body.Email)

	cmd, err := commands.NewUpdateCustomerCommand(id, fields)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.UpdateCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondWithSession(ctx, http.StatusOK, id)
}

// ReportGeolocation handles POST /api/v1/sessions/{sessionId}/geolocation. Exactly one
// of a full position or a failure code must be given.
func (s *Server) ReportGeolocation(ctx echo.Context, sessionID openapi_types.UUID) error {
	var body servers.GeolocationReport
	if err := bindAndValidate(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}
	id, err := kernel.UUIDFromGoogle(sessionID)
	if err != nil {
		return s.fail(ctx, err)
	}

	var cmd commands.ReportGeolocationCommand
	hasPosition := body.Latitude != nil && body.Longitude != nil
	hasPartialPosition := (body.Latitude != nil) != (body.Longitude != nil)
	switch {
	case hasPosition && body.Failure == nil:
		position, posErr := kernel.NewCoordinates(*body.Latitude, *body.Longitude)
		if posErr != nil {
			return s.fail(ctx, posErr)
		}
		cmd, err = commands.NewReportGeolocationPositionCommand(id, position)
	case body.Failure != nil && !hasPosition && !hasPartialPosition:
		failure, parseErr := wizard.ParseGeolocationFailure(string(*body.Failure))
		if parseErr != nil {
			return s.fail(ctx, parseErr)
		}
		cmd, err = commands.NewReportGeolocationFailureCommand(id, failure)
	default:
		err = commands.ErrGeolocationOutcomeIsInvalid
	}
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.ReportGeolocation.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondWithSession(ctx, http.StatusOK, id)
}

// ProceedToSummary handles POST /api/v1/sessions/{sessionId}/summary.
func (s *Server) ProceedToSummary(ctx echo.Context, sessionID openapi_types.UUID) error {
	id, err := kernel.UUIDFromGoogle(sessionID)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewProceedToSummaryCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.ProceedToSummary.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondWithSession(ctx, http.StatusOK, id)
}

// ReturnToForm handles POST /api/v1/sessions/{sessionId}/form.
func (s *Server) ReturnToForm(ctx echo.Context, sessionID openapi_types.UUID) error {
	id, err := kernel.UUIDFromGoogle(sessionID)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewReturnToFormCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.ReturnToForm.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondWithSession(ctx, http.StatusOK, id)
}

// ConfirmOrder handles POST /api/v1/sessions/{sessionId}/confirmation.
func (s *Server) ConfirmOrder(ctx echo.Context, sessionID openapi_types.UUID) error {
	id, err := kernel.UUIDFromGoogle(sessionID)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewConfirmOrderCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.ConfirmOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondWithSession(ctx, http.StatusOK, id)
}

// StartNewOrder handles POST /api/v1/sessions/{sessionId}/new-order.
func (s *Server) StartNewOrder(ctx echo.Context, sessionID openapi_types.UUID) error {
	id, err := kernel.UUIDFromGoogle(sessionID)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewStartNewOrderCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.StartNewOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondWithSession(ctx, http.StatusOK, id)
}

func (s *Server) respondWithSession(ctx echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetSessionQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	view, err := s.h.GetSession.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(status, toSession(view))
}

func setIfPresent[F comparable](fields map[F]string, field F, value *string) {
	if value != nil {
		fields[field] = *value
	}
}
