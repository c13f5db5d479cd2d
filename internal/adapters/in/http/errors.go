package http

import (
	"errors"
	"net/http"

	"intake/internal/core/application/usecases/commands"
	"intake/internal/core/domain/model/order"
	"intake/internal/core/domain/model/wizard"
	"intake/internal/core/ports"
	"intake/internal/generated/servers"
	"intake/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "Une erreur interne est survenue. Veuillez réessayer."

// statusOf maps an application error to its HTTP status. Unknown errors are 500.
func statusOf(err error) int {
	var (
		validationErr *order.ValidationError
		generationErr *ports.GenerationError
		fieldErrs     validator.ValidationErrors
		httpErr       *echo.HTTPError
	)

	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, wizard.ErrStageTransitionIsInvalid),
		errors.Is(err, wizard.ErrOrderIsFrozen),
		errors.Is(err, wizard.ErrConfirmationInProgress),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	case errors.As(err, &validationErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &generationErr):
		return http.StatusBadGateway
	case errors.As(err, &fieldErrs),
		errors.Is(err, errRequestBody),
		errors.Is(err, commands.ErrNothingToUpdate),
		errors.Is(err, commands.ErrGeolocationOutcomeIsInvalid),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// messageOf returns the text sent to the client. Form validation failures carry the
// French message shown to the customer; internal errors are not disclosed.
func messageOf(err error, status int) string {
	var validationErr *order.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			return msg
		}
		return http.StatusText(httpErr.Code)
	}
	if status == http.StatusInternalServerError {
		return internalErrorMessage
	}
	return err.Error()
}

func (s *Server) fail(ctx echo.Context, err error) error {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"status", status,
			"error", err)
	}
	return ctx.JSON(status, servers.Error{Code: status, Message: messageOf(err, status)})
}
