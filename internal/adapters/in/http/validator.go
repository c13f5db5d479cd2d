package http

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var errRequestBody = errors.New("invalid request body")

// RequestValidator plugs go-playground/validator into echo.Context.Validate. Rules
// come from the validate tags of the request models.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

func bindAndValidate(ctx echo.Context, body any) error {
	if err := ctx.Bind(body); err != nil {
		return fmt.Errorf("%w: %v", errRequestBody, err)
	}
	return ctx.Validate(body)
}
