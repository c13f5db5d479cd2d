package ports

import (
	"context"
	"errors"

	"intake/internal/core/domain/model/order"
)

// ErrGenerationFailed is wrapped by GenerationError.
var ErrGenerationFailed = errors.New("confirmation generation failed")

// ConfirmationGenerator writes the customer-facing Markdown confirmation for an order.
type ConfirmationGenerator interface {
	Generate(ctx context.Context, details order.OrderDetails) (string, error)
}

// GenerationError is returned when the text generation service could not produce a message.
type GenerationError struct {
	Cause error
}

// NewGenerationError wraps the underlying failure.
func NewGenerationError(cause error) *GenerationError {
	return &GenerationError{Cause: cause}
}

func (e *GenerationError) Error() string {
	return "L'assistant IA n'a pas pu générer de confirmation. Cause : " + e.Cause.Error()
}

func (e *GenerationError) Unwrap() []error {
	return []error{ErrGenerationFailed, e.Cause}
}
