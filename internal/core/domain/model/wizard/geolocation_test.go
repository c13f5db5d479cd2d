package wizard_test

import (
	"testing"

	"intake/internal/core/domain/model/wizard"
	"intake/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGeolocationFailure(t *testing.T) {
	messages := map[string]string{}
	for _, code := range []string{"unsupported", "permission-denied", "position-unavailable", "timeout", "other"} {
		failure, err := wizard.ParseGeolocationFailure(code)

		require.NoError(t, err)
		require.NoError(t, failure.Validate())
		assert.Equal(t, code, failure.String())
		messages[failure.Message()] = code
	}
	assert.Len(t, messages, 5, "each failure has its own message")

	_, err := wizard.ParseGeolocationFailure("cancelled")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestGeolocationFailure_Message(t *testing.T) {
	assert.Equal(t, "La demande de géolocalisation a expiré. Veuillez réessayer.",
		wizard.GeolocationTimeout.Message())
	assert.Equal(t, wizard.OtherGeolocationFailure.Message(), wizard.UnknownGeolocationFailure.Message())
}
