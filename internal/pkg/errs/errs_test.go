package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"intake/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		want     string
	}{
		{
			name:     "unknown session",
			err:      errs.NewObjectNotFoundError("sessionId", "3f2a9c1e-7b44-4e0a-9d51-0c8e2b6f1a77"),
			sentinel: errs.ErrObjectNotFound,
			want:     "object not found: 3f2a9c1e-7b44-4e0a-9d51-0c8e2b6f1a77",
		},
		{
			name: "expired session with cause",
			err: errs.NewObjectNotFoundErrorWithCause("sessionId", "3f2a9c1e",
				errors.New("idle for 31m0s")),
			sentinel: errs.ErrObjectNotFound,
			want:     "object not found: param is: sessionId, ID is: 3f2a9c1e (cause: idle for 31m0s)",
		},
		{
			name: "unknown parcel field",
			err: errs.NewValueIsInvalidErrorWithCause("parcel field",
				errors.New(`"volume" is not a parcel field`)),
			sentinel: errs.ErrValueIsInvalid,
			want:     `value is invalid: parcel field (cause: "volume" is not a parcel field)`,
		},
		{
			name:     "pickup time outside the slots",
			err:      errs.NewValueIsInvalidError("pickupTime"),
			sentinel: errs.ErrValueIsInvalid,
			want:     "value is invalid: pickupTime",
		},
		{
			name:     "latitude beyond the pole",
			err:      errs.NewValueIsOutOfRangeError("latitude", 91.5, -90.0, 90.0),
			sentinel: errs.ErrValueIsOutOfRange,
			want:     "value is out of range: 91.5 is latitude, min value is -90, max value is 90",
		},
		{
			name:     "unconstructed coordinates",
			err:      errs.NewValueIsRequiredError("coordinates"),
			sentinel: errs.ErrValueIsRequired,
			want:     "value is required: coordinates",
		},
		{
			name: "stale session version",
			err: errs.NewVersionIsInvalidErrorWithCause("session",
				fmt.Errorf("stored version is %d, got %d", 4, 3)),
			sentinel: errs.ErrVersionIsInvalid,
			want:     "version is invalid: session (cause: stored version is 4, got 3)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			require.ErrorIs(t, tt.err, tt.sentinel)
			require.ErrorIs(t, fmt.Errorf("update session: %w", tt.err), tt.sentinel)
		})
	}
}

func TestErrorsKeepTheirFields(t *testing.T) {
	// Given an error wrapped by a command handler
	cause := errors.New("stored version is 7, got 6")
	err := fmt.Errorf("confirm order: %w", errs.NewVersionIsInvalidErrorWithCause("session", cause))

	// When the caller unwraps it
	var versionErr *errs.VersionIsInvalidError
	require.ErrorAs(t, err, &versionErr)

	// Then the parameter and cause are still available
	assert.Equal(t, "session", versionErr.ParamName)
	assert.Equal(t, cause, versionErr.Cause)
	assert.NotErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestErrorsStayOnOneLine(t *testing.T) {
	multiline := "12 Rue des Lilas\r\nBâtiment B\nÉtage 3"

	rangeErr := errs.NewValueIsOutOfRangeError("street", multiline, 0, 200)
	notFound := errs.NewObjectNotFoundError("sessionId", multiline)

	for _, err := range []error{rangeErr, notFound} {
		assert.NotContains(t, err.Error(), "\n")
		assert.NotContains(t, err.Error(), "\r")
		assert.Contains(t, err.Error(), "12 Rue des Lilas Bâtiment B Étage 3")
	}
}

func TestErrorsWithoutCause(t *testing.T) {
	assert.NoError(t, errs.NewValueIsInvalidError("postalCode").Cause)
	assert.NoError(t, errs.NewValueIsRequiredError("email").Cause)
	assert.NoError(t, errs.NewVersionIsInvalidError("session").Cause)
	assert.Equal(t, "object not found: %!s(int=3)", errs.NewObjectNotFoundError("slot", 3).Error())
}
