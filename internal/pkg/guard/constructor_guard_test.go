package guard_test

import (
	"errors"
	"testing"

	"intake/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("command not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("ConfirmOrderCommand must be created via NewConfirmOrderCommand")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedInCommand(t *testing.T) {
	type startCommand struct {
		sessionID string
		guard     guard.ConstructorGuard
	}
	errNotConstructed := errors.New("startCommand must be created via newStartCommand")

	newStartCommand := func(sessionID string) (startCommand, error) {
		if sessionID == "" {
			return startCommand{}, errors.New("session id is required")
		}
		return startCommand{sessionID: sessionID, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_command_is_valid", func(t *testing.T) {
		cmd, err := newStartCommand("abc")
		require.NoError(t, err)
		require.NoError(t, cmd.guard.Validate(errNotConstructed))

		copied := cmd
		require.NoError(t, copied.guard.Validate(errNotConstructed))
	})

	t.Run("literal_command_is_rejected", func(t *testing.T) {
		cmd := startCommand{sessionID: "abc"}
		assert.Equal(t, errNotConstructed, cmd.guard.Validate(errNotConstructed))
	})
}

func BenchmarkConstructorGuard_Validate(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	b.ResetTimer()
	for range b.N {
		_ = g.Validate(err)
	}
}
