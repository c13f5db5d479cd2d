package settle_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"intake/internal/pkg/settle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	t.Run("returns results in task order", func(t *testing.T) {
		boom := errors.New("boom")

		results := settle.All(t.Context(),
			func(context.Context) error { time.Sleep(20 * time.Millisecond); return nil },
			func(context.Context) error { return boom },
		)

		require.Len(t, results, 2)
		assert.True(t, results[0].OK())
		require.ErrorIs(t, results[1].Err, boom)
	})

	t.Run("a failure does not cancel the others", func(t *testing.T) {
		results := settle.All(t.Context(),
			func(context.Context) error { return errors.New("fast failure") },
			func(ctx context.Context) error {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(30 * time.Millisecond):
					return nil
				}
			},
		)

		assert.False(t, results[0].OK())
		assert.True(t, results[1].OK())
	})

	t.Run("runs tasks concurrently", func(t *testing.T) {
		sleep := func(context.Context) error { time.Sleep(100 * time.Millisecond); return nil }

		start := time.Now()
		settle.All(t.Context(), sleep, sleep, sleep)

		assert.Less(t, time.Since(start), 250*time.Millisecond)
	})

	t.Run("recovers panics", func(t *testing.T) {
		results := settle.All(t.Context(), func(context.Context) error { panic("gateway exploded") })

		require.Error(t, results[0].Err)
		assert.Contains(t, results[0].Err.Error(), "gateway exploded")
	})

	t.Run("no tasks", func(t *testing.T) {
		assert.Empty(t, settle.All(t.Context()))
	})
}
