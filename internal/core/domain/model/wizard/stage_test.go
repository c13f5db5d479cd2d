package wizard_test

import (
	"testing"

	"intake/internal/core/domain/model/wizard"
	"intake/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStage_Validate(t *testing.T) {
	for _, stage := range []wizard.Stage{wizard.Form, wizard.Summary, wizard.Confirmed} {
		require.NoError(t, stage.Validate(), stage.String())
	}

	for _, stage := range []wizard.Stage{wizard.Unknown, wizard.Stage(-1), wizard.Stage(4)} {
		err := stage.Validate()

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, "unknown", stage.String())
	}
}

func TestStage_Transitions(t *testing.T) {
	type transition func(wizard.Stage) (wizard.Stage, error)

	proceed := func(s wizard.Stage) (wizard.Stage, error) { return s.Proceed() }
	back := func(s wizard.Stage) (wizard.Stage, error) { return s.Back() }
	confirm := func(s wizard.Stage) (wizard.Stage, error) { return s.Confirm() }
	reset := func(s wizard.Stage) (wizard.Stage, error) { return s.Reset() }

	tests := []struct {
		name    string
		from    wizard.Stage
		apply   transition
		want    wizard.Stage
		allowed bool
	}{
		{"form proceeds to summary", wizard.Form, proceed, wizard.Summary, true},
		{"summary goes back to form", wizard.Summary, back, wizard.Form, true},
		{"summary confirms", wizard.Summary, confirm, wizard.Confirmed, true},
		{"confirmed resets to form", wizard.Confirmed, reset, wizard.Form, true},
		{"form cannot confirm", wizard.Form, confirm, wizard.Unknown, false},
		{"form cannot go back", wizard.Form, back, wizard.Unknown, false},
		{"summary cannot proceed again", wizard.Summary, proceed, wizard.Unknown, false},
		{"summary cannot reset", wizard.Summary, reset, wizard.Unknown, false},
		{"confirmed cannot go back", wizard.Confirmed, back, wizard.Unknown, false},
		{"confirmed cannot confirm again", wizard.Confirmed, confirm, wizard.Unknown, false},
		{"unknown cannot proceed", wizard.Unknown, proceed, wizard.Unknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.apply(tt.from)

			if tt.allowed {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, wizard.ErrStageTransitionIsInvalid)
				var transitionErr *wizard.StageTransitionError
				require.ErrorAs(t, err, &transitionErr)
				assert.Equal(t, tt.from, transitionErr.From)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
