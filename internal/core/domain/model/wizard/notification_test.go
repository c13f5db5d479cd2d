package wizard_test

import (
	"testing"

	"intake/internal/core/domain/model/wizard"

	"github.com/stretchr/testify/assert"
)

func TestNotificationWarning(t *testing.T) {
	t.Run("is empty when nothing failed", func(t *testing.T) {
		assert.Empty(t, wizard.NotificationWarning(nil))
	})

	t.Run("names the failed channel", func(t *testing.T) {
		assert.Equal(t,
			"Votre commande a été enregistrée avec succès ! Cependant, un problème technique nous a "+
				"empêchés de vous envoyer la confirmation par SMS. Pas d'inquiétude, votre ramassage est "+
				"bien programmé. Veuillez noter votre numéro de suivi pour référence.",
			wizard.NotificationWarning([]wizard.Channel{wizard.SMS}))
	})

	t.Run("joins both channels with et", func(t *testing.T) {
		warning := wizard.NotificationWarning([]wizard.Channel{wizard.SMS, wizard.Email})

		assert.Contains(t, warning, "la confirmation par SMS et e-mail.")
	})

	t.Run("email only", func(t *testing.T) {
		warning := wizard.NotificationWarning([]wizard.Channel{wizard.Email})

		assert.Contains(t, warning, "la confirmation par e-mail.")
		assert.NotContains(t, warning, "SMS")
	})
}
