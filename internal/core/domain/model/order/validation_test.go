package order_test

import (
	"testing"

	"intake/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Run("should accept complete details", func(t *testing.T) {
		require.NoError(t, order.Validate(validDetails()))
	})

	t.Run("should reject the first failing rule with its message", func(t *testing.T) {
		tests := []struct {
			name    string
			mutate  func(d *order.OrderDetails)
			rule    order.Rule
			message string
		}{
			{
				name:    "missing pickup street",
				mutate:  func(d *order.OrderDetails) { _ = d.SetPickupAddressField(order.Street, "") },
				rule:    order.PickupAddressComplete,
				message: "L'adresse de ramassage est incomplète. Veuillez vérifier la rue, la ville et le code postal.",
			},
			{
				name:    "four digit pickup postal code",
				mutate:  func(d *order.OrderDetails) { _ = d.SetPickupAddressField(order.PostalCode, "6900") },
				rule:    order.PickupPostalCodeFormat,
				message: "Le code postal de ramassage est invalide. Il doit comporter 5 chiffres.",
			},
			{
				name:    "missing delivery city",
				mutate:  func(d *order.OrderDetails) { _ = d.SetDeliveryAddressField(order.City, "") },
				rule:    order.DeliveryAddressComplete,
				message: "L'adresse de livraison est incomplète. Veuillez vérifier la rue, la ville et le code postal.",
			},
			{
				name:    "letters in delivery postal code",
				mutate:  func(d *order.OrderDetails) { _ = d.SetDeliveryAddressField(order.PostalCode, "13A02") },
				rule:    order.DeliveryPostalCodeFormat,
				message: "Le code postal de livraison est invalide. Il doit comporter 5 chiffres.",
			},
			{
				name:    "no pickup time",
				mutate:  func(d *order.OrderDetails) { _ = d.SetPickupTime("") },
				rule:    order.PickupScheduled,
				message: "Veuillez sélectionner une date et une heure pour le ramassage.",
			},
			{
				name:    "no contents",
				mutate:  func(d *order.OrderDetails) { _ = d.SetParcelField(order.Contents, "") },
				rule:    order.ParcelDescribed,
				message: "Les détails du colis sont incomplets. Le poids et la description du contenu sont obligatoires.",
			},
			{
				name:    "no name",
				mutate:  func(d *order.OrderDetails) { _ = d.SetCustomerField(order.Name, "") },
				rule:    order.CustomerNamePresent,
				message: "Veuillez saisir votre nom complet.",
			},
			{
				name:    "no phone",
				mutate:  func(d *order.OrderDetails) { _ = d.SetCustomerField(order.Phone, "") },
				rule:    order.CustomerPhonePresent,
				message: "Veuillez saisir votre numéro de téléphone.",
			},
			{
				name:    "nine digit phone",
				mutate:  func(d *order.OrderDetails) { _ = d.SetCustomerField(order.Phone, "06 12 34 56 7") },
				rule:    order.CustomerPhoneFormat,
				message: "Le format du numéro de téléphone est invalide. Il doit comporter 10 chiffres et commencer par 0 (ex: 06 12 34 56 78).",
			},
			{
				name:    "no email",
				mutate:  func(d *order.OrderDetails) { _ = d.SetCustomerField(order.Email, "") },
				rule:    order.CustomerEmailPresent,
				message: "Une adresse e-mail est requise pour la confirmation.",
			},
			{
				name:    "email without domain dot",
				mutate:  func(d *order.OrderDetails) { _ = d.SetCustomerField(order.Email, "jean@example") },
				rule:    order.CustomerEmailFormat,
				message: "Le format de l'adresse e-mail est invalide.",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				details := validDetails()
				tt.mutate(&details)

				err := order.Validate(details)

				require.ErrorIs(t, err, order.ErrOrderIsInvalid)
				var validationErr *order.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, tt.rule, validationErr.Rule)
				assert.Equal(t, tt.message, validationErr.Message)
			})
		}
	})

	t.Run("should report rules in fixed order", func(t *testing.T) {
		// Given everything wrong at once
		details := order.NewOrderDetails()
		_ = details.SetDeliveryAddressField(order.PostalCode, "abc")
		_ = details.SetCustomerField(order.Email, "nope")

		// When
		err := order.Validate(details)

		// Then the pickup address wins
		var validationErr *order.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, order.PickupAddressComplete, validationErr.Rule)
	})

	t.Run("postal code must be exactly five digits", func(t *testing.T) {
		for code, valid := range map[string]bool{
			"75001":  true,
			"00000":  true,
			"7500":   false,
			"750011": false,
			"75 001": false,
			"7500a":  false,
		} {
			details := validDetails()
			_ = details.SetPickupAddressField(order.PostalCode, code)

			err := order.Validate(details)

			if valid {
				assert.NoError(t, err, code)
			} else {
				assert.Error(t, err, code)
			}
		}
	})

	t.Run("phone accepts french separators", func(t *testing.T) {
		for phone, valid := range map[string]bool{
			"0612345678":     true,
			"06 12 34 56 78": true,
			"06-12-34-56-78": true,
			"06.12.34.56.78": true,
			"06_12_34_56_78": true,
			"06 12-34.56_78": true,
			"0012345678":     false,
			"6123456789":     false,
			"+33612345678":   false,
			"06 12 34 56 78 ": false,
		} {
			details := validDetails()
			_ = details.SetCustomerField(order.Phone, phone)

			err := order.Validate(details)

			if valid {
				assert.NoError(t, err, phone)
			} else {
				assert.Error(t, err, phone)
			}
		}
	})
}
