package order

import (
	"errors"
	"fmt"
)

// ErrOrderIsInvalid is wrapped by every ValidationError.
var ErrOrderIsInvalid = errors.New("order is invalid")

// Rule identifies one form validation rule. Rules are evaluated in declaration order.
type Rule int

const (
	PickupAddressComplete Rule = iota + 1
	PickupPostalCodeFormat
	DeliveryAddressComplete
	DeliveryPostalCodeFormat
	PickupScheduled
	ParcelDescribed
	CustomerNamePresent
	CustomerPhonePresent
	CustomerPhoneFormat
	CustomerEmailPresent
	CustomerEmailFormat
)

type rule struct {
	id      Rule
	passes  func(OrderDetails) bool
	message string
}

//nolint:gochecknoglobals // ordered, immutable rule table
var rules = []rule{
	{
		PickupAddressComplete,
		func(d OrderDetails) bool { return d.pickupAddress.IsComplete() },
		"L'adresse de ramassage est incomplète. Veuillez vérifier la rue, la ville et le code postal.",
	},
	{
		PickupPostalCodeFormat,
		func(d OrderDetails) bool { return d.pickupAddress.HasValidPostalCode() },
		"Le code postal de ramassage est invalide. Il doit comporter 5 chiffres.",
	},
	{
		DeliveryAddressComplete,
		func(d OrderDetails) bool { return d.deliveryAddress.IsComplete() },
		"L'adresse de livraison est incomplète. Veuillez vérifier la rue, la ville et le code postal.",
	},
	{
		DeliveryPostalCodeFormat,
		func(d OrderDetails) bool { return d.deliveryAddress.HasValidPostalCode() },
		"Le code postal de livraison est invalide. Il doit comporter 5 chiffres.",
	},
	{
		PickupScheduled,
		func(d OrderDetails) bool { return d.PickupDateTime() != "" },
		"Veuillez sélectionner une date et une heure pour le ramassage.",
	},
	{
		ParcelDescribed,
		func(d OrderDetails) bool { return d.parcel.IsDescribed() },
		"Les détails du colis sont incomplets. Le poids et la description du contenu sont obligatoires.",
	},
	{
		CustomerNamePresent,
		func(d OrderDetails) bool { return d.customer.name != "" },
		"Veuillez saisir votre nom complet.",
	},
	{
		CustomerPhonePresent,
		func(d OrderDetails) bool { return d.customer.phone != "" },
		"Veuillez saisir votre numéro de téléphone.",
	},
	{
		CustomerPhoneFormat,
		func(d OrderDetails) bool { return d.customer.HasValidPhone() },
		"Le format du numéro de téléphone est invalide. Il doit comporter 10 chiffres et commencer par 0 (ex: 06 12 34 56 78).",
	},
	{
		CustomerEmailPresent,
		func(d OrderDetails) bool { return d.customer.email != "" },
		"Une adresse e-mail est requise pour la confirmation.",
	},
	{
		CustomerEmailFormat,
		func(d OrderDetails) bool { return d.customer.HasValidEmail() },
		"Le format de l'adresse e-mail est invalide.",
	},
}

// ValidationError carries the first failing rule and its customer-facing message.
type ValidationError struct {
	Rule    Rule
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrOrderIsInvalid, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrOrderIsInvalid
}

// Validate checks the details against the form rules and stops at the first failure.
func Validate(details OrderDetails) error {
	for _, r := range rules {
		if !r.passes(details) {
			return &ValidationError{Rule: r.id, Message: r.message}
		}
	}
	return nil
}
