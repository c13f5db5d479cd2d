package wizard

import (
	"fmt"

	"intake/internal/pkg/errs"
)

// GeolocatedAddressInfo is shown after the pickup address was filled from the device position.
const GeolocatedAddressInfo = "Adresse simulée avec succès. " +
	"Une application réelle utiliserait votre adresse exacte via un service de géocodage inversé."

// GeolocationFailure is the reason the client could not obtain a position.
type GeolocationFailure int

const (
	UnknownGeolocationFailure GeolocationFailure = iota
	GeolocationUnsupported
	PermissionDenied
	PositionUnavailable
	GeolocationTimeout
	OtherGeolocationFailure
)

type geolocationFailureNames struct {
	code    string
	message string
}

func getGeolocationFailureNames() map[GeolocationFailure]geolocationFailureNames {
	//nolint:exhaustive // UnknownGeolocationFailure is intentionally excluded as it's invalid
	return map[GeolocationFailure]geolocationFailureNames{
		GeolocationUnsupported: {
			code: "unsupported",
			message: "La géolocalisation n'est pas prise en charge par votre navigateur " +
				"ou la connexion n'est pas sécurisée (HTTPS requis).",
		},
		PermissionDenied: {
			code: "permission-denied",
			message: "La permission d'accès à la géolocalisation a été refusée. " +
				"Veuillez l'activer ou saisir l'adresse manuellement.",
		},
		PositionUnavailable: {
			code: "position-unavailable",
			message: "Les informations de localisation ne sont pas disponibles actuellement. " +
				"Veuillez réessayer ou saisir l'adresse manuellement.",
		},
		GeolocationTimeout: {
			code:    "timeout",
			message: "La demande de géolocalisation a expiré. Veuillez réessayer.",
		},
		OtherGeolocationFailure: {
			code: "other",
			message: "Une erreur est survenue lors de l'obtention de la localisation. " +
				"Veuillez saisir l'adresse manuellement.",
		},
	}
}

// ParseGeolocationFailure maps the wire code reported by the client.
func ParseGeolocationFailure(s string) (GeolocationFailure, error) {
	for failure, names := range getGeolocationFailureNames() {
		if names.code == s {
			return failure, nil
		}
	}
	return UnknownGeolocationFailure, errs.NewValueIsInvalidErrorWithCause(
		"geolocation failure", fmt.Errorf("%q is not a geolocation failure", s))
}

func (f GeolocationFailure) Validate() error {
	if _, ok := getGeolocationFailureNames()[f]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"geolocation failure", fmt.Errorf("%d is not a geolocation failure", f))
	}
	return nil
}

func (f GeolocationFailure) String() string {
	if names, ok := getGeolocationFailureNames()[f]; ok {
		return names.code
	}
	return "unknown"
}

// Message is the French form error shown for the failure. Unknown values use the generic message.
func (f GeolocationFailure) Message() string {
	if names, ok := getGeolocationFailureNames()[f]; ok {
		return names.message
	}
	return getGeolocationFailureNames()[OtherGeolocationFailure].message
}
