package wizard

import (
	"fmt"
	"strings"
)

// Channel is a confirmation notification channel.
type Channel int

const (
	SMS Channel = iota + 1
	Email
)

func (c Channel) String() string {
	switch c {
	case SMS:
		return "sms"
	case Email:
		return "email"
	}
	return "unknown"
}

// Label is the French name used in customer-facing text.
func (c Channel) Label() string {
	switch c {
	case SMS:
		return "SMS"
	case Email:
		return "e-mail"
	}
	return c.String()
}

// NotificationWarning builds the notice shown when some confirmations could not be sent.
// It returns "" when failed is empty.
func NotificationWarning(failed []Channel) string {
	if len(failed) == 0 {
		return ""
	}
	labels := make([]string, 0, len(failed))
	for _, channel := range failed {
		labels = append(labels, channel.Label())
	}
	return fmt.Sprintf("Votre commande a été enregistrée avec succès ! "+
		"Cependant, un problème technique nous a empêchés de vous envoyer la confirmation par %s. "+
		"Pas d'inquiétude, votre ramassage est bien programmé. "+
		"Veuillez noter votre numéro de suivi pour référence.",
		strings.Join(labels, " et "))
}
