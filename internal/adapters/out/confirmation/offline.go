package confirmation

import (
	"context"
	"fmt"
	"strings"

	"intake/internal/core/domain/model/order"
)

// OfflineTrackingNumber is the tracking number of every offline confirmation.
const OfflineTrackingNumber = "FAKE-TRK-123456789"

// OfflineGenerator renders the deterministic confirmation template. It never fails.
type OfflineGenerator struct{}

func NewOfflineGenerator() OfflineGenerator {
	return OfflineGenerator{}
}

func (OfflineGenerator) Generate(_ context.Context, details order.OrderDetails) (string, error) {
	customer := details.Customer()
	parcel := details.Parcel()

	var b strings.Builder
	b.WriteString("**Commande Reçue !**\n\n")
	fmt.Fprintf(&b, "Merci, %s. Votre commande de transport avec Livraison DK2 a été passée avec succès.\n\n",
		customer.Name())
	b.WriteString("**Résumé :**\n")
	fmt.Fprintf(&b, "- **Ramassage :** %s\n", details.PickupAddress())
	fmt.Fprintf(&b, "- **Livraison :** %s\n", details.DeliveryAddress())
	fmt.Fprintf(&b, "- **Prévu pour le :** %s\n", scheduledAt(details))
	fmt.Fprintf(&b, "- **Contenu du colis :** %s (%s)", parcel.Contents(), parcel.Category().Label())
	if instructions := parcel.SpecialInstructions(); instructions != "" {
		fmt.Fprintf(&b, "\n\n**Instructions Spéciales de Manutention:**\n*%s*", instructions)
	}
	fmt.Fprintf(&b, "\n\n**Votre numéro de suivi est : %s.**\n\n", OfflineTrackingNumber)
	fmt.Fprintf(&b, "Nous vous informerons par téléphone au %s lorsque notre chauffeur sera en route. "+
		"%s Nous vous remercions de votre confiance !\n\n", customer.Phone(), channelsNotice)
	b.WriteString("*(Ceci est une confirmation simulée car la clé API n'est pas disponible.)*")
	return b.String(), nil
}
