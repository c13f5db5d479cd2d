package confirmation

import (
	"fmt"

	"intake/internal/core/domain/model/order"
)

const promptTemplate = `Vous êtes un assistant intelligent pour une entreprise de transport industriel nommée "Livraison DK2".
Un client vient de soumettre une nouvelle commande de livraison de colis.
Votre tâche est de générer un message de confirmation amical et professionnel en français.

Le message doit :
1. Remercier le client par son nom.
2. Résumer brièvement les détails clés de la commande (ramassage, livraison, heure prévue).
3. Fournir un numéro de suivi fictif et unique au format 'DK2-XXXX-XXXX'.
4. Confirmer qu'il sera averti par téléphone pour le ramassage.
5. Mentionner que %s
6. Si des instructions spéciales de manutention sont fournies, les faire ressortir clairement dans une section dédiée intitulée "**Instructions Spéciales de Manutention**". Le contenu des instructions doit être mis en évidence (par exemple, en italique ou dans un bloc de citation). Ne pas inclure cette section si aucune instruction n'est fournie.
7. Être formaté en Markdown pour l'affichage.

Voici les détails de la commande :
- Nom du client : %s
- Téléphone du client : %s
- E-mail du client : %s
- Adresse de ramassage : %s
- Adresse de livraison : %s
- Date et heure de ramassage : %s
- Poids du colis : %s kg
- Dimensions du colis : %sx%sx%s cm
- Contenu du colis : %s
- Catégorie du colis : %s
- Instructions spéciales : %s

Générez le message de confirmation maintenant.
`

// BuildPrompt renders the generation prompt for an order.
func BuildPrompt(details order.OrderDetails) string {
	customer := details.Customer()
	parcel := details.Parcel()
	return fmt.Sprintf(promptTemplate,
		channelsNotice,
		customer.Name(),
		customer.Phone(),
		orDefault(customer.Email(), "Non fourni"),
		details.PickupAddress(),
		details.DeliveryAddress(),
		scheduledAt(details),
		parcel.Weight(),
		parcel.Length(), parcel.Width(), parcel.Height(),
		parcel.Contents(),
		parcel.Category().Label(),
		orDefault(parcel.SpecialInstructions(), "Aucune"),
	)
}
