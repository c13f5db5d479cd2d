package confirmation

import (
	"time"

	"intake/internal/core/domain/model/order"
)

const channelsNotice = "Une confirmation par SMS et par e-mail vous a également été envoyée."

// scheduledAt renders the pickup date-time as dd/mm/yyyy HH:MM:SS, or "" when unscheduled.
func scheduledAt(details order.OrderDetails) string {
	at, err := details.PickupAt(time.UTC)
	if err != nil {
		return ""
	}
	return order.FormatDateTime(at)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
