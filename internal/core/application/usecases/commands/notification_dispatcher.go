package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"intake/internal/core/domain/model/order"
	"intake/internal/core/domain/model/wizard"
	"intake/internal/core/ports"
	"intake/internal/pkg/settle"
)

// ConfirmationEmailSubject is the subject of the confirmation email.
const ConfirmationEmailSubject = "Confirmation de votre commande Livraison DK2"

// NotificationDispatcher sends the SMS and the email confirmation at the same time
// and reports which channels failed. It never returns an error: a failed notification
// is something to tell the customer, not a reason to reject the order.
//
// Example usage:
//
//	dispatcher := NewNotificationDispatcher(smsGateway, emailTransport, 10*time.Second, logger)
//	failed := dispatcher.Dispatch(ctx, details, message)
//	warning := wizard.NotificationWarning(failed)
type NotificationDispatcher struct {
	sms     ports.SmsGateway
	email   ports.EmailTransport
	timeout time.Duration
	logger  *slog.Logger
}

// NewNotificationDispatcher creates a dispatcher. Each send runs under its own timeout.
func NewNotificationDispatcher(
	sms ports.SmsGateway,
	email ports.EmailTransport,
	timeout time.Duration,
	logger *slog.Logger,
) NotificationDispatcher {
	return NotificationDispatcher{
		sms:     sms,
		email:   email,
		timeout: timeout,
		logger:  logger.With("component", "notification-dispatcher"),
	}
}

// Dispatch returns the failed channels in the order SMS, Email. Without an email
// address the email channel is skipped and counts as delivered.
func (d NotificationDispatcher) Dispatch(
	ctx context.Context,
	details order.OrderDetails,
	message string,
) []wizard.Channel {
	customer := details.Customer()

	results := settle.All(ctx,
		d.withTimeout(func(ctx context.Context) error {
			return d.sms.SendSms(ctx, customer.Phone(), SmsContent(details))
		}),
		d.withTimeout(func(ctx context.Context) error {
			if customer.Email() == "" {
				return nil
			}
			return d.email.SendEmail(ctx, customer.Email(), ConfirmationEmailSubject, message)
		}),
	)

	var failed []wizard.Channel
	for i, channel := range []wizard.Channel{wizard.SMS, wizard.Email} {
		if results[i].OK() {
			continue
		}
		d.logger.ErrorContext(ctx, "notification failed",
			"channel", channel.String(),
			"error", results[i].Err)
		failed = append(failed, channel)
	}
	return failed
}

func (d NotificationDispatcher) withTimeout(task settle.Task) settle.Task {
	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, d.timeout)
		defer cancel()
		return task(ctx)
	}
}

// SmsContent is the confirmation text message, with the pickup date as dd/mm/yyyy
// and the time as HH:MM.
func SmsContent(details order.OrderDetails) string {
	date, clock := details.PickupDate(), details.PickupTime()
	if at, err := details.PickupAt(time.UTC); err == nil {
		date, clock = order.FormatDate(at), order.FormatTime(at)
	}
	return fmt.Sprintf("Livraison DK2: Votre commande est confirmée pour le %s à %s vers %s. Merci !",
		date, clock, details.DeliveryAddress().City())
}
