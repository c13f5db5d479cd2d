package ports

import "context"

// SmsGateway delivers a text message to a phone number.
type SmsGateway interface {
	SendSms(ctx context.Context, phone, content string) error
}

// EmailTransport delivers an email.
type EmailTransport interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}
