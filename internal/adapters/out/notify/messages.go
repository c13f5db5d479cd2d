package notify

import "time"

const (
	SmsQueue   = "notifications.sms.v1"
	EmailQueue = "notifications.email.v1"
)

// SmsMessage is the JSON body published to SmsQueue.
type SmsMessage struct {
	Type      string    `json:"type"`
	Phone     string    `json:"phone"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// EmailMessage is the JSON body published to EmailQueue.
type EmailMessage struct {
	Type      string    `json:"type"`
	To        string    `json:"to"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Timestamp time.Time `json:"timestamp"`
}
