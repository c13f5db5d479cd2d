package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 3 * time.Second

// Publisher sends notifications to RabbitMQ. It implements both ports.SmsGateway
// and ports.EmailTransport; a notification counts as sent once the broker accepted it.
type Publisher struct {
	mu sync.Mutex
	ch *amqp.Channel
}

// NewPublisher opens a channel and declares the durable notification queues.
func NewPublisher(conn *amqp.Connection) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}

	for _, queue := range []string{SmsQueue, EmailQueue} {
		if _, err = ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
			_ = ch.Close()
			return nil, fmt.Errorf("declare %s: %w", queue, err)
		}
	}

	return &Publisher{ch: ch}, nil
}

func (p *Publisher) Close() error {
	return p.ch.Close()
}

func (p *Publisher) SendSms(ctx context.Context, phone, content string) error {
	body, err := json.Marshal(SmsMessage{
		Type:      "SmsRequested",
		Phone:     phone,
		Content:   content,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal sms: %w", err)
	}
	return p.publishJSON(ctx, SmsQueue, body)
}

func (p *Publisher) SendEmail(ctx context.Context, to, subject, body string) error {
	payload, err := json.Marshal(EmailMessage{
		Type:      "EmailRequested",
		To:        to,
		Subject:   subject,
		Body:      body,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal email: %w", err)
	}
	return p.publishJSON(ctx, EmailQueue, payload)
}

func (p *Publisher) publishJSON(ctx context.Context, queue string, body []byte) error {
	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()

	err := p.ch.PublishWithContext(
		pubCtx,
		"",    // default exchange
		queue, // queue name as routing key
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish to %s: %w", queue, err)
	}
	return nil
}
