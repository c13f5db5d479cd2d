package notify

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"
)

//nolint:staticcheck // customer-facing French messages
var (
	ErrSmsGatewayUnavailable = errors.New("La passerelle SMS n'a pas répondu.")
	ErrEmailRefused          = errors.New("Le serveur de messagerie a refusé la connexion.")
)

const (
	DefaultFailureRate = 0.2
	DefaultLatency     = 500 * time.Millisecond
)

// Simulation configures a simulated channel. Random returns values in [0, 1);
// nil uses math/rand/v2.
type Simulation struct {
	FailureRate float64
	Latency     time.Duration
	Random      func() float64
}

// run waits for the latency, then fails with failure when the draw is below the failure rate.
func (s Simulation) run(ctx context.Context, failure error) error {
	timer := time.NewTimer(s.Latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	random := s.Random
	if random == nil {
		random = rand.Float64
	}
	if random() < s.FailureRate {
		return failure
	}
	return nil
}

type SimulatedSmsGateway struct {
	simulation Simulation
	logger     *slog.Logger
}

func NewSimulatedSmsGateway(simulation Simulation, logger *slog.Logger) *SimulatedSmsGateway {
	return &SimulatedSmsGateway{simulation: simulation, logger: logger.With("component", "sms-gateway")}
}

func (g *SimulatedSmsGateway) SendSms(ctx context.Context, phone, content string) error {
	g.logger.InfoContext(ctx, "sending sms", "phone", phone, "content", content)
	if err := g.simulation.run(ctx, ErrSmsGatewayUnavailable); err != nil {
		return err
	}
	g.logger.InfoContext(ctx, "sms sent", "phone", phone)
	return nil
}

type SimulatedEmailTransport struct {
	simulation Simulation
	logger     *slog.Logger
}

func NewSimulatedEmailTransport(simulation Simulation, logger *slog.Logger) *SimulatedEmailTransport {
	return &SimulatedEmailTransport{simulation: simulation, logger: logger.With("component", "email-transport")}
}

func (t *SimulatedEmailTransport) SendEmail(ctx context.Context, to, subject, body string) error {
	t.logger.InfoContext(ctx, "sending email", "to", to, "subject", subject, "body_length", len(body))
	if err := t.simulation.run(ctx, ErrEmailRefused); err != nil {
		return err
	}
	t.logger.InfoContext(ctx, "email sent", "to", to)
	return nil
}
