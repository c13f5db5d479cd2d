package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	httpin "intake/internal/adapters/in/http"
	"intake/internal/adapters/out/confirmation"
	"intake/internal/adapters/out/geo"
	"intake/internal/adapters/out/memory/sessionrepo"
	"intake/internal/adapters/out/notify"
	"intake/internal/core/application/usecases/commands"
	"intake/internal/core/application/usecases/queries"
	"intake/internal/core/domain/services"
	"intake/internal/core/ports"
	"intake/internal/jobs"

	"github.com/labstack/echo/v4"
	amqp "github.com/rabbitmq/amqp091-go"
)

// CompositionRoot owns the adapters shared by every handler and creates the handlers on demand.
type CompositionRoot struct {
	config    Config
	logger    *slog.Logger
	now       func() time.Time
	repo      *sessionrepo.Repository
	estimator services.SimulatedRouteEstimator
	generator ports.ConfirmationGenerator
	sms       ports.SmsGateway
	email     ports.EmailTransport
	closers   []func() error
}

// NewCompositionRoot selects the confirmation generator and the notification transport from config.
// The caller must Close the root to release the broker connection.
func NewCompositionRoot(ctx context.Context, config Config, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		config:    config,
		logger:    logger,
		now:       time.Now,
		repo:      sessionrepo.NewRepository(time.Now),
		estimator: services.NewSimulatedRouteEstimator(nil),
	}

	if err := c.setupGenerator(ctx); err != nil {
		return nil, err
	}
	if err := c.setupNotifications(); err != nil {
		return nil, errors.Join(err, c.Close())
	}

	return c, nil
}

func (c *CompositionRoot) setupGenerator(ctx context.Context) error {
	if !c.config.UsesGemini() {
		c.logger.Info("API_KEY is not set, confirmations use the offline template")
		c.generator = confirmation.NewOfflineGenerator()
		return nil
	}

	client, err := confirmation.NewGeminiClient(ctx, c.config.APIKey)
	if err != nil {
		return fmt.Errorf("create gemini client: %w", err)
	}
	c.generator = confirmation.NewGeminiGenerator(client.Models, c.config.GeminiModel, c.config.GenerationTimeout, c.logger)
	return nil
}

func (c *CompositionRoot) setupNotifications() error {
	if c.config.NotificationTransport != TransportAMQP {
		simulation := notify.Simulation{
			FailureRate: c.config.SimulatedFailureRate,
			Latency:     c.config.SimulatedLatency,
		}
		c.sms = notify.NewSimulatedSmsGateway(simulation, c.logger)
		c.email = notify.NewSimulatedEmailTransport(simulation, c.logger)
		return nil
	}

	conn, err := amqp.Dial(c.config.AMQPURL)
	if err != nil {
		return fmt.Errorf("dial rabbitmq: %w", err)
	}
	c.closers = append(c.closers, conn.Close)

	publisher, err := notify.NewPublisher(conn)
	if err != nil {
		return fmt.Errorf("create notification publisher: %w", err)
	}
	c.closers = append(c.closers, publisher.Close)

	c.sms = publisher
	c.email = publisher
	return nil
}

// Close releases the resources opened by the root in reverse order.
func (c *CompositionRoot) Close() error {
	var closeErrs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			closeErrs = append(closeErrs, err)
		}
	}
	c.closers = nil
	return errors.Join(closeErrs...)
}

func (c *CompositionRoot) CreateStartSessionCommandHandler() commands.StartSessionCommandHandler {
	return commands.NewStartSessionCommandHandler(c.repo, c.estimator)
}

func (c *CompositionRoot) CreateUpdateAddressCommandHandler() commands.UpdateAddressCommandHandler {
	return commands.NewUpdateAddressCommandHandler(c.repo)
}

func (c *CompositionRoot) CreateSchedulePickupCommandHandler() commands.SchedulePickupCommandHandler {
	return commands.NewSchedulePickupCommandHandler(c.repo, c.now)
}

func (c *CompositionRoot) CreateUpdateParcelCommandHandler() commands.UpdateParcelCommandHandler {
	return commands.NewUpdateParcelCommandHandler(c.repo)
}

func (c *CompositionRoot) CreateUpdateCustomerCommandHandler() commands.UpdateCustomerCommandHandler {
	return commands.NewUpdateCustomerCommandHandler(c.repo)
}

func (c *CompositionRoot) CreateReportGeolocationCommandHandler() commands.ReportGeolocationCommandHandler {
	return commands.NewReportGeolocationCommandHandler(c.repo, geo.NewSimulatedReverseGeocoder(nil, c.logger), c.logger)
}

func (c *CompositionRoot) CreateProceedToSummaryCommandHandler() commands.ProceedToSummaryCommandHandler {
	return commands.NewProceedToSummaryCommandHandler(c.repo)
}

func (c *CompositionRoot) CreateReturnToFormCommandHandler() commands.ReturnToFormCommandHandler {
	return commands.NewReturnToFormCommandHandler(c.repo)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	dispatcher := commands.NewNotificationDispatcher(c.sms, c.email, c.config.NotificationTimeout, c.logger)
	return commands.NewConfirmOrderCommandHandler(c.repo, c.generator, dispatcher, c.logger)
}

func (c *CompositionRoot) CreateStartNewOrderCommandHandler() commands.StartNewOrderCommandHandler {
	return commands.NewStartNewOrderCommandHandler(c.repo)
}

func (c *CompositionRoot) CreateDiscardSessionCommandHandler() commands.DiscardSessionCommandHandler {
	return commands.NewDiscardSessionCommandHandler(c.repo)
}

func (c *CompositionRoot) CreateExpireSessionsCommandHandler() commands.ExpireSessionsCommandHandler {
	return commands.NewExpireSessionsCommandHandler(c.repo, c.now)
}

func (c *CompositionRoot) CreateGetSessionQueryHandler() queries.GetSessionQueryHandler {
	return queries.NewGetSessionQueryHandler(c.repo)
}

func (c *CompositionRoot) CreateGetFormOptionsQueryHandler() queries.GetFormOptionsQueryHandler {
	return queries.NewGetFormOptionsQueryHandler()
}

// CreateRouter builds the echo instance serving the session API.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	server := httpin.NewServer(httpin.Handlers{
		StartSession:      c.CreateStartSessionCommandHandler(),
		UpdateAddress:     c.CreateUpdateAddressCommandHandler(),
		SchedulePickup:    c.CreateSchedulePickupCommandHandler(),
		UpdateParcel:      c.CreateUpdateParcelCommandHandler(),
		UpdateCustomer:    c.CreateUpdateCustomerCommandHandler(),
		ReportGeolocation: c.CreateReportGeolocationCommandHandler(),
		ProceedToSummary:  c.CreateProceedToSummaryCommandHandler(),
		ReturnToForm:      c.CreateReturnToFormCommandHandler(),
		ConfirmOrder:      c.CreateConfirmOrderCommandHandler(),
		StartNewOrder:     c.CreateStartNewOrderCommandHandler(),
		DiscardSession:    c.CreateDiscardSessionCommandHandler(),
		GetSession:        c.CreateGetSessionQueryHandler(),
		GetFormOptions:    c.CreateGetFormOptionsQueryHandler(),
	}, c.logger)
	return httpin.NewRouter(server, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewSessionExpiryJob(
			c.CreateExpireSessionsCommandHandler(),
			c.config.SessionSweepSchedule,
			c.config.SessionTTL,
			c.logger,
		),
	)
}
