package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const (
	TransportSimulated = "simulated"
	TransportAMQP      = "amqp"
)

type Config struct {
	HTTPPort              string
	LogLevel              string
	APIKey                string
	GeminiModel           string
	GenerationTimeout     time.Duration
	NotificationTimeout   time.Duration
	NotificationTransport string
	AMQPURL               string
	SimulatedFailureRate  float64
	SimulatedLatency      time.Duration
	SessionTTL            time.Duration
	SessionSweepSchedule  string
}

// LoadConfig reads the configuration from the environment. Variables from a .env file
// in the working directory are loaded first; a missing file is not an error.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Infof("no .env file loaded: %v", err)
	}

	var parseErrs []error
	duration := func(key, def string) time.Duration {
		d, err := time.ParseDuration(getEnv(key, def))
		if err != nil {
			parseErrs = append(parseErrs, fmt.Errorf("%s: %w", key, err))
		}
		return d
	}

	failureRate, err := strconv.ParseFloat(getEnv("SIMULATED_FAILURE_RATE", "0.2"), 64)
	if err != nil {
		parseErrs = append(parseErrs, fmt.Errorf("SIMULATED_FAILURE_RATE: %w", err))
	}

	config := Config{
		HTTPPort:              getEnv("HTTP_PORT", "8080"),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		APIKey:                os.Getenv("API_KEY"),
		GeminiModel:           getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		GenerationTimeout:     duration("GENERATION_TIMEOUT", "30s"),
		NotificationTimeout:   duration("NOTIFICATION_TIMEOUT", "10s"),
		NotificationTransport: getEnv("NOTIFICATION_TRANSPORT", TransportSimulated),
		AMQPURL:               os.Getenv("AMQP_URL"),
		SimulatedFailureRate:  failureRate,
		SimulatedLatency:      duration("SIMULATED_LATENCY", "500ms"),
		SessionTTL:            duration("SESSION_TTL", "30m"),
		SessionSweepSchedule:  getEnv("SESSION_SWEEP_SCHEDULE", "@every 1m"),
	}
	if err := errors.Join(parseErrs...); err != nil {
		return Config{}, err
	}

	return config, config.Validate()
}

func (c Config) Validate() error {
	var validationErrs []error

	if c.HTTPPort == "" {
		validationErrs = append(validationErrs, errors.New("HTTP_PORT is required"))
	}
	if _, err := c.SlogLevel(); err != nil {
		validationErrs = append(validationErrs, err)
	}
	switch c.NotificationTransport {
	case TransportSimulated:
	case TransportAMQP:
		if c.AMQPURL == "" {
			validationErrs = append(validationErrs, errors.New("AMQP_URL is required for the amqp transport"))
		}
	default:
		validationErrs = append(validationErrs,
			fmt.Errorf("NOTIFICATION_TRANSPORT must be %q or %q, got %q",
				TransportSimulated, TransportAMQP, c.NotificationTransport))
	}
	if c.SimulatedFailureRate < 0 || c.SimulatedFailureRate > 1 {
		validationErrs = append(validationErrs,
			fmt.Errorf("SIMULATED_FAILURE_RATE must be within [0, 1], got %v", c.SimulatedFailureRate))
	}
	if c.SimulatedLatency < 0 {
		validationErrs = append(validationErrs, errors.New("SIMULATED_LATENCY must not be negative"))
	}
	for _, timeout := range []struct {
		name  string
		value time.Duration
	}{
		{"GENERATION_TIMEOUT", c.GenerationTimeout},
		{"NOTIFICATION_TIMEOUT", c.NotificationTimeout},
		{"SESSION_TTL", c.SessionTTL},
	} {
		if timeout.value <= 0 {
			validationErrs = append(validationErrs,
				fmt.Errorf("%s must be positive, got %s", timeout.name, timeout.value))
		}
	}
	if c.SessionSweepSchedule == "" {
		validationErrs = append(validationErrs, errors.New("SESSION_SWEEP_SCHEDULE is required"))
	}

	return errors.Join(validationErrs...)
}

// SlogLevel maps LOG_LEVEL to a slog level.
func (c Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL must be debug, info, warn or error, got %q", c.LogLevel)
	}
}

// UsesGemini reports whether confirmations are generated by the Gemini API.
func (c Config) UsesGemini() bool {
	return c.APIKey != ""
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
