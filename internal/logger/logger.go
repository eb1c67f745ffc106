// Package logger configures the application's logging and
// observability. It uses zerolog for structured logging and optionally
// wires the New Relic agent for traces and log forwarding.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/androadel2014/carryon-backend/internal/config"
	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// LoggerService owns the optional New Relic application instance. When
// the license key is empty the instance is nil and every consumer
// degrades to a no-op.
type LoggerService struct {
	nrApp *newrelic.Application
}

// GetApplication returns the New Relic application, or nil when the
// agent is disabled.
func (s *LoggerService) GetApplication() *newrelic.Application {
	return s.nrApp
}

// Shutdown flushes pending agent data. Safe to call when disabled.
func (s *LoggerService) Shutdown(timeout time.Duration) {
	if s.nrApp != nil {
		s.nrApp.Shutdown(timeout)
	}
}

// New builds the application logger and, when configured, the New
// Relic application. Local env gets a human-readable console writer;
// everything else logs JSON, forwarded to New Relic when enabled.
func New(cfg *config.Config) (*zerolog.Logger, *LoggerService, error) {
	service := &LoggerService{}

	obs := cfg.Observability
	if obs.NewRelic.LicenseKey != "" {
		app, err := newrelic.NewApplication(
			newrelic.ConfigAppName(obs.ServiceName),
			newrelic.ConfigLicense(obs.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(obs.NewRelic.DistributedTracingEnabled),
			newrelic.ConfigAppLogForwardingEnabled(obs.NewRelic.AppLogForwardingEnabled),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("initializing new relic application: %w", err)
		}
		service.nrApp = app
	}

	level, err := zerolog.ParseLevel(obs.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if cfg.Primary.Env == "local" {
		out = zerolog.ConsoleWriter{Out: os.Stdout}
	} else if service.nrApp != nil {
		// zerologWriter decorates each line with linking metadata so
		// logs correlate with traces in New Relic.
		out = zerologWriter.New(os.Stdout, service.nrApp)
	}

	logger := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", obs.ServiceName).
		Str("env", obs.Environment).
		Logger()

	return &logger, service, nil
}

// WithTraceContext returns a copy of logger carrying the transaction's
// trace and span ids for log/trace correlation.
func WithTraceContext(logger zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return logger
	}

	md := txn.GetLinkingMetadata()
	ctx := logger.With()
	if md.TraceID != "" {
		ctx = ctx.Str("trace.id", md.TraceID)
	}
	if md.SpanID != "" {
		ctx = ctx.Str("span.id", md.SpanID)
	}
	return ctx.Logger()
}
