package app

import (
	"context"
	"io"
	"os"

	"github.com/spf13/viper"

	"github.com/olusolaa/azmgmt/internal/adapters/platform/azure"
	"github.com/olusolaa/azmgmt/internal/adapters/prompt"
	"github.com/olusolaa/azmgmt/internal/config"
	"github.com/olusolaa/azmgmt/internal/core/domain"
	"github.com/olusolaa/azmgmt/internal/core/ports"
	"github.com/olusolaa/azmgmt/internal/core/service"
	"github.com/olusolaa/azmgmt/internal/errors"
	"github.com/olusolaa/azmgmt/internal/log"
	"github.com/olusolaa/azmgmt/internal/reporting/json"
	"github.com/olusolaa/azmgmt/internal/reporting/text"
)

// Streams are the process's standard streams, replaceable in tests.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// clientProvider registers the client ports of one cloud platform.
type clientProvider interface {
	Register(registry *service.ComponentRegistry) error
}

var newClientProvider = func(ctx context.Context, session domain.Session, rps int, logger ports.Logger) (clientProvider, error) {
	return azure.NewProvider(ctx, session, rps, logger)
}

// BuildApplicationFromViper loads and validates the configuration held by v
// and wires the provider, registry, emitter, prompter and dispatcher.
func BuildApplicationFromViper(ctx context.Context, v *viper.Viper, streams Streams) (*Application, error) {
	cfg, err := config.Load(ctx, v)
	if err != nil {
		return nil, err
	}

	logger, err := log.NewLogger(log.Config{Level: cfg.Settings.LogLevel, Format: cfg.Settings.LogFormat, Output: streams.Err})
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "logger initialization failed")
	}
	logger.Debugf(ctx, "Logger initialized (Level: %s, Format: %s)", cfg.Settings.LogLevel, cfg.Settings.LogFormat)
	if v.ConfigFileUsed() != "" {
		logger.Debugf(ctx, "Using configuration file: %s", v.ConfigFileUsed())
	} else {
		logger.Debugf(ctx, "No configuration file found, using defaults/env/flags.")
	}

	return newApplication(ctx, cfg, logger, streams)
}

func newApplication(ctx context.Context, cfg *config.Config, logger ports.Logger, streams Streams) (*Application, error) {
	session := domain.Session{
		SubscriptionID:       cfg.Azure.SubscriptionID,
		TenantID:             cfg.Azure.TenantID,
		DefaultResourceGroup: cfg.Azure.DefaultResourceGroup,
	}
	sessionLog := logger.WithFields(map[string]any{domain.FieldSubscription: session.SubscriptionID})

	registry := service.NewComponentRegistry()
	logger.Debugf(ctx, "Component registry initialized")

	provLog := sessionLog.WithFields(map[string]any{domain.FieldProvider: azure.ProviderTypeAzure})
	provider, err := newClientProvider(ctx, session, cfg.Settings.APIRPS, provLog)
	if err != nil {
		return nil, err
	}
	if err := provider.Register(registry); err != nil {
		return nil, err
	}
	provLog.Debugf(ctx, "Using Azure provider (API rate: %d/s)", cfg.Settings.APIRPS)

	emitter, err := newEmitter(cfg.Settings, streams.Out, logger)
	if err != nil {
		return nil, err
	}
	prompter := prompt.NewHuhPrompter(streams.In, streams.Err, cfg.Settings.NoColor)

	dispatcher, err := service.NewDispatcher(prompter, emitter, sessionLog)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to initialize command dispatcher")
	}

	logger.Debugf(ctx, "Application bootstrap complete")
	return NewApplication(dispatcher, registry, session, sessionLog), nil
}

func newEmitter(settings config.SettingsConfig, out io.Writer, logger ports.Logger) (ports.Emitter, error) {
	switch settings.Output {
	case config.OutputJSON:
		emitLog := logger.WithFields(map[string]any{domain.FieldComponent: "emitter", "type": json.EmitterTypeJSON})
		return json.NewEmitter(out, emitLog)
	case config.OutputText, "":
		emitLog := logger.WithFields(map[string]any{domain.FieldComponent: "emitter", "type": text.EmitterTypeText})
		return text.NewEmitter(text.Config{NoColor: settings.NoColor}, out, emitLog)
	}
	return nil, errors.NewUserFacing(errors.CodeConfigValidation, "unsupported output format: "+string(settings.Output), "Supported: text, json")
}
