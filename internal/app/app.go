package app

import (
	"context"

	"github.com/olusolaa/azmgmt/internal/core/domain"
	"github.com/olusolaa/azmgmt/internal/core/ports"
	"github.com/olusolaa/azmgmt/internal/core/service"
)

// Application holds everything one CLI invocation needs to run a command.
type Application struct {
	Dispatcher *service.Dispatcher
	Registry   *service.ComponentRegistry
	Session    domain.Session
	Logger     ports.Logger
}

func NewApplication(dispatcher *service.Dispatcher, registry *service.ComponentRegistry, session domain.Session, logger ports.Logger) *Application {
	return &Application{
		Dispatcher: dispatcher,
		Registry:   registry,
		Session:    session,
		Logger:     logger,
	}
}

// Run dispatches cmd. A declined confirmation or a read that found nothing
// is a successful run.
func (a *Application) Run(ctx context.Context, cmd ports.Command) error {
	name := cmd.Spec().Name
	a.Logger.Debugf(ctx, "Running '%s'", name)

	outcome, err := a.Dispatcher.Run(ctx, cmd)
	if err != nil {
		a.Logger.Errorf(ctx, err, "Command '%s' failed", name)
		return err
	}

	switch outcome.Status {
	case domain.OutcomeSkipped:
		a.Logger.Debugf(ctx, "Command '%s' skipped by operator", name)
	case domain.OutcomeNotFound:
		a.Logger.Debugf(ctx, "Command '%s' found nothing to report", name)
	default:
		a.Logger.Debugf(ctx, "Command '%s' completed", name)
	}
	return nil
}
