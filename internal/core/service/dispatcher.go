package service

import (
	"context"

	"github.com/olusolaa/azmgmt/internal/core/domain"
	"github.com/olusolaa/azmgmt/internal/core/ports"
	"github.com/olusolaa/azmgmt/internal/errors"
)

type State string

const (
	StateValidating State = "validating"
	StateConfirming State = "confirming"
	StateInvoking   State = "invoking"
	StateMapping    State = "mapping"
	StateEmitting   State = "emitting"
	StateDone       State = "done"
)

// Dispatcher drives one command through
// validating -> (confirming) -> invoking -> mapping -> emitting -> done.
type Dispatcher struct {
	prompter ports.Prompter
	emitter  ports.Emitter
	logger   ports.Logger
}

func NewDispatcher(prompter ports.Prompter, emitter ports.Emitter, logger ports.Logger) (*Dispatcher, error) {
	if emitter == nil {
		return nil, errors.New(errors.CodeInternal, "emitter cannot be nil")
	}
	if logger == nil {
		return nil, errors.New(errors.CodeInternal, "logger cannot be nil")
	}
	return &Dispatcher{
		prompter: prompter,
		emitter:  emitter,
		logger:   logger.WithFields(map[string]any{domain.FieldComponent: "dispatcher"}),
	}, nil
}

func (d *Dispatcher) Run(ctx context.Context, cmd ports.Command) (domain.Outcome, error) {
	spec := cmd.Spec()
	log := d.logger.WithFields(map[string]any{domain.FieldCommand: spec.Name})

	enter := func(s State) {
		log.WithFields(map[string]any{domain.FieldState: s}).Debugf(ctx, "Entering state")
	}

	enter(StateValidating)
	if err := cmd.Validate(ctx); err != nil {
		return domain.Outcome{}, errors.Wrap(err, errors.CodeValidation, "invalid command parameters")
	}

	var raw any
	if spec.Kind == domain.VerbDestructive {
		enter(StateConfirming)
		outcome, err := ConfirmAction(ctx, d.prompter, log, cmd.Confirmation(), func(ctx context.Context) (any, error) {
			enter(StateInvoking)
			return cmd.Invoke(ctx)
		})
		if err != nil {
			return d.invokeFailed(ctx, log, spec, err)
		}
		if outcome.Status == domain.OutcomeSkipped {
			if spec.PassThru {
				enter(StateEmitting)
				if err := d.emitter.Emit(ctx, false); err != nil {
					return domain.Outcome{}, err
				}
			}
			enter(StateDone)
			return outcome, nil
		}
		raw = outcome.Value
	} else {
		enter(StateInvoking)
		var err error
		raw, err = cmd.Invoke(ctx)
		if err != nil {
			return d.invokeFailed(ctx, log, spec, err)
		}
	}

	enter(StateMapping)
	out, err := cmd.Map(ctx, raw)
	if err != nil {
		return domain.Outcome{}, err
	}

	enter(StateEmitting)
	if out != nil {
		if err := d.emitter.Emit(ctx, out); err != nil {
			return domain.Outcome{}, err
		}
	}
	if spec.PassThru {
		if err := d.emitter.Emit(ctx, true); err != nil {
			return domain.Outcome{}, err
		}
	}

	enter(StateDone)
	return domain.Completed(out), nil
}

// invokeFailed turns a not-found on a read verb into an empty outcome; every
// other failure is returned unchanged.
func (d *Dispatcher) invokeFailed(ctx context.Context, log ports.Logger, spec domain.CommandSpec, err error) (domain.Outcome, error) {
	if errors.IsNotFound(err) && spec.Kind == domain.VerbRead && !spec.RequiresTarget {
		log.Debugf(ctx, "Provider reported not found, emitting nothing: %v", err)
		return domain.NotFound(), nil
	}
	return domain.Outcome{}, err
}
