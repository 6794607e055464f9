package service

import (
	"context"
	"fmt"

	"github.com/olusolaa/azmgmt/internal/core/domain"
	"github.com/olusolaa/azmgmt/internal/core/ports"
)

type Decision int

const (
	DecisionDecline Decision = iota
	DecisionProceed
)

func (d Decision) String() string {
	if d == DecisionProceed {
		return "proceed"
	}
	return "decline"
}

// Decide is the gate itself: forced always proceeds without calling ask,
// otherwise the answer decides. An ask error is returned with DecisionDecline.
func Decide(forced bool, ask func() (bool, error)) (Decision, error) {
	if forced {
		return DecisionProceed, nil
	}
	if ask == nil {
		return DecisionDecline, nil
	}
	ok, err := ask()
	if err != nil {
		return DecisionDecline, err
	}
	if ok {
		return DecisionProceed, nil
	}
	return DecisionDecline, nil
}

// ConfirmAction runs action at most once, and only after the gate decided to
// proceed. A declined or failed prompt yields a skipped outcome, never an error.
func ConfirmAction(
	ctx context.Context,
	prompter ports.Prompter,
	logger ports.Logger,
	c domain.Confirmation,
	action func(ctx context.Context) (any, error),
) (domain.Outcome, error) {
	decision, askErr := Decide(c.Forced, func() (bool, error) {
		if prompter == nil {
			return false, nil
		}
		return prompter.Confirm(ctx, formatPrompt(c), c.Description)
	})
	if askErr != nil {
		logger.Warnf(ctx, "Confirmation prompt failed, treating as declined: %v", askErr)
	}
	if decision != DecisionProceed {
		logger.Infof(ctx, "Operation on '%s' was not confirmed; nothing was changed", c.Target)
		return domain.Skipped(), nil
	}

	if c.Description != "" {
		logger.Debugf(ctx, "%s: %s", c.Description, c.Target)
	}
	v, err := action(ctx)
	if err != nil {
		return domain.Outcome{}, err
	}
	return domain.Completed(v), nil
}

func formatPrompt(c domain.Confirmation) string {
	if c.Prompt == "" {
		return fmt.Sprintf("Continue with '%s'?", c.Target)
	}
	return fmt.Sprintf(c.Prompt, c.Target)
}
