package ports

import (
	"context"

	"github.com/olusolaa/azmgmt/internal/core/domain"
)

// Command is one CLI verb as seen by the dispatcher.
//
// Validate must not touch the network. Invoke performs the client calls and
// returns the raw provider result; Map turns it into the emitted value.
type Command interface {
	Spec() domain.CommandSpec
	Validate(ctx context.Context) error
	// Confirmation is consulted only for destructive verbs.
	Confirmation() domain.Confirmation
	Invoke(ctx context.Context) (any, error)
	Map(ctx context.Context, raw any) (any, error)
}
