package ports

import "context"

//go:generate mockery --name Emitter --output ./mocks --outpkg mocks --case underscore

// Emitter writes a command's output object to the operator.
type Emitter interface {
	Emit(ctx context.Context, value any) error
}

//go:generate mockery --name Prompter --output ./mocks --outpkg mocks --case underscore

// Prompter asks the operator a yes/no question. A non-interactive prompter
// answers false.
type Prompter interface {
	Confirm(ctx context.Context, title, description string) (bool, error)
}
