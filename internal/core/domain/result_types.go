package domain

type VerbKind string

const (
	VerbRead        VerbKind = "read"
	VerbWrite       VerbKind = "write"
	VerbDestructive VerbKind = "destructive"
)

// OutcomeStatus is how a dispatched command ended when it did not fail.
type OutcomeStatus string

const (
	OutcomeCompleted OutcomeStatus = "COMPLETED"
	OutcomeSkipped   OutcomeStatus = "SKIPPED"
	OutcomeNotFound  OutcomeStatus = "NOT_FOUND"
)

type Outcome struct {
	Status OutcomeStatus
	Value  any
}

func Completed(v any) Outcome { return Outcome{Status: OutcomeCompleted, Value: v} }

func Skipped() Outcome { return Outcome{Status: OutcomeSkipped} }

func NotFound() Outcome { return Outcome{Status: OutcomeNotFound} }

// Confirmation describes the prompt guarding a destructive verb.
// Prompt is a format string taking Target.
type Confirmation struct {
	Forced      bool
	Prompt      string
	Description string
	Target      string
}

// CommandSpec is the static description the dispatcher needs to drive a command.
type CommandSpec struct {
	Name           string
	Kind           VerbKind
	PassThru       bool
	RequiresTarget bool
}
