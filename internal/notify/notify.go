package notify

import "context"

type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// Notifier reports a finished job. Fire-and-forget: implementations log
// their own failures and never return them, so a broken webhook can never
// affect job state.
type Notifier interface {
	Notify(ctx context.Context, outcome Outcome, title string, detail string)
}

// Noop is used when no webhook is configured.
type Noop struct{}

func (Noop) Notify(ctx context.Context, outcome Outcome, title string, detail string) {}
