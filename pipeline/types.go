package pipeline

import (
	"context"
	"fmt"
)

// Logger is the pipeline runner's injected sink, deliberately as small as
// its call sites need. The zero value of Runner uses a no-op
// implementation, so the package never forces a logging dependency on a
// caller that doesn't want one.
type Logger interface {
	Printf(format string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Printf(string, ...any) {}

// Step is one unit of work in a Pipeline: a name for error messages and
// logging, the work itself, an optional predicate that skips the step
// entirely, and a flag asking the runner to count how many elements moved
// more than the significant-move threshold while the step ran.
//
// Run may block on the external layered solver: the pipeline's only
// suspension point. ctx carries cancellation/timeout only — the pipeline
// is single-writer and synchronous, so ctx is never raced against a
// concurrent mutation of the same registry.
type Step struct {
	Name       string
	Run        func(ctx context.Context) error
	Skip       func(ctx context.Context) bool
	TrackDelta bool
}

// Pipeline is a read-only ordered list of steps. It carries no behaviour of
// its own — Runner owns execution, logging, and delta bookkeeping, keeping
// the pipeline itself as plain data with no control flow of its own.
type Pipeline struct {
	Steps []Step
}

// New builds a Pipeline from steps, in the order given.
func New(steps ...Step) Pipeline {
	return Pipeline{Steps: append([]Step(nil), steps...)}
}

// PipelineStepFailure wraps the error a step returned: Error() renders
// a `Pipeline step "<name>" failed: <message>` form, and Unwrap exposes
// the original cause for errors.Is/errors.As.
type PipelineStepFailure struct {
	StepName string
	Cause    error
}

func (e *PipelineStepFailure) Error() string {
	return fmt.Sprintf("Pipeline step %q failed: %s", e.StepName, e.Cause)
}

func (e *PipelineStepFailure) Unwrap() error { return e.Cause }

// StepReport is one step's outcome from a Runner.Run call.
type StepReport struct {
	Name       string
	Skipped    bool
	DeltaCount int // only meaningful when the step set TrackDelta
}

// Report is the full outcome of one Runner.Run call, one StepReport per
// step in execution order (including skipped steps).
type Report struct {
	Steps []StepReport
}
