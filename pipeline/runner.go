package pipeline

import (
	"context"
	"math"
	"time"

	"github.com/katalvlaran/bpmnlayout/geometry"
	"github.com/katalvlaran/bpmnlayout/model"
)

// SignificantMoveThreshold is the smallest centre displacement, in either
// axis combined via Euclidean distance, that countMoved treats as an
// actual reposition rather than rounding noise. This is a coarser cutoff
// than eapply.SignificantMoveThreshold (0.5px): that threshold gates
// whether a single E-engine position write is worth committing at all,
// while this one gates whether a pipeline step's net effect on an element
// should count toward a step's reported delta.
const SignificantMoveThreshold = 1.0

// Runner executes a Pipeline's steps in order against a shared registry,
// timing and logging each one and aborting on the first failure. The zero
// value is ready to use with a no-op logger.
type Runner struct {
	Logger Logger
}

// NewRunner returns a Runner that logs through l. Passing nil is equivalent
// to the zero value.
func NewRunner(l Logger) *Runner {
	return &Runner{Logger: l}
}

func (r *Runner) logger() Logger {
	if r.Logger == nil {
		return noopLogger{}
	}
	return r.Logger
}

// Run executes every step of p against registry, in order. A step is
// skipped (and still reported) if its Skip predicate returns true. Any
// step's error aborts the run and is returned wrapped as
// *PipelineStepFailure; steps already committed are not rolled back.
func (r *Runner) Run(ctx context.Context, registry *model.Registry, p Pipeline) (Report, error) {
	var report Report
	for _, step := range p.Steps {
		if step.Skip != nil && step.Skip(ctx) {
			report.Steps = append(report.Steps, StepReport{Name: step.Name, Skipped: true})
			r.logger().Printf("pipeline: step %q skipped", step.Name)
			continue
		}

		var before map[string]geometry.Point
		if step.TrackDelta {
			before = snapshotCenters(registry)
		}

		start := time.Now()
		err := step.Run(ctx)
		elapsed := time.Since(start)
		if err != nil {
			r.logger().Printf("pipeline: step %q failed after %s: %s", step.Name, elapsed, err)
			return report, &PipelineStepFailure{StepName: step.Name, Cause: err}
		}

		sr := StepReport{Name: step.Name}
		if step.TrackDelta {
			sr.DeltaCount = countMoved(before, snapshotCenters(registry))
		}
		report.Steps = append(report.Steps, sr)
		r.logger().Printf("pipeline: step %q done in %s (moved=%d)", step.Name, elapsed, sr.DeltaCount)
	}
	return report, nil
}

func snapshotCenters(registry *model.Registry) map[string]geometry.Point {
	all := registry.GetAll()
	out := make(map[string]geometry.Point, len(all))
	for _, e := range all {
		out[e.ID] = e.Bounds.Center()
	}
	return out
}

// countMoved reports how many ids present in both snapshots moved more
// than SignificantMoveThreshold.
func countMoved(before, after map[string]geometry.Point) int {
	count := 0
	for id, b := range before {
		a, ok := after[id]
		if !ok {
			continue
		}
		if math.Hypot(a.X-b.X, a.Y-b.Y) > SignificantMoveThreshold {
			count++
		}
	}
	return count
}
