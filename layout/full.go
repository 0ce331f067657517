package layout

import (
	"context"
	"fmt"

	"github.com/katalvlaran/bpmnlayout/artifact"
	"github.com/katalvlaran/bpmnlayout/boundarypost"
	"github.com/katalvlaran/bpmnlayout/crossing"
	"github.com/katalvlaran/bpmnlayout/eapply"
	"github.com/katalvlaran/bpmnlayout/egraph"
	"github.com/katalvlaran/bpmnlayout/model"
	"github.com/katalvlaran/bpmnlayout/modeler"
	"github.com/katalvlaran/bpmnlayout/pipeline"
	"github.com/katalvlaran/bpmnlayout/routing"
	"github.com/katalvlaran/bpmnlayout/solver"
)

// FullResult is the full-layout output: {crossingFlows, crossingFlowPairs}.
type FullResult struct {
	CrossingFlows     int
	CrossingFlowPairs []crossing.Pair
}

// RunFullLayout runs the E-engine pipeline: build the solver's
// request tree for opts.ScopeElementID (the whole canvas if unset), await
// the external layered solver (the pipeline's one suspension point),
// apply its result, route every connection, post-process boundary events,
// band lanes if any are present, place artifacts, and finally detect (and
// conservatively reduce) crossing flows.
func RunFullLayout(ctx context.Context, registry *model.Registry, m *modeler.Modeler, sv solver.Solver, opts Options) (FullResult, error) {
	scopeID, err := resolveScope(registry, opts.ScopeElementID)
	if err != nil {
		return FullResult{}, err
	}

	var requestRoot, resultRoot *solver.ElkNode

	p := pipeline.New(
		pipeline.Step{
			Name: "build_solver_tree",
			Run: func(context.Context) error {
				requestRoot = egraph.BuildContainerGraph(registry, scopeID)
				requestRoot.Options = buildSolverOptions(opts)
				return nil
			},
		},
		pipeline.Step{
			Name: "layout_all_connections",
			Run: func(ctx context.Context) error {
				out, err := sv.Layout(ctx, requestRoot)
				if err != nil {
					return fmt.Errorf("%w: %s", ErrSolverFailure, err)
				}
				resultRoot = out
				return nil
			},
		},
		pipeline.Step{
			Name:       "apply_solver_result",
			TrackDelta: true,
			Run: func(context.Context) error {
				return eapply.ApplyResult(registry, m, resultRoot, eapply.DefaultThresholds())
			},
		},
		pipeline.Step{
			Name: "route_connections",
			Run: func(context.Context) error {
				return routing.Run(registry, m, resultRoot)
			},
		},
		pipeline.Step{
			Name: "boundary_post_process",
			Run: func(context.Context) error {
				return boundarypost.Run(registry, m, boundarypost.DefaultOptions())
			},
		},
		pipeline.Step{
			Name: "layout_lanes",
			Skip: func(context.Context) bool { return !hasLanes(registry) },
			Run: func(context.Context) error {
				return layoutLanes(registry, m, opts)
			},
		},
		pipeline.Step{
			Name: "place_artifacts",
			Run: func(context.Context) error {
				return artifact.Run(registry, m, artifact.DefaultOptions())
			},
		},
		pipeline.Step{
			Name: "snap_to_grid",
			Skip: func(context.Context) bool { return opts.GridQuantum <= 0 },
			Run: func(context.Context) error {
				snapToGrid(registry, opts.GridQuantum)
				return nil
			},
		},
	)

	runner := pipeline.NewRunner(nil)
	if _, err := runner.Run(ctx, registry, p); err != nil {
		return FullResult{}, err
	}

	if err := crossing.ReduceCrossings(registry, m); err != nil {
		return FullResult{}, err
	}
	result := crossing.DetectCrossingFlows(registry)

	return FullResult{CrossingFlows: result.Count, CrossingFlowPairs: result.Pairs}, nil
}

func buildSolverOptions(opts Options) solver.LayoutOptions {
	solverOpts := []solver.Option{solver.WithDirection(toSolverDirection(opts.Direction))}
	if opts.NodeSpacing > 0 {
		solverOpts = append(solverOpts, solver.WithSpacing("elk.spacing.nodeNode", opts.NodeSpacing))
	}
	if opts.LayerSpacing > 0 {
		solverOpts = append(solverOpts, solver.WithSpacing("elk.layered.spacing.nodeNodeBetweenLayers", opts.LayerSpacing))
	}
	return solver.NewLayoutOptions(solverOpts...)
}

func toSolverDirection(d model.Direction) solver.Direction {
	switch d {
	case model.DirectionDown:
		return solver.DirectionDown
	case model.DirectionLeft:
		return solver.DirectionLeft
	case model.DirectionUp:
		return solver.DirectionUp
	default:
		return solver.DirectionRight
	}
}
