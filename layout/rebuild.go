package layout

import (
	"context"
	"fmt"

	"github.com/katalvlaran/bpmnlayout/artifact"
	"github.com/katalvlaran/bpmnlayout/boundarypost"
	"github.com/katalvlaran/bpmnlayout/container"
	"github.com/katalvlaran/bpmnlayout/model"
	"github.com/katalvlaran/bpmnlayout/modeler"
	"github.com/katalvlaran/bpmnlayout/pipeline"
	"github.com/katalvlaran/bpmnlayout/rengine"
)

// RebuildResult is the rebuild-layout output: {repositionedCount,
// reroutedCount}.
type RebuildResult struct {
	RepositionedCount int
	ReroutedCount     int
}

// RunRebuildLayout runs the R-engine pipeline: deterministic formulaic
// positioning (deepest containers first), boundary-event post-processing,
// and artifact placement, against the Participant/expanded-SubProcess named
// by opts.ScopeElementID (the whole canvas if unset).
func RunRebuildLayout(ctx context.Context, registry *model.Registry, m *modeler.Modeler, opts Options) (RebuildResult, error) {
	scopeID, err := resolveScope(registry, opts.ScopeElementID)
	if err != nil {
		return RebuildResult{}, err
	}

	root := container.Build(registry)
	scopeNode := root
	if scopeID != model.RootID {
		scopeNode = findContainerNode(root, scopeID)
		if scopeNode == nil {
			return RebuildResult{}, fmt.Errorf("%w: %q", ErrInvalidScope, scopeID)
		}
	}

	rengineOpts := rengine.DefaultOptions()
	if opts.NodeSpacing > 0 {
		rengineOpts.Gap = opts.NodeSpacing
	}
	if opts.LayerSpacing > 0 {
		rengineOpts.BranchSpacing = opts.LayerSpacing
	}

	beforeConns := connectionEndpoints(registry)

	p := pipeline.New(
		pipeline.Step{
			Name:       "rebuild_positions",
			TrackDelta: true,
			Run: func(context.Context) error {
				return rengine.RunRebuild(registry, m, scopeNode, rengineOpts)
			},
		},
		pipeline.Step{
			Name: "boundary_post_process",
			Run: func(context.Context) error {
				return boundarypost.Run(registry, m, boundarypost.DefaultOptions())
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
	report, err := runner.Run(ctx, registry, p)
	if err != nil {
		return RebuildResult{}, err
	}

	return RebuildResult{
		RepositionedCount: report.Steps[0].DeltaCount,
		ReroutedCount:     countReroutedConnections(beforeConns, registry),
	}, nil
}
