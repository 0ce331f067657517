package rengine

import (
	"github.com/katalvlaran/bpmnlayout/container"
	"github.com/katalvlaran/bpmnlayout/model"
	"github.com/katalvlaran/bpmnlayout/modeler"
	"github.com/katalvlaran/bpmnlayout/topology"
)

// Run positions every flow node directly owned by containerID (pass
// model.RootID for the canvas) and re-routes its sequence flows: it extracts
// the local flow graph, detects back edges and gateway patterns, computes
// the position table, resolves residual overlaps, applies the result
// through m, and finally relays out the scope's own connections. It returns
// the computed (pre-apply) position table so callers/tests can inspect it
// directly.
func Run(registry *model.Registry, m *modeler.Modeler, containerID string, opts Options) (map[string]Position, error) {
	graph := topology.ExtractFlowGraph(registry, containerID)
	backEdgeIDs := topology.DetectBackEdges(graph)
	sorted := topology.TopologicalSort(graph, backEdgeIDs)
	patterns := topology.DetectGatewayPatterns(graph, backEdgeIDs)

	positions := Compute(graph, sorted, backEdgeIDs, patterns, opts)
	positions = ResolveOverlaps(positions, opts.BranchSpacing)

	if err := ApplyPositions(m, positions, opts); err != nil {
		return positions, err
	}
	if err := RelayoutConnections(m, graph, backEdgeIDs); err != nil {
		return positions, err
	}
	return positions, nil
}

// RunRebuild is the full rebuild-layout entry point: it runs Run for
// the canvas root and for every expanded SubProcess (deepest containers
// first, via container.RebuildOrder, so a subprocess's own children settle
// before the subprocess is resized around them), then resizes expanded
// subprocesses, stacks participants, and relays out message flows.
//
// Nested containers reuse opts' gap/branch-spacing but get their own local
// origin, offset by SubprocessPadding from the container's current top-left
// — the container is resized to wrap its (just-positioned) contents
// immediately afterward, so the exact pre-resize origin only has to be
// internally consistent, not globally final.
func RunRebuild(registry *model.Registry, m *modeler.Modeler, root *container.Node, opts Options) error {
	order := container.RebuildOrder(root)
	nodesByID := make(map[string]*container.Node)
	var index func(n *container.Node)
	index = func(n *container.Node) {
		nodesByID[n.ID] = n
		for _, c := range n.Children {
			index(c)
		}
	}
	index(root)

	for _, id := range order {
		if id == model.RootID {
			if _, err := Run(registry, m, model.RootID, opts); err != nil {
				return err
			}
			continue
		}
		e, ok := registry.Get(id)
		if !ok {
			continue
		}
		isExpandedSub := e.Kind == model.KindFlowNode && e.FlowNode != nil && e.FlowNode.Sub == model.NodeSubProcessExpanded
		if !isExpandedSub && e.Kind != model.KindParticipant {
			continue
		}

		localOpts := opts
		localOpts.OriginX = e.Bounds.X + SubprocessPadding
		localOpts.OriginY = e.Bounds.Y + SubprocessPadding
		if _, err := Run(registry, m, id, localOpts); err != nil {
			return err
		}
	}

	if err := ResizeExpandedSubprocesses(registry, m, root, SubprocessPadding); err != nil {
		return err
	}
	if err := StackParticipants(registry, m, PoolGap); err != nil {
		return err
	}
	if err := RelayoutMessageFlows(registry, m); err != nil {
		return err
	}
	return nil
}
