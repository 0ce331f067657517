package routing

import (
	"github.com/katalvlaran/bpmnlayout/egraph"
	"github.com/katalvlaran/bpmnlayout/model"
	"github.com/katalvlaran/bpmnlayout/modeler"
	"github.com/katalvlaran/bpmnlayout/solver"
)

// Run executes the full routing pipeline, steps 1 through 6, over
// every connection in registry. root is the solved tree egraph built and
// the solver returned; Run flattens its edges itself.
//
// Step 7 (neighbour-edge repair) is subset-mode only and is not part of
// Run: a caller doing a partial relayout invokes ApplyNeighbourRepair
// directly with its own relaidOut set.
func Run(registry *model.Registry, m *modeler.Modeler, root *solver.ElkNode) error {
	edges := egraph.CollectEdges(root)
	if err := ApplySections(registry, m, edges); err != nil {
		return err
	}

	ids := allConnectionIDs(registry)

	if err := ApplyFallbackRoutes(registry, m, ids); err != nil {
		return err
	}
	if err := ApplyAssociationRoutes(registry, m, ids); err != nil {
		return err
	}
	if err := ApplySelfLoopRoutes(registry, m, ids); err != nil {
		return err
	}
	if err := SpaceParallelMessageFlows(registry, m, ids); err != nil {
		return err
	}
	return ApplyOrthogonalSnap(registry, m, ids)
}

func allConnectionIDs(registry *model.Registry) []string {
	conns := registry.AllConnections()
	ids := make([]string, len(conns))
	for i, c := range conns {
		ids[i] = c.ID
	}
	return ids
}
