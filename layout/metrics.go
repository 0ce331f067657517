package layout

import (
	"github.com/katalvlaran/bpmnlayout/crossing"
	"github.com/katalvlaran/bpmnlayout/model"
)

// LaneMetricsResult is the lane-metrics output: {totalLaneFlows,
// crossingLaneFlows, crossingFlowIds?, laneCoherenceScore}.
type LaneMetricsResult struct {
	TotalLaneFlows     int
	CrossingLaneFlows  int
	LaneCoherenceScore int
}

// ComputeLaneMetrics scores how well registry's sequence flows respect
// lane boundaries. Safe to call independently of RunFullLayout/
// RunRebuildLayout — it only reads FlowNodeData.InLaneID assignments.
func ComputeLaneMetrics(registry *model.Registry) LaneMetricsResult {
	m := crossing.ComputeLaneCrossingMetrics(registry)
	return LaneMetricsResult{
		TotalLaneFlows:     m.Total,
		CrossingLaneFlows:  m.Crossing,
		LaneCoherenceScore: m.Coherence,
	}
}
