package crossing

import (
	"math"

	"github.com/katalvlaran/bpmnlayout/model"
)

// ComputeLaneCrossingMetrics scores how well sequence flows respect lane
// boundaries: a flow "crosses a lane" when both its endpoints are
// lane-assigned and the assignments differ. Coherence is the percentage of
// lane-spanning flows that stayed within a single lane.
func ComputeLaneCrossingMetrics(registry *model.Registry) LaneMetrics {
	var metrics LaneMetrics
	for _, c := range registry.FilterConnections(func(c *model.Connection) bool {
		return c.Kind == model.SequenceFlow
	}) {
		src, okSrc := registry.Get(c.SourceID)
		tgt, okTgt := registry.Get(c.TargetID)
		if !okSrc || !okTgt || src.FlowNode == nil || tgt.FlowNode == nil {
			continue
		}
		if src.FlowNode.InLaneID == "" || tgt.FlowNode.InLaneID == "" {
			continue
		}
		metrics.Total++
		if src.FlowNode.InLaneID != tgt.FlowNode.InLaneID {
			metrics.Crossing++
		}
	}
	if metrics.Total == 0 {
		metrics.Coherence = 100
		return metrics
	}
	metrics.Coherence = int(math.Round(100 * float64(metrics.Total-metrics.Crossing) / float64(metrics.Total)))
	return metrics
}
