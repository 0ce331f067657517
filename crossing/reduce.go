package crossing

import (
	"github.com/katalvlaran/bpmnlayout/geometry"
	"github.com/katalvlaran/bpmnlayout/model"
	"github.com/katalvlaran/bpmnlayout/modeler"
)

// findInternalVerticalRun locates a vertical segment that is neither the
// connection's first nor its last leg, so nudging it sideways never moves
// where the route enters or leaves its source/target shape. It returns the
// indices of the segment's two waypoints, or -1, -1 if there is none.
func findInternalVerticalRun(wps []geometry.Point) (int, int) {
	for i := 2; i <= len(wps)-2; i++ {
		if wps[i-1].X == wps[i].X {
			return i - 1, i
		}
	}
	return -1, -1
}

func countCrossingsFor(registry *model.Registry, connID string) int {
	count := 0
	for _, p := range DetectCrossingFlows(registry).Pairs {
		if p.AID == connID || p.BID == connID {
			count++
		}
	}
	return count
}

// ReduceCrossings attempts a conservative, local fix for every detected
// crossing: nudge one of the pair's connections at an internal vertical
// run by ±NudgeOffset, and keep the nudge only if it clears the target
// crossing without increasing that connection's own crossing count — a
// candidate nudge is accepted only if it doesn't regress the
// no-new-crossings invariant. Never reorders nodes or touches any other
// connection.
func ReduceCrossings(registry *model.Registry, m *modeler.Modeler) error {
	result := DetectCrossingFlows(registry)
	for _, pair := range result.Pairs {
		if tryNudge(registry, m, pair.AID, pair.BID) {
			continue
		}
		tryNudge(registry, m, pair.BID, pair.AID)
	}
	return nil
}

// tryNudge attempts to move candidateID clear of partnerID. It reports
// whether a nudge was applied.
func tryNudge(registry *model.Registry, m *modeler.Modeler, candidateID, partnerID string) bool {
	conn, ok := registry.GetConnection(candidateID)
	if !ok {
		return false
	}
	i0, i1 := findInternalVerticalRun(conn.Waypoints)
	if i0 < 0 {
		return false
	}

	before := countCrossingsFor(registry, candidateID)
	original := conn.Waypoints[i0].X
	originalWps := append([]geometry.Point(nil), conn.Waypoints...)

	for _, delta := range []float64{NudgeOffset, -NudgeOffset} {
		wps := append([]geometry.Point(nil), originalWps...)
		wps[i0].X = original + delta
		wps[i1].X = original + delta
		_ = m.UpdateWaypoints(candidateID, wps)

		after := countCrossingsFor(registry, candidateID)
		stillCrossesPartner := false
		for _, p := range DetectCrossingFlows(registry).Pairs {
			if (p.AID == candidateID && p.BID == partnerID) || (p.BID == candidateID && p.AID == partnerID) {
				stillCrossesPartner = true
				break
			}
		}
		if !stillCrossesPartner && after <= before {
			return true
		}
		_ = m.UpdateWaypoints(candidateID, originalWps)
	}
	return false
}
