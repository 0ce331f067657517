package routing

import (
	"math"
	"strings"

	"github.com/katalvlaran/bpmnlayout/egraph"
	"github.com/katalvlaran/bpmnlayout/geometry"
	"github.com/katalvlaran/bpmnlayout/model"
	"github.com/katalvlaran/bpmnlayout/modeler"
	"github.com/katalvlaran/bpmnlayout/solver"
)

// ApplySections walks every edge the solver returned and writes its section
// back as a connection's waypoint polyline. Synthetic
// boundary-proxy edges (egraph.ProxyEdgeIDPrefix) are skipped: they exist so
// the solver routes around the proxy target, not because a real connection
// shares their id.
func ApplySections(registry *model.Registry, m *modeler.Modeler, edges []*solver.ElkEdge) error {
	for _, e := range edges {
		if strings.HasPrefix(e.ID, egraph.ProxyEdgeIDPrefix) {
			continue
		}
		if len(e.Sections) == 0 {
			continue
		}
		conn, ok := registry.GetConnection(e.ID)
		if !ok {
			continue
		}
		wps := SectionToWaypoints(e.Sections[0])
		src, okSrc := registry.Get(conn.SourceID)
		tgt, okTgt := registry.Get(conn.TargetID)
		if okSrc && okTgt {
			wps = snapHorizontalEndpoints(wps, src.Bounds, tgt.Bounds)
		}
		if err := m.UpdateWaypoints(e.ID, wps); err != nil {
			return err
		}
		conn.SetOriginalStart(wps[0])
		conn.SetOriginalEnd(wps[len(wps)-1])
	}
	return nil
}

// SectionToWaypoints converts one ELK section (start, bends, end) into a
// rounded, orthogonally-snapped, deduplicated waypoint polyline.
func SectionToWaypoints(s solver.ElkSection) []geometry.Point {
	raw := make([]geometry.Point, 0, len(s.BendPoints)+2)
	raw = append(raw, geometry.Point{X: s.StartPoint.X, Y: s.StartPoint.Y})
	for _, b := range s.BendPoints {
		raw = append(raw, geometry.Point{X: b.X, Y: b.Y})
	}
	raw = append(raw, geometry.Point{X: s.EndPoint.X, Y: s.EndPoint.Y})

	for i := range raw {
		raw[i].X = math.Round(raw[i].X)
		raw[i].Y = math.Round(raw[i].Y)
	}
	raw = snapSegments(raw, SegmentOrthoSnap)
	return geometry.DeduplicateWaypoints(raw, 1)
}

// snapSegments snaps every consecutive pair whose smaller-axis delta is
// below tolerance to strict orthogonal, by pulling the smaller delta's axis
// on the later point flush with the earlier one.
func snapSegments(wps []geometry.Point, tolerance float64) []geometry.Point {
	out := geometry.CloneWaypoints(wps)
	for i := 1; i < len(out); i++ {
		dx := math.Abs(out[i].X - out[i-1].X)
		dy := math.Abs(out[i].Y - out[i-1].Y)
		switch {
		case dx == 0 || dy == 0:
			// Already orthogonal.
		case dx < dy && dx < tolerance:
			out[i].X = out[i-1].X
		case dy <= dx && dy < tolerance:
			out[i].Y = out[i-1].Y
		}
	}
	return out
}

// snapHorizontalEndpoints handles the 2-waypoint-horizontal-flow case: if
// both points sit within EndpointSnapTolerance of their shape's centre-y,
// snap them onto the shape's actual right/left edge instead of the
// solver's approximate docking point.
func snapHorizontalEndpoints(wps []geometry.Point, src, tgt geometry.Rect) []geometry.Point {
	if len(wps) != 2 {
		return wps
	}
	start, end := wps[0], wps[1]
	if math.Abs(start.Y-src.CenterY()) > EndpointSnapTolerance ||
		math.Abs(end.Y-tgt.CenterY()) > EndpointSnapTolerance {
		return wps
	}
	snapped := make([]geometry.Point, 2)
	snapped[0] = geometry.Point{X: src.Right(), Y: src.CenterY()}
	snapped[1] = geometry.Point{X: tgt.X, Y: tgt.CenterY()}
	return snapped
}
