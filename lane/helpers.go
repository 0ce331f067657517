package lane

import (
	"errors"
	"math"
	"sort"

	"github.com/katalvlaran/bpmnlayout/geometry"
	"github.com/katalvlaran/bpmnlayout/model"
	"github.com/katalvlaran/bpmnlayout/modeler"
)

// ErrNotAParticipant is returned when a layout function is asked to operate
// on an element that is not a Participant.
var ErrNotAParticipant = errors.New("lane: element is not a participant")

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// memberElements resolves a lane's flowNodeRef id set to elements,
// id-sorted for determinism.
func memberElements(registry *model.Registry, refs map[string]struct{}) []*model.Element {
	ids := make([]string, 0, len(refs))
	for id := range refs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]*model.Element, 0, len(ids))
	for _, id := range ids {
		if e, ok := registry.Get(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// ySpan returns the min y and max (y+height) across members.
func ySpan(members []*model.Element) (minY, maxY float64, ok bool) {
	if len(members) == 0 {
		return 0, 0, false
	}
	minY, maxY = math.Inf(1), math.Inf(-1)
	for _, e := range members {
		if e.Bounds.Y < minY {
			minY = e.Bounds.Y
		}
		if e.Bounds.Bottom() > maxY {
			maxY = e.Bounds.Bottom()
		}
	}
	return minY, maxY, true
}

// xSpan returns the min x and max (x+width) across members.
func xSpan(members []*model.Element) (minX, maxX float64, ok bool) {
	if len(members) == 0 {
		return 0, 0, false
	}
	minX, maxX = math.Inf(1), math.Inf(-1)
	for _, e := range members {
		if e.Bounds.X < minX {
			minX = e.Bounds.X
		}
		if e.Bounds.Right() > maxX {
			maxX = e.Bounds.Right()
		}
	}
	return minX, maxX, true
}

func medianCenterY(members []*model.Element) float64 {
	ys := make([]float64, len(members))
	for i, e := range members {
		ys[i] = e.Bounds.CenterY()
	}
	return median(ys)
}

func medianCenterX(members []*model.Element) float64 {
	xs := make([]float64, len(members))
	for i, e := range members {
		xs[i] = e.Bounds.CenterX()
	}
	return median(xs)
}

func median(vals []float64) float64 {
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// clampGroupDeltaY clamps delta into the range of shifts that keep every
// member within [bandTop, bandBottom] on the y axis. If the members already
// span more than the band (content taller than the band), the clamp range
// collapses to empty and the tightest-fitting delta is returned instead of
// a wider, overshooting one.
func clampGroupDeltaY(members []*model.Element, delta, bandTop, bandBottom float64) float64 {
	lower, upper := math.Inf(-1), math.Inf(1)
	for _, e := range members {
		if v := bandTop - e.Bounds.Y; v > lower {
			lower = v
		}
		if v := bandBottom - e.Bounds.Bottom(); v < upper {
			upper = v
		}
	}
	if lower > upper {
		return lower
	}
	return clampF(delta, lower, upper)
}

// clampGroupDeltaX is clampGroupDeltaY's x-axis counterpart (column mode).
func clampGroupDeltaX(members []*model.Element, delta, bandLeft, bandRight float64) float64 {
	lower, upper := math.Inf(-1), math.Inf(1)
	for _, e := range members {
		if v := bandLeft - e.Bounds.X; v > lower {
			lower = v
		}
		if v := bandRight - e.Bounds.Right(); v < upper {
			upper = v
		}
	}
	if lower > upper {
		return lower
	}
	return clampF(delta, lower, upper)
}

func clampF(v, lower, upper float64) float64 {
	if v < lower {
		return lower
	}
	if v > upper {
		return upper
	}
	return v
}

func moveGroup(m *modeler.Modeler, members []*model.Element, delta geometry.Point) error {
	ids := make([]string, len(members))
	for i, e := range members {
		ids[i] = e.ID
	}
	return m.MoveElements(ids, delta)
}
