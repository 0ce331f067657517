package crossing

import (
	"sort"

	"github.com/katalvlaran/bpmnlayout/geometry"
	"github.com/katalvlaran/bpmnlayout/model"
)

// DetectCrossingFlows finds every pair of distinct connections whose routed
// waypoints cross. Orthogonal segments (horizontal/vertical, within
// OrthoClassTolerance) are handled by a sweep: horizontal segments sorted by
// y, each vertical segment binary-searched against the sorted band it could
// possibly cross. Any connection with a genuinely diagonal segment falls
// back to a pairwise geometry.SegmentsIntersect check against every other
// segment. The same connection never crosses itself.
func DetectCrossingFlows(registry *model.Registry) Result {
	segs := collectSegments(registry)

	var horiz, vert, diag []segment
	for _, s := range segs {
		switch s.kind {
		case segHorizontal:
			horiz = append(horiz, s)
		case segVertical:
			vert = append(vert, s)
		case segDiagonal:
			diag = append(diag, s)
		}
	}
	sort.Slice(horiz, func(i, j int) bool { return horiz[i].a.Y < horiz[j].a.Y })

	seen := make(map[Pair]bool)
	var pairs []Pair
	add := func(aID, bID string) {
		if aID == bID {
			return
		}
		p := canonicalPair(aID, bID)
		if !seen[p] {
			seen[p] = true
			pairs = append(pairs, p)
		}
	}

	for _, v := range vert {
		yLo, yHi := yRange(v)
		lo := sort.Search(len(horiz), func(i int) bool { return horiz[i].a.Y > yLo+Margin })
		hi := sort.Search(len(horiz), func(i int) bool { return horiz[i].a.Y >= yHi-Margin })
		for _, h := range horiz[lo:hi] {
			xLo, xHi := xRange(h)
			if v.a.X > xLo+Margin && v.a.X < xHi-Margin {
				add(v.connID, h.connID)
			}
		}
	}

	for i, d := range diag {
		for j := i + 1; j < len(diag); j++ {
			if diag[j].connID == d.connID {
				continue
			}
			if geometry.SegmentsIntersect(d.a, d.b, diag[j].a, diag[j].b) {
				add(d.connID, diag[j].connID)
			}
		}
		for _, h := range horiz {
			if geometry.SegmentsIntersect(d.a, d.b, h.a, h.b) {
				add(d.connID, h.connID)
			}
		}
		for _, v := range vert {
			if geometry.SegmentsIntersect(d.a, d.b, v.a, v.b) {
				add(d.connID, v.connID)
			}
		}
	}

	return Result{Count: len(pairs), Pairs: pairs}
}
