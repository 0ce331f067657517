package geometry

// maxOscillationPasses bounds the number of backtrack-collapse passes that
// DeduplicateWaypoints performs, so a pathological input cannot loop forever.
const maxOscillationPasses = 20

// CloneWaypoints returns a fresh copy of wps so callers can mutate the
// result without aliasing the input slice.
func CloneWaypoints(wps []Point) []Point {
	out := make([]Point, len(wps))
	copy(out, wps)
	return out
}

func closeEnough(a, b Point, tolerance float64) bool {
	if tolerance <= 0 {
		return a == b
	}
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx <= tolerance && dy <= tolerance
}

// DeduplicateWaypoints removes adjacent duplicates and then collapses
// backtracking oscillations: any sub-sequence A, B, A becomes just A. A
// tolerance of 0 requires exact equality; the default tolerance used
// throughout this module is 1 px.
//
// The algorithm is two-phase:
//  1. A single linear pass drops a point that is within tolerance of the
//     immediately preceding kept point.
//  2. Up to maxOscillationPasses further passes scan the kept list and, for
//     every point that matches the second-to-last kept point, pop the
//     intervening point (the oscillation's apex) and the point itself,
//     leaving the shared point once. Passes repeat until a pass makes no
//     change or the iteration cap is hit.
//
// Complexity: O(maxOscillationPasses * n) worst case.
func DeduplicateWaypoints(wps []Point, tolerance float64) []Point {
	if len(wps) == 0 {
		return nil
	}

	kept := make([]Point, 0, len(wps))
	kept = append(kept, wps[0])
	for _, p := range wps[1:] {
		if closeEnough(p, kept[len(kept)-1], tolerance) {
			continue
		}
		kept = append(kept, p)
	}

	for pass := 0; pass < maxOscillationPasses; pass++ {
		changed := false
		collapsed := make([]Point, 0, len(kept))
		i := 0
		for i < len(kept) {
			// A->B->A: if the point two positions back equals the current
			// point, drop both the apex (B) and the current point (A),
			// keeping the single earlier occurrence of A.
			if len(collapsed) >= 1 && i+1 < len(kept) && closeEnough(kept[i+1], collapsed[len(collapsed)-1], tolerance) {
				// Skip kept[i] (apex) and kept[i+1] (the repeat).
				i += 2
				changed = true
				continue
			}
			collapsed = append(collapsed, kept[i])
			i++
		}
		kept = collapsed
		if !changed {
			break
		}
	}

	return kept
}

// BuildZRoute returns the orthogonal route connecting a point exiting a
// source's right edge to a point entering a target's left edge. When the two
// centre-ys are within 0.5 px it returns a single two-point horizontal
// segment; otherwise it returns a four-point Z route whose vertical leg sits
// at the x midway between srcRight and tgtLeft. Used by the default router
// for left-to-right connections and by neighbour-edge repair.
func BuildZRoute(srcRight, srcCy, tgtLeft, tgtCy float64) []Point {
	if closeEnough(Point{Y: srcCy}, Point{Y: tgtCy}, 0.5) {
		// Same row: a single straight horizontal segment.
		return []Point{{X: srcRight, Y: srcCy}, {X: tgtLeft, Y: tgtCy}}
	}
	midX := srcRight + (tgtLeft-srcRight)/2
	return []Point{
		{X: srcRight, Y: srcCy},
		{X: midX, Y: srcCy},
		{X: midX, Y: tgtCy},
		{X: tgtLeft, Y: tgtCy},
	}
}
