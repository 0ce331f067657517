package crossing

// OrthoClassTolerance is how far a segment's shorter-axis delta may drift
// from zero and still count as horizontal or vertical rather than
// diagonal.
const OrthoClassTolerance = 3.0

// Margin keeps a crossing strictly interior: a vertical segment's y-span
// must clear a horizontal segment's y, and vice versa for x, by more than
// this much before they count as crossing rather than merely touching.
const Margin = 0.5

// NudgeOffset is the fixed distance reduce_crossings shifts a vertical
// run's x by when attempting to clear a crossing.
const NudgeOffset = 20.0

// Pair is a canonical (order-independent) crossing between two
// connections, keyed by id so the same pair is never reported twice.
type Pair struct {
	AID string
	BID string
}

// canonicalPair orders a and b so the smaller id is always first.
func canonicalPair(a, b string) Pair {
	if a <= b {
		return Pair{AID: a, BID: b}
	}
	return Pair{AID: b, BID: a}
}

// Result is detect_crossing_flows's return value.
type Result struct {
	Count int
	Pairs []Pair
}

// LaneMetrics is compute_lane_crossing_metrics's return value.
type LaneMetrics struct {
	Total     int
	Crossing  int
	Coherence int // round(100 * (total - crossing) / total), 100 if total == 0
}
