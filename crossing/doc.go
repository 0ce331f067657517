// Package crossing detects where two connections' routed waypoints cross:
// a fast sweep-line path for orthogonal segments (sort horizontal
// segments by y, binary-search each vertical segment's candidate band),
// a pairwise fallback for any connection with a genuinely diagonal
// segment, a lane-crossing coherence score over sequence flows, and a
// conservative local nudge pass that only accepts a fix when it doesn't
// make the edge's own crossing count worse.
//
// The sweep/binary-search shape reuses geometry.SegmentsIntersect's own
// strict cross-product test as the pairwise fallback. The
// reduce_crossings accept-only-if-no-regression nudge follows the same
// shape as a union-find edge acceptance rule: a candidate edge is kept
// only if it doesn't violate an invariant — here a candidate nudge is
// accepted only if it doesn't violate the no-new-crossings invariant.
package crossing
