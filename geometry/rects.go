package geometry

// RectsOverlap reports whether a and b share any interior area.
// Touching edges (zero-area overlap) are not considered an overlap.
//
// Complexity: O(1).
func RectsOverlap(a, b Rect) bool {
	if a.Right() <= b.X || b.Right() <= a.X {
		return false
	}
	if a.Bottom() <= b.Y || b.Bottom() <= a.Y {
		return false
	}
	return true
}

// RectsNearby reports whether a and b overlap once both are grown by margin
// on every side. Used by proximity queries (boundary-host search, artifact
// overlap avoidance) where an exact touch is still "close enough".
//
// Complexity: O(1).
func RectsNearby(a, b Rect, margin float64) bool {
	return RectsOverlap(a.Expand(margin), b.Expand(margin))
}

// SegmentIntersectsRect reports whether the segment p1-p2 crosses the
// boundary of, or passes through, rect. Implemented with the Cohen-Sutherland
// line-clipping algorithm: both endpoints are classified against the rect's
// nine regions and the segment is trivially accepted/rejected or clipped one
// step at a time until a verdict is reached.
//
// Complexity: O(1) (bounded number of clip iterations).
func SegmentIntersectsRect(p1, p2 Point, rect Rect) bool {
	c1 := computeOutCode(p1, rect)
	c2 := computeOutCode(p2, rect)

	for {
		switch {
		case c1 == inside && c2 == inside:
			// Both endpoints inside the rect: a trivial accept.
			return true
		case c1&c2 != 0:
			// Both endpoints share an outside region: a trivial reject.
			return false
		default:
			var x, y float64
			// Pick an endpoint that is outside.
			outside := c1
			if outside == inside {
				outside = c2
			}
			switch {
			case outside&top != 0:
				x = p1.X + (p2.X-p1.X)*(rect.Y-p1.Y)/(p2.Y-p1.Y)
				y = rect.Y
			case outside&bottom != 0:
				x = p1.X + (p2.X-p1.X)*(rect.Bottom()-p1.Y)/(p2.Y-p1.Y)
				y = rect.Bottom()
			case outside&right != 0:
				y = p1.Y + (p2.Y-p1.Y)*(rect.Right()-p1.X)/(p2.X-p1.X)
				x = rect.Right()
			case outside&left != 0:
				y = p1.Y + (p2.Y-p1.Y)*(rect.X-p1.X)/(p2.X-p1.X)
				x = rect.X
			}
			if outside == c1 {
				p1 = Point{X: x, Y: y}
				c1 = computeOutCode(p1, rect)
			} else {
				p2 = Point{X: x, Y: y}
				c2 = computeOutCode(p2, rect)
			}
		}
	}
}

// cross returns the 2-D cross product of (o->a) and (o->b).
func cross(o, a, b Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// SegmentsIntersect reports whether open segments a1-a2 and b1-b2 cross,
// using a strict cross-product test. An endpoint touching the other segment
// (collinear or T-junction) does NOT count as an intersection — only a
// genuine interior crossing does — an endpoint touch is never counted as
// a crossing.
//
// Complexity: O(1).
func SegmentsIntersect(a1, a2, b1, b2 Point) bool {
	d1 := sign(cross(b1, b2, a1))
	d2 := sign(cross(b1, b2, a2))
	d3 := sign(cross(a1, a2, b1))
	d4 := sign(cross(a1, a2, b2))

	return d1 != 0 && d2 != 0 && d3 != 0 && d4 != 0 && d1 != d2 && d3 != d4
}
