package rengine

import (
	"math"
	"sort"
)

// ResolveOverlaps is a safety net run after initial placement: positions
// are grouped by rounded x, then within each x-group by rounded y; any
// group of two or more elements sharing a rounded (x,y) is spread
// symmetrically around that y with spacing branchSpacing/2. Input is never
// mutated; a new map is returned.
func ResolveOverlaps(positions map[string]Position, branchSpacing float64) map[string]Position {
	type bucketKey struct{ x, y int }
	buckets := make(map[bucketKey][]string)

	for id, p := range positions {
		key := bucketKey{x: int(math.Round(p.X)), y: int(math.Round(p.Y))}
		buckets[key] = append(buckets[key], id)
	}

	out := make(map[string]Position, len(positions))
	for id, p := range positions {
		out[id] = p
	}

	spacing := branchSpacing / 2
	for _, ids := range buckets {
		if len(ids) < 2 {
			continue
		}
		sort.Strings(ids)
		n := len(ids)
		baseY := positions[ids[0]].Y
		for i, id := range ids {
			offset := (float64(i) - float64(n-1)/2) * spacing
			p := out[id]
			p.Y = baseY + offset
			out[id] = p
		}
	}

	return out
}
