package spatialgrid

import (
	"github.com/katalvlaran/bpmnlayout/geometry"
)

// DefaultCellSize is the default square cell edge length, in px.
const DefaultCellSize = 200.0

// cellKey identifies one cell of the uniform grid by integer coordinates.
type cellKey struct {
	CX, CY int
}

// Grid is a uniform-cell spatial index over shape bounding boxes.
// Not safe for concurrent mutation; callers needing concurrency should guard
// a Grid the same way model.Registry guards its own maps.
type Grid struct {
	cellSize float64
	cells    map[cellKey]map[string]struct{}
	bounds   map[string]geometry.Rect
}

// New returns an empty Grid. cellSize <= 0 falls back to DefaultCellSize.
func New(cellSize float64) *Grid {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return &Grid{
		cellSize: cellSize,
		cells:    make(map[cellKey]map[string]struct{}),
		bounds:   make(map[string]geometry.Rect),
	}
}

func (g *Grid) cellRange(r geometry.Rect) (x0, y0, x1, y1 int) {
	x0 = int(r.X / g.cellSize)
	y0 = int(r.Y / g.cellSize)
	x1 = int(r.Right() / g.cellSize)
	y1 = int(r.Bottom() / g.cellSize)
	return
}

// Insert indexes id under bounds. Idempotent: re-inserting the same id first
// removes its previous entries so Insert also serves as an update.
//
// Complexity: O(cells touched).
func (g *Grid) Insert(id string, bounds geometry.Rect) {
	g.Remove(id)
	g.bounds[id] = bounds

	x0, y0, x1, y1 := g.cellRange(bounds)
	for cx := x0; cx <= x1; cx++ {
		for cy := y0; cy <= y1; cy++ {
			key := cellKey{CX: cx, CY: cy}
			bucket, ok := g.cells[key]
			if !ok {
				bucket = make(map[string]struct{})
				g.cells[key] = bucket
			}
			bucket[id] = struct{}{}
		}
	}
}

// Update is an alias for Insert: both are idempotent on id.
func (g *Grid) Update(id string, bounds geometry.Rect) { g.Insert(id, bounds) }

// Remove deindexes id. No-op if id was never inserted.
func (g *Grid) Remove(id string) {
	old, ok := g.bounds[id]
	if !ok {
		return
	}
	x0, y0, x1, y1 := g.cellRange(old)
	for cx := x0; cx <= x1; cx++ {
		for cy := y0; cy <= y1; cy++ {
			key := cellKey{CX: cx, CY: cy}
			if bucket, ok := g.cells[key]; ok {
				delete(bucket, id)
				if len(bucket) == 0 {
					delete(g.cells, key)
				}
			}
		}
	}
	delete(g.bounds, id)
}

// GetCandidates returns the deduplicated union of ids whose cells overlap
// rect, excluding excludeID (pass "" to exclude nothing).
//
// Complexity: O(k) where k is the number of entries in the touched cells.
func (g *Grid) GetCandidates(rect geometry.Rect, excludeID string) []string {
	x0, y0, x1, y1 := g.cellRange(rect)
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for cx := x0; cx <= x1; cx++ {
		for cy := y0; cy <= y1; cy++ {
			bucket, ok := g.cells[cellKey{CX: cx, CY: cy}]
			if !ok {
				continue
			}
			for id := range bucket {
				if id == excludeID {
					continue
				}
				if _, dup := seen[id]; dup {
					continue
				}
				seen[id] = struct{}{}
				out = append(out, id)
			}
		}
	}
	return out
}

// GetCandidatesExpanded expands rect by margin on every side before
// searching. Equivalent to GetCandidates(rect.Expand(margin), excludeID).
func (g *Grid) GetCandidatesExpanded(rect geometry.Rect, margin float64, excludeID string) []string {
	return g.GetCandidates(rect.Expand(margin), excludeID)
}
