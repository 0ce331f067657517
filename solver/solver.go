package solver

import (
	"context"
	"strconv"
)

// Solver is the black-box layered-layout boundary. A real binding
// shells out to (or calls a library wrapping) ELK; this module only ever
// depends on this interface.
type Solver interface {
	// Layout positions every node in root's tree and routes every edge,
	// returning a new tree with X/Y/Width/Height populated on nodes and
	// Sections populated on edges. The input tree is not mutated.
	Layout(ctx context.Context, root *ElkNode) (*ElkNode, error)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
