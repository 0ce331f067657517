package solver

import "context"

const (
	fakeDefaultNodeWidth  = 100.0
	fakeDefaultNodeHeight = 80.0
	fakeDefaultGap        = 50.0
)

// FakeSolver is a deterministic test double for Solver: it lays out each
// compound node's children in a single left-to-right row (grid-stub
// placement), sizing a childless leaf from the request's own Width/Height
// (or the default task size if unset) and a compound node from the union
// of its own laid-out children. It never calls out to a real ELK binding —
// egraph/eapply tests use it so those packages exercise the full
// request/response tree shape without one.
type FakeSolver struct {
	// Gap overrides the spacing between siblings in a row. Zero means
	// fakeDefaultGap.
	Gap float64
}

// Layout implements Solver. The returned tree is a deep copy; root is left
// untouched.
func (s FakeSolver) Layout(_ context.Context, root *ElkNode) (*ElkNode, error) {
	gap := s.Gap
	if gap == 0 {
		gap = fakeDefaultGap
	}

	cloned := cloneNode(root)
	layoutNode(cloned, gap)
	return cloned, nil
}

func cloneNode(n *ElkNode) *ElkNode {
	out := &ElkNode{
		ID:      n.ID,
		Options: n.Options,
		Width:   n.Width,
		Height:  n.Height,
	}
	for _, c := range n.Children {
		out.Children = append(out.Children, cloneNode(c))
	}
	for _, e := range n.Edges {
		out.Edges = append(out.Edges, &ElkEdge{
			ID:      e.ID,
			Sources: append([]string(nil), e.Sources...),
			Targets: append([]string(nil), e.Targets...),
		})
	}
	return out
}

// layoutNode sizes and positions n's subtree bottom-up: children are
// recursively laid out and sized before n tiles them into a row, so a
// compound child reports its final footprint before its own position is
// fixed by its parent.
func layoutNode(n *ElkNode, gap float64) {
	if len(n.Children) == 0 {
		if n.Width == 0 {
			n.Width = fakeDefaultNodeWidth
		}
		if n.Height == 0 {
			n.Height = fakeDefaultNodeHeight
		}
		return
	}

	x := 0.0
	maxHeight := 0.0
	for _, child := range n.Children {
		layoutNode(child, gap)
		child.X = x
		child.Y = 0
		x += child.Width + gap
		if child.Height > maxHeight {
			maxHeight = child.Height
		}
	}
	totalWidth := x - gap

	if n.Width == 0 {
		n.Width = totalWidth
	}
	if n.Height == 0 {
		n.Height = maxHeight
	}

	byID := make(map[string]*ElkNode, len(n.Children))
	for _, c := range n.Children {
		byID[c.ID] = c
	}
	for _, e := range n.Edges {
		if len(e.Sources) == 0 || len(e.Targets) == 0 {
			continue
		}
		src, okSrc := byID[e.Sources[0]]
		tgt, okTgt := byID[e.Targets[0]]
		if !okSrc || !okTgt {
			continue
		}
		e.Sections = []ElkSection{{
			StartPoint: elkCenter(src),
			EndPoint:   elkCenter(tgt),
		}}
	}
}

func elkCenter(n *ElkNode) ElkPoint {
	return ElkPoint{X: n.X + n.Width/2, Y: n.Y + n.Height/2}
}
