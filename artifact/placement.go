package artifact

import (
	"sort"

	"github.com/katalvlaran/bpmnlayout/geometry"
	"github.com/katalvlaran/bpmnlayout/model"
	"github.com/katalvlaran/bpmnlayout/modeler"
)

// PlaceLinkedGroups places every artifact bucketed by LinkedGroups,
// spreading it horizontally centred on its linked element.
// DataObjectRef/DataStoreRef siblings sit below the linked element,
// TextAnnotation siblings above. Each side tracks a growing occupied-rect
// list; a candidate that overlaps an already-placed sibling shifts right
// while room remains within flowMaxX+opts.SearchHeight, otherwise it drops
// to a new row below/above the previous one.
func PlaceLinkedGroups(registry *model.Registry, m *modeler.Modeler, opts Options, flowMaxX float64) error {
	groups := LinkedGroups(registry)
	for _, linkedID := range sortedKeys(groups) {
		linked, ok := registry.Get(linkedID)
		if !ok {
			continue
		}

		var below, above []*model.Element
		for _, art := range groups[linkedID] {
			if art.Artifact != nil && art.Artifact.Sub == model.TextAnnotation {
				above = append(above, art)
			} else {
				below = append(below, art)
			}
		}

		if err := placeSide(m, below, linked, linked.Bounds.Bottom()+opts.Spacing, true, opts, flowMaxX); err != nil {
			return err
		}
		if err := placeSide(m, above, linked, linked.Bounds.Y-opts.Spacing, false, opts, flowMaxX); err != nil {
			return err
		}
	}
	return nil
}

// placeSide lays out siblings sharing one side (below or above) of linked.
// goingDown selects whether overflow rows advance the y coordinate downward
// (below siblings) or upward (above siblings, rows stack toward smaller y).
func placeSide(m *modeler.Modeler, siblings []*model.Element, linked *model.Element, firstRowY float64, goingDown bool, opts Options, flowMaxX float64) error {
	if len(siblings) == 0 {
		return nil
	}

	var occupied []geometry.Rect
	rowY := firstRowY
	for _, art := range siblings {
		w, h := art.Bounds.Width, art.Bounds.Height
		x := linked.Bounds.CenterX() - w/2
		y := rowY
		if !goingDown {
			y = rowY - h
		}

		for overlapsAny(geometry.Rect{X: x, Y: y, Width: w, Height: h}, occupied) {
			if x+w <= flowMaxX+opts.SearchHeight {
				x += w + opts.Spacing
				continue
			}
			if goingDown {
				y += h + opts.Spacing
				rowY = y
			} else {
				y -= h + opts.Spacing
				rowY = y + h
			}
			x = linked.Bounds.CenterX() - w/2
		}

		rect := geometry.Rect{X: x, Y: y, Width: w, Height: h}
		occupied = append(occupied, rect)
		if err := m.ResizeShape(art.ID, rect); err != nil {
			return err
		}
	}
	return nil
}

func overlapsAny(r geometry.Rect, occupied []geometry.Rect) bool {
	for _, o := range occupied {
		if geometry.RectsOverlap(r, o) {
			return true
		}
	}
	return false
}

// PlaceUnlinkedArtifacts tiles artifacts with no linked element into a
// single row — TextAnnotations along the top of flowBBox,
// DataObjectRef/DataStoreRef/Group-less data refs along the bottom.
func PlaceUnlinkedArtifacts(registry *model.Registry, m *modeler.Modeler, opts Options, flowBBox geometry.Rect) error {
	unlinked := UnlinkedArtifacts(registry)

	var top, bottom []*model.Element
	for _, art := range unlinked {
		if art.Artifact != nil && art.Artifact.Sub == model.TextAnnotation {
			top = append(top, art)
		} else {
			bottom = append(bottom, art)
		}
	}

	if err := tileRow(m, top, flowBBox.X, flowBBox.Y, opts.Spacing, false); err != nil {
		return err
	}
	return tileRow(m, bottom, flowBBox.X, flowBBox.Bottom(), opts.Spacing, true)
}

// tileRow places elements left to right starting at (startX, rowY), spaced
// by gap. belowRow controls whether rowY is the row's top edge (bottom
// placement) or its bottom edge, i.e. the element sits just above rowY (top
// placement).
func tileRow(m *modeler.Modeler, elems []*model.Element, startX, rowY, gap float64, belowRow bool) error {
	x := startX
	for _, e := range elems {
		y := rowY
		if !belowRow {
			y = rowY - e.Bounds.Height
		}
		rect := geometry.Rect{X: x, Y: y, Width: e.Bounds.Width, Height: e.Bounds.Height}
		if err := m.ResizeShape(e.ID, rect); err != nil {
			return err
		}
		x += e.Bounds.Width + gap
	}
	return nil
}

// sortedKeys returns groups' keys id-sorted, matching the registry's own
// determinism convention.
func sortedKeys(groups map[string][]*model.Element) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
