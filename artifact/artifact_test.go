package artifact

import (
	"testing"

	"github.com/katalvlaran/bpmnlayout/geometry"
	"github.com/katalvlaran/bpmnlayout/model"
	"github.com/katalvlaran/bpmnlayout/modeler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addTask(t *testing.T, r *model.Registry, id string, bounds geometry.Rect) {
	t.Helper()
	require.NoError(t, r.AddElement(&model.Element{
		ID: id, Kind: model.KindFlowNode, FlowNode: &model.FlowNodeData{Sub: model.NodeTask}, Bounds: bounds,
	}))
}

func addArtifact(t *testing.T, r *model.Registry, id string, sub model.ArtifactKind, bounds geometry.Rect) {
	t.Helper()
	require.NoError(t, r.AddElement(&model.Element{
		ID: id, Kind: model.KindArtifact, Artifact: &model.ArtifactData{Sub: sub}, Bounds: bounds,
	}))
}

func addLink(t *testing.T, r *model.Registry, id, src, tgt string) {
	t.Helper()
	require.NoError(t, r.AddConnection(&model.Connection{
		ID: id, Kind: model.Association, SourceID: src, TargetID: tgt,
		Waypoints: []geometry.Point{{X: 0, Y: 0}, {X: 1, Y: 1}},
	}))
}

func TestLinkedGroups_BucketsByLinkedElement(t *testing.T) {
	r := model.NewRegistry()
	addTask(t, r, "t1", geometry.Rect{X: 100, Y: 100, Width: 100, Height: 80})
	addArtifact(t, r, "d1", model.DataObjectRef, geometry.Rect{X: 0, Y: 0, Width: 36, Height: 50})
	addArtifact(t, r, "n1", model.TextAnnotation, geometry.Rect{X: 0, Y: 0, Width: 100, Height: 30})
	addLink(t, r, "assoc1", "d1", "t1")
	addLink(t, r, "assoc2", "t1", "n1")

	groups := LinkedGroups(r)
	require.Contains(t, groups, "t1")
	assert.Len(t, groups["t1"], 2)
	assert.Empty(t, UnlinkedArtifacts(r))
}

func TestUnlinkedArtifacts_ExcludesLinkedAndGroups(t *testing.T) {
	r := model.NewRegistry()
	addTask(t, r, "t1", geometry.Rect{X: 0, Y: 0, Width: 100, Height: 80})
	addArtifact(t, r, "linked", model.DataObjectRef, geometry.Rect{X: 0, Y: 0, Width: 36, Height: 50})
	addArtifact(t, r, "free", model.TextAnnotation, geometry.Rect{X: 0, Y: 0, Width: 100, Height: 30})
	addArtifact(t, r, "grp", model.Group, geometry.Rect{X: 0, Y: 0, Width: 10, Height: 10})
	addLink(t, r, "a1", "linked", "t1")

	unlinked := UnlinkedArtifacts(r)
	ids := make(map[string]bool)
	for _, e := range unlinked {
		ids[e.ID] = true
	}
	assert.True(t, ids["free"])
	assert.False(t, ids["linked"])
	assert.False(t, ids["grp"])
}

func TestPlaceLinkedGroups_PlacesBelowAndAboveLinkedElement(t *testing.T) {
	r := model.NewRegistry()
	addTask(t, r, "t1", geometry.Rect{X: 200, Y: 100, Width: 100, Height: 80})
	addArtifact(t, r, "d1", model.DataObjectRef, geometry.Rect{X: 0, Y: 0, Width: 36, Height: 50})
	addArtifact(t, r, "n1", model.TextAnnotation, geometry.Rect{X: 0, Y: 0, Width: 100, Height: 30})
	addLink(t, r, "a1", "d1", "t1")
	addLink(t, r, "a2", "t1", "n1")
	m := modeler.New(r)

	require.NoError(t, PlaceLinkedGroups(r, m, DefaultOptions(), 400))

	d1, _ := r.Get("d1")
	n1, _ := r.Get("n1")
	t1, _ := r.Get("t1")
	assert.InDelta(t, t1.Bounds.Bottom()+DefaultSpacing, d1.Bounds.Y, 0.001)
	assert.InDelta(t, t1.Bounds.Y-DefaultSpacing, n1.Bounds.Bottom(), 0.001)
	assert.InDelta(t, t1.Bounds.CenterX(), d1.Bounds.CenterX(), 0.001)
}

func TestPlaceLinkedGroups_OverlapShiftsRight(t *testing.T) {
	r := model.NewRegistry()
	addTask(t, r, "t1", geometry.Rect{X: 200, Y: 100, Width: 100, Height: 80})
	addArtifact(t, r, "d1", model.DataObjectRef, geometry.Rect{X: 0, Y: 0, Width: 36, Height: 50})
	addArtifact(t, r, "d2", model.DataObjectRef, geometry.Rect{X: 0, Y: 0, Width: 36, Height: 50})
	addLink(t, r, "a1", "d1", "t1")
	addLink(t, r, "a2", "d2", "t1")
	m := modeler.New(r)

	require.NoError(t, PlaceLinkedGroups(r, m, DefaultOptions(), 1000))

	d1, _ := r.Get("d1")
	d2, _ := r.Get("d2")
	assert.False(t, geometry.RectsOverlap(d1.Bounds, d2.Bounds))
	assert.InDelta(t, d1.Bounds.Y, d2.Bounds.Y, 0.001, "both siblings stay on the same row when room remains")
}

func TestPlaceUnlinkedArtifacts_TilesRow(t *testing.T) {
	r := model.NewRegistry()
	addTask(t, r, "t1", geometry.Rect{X: 0, Y: 0, Width: 100, Height: 80})
	addArtifact(t, r, "n1", model.TextAnnotation, geometry.Rect{X: 0, Y: 0, Width: 80, Height: 30})
	addArtifact(t, r, "n2", model.TextAnnotation, geometry.Rect{X: 0, Y: 0, Width: 80, Height: 30})
	m := modeler.New(r)
	flowBBox := flowBoundingBox(r)

	require.NoError(t, PlaceUnlinkedArtifacts(r, m, DefaultOptions(), flowBBox))

	n1, _ := r.Get("n1")
	n2, _ := r.Get("n2")
	assert.InDelta(t, flowBBox.X, n1.Bounds.X, 0.001)
	assert.InDelta(t, n1.Bounds.Right()+DefaultSpacing, n2.Bounds.X, 0.001)
	assert.InDelta(t, flowBBox.Y-n1.Bounds.Height, n1.Bounds.Y, 0.001, "annotation row sits just above the flow bbox")
}

func TestLayoutGroups_ResizesToWrapDirectChildren(t *testing.T) {
	r := model.NewRegistry()
	require.NoError(t, r.AddElement(&model.Element{
		ID: "g1", Kind: model.KindArtifact, Artifact: &model.ArtifactData{Sub: model.Group},
		Bounds: geometry.Rect{X: 0, Y: 0, Width: 10, Height: 10},
	}))
	addTask(t, r, "member1", geometry.Rect{X: 100, Y: 100, Width: 100, Height: 80})
	require.NoError(t, r.AddElement(&model.Element{ID: "task-in-group", Kind: model.KindFlowNode, ParentID: "g1", FlowNode: &model.FlowNodeData{Sub: model.NodeTask}, Bounds: geometry.Rect{X: 100, Y: 100, Width: 100, Height: 80}}))
	m := modeler.New(r)

	require.NoError(t, LayoutGroups(r, m, DefaultOptions(), geometry.Rect{X: 0, Y: 0, Width: 500, Height: 500}))

	g1, _ := r.Get("g1")
	assert.InDelta(t, 100-DefaultGroupPadding, g1.Bounds.X, 0.001)
	assert.InDelta(t, 100-DefaultGroupPadding, g1.Bounds.Y, 0.001)
	assert.InDelta(t, 100+2*DefaultGroupPadding, g1.Bounds.Width, 0.001)
}

func TestLayoutGroups_ClampsEmptyGroupIntoFlowBounds(t *testing.T) {
	r := model.NewRegistry()
	require.NoError(t, r.AddElement(&model.Element{
		ID: "g1", Kind: model.KindArtifact, Artifact: &model.ArtifactData{Sub: model.Group},
		Bounds: geometry.Rect{X: -500, Y: -500, Width: 50, Height: 50},
	}))
	m := modeler.New(r)
	flowBBox := geometry.Rect{X: 0, Y: 0, Width: 400, Height: 300}

	require.NoError(t, LayoutGroups(r, m, DefaultOptions(), flowBBox))

	g1, _ := r.Get("g1")
	assert.InDelta(t, flowBBox.CenterX(), g1.Bounds.CenterX(), 0.001)
	assert.InDelta(t, flowBBox.CenterY(), g1.Bounds.CenterY(), 0.001)
}
