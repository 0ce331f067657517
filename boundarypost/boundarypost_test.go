package boundarypost

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
		ID: id, Kind: model.KindFlowNode, ParentID: model.RootID,
		FlowNode: &model.FlowNodeData{Sub: model.NodeTask}, Bounds: bounds,
	}))
}

func addEndEvent(t *testing.T, r *model.Registry, id string, bounds geometry.Rect) {
	t.Helper()
	require.NoError(t, r.AddElement(&model.Element{
		ID: id, Kind: model.KindFlowNode, ParentID: model.RootID,
		FlowNode: &model.FlowNodeData{Sub: model.NodeEndEvent}, Bounds: bounds,
	}))
}

func addBoundaryEvent(t *testing.T, r *model.Registry, id, hostID string, bounds geometry.Rect) {
	t.Helper()
	require.NoError(t, r.AddElement(&model.Element{
		ID: id, Kind: model.KindBoundaryEvent, ParentID: model.RootID,
		Boundary: &model.BoundaryData{HostID: hostID}, Bounds: bounds,
	}))
}

func addSeq(t *testing.T, r *model.Registry, id, src, tgt string) {
	t.Helper()
	require.NoError(t, r.AddConnection(&model.Connection{
		ID: id, Kind: model.SequenceFlow, SourceID: src, TargetID: tgt,
		Waypoints: []geometry.Point{{X: 0, Y: 0}, {X: 1, Y: 1}},
	}))
}

func TestChooseBorder_DefaultsToBottomWithNoOutgoing(t *testing.T) {
	r := model.NewRegistry()
	addTask(t, r, "host", geometry.Rect{X: 0, Y: 0, Width: 100, Height: 80})
	addBoundaryEvent(t, r, "be1", "host", geometry.Rect{X: 80, Y: 60, Width: 36, Height: 36})

	assert.Equal(t, model.BorderBottom, ChooseBorder(r, "be1"))
}

func TestChooseBorder_PicksRightForHorizontalTarget(t *testing.T) {
	r := model.NewRegistry()
	addTask(t, r, "host", geometry.Rect{X: 0, Y: 0, Width: 100, Height: 80})
	addTask(t, r, "target", geometry.Rect{X: 300, Y: 0, Width: 100, Height: 80})
	addBoundaryEvent(t, r, "be1", "host", geometry.Rect{X: 80, Y: 60, Width: 36, Height: 36})
	addSeq(t, r, "c1", "be1", "target")

	assert.Equal(t, model.BorderRight, ChooseBorder(r, "be1"))
}

func TestPlaceEventsOnHost_SpreadsMultipleEventsOnSameBorder(t *testing.T) {
	r := model.NewRegistry()
	addTask(t, r, "host", geometry.Rect{X: 0, Y: 0, Width: 300, Height: 80})
	addBoundaryEvent(t, r, "be1", "host", geometry.Rect{X: 0, Y: 60, Width: 36, Height: 36})
	addBoundaryEvent(t, r, "be2", "host", geometry.Rect{X: 0, Y: 60, Width: 36, Height: 36})
	m := modeler.New(r)

	require.NoError(t, PlaceEventsOnHost(r, m, "host"))

	be1, _ := r.Get("be1")
	be2, _ := r.Get("be2")
	assert.Equal(t, model.BorderBottom, be1.Boundary.Border)
	assert.NotEqual(t, be1.Bounds.CenterX(), be2.Bounds.CenterX())
	assert.InDelta(t, 80.0, be1.Bounds.CenterY(), 0.001) // on the host's bottom edge
}

func TestPlaceEventsOnHost_SingleEventUsesTwoThirdsFraction(t *testing.T) {
	r := model.NewRegistry()
	addTask(t, r, "host", geometry.Rect{X: 0, Y: 0, Width: 300, Height: 80})
	addBoundaryEvent(t, r, "be1", "host", geometry.Rect{X: 0, Y: 60, Width: 36, Height: 36})
	m := modeler.New(r)

	require.NoError(t, PlaceEventsOnHost(r, m, "host"))

	be1, _ := r.Get("be1")
	assert.InDelta(t, 0.0+300*DefaultBorderFraction, be1.Bounds.CenterX(), 0.001)
}

func TestRestoreHostAttachment_TracksHostAfterMove(t *testing.T) {
	r := model.NewRegistry()
	addTask(t, r, "host", geometry.Rect{X: 0, Y: 0, Width: 100, Height: 80})
	addBoundaryEvent(t, r, "be1", "host", geometry.Rect{X: 0, Y: 60, Width: 36, Height: 36})
	m := modeler.New(r)
	require.NoError(t, PlaceEventsOnHost(r, m, "host"))

	host, _ := r.Get("host")
	host.Bounds.X += 500 // simulate a later pass moving the host
	require.NoError(t, RestoreHostAttachment(r, m, "be1"))

	be1, _ := r.Get("be1")
	assert.InDelta(t, 500.0+100*DefaultBorderFraction, be1.Bounds.CenterX(), 0.001)
	assert.InDelta(t, 80.0, be1.Bounds.CenterY(), 0.001)
}

func buildHostWithChain(t *testing.T) (*model.Registry, *modeler.Modeler) {
	r := model.NewRegistry()
	addTask(t, r, "host", geometry.Rect{X: 0, Y: 0, Width: 100, Height: 80})
	addBoundaryEvent(t, r, "be1", "host", geometry.Rect{X: 80, Y: 60, Width: 36, Height: 36})
	addTask(t, r, "handle", geometry.Rect{X: 0, Y: 0, Width: 100, Height: 120})
	addEndEvent(t, r, "end1", geometry.Rect{X: 0, Y: 0, Width: 36, Height: 36})
	addSeq(t, r, "c1", "be1", "handle")
	addSeq(t, r, "c2", "handle", "end1")
	m := modeler.New(r)
	require.NoError(t, PlaceEventsOnHost(r, m, "host"))
	return r, m
}

func TestPositionExceptionChain_LaysOutLinearRowBelowHost(t *testing.T) {
	r, m := buildHostWithChain(t)

	require.NoError(t, PositionExceptionChain(r, m, "be1", DefaultOptions()))

	handle, _ := r.Get("handle")
	end1, _ := r.Get("end1")
	host, _ := r.Get("host")

	assert.Greater(t, handle.Bounds.Y, host.Bounds.Bottom())
	// both chain elements share the row's common centre-y (from the
	// tallest element, "handle").
	assert.InDelta(t, handle.Bounds.CenterY(), end1.Bounds.CenterY(), 0.001)
	assert.Greater(t, end1.Bounds.X, handle.Bounds.X)
}

func TestAlignOffPathEndEvents_NoOpWithFewerThanTwoEndEvents(t *testing.T) {
	r, m := buildHostWithChain(t)
	require.NoError(t, PositionExceptionChain(r, m, "be1", DefaultOptions()))

	before, _ := r.Get("end1")
	beforeY := before.Bounds.Y

	require.NoError(t, AlignOffPathEndEvents(r, m, "be1", DefaultOptions()))

	after, _ := r.Get("end1")
	assert.Equal(t, beforeY, after.Bounds.Y)
}

func TestPushChainTargetsBelowHappyPath_MovesOverlappingTarget(t *testing.T) {
	r, m := buildHostWithChain(t)
	require.NoError(t, PositionExceptionChain(r, m, "be1", DefaultOptions()))

	addTask(t, r, "reconcile", geometry.Rect{X: 500, Y: 10, Width: 100, Height: 80})
	addSeq(t, r, "c3", "handle", "reconcile")

	require.NoError(t, PushChainTargetsBelowHappyPath(r, m, "be1", DefaultOptions()))

	handle, _ := r.Get("handle")
	reconcile, _ := r.Get("reconcile")
	assert.GreaterOrEqual(t, reconcile.Bounds.Y, handle.Bounds.Bottom())
}

func TestRun_PlacesEventsAndLaysOutChainEndToEnd(t *testing.T) {
	r, m := buildHostWithChain(t)

	require.NoError(t, Run(r, m, DefaultOptions()))

	be1, _ := r.Get("be1")
	handle, _ := r.Get("handle")
	host, _ := r.Get("host")
	assert.Equal(t, model.BorderBottom, be1.Boundary.Border)
	assert.Greater(t, handle.Bounds.Y, host.Bounds.Bottom())
}
