package eapply

import (
	"testing"

	"github.com/katalvlaran/bpmnlayout/geometry"
	"github.com/katalvlaran/bpmnlayout/model"
	"github.com/katalvlaran/bpmnlayout/modeler"
	"github.com/katalvlaran/bpmnlayout/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyResult_WritesPositionPastMoveThreshold(t *testing.T) {
	r := model.NewRegistry()
	require.NoError(t, r.AddElement(&model.Element{
		ID: "t1", Kind: model.KindFlowNode, FlowNode: &model.FlowNodeData{Sub: model.NodeTask},
		Bounds: geometry.Rect{X: 0, Y: 0, Width: 100, Height: 80},
	}))
	m := modeler.New(r)

	root := &solver.ElkNode{ID: model.RootID, Children: []*solver.ElkNode{
		{ID: "t1", X: 50, Y: 30, Width: 100, Height: 80},
	}}

	require.NoError(t, ApplyResult(r, m, root, DefaultThresholds()))

	t1, _ := r.Get("t1")
	assert.InDelta(t, 50, t1.Bounds.X, 0.001)
	assert.InDelta(t, 30, t1.Bounds.Y, 0.001)
}

func TestApplyResult_SkipsSubThresholdMove(t *testing.T) {
	r := model.NewRegistry()
	require.NoError(t, r.AddElement(&model.Element{
		ID: "t1", Kind: model.KindFlowNode, FlowNode: &model.FlowNodeData{Sub: model.NodeTask},
		Bounds: geometry.Rect{X: 10, Y: 10, Width: 100, Height: 80},
	}))
	m := modeler.New(r)

	root := &solver.ElkNode{ID: model.RootID, Children: []*solver.ElkNode{
		{ID: "t1", X: 10.1, Y: 10.1, Width: 100, Height: 80},
	}}

	require.NoError(t, ApplyResult(r, m, root, DefaultThresholds()))

	t1, _ := r.Get("t1")
	assert.Equal(t, 10.0, t1.Bounds.X)
	assert.Equal(t, 10.0, t1.Bounds.Y)
}

func TestApplyResult_ResizesCompoundPastThresholdAccumulatingOffset(t *testing.T) {
	r := model.NewRegistry()
	require.NoError(t, r.AddElement(&model.Element{
		ID: "sub", Kind: model.KindFlowNode, FlowNode: &model.FlowNodeData{Sub: model.NodeSubProcessExpanded},
		Bounds: geometry.Rect{X: 0, Y: 0, Width: 300, Height: 200},
	}))
	require.NoError(t, r.AddElement(&model.Element{
		ID: "inner", Kind: model.KindFlowNode, ParentID: "sub", FlowNode: &model.FlowNodeData{Sub: model.NodeTask},
		Bounds: geometry.Rect{X: 0, Y: 0, Width: 100, Height: 80},
	}))
	m := modeler.New(r)

	root := &solver.ElkNode{ID: model.RootID, Children: []*solver.ElkNode{
		{
			ID: "sub", X: 20, Y: 20, Width: 320, Height: 220,
			Children: []*solver.ElkNode{{ID: "inner", X: 30, Y: 30, Width: 100, Height: 80}},
		},
	}}

	require.NoError(t, ApplyResult(r, m, root, DefaultThresholds()))

	sub, _ := r.Get("sub")
	inner, _ := r.Get("inner")
	assert.InDelta(t, 320, sub.Bounds.Width, 0.001)
	assert.InDelta(t, 220, sub.Bounds.Height, 0.001)
	// inner's absolute position accumulates sub's own offset (20,20) plus
	// its own parent-relative (30,30).
	assert.InDelta(t, 50, inner.Bounds.X, 0.001)
	assert.InDelta(t, 50, inner.Bounds.Y, 0.001)
}

func TestApplyResult_SkipsUnknownNodeID(t *testing.T) {
	r := model.NewRegistry()
	m := modeler.New(r)
	root := &solver.ElkNode{ID: model.RootID, Children: []*solver.ElkNode{{ID: "ghost", X: 10, Y: 10}}}
	assert.NoError(t, ApplyResult(r, m, root, DefaultThresholds()))
}

func TestAccumulatedOffset_FindsNestedNode(t *testing.T) {
	root := &solver.ElkNode{
		ID: model.RootID,
		Children: []*solver.ElkNode{
			{ID: "sub", X: 20, Y: 20, Children: []*solver.ElkNode{{ID: "inner", X: 30, Y: 30}}},
		},
	}

	p, ok := AccumulatedOffset(root, "inner")
	require.True(t, ok)
	assert.Equal(t, geometry.Point{X: 50, Y: 50}, p)

	_, ok = AccumulatedOffset(root, "missing")
	assert.False(t, ok)
}
