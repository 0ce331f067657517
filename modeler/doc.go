// Package modeler is the synchronized mutator of element geometry. Other
// packages move, resize, or reroute elements by calling through a *Modeler
// rather than writing model.Element/model.Connection fields directly, so
// diagram-interchange bounds stay synchronized with the bounding box. Two
// passes write those fields directly instead: lane's column-mode banding
// (lane and pool bounds) and layout's grid snap (element top-left corners
// and waypoints).
//
// Modeler.MoveElements, ResizeShape, and UpdateWaypoints are straightforward
// synchronized setters. LayoutConnection additionally invokes the default
// router: a left-to-right connection gets an orthogonal Z/L route between
// the facing edges, and any other connection gets one straight segment
// between its endpoints cropped to the shape boundaries.
//
// Boundary events are the one documented exception: a generic move would
// let MoveElements' caller detach a boundary event from its host by
// accident, so moving one through MoveElements is rejected with
// ErrBoundaryEventMove. Callers that legitimately need to reposition a
// boundary event call MutateBoundaryBounds instead, which bypasses the
// normal containment check but still synchronizes DI bounds at that one
// explicit call site.
package modeler
