// Package geometry provides the rectangle, segment and waypoint primitives
// shared by every layout component: overlap/proximity tests, Cohen-Sutherland
// segment-rect intersection, strict segment-segment crossing, waypoint
// deduplication (including oscillation collapse), and the default L/Z route
// builder used by the Manhattan router.
//
// Every operation here is pure and allocation-light; none of them touch the
// element model or the registry. Higher layers (modeler, routing) call into
// geometry and own all side effects themselves.
package geometry
