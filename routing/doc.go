// Package routing turns a solved node tree back into connection waypoints:
// ELK edge sections become polylines, connections the solver never
// saw (boundary outflows, cross-pool message flows, associations,
// self-loops) get a fallback shape, parallel message flows are spaced apart,
// and a final orthogonal-snap pass cleans up near-diagonal segments.
//
// The fallback shapes walk from a source toward a target and record the
// waypoints visited along the way, the same "walk and record" shape as a
// path search over a graph, but fixed to L/Z/dog-leg/self-loop geometry
// instead of a BFS/DFS search.
package routing
