// Package boundarypost finishes what layout leaves for boundary events and
// their exception chains after the main node placement pass: it
// restores a host-attached event to its chosen border whenever the host
// moves, picks that border in the first place from the dominant direction
// toward the event's first valid target, spreads multiple events on one
// border evenly, lays the exception chain out as a left-to-right row below
// (or above) the host, pushes any happy-path target the chain would
// otherwise overlap out of the way, and aligns the chain's off-path end
// events to one shared secondary row.
//
// Chain discovery reuses boundary.IdentifyBoundaryEvents/ExceptionChain
// directly rather than re-walking the graph. Row layout is grounded on
// rengine/position.go's centre-point, gap-accumulating row construction,
// adapted from a forward topological sweep to a fixed linear chain.
package boundarypost
