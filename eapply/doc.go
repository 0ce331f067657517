// Package eapply applies a solver.ElkNode result tree back onto a
// model.Registry: positions are accumulated recursively since ELK
// coordinates are parent-relative, and a compound node resizes only when
// the solver's computed width/height crosses the significant-resize
// threshold, matching the significant-move threshold used for position
// writes. Only nodes below the tree's synthetic root are written — the
// root itself represents the container egraph.BuildContainerGraph was
// called with, not a real shape to move.
//
// The tree walk brings an external graph's computed attributes back onto
// the owning registry, accumulating parent-relative offsets down the tree
// rather than re-importing a flat position list.
package eapply
