// Package layout is the top-level orchestration surface: it wires
// every other package into the two public entry points a caller actually
// calls, RunRebuildLayout (the R-engine, a deterministic formulaic
// repositioning pass) and RunFullLayout (the E-engine, the external
// layered-solver pass plus routing/crossing/artifact placement), each
// built as a pipeline.Pipeline of named steps run through one
// pipeline.Runner so both share the same timing, logging, and
// delta-tracking behaviour.
//
// Grounded on rengine/run.go's own RunRebuild: a fixed sequence of passes
// (position, resize containers, stack participants, relayout message
// flows) each of which either succeeds or aborts the whole run — the same
// shape this package generalises to span every package, not just rengine's
// own sub-passes, and makes each pass a pipeline.Step instead of a bare
// function call so the runner's logging/delta/abort behaviour applies
// uniformly.
package layout
