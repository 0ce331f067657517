// Package pipeline runs an ordered list of named steps over a shared
// registry/modeler context, timing each one, skipping it when its
// predicate says so, and optionally tracking how many elements a step moved
// by more than the significant-move threshold. A step's error is wrapped as
// a PipelineStepFailure that preserves the original cause, and aborts every
// later step.
//
// SelectLayoutStrategy classifies a registry into one of the four layout
// strategies from counts alone (flow nodes, flows, participants, lanes,
// expanded subprocesses, boundary events, average gateway branching), with
// no dependency on any step having already run.
//
// A step is a value {name, run, skip?, trackDelta?}, and the pipeline
// itself is a read-only ordered list plus a runner that owns the logger
// and the delta bookkeeping — treating a sequence of steps as data applied
// by a separate, dumb runner rather than as control flow baked into the
// step definitions themselves.
package pipeline
