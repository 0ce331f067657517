// Package container discovers the Process/Participant/expanded-SubProcess
// ownership tree and derives the post-order rebuild schedule a layout
// pipeline must follow: a parent's size can only be finalized once every
// child container has already been laid out.
//
// The tree walk is a read-only view layered over the flat element/
// connection maps, adapted into a container-kind-aware ownership tree
// that also buckets each flow node under its nearest container ancestor.
package container
