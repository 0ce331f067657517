package modeler

import "errors"

// Sentinel errors for modeler operations.
var (
	// ErrBoundaryEventMove indicates MoveElements was asked to move a
	// boundary event; callers must use MutateBoundaryBounds instead.
	ErrBoundaryEventMove = errors.New("modeler: boundary events cannot be moved via MoveElements")

	// ErrElementNotFound indicates an operation referenced a missing element.
	ErrElementNotFound = errors.New("modeler: element not found")

	// ErrConnectionNotFound indicates an operation referenced a missing connection.
	ErrConnectionNotFound = errors.New("modeler: connection not found")

	// ErrParentBoundsViolation indicates a move/resize would place a shape
	// outside its parent's bounding box, for Participant/expanded-SubProcess
	// parents, which must fully contain their children.
	ErrParentBoundsViolation = errors.New("modeler: move or resize would violate parent containment")
)
