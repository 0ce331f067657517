package model

import "errors"

// Sentinel errors for registry operations.
var (
	// ErrElementNotFound indicates a requested element id does not exist.
	ErrElementNotFound = errors.New("model: element not found")

	// ErrConnectionNotFound indicates a requested connection id does not exist.
	ErrConnectionNotFound = errors.New("model: connection not found")

	// ErrDuplicateID indicates an Add call referenced an id already present.
	ErrDuplicateID = errors.New("model: duplicate id")

	// ErrInvalidWaypoints indicates a connection was given fewer than 2
	// waypoints, which is too few to describe a route.
	ErrInvalidWaypoints = errors.New("model: connection must have at least 2 waypoints")
)
