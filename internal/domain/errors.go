package domain

import "errors"

var (
	// ErrNoPath means the goal is out of bounds, blocked or unreachable.
	ErrNoPath = errors.New("no path")
	// ErrInvalidFootprint means a structure would cover blocked or out-of-bounds cells.
	ErrInvalidFootprint = errors.New("invalid footprint")
	// ErrNonUniformGrid means the rows of a grid do not share one width.
	ErrNonUniformGrid = errors.New("non-uniform grid")
	ErrOutOfBounds    = errors.New("out of bounds")
	ErrNotFound       = errors.New("not found")
	ErrOutOfReach     = errors.New("out of reach")
	ErrDepleted       = errors.New("resource depleted")
	ErrBlockedCell    = errors.New("cell is not walkable")
)
