package list

import "errors"

// NotFound is returned by SearchByValue when no element equals the searched key.
const NotFound = -1

var (
	// ErrEmptyList is returned when an operation needs at least one node but the list has none.
	ErrEmptyList = errors.New("list is empty")
	// ErrInvalidPosition is returned for negative positions.
	ErrInvalidPosition = errors.New("invalid position")
	// ErrPositionOutOfRange is returned for non-negative positions past the end of the list.
	ErrPositionOutOfRange = errors.New("position out of range")
	// ErrValueNotFound is returned when a value-based deletion finds no matching element.
	ErrValueNotFound = errors.New("value not found")
)
