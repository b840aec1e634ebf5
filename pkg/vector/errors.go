package vector

import "go.llib.dev/frameless/pkg/errorkit"

const (
	// ErrOutOfBounds is the precondition failure of an index, front/back or dereference access.
	ErrOutOfBounds errorkit.Error = "ErrOutOfBounds"
	// ErrInvalidSlice is returned when a strided slice is configured with bounds its backing vector can't satisfy.
	ErrInvalidSlice errorkit.Error = "ErrInvalidSlice"
	// ErrIteratorMismatch is returned when an iterator is used with a vector it doesn't belong to.
	ErrIteratorMismatch errorkit.Error = "ErrIteratorMismatch"
	// ErrNilReference is raised when a nil pointer is appended to a References vector.
	ErrNilReference errorkit.Error = "ErrNilReference"
)

func outOfBounds(index, size int) error {
	return ErrOutOfBounds.F("index %d is out of range [0, %d)", index, size)
}
