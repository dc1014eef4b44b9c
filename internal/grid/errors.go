package grid

import "fmt"

// SizeError reports a construction attempt with non-positive dimensions.
type SizeError struct {
	W, H int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("grid: invalid size %dx%d, dimensions must be positive", e.W, e.H)
}

// OutOfBoundsError reports a write that resolves to no addressable cell
// under a bounded out-of-bounds policy. The grid is left unmodified.
type OutOfBoundsError struct {
	X, Y int
	W, H int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("grid: cell (%d,%d) is outside the %dx%d grid", e.X, e.Y, e.W, e.H)
}

// StateError reports an internal inconsistency, such as an unknown policy or
// cell state value. It signals a logic defect rather than a recoverable
// condition.
type StateError struct {
	Detail string
}

func (e *StateError) Error() string {
	return "grid: invalid state: " + e.Detail
}
