package shapes

import (
	"errors"
	"fmt"
)

// ErrRange reports a random sampling request over an empty range.
// Errors returned by the Random constructors match it with errors.Is.
var ErrRange = errors.New("shapes: empty sampling range")

// ErrDegenerateProjection reports a perspective projection of a vertex
// lying on or behind the eye plane (view distance + z <= 0), or one that
// lands further than MaxProjected from the origin.
var ErrDegenerateProjection = errors.New("shapes: degenerate projection")

// RangeError describes a non-positive sampling limit.
type RangeError struct {
	Op    string // constructor that failed, e.g. "RandomPoint"
	Name  string // limit name, e.g. "limitX"
	Limit int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("shapes: %s: %s must be positive, got %d", e.Op, e.Name, e.Limit)
}

// Is makes errors.Is(err, ErrRange) true for any *RangeError.
func (e *RangeError) Is(target error) bool {
	return target == ErrRange
}
