package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAxis is returned when an axis other than ROW, COL or FILTER is used.
	ErrInvalidAxis = errors.New("invalid axis")

	// ErrEmptyAxis is returned when the COL or ROW axis has no elements at compile time.
	ErrEmptyAxis = errors.New("empty axis")
)

// AxisError reports a problem with a specific axis.
type AxisError struct {
	Axis string
	Err  error
}

// Error implements the error interface.
func (e *AxisError) Error() string {
	if errors.Is(e.Err, ErrInvalidAxis) {
		return fmt.Sprintf("axis %q unknown, use %q, %q or %q", e.Axis, Row, Col, Filter)
	}
	return fmt.Sprintf("axis %q: %v", e.Axis, e.Err)
}

// Unwrap returns the underlying error.
func (e *AxisError) Unwrap() error {
	return e.Err
}
