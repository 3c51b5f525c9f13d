package spline

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-spline/internal/core"
)

var (
	// ErrInsufficientPoints is returned when fewer than two knots are given.
	ErrInsufficientPoints = errors.New("spline: need at least two points")
	// ErrLengthMismatch is returned when knots and values differ in length.
	ErrLengthMismatch = errors.New("spline: knots and values must have same length")
	// ErrNonFiniteInput is returned when any knot or value is NaN or ±Inf.
	ErrNonFiniteInput = errors.New("spline: input contains NaN or Inf")
	// ErrNonMonotonicKnots matches a [MonotonicityError] on the knots.
	ErrNonMonotonicKnots = errors.New("spline: knots must be strictly increasing")
	// ErrNonMonotonicValues matches a [MonotonicityError] on the values.
	ErrNonMonotonicValues = errors.New("spline: values must be strictly increasing")
)

// Sequence names the input slice a [MonotonicityError] refers to.
type Sequence int

const (
	// SequenceKnots refers to the knot positions.
	SequenceKnots Sequence = iota
	// SequenceValues refers to the sample values.
	SequenceValues
)

func (s Sequence) String() string {
	switch s {
	case SequenceKnots:
		return "knots"
	case SequenceValues:
		return "values"
	default:
		return fmt.Sprintf("Sequence(%d)", int(s))
	}
}

// MonotonicityError reports the first index i at which seq[i+1] <= seq[i].
// It matches [ErrNonMonotonicKnots] or [ErrNonMonotonicValues] under
// errors.Is, depending on Sequence.
type MonotonicityError struct {
	Sequence Sequence
	Index    int
}

func (e *MonotonicityError) Error() string {
	return fmt.Sprintf("spline: %s not strictly increasing at index %d", e.Sequence, e.Index)
}

func (e *MonotonicityError) Is(target error) bool {
	switch e.Sequence {
	case SequenceKnots:
		return target == ErrNonMonotonicKnots
	case SequenceValues:
		return target == ErrNonMonotonicValues
	default:
		return false
	}
}

func validate(knots, values []float64) error {
	n := len(knots)
	if n < 2 {
		return ErrInsufficientPoints
	}
	if len(values) != n {
		return fmt.Errorf("%w: %d knots, %d values", ErrLengthMismatch, n, len(values))
	}
	if i := core.FirstNonFinite(knots); i >= 0 {
		return fmt.Errorf("%w: knots[%d] = %v", ErrNonFiniteInput, i, knots[i])
	}
	if i := core.FirstNonFinite(values); i >= 0 {
		return fmt.Errorf("%w: values[%d] = %v", ErrNonFiniteInput, i, values[i])
	}

	ki := core.FirstNonIncreasing(knots)
	vi := core.FirstNonIncreasing(values)
	switch {
	case ki >= 0 && (vi < 0 || ki <= vi):
		return &MonotonicityError{Sequence: SequenceKnots, Index: ki}
	case vi >= 0:
		return &MonotonicityError{Sequence: SequenceValues, Index: vi}
	}
	return nil
}
