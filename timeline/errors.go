package timeline

import "errors"

var (
	// ErrNotEnoughData is returned when times or widths is empty.
	ErrNotEnoughData = errors.New("timeline: times and widths must not be empty")
	// ErrNegativeWidth is returned for a block with negative width.
	ErrNegativeWidth = errors.New("timeline: widths must be >= 0")
	// ErrPoolClosed is delivered for jobs submitted after Close.
	ErrPoolClosed = errors.New("timeline: pool is closed")
	// ErrStepTooSmall is returned when the table step cannot advance across
	// the time range, or the table would exceed its row limit.
	ErrStepTooSmall = errors.New("timeline: table step too small for time range")
)
