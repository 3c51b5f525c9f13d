package timeline

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-spline/spline"
)

// maxTableRows bounds the memoized table of a single Track.
const maxTableRows = 1 << 24

// Sample is one row of a Track's memoized table.
type Sample struct {
	Time  float64
	Value float64
}

// Track maps a playback time to the strip offset that should be centred.
// A Track is safe for concurrent use.
type Track struct {
	curve *spline.Curve
	cfg   Config

	tableOnce sync.Once
	table     []Sample
}

// NewTrack builds a Track that puts block i in the centre at times[i].
// times must be strictly increasing and widths non-negative; at least two
// blocks are needed.
func NewTrack(times, widths []float64, opts ...Option) (*Track, error) {
	if len(times) == 0 || len(widths) == 0 {
		return nil, ErrNotEnoughData
	}
	for i, w := range widths {
		if w < 0 {
			return nil, fmt.Errorf("%w: widths[%d] = %v", ErrNegativeWidth, i, w)
		}
	}

	cfg := ApplyOptions(opts...)
	curve, err := spline.New(times, CumulativeCenters(widths, cfg.Gap))
	if err != nil {
		return nil, fmt.Errorf("timeline: failed to build curve: %w", err)
	}
	if err := checkStep(curve, cfg.Step); err != nil {
		return nil, err
	}

	return &Track{curve: curve, cfg: cfg}, nil
}

// checkStep rejects steps that would not advance the table clock across the
// whole time range, or that would need more than maxTableRows rows.
func checkStep(curve *spline.Curve, step float64) error {
	lo, hi := curve.Domain()
	if lo+step == lo || hi+step == hi {
		return fmt.Errorf("%w: step %v does not advance times in [%v, %v]", ErrStepTooSmall, step, lo, hi)
	}
	if rows := (hi-lo)/step + 1; rows > maxTableRows {
		return fmt.Errorf("%w: step %v needs %.0f rows, limit %d", ErrStepTooSmall, step, rows, maxTableRows)
	}
	return nil
}

// Curve returns the underlying spline in layout units.
func (t *Track) Curve() *spline.Curve { return t.curve }

// Config returns the settings the Track was built with.
func (t *Track) Config() Config { return t.cfg }

// Bounds returns the first and last block time.
func (t *Track) Bounds() (min, max float64) { return t.curve.Domain() }

// Offset returns the scaled strip offset at time tm.
func (t *Track) Offset(tm float64) float64 {
	return t.curve.Eval(tm) * t.cfg.Scale
}

// Offsets evaluates Offset for each time, preserving order.
func (t *Track) Offsets(times []float64) []float64 {
	raw := t.curve.EvalMany(times)
	out := make([]float64, len(raw))
	vecmath.ScaleBlock(out, raw, t.cfg.Scale)
	return out
}

// Table returns offsets sampled every Step from the first to the last block
// time. The table is computed once; each call returns a fresh copy.
func (t *Track) Table() []Sample {
	t.tableOnce.Do(t.buildTable)

	out := make([]Sample, len(t.table))
	copy(out, t.table)
	return out
}

func (t *Track) buildTable() {
	lo, hi := t.Bounds()

	var times []float64
	for tm := lo; tm <= hi; tm += t.cfg.Step {
		times = append(times, tm)
	}

	values := t.Offsets(times)
	t.table = make([]Sample, len(times))
	for i := range times {
		t.table[i] = Sample{Time: times[i], Value: values[i]}
	}
}

// Lookup returns the memoized offset of the last table row at or before tm.
// Times before the table, and NaN, resolve to its first row.
func (t *Track) Lookup(tm float64) float64 {
	t.tableOnce.Do(t.buildTable)

	if math.IsNaN(tm) {
		return t.table[0].Value
	}
	i := sort.Search(len(t.table), func(i int) bool { return t.table[i].Time > tm }) - 1
	return t.table[max(i, 0)].Value
}
