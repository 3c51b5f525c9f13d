package spline

import (
	"math"

	"github.com/cwbudde/algo-spline/internal/core"
)

// Curve is a monotone cubic Hermite interpolant. The zero value is not
// usable; construct one with [New].
type Curve struct {
	knots  []float64
	values []float64
	slopes []float64
}

// New builds a monotone curve through (knots[i], values[i]).
//
// Both slices must have the same length of at least two, contain only finite
// numbers and be strictly increasing. The inputs are copied.
func New(knots, values []float64) (*Curve, error) {
	if err := validate(knots, values); err != nil {
		return nil, err
	}

	return &Curve{
		knots:  core.Clone(knots),
		values: core.Clone(values),
		slopes: fritschCarlson(knots, values),
	}, nil
}

// fritschCarlson returns one derivative per knot such that every cubic
// Hermite piece is monotone. Inputs must already be validated.
func fritschCarlson(t, y []float64) []float64 {
	n := len(t)

	// Secants are fixed before any slope is touched; the scaling pass below
	// relies on them staying unscaled.
	delta := make([]float64, n-1)
	for i := range delta {
		delta[i] = (y[i+1] - y[i]) / (t[i+1] - t[i])
	}

	m := make([]float64, n)
	if n == 2 {
		m[0] = delta[0]
		m[1] = delta[0]
		return m
	}

	for i := 1; i < n-1; i++ {
		m[i] = 0.5 * (delta[i-1] + delta[i])
	}

	// One-sided three-point estimates at the ends, kept inside [0, 3δ].
	m[0] = core.Clamp(2*delta[0]-delta[1], 0, 3*delta[0])
	m[n-1] = core.Clamp(2*delta[n-2]-delta[n-3], 0, 3*delta[n-2])

	// Unreachable for validated input, where every secant is positive.
	for i := 1; i < n-1; i++ {
		if delta[i-1]*delta[i] <= 0 {
			m[i] = 0
		}
	}

	for i := range delta {
		if delta[i] == 0 {
			m[i] = 0
			m[i+1] = 0
			continue
		}
		a := m[i] / delta[i]
		b := m[i+1] / delta[i]
		if r := a*a + b*b; r > 9 {
			tau := 3 / math.Sqrt(r)
			m[i] = tau * a * delta[i]
			m[i+1] = tau * b * delta[i]
		}
	}

	return m
}

// Eval returns the curve value at x. Outside [knots[0], knots[n-1]] the curve
// is extended linearly with the endpoint slope.
func (c *Curve) Eval(x float64) float64 {
	n := len(c.knots)
	if x <= c.knots[0] {
		return c.values[0] + (x-c.knots[0])*c.slopes[0]
	}
	if x >= c.knots[n-1] {
		return c.values[n-1] + (x-c.knots[n-1])*c.slopes[n-1]
	}

	i := c.interval(x)
	h := c.knots[i+1] - c.knots[i]
	s := (x - c.knots[i]) / h
	return Hermite(s, c.values[i], c.values[i+1], c.slopes[i], c.slopes[i+1], h)
}

// interval returns i with knots[i] <= x <= knots[i+1] for x strictly inside
// the knot range.
func (c *Curve) interval(x float64) int {
	lo, hi := 0, len(c.knots)-1
	for lo+1 < hi {
		mid := int(uint(lo+hi) >> 1)
		if c.knots[mid] <= x {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

// EvalMany evaluates the curve at every element of xs, preserving order.
func (c *Curve) EvalMany(xs []float64) []float64 {
	return c.EvalManyInto(nil, xs)
}

// EvalManyInto is like EvalMany but writes into dst, reusing its capacity,
// and returns the resulting slice of len(xs).
func (c *Curve) EvalManyInto(dst, xs []float64) []float64 {
	dst = core.EnsureLen(dst, len(xs))
	for i, x := range xs {
		dst[i] = c.Eval(x)
	}
	return dst
}

// Len returns the number of knots.
func (c *Curve) Len() int { return len(c.knots) }

// Domain returns the first and last knot.
func (c *Curve) Domain() (lo, hi float64) {
	return c.knots[0], c.knots[len(c.knots)-1]
}

// Knots returns a copy of the knot positions.
func (c *Curve) Knots() []float64 { return core.Clone(c.knots) }

// Values returns a copy of the sample values.
func (c *Curve) Values() []float64 { return core.Clone(c.values) }

// Slopes returns a copy of the per-knot derivatives.
func (c *Curve) Slopes() []float64 { return core.Clone(c.slopes) }
