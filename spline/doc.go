// Package spline provides monotone cubic interpolation after Fritsch and
// Carlson ("Monotone Piecewise Cubic Interpolation", SIAM J. Numer. Anal.,
// 1980).
//
// A [Curve] is built once from strictly increasing knots and strictly
// increasing values with [New] and is immutable afterwards. The interpolant
// passes through every sample, is itself strictly increasing and never
// overshoots its neighbouring samples.
//
// Evaluation is total: [Curve.Eval] accepts any x. Outside the knot range the
// curve continues as a straight line using the endpoint slope, so queries far
// from the data never blow up the way a cubic extrapolation would.
//
// A Curve is safe for concurrent use by multiple goroutines.
package spline
