package spline

// HermiteBasis returns the four cubic Hermite basis polynomials at s in [0,1]:
//
//	h00 = 2s³ - 3s² + 1
//	h10 = s³ - 2s² + s
//	h01 = -2s³ + 3s²
//	h11 = s³ - s²
func HermiteBasis(s float64) (h00, h10, h01, h11 float64) {
	s2 := s * s
	h00 = (2*s-3)*s2 + 1
	h10 = (s-2)*s2 + s
	h01 = (-2*s + 3) * s2
	h11 = (s - 1) * s2
	return h00, h10, h01, h11
}

// Hermite blends endpoint values y0, y1 and endpoint derivatives m0, m1 over
// an interval of width h, at normalized position s in [0,1].
func Hermite(s, y0, y1, m0, m1, h float64) float64 {
	h00, h10, h01, h11 := HermiteBasis(s)
	return h00*y0 + h10*h*m0 + h01*y1 + h11*h*m1
}
