package timeline

import "github.com/cwbudde/algo-vecmath"

// CumulativeCenters returns the centre offset of each block when blocks of
// the given widths are placed end to end, gap apart, starting at zero.
func CumulativeCenters(widths []float64, gap float64) []float64 {
	half := make([]float64, len(widths))
	vecmath.ScaleBlock(half, widths, 0.5)

	out := make([]float64, len(widths))
	total := 0.0
	for i, h := range half {
		total += h
		out[i] = total
		total += h
		total += gap
	}
	return out
}
