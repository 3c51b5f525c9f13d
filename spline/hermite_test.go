package spline

import "testing"

func TestHermiteBasisEndpoints(t *testing.T) {
	h00, h10, h01, h11 := HermiteBasis(0)
	if h00 != 1 || h10 != 0 || h01 != 0 || h11 != 0 {
		t.Fatalf("HermiteBasis(0) = %v %v %v %v, want 1 0 0 0", h00, h10, h01, h11)
	}

	h00, h10, h01, h11 = HermiteBasis(1)
	if h00 != 0 || h10 != 0 || h01 != 1 || h11 != 0 {
		t.Fatalf("HermiteBasis(1) = %v %v %v %v, want 0 0 1 0", h00, h10, h01, h11)
	}
}

func TestHermiteBasisPartitionOfUnity(t *testing.T) {
	for _, s := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1} {
		h00, _, h01, _ := HermiteBasis(s)
		if diff := h00 + h01 - 1; diff < -1e-15 || diff > 1e-15 {
			t.Fatalf("s=%v: h00+h01 = %v, want 1", s, h00+h01)
		}
	}
}

func TestHermiteMidpoint(t *testing.T) {
	// At s=0.5: h00=h01=0.5, h10=0.125, h11=-0.125.
	got := Hermite(0.5, 1, 3, 2, 6, 2)
	want := 0.5*1 + 0.125*2*2 + 0.5*3 - 0.125*2*6
	if diff := got - want; diff < -1e-12 || diff > 1e-12 {
		t.Fatalf("Hermite midpoint = %v, want %v", got, want)
	}
}

func TestHermiteReproducesLine(t *testing.T) {
	// A line y = 2x + 1 over [0, 4] has slope 2 at both ends.
	for _, s := range []float64{0, 0.2, 0.5, 0.8, 1} {
		got := Hermite(s, 1, 9, 2, 2, 4)
		want := 2*(4*s) + 1
		if diff := got - want; diff < -1e-12 || diff > 1e-12 {
			t.Fatalf("s=%v: got %v want %v", s, got, want)
		}
	}
}
