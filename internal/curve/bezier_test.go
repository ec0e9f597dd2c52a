package curve

import "testing"

func TestLinearEase(t *testing.T) {
	for _, x := range []float64{0, 0.1, 0.25, 0.5, 0.9, 1} {
		if got := LinearEase.Value(x); !almostEqual(got, x, 1e-6) {
			t.Errorf("LinearEase.Value(%v) = %v", x, got)
		}
	}
}

func TestEaseValue(t *testing.T) {
	easeInOut := Ease{Out: Vec{X: 0.42, Y: 0}, In: Vec{X: 0.58, Y: 1}}
	tests := []struct {
		x    float64
		want float64
	}{
		{-1, 0},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{2, 1},
	}
	for _, tt := range tests {
		if got := easeInOut.Value(tt.x); !almostEqual(got, tt.want, 1e-6) {
			t.Errorf("Value(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
	if a, b := easeInOut.Value(0.2), easeInOut.Value(0.8); !almostEqual(a, 1-b, 1e-6) {
		t.Errorf("ease-in-out is not point symmetric: %v, %v", a, b)
	}
	if v := easeInOut.Value(0.2); v >= 0.2 {
		t.Errorf("ease-in should start slow, got %v at 0.2", v)
	}
}

func TestCubicBezYForX(t *testing.T) {
	// y = 2x on [0, 0.5] with both tangents collapsed onto the endpoints.
	c := CubicBez{P0: Vec{0, 0}, P1: Vec{0, 0}, P2: Vec{0.5, 1}, P3: Vec{0.5, 1}}
	for _, x := range []float64{0.05, 0.125, 0.3, 0.45} {
		if got := c.YForX(x); !almostEqual(got, 2*x, 1e-6) {
			t.Errorf("YForX(%v) = %v, want %v", x, got, 2*x)
		}
	}
	if c.YForX(-1) != 0 || c.YForX(2) != 1 {
		t.Error("YForX does not clamp outside the curve")
	}
}

func TestArcLengthTable(t *testing.T) {
	line := CubicBez{P0: Vec{0, 0}, P1: Vec{10, 0}, P2: Vec{20, 0}, P3: Vec{30, 0}}
	table := NewArcLengthTable(line, 32)
	if !almostEqual(table.Length(), 30, 1e-9) {
		t.Errorf("Length = %v, want 30", table.Length())
	}
	for _, f := range []float64{0, 0.25, 0.5, 1} {
		if got := table.ParamAt(f); !almostEqual(got, f, 1e-6) {
			t.Errorf("ParamAt(%v) = %v", f, got)
		}
	}

	// Control points bunched at the start make the parameter run ahead
	// of the distance travelled early on.
	skewed := CubicBez{P0: Vec{0, 0}, P1: Vec{0, 0}, P2: Vec{0, 0}, P3: Vec{30, 0}}
	st := NewArcLengthTable(skewed, 256)
	if p := st.ParamAt(0.5); p <= 0.5 {
		t.Errorf("ParamAt(0.5) = %v on a slow-start curve, want > 0.5", p)
	}
}
