package curve

import "math"

// Vec is a 2D point in float64.
type Vec struct {
	X, Y float64
}

// Lerp linearly interpolates between v and w.
func (v Vec) Lerp(w Vec, t float64) Vec {
	return Vec{X: v.X + (w.X-v.X)*t, Y: v.Y + (w.Y-v.Y)*t}
}

// Distance returns the Euclidean distance between v and w.
func (v Vec) Distance(w Vec) float64 {
	return math.Hypot(w.X-v.X, w.Y-v.Y)
}

// CubicBez is a cubic Bézier curve with control points P0..P3.
type CubicBez struct {
	P0, P1, P2, P3 Vec
}

// Eval evaluates the curve at parameter t (0 to 1).
func (c CubicBez) Eval(t float64) Vec {
	mt := 1.0 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	d := 3 * mt * t * t
	e := t * t * t
	return Vec{
		X: a*c.P0.X + b*c.P1.X + d*c.P2.X + e*c.P3.X,
		Y: a*c.P0.Y + b*c.P1.Y + d*c.P2.Y + e*c.P3.Y,
	}
}

// xCoefficients returns the power-basis coefficients of x(t).
func (c CubicBez) xCoefficients() (a, b, cc, d float64) {
	x0, x1, x2, x3 := c.P0.X, c.P1.X, c.P2.X, c.P3.X
	a = -x0 + 3*x1 - 3*x2 + x3
	b = 3*x0 - 6*x1 + 3*x2
	cc = -3*x0 + 3*x1
	d = x0
	return a, b, cc, d
}

// SolveTForX returns the parameter t in [0, 1] at which the curve's
// x coordinate equals x. The curve must be monotonic in x.
func (c CubicBez) SolveTForX(x float64) (float64, bool) {
	a, b, cc, d := c.xCoefficients()
	return SolveCubicInUnitInterval(a, b, cc, d-x)
}

// YForX returns the curve's y coordinate where its x coordinate is x.
// If no parameter in [0, 1] matches, x is clamped to the curve's ends.
func (c CubicBez) YForX(x float64) float64 {
	if x <= c.P0.X {
		return c.P0.Y
	}
	if x >= c.P3.X {
		return c.P3.Y
	}
	t, ok := c.SolveTForX(x)
	if !ok {
		return c.P3.Y
	}
	return c.Eval(t).Y
}

// Ease is a timing curve: a cubic Bézier from (0,0) to (1,1) with two
// free control points, as used by keyframe temporal easing.
type Ease struct {
	Out, In Vec
}

// LinearEase is an Ease whose output equals its input.
var LinearEase = Ease{Out: Vec{X: 1.0 / 3, Y: 1.0 / 3}, In: Vec{X: 2.0 / 3, Y: 2.0 / 3}}

// Value maps a linear progress in [0, 1] to eased progress.
func (e Ease) Value(progress float64) float64 {
	if progress <= 0 {
		return 0
	}
	if progress >= 1 {
		return 1
	}
	bez := CubicBez{P0: Vec{}, P1: e.Out, P2: e.In, P3: Vec{X: 1, Y: 1}}
	return bez.YForX(progress)
}

// ArcLengthTable samples a curve into cumulative chord lengths so that a
// distance along the curve can be mapped back to a parameter.
type ArcLengthTable struct {
	lengths []float64
}

// NewArcLengthTable samples c at the given number of segments.
func NewArcLengthTable(c CubicBez, segments int) *ArcLengthTable {
	if segments < 1 {
		segments = 1
	}
	lengths := make([]float64, segments+1)
	prev := c.P0
	for i := 1; i <= segments; i++ {
		p := c.Eval(float64(i) / float64(segments))
		lengths[i] = lengths[i-1] + prev.Distance(p)
		prev = p
	}
	return &ArcLengthTable{lengths: lengths}
}

// Length returns the total approximate length of the curve.
func (a *ArcLengthTable) Length() float64 {
	return a.lengths[len(a.lengths)-1]
}

// ParamAt returns the curve parameter at which the given fraction of the
// total length has been travelled.
func (a *ArcLengthTable) ParamAt(fraction float64) float64 {
	total := a.Length()
	if total == 0 || fraction <= 0 {
		return clamp(fraction, 0, 1)
	}
	if fraction >= 1 {
		return 1
	}
	target := fraction * total
	n := len(a.lengths) - 1
	lo, hi := 0, n
	for lo < hi {
		mid := (lo + hi) / 2
		if a.lengths[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo == 0 {
		return 0
	}
	segStart := a.lengths[lo-1]
	segLen := a.lengths[lo] - segStart
	local := 0.0
	if segLen > 0 {
		local = (target - segStart) / segLen
	}
	return (float64(lo-1) + local) / float64(n)
}
