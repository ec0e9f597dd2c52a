package curve

import "math"

// Polynomial root solvers for quadratic and cubic equations.
// The quadratic solver follows kurbo's numerically robust formulation;
// the cubic solver uses Cardano's method with explicit case analysis so
// that repeated roots are reported exactly once per distinct value.

// epsilon below which discriminants and leading coefficients are
// considered zero.
const epsilon = 1e-12

// UnitTolerance is how far outside [0, 1] a root may fall and still be
// accepted (and clamped) as a curve parameter.
const UnitTolerance = 1e-6

// SolveQuadratic finds real roots of ax^2 + bx + c = 0, sorted ascending.
//
//   - If a is zero or nearly zero, the equation is treated as linear.
//   - If all coefficients are zero, a single 0 is returned.
func SolveQuadratic(a, b, c float64) []float64 {
	sc0 := c / a
	sc1 := b / a
	if !isFinite(sc0) || !isFinite(sc1) {
		return solveLinear(b, c)
	}

	arg := sc1*sc1 - 4.0*sc0
	if !isFinite(arg) {
		// Discriminant overflow: one root from sc1*x + x^2 = 0.
		root1 := -sc1
		return sortedPair(root1, sc0/root1)
	}
	if arg < 0.0 {
		return nil
	}
	if arg == 0.0 {
		return []float64{-0.5 * sc1}
	}

	// Numerically stable form avoids cancellation between -b and sqrt.
	root1 := -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	return sortedPair(root1, sc0/root1)
}

func sortedPair(root1, root2 float64) []float64 {
	if !isFinite(root2) {
		return []float64{root1}
	}
	if root1 > root2 {
		return []float64{root2, root1}
	}
	return []float64{root1, root2}
}

func solveLinear(b, c float64) []float64 {
	root := -c / b
	if isFinite(root) {
		return []float64{root}
	}
	if c == 0.0 && b == 0.0 {
		return []float64{0.0}
	}
	return nil
}

// CubicCase identifies which branch of Cardano's method produced the roots.
type CubicCase uint8

const (
	// CubicDegenerate means the leading coefficient vanished and the
	// quadratic solver was used.
	CubicDegenerate CubicCase = iota
	// CubicTripleRoot means p = q = 0: a single root of multiplicity three.
	CubicTripleRoot
	// CubicDoubleRoot means the discriminant is zero: one simple root and
	// one double root.
	CubicDoubleRoot
	// CubicOneRealRoot means the discriminant is positive.
	CubicOneRealRoot
	// CubicThreeRealRoots means the discriminant is negative (casus
	// irreducibilis), solved trigonometrically.
	CubicThreeRealRoots
)

// SolveCubic finds the distinct real roots of at^3 + bt^2 + ct + d = 0
// and reports which Cardano case applied.
func SolveCubic(a, b, c, d float64) ([]float64, CubicCase) {
	if math.Abs(a) < epsilon {
		return SolveQuadratic(b, c, d), CubicDegenerate
	}

	// Normalize and substitute t = y - B/3 to get y^3 + py + q = 0.
	nb := b / a
	nc := c / a
	nd := d / a
	shift := nb / 3.0
	p := nc - nb*nb/3.0
	q := 2.0*nb*nb*nb/27.0 - nb*nc/3.0 + nd

	halfQ := q / 2.0
	thirdP := p / 3.0
	disc := halfQ*halfQ + thirdP*thirdP*thirdP

	switch {
	case math.Abs(p) < epsilon && math.Abs(q) < epsilon:
		return []float64{-shift}, CubicTripleRoot

	case math.Abs(disc) < epsilon:
		u := math.Cbrt(-halfQ)
		return []float64{2.0*u - shift, -u - shift}, CubicDoubleRoot

	case disc > 0:
		sq := math.Sqrt(disc)
		y := math.Cbrt(-halfQ+sq) + math.Cbrt(-halfQ-sq)
		return []float64{y - shift}, CubicOneRealRoot

	default:
		r := math.Sqrt(-thirdP * thirdP * thirdP)
		cosPhi := clamp(-halfQ/r, -1, 1)
		phi := math.Acos(cosPhi)
		m := 2.0 * math.Cbrt(r)
		return []float64{
			m*math.Cos(phi/3.0) - shift,
			m*math.Cos((phi+2.0*math.Pi)/3.0) - shift,
			m*math.Cos((phi+4.0*math.Pi)/3.0) - shift,
		}, CubicThreeRealRoots
	}
}

// RootInUnitInterval returns the first root inside [0, 1], clamping roots
// that miss the interval by at most UnitTolerance.
func RootInUnitInterval(roots []float64) (float64, bool) {
	for _, r := range roots {
		if r >= -UnitTolerance && r <= 1.0+UnitTolerance {
			return clamp(r, 0, 1), true
		}
	}
	return 0, false
}

// SolveCubicInUnitInterval returns a root of at^3 + bt^2 + ct + d = 0
// lying in [0, 1].
func SolveCubicInUnitInterval(a, b, c, d float64) (float64, bool) {
	roots, _ := SolveCubic(a, b, c, d)
	return RootInUnitInterval(roots)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// isFinite returns true if x is neither infinite nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
