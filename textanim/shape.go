package textanim

import (
	"math"

	"github.com/gogpu/anim/internal/curve"
)

// shapeFactor maps the overlap of the character span [textStart, textEnd)
// with the selected range [rangeStart, rangeEnd] to [0, 1].
func shapeFactor(shape RangeShape, textStart, textEnd, rangeStart, rangeEnd, easeHigh, easeLow float64) float64 {
	switch shape {
	case ShapeRampUp:
		return rampFactor(textStart, textEnd, rangeStart, rangeEnd)
	case ShapeRampDown:
		return 1 - rampFactor(textStart, textEnd, rangeStart, rangeEnd)
	case ShapeTriangle:
		return triangleFactor(textStart, textEnd, rangeStart, rangeEnd, easeHigh, easeLow)
	case ShapeRound:
		return roundFactor(textStart, textEnd, rangeStart, rangeEnd)
	case ShapeSmooth:
		return smoothFactor(textStart, textEnd, rangeStart, rangeEnd)
	default:
		return squareFactor(textStart, textEnd, rangeStart, rangeEnd)
	}
}

// squareFactor is the fraction of the character covered by the range.
func squareFactor(textStart, textEnd, rangeStart, rangeEnd float64) float64 {
	if textStart >= rangeEnd || textEnd <= rangeStart {
		return 0
	}
	overlap := math.Min(textEnd, rangeEnd) - math.Max(textStart, rangeStart)
	return overlap / (textEnd - textStart)
}

// rampFactor rises linearly from 0 at rangeStart to 1 at rangeEnd,
// sampled at the character's midpoint.
func rampFactor(textStart, textEnd, rangeStart, rangeEnd float64) float64 {
	mid := (textStart + textEnd) * 0.5
	if rangeEnd <= rangeStart {
		if mid >= rangeStart {
			return 1
		}
		return 0
	}
	return clamp01((mid - rangeStart) / (rangeEnd - rangeStart))
}

// triangleFactor peaks at the range center. Each half is a cubic Bézier
// from (edge, 0) to (center, 1) whose inner control points are pulled
// towards the opposite end by easeLow and easeHigh; the character's
// midpoint is mapped through the curve by solving x(t) = mid.
func triangleFactor(textStart, textEnd, rangeStart, rangeEnd, easeHigh, easeLow float64) float64 {
	mid := (textStart + textEnd) * 0.5
	if mid <= rangeStart || mid >= rangeEnd {
		return 0
	}
	center := (rangeStart + rangeEnd) * 0.5
	half := center - rangeStart
	low := clamp01(easeLow) * half
	high := clamp01(easeHigh) * half

	var bez curve.CubicBez
	if mid <= center {
		bez = curve.CubicBez{
			P0: curve.Vec{X: rangeStart, Y: 0},
			P1: curve.Vec{X: rangeStart + low, Y: 0},
			P2: curve.Vec{X: center - high, Y: 1},
			P3: curve.Vec{X: center, Y: 1},
		}
	} else {
		bez = curve.CubicBez{
			P0: curve.Vec{X: center, Y: 1},
			P1: curve.Vec{X: center + high, Y: 1},
			P2: curve.Vec{X: rangeEnd - low, Y: 0},
			P3: curve.Vec{X: rangeEnd, Y: 0},
		}
	}
	return clamp01(bez.YForX(mid))
}

// roundFactor is the height of a semicircle spanning the range, relative
// to its radius.
func roundFactor(textStart, textEnd, rangeStart, rangeEnd float64) float64 {
	mid := (textStart + textEnd) * 0.5
	if mid <= rangeStart || mid >= rangeEnd {
		return 0
	}
	radius := (rangeEnd - rangeStart) * 0.5
	d := mid - (rangeStart + radius)
	return math.Sqrt(radius*radius-d*d) / radius
}

// smoothEase is the fixed easing curve of the Smooth shape.
var smoothEase = curve.Ease{
	Out: curve.Vec{X: 0.5, Y: 0},
	In:  curve.Vec{X: 0.5, Y: 1},
}

// smoothFactor eases from 0 at either edge to 1 at the range center.
func smoothFactor(textStart, textEnd, rangeStart, rangeEnd float64) float64 {
	mid := (textStart + textEnd) * 0.5
	if mid <= rangeStart || mid >= rangeEnd {
		return 0
	}
	radius := (rangeEnd - rangeStart) * 0.5
	x := 1 - math.Abs(mid-(rangeStart+radius))/radius
	return smoothEase.Value(x)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
