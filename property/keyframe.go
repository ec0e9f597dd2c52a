package property

import (
	"sync"

	"github.com/gogpu/anim"
	"github.com/gogpu/anim/internal/curve"
)

// InterpolationType selects how a keyframe moves from its start value to
// its end value.
type InterpolationType uint8

const (
	// InterpolationNone keeps the start value for the whole keyframe.
	InterpolationNone InterpolationType = iota
	// InterpolationLinear moves at constant speed.
	InterpolationLinear
	// InterpolationBezier moves along the temporal ease curve.
	InterpolationBezier
	// InterpolationHold keeps the start value and jumps at EndTime.
	InterpolationHold
)

// String returns a human-readable name for the interpolation type.
func (t InterpolationType) String() string {
	switch t {
	case InterpolationNone:
		return "None"
	case InterpolationLinear:
		return "Linear"
	case InterpolationBezier:
		return "Bezier"
	case InterpolationHold:
		return "Hold"
	default:
		return "Unknown"
	}
}

// IsContinuous reports whether values change on every frame of the
// keyframe, as opposed to jumping only at its boundaries.
func (t InterpolationType) IsContinuous() bool {
	return t == InterpolationLinear || t == InterpolationBezier
}

// Keyframe is one timed segment of an animated value.
//
// BezierOut and BezierIn hold the temporal ease control points in
// normalized (progress, value) space, one pair per value dimension.
// SpatialOut and SpatialIn are tangents relative to the start and end
// values and only apply to point-valued keyframes.
type Keyframe[T any] struct {
	StartValue    T
	EndValue      T
	StartTime     anim.Frame
	EndTime       anim.Frame
	Interpolation InterpolationType
	BezierOut     []anim.Point
	BezierIn      []anim.Point
	SpatialOut    anim.Point
	SpatialIn     anim.Point

	spatialOnce  sync.Once
	spatialCurve curve.CubicBez
	spatialTable *curve.ArcLengthTable
}

// ContainsTime reports whether StartTime <= frame < EndTime.
func (k *Keyframe[T]) ContainsTime(frame anim.Frame) bool {
	return k.StartTime <= frame && frame < k.EndTime
}

// Verify reports whether the keyframe is well formed.
func (k *Keyframe[T]) Verify() bool {
	if k == nil || k.EndTime < k.StartTime {
		return false
	}
	if k.Interpolation == InterpolationBezier {
		return len(k.BezierOut) > 0 && len(k.BezierOut) == len(k.BezierIn)
	}
	return true
}

// Progress returns the eased progress through the keyframe at frame for
// the given value dimension, in [0, 1].
func (k *Keyframe[T]) Progress(frame anim.Frame, dimension int) float32 {
	switch k.Interpolation {
	case InterpolationLinear:
		return float32(k.linearProgress(frame))
	case InterpolationBezier:
		return float32(k.ease(dimension).Value(k.linearProgress(frame)))
	default:
		return 0
	}
}

func (k *Keyframe[T]) linearProgress(frame anim.Frame) float64 {
	span := k.EndTime - k.StartTime
	if span <= 0 {
		return 1
	}
	return float64(frame-k.StartTime) / float64(span)
}

func (k *Keyframe[T]) ease(dimension int) curve.Ease {
	if len(k.BezierOut) == 0 || len(k.BezierIn) == 0 {
		return curve.LinearEase
	}
	if dimension >= len(k.BezierOut) || dimension >= len(k.BezierIn) {
		dimension = 0
	}
	out, in := k.BezierOut[dimension], k.BezierIn[dimension]
	return curve.Ease{
		Out: curve.Vec{X: float64(out.X), Y: float64(out.Y)},
		In:  curve.Vec{X: float64(in.X), Y: float64(in.Y)},
	}
}

// HasSpatialTangents reports whether the keyframe moves along a curved
// spatial path.
func (k *Keyframe[T]) HasSpatialTangents() bool {
	return !k.SpatialOut.IsZero() || !k.SpatialIn.IsZero()
}

// spatialSegments is the arc-length sampling resolution for spatial
// keyframes.
const spatialSegments = 64

// spatialPath returns the motion path between start and end and its
// arc-length table. Built once per keyframe.
func (k *Keyframe[T]) spatialPath(start, end anim.Point) (curve.CubicBez, *curve.ArcLengthTable) {
	k.spatialOnce.Do(func() {
		c1 := start.Add(k.SpatialOut)
		c2 := end.Add(k.SpatialIn)
		k.spatialCurve = curve.CubicBez{
			P0: curve.Vec{X: float64(start.X), Y: float64(start.Y)},
			P1: curve.Vec{X: float64(c1.X), Y: float64(c1.Y)},
			P2: curve.Vec{X: float64(c2.X), Y: float64(c2.Y)},
			P3: curve.Vec{X: float64(end.X), Y: float64(end.Y)},
		}
		k.spatialTable = curve.NewArcLengthTable(k.spatialCurve, spatialSegments)
	})
	return k.spatialCurve, k.spatialTable
}
