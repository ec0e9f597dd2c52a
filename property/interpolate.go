package property

import (
	"math"

	"github.com/gogpu/anim"
)

// Interpolator computes the value of a continuously interpolated keyframe
// strictly between its StartTime and EndTime.
type Interpolator[T any] func(kf *Keyframe[T], frame anim.Frame) T

// Floats interpolates scalar values with a single temporal ease.
func Floats(kf *Keyframe[float32], frame anim.Frame) float32 {
	t := kf.Progress(frame, 0)
	return kf.StartValue + (kf.EndValue-kf.StartValue)*t
}

// Points interpolates 2D points. Keyframes with spatial tangents move
// along the motion path at the speed given by the first ease; otherwise
// each axis uses its own ease.
func Points(kf *Keyframe[anim.Point], frame anim.Frame) anim.Point {
	if kf.HasSpatialTangents() {
		path, table := kf.spatialPath(kf.StartValue, kf.EndValue)
		t := table.ParamAt(float64(kf.Progress(frame, 0)))
		p := path.Eval(t)
		return anim.Point{X: float32(p.X), Y: float32(p.Y)}
	}
	tx := kf.Progress(frame, 0)
	ty := kf.Progress(frame, 1)
	return anim.Point{
		X: kf.StartValue.X + (kf.EndValue.X-kf.StartValue.X)*tx,
		Y: kf.StartValue.Y + (kf.EndValue.Y-kf.StartValue.Y)*ty,
	}
}

// Point3Ds interpolates 3D points with one ease per axis.
func Point3Ds(kf *Keyframe[anim.Point3D], frame anim.Frame) anim.Point3D {
	a, b := kf.StartValue, kf.EndValue
	return anim.Point3D{
		X: a.X + (b.X-a.X)*kf.Progress(frame, 0),
		Y: a.Y + (b.Y-a.Y)*kf.Progress(frame, 1),
		Z: a.Z + (b.Z-a.Z)*kf.Progress(frame, 2),
	}
}

// Colors interpolates RGB colors channel by channel.
func Colors(kf *Keyframe[anim.Color], frame anim.Frame) anim.Color {
	return kf.StartValue.Lerp(kf.EndValue, kf.Progress(frame, 0))
}

// Paths morphs bezier paths vertex by vertex.
func Paths(kf *Keyframe[*anim.PathData], frame anim.Frame) *anim.PathData {
	return kf.StartValue.Lerp(kf.EndValue, kf.Progress(frame, 0))
}

// Frames interpolates frame numbers (time remapping), rounding down to a
// whole frame.
func Frames(kf *Keyframe[anim.Frame], frame anim.Frame) anim.Frame {
	t := float64(kf.Progress(frame, 0))
	v := float64(kf.StartValue) + float64(kf.EndValue-kf.StartValue)*t
	return anim.Frame(math.Floor(v + 1e-6))
}

// Discrete returns the interpolator for values that cannot be blended,
// such as booleans, enums and text documents. It always yields the start
// value.
func Discrete[T any]() Interpolator[T] {
	return func(kf *Keyframe[T], _ anim.Frame) T {
		return kf.StartValue
	}
}
