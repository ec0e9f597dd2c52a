// Package property evaluates constant and keyframed scene attributes at
// an arbitrary frame and reports which frames a property forces to be
// non-static.
//
// A property is either a [Constant] or an [AnimatableProperty] holding a
// sorted list of keyframes. AnimatableProperty keeps the index of the
// last keyframe it used as a lookup hint; the hint is an atomic integer
// so several renderer goroutines may evaluate the same property at
// different frames concurrently. The hint only accelerates the search:
// every result is derived from the keyframe that actually contains the
// requested frame.
//
// Interpolation of values between keyframe boundaries is delegated to an
// [Interpolator] chosen per value family ([Floats], [Points], [Colors],
// [Paths], [Frames], [Discrete]).
package property
