package property

import "github.com/gogpu/anim"

// Property is a constant or keyframed scene attribute.
type Property[T any] interface {
	// ValueAt returns the value at frame.
	ValueAt(frame anim.Frame) T

	// Animatable reports whether the value can change over time.
	Animatable() bool

	// ExcludeVaryingRanges removes or splits the frames this property
	// prevents from being static.
	ExcludeVaryingRanges(timeRanges *[]anim.TimeRange)

	// Verify reports whether the property is well formed.
	Verify() bool
}

// Varying is implemented by every scene node that can make frames
// non-static.
type Varying interface {
	ExcludeVaryingRanges(timeRanges *[]anim.TimeRange)
}

// Verifier is implemented by every scene node that can be validated.
type Verifier interface {
	Verify() bool
}

// Constant is a Property whose value never changes.
type Constant[T any] struct {
	Value T
}

// NewConstant returns a constant property holding value.
func NewConstant[T any](value T) *Constant[T] {
	return &Constant[T]{Value: value}
}

// ValueAt returns the constant value for every frame.
func (c *Constant[T]) ValueAt(anim.Frame) T { return c.Value }

// Animatable returns false.
func (c *Constant[T]) Animatable() bool { return false }

// ExcludeVaryingRanges does nothing: a constant never varies.
func (c *Constant[T]) ExcludeVaryingRanges(*[]anim.TimeRange) {}

// Verify returns true.
func (c *Constant[T]) Verify() bool { return true }

// ExcludeAll calls ExcludeVaryingRanges on every non-nil item.
func ExcludeAll(timeRanges *[]anim.TimeRange, items ...Varying) {
	for _, item := range items {
		if item != nil {
			item.ExcludeVaryingRanges(timeRanges)
		}
	}
}

// Required reports whether every item is non-nil and verifies.
func Required(items ...Verifier) bool {
	for _, item := range items {
		if item == nil || !item.Verify() {
			return false
		}
	}
	return true
}

// Optional reports whether every non-nil item verifies.
func Optional(items ...Verifier) bool {
	for _, item := range items {
		if item != nil && !item.Verify() {
			return false
		}
	}
	return true
}

// Keyframes returns the keyframes of p, or nil if p is not animatable.
func Keyframes[T any](p Property[T]) []*Keyframe[T] {
	if a, ok := p.(*AnimatableProperty[T]); ok {
		return a.keyframes
	}
	return nil
}
