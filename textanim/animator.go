package textanim

import (
	"github.com/gogpu/anim"
	"github.com/gogpu/anim/property"
)

// TrackingType selects where extra tracking is inserted.
type TrackingType uint8

const (
	TrackingBeforeAndAfter TrackingType = iota
	TrackingBefore
	TrackingAfter
)

// Animator is one text animator: a set of selectors and the properties
// they modulate. Nil properties are not animated by this animator.
type Animator struct {
	Selectors []Selector

	FillColor   property.Property[anim.Color]
	StrokeColor property.Property[anim.Color]

	TrackingType   property.Property[TrackingType]
	TrackingAmount property.Property[float32]
	Position       property.Property[anim.Point]
	Scale          property.Property[anim.Point]
	Rotation       property.Property[float32]
	Opacity        property.Property[float32]
}

// ExcludeVaryingRanges removes frames where a selector or a modulated
// property varies.
func (a *Animator) ExcludeVaryingRanges(timeRanges *[]anim.TimeRange) {
	for _, s := range a.Selectors {
		s.ExcludeVaryingRanges(timeRanges)
	}
	property.ExcludeAll(timeRanges,
		a.FillColor, a.StrokeColor, a.TrackingType, a.TrackingAmount,
		a.Position, a.Scale, a.Rotation, a.Opacity)
}

// Verify reports whether every selector verifies and optional
// properties are well formed.
func (a *Animator) Verify() bool {
	if a == nil {
		return false
	}
	for _, s := range a.Selectors {
		if s == nil || !s.Verify() {
			return false
		}
	}
	return property.Optional(
		a.FillColor, a.StrokeColor, a.TrackingType, a.TrackingAmount,
		a.Position, a.Scale, a.Rotation, a.Opacity)
}

// Factors returns the combined selector factor of every character at
// frame. The bool reports whether any factor is an approximation.
// Every selector is bound once, so the cost is linear in the text length
// for each selector.
func (a *Animator) Factors(chars []Character, frame anim.Frame, frameRate float32) ([]float32, bool) {
	factors := make([]float32, len(chars))
	for i := range factors {
		factors[i] = 1
	}
	bias := false
	first := true
	for _, s := range a.Selectors {
		indices, count := selectorIndices(chars, selectorBasedOn(s))
		b := bind(s, count, frame, frameRate)
		if b == nil {
			continue
		}
		m := b.mode()
		for i, index := range indices {
			var f float32
			if index >= 0 {
				var biased bool
				f, biased = b.factor(index)
				bias = bias || biased
			}
			factors[i] = Overlay(factors[i], f, m, first)
		}
		first = false
	}
	return factors, bias
}
