package property

import (
	"sync/atomic"

	"github.com/gogpu/anim"
)

// AnimatableProperty is a Property driven by a sorted list of keyframes.
//
// ValueAt is safe for concurrent use. The last-used keyframe index is a
// lookup hint only; a stale hint costs a linear scan, never a wrong value.
type AnimatableProperty[T any] struct {
	keyframes   []*Keyframe[T]
	interpolate Interpolator[T]
	lastIndex   atomic.Int64
}

// NewAnimatable creates a keyframed property. Keyframes must be sorted by
// StartTime and must not be modified afterwards.
func NewAnimatable[T any](keyframes []*Keyframe[T], interpolate Interpolator[T]) *AnimatableProperty[T] {
	return &AnimatableProperty[T]{
		keyframes:   keyframes,
		interpolate: interpolate,
	}
}

// Keyframes returns the property's keyframes. The slice must not be modified.
func (p *AnimatableProperty[T]) Keyframes() []*Keyframe[T] {
	return p.keyframes
}

// Animatable returns true.
func (p *AnimatableProperty[T]) Animatable() bool { return true }

// ValueAt returns the value at frame. Frames at or before a keyframe's
// StartTime yield its StartValue; frames at or after its EndTime yield
// its EndValue.
func (p *AnimatableProperty[T]) ValueAt(frame anim.Frame) T {
	kf := p.keyframeAt(frame)
	if frame <= kf.StartTime {
		return kf.StartValue
	}
	if frame >= kf.EndTime {
		return kf.EndValue
	}
	if !kf.Interpolation.IsContinuous() {
		return kf.StartValue
	}
	return p.interpolate(kf, frame)
}

// keyframeAt returns the keyframe containing frame, or the first or last
// keyframe when frame lies outside the animated span.
func (p *AnimatableProperty[T]) keyframeAt(frame anim.Frame) *Keyframe[T] {
	last := len(p.keyframes) - 1
	index := int(p.lastIndex.Load())
	if index > last {
		index = last
	}
	kf := p.keyframes[index]
	if kf.ContainsTime(frame) {
		return kf
	}
	if frame < kf.StartTime {
		for index > 0 {
			index--
			if p.keyframes[index].StartTime <= frame {
				break
			}
		}
	} else {
		for index < last {
			index++
			if frame < p.keyframes[index].EndTime {
				break
			}
		}
	}
	p.lastIndex.Store(int64(index))
	return p.keyframes[index]
}

// ExcludeVaryingRanges removes the span of every continuously varying
// keyframe and splits at the boundaries of piecewise-constant ones.
func (p *AnimatableProperty[T]) ExcludeVaryingRanges(timeRanges *[]anim.TimeRange) {
	for _, kf := range p.keyframes {
		if kf.Interpolation.IsContinuous() {
			anim.SubtractFromTimeRanges(timeRanges, kf.StartTime, kf.EndTime-1)
			continue
		}
		anim.SplitTimeRangesAt(timeRanges, kf.StartTime)
		anim.SplitTimeRangesAt(timeRanges, kf.EndTime)
	}
}

// Verify reports whether the property has at least one keyframe, every
// keyframe verifies, and the keyframes are sorted by StartTime.
func (p *AnimatableProperty[T]) Verify() bool {
	if p == nil || len(p.keyframes) == 0 || p.interpolate == nil {
		return false
	}
	for i, kf := range p.keyframes {
		if !kf.Verify() {
			return false
		}
		if i > 0 && kf.StartTime < p.keyframes[i-1].StartTime {
			return false
		}
	}
	return true
}
