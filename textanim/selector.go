package textanim

import (
	"github.com/gogpu/anim"
)

// Selector is one of *RangeSelector, *WigglySelector or
// *ExpressionSelector.
type Selector interface {
	// ExcludeVaryingRanges removes the frames whose factors may change.
	ExcludeVaryingRanges(timeRanges *[]anim.TimeRange)

	// Verify reports whether all required parameters are present.
	Verify() bool

	isSelector()
}

// boundSelector is a selector with its parameters read at one frame for
// a fixed character count.
type boundSelector interface {
	factor(index int) (float32, bool)
	mode() SelectorMode
}

// bind reads the parameters of s at frame. It returns nil for selectors
// that do not contribute (expressions).
func bind(s Selector, count int, frame anim.Frame, frameRate float32) boundSelector {
	switch s := s.(type) {
	case *RangeSelector:
		return s.bind(count, frame)
	case *WigglySelector:
		return s.bind(frame, frameRate)
	case *ExpressionSelector:
		return nil
	default:
		return nil
	}
}

// selectorBasedOn returns which characters s counts.
func selectorBasedOn(s Selector) BasedOn {
	switch s := s.(type) {
	case *RangeSelector:
		return s.BasedOn
	case *WigglySelector:
		return s.BasedOn
	default:
		return BasedOnCharacters
	}
}

// FactorAt returns the factor of a single selector for the character at
// index out of count, without combining it with other selectors. The
// bool reports whether the value is a known approximation.
func FactorAt(s Selector, index, count int, frame anim.Frame, frameRate float32) (float32, bool) {
	b := bind(s, count, frame, frameRate)
	if b == nil || count <= 0 {
		return 0, false
	}
	return b.factor(index)
}

// CombinedFactor folds the factors of every contributing selector for the
// character at index. The accumulator starts at 1 and is clamped to
// [-1, 1] after every step.
func CombinedFactor(selectors []Selector, index, count int, frame anim.Frame, frameRate float32) (float32, bool) {
	total := float32(1)
	bias := false
	first := true
	for _, s := range selectors {
		b := bind(s, count, frame, frameRate)
		if b == nil {
			continue
		}
		f, biased := b.factor(index)
		bias = bias || biased
		total = Overlay(total, f, b.mode(), first)
		first = false
	}
	return total, bias
}
