package textanim

import (
	"github.com/gogpu/anim"
	"github.com/gogpu/anim/property"
)

// RangeShape is the falloff of a range selector across its range.
type RangeShape uint8

const (
	ShapeSquare RangeShape = iota
	ShapeRampUp
	ShapeRampDown
	ShapeTriangle
	ShapeRound
	ShapeSmooth
)

// String returns a human-readable name for the shape.
func (s RangeShape) String() string {
	switch s {
	case ShapeSquare:
		return "Square"
	case ShapeRampUp:
		return "RampUp"
	case ShapeRampDown:
		return "RampDown"
	case ShapeTriangle:
		return "Triangle"
	case ShapeRound:
		return "Round"
	case ShapeSmooth:
		return "Smooth"
	default:
		return "Unknown"
	}
}

// RangeUnits selects how Start, End and Offset are measured.
type RangeUnits uint8

const (
	// UnitsPercentage measures in fractions of the text, 0 to 1.
	UnitsPercentage RangeUnits = iota
	// UnitsIndex measures in characters.
	UnitsIndex
)

// RangeSelector selects a contiguous span of characters and shapes the
// factor across it.
type RangeSelector struct {
	Start  property.Property[float32]
	End    property.Property[float32]
	Offset property.Property[float32]
	Units  RangeUnits

	BasedOn BasedOn
	Mode    property.Property[SelectorMode]
	// Amount scales the shaped factor, -1 to 1.
	Amount property.Property[float32]
	Shape  RangeShape
	// EaseHigh and EaseLow bend the Triangle shape, 0 to 1.
	EaseHigh property.Property[float32]
	EaseLow  property.Property[float32]

	RandomizeOrder bool
	RandomSeed     property.Property[uint16]
}

func (*RangeSelector) isSelector() {}

// ExcludeVaryingRanges removes the frames where any parameter varies.
func (s *RangeSelector) ExcludeVaryingRanges(timeRanges *[]anim.TimeRange) {
	property.ExcludeAll(timeRanges,
		s.Start, s.End, s.Offset, s.Mode, s.Amount,
		s.EaseHigh, s.EaseLow, s.RandomSeed)
}

// Verify reports whether all parameters are present and well formed.
func (s *RangeSelector) Verify() bool {
	return s != nil && property.Required(
		s.Start, s.End, s.Offset, s.Mode, s.Amount,
		s.EaseHigh, s.EaseLow, s.RandomSeed)
}

// rangeState is a RangeSelector evaluated at one frame.
type rangeState struct {
	count    int
	start    float64
	end      float64
	amount   float64
	selMode  SelectorMode
	shape    RangeShape
	easeHigh float64
	easeLow  float64
	order    []int
}

func (s *RangeSelector) bind(count int, frame anim.Frame) *rangeState {
	start := float64(s.Start.ValueAt(frame))
	end := float64(s.End.ValueAt(frame))
	offset := float64(s.Offset.ValueAt(frame))
	if s.Units == UnitsIndex && count > 0 {
		n := float64(count)
		start /= n
		end /= n
		offset /= n
	}
	start += offset
	end += offset
	if start > end {
		start, end = end, start
	}
	st := &rangeState{
		count:    count,
		start:    start,
		end:      end,
		amount:   float64(s.Amount.ValueAt(frame)),
		selMode:  s.Mode.ValueAt(frame),
		shape:    s.Shape,
		easeHigh: float64(s.EaseHigh.ValueAt(frame)),
		easeLow:  float64(s.EaseLow.ValueAt(frame)),
	}
	if s.RandomizeOrder {
		st.order = randomOrder(count, s.RandomSeed.ValueAt(frame))
	}
	return st
}

func (st *rangeState) mode() SelectorMode { return st.selMode }

func (st *rangeState) factor(index int) (float32, bool) {
	if st.count <= 0 || index < 0 || index >= st.count {
		return 0, false
	}
	if st.order != nil {
		index = st.order[index]
	}
	n := float64(st.count)
	textStart := float64(index) / n
	textEnd := float64(index+1) / n
	f := shapeFactor(st.shape, textStart, textEnd, st.start, st.end, st.easeHigh, st.easeLow)
	return clampFactor(float32(f * st.amount)), false
}
