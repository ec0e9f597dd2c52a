package textanim

import (
	"testing"

	"github.com/gogpu/anim"
	"github.com/gogpu/anim/property"
)

func wiggly(perSecond float32) *WigglySelector {
	return &WigglySelector{
		Mode:             property.NewConstant(ModeAdd),
		MaxAmount:        floatProp(0.6),
		MinAmount:        floatProp(0.2),
		WigglesPerSecond: floatProp(perSecond),
		Correlation:      floatProp(0.5),
		TemporalPhase:    floatProp(0),
		SpatialPhase:     floatProp(0),
		LockDimensions:   property.NewConstant(false),
		RandomSeed:       property.NewConstant[uint16](3),
	}
}

func TestWigglySelectorBounds(t *testing.T) {
	s := wiggly(2)
	for frame := anim.Frame(0); frame < 60; frame += 7 {
		for i := 0; i < 12; i++ {
			f, bias := FactorAt(s, i, 12, frame, 24)
			if !bias {
				t.Fatalf("frame %d index %d: bias = false", frame, i)
			}
			if f < 0.2-1e-6 || f > 0.6+1e-6 {
				t.Fatalf("frame %d index %d: factor %v outside [0.2, 0.6]", frame, i, f)
			}
		}
	}
}

func TestWigglySelectorBiasPropagates(t *testing.T) {
	_, bias := CombinedFactor([]Selector{squareRange(0, 1), wiggly(1)}, 0, 4, 10, 24)
	if !bias {
		t.Error("CombinedFactor did not report wiggly bias")
	}
}

func TestWigglySelectorStaticRanges(t *testing.T) {
	full := []anim.TimeRange{{Start: 0, End: 49}}

	ranges := append([]anim.TimeRange(nil), full...)
	wiggly(0).ExcludeVaryingRanges(&ranges)
	if len(ranges) != 1 || ranges[0] != full[0] {
		t.Errorf("still selector: ranges = %v, want %v", ranges, full)
	}

	ranges = append([]anim.TimeRange(nil), full...)
	wiggly(1.5).ExcludeVaryingRanges(&ranges)
	if len(ranges) != 0 {
		t.Errorf("wiggling selector: ranges = %v, want none", ranges)
	}
}

func TestWigglySelectorStillAcrossFrames(t *testing.T) {
	s := wiggly(0)
	a, _ := FactorAt(s, 3, 8, 0, 24)
	b, _ := FactorAt(s, 3, 8, 40, 24)
	if a != b {
		t.Errorf("factor changed without wiggles: %v vs %v", a, b)
	}
}
