package property

import (
	"math"
	"slices"
	"sync"
	"testing"

	"github.com/gogpu/anim"
)

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

func linear(start, end float32, from, to anim.Frame) *Keyframe[float32] {
	return &Keyframe[float32]{
		StartValue:    start,
		EndValue:      end,
		StartTime:     from,
		EndTime:       to,
		Interpolation: InterpolationLinear,
	}
}

func opacityRamp() *AnimatableProperty[float32] {
	return NewAnimatable([]*Keyframe[float32]{linear(0, 100, 10, 20)}, Floats)
}

func TestOpacityRamp(t *testing.T) {
	p := opacityRamp()

	ranges := []anim.TimeRange{{Start: 0, End: 99}}
	p.ExcludeVaryingRanges(&ranges)
	want := []anim.TimeRange{{Start: 0, End: 9}, {Start: 20, End: 99}}
	if !slices.Equal(ranges, want) {
		t.Errorf("static ranges = %v, want %v", ranges, want)
	}
	if got := p.ValueAt(15); got != 50 {
		t.Errorf("ValueAt(15) = %v, want 50", got)
	}
}

func TestValueAtBoundaries(t *testing.T) {
	p := NewAnimatable([]*Keyframe[float32]{
		linear(0, 100, 10, 20),
		linear(100, 40, 20, 30),
	}, Floats)

	tests := []struct {
		frame anim.Frame
		want  float32
	}{
		{-5, 0},
		{10, 0},
		{15, 50},
		{20, 100},
		{25, 70},
		{30, 40},
		{1000, 40},
	}
	for _, tt := range tests {
		if got := p.ValueAt(tt.frame); !almostEqual(float64(got), float64(tt.want), 1e-4) {
			t.Errorf("ValueAt(%d) = %v, want %v", tt.frame, got, tt.want)
		}
	}
}

// The keyframe hint must not change results whatever order frames are
// queried in.
func TestValueAtQueryOrderIndependent(t *testing.T) {
	keyframes := []*Keyframe[float32]{
		linear(0, 10, 0, 10),
		linear(10, 20, 10, 20),
		linear(20, 5, 20, 40),
		linear(5, 5, 40, 50),
	}
	reference := NewAnimatable(keyframes, Floats)
	want := make(map[anim.Frame]float32)
	for f := anim.Frame(-3); f <= 55; f++ {
		want[f] = NewAnimatable(keyframes, Floats).ValueAt(f)
	}

	order := []anim.Frame{55, -3, 30, 11, 49, 0, 20, 19, 40, 7, 52, 25}
	for _, f := range order {
		if got := reference.ValueAt(f); got != want[f] {
			t.Errorf("ValueAt(%d) = %v after jumps, want %v", f, got, want[f])
		}
	}
}

func TestValueAtConcurrent(t *testing.T) {
	p := NewAnimatable([]*Keyframe[float32]{
		linear(0, 10, 0, 10),
		linear(10, 20, 10, 20),
		linear(20, 30, 20, 30),
	}, Floats)

	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 300 {
				f := anim.Frame((i*7 + g*13) % 30)
				if got := p.ValueAt(f); !almostEqual(float64(got), float64(f), 1e-4) {
					t.Errorf("ValueAt(%d) = %v", f, got)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestHoldKeyframe(t *testing.T) {
	p := NewAnimatable([]*Keyframe[float32]{{
		StartValue: 1, EndValue: 2,
		StartTime: 0, EndTime: 10,
		Interpolation: InterpolationHold,
	}}, Floats)
	if got := p.ValueAt(9); got != 1 {
		t.Errorf("ValueAt(9) = %v, want 1", got)
	}
	if got := p.ValueAt(10); got != 2 {
		t.Errorf("ValueAt(10) = %v, want 2", got)
	}

	ranges := []anim.TimeRange{{Start: 0, End: 20}}
	p.ExcludeVaryingRanges(&ranges)
	want := []anim.TimeRange{{Start: 0, End: 9}, {Start: 10, End: 20}}
	if !slices.Equal(ranges, want) {
		t.Errorf("static ranges = %v, want %v", ranges, want)
	}
}

func TestBezierKeyframe(t *testing.T) {
	kf := &Keyframe[float32]{
		StartValue: 0, EndValue: 100,
		StartTime: 0, EndTime: 100,
		Interpolation: InterpolationBezier,
		BezierOut:     []anim.Point{{X: 0.42, Y: 0}},
		BezierIn:      []anim.Point{{X: 0.58, Y: 1}},
	}
	p := NewAnimatable([]*Keyframe[float32]{kf}, Floats)

	if got := p.ValueAt(50); !almostEqual(float64(got), 50, 1e-3) {
		t.Errorf("ValueAt(50) = %v, want 50", got)
	}
	if got := p.ValueAt(20); got >= 20 {
		t.Errorf("ValueAt(20) = %v, want eased below 20", got)
	}
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name string
		p    *AnimatableProperty[float32]
		want bool
	}{
		{"valid", opacityRamp(), true},
		{"empty", NewAnimatable[float32](nil, Floats), false},
		{"no interpolator", NewAnimatable([]*Keyframe[float32]{linear(0, 1, 0, 1)}, nil), false},
		{"unsorted", NewAnimatable([]*Keyframe[float32]{linear(0, 1, 10, 20), linear(0, 1, 0, 10)}, Floats), false},
		{"bezier without eases", NewAnimatable([]*Keyframe[float32]{{
			StartTime: 0, EndTime: 10, Interpolation: InterpolationBezier,
		}}, Floats), false},
		{"inverted keyframe", NewAnimatable([]*Keyframe[float32]{linear(0, 1, 10, 5)}, Floats), false},
	}
	for _, tt := range tests {
		if got := tt.p.Verify(); got != tt.want {
			t.Errorf("%s: Verify = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestConstant(t *testing.T) {
	c := NewConstant(anim.Pt(3, 4))
	if c.Animatable() || !c.Verify() || c.ValueAt(99) != anim.Pt(3, 4) {
		t.Error("constant property misbehaves")
	}
	ranges := []anim.TimeRange{{Start: 0, End: 9}}
	c.ExcludeVaryingRanges(&ranges)
	if len(ranges) != 1 {
		t.Errorf("constant changed ranges to %v", ranges)
	}
	if Keyframes[anim.Point](c) != nil {
		t.Error("Keyframes of a constant is not nil")
	}
}

func TestRequiredOptional(t *testing.T) {
	var missing Property[float32]
	if Required(NewConstant[float32](1), missing) {
		t.Error("Required accepted a nil property")
	}
	if !Optional(NewConstant[float32](1), missing) {
		t.Error("Optional rejected a nil property")
	}
	if Optional(NewAnimatable[float32](nil, Floats)) {
		t.Error("Optional accepted an invalid property")
	}
}
