package textanim

import (
	"math"

	"github.com/gogpu/anim"
	"github.com/gogpu/anim/property"
)

// WigglySelector varies the factor of every character pseudo-randomly
// over time and across the text.
type WigglySelector struct {
	BasedOn BasedOn
	Mode    property.Property[SelectorMode]
	// MaxAmount and MinAmount bound the factor, -1 to 1.
	MaxAmount        property.Property[float32]
	MinAmount        property.Property[float32]
	WigglesPerSecond property.Property[float32]
	// Correlation is how alike neighbouring characters wiggle, 0 to 1.
	Correlation property.Property[float32]
	// TemporalPhase and SpatialPhase are in degrees.
	TemporalPhase  property.Property[float32]
	SpatialPhase   property.Property[float32]
	LockDimensions property.Property[bool]
	RandomSeed     property.Property[uint16]
}

func (*WigglySelector) isSelector() {}

// ExcludeVaryingRanges removes every frame when the selector wiggles over
// time; otherwise only parameter animation matters.
func (s *WigglySelector) ExcludeVaryingRanges(timeRanges *[]anim.TimeRange) {
	if s.WigglesPerSecond.Animatable() || s.WigglesPerSecond.ValueAt(anim.ZeroFrame) != 0 {
		*timeRanges = (*timeRanges)[:0]
		return
	}
	property.ExcludeAll(timeRanges,
		s.Mode, s.MaxAmount, s.MinAmount, s.Correlation,
		s.TemporalPhase, s.SpatialPhase, s.LockDimensions, s.RandomSeed)
}

// Verify reports whether all parameters are present and well formed.
func (s *WigglySelector) Verify() bool {
	return s != nil && property.Required(
		s.Mode, s.MaxAmount, s.MinAmount, s.WigglesPerSecond, s.Correlation,
		s.TemporalPhase, s.SpatialPhase, s.LockDimensions, s.RandomSeed)
}

// wigglyState is a WigglySelector evaluated at one frame.
type wigglyState struct {
	selMode   SelectorMode
	maxAmount float64
	minAmount float64
	temporal  float64
	spread    float64
	spatial   float64
	seed      float64
}

// spatialStep is the phase advance between uncorrelated neighbours.
const spatialStep = 1.37

func (s *WigglySelector) bind(frame anim.Frame, frameRate float32) *wigglyState {
	temporal := 0.0
	if frameRate > 0 {
		temporal = float64(s.WigglesPerSecond.ValueAt(frame)) * float64(frame) / float64(frameRate)
	}
	temporal += float64(s.TemporalPhase.ValueAt(frame)) / 360
	return &wigglyState{
		selMode:   s.Mode.ValueAt(frame),
		maxAmount: float64(s.MaxAmount.ValueAt(frame)),
		minAmount: float64(s.MinAmount.ValueAt(frame)),
		temporal:  temporal,
		spread:    (1 - clamp01(float64(s.Correlation.ValueAt(frame)))) * spatialStep,
		spatial:   float64(s.SpatialPhase.ValueAt(frame)) / 360,
		seed:      float64(s.RandomSeed.ValueAt(frame)) * 0.618034,
	}
}

func (st *wigglyState) mode() SelectorMode { return st.selMode }

// factor combines the temporal and spatial phases and the seed into one
// angle and runs it through a product of two incommensurate cosines.
// The result is rescaled from [-1, 1] into [minAmount, maxAmount].
func (st *wigglyState) factor(index int) (float32, bool) {
	phase := st.temporal + st.spread*float64(index) + st.spatial + st.seed
	x := 2 * math.Pi * phase
	noise := math.Cos(x) * math.Cos(x/7+math.Pi/5)
	noise = math.Max(-1, math.Min(1, noise))
	f := st.minAmount + (noise+1)*0.5*(st.maxAmount-st.minAmount)
	return clampFactor(float32(f)), true
}
