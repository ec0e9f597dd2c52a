package scene

import (
	"github.com/gogpu/anim"
	"github.com/gogpu/anim/property"
)

// EffectType identifies a layer effect.
type EffectType uint8

const (
	EffectUnknown EffectType = iota
	EffectFastBlur
	EffectGlow
	EffectBrightnessContrast
	EffectCornerPin
	EffectMotionTile
)

// String returns a human-readable name for the effect type.
func (t EffectType) String() string {
	switch t {
	case EffectFastBlur:
		return "FastBlur"
	case EffectGlow:
		return "Glow"
	case EffectBrightnessContrast:
		return "BrightnessContrast"
	case EffectCornerPin:
		return "CornerPin"
	case EffectMotionTile:
		return "MotionTile"
	default:
		return unknownStr
	}
}

// Effect is one of *FastBlur, *Glow, *BrightnessContrast, *CornerPin or
// *MotionTile.
type Effect interface {
	ExcludeVaryingRanges(timeRanges *[]anim.TimeRange)
	Verify() bool
	isEffect()
}

// TypeOfEffect returns the type tag of e.
func TypeOfEffect(e Effect) EffectType {
	switch e.(type) {
	case *FastBlur:
		return EffectFastBlur
	case *Glow:
		return EffectGlow
	case *BrightnessContrast:
		return EffectBrightnessContrast
	case *CornerPin:
		return EffectCornerPin
	case *MotionTile:
		return EffectMotionTile
	default:
		return EffectUnknown
	}
}

// BlurDimensions selects the axes a blur applies to.
type BlurDimensions uint8

const (
	BlurBoth BlurDimensions = iota
	BlurHorizontal
	BlurVertical
)

// FastBlur is a box-approximated gaussian blur.
type FastBlur struct {
	Blurriness       property.Property[float32]
	Dimensions       property.Property[BlurDimensions]
	RepeatEdgePixels property.Property[bool]
}

func (*FastBlur) isEffect() {}

// ExcludeVaryingRanges removes the frames where a parameter varies.
func (e *FastBlur) ExcludeVaryingRanges(timeRanges *[]anim.TimeRange) {
	property.ExcludeAll(timeRanges, e.Blurriness, e.Dimensions, e.RepeatEdgePixels)
}

// Verify reports whether all parameters are present.
func (e *FastBlur) Verify() bool {
	return e != nil && property.Required(e.Blurriness, e.Dimensions, e.RepeatEdgePixels)
}

// Glow brightens pixels above a luminance threshold.
type Glow struct {
	Threshold property.Property[float32]
	Radius    property.Property[float32]
	Intensity property.Property[float32]
}

func (*Glow) isEffect() {}

// ExcludeVaryingRanges removes the frames where a parameter varies.
func (e *Glow) ExcludeVaryingRanges(timeRanges *[]anim.TimeRange) {
	property.ExcludeAll(timeRanges, e.Threshold, e.Radius, e.Intensity)
}

// Verify reports whether all parameters are present.
func (e *Glow) Verify() bool {
	return e != nil && property.Required(e.Threshold, e.Radius, e.Intensity)
}

// BrightnessContrast adjusts brightness and contrast.
type BrightnessContrast struct {
	Brightness    property.Property[float32]
	Contrast      property.Property[float32]
	UseOldVersion property.Property[bool]
}

func (*BrightnessContrast) isEffect() {}

// ExcludeVaryingRanges removes the frames where a parameter varies.
func (e *BrightnessContrast) ExcludeVaryingRanges(timeRanges *[]anim.TimeRange) {
	property.ExcludeAll(timeRanges, e.Brightness, e.Contrast, e.UseOldVersion)
}

// Verify reports whether all parameters are present.
func (e *BrightnessContrast) Verify() bool {
	return e != nil && property.Required(e.Brightness, e.Contrast, e.UseOldVersion)
}

// CornerPin distorts the layer by moving its four corners.
type CornerPin struct {
	UpperLeft  property.Property[anim.Point]
	UpperRight property.Property[anim.Point]
	LowerLeft  property.Property[anim.Point]
	LowerRight property.Property[anim.Point]
}

func (*CornerPin) isEffect() {}

// ExcludeVaryingRanges removes the frames where a corner moves.
func (e *CornerPin) ExcludeVaryingRanges(timeRanges *[]anim.TimeRange) {
	property.ExcludeAll(timeRanges, e.UpperLeft, e.UpperRight, e.LowerLeft, e.LowerRight)
}

// Verify reports whether all corners are present.
func (e *CornerPin) Verify() bool {
	return e != nil && property.Required(e.UpperLeft, e.UpperRight, e.LowerLeft, e.LowerRight)
}

// MotionTile repeats the layer across the output.
type MotionTile struct {
	TileCenter           property.Property[anim.Point]
	TileWidth            property.Property[float32]
	TileHeight           property.Property[float32]
	OutputWidth          property.Property[float32]
	OutputHeight         property.Property[float32]
	MirrorEdges          property.Property[bool]
	Phase                property.Property[float32]
	HorizontalPhaseShift property.Property[bool]
}

func (*MotionTile) isEffect() {}

// ExcludeVaryingRanges removes the frames where a parameter varies.
func (e *MotionTile) ExcludeVaryingRanges(timeRanges *[]anim.TimeRange) {
	property.ExcludeAll(timeRanges,
		e.TileCenter, e.TileWidth, e.TileHeight, e.OutputWidth, e.OutputHeight,
		e.MirrorEdges, e.Phase, e.HorizontalPhaseShift)
}

// Verify reports whether all parameters are present.
func (e *MotionTile) Verify() bool {
	return e != nil && property.Required(
		e.TileCenter, e.TileWidth, e.TileHeight, e.OutputWidth, e.OutputHeight,
		e.MirrorEdges, e.Phase, e.HorizontalPhaseShift)
}
