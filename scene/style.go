package scene

import (
	"github.com/gogpu/anim"
	"github.com/gogpu/anim/property"
)

// LayerStyle is one of *DropShadow or *StrokeStyle.
type LayerStyle interface {
	ExcludeVaryingRanges(timeRanges *[]anim.TimeRange)
	Verify() bool
	isLayerStyle()
}

// StyleName returns the display name of s.
func StyleName(s LayerStyle) string {
	switch s.(type) {
	case *DropShadow:
		return "DropShadow"
	case *StrokeStyle:
		return "Stroke"
	default:
		return unknownStr
	}
}

// DropShadow casts a blurred copy of the layer's alpha behind it.
type DropShadow struct {
	BlendMode property.Property[BlendMode]
	Color     property.Property[anim.Color]
	Opacity   property.Property[float32]
	Angle     property.Property[float32]
	Distance  property.Property[float32]
	Size      property.Property[float32]
	Spread    property.Property[float32]
}

func (*DropShadow) isLayerStyle() {}

// ExcludeVaryingRanges removes the frames where a parameter varies.
func (s *DropShadow) ExcludeVaryingRanges(timeRanges *[]anim.TimeRange) {
	property.ExcludeAll(timeRanges,
		s.BlendMode, s.Color, s.Opacity, s.Angle, s.Distance, s.Size, s.Spread)
}

// Verify reports whether all parameters are present. Spread is optional
// in older documents.
func (s *DropShadow) Verify() bool {
	return s != nil &&
		property.Required(s.BlendMode, s.Color, s.Opacity, s.Angle, s.Distance, s.Size) &&
		property.Optional(s.Spread)
}

// StrokePosition places a stroke style relative to the layer edge.
type StrokePosition uint8

const (
	StrokeOutside StrokePosition = iota
	StrokeInside
	StrokeCenter
)

// StrokeStyle outlines the layer's alpha.
type StrokeStyle struct {
	BlendMode property.Property[BlendMode]
	Color     property.Property[anim.Color]
	Size      property.Property[float32]
	Opacity   property.Property[float32]
	Position  property.Property[StrokePosition]
}

func (*StrokeStyle) isLayerStyle() {}

// ExcludeVaryingRanges removes the frames where a parameter varies.
func (s *StrokeStyle) ExcludeVaryingRanges(timeRanges *[]anim.TimeRange) {
	property.ExcludeAll(timeRanges, s.BlendMode, s.Color, s.Size, s.Opacity, s.Position)
}

// Verify reports whether all parameters are present.
func (s *StrokeStyle) Verify() bool {
	return s != nil && property.Required(s.BlendMode, s.Color, s.Size, s.Opacity, s.Position)
}
