package scene

import (
	"github.com/gogpu/anim"
	"github.com/gogpu/anim/property"
)

// Transform is a layer's 2D transform. Position is either a single
// point property or, when the author separated dimensions, XPosition
// and YPosition.
type Transform struct {
	AnchorPoint property.Property[anim.Point]
	Position    property.Property[anim.Point]
	XPosition   property.Property[float32]
	YPosition   property.Property[float32]
	Scale       property.Property[anim.Point]
	Rotation    property.Property[float32]
	Opacity     property.Property[float32]
}

// ExcludeVaryingRanges removes the frames where any component varies.
func (t *Transform) ExcludeVaryingRanges(timeRanges *[]anim.TimeRange) {
	property.ExcludeAll(timeRanges,
		t.AnchorPoint, t.Position, t.XPosition, t.YPosition,
		t.Scale, t.Rotation, t.Opacity)
}

// Verify reports whether every component is present.
func (t *Transform) Verify() bool {
	if t == nil || !property.Required(t.AnchorPoint, t.Scale, t.Rotation, t.Opacity) {
		return false
	}
	if t.Position != nil {
		return t.Position.Verify() && property.Optional(t.XPosition, t.YPosition)
	}
	return property.Required(t.XPosition, t.YPosition)
}

// MaskMode is how a mask combines with the masks above it.
type MaskMode uint8

const (
	MaskNone MaskMode = iota
	MaskAdd
	MaskSubtract
	MaskIntersect
	MaskDifference
)

// Mask is a layer mask.
type Mask struct {
	ID        uint32
	Inverted  bool
	Mode      MaskMode
	Path      property.Property[*anim.PathData]
	Opacity   property.Property[float32]
	Expansion property.Property[float32]
}

// ExcludeVaryingRanges removes the frames where the mask changes.
func (m *Mask) ExcludeVaryingRanges(timeRanges *[]anim.TimeRange) {
	property.ExcludeAll(timeRanges, m.Path, m.Opacity, m.Expansion)
}

// Verify reports whether the mask path and parameters are present.
func (m *Mask) Verify() bool {
	return m != nil && property.Required(m.Path, m.Opacity, m.Expansion)
}
