package scene

import (
	"github.com/gogpu/anim"
	"github.com/gogpu/anim/property"
)

// ShapeElement is one of *ShapeGroup, *Rectangle, *Ellipse, *Polystar,
// *ShapePath, *Fill, *Stroke, *TrimPaths, *Repeater, *RoundCorners or
// *MergePaths.
type ShapeElement interface {
	ExcludeVaryingRanges(timeRanges *[]anim.TimeRange)
	Verify() bool
	isShapeElement()
}

// ShapeType identifies a shape element.
type ShapeType uint8

const (
	ShapeUnknown ShapeType = iota
	ShapeGroupType
	ShapeRectangle
	ShapeEllipse
	ShapePolystar
	ShapePathType
	ShapeFill
	ShapeStroke
	ShapeTrimPaths
	ShapeRepeater
	ShapeRoundCorners
	ShapeMergePaths
)

// TypeOfShape returns the type tag of e.
func TypeOfShape(e ShapeElement) ShapeType {
	switch e.(type) {
	case *ShapeGroup:
		return ShapeGroupType
	case *Rectangle:
		return ShapeRectangle
	case *Ellipse:
		return ShapeEllipse
	case *Polystar:
		return ShapePolystar
	case *ShapePath:
		return ShapePathType
	case *Fill:
		return ShapeFill
	case *Stroke:
		return ShapeStroke
	case *TrimPaths:
		return ShapeTrimPaths
	case *Repeater:
		return ShapeRepeater
	case *RoundCorners:
		return ShapeRoundCorners
	case *MergePaths:
		return ShapeMergePaths
	default:
		return ShapeUnknown
	}
}

func excludeElements(timeRanges *[]anim.TimeRange, elements []ShapeElement) {
	for _, e := range elements {
		e.ExcludeVaryingRanges(timeRanges)
	}
}

func verifyElements(elements []ShapeElement) bool {
	for _, e := range elements {
		if e == nil || !e.Verify() {
			return false
		}
	}
	return true
}

// ShapeTransform is the transform of a shape group.
type ShapeTransform struct {
	AnchorPoint property.Property[anim.Point]
	Position    property.Property[anim.Point]
	Scale       property.Property[anim.Point]
	Skew        property.Property[float32]
	SkewAxis    property.Property[float32]
	Rotation    property.Property[float32]
	Opacity     property.Property[float32]
}

// ExcludeVaryingRanges removes the frames where any component varies.
func (t *ShapeTransform) ExcludeVaryingRanges(timeRanges *[]anim.TimeRange) {
	property.ExcludeAll(timeRanges,
		t.AnchorPoint, t.Position, t.Scale, t.Skew, t.SkewAxis, t.Rotation, t.Opacity)
}

// Verify reports whether every component is present.
func (t *ShapeTransform) Verify() bool {
	return t != nil && property.Required(
		t.AnchorPoint, t.Position, t.Scale, t.Skew, t.SkewAxis, t.Rotation, t.Opacity)
}

// ShapeGroup nests elements under a transform.
type ShapeGroup struct {
	BlendMode BlendMode
	Transform *ShapeTransform
	Elements  []ShapeElement
}

func (*ShapeGroup) isShapeElement() {}

// ExcludeVaryingRanges removes the frames where the transform or a
// child element varies.
func (g *ShapeGroup) ExcludeVaryingRanges(timeRanges *[]anim.TimeRange) {
	g.Transform.ExcludeVaryingRanges(timeRanges)
	excludeElements(timeRanges, g.Elements)
}

// Verify reports whether the transform and every child verify.
func (g *ShapeGroup) Verify() bool {
	return g != nil && g.Transform.Verify() && verifyElements(g.Elements)
}

// Rectangle is a rounded rectangle path.
type Rectangle struct {
	Reversed  bool
	Position  property.Property[anim.Point]
	Size      property.Property[anim.Point]
	Roundness property.Property[float32]
}

func (*Rectangle) isShapeElement() {}

// ExcludeVaryingRanges removes the frames where a parameter varies.
func (r *Rectangle) ExcludeVaryingRanges(timeRanges *[]anim.TimeRange) {
	property.ExcludeAll(timeRanges, r.Position, r.Size, r.Roundness)
}

// Verify reports whether all parameters are present.
func (r *Rectangle) Verify() bool {
	return r != nil && property.Required(r.Position, r.Size, r.Roundness)
}

// Ellipse is an elliptical path.
type Ellipse struct {
	Reversed bool
	Position property.Property[anim.Point]
	Size     property.Property[anim.Point]
}

func (*Ellipse) isShapeElement() {}

// ExcludeVaryingRanges removes the frames where a parameter varies.
func (e *Ellipse) ExcludeVaryingRanges(timeRanges *[]anim.TimeRange) {
	property.ExcludeAll(timeRanges, e.Position, e.Size)
}

// Verify reports whether all parameters are present.
func (e *Ellipse) Verify() bool {
	return e != nil && property.Required(e.Position, e.Size)
}

// PolystarType selects between a star and a regular polygon.
type PolystarType uint8

const (
	PolystarStar PolystarType = iota
	PolystarPolygon
)

// Polystar is a star or regular polygon path. The inner radius and
// roundness only apply to stars.
type Polystar struct {
	Reversed       bool
	Type           PolystarType
	Points         property.Property[float32]
	Position       property.Property[anim.Point]
	Rotation       property.Property[float32]
	InnerRadius    property.Property[float32]
	OuterRadius    property.Property[float32]
	InnerRoundness property.Property[float32]
	OuterRoundness property.Property[float32]
}

func (*Polystar) isShapeElement() {}

// ExcludeVaryingRanges removes the frames where a parameter varies.
func (p *Polystar) ExcludeVaryingRanges(timeRanges *[]anim.TimeRange) {
	property.ExcludeAll(timeRanges,
		p.Points, p.Position, p.Rotation, p.OuterRadius, p.OuterRoundness)
	if p.Type == PolystarStar {
		property.ExcludeAll(timeRanges, p.InnerRadius, p.InnerRoundness)
	}
}

// Verify reports whether all parameters for the polystar type are present.
func (p *Polystar) Verify() bool {
	if p == nil || !property.Required(p.Points, p.Position, p.Rotation, p.OuterRadius, p.OuterRoundness) {
		return false
	}
	if p.Type == PolystarStar {
		return property.Required(p.InnerRadius, p.InnerRoundness)
	}
	return true
}

// ShapePath is a free-form bezier path.
type ShapePath struct {
	Shape property.Property[*anim.PathData]
}

func (*ShapePath) isShapeElement() {}

// ExcludeVaryingRanges removes the frames where the path morphs.
func (p *ShapePath) ExcludeVaryingRanges(timeRanges *[]anim.TimeRange) {
	property.ExcludeAll(timeRanges, p.Shape)
}

// Verify reports whether the path is present.
func (p *ShapePath) Verify() bool {
	return p != nil && property.Required(p.Shape)
}

// FillRule selects the fill winding rule.
type FillRule uint8

const (
	FillNonZero FillRule = iota
	FillEvenOdd
)

// Fill paints the paths above it in its group.
type Fill struct {
	BlendMode BlendMode
	FillRule  FillRule
	Color     property.Property[anim.Color]
	Opacity   property.Property[float32]
}

func (*Fill) isShapeElement() {}

// ExcludeVaryingRanges removes the frames where a parameter varies.
func (f *Fill) ExcludeVaryingRanges(timeRanges *[]anim.TimeRange) {
	property.ExcludeAll(timeRanges, f.Color, f.Opacity)
}

// Verify reports whether all parameters are present.
func (f *Fill) Verify() bool {
	return f != nil && property.Required(f.Color, f.Opacity)
}

// LineCap is the shape drawn at open path ends.
type LineCap uint8

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

// LineJoin is the shape drawn at path corners.
type LineJoin uint8

const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

// Stroke outlines the paths above it in its group.
type Stroke struct {
	BlendMode  BlendMode
	LineCap    LineCap
	LineJoin   LineJoin
	MiterLimit property.Property[float32]
	Color      property.Property[anim.Color]
	Opacity    property.Property[float32]
	Width      property.Property[float32]
	Dashes     []property.Property[float32]
	DashOffset property.Property[float32]
}

func (*Stroke) isShapeElement() {}

// ExcludeVaryingRanges removes the frames where a parameter or dash
// varies.
func (s *Stroke) ExcludeVaryingRanges(timeRanges *[]anim.TimeRange) {
	property.ExcludeAll(timeRanges, s.MiterLimit, s.Color, s.Opacity, s.Width, s.DashOffset)
	for _, d := range s.Dashes {
		property.ExcludeAll(timeRanges, d)
	}
}

// Verify reports whether all parameters are present. A dashed stroke
// needs a dash offset.
func (s *Stroke) Verify() bool {
	if s == nil || !property.Required(s.MiterLimit, s.Color, s.Opacity, s.Width) {
		return false
	}
	for _, d := range s.Dashes {
		if d == nil || !d.Verify() {
			return false
		}
	}
	if len(s.Dashes) > 0 {
		return property.Required(s.DashOffset)
	}
	return property.Optional(s.DashOffset)
}

// TrimType selects whether trimming applies to each path or to all
// paths in sequence.
type TrimType uint8

const (
	TrimSimultaneously TrimType = iota
	TrimIndividually
)

// TrimPaths keeps only a fraction of the paths above it.
type TrimPaths struct {
	Type   TrimType
	Start  property.Property[float32]
	End    property.Property[float32]
	Offset property.Property[float32]
}

func (*TrimPaths) isShapeElement() {}

// ExcludeVaryingRanges removes the frames where a parameter varies.
func (t *TrimPaths) ExcludeVaryingRanges(timeRanges *[]anim.TimeRange) {
	property.ExcludeAll(timeRanges, t.Start, t.End, t.Offset)
}

// Verify reports whether all parameters are present.
func (t *TrimPaths) Verify() bool {
	return t != nil && property.Required(t.Start, t.End, t.Offset)
}

// RepeaterOrder is the stacking order of repeated copies.
type RepeaterOrder uint8

const (
	RepeaterBelow RepeaterOrder = iota
	RepeaterAbove
)

// RepeaterTransform is applied cumulatively to each copy.
type RepeaterTransform struct {
	AnchorPoint  property.Property[anim.Point]
	Position     property.Property[anim.Point]
	Scale        property.Property[anim.Point]
	Rotation     property.Property[float32]
	StartOpacity property.Property[float32]
	EndOpacity   property.Property[float32]
}

// Repeater duplicates the elements above it.
type Repeater struct {
	Composite RepeaterOrder
	Copies    property.Property[float32]
	Offset    property.Property[float32]
	Transform *RepeaterTransform
}

func (*Repeater) isShapeElement() {}

// ExcludeVaryingRanges removes the frames where a parameter varies.
func (r *Repeater) ExcludeVaryingRanges(timeRanges *[]anim.TimeRange) {
	property.ExcludeAll(timeRanges, r.Copies, r.Offset)
	if t := r.Transform; t != nil {
		property.ExcludeAll(timeRanges,
			t.AnchorPoint, t.Position, t.Scale, t.Rotation, t.StartOpacity, t.EndOpacity)
	}
}

// Verify reports whether all parameters are present.
func (r *Repeater) Verify() bool {
	if r == nil || r.Transform == nil || !property.Required(r.Copies, r.Offset) {
		return false
	}
	t := r.Transform
	return property.Required(t.AnchorPoint, t.Position, t.Scale, t.Rotation, t.StartOpacity, t.EndOpacity)
}

// RoundCorners rounds the corners of the paths above it.
type RoundCorners struct {
	Radius property.Property[float32]
}

func (*RoundCorners) isShapeElement() {}

// ExcludeVaryingRanges removes the frames where the radius varies.
func (r *RoundCorners) ExcludeVaryingRanges(timeRanges *[]anim.TimeRange) {
	property.ExcludeAll(timeRanges, r.Radius)
}

// Verify reports whether the radius is present.
func (r *RoundCorners) Verify() bool {
	return r != nil && property.Required(r.Radius)
}

// MergeMode is the boolean operation of a MergePaths element.
type MergeMode uint8

const (
	MergeNone MergeMode = iota
	MergeMerge
	MergeAdd
	MergeSubtract
	MergeIntersect
	MergeExcludeIntersections
)

// MergePaths combines the paths above it. It has no animatable
// parameters.
type MergePaths struct {
	Mode MergeMode
}

func (*MergePaths) isShapeElement() {}

// ExcludeVaryingRanges does nothing.
func (*MergePaths) ExcludeVaryingRanges(*[]anim.TimeRange) {}

// Verify returns true for any non-nil element.
func (m *MergePaths) Verify() bool { return m != nil }
