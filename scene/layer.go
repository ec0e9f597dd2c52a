package scene

import (
	"github.com/gogpu/anim"
)

// TrackMatteType selects how a layer uses its track matte.
type TrackMatteType uint8

const (
	MatteNone TrackMatteType = iota
	MatteAlpha
	MatteAlphaInverted
	MatteLuma
	MatteLumaInverted
)

// Layer is a timed, transformed piece of content in a composition.
//
// ParentID and TrackMatteID are non-owning references to other layers of
// the same composition; zero means none.
type Layer struct {
	ID        uint32
	Name      string
	ParentID  uint32
	StartTime anim.Frame
	Duration  anim.Frame
	BlendMode BlendMode

	Transform *Transform
	Masks     []*Mask
	Effects   []Effect
	Styles    []LayerStyle

	TrackMatteID   uint32
	TrackMatteType TrackMatteType

	Content Content
}

// Type returns the layer type implied by its content.
func (l *Layer) Type() LayerType {
	switch l.Content.(type) {
	case *NullContent:
		return LayerNull
	case *SolidContent:
		return LayerSolid
	case *ShapeContent:
		return LayerShape
	case *TextContent:
		return LayerText
	case *ImageContent:
		return LayerImage
	case *PreComposeContent:
		return LayerPreCompose
	default:
		return LayerUnknown
	}
}

// EndTime returns the first frame after the layer.
func (l *Layer) EndTime() anim.Frame {
	return l.StartTime + l.Duration
}

// ExcludeVaryingRanges removes the frames where the layer's own
// transform, masks, effects, styles or content change. Nested
// compositions are handled by Composition.StaticTimeRanges.
func (l *Layer) ExcludeVaryingRanges(timeRanges *[]anim.TimeRange) {
	l.Transform.ExcludeVaryingRanges(timeRanges)
	for _, m := range l.Masks {
		m.ExcludeVaryingRanges(timeRanges)
	}
	for _, e := range l.Effects {
		e.ExcludeVaryingRanges(timeRanges)
	}
	for _, s := range l.Styles {
		s.ExcludeVaryingRanges(timeRanges)
	}
	l.excludeContent(timeRanges)
}

func (l *Layer) excludeContent(timeRanges *[]anim.TimeRange) {
	switch c := l.Content.(type) {
	case *NullContent, *SolidContent:
	case *ShapeContent:
		excludeElements(timeRanges, c.Elements)
	case *TextContent:
		c.Document.ExcludeVaryingRanges(timeRanges)
		for _, a := range c.Animators {
			a.ExcludeVaryingRanges(timeRanges)
		}
	case *ImageContent:
		if c.FillRule != nil && c.FillRule.TimeRemap != nil {
			c.FillRule.TimeRemap.ExcludeVaryingRanges(timeRanges)
		}
		if c.Movie != nil && l.Duration > 0 {
			// Every movie frame is a new picture.
			anim.SubtractFromTimeRanges(timeRanges, l.StartTime, l.EndTime()-1)
		}
	case *PreComposeContent:
		c.excludeVaryingRanges(timeRanges)
	}
}

// excludeVaryingRanges intersects timeRanges with the nested
// composition's static ranges placed on the parent timeline. Frames the
// nested composition does not cover show nothing and stay static.
func (c *PreComposeContent) excludeVaryingRanges(timeRanges *[]anim.TimeRange) {
	ranges := *timeRanges
	if len(ranges) == 0 {
		return
	}
	target := c.Target()
	lo, hi := ranges[0].Start, ranges[len(ranges)-1].End
	start := c.CompositionStartTime
	end := start + target.Duration - 1

	placed := make([]anim.TimeRange, 0, 8)
	if start > lo {
		placed = append(placed, anim.TimeRange{Start: lo, End: min(start-1, hi)})
	}
	placed = append(placed, anim.OffsetTimeRanges(target.StaticTimeRanges(), start)...)
	if end < hi {
		placed = append(placed, anim.TimeRange{Start: max(end+1, lo), End: hi})
	}
	anim.MergeTimeRanges(timeRanges, placed)
}

// Verify reports whether the layer and everything it owns verify.
func (l *Layer) Verify() bool {
	if l == nil || l.Duration <= 0 || !l.Transform.Verify() {
		return false
	}
	for _, m := range l.Masks {
		if !m.Verify() {
			return false
		}
	}
	for _, e := range l.Effects {
		if e == nil || !e.Verify() {
			return false
		}
	}
	for _, s := range l.Styles {
		if s == nil || !s.Verify() {
			return false
		}
	}
	return l.Content != nil && l.Content.Verify()
}
