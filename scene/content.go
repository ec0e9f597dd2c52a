package scene

import (
	"github.com/gogpu/anim"
	"github.com/gogpu/anim/property"
	"github.com/gogpu/anim/textanim"
)

// Content is what a layer draws: one of *NullContent, *SolidContent,
// *ShapeContent, *TextContent, *ImageContent or *PreComposeContent.
type Content interface {
	Verify() bool
	isContent()
}

// LayerType identifies a layer by its content.
type LayerType uint8

const (
	LayerUnknown LayerType = iota
	LayerNull
	LayerSolid
	LayerShape
	LayerText
	LayerImage
	LayerPreCompose
)

// String returns a human-readable name for the layer type.
func (t LayerType) String() string {
	switch t {
	case LayerNull:
		return "Null"
	case LayerSolid:
		return "Solid"
	case LayerShape:
		return "Shape"
	case LayerText:
		return "Text"
	case LayerImage:
		return "Image"
	case LayerPreCompose:
		return "PreCompose"
	default:
		return unknownStr
	}
}

// NullContent draws nothing; null layers exist to parent other layers.
type NullContent struct{}

func (*NullContent) isContent() {}

// Verify returns true.
func (*NullContent) Verify() bool { return true }

// SolidContent fills the layer bounds with a color.
type SolidContent struct {
	Color         anim.Color
	Width, Height int32
}

func (*SolidContent) isContent() {}

// Verify reports whether the solid has a positive size.
func (c *SolidContent) Verify() bool {
	return c != nil && c.Width > 0 && c.Height > 0
}

// ShapeContent is a tree of shape elements.
type ShapeContent struct {
	Elements []ShapeElement
}

func (*ShapeContent) isContent() {}

// Verify reports whether every element verifies.
func (c *ShapeContent) Verify() bool {
	return c != nil && verifyElements(c.Elements)
}

// Justification aligns the lines of a text document.
type Justification uint8

const (
	JustifyLeft Justification = iota
	JustifyCenter
	JustifyRight
	JustifyLastLineLeft
	JustifyLastLineRight
	JustifyLastLineCenter
	JustifyLastLineFull
)

// TextDocument is the keyframed value of a text layer.
type TextDocument struct {
	Text          string
	FontFamily    string
	FontStyle     string
	FontSize      float32
	Tracking      float32
	Leading       float32
	Justification Justification
	ApplyFill     bool
	ApplyStroke   bool
	FillColor     anim.Color
	StrokeColor   anim.Color
	StrokeWidth   float32
}

// TextContent is a text layer: a keyframed document and the animators
// that modulate its characters.
type TextContent struct {
	Document  property.Property[*TextDocument]
	Animators []*textanim.Animator
}

func (*TextContent) isContent() {}

// Verify reports whether the document and every animator verify.
func (c *TextContent) Verify() bool {
	if c == nil || !property.Required(c.Document) {
		return false
	}
	for _, a := range c.Animators {
		if !a.Verify() {
			return false
		}
	}
	return true
}

// Factors returns, for every animator, the combined selector factor of
// each character of the document shown at frame. The bool reports
// whether any factor is a known approximation.
func (c *TextContent) Factors(frame anim.Frame, frameRate float32) ([][]float32, bool) {
	doc := c.Document.ValueAt(frame)
	if doc == nil {
		return nil, false
	}
	chars := textanim.Characters(doc.Text)
	result := make([][]float32, len(c.Animators))
	bias := false
	for i, a := range c.Animators {
		factors, biased := a.Factors(chars, frame, frameRate)
		result[i] = factors
		bias = bias || biased
	}
	return result, bias
}

// ScaleMode fits an image into its layer.
type ScaleMode uint8

const (
	ScaleNone ScaleMode = iota
	ScaleStretch
	ScaleLetterBox
	ScaleZoom
)

// ImageFillRule places image content in the layer and, for movies,
// optionally remaps layer time to content time.
type ImageFillRule struct {
	ScaleMode ScaleMode
	// TimeRemap maps composition frames to content frames.
	TimeRemap property.Property[anim.Frame]
}

// ImageContent is a still image or, when Movie is set, a video. Movie
// is a composition of kind Video owned by the File; it may carry audio.
type ImageContent struct {
	ImageID  uint32
	Width    int32
	Height   int32
	FillRule *ImageFillRule
	Movie    *Composition
}

func (*ImageContent) isContent() {}

// Verify reports whether the image has a size and the movie, if any,
// verifies.
func (c *ImageContent) Verify() bool {
	if c == nil || c.Width <= 0 || c.Height <= 0 {
		return false
	}
	if c.FillRule != nil && c.FillRule.TimeRemap != nil && !c.FillRule.TimeRemap.Verify() {
		return false
	}
	return c.Movie == nil || c.Movie.Verify()
}

// PreComposeContent nests a composition. Composition is not owned; it
// lives in File.Compositions and may be shared by several layers.
// CompositionStartTime is where the nested composition's frame 0 falls
// on the parent timeline.
//
// File, when set, is a separately loaded file placed in this layer; its
// root composition is used and its own time-stretch policy applies.
type PreComposeContent struct {
	Composition          *Composition
	CompositionStartTime anim.Frame
	File                 *File
}

func (*PreComposeContent) isContent() {}

// Target returns the nested composition.
func (c *PreComposeContent) Target() *Composition {
	if c.File != nil {
		return c.File.Root
	}
	return c.Composition
}

// Verify reports whether the nested composition is present.
func (c *PreComposeContent) Verify() bool {
	return c != nil && c.Target() != nil
}
