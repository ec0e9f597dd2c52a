package scene

import (
	"sync"

	"github.com/gogpu/anim"
)

// CompositionKind distinguishes vector compositions from pre-rendered
// frame sequences.
type CompositionKind uint8

const (
	CompositionVector CompositionKind = iota
	CompositionBitmap
	CompositionVideo
)

// String returns a human-readable name for the kind.
func (k CompositionKind) String() string {
	switch k {
	case CompositionVector:
		return "Vector"
	case CompositionBitmap:
		return "Bitmap"
	case CompositionVideo:
		return "Video"
	default:
		return unknownStr
	}
}

// AudioVolumeRamp is a volume envelope segment relative to the start of
// an audio asset, in composition frames.
type AudioVolumeRamp struct {
	StartTime   anim.Frame
	EndTime     anim.Frame
	StartVolume float32
	EndVolume   float32
}

// AudioAsset is encoded audio embedded in a composition.
type AudioAsset struct {
	// Data is the encoded audio stream.
	Data []byte
	// Duration is the declared length in microseconds, used when the
	// decoder cannot read it from Data.
	Duration int64
	// StartTime is the composition frame at which playback begins.
	StartTime anim.Frame
	// VolumeRamps is the volume envelope, sorted by StartTime.
	VolumeRamps []AudioVolumeRamp
}

// Composition is a timeline of layers, or for bitmap and video kinds a
// pre-rendered frame sequence.
type Composition struct {
	ID              uint32
	Kind            CompositionKind
	Width, Height   int32
	Duration        anim.Frame
	FrameRate       float32
	BackgroundColor anim.Color

	// Layers are the vector layers, topmost first.
	Layers []*Layer

	// SequenceStaticRanges are the static frames of a bitmap or video
	// sequence, as reported by its decoder.
	SequenceStaticRanges []anim.TimeRange

	Audio *AudioAsset

	staticOnce   sync.Once
	staticRanges []anim.TimeRange
}

// LayerByID returns the layer with the given ID, or nil.
func (c *Composition) LayerByID(id uint32) *Layer {
	if id == 0 {
		return nil
	}
	for _, l := range c.Layers {
		if l.ID == id {
			return l
		}
	}
	return nil
}

// StaticTimeRanges returns the frames that render identically to the
// previous frame in the same range. It is computed on first use and
// shared afterwards, so a composition referenced by many pre-compose
// layers is visited once. The result must not be modified.
func (c *Composition) StaticTimeRanges() []anim.TimeRange {
	c.staticOnce.Do(func() {
		c.staticRanges = c.computeStaticTimeRanges()
		anim.Logger().Debug("static ranges computed",
			"composition", c.ID, "kind", c.Kind, "ranges", len(c.staticRanges))
	})
	return c.staticRanges
}

func (c *Composition) computeStaticTimeRanges() []anim.TimeRange {
	if c.Duration <= 0 {
		return nil
	}
	ranges := []anim.TimeRange{{Start: 0, End: c.Duration - 1}}
	if c.Kind != CompositionVector {
		anim.MergeTimeRanges(&ranges, c.SequenceStaticRanges)
		return ranges
	}
	for _, l := range c.Layers {
		l.ExcludeVaryingRanges(&ranges)
		anim.SplitTimeRangesAt(&ranges, l.StartTime)
		anim.SplitTimeRangesAt(&ranges, l.EndTime())
	}
	return ranges
}

// StaticRangeAt returns the static range containing frame.
func (c *Composition) StaticRangeAt(frame anim.Frame) (anim.TimeRange, bool) {
	ranges := c.StaticTimeRanges()
	i := anim.FindTimeRangeAt(ranges, frame)
	if i < 0 {
		return anim.TimeRange{}, false
	}
	return ranges[i], true
}

// IsStaticAt reports whether frame renders exactly like frame-1, so a
// renderer may reuse its previous output.
func (c *Composition) IsStaticAt(frame anim.Frame) bool {
	r, ok := c.StaticRangeAt(frame)
	return ok && r.Start < frame
}

// HasVaryingFrames reports whether any two frames of the composition
// may render differently.
func (c *Composition) HasVaryingFrames() bool {
	return anim.HasVaryingTimeRange(c.StaticTimeRanges(), 0, c.Duration)
}

// Verify reports whether the composition and its layers verify.
func (c *Composition) Verify() bool {
	if c == nil || c.Duration <= 0 || c.FrameRate <= 0 {
		return false
	}
	if c.Audio != nil && len(c.Audio.Data) == 0 {
		return false
	}
	if c.Kind != CompositionVector {
		return true
	}
	for _, l := range c.Layers {
		if !l.Verify() {
			return false
		}
	}
	return true
}
