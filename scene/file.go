package scene

import (
	"github.com/gogpu/anim"
)

// TimeStretchMode selects how a file fills a duration longer or shorter
// than its root composition.
type TimeStretchMode uint8

const (
	// StretchNone plays the root composition once and then holds.
	StretchNone TimeStretchMode = iota
	// StretchScale speeds the timeline up or down, optionally only
	// inside ScaledTimeRange.
	StretchScale
	// StretchRepeat loops the root composition.
	StretchRepeat
)

// String returns a human-readable name for the mode.
func (m TimeStretchMode) String() string {
	switch m {
	case StretchNone:
		return "None"
	case StretchScale:
		return "Scale"
	case StretchRepeat:
		return "Repeat"
	default:
		return unknownStr
	}
}

// File is a loaded animation: its compositions and playback policy.
type File struct {
	// Compositions owns every composition of the file.
	Compositions []*Composition
	// Root is the composition played by the file; it is one of
	// Compositions.
	Root *Composition

	TimeStretchMode TimeStretchMode
	// ScaledTimeRange restricts StretchScale to a sub-range of the root
	// timeline, in root frames. Nil scales the whole timeline.
	ScaledTimeRange *anim.TimeRange
	// Duration is the stretched duration in root frames. Zero means the
	// root composition's own duration.
	Duration anim.Frame
}

// NominalDuration returns the root composition's duration.
func (f *File) NominalDuration() anim.Frame {
	if f.Root == nil {
		return 0
	}
	return f.Root.Duration
}

// StretchedDuration returns the duration the file is played for.
func (f *File) StretchedDuration() anim.Frame {
	if f.Duration > 0 {
		return f.Duration
	}
	return f.NominalDuration()
}

// FrameRate returns the root composition's frame rate.
func (f *File) FrameRate() float32 {
	if f.Root == nil {
		return 0
	}
	return f.Root.FrameRate
}

// Verify reports whether the whole file is well formed.
func (f *File) Verify() bool {
	return f.Check() == nil
}
