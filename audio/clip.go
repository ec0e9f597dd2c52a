package audio

import (
	"math"

	"github.com/gogpu/anim"
	"github.com/gogpu/anim/scene"
)

// VolumeRange is a linear volume ramp over a window of the target
// timeline.
type VolumeRange struct {
	Range       anim.TimeRange
	StartVolume float32
	EndVolume   float32
}

// Clip plays SourceRange of Source over TargetRange of the timeline.
// The two windows may differ in length; the mixer resamples.
type Clip struct {
	Source       *Source
	SourceRange  anim.TimeRange
	TargetRange  anim.TimeRange
	VolumeRanges []VolumeRange

	// RootFile marks clips that already sit on the timeline of a
	// separately loaded file. Such clips are shifted, never clipped, when
	// placed at a negative offset; the mark is cleared once used.
	RootFile *scene.File
}

// ReleaseClips drops the source reference held by every clip.
func ReleaseClips(clips []Clip) {
	for _, c := range clips {
		if c.Source != nil {
			c.Source.Release()
		}
	}
}

func span(r anim.TimeRange) int64 {
	return r.End - r.Start
}

// interpolate maps x from [x0, x1] onto [y0, y1].
func interpolate(x, x0, x1, y0, y1 int64) int64 {
	if x1 == x0 {
		return y0
	}
	return y0 + int64(math.Round(float64(x-x0)*float64(y1-y0)/float64(x1-x0)))
}

func interpolateVolume(t int64, r anim.TimeRange, v0, v1 float32) float32 {
	if span(r) <= 0 {
		return v0
	}
	f := float32(float64(t-r.Start) / float64(span(r)))
	return v0 + (v1-v0)*f
}

// overlap classifies a window against a range.
type overlap uint8

const (
	// overlapOutside: the window misses the range.
	overlapOutside overlap = iota
	// overlapInside: the window lies within the range.
	overlapInside
	// overlapContain: the window covers the whole range.
	overlapContain
	// overlapLeft: the window covers the range's start but not its end.
	overlapLeft
	// overlapRight: the window covers the range's end but not its start.
	overlapRight
)

func classify(r, window anim.TimeRange) overlap {
	switch {
	case window.End <= r.Start || window.Start >= r.End:
		return overlapOutside
	case window.Start <= r.Start && r.End <= window.End:
		return overlapContain
	case r.Start <= window.Start && window.End <= r.End:
		return overlapInside
	case window.Start < r.Start:
		return overlapLeft
	default:
		return overlapRight
	}
}

// ApplyTimeRamp moves the part of clip that plays during from so that it
// plays during to instead, stretching linearly. The source window
// narrows to match whatever part of the target was cut. It reports false
// when from misses the clip or nothing of positive length remains.
func ApplyTimeRamp(clip Clip, from, to anim.TimeRange) (Clip, bool) {
	target, source := clip.TargetRange, clip.SourceRange
	mapTime := func(t int64) int64 { return interpolate(t, from.Start, from.End, to.Start, to.End) }
	sourceAt := func(t int64) int64 { return interpolate(t, target.Start, target.End, source.Start, source.End) }

	out := clip
	switch classify(target, from) {
	case overlapOutside:
		return Clip{}, false
	case overlapInside:
		out.TargetRange = to
		out.SourceRange = anim.TimeRange{Start: sourceAt(from.Start), End: sourceAt(from.End)}
	case overlapContain:
		out.TargetRange = anim.TimeRange{Start: mapTime(target.Start), End: mapTime(target.End)}
	case overlapLeft:
		out.TargetRange = anim.TimeRange{Start: mapTime(target.Start), End: to.End}
		out.SourceRange = anim.TimeRange{Start: source.Start, End: sourceAt(from.End)}
	case overlapRight:
		out.TargetRange = anim.TimeRange{Start: to.Start, End: mapTime(target.End)}
		out.SourceRange = anim.TimeRange{Start: sourceAt(from.Start), End: source.End}
	}
	if span(out.TargetRange) <= 0 || span(out.SourceRange) <= 0 {
		return Clip{}, false
	}
	out.VolumeRanges = rampVolumes(clip.VolumeRanges, from, to)
	return out, true
}

// rampVolumes re-cuts volume ramps to from and moves them onto to,
// interpolating the volume at every cut.
func rampVolumes(ranges []VolumeRange, from, to anim.TimeRange) []VolumeRange {
	if len(ranges) == 0 {
		return nil
	}
	mapTime := func(t int64) int64 { return interpolate(t, from.Start, from.End, to.Start, to.End) }
	out := make([]VolumeRange, 0, len(ranges))
	for _, v := range ranges {
		r := v.Range
		var nv VolumeRange
		switch classify(r, from) {
		case overlapOutside:
			continue
		case overlapInside:
			nv = VolumeRange{
				Range:       to,
				StartVolume: interpolateVolume(from.Start, r, v.StartVolume, v.EndVolume),
				EndVolume:   interpolateVolume(from.End, r, v.StartVolume, v.EndVolume),
			}
		case overlapContain:
			nv = VolumeRange{
				Range:       anim.TimeRange{Start: mapTime(r.Start), End: mapTime(r.End)},
				StartVolume: v.StartVolume,
				EndVolume:   v.EndVolume,
			}
		case overlapLeft:
			nv = VolumeRange{
				Range:       anim.TimeRange{Start: mapTime(r.Start), End: to.End},
				StartVolume: v.StartVolume,
				EndVolume:   interpolateVolume(from.End, r, v.StartVolume, v.EndVolume),
			}
		case overlapRight:
			nv = VolumeRange{
				Range:       anim.TimeRange{Start: to.Start, End: mapTime(r.End)},
				StartVolume: interpolateVolume(from.Start, r, v.StartVolume, v.EndVolume),
				EndVolume:   v.EndVolume,
			}
		}
		if span(nv.Range) > 0 {
			out = append(out, nv)
		}
	}
	return out
}

// shiftClip translates the clip's target window and volume ramps.
func shiftClip(c Clip, offset int64) Clip {
	c.TargetRange = anim.TimeRange{Start: c.TargetRange.Start + offset, End: c.TargetRange.End + offset}
	if len(c.VolumeRanges) > 0 {
		shifted := make([]VolumeRange, len(c.VolumeRanges))
		for i, v := range c.VolumeRanges {
			v.Range = anim.TimeRange{Start: v.Range.Start + offset, End: v.Range.End + offset}
			shifted[i] = v
		}
		c.VolumeRanges = shifted
	}
	return c
}

// ShiftClipsWithLayer places clips of a nested timeline that starts at
// startTime on the parent timeline. A negative start drops what would
// play before the origin and cuts clips that straddle it, except clips
// marked with a RootFile, which are only shifted and lose the mark.
func ShiftClipsWithLayer(clips []Clip, startTime int64) []Clip {
	if startTime == 0 || len(clips) == 0 {
		return clips
	}
	out := make([]Clip, 0, len(clips))
	for _, c := range clips {
		c = shiftClip(c, startTime)
		if startTime > 0 {
			out = append(out, c)
			continue
		}
		if c.RootFile != nil {
			c.RootFile = nil
			out = append(out, c)
			continue
		}
		if c.TargetRange.End <= 0 {
			anim.Logger().Debug("audio clip dropped before origin",
				"start", c.TargetRange.Start, "end", c.TargetRange.End)
			continue
		}
		if c.TargetRange.Start < 0 {
			visible := anim.TimeRange{Start: 0, End: c.TargetRange.End}
			var ok bool
			if c, ok = ApplyTimeRamp(c, visible, visible); !ok {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}
