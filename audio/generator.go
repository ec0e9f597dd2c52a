package audio

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/gogpu/anim"
	"github.com/gogpu/anim/property"
	"github.com/gogpu/anim/scene"
)

// Generator flattens the audio of a file into clips on the root
// timeline. A Generator is safe for concurrent use.
type Generator struct {
	decoder Decoder
	logger  *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithDecoder sets the decoder used to read audio metadata. The default
// parses WAV headers and falls back to declared durations.
func WithDecoder(d Decoder) Option {
	return func(g *Generator) {
		if d != nil {
			g.decoder = d
		}
	}
}

// WithLogger sets the logger for dropped segments. The default is
// anim.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// NewGenerator returns a Generator with the given options applied.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{decoder: WAVDecoder{FallbackToDeclared: true}}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) log() *slog.Logger {
	if g.logger != nil {
		return g.logger
	}
	return anim.Logger()
}

// Generate returns the clips of file in playback order of discovery.
// Every clip holds a reference on its Source; release them with
// ReleaseClips when done.
func (g *Generator) Generate(file *scene.File) ([]Clip, error) {
	if file == nil {
		return nil, fmt.Errorf("audio: nil file: %w", anim.ErrMalformedFile)
	}
	if err := file.Check(); err != nil {
		return nil, err
	}
	run := &generation{g: g, sources: make(map[*scene.AudioAsset]*Source)}
	defer run.release()

	clips, err := run.file(file)
	if err != nil {
		return nil, err
	}
	for i := range clips {
		clips[i].RootFile = nil
		clips[i].Source.Retain()
	}
	g.log().Debug("audio clips generated", "count", len(clips), "sources", len(run.sources))
	return clips, nil
}

// generation is the state of one Generate call.
type generation struct {
	g       *Generator
	sources map[*scene.AudioAsset]*Source
}

func (r *generation) release() {
	for _, s := range r.sources {
		s.Release()
	}
}

func (r *generation) source(asset *scene.AudioAsset) (*Source, error) {
	if s, ok := r.sources[asset]; ok {
		return s, nil
	}
	info, err := r.g.decoder.Decode(asset)
	if err != nil {
		return nil, err
	}
	if info.Duration <= 0 {
		return nil, fmt.Errorf("audio: empty stream: %w", anim.ErrUnsupportedAudio)
	}
	s := NewSource(asset.Data, info)
	r.sources[asset] = s
	return s, nil
}

func (r *generation) file(f *scene.File) ([]Clip, error) {
	clips, err := r.composition(f.Root)
	if err != nil {
		return nil, err
	}
	clips = r.stretch(f, clips)
	for i := range clips {
		clips[i].RootFile = f
	}
	return clips, nil
}

func (r *generation) composition(c *scene.Composition) ([]Clip, error) {
	var clips []Clip
	if c.Audio != nil {
		own, err := r.ownAudio(c)
		if err != nil {
			return nil, fmt.Errorf("audio: composition %d: %w", c.ID, err)
		}
		clips = append(clips, own...)
	}
	for _, layer := range c.Layers {
		switch content := layer.Content.(type) {
		case *scene.ImageContent:
			if content.Movie == nil {
				continue
			}
			movie, err := r.movie(c, layer, content)
			if err != nil {
				return nil, err
			}
			clips = append(clips, movie...)
		case *scene.PreComposeContent:
			var (
				nested []Clip
				err    error
			)
			if content.File != nil {
				nested, err = r.file(content.File)
			} else {
				nested, err = r.composition(content.Composition)
			}
			if err != nil {
				return nil, err
			}
			start := anim.FrameToTime(content.CompositionStartTime, c.FrameRate)
			clips = append(clips, ShiftClipsWithLayer(nested, start)...)
		}
	}
	return clips, nil
}

// ownAudio places a composition's embedded audio on its timeline, cut
// to the composition's duration.
func (r *generation) ownAudio(c *scene.Composition) ([]Clip, error) {
	s, err := r.source(c.Audio)
	if err != nil {
		return nil, err
	}
	start := anim.FrameToTime(c.Audio.StartTime, c.FrameRate)
	clip := Clip{
		Source:      s,
		SourceRange: anim.TimeRange{Start: 0, End: s.Duration},
		TargetRange: anim.TimeRange{Start: start, End: start + s.Duration},
	}
	for _, ramp := range c.Audio.VolumeRamps {
		clip.VolumeRanges = append(clip.VolumeRanges, VolumeRange{
			Range: anim.TimeRange{
				Start: start + anim.FrameToTime(ramp.StartTime, c.FrameRate),
				End:   start + anim.FrameToTime(ramp.EndTime, c.FrameRate),
			},
			StartVolume: ramp.StartVolume,
			EndVolume:   ramp.EndVolume,
		})
	}
	window := anim.TimeRange{Start: 0, End: anim.FrameToTime(c.Duration, c.FrameRate)}
	out, ok := ApplyTimeRamp(clip, window, window)
	if !ok {
		r.g.log().Debug("audio outside composition", "composition", c.ID, "start", start)
		return nil, nil
	}
	return []Clip{out}, nil
}

// movie places the audio of a video layer. An animated time remap maps
// each increasing keyframe segment onto the layer; frozen and reversed
// segments are silent.
func (r *generation) movie(parent *scene.Composition, layer *scene.Layer, content *scene.ImageContent) ([]Clip, error) {
	clips, err := r.composition(content.Movie)
	if err != nil || len(clips) == 0 {
		return nil, err
	}
	var remap property.Property[anim.Frame]
	if content.FillRule != nil {
		remap = content.FillRule.TimeRemap
	}
	if remap == nil || !remap.Animatable() {
		return ShiftClipsWithLayer(clips, anim.FrameToTime(layer.StartTime, parent.FrameRate)), nil
	}

	movie := content.Movie
	var out []Clip
	for _, kf := range property.Keyframes(remap) {
		startTime, endTime := kf.StartTime, kf.EndTime
		startValue, endValue := kf.StartValue, kf.EndValue
		switch {
		case startValue == endValue || startTime >= endTime:
			r.g.log().Debug("audio remap segment frozen", "layer", layer.ID, "start", startTime, "end", endTime)
			continue
		case endValue < startValue:
			r.g.log().Debug("audio remap segment reversed", "layer", layer.ID, "start", startTime, "end", endTime)
			continue
		case startValue >= movie.Duration:
			continue
		}
		if endValue > movie.Duration {
			f := float64(movie.Duration-startValue) / float64(endValue-startValue)
			endTime = startTime + anim.Frame(math.Round(f*float64(endTime-startTime)))
			endValue = movie.Duration
			if endTime <= startTime {
				continue
			}
		}
		from := anim.TimeRange{
			Start: anim.FrameToTime(startValue, movie.FrameRate),
			End:   anim.FrameToTime(endValue, movie.FrameRate),
		}
		to := anim.TimeRange{
			Start: anim.FrameToTime(startTime, parent.FrameRate),
			End:   anim.FrameToTime(endTime, parent.FrameRate),
		}
		for _, c := range clips {
			if ramped, ok := ApplyTimeRamp(c, from, to); ok {
				out = append(out, ramped)
			}
		}
	}
	return out, nil
}

// stretch applies the file's time-stretch policy to clips on the root
// timeline.
func (r *generation) stretch(f *scene.File, clips []Clip) []Clip {
	rate := f.FrameRate()
	nominal := anim.FrameToTime(f.NominalDuration(), rate)
	stretched := anim.FrameToTime(f.StretchedDuration(), rate)
	if nominal <= 0 || nominal == stretched || len(clips) == 0 {
		return clips
	}
	switch f.TimeStretchMode {
	case scene.StretchRepeat:
		return repeatClips(clips, nominal, stretched)
	case scene.StretchScale:
		if f.ScaledTimeRange == nil {
			return rampAll(nil, clips,
				anim.TimeRange{Start: 0, End: nominal},
				anim.TimeRange{Start: 0, End: stretched})
		}
		window := anim.TimeRange{
			Start: anim.FrameToTime(f.ScaledTimeRange.Start, rate),
			End:   anim.FrameToTime(f.ScaledTimeRange.End+1, rate),
		}
		return scaleRange(clips, window, stretched-nominal)
	default:
		if stretched > nominal {
			return clips
		}
		window := anim.TimeRange{Start: 0, End: stretched}
		return rampAll(nil, clips, window, window)
	}
}

func rampAll(dst, clips []Clip, from, to anim.TimeRange) []Clip {
	for _, c := range clips {
		if ramped, ok := ApplyTimeRamp(c, from, to); ok {
			dst = append(dst, ramped)
		}
	}
	return dst
}

// repeatClips tiles the nominal timeline until the stretched duration,
// cutting the last tile short.
func repeatClips(clips []Clip, nominal, stretched int64) []Clip {
	var out []Clip
	for offset := int64(0); offset < stretched; offset += nominal {
		length := min(nominal, stretched-offset)
		out = rampAll(out, clips,
			anim.TimeRange{Start: 0, End: length},
			anim.TimeRange{Start: offset, End: offset + length})
	}
	return out
}

// scaleRange stretches window by delta microseconds. Clips before the
// window are kept, clips after it move by delta and clips touching it
// are split at its edges.
func scaleRange(clips []Clip, window anim.TimeRange, delta int64) []Clip {
	scaled := anim.TimeRange{Start: window.Start, End: max(window.Start, window.End+delta)}
	var out []Clip
	for _, c := range clips {
		a, b := c.TargetRange.Start, c.TargetRange.End
		before := anim.TimeRange{Start: a, End: window.Start}
		after := anim.TimeRange{Start: window.End, End: b}
		afterMoved := anim.TimeRange{Start: window.End + delta, End: b + delta}
		switch {
		case b <= window.Start:
			out = append(out, c)
		case a >= window.End:
			out = append(out, shiftClip(c, delta))
		case window.Start <= a && b <= window.End:
			out = rampAll(out, []Clip{c}, window, scaled)
		case a < window.Start && window.End < b:
			out = rampAll(out, []Clip{c}, before, before)
			out = rampAll(out, []Clip{c}, window, scaled)
			out = rampAll(out, []Clip{c}, after, afterMoved)
		case a < window.Start:
			out = rampAll(out, []Clip{c}, before, before)
			out = rampAll(out, []Clip{c}, window, scaled)
		default:
			out = rampAll(out, []Clip{c}, window, scaled)
			out = rampAll(out, []Clip{c}, after, afterMoved)
		}
	}
	return out
}
