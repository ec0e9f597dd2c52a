package audio

import (
	"encoding/binary"
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/anim"
	"github.com/gogpu/anim/property"
	"github.com/gogpu/anim/scene"
)

const second = anim.MicrosecondsPerSecond

func tr(start, end int64) anim.TimeRange { return anim.TimeRange{Start: start, End: end} }

func staticTransform() *scene.Transform {
	return &scene.Transform{
		AnchorPoint: property.NewConstant(anim.Point{}),
		Position:    property.NewConstant(anim.Point{}),
		Scale:       property.NewConstant(anim.Pt(1, 1)),
		Rotation:    property.NewConstant[float32](0),
		Opacity:     property.NewConstant[float32](1),
	}
}

// audioComp returns a 30 fps composition carrying audio of the given
// length in microseconds.
func audioComp(id uint32, duration anim.Frame, audioLength int64) *scene.Composition {
	return &scene.Composition{
		ID:        id,
		Duration:  duration,
		FrameRate: 30,
		Width:     100,
		Height:    100,
		Audio:     &scene.AudioAsset{Data: []byte("not a wav"), Duration: audioLength},
	}
}

type placement struct{ source, target anim.TimeRange }

func spans(clips []Clip) []placement {
	out := make([]placement, len(clips))
	for i, c := range clips {
		out[i] = placement{c.SourceRange, c.TargetRange}
	}
	return out
}

func TestGenerateRepeat(t *testing.T) {
	root := audioComp(1, 150, 5*second)
	file := &scene.File{
		Compositions:    []*scene.Composition{root},
		Root:            root,
		TimeStretchMode: scene.StretchRepeat,
		Duration:        360,
	}
	clips, err := NewGenerator().Generate(file)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	want := []placement{
		{tr(0, 5*second), tr(0, 5*second)},
		{tr(0, 5*second), tr(5*second, 10*second)},
		{tr(0, 2*second), tr(10*second, 12*second)},
	}
	if got := spans(clips); !slices.Equal(got, want) {
		t.Fatalf("clips = %v, want %v", got, want)
	}
	for i, c := range clips {
		if c.RootFile != nil {
			t.Errorf("clip %d keeps its root file mark", i)
		}
		if c.Source != clips[0].Source {
			t.Errorf("clip %d has its own source", i)
		}
	}

	src := clips[0].Source
	if src.Refs() != 3 {
		t.Errorf("refs = %d, want 3", src.Refs())
	}
	ReleaseClips(clips)
	if src.Refs() != 0 || src.Data() != nil {
		t.Errorf("after release: refs = %d, data = %v", src.Refs(), src.Data())
	}
}

func TestGenerateScale(t *testing.T) {
	tests := []struct {
		name   string
		scaled *anim.TimeRange
		length anim.Frame
		want   []placement
	}{
		{
			name:   "uniform",
			length: 300,
			want:   []placement{{tr(0, 5*second), tr(0, 10*second)}},
		},
		{
			name:   "range inside audio",
			scaled: &anim.TimeRange{Start: 30, End: 59},
			length: 180,
			want: []placement{
				{tr(0, second), tr(0, second)},
				{tr(second, 2*second), tr(second, 3*second)},
				{tr(2*second, 5*second), tr(3*second, 6*second)},
			},
		},
		{
			name:   "range squeezed away",
			scaled: &anim.TimeRange{Start: 30, End: 59},
			length: 120,
			want: []placement{
				{tr(0, second), tr(0, second)},
				{tr(2*second, 5*second), tr(second, 4*second)},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := audioComp(1, 150, 5*second)
			file := &scene.File{
				Compositions:    []*scene.Composition{root},
				Root:            root,
				TimeStretchMode: scene.StretchScale,
				ScaledTimeRange: tt.scaled,
				Duration:        tt.length,
			}
			clips, err := NewGenerator(WithDecoder(StaticDecoder{})).Generate(file)
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			if got := spans(clips); !slices.Equal(got, tt.want) {
				t.Errorf("clips = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScaleRange(t *testing.T) {
	// [1000,2000) plays over [1000,3000) after scaling.
	window := tr(1000, 2000)
	const delta = 1000
	tests := []struct {
		name string
		clip placement
		want []placement
	}{
		{
			name: "audio before window",
			clip: placement{tr(0, 1000), tr(0, 1000)},
			want: []placement{{tr(0, 1000), tr(0, 1000)}},
		},
		{
			name: "audio after window",
			clip: placement{tr(0, 1000), tr(2000, 3000)},
			want: []placement{{tr(0, 1000), tr(3000, 4000)}},
		},
		{
			name: "window contains audio",
			clip: placement{tr(0, 500), tr(1200, 1700)},
			want: []placement{{tr(0, 500), tr(1400, 2400)}},
		},
		{
			name: "audio contains window",
			clip: placement{tr(0, 3000), tr(0, 3000)},
			want: []placement{
				{tr(0, 1000), tr(0, 1000)},
				{tr(1000, 2000), tr(1000, 3000)},
				{tr(2000, 3000), tr(3000, 4000)},
			},
		},
		{
			name: "audio enters window",
			clip: placement{tr(0, 1000), tr(500, 1500)},
			want: []placement{
				{tr(0, 500), tr(500, 1000)},
				{tr(500, 1000), tr(1000, 2000)},
			},
		},
		{
			name: "audio leaves window",
			clip: placement{tr(0, 1000), tr(1500, 2500)},
			want: []placement{
				{tr(0, 500), tr(2000, 3000)},
				{tr(500, 1000), tr(3000, 3500)},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clip := Clip{SourceRange: tt.clip.source, TargetRange: tt.clip.target}
			got := spans(scaleRange([]Clip{clip}, window, delta))
			if !slices.Equal(got, tt.want) {
				t.Errorf("clips = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGenerateTruncatesToComposition(t *testing.T) {
	root := audioComp(1, 60, 5*second)
	root.Audio.StartTime = 30
	file := &scene.File{Compositions: []*scene.Composition{root}, Root: root}
	clips, err := NewGenerator().Generate(file)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	want := []placement{{tr(0, second), tr(second, 2*second)}}
	if got := spans(clips); !slices.Equal(got, want) {
		t.Errorf("clips = %v, want %v", got, want)
	}
}

func TestGeneratePreComposeNegativeStart(t *testing.T) {
	child := audioComp(2, 90, 2*second)
	root := &scene.Composition{
		ID: 1, Duration: 150, FrameRate: 30, Width: 100, Height: 100,
		Layers: []*scene.Layer{{
			ID:        1,
			Duration:  90,
			Transform: staticTransform(),
			Content:   &scene.PreComposeContent{Composition: child, CompositionStartTime: -30},
		}},
	}
	file := &scene.File{Compositions: []*scene.Composition{root, child}, Root: root}
	clips, err := NewGenerator().Generate(file)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	want := []placement{{tr(second, 2*second), tr(0, second)}}
	if got := spans(clips); !slices.Equal(got, want) {
		t.Errorf("clips = %v, want %v", got, want)
	}
}

func TestGenerateNestedFileShiftsPastOrigin(t *testing.T) {
	inner := audioComp(3, 90, 2*second)
	innerFile := &scene.File{Compositions: []*scene.Composition{inner}, Root: inner}
	root := &scene.Composition{
		ID: 1, Duration: 150, FrameRate: 30, Width: 100, Height: 100,
		Layers: []*scene.Layer{{
			ID:        1,
			Duration:  90,
			Transform: staticTransform(),
			Content:   &scene.PreComposeContent{File: innerFile, CompositionStartTime: -30},
		}},
	}
	file := &scene.File{Compositions: []*scene.Composition{root}, Root: root}
	clips, err := NewGenerator().Generate(file)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	want := []placement{{tr(0, 2*second), tr(-second, second)}}
	if got := spans(clips); !slices.Equal(got, want) {
		t.Errorf("clips = %v, want %v", got, want)
	}
}

func TestGenerateMovieTimeRemap(t *testing.T) {
	movie := audioComp(2, 60, 2*second)
	movie.Kind = scene.CompositionVideo
	remap := property.NewAnimatable([]*property.Keyframe[anim.Frame]{
		{StartValue: 0, EndValue: 30, StartTime: 0, EndTime: 30, Interpolation: property.InterpolationLinear},
		{StartValue: 30, EndValue: 30, StartTime: 30, EndTime: 60, Interpolation: property.InterpolationLinear},
		{StartValue: 30, EndValue: 90, StartTime: 60, EndTime: 90, Interpolation: property.InterpolationLinear},
		{StartValue: 60, EndValue: 0, StartTime: 90, EndTime: 120, Interpolation: property.InterpolationLinear},
	}, property.Frames)
	root := &scene.Composition{
		ID: 1, Duration: 150, FrameRate: 30, Width: 100, Height: 100,
		Layers: []*scene.Layer{{
			ID:        1,
			Duration:  150,
			Transform: staticTransform(),
			Content: &scene.ImageContent{
				Width: 10, Height: 10,
				FillRule: &scene.ImageFillRule{TimeRemap: remap},
				Movie:    movie,
			},
		}},
	}
	file := &scene.File{Compositions: []*scene.Composition{root, movie}, Root: root}
	clips, err := NewGenerator().Generate(file)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	want := []placement{
		{tr(0, second), tr(0, second)},
		{tr(second, 2*second), tr(2*second, 2*second+second/2)},
	}
	if got := spans(clips); !slices.Equal(got, want) {
		t.Errorf("clips = %v, want %v", got, want)
	}
}

func TestGenerateMovieLayerStart(t *testing.T) {
	movie := audioComp(2, 60, 2*second)
	movie.Kind = scene.CompositionVideo
	root := &scene.Composition{
		ID: 1, Duration: 150, FrameRate: 30, Width: 100, Height: 100,
		Layers: []*scene.Layer{{
			ID:        1,
			StartTime: 60,
			Duration:  60,
			Transform: staticTransform(),
			Content:   &scene.ImageContent{Width: 10, Height: 10, Movie: movie},
		}},
	}
	file := &scene.File{Compositions: []*scene.Composition{root, movie}, Root: root}
	clips, err := NewGenerator().Generate(file)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	want := []placement{{tr(0, 2*second), tr(2*second, 4*second)}}
	if got := spans(clips); !slices.Equal(got, want) {
		t.Errorf("clips = %v, want %v", got, want)
	}
}

func TestGenerateErrors(t *testing.T) {
	if _, err := NewGenerator().Generate(nil); !errors.Is(err, anim.ErrMalformedFile) {
		t.Errorf("nil file: err = %v", err)
	}

	root := audioComp(1, 150, 0)
	file := &scene.File{Compositions: []*scene.Composition{root}, Root: root}
	if _, err := NewGenerator(WithDecoder(StaticDecoder{})).Generate(file); !errors.Is(err, anim.ErrUnsupportedAudio) {
		t.Errorf("undeclared duration: err = %v", err)
	}
}

func TestApplyTimeRamp(t *testing.T) {
	clip := Clip{SourceRange: tr(0, 2000), TargetRange: tr(1000, 3000)}
	tests := []struct {
		name     string
		from, to anim.TimeRange
		want     placement
		ok       bool
	}{
		{name: "outside", from: tr(3000, 4000), to: tr(0, 1000)},
		{name: "inside", from: tr(1500, 2500), to: tr(0, 500), want: placement{tr(500, 1500), tr(0, 500)}, ok: true},
		{name: "contain", from: tr(0, 4000), to: tr(0, 8000), want: placement{tr(0, 2000), tr(2000, 6000)}, ok: true},
		{name: "left", from: tr(0, 2000), to: tr(0, 1000), want: placement{tr(0, 1000), tr(500, 1000)}, ok: true},
		{name: "right", from: tr(2000, 4000), to: tr(10000, 12000), want: placement{tr(1000, 2000), tr(10000, 11000)}, ok: true},
		{name: "collapsed", from: tr(1500, 2500), to: tr(5, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ApplyTimeRamp(clip, tt.from, tt.to)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && (placement{got.SourceRange, got.TargetRange}) != tt.want {
				t.Errorf("got %v, want %v", placement{got.SourceRange, got.TargetRange}, tt.want)
			}
		})
	}
}

func TestApplyTimeRampVolumes(t *testing.T) {
	clip := Clip{
		SourceRange: tr(0, 1000),
		TargetRange: tr(0, 1000),
		VolumeRanges: []VolumeRange{
			{Range: tr(0, 1000), StartVolume: 0, EndVolume: 1},
			{Range: tr(800, 1000), StartVolume: 1, EndVolume: 1},
		},
	}
	got, ok := ApplyTimeRamp(clip, tr(250, 750), tr(0, 1000))
	if !ok {
		t.Fatal("ramp dropped the clip")
	}
	if len(got.VolumeRanges) != 1 {
		t.Fatalf("volume ranges = %v, want one", got.VolumeRanges)
	}
	v := got.VolumeRanges[0]
	if v.Range != tr(0, 1000) || v.StartVolume != 0.25 || v.EndVolume != 0.75 {
		t.Errorf("volume = %+v, want [0,1000) 0.25..0.75", v)
	}
	if clip.VolumeRanges[0].StartVolume != 0 {
		t.Error("input volume ranges modified")
	}

	got, _ = ApplyTimeRamp(clip, tr(500, 2000), tr(500, 2000))
	want := []VolumeRange{
		{Range: tr(500, 1000), StartVolume: 0.5, EndVolume: 1},
		{Range: tr(800, 1000), StartVolume: 1, EndVolume: 1},
	}
	if !slices.Equal(got.VolumeRanges, want) {
		t.Errorf("trimmed volumes = %v, want %v", got.VolumeRanges, want)
	}
}

func TestShiftClipsWithLayer(t *testing.T) {
	marker := &scene.File{}
	base := Clip{
		SourceRange:  tr(0, 2000),
		TargetRange:  tr(1000, 3000),
		VolumeRanges: []VolumeRange{{Range: tr(1000, 3000), StartVolume: 1, EndVolume: 1}},
	}
	early := Clip{SourceRange: tr(0, 500), TargetRange: tr(0, 500)}
	marked := base
	marked.RootFile = marker

	if got := ShiftClipsWithLayer([]Clip{base}, 0); got[0].TargetRange != base.TargetRange {
		t.Errorf("zero shift moved clip to %v", got[0].TargetRange)
	}

	got := ShiftClipsWithLayer([]Clip{base}, 500)
	if got[0].TargetRange != tr(1500, 3500) || got[0].VolumeRanges[0].Range != tr(1500, 3500) {
		t.Errorf("positive shift = %+v", got[0])
	}
	if base.VolumeRanges[0].Range != tr(1000, 3000) {
		t.Error("shift modified input volume ranges")
	}

	got = ShiftClipsWithLayer([]Clip{base, early, marked}, -1500)
	want := []placement{
		{tr(500, 2000), tr(0, 1500)},
		{tr(0, 2000), tr(-500, 1500)},
	}
	if !slices.Equal(spans(got), want) {
		t.Fatalf("negative shift = %v, want %v", spans(got), want)
	}
	if got[1].RootFile != nil {
		t.Error("root file mark not cleared")
	}
	if got[0].VolumeRanges[0].Range != tr(0, 1500) {
		t.Errorf("clipped volume range = %v", got[0].VolumeRanges[0].Range)
	}
}

func wav(byteRate uint32, declared uint32, payload int) []byte {
	b := []byte("RIFF\x00\x00\x00\x00WAVE")
	b = append(b, "fmt "...)
	b = binary.LittleEndian.AppendUint32(b, 16)
	b = binary.LittleEndian.AppendUint16(b, 1) // PCM
	b = binary.LittleEndian.AppendUint16(b, 1)
	b = binary.LittleEndian.AppendUint32(b, byteRate)
	b = binary.LittleEndian.AppendUint32(b, byteRate)
	b = binary.LittleEndian.AppendUint16(b, 1)
	b = binary.LittleEndian.AppendUint16(b, 8)
	b = append(b, "LIST"...)
	b = binary.LittleEndian.AppendUint32(b, 3)
	b = append(b, 'a', 'b', 'c', 0)
	b = append(b, "data"...)
	b = binary.LittleEndian.AppendUint32(b, declared)
	return append(b, make([]byte, payload)...)
}

func TestWAVDecoder(t *testing.T) {
	tests := []struct {
		name  string
		asset scene.AudioAsset
		dec   WAVDecoder
		want  Info
		err   bool
	}{
		{name: "header", asset: scene.AudioAsset{Data: wav(8000, 4000, 4000)}, want: Info{Duration: second / 2, SampleRate: 8000, Channels: 1}},
		{name: "overstated data", asset: scene.AudioAsset{Data: wav(8000, 1<<30, 4000)}, want: Info{Duration: second / 2, SampleRate: 8000, Channels: 1}},
		{name: "not wav", asset: scene.AudioAsset{Data: []byte("ID3....")}, err: true},
		{name: "fallback", asset: scene.AudioAsset{Data: []byte("ID3...."), Duration: 42}, dec: WAVDecoder{FallbackToDeclared: true}, want: Info{Duration: 42}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.dec.Decode(&tt.asset)
			if tt.err {
				if !errors.Is(err, anim.ErrUnsupportedAudio) {
					t.Errorf("err = %v, want ErrUnsupportedAudio", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if got != tt.want {
				t.Errorf("Decode = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestGenerateSourceBounds(t *testing.T) {
	root := audioComp(1, 150, 0)
	root.Audio.Data = wav(8000, 8000, 8000)
	root.Audio.Duration = 9 * second // declared length is ignored when the header parses
	file := &scene.File{Compositions: []*scene.Composition{root}, Root: root, TimeStretchMode: scene.StretchRepeat, Duration: 400}
	clips, err := NewGenerator().Generate(file)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	defer ReleaseClips(clips)
	for _, c := range clips {
		if c.SourceRange.Start < 0 || c.SourceRange.End > second {
			t.Errorf("source %v exceeds decoded length", c.SourceRange)
		}
	}
}
