package scenefile

import (
	"errors"
	"io/fs"
	"os"
	"slices"
	"strings"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/gogpu/anim"
	"github.com/gogpu/anim/audio"
	"github.com/gogpu/anim/cache"
	"github.com/gogpu/anim/scene"
	"github.com/gogpu/anim/textanim"
)

func mustDecode(t *testing.T, name string) *scene.File {
	t.Helper()
	data, err := os.ReadFile("testdata/" + name)
	if err != nil {
		t.Fatal(err)
	}
	f, err := DecodeBytes(data)
	if err != nil {
		t.Fatalf("decode %s: %v", name, err)
	}
	return f
}

func TestDecodeRepeatAudio(t *testing.T) {
	f := mustDecode(t, "repeat.yaml")
	if f.TimeStretchMode != scene.StretchRepeat || f.StretchedDuration() != 360 || f.NominalDuration() != 150 {
		t.Fatalf("file = %+v", f)
	}
	if got := f.Root.Audio.Duration; got != 5*anim.MicrosecondsPerSecond {
		t.Fatalf("audio duration = %d", got)
	}
	clips, err := audio.NewGenerator().Generate(f)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	defer audio.ReleaseClips(clips)
	want := []anim.TimeRange{
		{Start: 0, End: 5_000_000},
		{Start: 5_000_000, End: 10_000_000},
		{Start: 10_000_000, End: 12_000_000},
	}
	var got []anim.TimeRange
	for _, c := range clips {
		got = append(got, c.TargetRange)
	}
	if !slices.Equal(got, want) {
		t.Errorf("targets = %v, want %v", got, want)
	}
}

func TestDecodeLayers(t *testing.T) {
	f := mustDecode(t, "layers.yaml")
	if f.Root.ID != 1 || len(f.Compositions) != 2 {
		t.Fatalf("root = %d, compositions = %d", f.Root.ID, len(f.Compositions))
	}
	if f.Root.BackgroundColor != (anim.Color{R: 255, G: 255, B: 255}) {
		t.Errorf("background = %v", f.Root.BackgroundColor)
	}

	fade := f.Root.LayerByID(1)
	if fade.Duration != 100 {
		t.Errorf("default duration = %d, want 100", fade.Duration)
	}
	if c := fade.Content.(*scene.SolidContent).Color; c != (anim.Color{R: 255, G: 99, B: 71}) {
		t.Errorf("tomato = %v", c)
	}
	if len(fade.Masks) != 1 || fade.Masks[0].Mode != scene.MaskAdd || fade.Masks[0].Path.ValueAt(0).Len() != 3 {
		t.Errorf("masks = %+v", fade.Masks)
	}
	if scene.TypeOfEffect(fade.Effects[0]) != scene.EffectFastBlur || scene.StyleName(fade.Styles[0]) == "" {
		t.Errorf("effects = %v, styles = %v", fade.Effects, fade.Styles)
	}

	badge := f.Root.LayerByID(3)
	if badge.BlendMode != scene.BlendMultiply || badge.ParentID != 1 || badge.Type() != scene.LayerShape {
		t.Errorf("badge = %+v", badge)
	}
	group := badge.Content.(*scene.ShapeContent).Elements[0].(*scene.ShapeGroup)
	if len(group.Elements) != 3 || scene.TypeOfShape(group.Elements[2]) != scene.ShapeStroke {
		t.Errorf("group elements = %v", group.Elements)
	}

	nested := f.Compositions[0]
	if c := nested.Layers[0].Content.(*scene.SolidContent).Color; c != (anim.Color{R: 0x33, G: 0x66, B: 0x99}) {
		t.Errorf("hex color = %v", c)
	}

	want := []anim.TimeRange{
		{Start: 0, End: 9},
		{Start: 20, End: 39},
		{Start: 40, End: 44},
		{Start: 50, End: 59},
		{Start: 60, End: 99},
	}
	if got := f.Root.StaticTimeRanges(); !slices.Equal(got, want) {
		t.Errorf("StaticTimeRanges = %v, want %v", got, want)
	}
}

func TestDecodeText(t *testing.T) {
	f := mustDecode(t, "text.yaml")
	if f.Root.ID != 7 {
		t.Fatalf("root = %d, want the last composition", f.Root.ID)
	}
	text := f.Root.Layers[0].Content.(*scene.TextContent)
	if got := text.Document.ValueAt(10).Text; got != "a b" {
		t.Errorf("text at 10 = %q", got)
	}
	if got := text.Document.ValueAt(40).Text; got != "two words" {
		t.Errorf("text at 40 = %q", got)
	}
	if _, ok := text.Animators[1].Selectors[0].(*textanim.WigglySelector); !ok {
		t.Errorf("second animator selector = %T", text.Animators[1].Selectors[0])
	}

	factors, _ := text.Factors(0, f.Root.FrameRate)
	if want := []float32{1, 0, 1}; !slices.Equal(factors[0], want) {
		t.Errorf("factors = %v, want %v", factors[0], want)
	}
	if f.Root.HasVaryingFrames() != true {
		t.Error("wiggling text reported static")
	}
}

func TestDecodeZstd(t *testing.T) {
	raw, err := os.ReadFile("testdata/layers.yaml")
	if err != nil {
		t.Fatal(err)
	}
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		t.Fatal(err)
	}
	compressed := enc.EncodeAll(raw, nil)
	enc.Close()

	f, err := Decode(strings.NewReader(string(compressed)))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(f.Root.Layers) != 3 {
		t.Errorf("layers = %d, want 3", len(f.Root.Layers))
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{
			name: "unknown field",
			in:   "compositions: [{id: 1, duration: 10, frameRate: 30, colour: red}]",
			want: anim.ErrMalformedFile,
		},
		{
			name: "unknown color",
			in:   "compositions: [{id: 1, duration: 10, frameRate: 30, background: octarine}]",
			want: anim.ErrMalformedFile,
		},
		{
			name: "missing root",
			in:   "root: 9\ncompositions: [{id: 1, duration: 10, frameRate: 30}]",
			want: anim.ErrMalformedFile,
		},
		{
			name: "empty solid",
			in:   "compositions: [{id: 1, duration: 10, frameRate: 30, layers: [{id: 1, solid: {color: red}}]}]",
			want: anim.ErrMalformedFile,
		},
		{
			name: "bad keyframe",
			in:   "compositions: [{id: 1, duration: 10, frameRate: 30, layers: [{id: 1, transform: {opacity: {keyframes: [{time: [0, 5], value: [1]}]}}}]}]",
			want: anim.ErrMalformedFile,
		},
		{
			name: "unknown stretch",
			in:   "timeStretch: bounce\ncompositions: [{id: 1, duration: 10, frameRate: 30}]",
			want: anim.ErrMalformedFile,
		},
		{
			name: "external file",
			in:   "compositions: [{id: 1, duration: 10, frameRate: 30, layers: [{id: 1, precompose: {file: other.yaml}}]}]",
			want: ErrNoResolver,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeBytes([]byte(tt.in))
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecodeVerifyErrorPath(t *testing.T) {
	_, err := DecodeBytes([]byte("compositions: [{id: 1, duration: 10, frameRate: 30, layers: [{id: 1, parent: 4}]}]"))
	var verr *anim.VerifyError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *anim.VerifyError", err)
	}
	if !strings.Contains(verr.Path, "parent") {
		t.Errorf("path = %q", verr.Path)
	}
}

func testFS(t *testing.T) fstest.MapFS {
	t.Helper()
	fsys := fstest.MapFS{}
	for _, name := range []string{"outer.yaml", "inner.yaml", "cycle.yaml", "repeat.yaml"} {
		data, err := os.ReadFile("testdata/" + name)
		if err != nil {
			t.Fatal(err)
		}
		fsys["scenes/"+name] = &fstest.MapFile{Data: data}
	}
	fsys["copies/repeat.yaml"] = fsys["scenes/repeat.yaml"]
	return fsys
}

func TestLoaderNestedFiles(t *testing.T) {
	l := NewLoader(WithFS(testFS(t)))
	f, err := l.Load("scenes/outer.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	first := f.Root.Layers[0].Content.(*scene.PreComposeContent)
	second := f.Root.Layers[1].Content.(*scene.PreComposeContent)
	if first.File == nil || first.File != second.File {
		t.Fatal("inner file not shared between layers")
	}

	clips, err := audio.NewGenerator().Generate(f)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	defer audio.ReleaseClips(clips)
	want := []anim.TimeRange{
		{Start: -1_000_000, End: 1_000_000},
		{Start: 2_000_000, End: 4_000_000},
	}
	var got []anim.TimeRange
	for _, c := range clips {
		got = append(got, c.TargetRange)
	}
	if !slices.Equal(got, want) {
		t.Errorf("targets = %v, want %v", got, want)
	}
}

func TestLoaderCycle(t *testing.T) {
	_, err := NewLoader(WithFS(testFS(t))).Load("scenes/cycle.yaml")
	if !errors.Is(err, anim.ErrMalformedFile) {
		t.Errorf("err = %v, want ErrMalformedFile", err)
	}
}

// slowFS delays every open so concurrent loads overlap.
type slowFS struct {
	fs.FS
	delay time.Duration
}

func (s slowFS) Open(name string) (fs.File, error) {
	time.Sleep(s.delay)
	return s.FS.Open(name)
}

func TestLoaderConcurrentMutualReferences(t *testing.T) {
	cycle, err := os.ReadFile("testdata/cycle.yaml")
	if err != nil {
		t.Fatal(err)
	}
	fsys := fstest.MapFS{
		"scenes/a.yaml": {Data: []byte(strings.ReplaceAll(string(cycle), "cycle.yaml", "b.yaml"))},
		"scenes/b.yaml": {Data: []byte(strings.ReplaceAll(string(cycle), "cycle.yaml", "a.yaml"))},
	}
	l := NewLoader(WithFS(slowFS{FS: fsys, delay: 20 * time.Millisecond}))

	names := []string{"scenes/a.yaml", "scenes/b.yaml"}
	errs := make(chan error, len(names))
	for _, name := range names {
		go func() {
			_, err := l.Load(name)
			errs <- err
		}()
	}
	timeout := time.After(5 * time.Second)
	for range names {
		select {
		case err := <-errs:
			if !errors.Is(err, anim.ErrMalformedFile) {
				t.Errorf("err = %v, want ErrMalformedFile", err)
			}
		case <-timeout:
			t.Fatal("loads of mutually referencing files did not return")
		}
	}
	if l.Stats().Len != 0 {
		t.Errorf("cache holds %d files after failed loads", l.Stats().Len)
	}
}

func TestLoaderSharesContent(t *testing.T) {
	shared := cache.New[Digest, *scene.File](cache.WithPolicy[Digest, *scene.File](cache.NewLRU[Digest](4)))
	fsys := testFS(t)
	a := NewLoader(WithFS(fsys), WithCache(shared))
	b := NewLoader(WithFS(fsys), WithCache(shared))

	f1, err := a.Load("scenes/repeat.yaml")
	if err != nil {
		t.Fatal(err)
	}
	f2, err := b.Load("copies/repeat.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if f1 != f2 {
		t.Error("identical content decoded twice")
	}
	if st := a.Stats(); st.Len != 1 || st.Hits != 1 {
		t.Errorf("stats = %+v", st)
	}

	if _, err := a.Load("scenes/missing.yaml"); err == nil {
		t.Error("missing file loaded")
	}
}

func TestLoaderConcurrent(t *testing.T) {
	l := NewLoader(WithFS(testFS(t)))
	const n = 8
	files := make([]*scene.File, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f, err := l.Load("scenes/outer.yaml")
			if err != nil {
				t.Error(err)
				return
			}
			files[i] = f
		}()
	}
	wg.Wait()
	for i := 1; i < n; i++ {
		if files[i] != files[0] {
			t.Fatalf("load %d returned a different graph", i)
		}
	}
}
