package scenefile

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/anim"
	"github.com/gogpu/anim/property"
	"github.com/gogpu/anim/scene"
	"github.com/gogpu/anim/textanim"
)

// ErrNoResolver is returned for pre-compose layers naming another file
// when the decoder cannot open files.
var ErrNoResolver = errors.New("scenefile: external file reference without a loader")

var (
	matteTypes = map[string]scene.TrackMatteType{
		"none":          scene.MatteNone,
		"alpha":         scene.MatteAlpha,
		"alphainverted": scene.MatteAlphaInverted,
		"luma":          scene.MatteLuma,
		"lumainverted":  scene.MatteLumaInverted,
	}
	maskModes = map[string]scene.MaskMode{
		"none":       scene.MaskNone,
		"add":        scene.MaskAdd,
		"subtract":   scene.MaskSubtract,
		"intersect":  scene.MaskIntersect,
		"difference": scene.MaskDifference,
	}
	rangeUnits = map[string]textanim.RangeUnits{
		"percentage": textanim.UnitsPercentage,
		"index":      textanim.UnitsIndex,
	}
	basedOn = map[string]textanim.BasedOn{
		"characters":                textanim.BasedOnCharacters,
		"charactersexcludingspaces": textanim.BasedOnCharactersExcludingSpaces,
	}
)

func malformed(path string, err error) error {
	return fmt.Errorf("scenefile: %s: %w: %w", path, anim.ErrMalformedFile, err)
}

// errs keeps the first error of a run of property decodes.
type errs struct{ err error }

func get[T any](e *errs, n *yaml.Node, parse parser[T], interp property.Interpolator[T]) property.Property[T] {
	if e.err != nil {
		return nil
	}
	p, err := decodeProperty(n, parse, interp)
	if err != nil {
		e.err = err
	}
	return p
}

func getOr[T any](e *errs, n *yaml.Node, parse parser[T], interp property.Interpolator[T], def T) property.Property[T] {
	if e.err != nil {
		return nil
	}
	p, err := withDefault(n, parse, interp, def)
	if err != nil {
		e.err = err
	}
	return p
}

func floats(e *errs, n *yaml.Node) property.Property[float32] {
	return get(e, n, parseFloat, property.Floats)
}

func floatOr(e *errs, n *yaml.Node, def float32) property.Property[float32] {
	return getOr(e, n, parseFloat, property.Floats, def)
}

func points(e *errs, n *yaml.Node) property.Property[anim.Point] {
	return get(e, n, parsePoint, property.Points)
}

func pointOr(e *errs, n *yaml.Node, def anim.Point) property.Property[anim.Point] {
	return getOr(e, n, parsePoint, property.Points, def)
}

func colors(e *errs, n *yaml.Node) property.Property[anim.Color] {
	return get(e, n, parseColor, property.Colors)
}

func colorOr(e *errs, n *yaml.Node, def anim.Color) property.Property[anim.Color] {
	return getOr(e, n, parseColor, property.Colors, def)
}

type builder struct {
	comps   map[uint32]*scene.Composition
	resolve func(name string) (*scene.File, error)
}

func (b *builder) file(spec *fileSpec) (*scene.File, error) {
	f := &scene.File{Duration: spec.Duration}
	var err error
	if f.TimeStretchMode, err = parseName(spec.TimeStretch, scene.StretchRepeat); err != nil {
		return nil, malformed("timeStretch", err)
	}
	if r := spec.ScaledTimeRange; r != nil {
		f.ScaledTimeRange = &anim.TimeRange{Start: r[0], End: r[1]}
	}

	b.comps = make(map[uint32]*scene.Composition, len(spec.Compositions))
	for i := range spec.Compositions {
		c, err := compositionHeader(&spec.Compositions[i])
		if err != nil {
			return nil, malformed(fmt.Sprintf("compositions[%d]", i), err)
		}
		if _, dup := b.comps[c.ID]; dup {
			return nil, malformed(fmt.Sprintf("compositions[%d]", i), fmt.Errorf("duplicate id %d", c.ID))
		}
		b.comps[c.ID] = c
		f.Compositions = append(f.Compositions, c)
	}
	for i := range spec.Compositions {
		c := f.Compositions[i]
		for j := range spec.Compositions[i].Layers {
			l, err := b.layer(c, &spec.Compositions[i].Layers[j])
			if err != nil {
				return nil, malformed(fmt.Sprintf("compositions[%d].layers[%d]", i, j), err)
			}
			c.Layers = append(c.Layers, l)
		}
	}

	switch {
	case spec.Root != 0:
		f.Root = b.comps[spec.Root]
	case len(f.Compositions) > 0:
		// The last composition is the root by convention.
		f.Root = f.Compositions[len(f.Compositions)-1]
	}
	if f.Root == nil {
		return nil, malformed("root", fmt.Errorf("no composition %d", spec.Root))
	}
	return f, nil
}

func compositionHeader(cs *compositionSpec) (*scene.Composition, error) {
	kind, err := parseName(cs.Kind, scene.CompositionVideo)
	if err != nil {
		return nil, err
	}
	c := &scene.Composition{
		ID:        cs.ID,
		Kind:      kind,
		Width:     cs.Width,
		Height:    cs.Height,
		Duration:  cs.Duration,
		FrameRate: cs.FrameRate,
	}
	if cs.Background.Kind != 0 {
		if c.BackgroundColor, err = parseColor(&cs.Background); err != nil {
			return nil, err
		}
	}
	for _, r := range cs.StaticRanges {
		c.SequenceStaticRanges = append(c.SequenceStaticRanges, anim.TimeRange{Start: r[0], End: r[1]})
	}
	if a := cs.Audio; a != nil {
		c.Audio = &scene.AudioAsset{
			Data:      []byte(a.Data),
			Duration:  int64(a.Duration / time.Microsecond),
			StartTime: a.Start,
		}
		for _, v := range a.Volume {
			c.Audio.VolumeRamps = append(c.Audio.VolumeRamps, scene.AudioVolumeRamp{
				StartTime:   v.Time[0],
				EndTime:     v.Time[1],
				StartVolume: v.Value[0],
				EndVolume:   v.Value[1],
			})
		}
	}
	return c, nil
}

func (b *builder) layer(c *scene.Composition, ls *layerSpec) (*scene.Layer, error) {
	l := &scene.Layer{
		ID:           ls.ID,
		Name:         ls.Name,
		ParentID:     ls.Parent,
		StartTime:    ls.Start,
		Duration:     ls.Duration,
		TrackMatteID: ls.TrackMatte,
	}
	if l.Duration == 0 {
		l.Duration = c.Duration - l.StartTime
	}
	var err error
	if l.BlendMode, err = parseName(ls.Blend, scene.BlendAdd); err != nil {
		return nil, err
	}
	if l.TrackMatteType, err = lookup(matteTypes, ls.MatteType); err != nil {
		return nil, err
	}
	if l.Transform, err = transform(&ls.Transform); err != nil {
		return nil, fmt.Errorf("transform: %w", err)
	}
	for i := range ls.Masks {
		m, err := mask(&ls.Masks[i])
		if err != nil {
			return nil, fmt.Errorf("masks[%d]: %w", i, err)
		}
		l.Masks = append(l.Masks, m)
	}
	for i := range ls.Effects {
		fx, err := effect(&ls.Effects[i])
		if err != nil {
			return nil, fmt.Errorf("effects[%d]: %w", i, err)
		}
		l.Effects = append(l.Effects, fx)
	}
	for i := range ls.Styles {
		s, err := style(&ls.Styles[i])
		if err != nil {
			return nil, fmt.Errorf("styles[%d]: %w", i, err)
		}
		l.Styles = append(l.Styles, s)
	}
	if l.Content, err = b.content(ls); err != nil {
		return nil, fmt.Errorf("content: %w", err)
	}
	return l, nil
}

func transform(ts *transformSpec) (*scene.Transform, error) {
	var e errs
	t := &scene.Transform{
		AnchorPoint: pointOr(&e, &ts.Anchor, anim.Point{}),
		Scale:       pointOr(&e, &ts.Scale, anim.Pt(1, 1)),
		Rotation:    floatOr(&e, &ts.Rotation, 0),
		Opacity:     floatOr(&e, &ts.Opacity, 1),
	}
	if ts.X.Kind != 0 || ts.Y.Kind != 0 {
		t.XPosition = floatOr(&e, &ts.X, 0)
		t.YPosition = floatOr(&e, &ts.Y, 0)
	} else {
		t.Position = pointOr(&e, &ts.Position, anim.Point{})
	}
	return t, e.err
}

func shapeTransform(ts *transformSpec) (*scene.ShapeTransform, error) {
	if ts == nil {
		ts = &transformSpec{}
	}
	var e errs
	t := &scene.ShapeTransform{
		AnchorPoint: pointOr(&e, &ts.Anchor, anim.Point{}),
		Position:    pointOr(&e, &ts.Position, anim.Point{}),
		Scale:       pointOr(&e, &ts.Scale, anim.Pt(1, 1)),
		Skew:        floatOr(&e, &ts.Skew, 0),
		SkewAxis:    floatOr(&e, &ts.SkewAxis, 0),
		Rotation:    floatOr(&e, &ts.Rotation, 0),
		Opacity:     floatOr(&e, &ts.Opacity, 1),
	}
	return t, e.err
}

func mask(ms *maskSpec) (*scene.Mask, error) {
	mode, err := lookup(maskModes, ms.Mode)
	if err != nil {
		return nil, err
	}
	var e errs
	m := &scene.Mask{
		ID:        ms.ID,
		Inverted:  ms.Inverted,
		Mode:      mode,
		Path:      get(&e, &ms.Path, parsePath, property.Paths),
		Opacity:   floatOr(&e, &ms.Opacity, 1),
		Expansion: floatOr(&e, &ms.Expansion, 0),
	}
	return m, e.err
}

func effect(fs *effectSpec) (scene.Effect, error) {
	var e errs
	var fx scene.Effect
	switch strings.ToLower(fs.Type) {
	case "fastblur":
		fx = &scene.FastBlur{
			Blurriness:       floats(&e, &fs.Blurriness),
			Dimensions:       property.NewConstant(scene.BlurBoth),
			RepeatEdgePixels: property.NewConstant(false),
		}
	case "glow":
		fx = &scene.Glow{
			Threshold: floatOr(&e, &fs.Threshold, 0.5),
			Radius:    floats(&e, &fs.Radius),
			Intensity: floatOr(&e, &fs.Intensity, 1),
		}
	case "brightnesscontrast":
		fx = &scene.BrightnessContrast{
			Brightness:    floatOr(&e, &fs.Brightness, 0),
			Contrast:      floatOr(&e, &fs.Contrast, 0),
			UseOldVersion: property.NewConstant(false),
		}
	default:
		return nil, fmt.Errorf("unknown effect %q", fs.Type)
	}
	return fx, e.err
}

func style(ss *styleSpec) (scene.LayerStyle, error) {
	if !strings.EqualFold(ss.Type, "dropShadow") {
		return nil, fmt.Errorf("unknown layer style %q", ss.Type)
	}
	blend, err := parseName(ss.Blend, scene.BlendAdd)
	if err != nil {
		return nil, err
	}
	var e errs
	s := &scene.DropShadow{
		BlendMode: property.NewConstant(blend),
		Color:     colorOr(&e, &ss.Color, anim.Color{}),
		Opacity:   floatOr(&e, &ss.Opacity, 0.75),
		Angle:     floatOr(&e, &ss.Angle, 120),
		Distance:  floatOr(&e, &ss.Distance, 5),
		Size:      floatOr(&e, &ss.Size, 5),
		Spread:    floats(&e, &ss.Spread),
	}
	return s, e.err
}

func (b *builder) content(ls *layerSpec) (scene.Content, error) {
	switch {
	case ls.Solid != nil:
		s := &scene.SolidContent{Width: ls.Solid.Width, Height: ls.Solid.Height}
		if ls.Solid.Color.Kind != 0 {
			var err error
			if s.Color, err = parseColor(&ls.Solid.Color); err != nil {
				return nil, err
			}
		}
		return s, nil
	case ls.Shapes != nil:
		elements, err := shapes(ls.Shapes)
		if err != nil {
			return nil, err
		}
		return &scene.ShapeContent{Elements: elements}, nil
	case ls.Text != nil:
		return text(ls.Text)
	case ls.Image != nil:
		return b.image(ls.Image)
	case ls.PreCompose != nil:
		return b.preCompose(ls.PreCompose)
	default:
		return &scene.NullContent{}, nil
	}
}

func shapes(specs []shapeSpec) ([]scene.ShapeElement, error) {
	out := make([]scene.ShapeElement, 0, len(specs))
	for i := range specs {
		el, err := shape(&specs[i])
		if err != nil {
			return nil, fmt.Errorf("shapes[%d]: %w", i, err)
		}
		out = append(out, el)
	}
	return out, nil
}

func shape(ss *shapeSpec) (scene.ShapeElement, error) {
	var e errs
	var el scene.ShapeElement
	switch strings.ToLower(ss.Type) {
	case "group":
		elements, err := shapes(ss.Elements)
		if err != nil {
			return nil, err
		}
		t, err := shapeTransform(ss.Transform)
		if err != nil {
			return nil, err
		}
		el = &scene.ShapeGroup{Transform: t, Elements: elements}
	case "rectangle":
		el = &scene.Rectangle{
			Position:  pointOr(&e, &ss.Position, anim.Point{}),
			Size:      points(&e, &ss.Size),
			Roundness: floatOr(&e, &ss.Roundness, 0),
		}
	case "ellipse":
		el = &scene.Ellipse{
			Position: pointOr(&e, &ss.Position, anim.Point{}),
			Size:     points(&e, &ss.Size),
		}
	case "path":
		el = &scene.ShapePath{Shape: get(&e, &ss.Path, parsePath, property.Paths)}
	case "fill":
		el = &scene.Fill{
			Color:   colors(&e, &ss.Color),
			Opacity: floatOr(&e, &ss.Opacity, 1),
		}
	case "stroke":
		el = &scene.Stroke{
			MiterLimit: property.NewConstant[float32](4),
			Color:      colors(&e, &ss.Color),
			Opacity:    floatOr(&e, &ss.Opacity, 1),
			Width:      floatOr(&e, &ss.Width, 1),
		}
	case "trim":
		el = &scene.TrimPaths{
			Start:  floatOr(&e, &ss.Start, 0),
			End:    floatOr(&e, &ss.End, 1),
			Offset: floatOr(&e, &ss.Offset, 0),
		}
	case "roundcorners":
		el = &scene.RoundCorners{Radius: floats(&e, &ss.Roundness)}
	case "merge":
		el = &scene.MergePaths{}
	default:
		return nil, fmt.Errorf("unknown shape %q", ss.Type)
	}
	return el, e.err
}

func text(ts *textSpec) (*scene.TextContent, error) {
	doc := func(s string) *scene.TextDocument {
		return &scene.TextDocument{
			Text:       s,
			FontFamily: ts.Font,
			FontSize:   ts.Size,
			ApplyFill:  true,
		}
	}
	c := &scene.TextContent{}
	if len(ts.Changes) == 0 {
		c.Document = property.NewConstant(doc(ts.Text))
	} else {
		var kfs []*property.Keyframe[*scene.TextDocument]
		prev, from := doc(ts.Text), anim.ZeroFrame
		for _, ch := range ts.Changes {
			next := doc(ch.Text)
			kfs = append(kfs, &property.Keyframe[*scene.TextDocument]{
				StartValue:    prev,
				EndValue:      next,
				StartTime:     from,
				EndTime:       ch.Time,
				Interpolation: property.InterpolationHold,
			})
			prev, from = next, ch.Time
		}
		c.Document = property.NewAnimatable(kfs, property.Discrete[*scene.TextDocument]())
	}
	for i := range ts.Animators {
		a, err := animator(&ts.Animators[i])
		if err != nil {
			return nil, fmt.Errorf("animators[%d]: %w", i, err)
		}
		c.Animators = append(c.Animators, a)
	}
	return c, nil
}

func animator(as *animatorSpec) (*textanim.Animator, error) {
	var e errs
	a := &textanim.Animator{
		FillColor:      colors(&e, &as.FillColor),
		StrokeColor:    colors(&e, &as.StrokeColor),
		TrackingAmount: floats(&e, &as.Tracking),
		Position:       points(&e, &as.Position),
		Scale:          points(&e, &as.Scale),
		Rotation:       floats(&e, &as.Rotation),
		Opacity:        floats(&e, &as.Opacity),
	}
	if e.err != nil {
		return nil, e.err
	}
	for i := range as.Selectors {
		s, err := selector(&as.Selectors[i])
		if err != nil {
			return nil, fmt.Errorf("selectors[%d]: %w", i, err)
		}
		a.Selectors = append(a.Selectors, s)
	}
	return a, nil
}

func selector(ss *selectorSpec) (textanim.Selector, error) {
	based, err := lookup(basedOn, ss.BasedOn)
	if err != nil {
		return nil, err
	}
	var e errs
	mode := getOr(&e, &ss.Mode, nameParser(textanim.ModeDifference), property.Discrete[textanim.SelectorMode](), textanim.ModeAdd)
	seed := getOr(&e, &ss.Seed, parseSeed, property.Discrete[uint16](), 0)

	var s textanim.Selector
	switch strings.ToLower(ss.Type) {
	case "", "range":
		units, err := lookup(rangeUnits, ss.Units)
		if err != nil {
			return nil, err
		}
		rangeShape, err := parseName(ss.Shape, textanim.ShapeSmooth)
		if err != nil {
			return nil, err
		}
		s = &textanim.RangeSelector{
			Start:          floatOr(&e, &ss.Start, 0),
			End:            floatOr(&e, &ss.End, 1),
			Offset:         floatOr(&e, &ss.Offset, 0),
			Units:          units,
			BasedOn:        based,
			Mode:           mode,
			Amount:         floatOr(&e, &ss.Amount, 1),
			Shape:          rangeShape,
			EaseHigh:       floatOr(&e, &ss.EaseHigh, 0),
			EaseLow:        floatOr(&e, &ss.EaseLow, 0),
			RandomizeOrder: ss.Randomize,
			RandomSeed:     seed,
		}
	case "wiggly":
		s = &textanim.WigglySelector{
			BasedOn:          based,
			Mode:             mode,
			MaxAmount:        floatOr(&e, &ss.Max, 1),
			MinAmount:        floatOr(&e, &ss.Min, -1),
			WigglesPerSecond: floatOr(&e, &ss.Wiggles, 2),
			Correlation:      floatOr(&e, &ss.Correlate, 0.5),
			TemporalPhase:    floatOr(&e, &ss.Temporal, 0),
			SpatialPhase:     floatOr(&e, &ss.Spatial, 0),
			LockDimensions:   property.NewConstant(false),
			RandomSeed:       seed,
		}
	case "expression":
		var m textanim.SelectorMode
		if mode != nil {
			m = mode.ValueAt(anim.ZeroFrame)
		}
		s = &textanim.ExpressionSelector{BasedOn: based, Mode: m, Expression: ss.Expression}
	default:
		return nil, fmt.Errorf("unknown selector %q", ss.Type)
	}
	return s, e.err
}

func (b *builder) image(is *imageSpec) (*scene.ImageContent, error) {
	c := &scene.ImageContent{ImageID: is.ID, Width: is.Width, Height: is.Height}
	if is.Movie != 0 {
		if c.Movie = b.comps[is.Movie]; c.Movie == nil {
			return nil, fmt.Errorf("no movie composition %d", is.Movie)
		}
	}
	if is.TimeRemap.Kind != 0 {
		var e errs
		c.FillRule = &scene.ImageFillRule{TimeRemap: get(&e, &is.TimeRemap, parseFrame, property.Frames)}
		if e.err != nil {
			return nil, e.err
		}
	}
	return c, nil
}

func (b *builder) preCompose(ps *preComposeSpec) (*scene.PreComposeContent, error) {
	c := &scene.PreComposeContent{CompositionStartTime: ps.Start}
	if ps.File != "" {
		if b.resolve == nil {
			return nil, ErrNoResolver
		}
		f, err := b.resolve(ps.File)
		if err != nil {
			return nil, err
		}
		c.File = f
		return c, nil
	}
	if c.Composition = b.comps[ps.Composition]; c.Composition == nil {
		return nil, fmt.Errorf("no composition %d", ps.Composition)
	}
	return c, nil
}
