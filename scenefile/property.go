package scenefile

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/anim"
	"github.com/gogpu/anim/property"
)

// parser reads one scalar value of a property.
type parser[T any] func(n *yaml.Node) (T, error)

// decodeProperty reads a constant or keyframed property. An absent node
// yields nil so that optional properties stay unset.
func decodeProperty[T any](n *yaml.Node, parse parser[T], interp property.Interpolator[T]) (property.Property[T], error) {
	if n == nil || n.Kind == 0 {
		return nil, nil
	}
	if n.Kind == yaml.MappingNode && hasKey(n, "keyframes") {
		var animated struct {
			Keyframes []keyframeSpec `yaml:"keyframes"`
		}
		if err := n.Decode(&animated); err != nil {
			return nil, err
		}
		kfs := make([]*property.Keyframe[T], 0, len(animated.Keyframes))
		for i, spec := range animated.Keyframes {
			kf, err := decodeKeyframe(&spec, parse)
			if err != nil {
				return nil, fmt.Errorf("line %d: keyframe %d: %w", n.Line, i, err)
			}
			kfs = append(kfs, kf)
		}
		return property.NewAnimatable(kfs, interp), nil
	}
	v, err := parse(n)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", n.Line, err)
	}
	return property.NewConstant(v), nil
}

// withDefault is decodeProperty with a constant fallback.
func withDefault[T any](n *yaml.Node, parse parser[T], interp property.Interpolator[T], def T) (property.Property[T], error) {
	p, err := decodeProperty(n, parse, interp)
	if p == nil && err == nil {
		p = property.NewConstant(def)
	}
	return p, err
}

func decodeKeyframe[T any](spec *keyframeSpec, parse parser[T]) (*property.Keyframe[T], error) {
	if len(spec.Value) != 2 {
		return nil, fmt.Errorf("want 2 values, got %d", len(spec.Value))
	}
	start, err := parse(&spec.Value[0])
	if err != nil {
		return nil, err
	}
	end, err := parse(&spec.Value[1])
	if err != nil {
		return nil, err
	}
	interp := property.InterpolationLinear
	if spec.Interp != "" {
		if interp, err = parseName(spec.Interp, property.InterpolationHold); err != nil {
			return nil, err
		}
	}
	kf := &property.Keyframe[T]{
		StartValue:    start,
		EndValue:      end,
		StartTime:     spec.Time[0],
		EndTime:       spec.Time[1],
		Interpolation: interp,
	}
	for _, p := range spec.Out {
		kf.BezierOut = append(kf.BezierOut, anim.Pt(p[0], p[1]))
	}
	for _, p := range spec.In {
		kf.BezierIn = append(kf.BezierIn, anim.Pt(p[0], p[1]))
	}
	if interp == property.InterpolationBezier && len(kf.BezierOut) == 0 {
		kf.BezierOut = []anim.Point{anim.Pt(0.42, 0)}
		kf.BezierIn = []anim.Point{anim.Pt(0.58, 1)}
	}
	return kf, nil
}

func hasKey(n *yaml.Node, key string) bool {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return true
		}
	}
	return false
}

func parseFloat(n *yaml.Node) (float32, error) {
	var v float32
	err := n.Decode(&v)
	return v, err
}

func parseFrame(n *yaml.Node) (anim.Frame, error) {
	var v anim.Frame
	err := n.Decode(&v)
	return v, err
}

func parseBool(n *yaml.Node) (bool, error) {
	var v bool
	err := n.Decode(&v)
	return v, err
}

func parseSeed(n *yaml.Node) (uint16, error) {
	var v uint16
	err := n.Decode(&v)
	return v, err
}

func parsePoint(n *yaml.Node) (anim.Point, error) {
	var v [2]float32
	if err := n.Decode(&v); err != nil {
		return anim.Point{}, err
	}
	return anim.Pt(v[0], v[1]), nil
}

func parseColor(n *yaml.Node) (anim.Color, error) {
	var s string
	if err := n.Decode(&s); err != nil {
		return anim.Color{}, err
	}
	return colorByName(s)
}

// colorByName accepts an SVG color name or #rrggbb.
func colorByName(s string) (anim.Color, error) {
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil || len(hex) != 6 {
			return anim.Color{}, fmt.Errorf("bad color %q", s)
		}
		return anim.Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
	}
	c, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return anim.Color{}, fmt.Errorf("unknown color %q", s)
	}
	return anim.Color{R: c.R, G: c.G, B: c.B}, nil
}

func parsePath(n *yaml.Node) (*anim.PathData, error) {
	var spec pathSpec
	if err := n.Decode(&spec); err != nil {
		return nil, err
	}
	p := &anim.PathData{Closed: spec.Closed}
	for _, v := range spec.Vertices {
		p.Vertices = append(p.Vertices, anim.Pt(v[0], v[1]))
	}
	for _, v := range spec.In {
		p.InTangents = append(p.InTangents, anim.Pt(v[0], v[1]))
	}
	for _, v := range spec.Out {
		p.OutTangents = append(p.OutTangents, anim.Pt(v[0], v[1]))
	}
	if len(p.InTangents) == 0 {
		p.InTangents = make([]anim.Point, len(p.Vertices))
	}
	if len(p.OutTangents) == 0 {
		p.OutTangents = make([]anim.Point, len(p.Vertices))
	}
	return p, nil
}

// named is an enumeration with display names, numbered from zero.
type named interface {
	~uint8
	String() string
}

// parseName finds the value of E in [0, last] whose name matches s,
// ignoring case. The empty string is the zero value.
func parseName[E named](s string, last E) (E, error) {
	if s == "" {
		return 0, nil
	}
	for e := E(0); e <= last; e++ {
		if strings.EqualFold(e.String(), s) {
			return e, nil
		}
	}
	return 0, fmt.Errorf("unknown %T %q", last, s)
}

// nameParser adapts parseName to a property parser.
func nameParser[E named](last E) parser[E] {
	return func(n *yaml.Node) (E, error) {
		var s string
		if err := n.Decode(&s); err != nil {
			return 0, err
		}
		return parseName(s, last)
	}
}

// lookup resolves s in a small name table, ignoring case.
func lookup[E any](table map[string]E, s string) (E, error) {
	var zero E
	if s == "" {
		return zero, nil
	}
	v, ok := table[strings.ToLower(s)]
	if !ok {
		return zero, fmt.Errorf("unknown name %q", s)
	}
	return v, nil
}
