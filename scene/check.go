package scene

import (
	"fmt"
	"slices"

	"github.com/gogpu/anim"
)

// Check verifies the whole file and returns an *anim.VerifyError naming
// the first malformed node, or nil. Besides Verify on every node it
// checks that layer references resolve and that pre-compose layers do
// not nest a composition inside itself.
func (f *File) Check() error {
	if f == nil || f.Root == nil {
		return &anim.VerifyError{Path: "root"}
	}
	if !slices.Contains(f.Compositions, f.Root) {
		return &anim.VerifyError{Path: "root: not among compositions"}
	}
	for i, c := range f.Compositions {
		if path := checkComposition(c); path != "" {
			return &anim.VerifyError{Path: fmt.Sprintf("compositions[%d]%s", i, path)}
		}
	}
	if f.ScaledTimeRange != nil && !f.ScaledTimeRange.IsValid() {
		return &anim.VerifyError{Path: "scaledTimeRange"}
	}
	for i, c := range f.Compositions {
		if cyclic(c, nil) {
			return &anim.VerifyError{Path: fmt.Sprintf("compositions[%d]: nests itself", i)}
		}
	}
	return nil
}

func checkComposition(c *Composition) string {
	if c == nil {
		return ": missing"
	}
	if c.Duration <= 0 || c.FrameRate <= 0 {
		return ".duration"
	}
	if c.Audio != nil && len(c.Audio.Data) == 0 {
		return ".audio"
	}
	if c.Kind != CompositionVector {
		return ""
	}
	for i, l := range c.Layers {
		if path := checkLayer(c, l); path != "" {
			return fmt.Sprintf(".layers[%d]%s", i, path)
		}
	}
	return ""
}

func checkLayer(c *Composition, l *Layer) string {
	switch {
	case l == nil:
		return ": missing"
	case l.Duration <= 0:
		return ".duration"
	case !l.Transform.Verify():
		return ".transform"
	case l.ParentID != 0 && c.LayerByID(l.ParentID) == nil:
		return ".parent"
	case l.TrackMatteID != 0 && c.LayerByID(l.TrackMatteID) == nil:
		return ".trackMatte"
	}
	for i, m := range l.Masks {
		if !m.Verify() {
			return fmt.Sprintf(".masks[%d]", i)
		}
	}
	for i, e := range l.Effects {
		if e == nil || !e.Verify() {
			return fmt.Sprintf(".effects[%d](%s)", i, TypeOfEffect(e))
		}
	}
	for i, s := range l.Styles {
		if s == nil || !s.Verify() {
			return fmt.Sprintf(".styles[%d](%s)", i, StyleName(s))
		}
	}
	if l.Content == nil || !l.Content.Verify() {
		return fmt.Sprintf(".content(%s)", l.Type())
	}
	return ""
}

// cyclic reports whether c reaches a composition on stack through
// pre-compose layers.
func cyclic(c *Composition, stack []*Composition) bool {
	if c == nil {
		return false
	}
	if slices.Contains(stack, c) {
		return true
	}
	stack = append(stack, c)
	for _, l := range c.Layers {
		if pc, ok := l.Content.(*PreComposeContent); ok && cyclic(pc.Target(), stack) {
			return true
		}
	}
	return false
}
