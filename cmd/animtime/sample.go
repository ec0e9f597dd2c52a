package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/anim"
	"github.com/gogpu/anim/scene"
)

var (
	sampleLayer    uint32
	sampleProperty string
	sampleFrames   string
)

var sampleCmd = &cobra.Command{
	Use:   "sample <file>",
	Short: "Print a layer transform property frame by frame",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, to, err := parseFrames(sampleFrames)
		if err != nil {
			return err
		}
		return forEachFile(cmd.Context(), cmd.OutOrStdout(), args, func(w io.Writer, name string, f *scene.File) error {
			return printSamples(w, f, sampleLayer, sampleProperty, from, to)
		})
	},
}

func init() {
	sampleCmd.Flags().Uint32Var(&sampleLayer, "layer", 1, "layer ID in the root composition")
	sampleCmd.Flags().StringVar(&sampleProperty, "property", "opacity", "opacity, position, scale, rotation or anchor")
	sampleCmd.Flags().StringVar(&sampleFrames, "frames", "0:10", "inclusive frame range a:b")
}

// parseFrames reads "a:b" or a single frame.
func parseFrames(s string) (anim.Frame, anim.Frame, error) {
	a, b, found := strings.Cut(s, ":")
	from, err := strconv.ParseInt(a, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad --frames %q: %w", s, err)
	}
	if !found {
		return from, from, nil
	}
	to, err := strconv.ParseInt(b, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad --frames %q: %w", s, err)
	}
	if to < from {
		return 0, 0, fmt.Errorf("bad --frames %q: end before start", s)
	}
	return from, to, nil
}

func printSamples(w io.Writer, f *scene.File, layerID uint32, prop string, from, to anim.Frame) error {
	l := f.Root.LayerByID(layerID)
	if l == nil {
		return fmt.Errorf("no layer %d in composition %d", layerID, f.Root.ID)
	}
	sample, err := sampler(l.Transform, prop)
	if err != nil {
		return err
	}
	for frame := from; frame <= to; frame++ {
		static := ""
		if f.Root.IsStaticAt(frame) {
			static = "\tstatic"
		}
		fmt.Fprintf(w, "%d\t%s%s\n", frame, sample(frame), static)
	}
	return nil
}

func sampler(t *scene.Transform, prop string) (func(anim.Frame) string, error) {
	point := func(p anim.Point) string { return fmt.Sprintf("%g,%g", p.X, p.Y) }
	switch strings.ToLower(prop) {
	case "opacity":
		return func(fr anim.Frame) string { return fmt.Sprintf("%g", t.Opacity.ValueAt(fr)) }, nil
	case "rotation":
		return func(fr anim.Frame) string { return fmt.Sprintf("%g", t.Rotation.ValueAt(fr)) }, nil
	case "scale":
		return func(fr anim.Frame) string { return point(t.Scale.ValueAt(fr)) }, nil
	case "anchor":
		return func(fr anim.Frame) string { return point(t.AnchorPoint.ValueAt(fr)) }, nil
	case "position":
		if t.Position == nil {
			return func(fr anim.Frame) string {
				return point(anim.Pt(t.XPosition.ValueAt(fr), t.YPosition.ValueAt(fr)))
			}, nil
		}
		return func(fr anim.Frame) string { return point(t.Position.ValueAt(fr)) }, nil
	default:
		return nil, fmt.Errorf("unknown property %q", prop)
	}
}
