package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gogpu/anim"
	"github.com/gogpu/anim/scene"
	"github.com/gogpu/anim/textanim"
)

var (
	factorsLayer uint32
	factorsFrame int64
)

var factorsCmd = &cobra.Command{
	Use:   "factors <file>",
	Short: "Print the text selector factor of every character",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return forEachFile(cmd.Context(), cmd.OutOrStdout(), args, func(w io.Writer, name string, f *scene.File) error {
			return printFactors(w, f, factorsLayer, factorsFrame)
		})
	},
}

func init() {
	factorsCmd.Flags().Uint32Var(&factorsLayer, "layer", 1, "text layer ID in the root composition")
	factorsCmd.Flags().Int64Var(&factorsFrame, "frame", 0, "frame to evaluate")
}

func printFactors(w io.Writer, f *scene.File, layerID uint32, frame anim.Frame) error {
	l := f.Root.LayerByID(layerID)
	if l == nil {
		return fmt.Errorf("no layer %d in composition %d", layerID, f.Root.ID)
	}
	text, ok := l.Content.(*scene.TextContent)
	if !ok {
		return fmt.Errorf("layer %d is a %s layer", layerID, l.Type())
	}
	chars := textanim.Characters(text.Document.ValueAt(frame).Text)
	factors, approx := text.Factors(frame, f.Root.FrameRate)
	for i, row := range factors {
		fmt.Fprintf(w, "animator %d:", i)
		for j, c := range chars[:min(len(chars), len(row))] {
			fmt.Fprintf(w, " %q=%.3f", c.Text, row[j])
		}
		fmt.Fprintln(w)
	}
	if approx {
		fmt.Fprintln(w, "(expression selectors skipped)")
	}
	return nil
}
