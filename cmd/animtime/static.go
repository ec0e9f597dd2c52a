package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gogpu/anim/scene"
)

var staticCmd = &cobra.Command{
	Use:   "static <file|glob>...",
	Short: "Print the static frame ranges of every composition",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return forEachFile(cmd.Context(), cmd.OutOrStdout(), args, printStatic)
	},
}

func printStatic(w io.Writer, name string, f *scene.File) error {
	fmt.Fprintf(w, "%s: root %d, %s stretch to %d frames\n",
		name, f.Root.ID, f.TimeStretchMode, f.StretchedDuration())
	for _, c := range f.Compositions {
		marker := ""
		if c == f.Root {
			marker = " (root)"
		}
		fmt.Fprintf(w, "  composition %d%s %s %d frames @ %g fps: %s\n",
			c.ID, marker, c.Kind, c.Duration, c.FrameRate, formatRanges(c.StaticTimeRanges()))
	}
	return nil
}
