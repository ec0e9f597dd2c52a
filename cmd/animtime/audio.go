package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gogpu/anim"
	"github.com/gogpu/anim/audio"
	"github.com/gogpu/anim/scene"
)

var declaredOnly bool

var audioCmd = &cobra.Command{
	Use:   "audio <file|glob>...",
	Short: "Print the audio clips of each file on its root timeline",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts []audio.Option
		if declaredOnly {
			opts = append(opts, audio.WithDecoder(audio.StaticDecoder{}))
		}
		gen := audio.NewGenerator(opts...)
		return forEachFile(cmd.Context(), cmd.OutOrStdout(), args, func(w io.Writer, name string, f *scene.File) error {
			return printClips(w, name, gen, f)
		})
	},
}

func init() {
	audioCmd.Flags().BoolVar(&declaredOnly, "declared", false, "trust declared durations instead of parsing WAV headers")
}

func printClips(w io.Writer, name string, gen *audio.Generator, f *scene.File) error {
	clips, err := gen.Generate(f)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	defer audio.ReleaseClips(clips)
	fmt.Fprintf(w, "%s: %d clips\n", name, len(clips))
	for _, c := range clips {
		fmt.Fprintf(w, "  source %s -> target %s", seconds(c.SourceRange), seconds(c.TargetRange))
		for _, v := range c.VolumeRanges {
			fmt.Fprintf(w, " volume %s %g..%g", seconds(v.Range), v.StartVolume, v.EndVolume)
		}
		fmt.Fprintln(w)
	}
	return nil
}

func seconds(r anim.TimeRange) string {
	const us = float64(anim.MicrosecondsPerSecond)
	return fmt.Sprintf("[%.3fs, %.3fs)", float64(r.Start)/us, float64(r.End)/us)
}
