// Command animtime inspects the timing of scene files: static frame
// ranges, property samples, text selector factors and the audio clip
// timeline.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/gogpu/anim"
	"github.com/gogpu/anim/scenefile"
)

var (
	verbose bool
	jobs    int
)

var rootCmd = &cobra.Command{
	Use:   "animtime",
	Short: "Inspect the timing of animation scene files",
	Long: `animtime reads YAML scene files (optionally zstd compressed) and reports
how they behave over time.

Examples:
  animtime static 'scenes/**/*.yaml'
  animtime sample intro.yaml --layer 2 --property opacity --frames 0:30
  animtime audio intro.yaml
  animtime factors title.yaml --layer 1 --frame 12`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		anim.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")
	rootCmd.PersistentFlags().IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "files processed in parallel")

	rootCmd.AddCommand(staticCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(audioCmd)
	rootCmd.AddCommand(factorsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loader is shared by every file of one invocation so nested files are
// decoded once.
var loader = scenefile.NewLoader()
