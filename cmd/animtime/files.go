package main

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/anim"
	"github.com/gogpu/anim/scene"
)

// expandArgs replaces glob patterns with the files they match. Patterns
// that match nothing are kept so that loading reports them.
func expandArgs(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			matches = []string{arg}
		}
		files = append(files, matches...)
	}
	return files, nil
}

// report writes what one file has to say.
type report func(w io.Writer, name string, f *scene.File) error

// forEachFile loads the files matched by args with at most jobs in
// flight and writes their reports to w in argument order.
func forEachFile(ctx context.Context, w io.Writer, args []string, fn report) error {
	files, err := expandArgs(args)
	if err != nil {
		return err
	}
	outputs := make([]bytes.Buffer, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(jobs, 1))
	for i, name := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := loader.Load(name)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			return fn(&outputs[i], name, f)
		})
	}
	err = g.Wait()
	for i := range outputs {
		if _, werr := outputs[i].WriteTo(w); werr != nil {
			return werr
		}
	}
	anim.Logger().Debug("files processed", "count", len(files), "cache", loader.Stats())
	return err
}

func formatRanges(ranges []anim.TimeRange) string {
	var b bytes.Buffer
	for i, r := range ranges {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "[%d-%d]", r.Start, r.End)
	}
	if len(ranges) == 0 {
		b.WriteString("(none)")
	}
	return b.String()
}
