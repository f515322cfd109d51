// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"conserv-core/alignment"
	"conserv-core/analysis"
	"conserv-core/fasta"
	"conserv/internal/align"
	"conserv/internal/chart"
	"conserv/internal/cli"
	"conserv/internal/config"
	"conserv/internal/output"
	"conserv/internal/version"
)

// RunContext executes the whole pipeline: flags → config file → records →
// (realign) → analyze → write. Exit codes: 0 ok, 2 usage/validation,
// 3 runtime failure.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("conserv")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		return flush(outw, stderr, 0)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flush(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flush(outw, stderr, 2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "conserv version %s\n", version.Version)
		return flush(outw, stderr, 0)
	}

	if opts.ConfigFile != "" {
		cfg, err := config.Load(opts.ConfigFile)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
		applyDefaults(&opts, cfg)
		if err := opts.Validate(); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
	}

	records, err := fasta.ReadPath(opts.AlignmentFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}

	set := alignment.Set(records)
	if !set.IsAligned() {
		warnf(stderr, opts.Quiet, "input records are not column-aligned; realigning with %s", opts.Aligner)
		ctx, cancel := context.WithTimeout(parent, opts.Timeout)
		set, err = align.Realign(ctx, records, opts.Aligner)
		cancel()
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
	}

	res := analysis.Run(set, analysis.Config{
		ConservationThreshold: opts.ConservationThreshold,
		MutationThreshold:     opts.MutationThreshold,
		ReferenceID:           opts.Reference,
	})

	err = output.Write(opts.Output, outw, res, output.Options{Header: opts.Header})
	if err == nil && opts.Chart && opts.Output == "text" {
		_, err = fmt.Fprint(outw, chart.Render(res.PositionRates,
			opts.ConservationThreshold, opts.MutationThreshold, opts.ChartWidth))
	}
	if output.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return flush(outw, stderr, 0)
}

// Run executes RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// applyDefaults fills in file-backed settings for every flag the user did
// not pass explicitly.
func applyDefaults(o *cli.Options, s config.Settings) {
	if t := s.Thresholds.Conservation; t != nil && !o.Explicit["conservation-threshold"] {
		o.ConservationThreshold = *t
	}
	if t := s.Thresholds.Mutation; t != nil && !o.Explicit["mutation-threshold"] {
		o.MutationThreshold = *t
	}
	if s.Aligner.Tool != "" && !o.Explicit["aligner"] {
		o.Aligner = s.Aligner.Tool
	}
	if s.Aligner.TimeoutSeconds > 0 && !o.Explicit["timeout"] {
		o.Timeout = time.Duration(s.Aligner.TimeoutSeconds) * time.Second
	}
	if s.Output.Format != "" && !o.Explicit["output"] {
		o.Output = s.Output.Format
	}
	if s.Output.ChartWidth > 0 && !o.Explicit["chart-width"] {
		o.ChartWidth = s.Output.ChartWidth
	}
}

func warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); output.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}
