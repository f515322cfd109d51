// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"conserv/internal/align"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	AlignmentFile string
	Reference     string

	// Classification
	ConservationThreshold float64
	MutationThreshold     float64

	// Realignment
	Aligner string
	Timeout time.Duration

	// Output
	Output     string
	Chart      bool
	ChartWidth int
	Header     bool // true unless --no-header
	Quiet      bool

	ConfigFile string
	Version    bool

	// Explicit records which flags were set on the command line, so file
	// defaults never override them.
	Explicit map[string]bool
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(flag.CommandLine, nil) }

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.AlignmentFile, "alignment", "", "FASTA alignment file ('-' = stdin) [*]")
	fs.StringVar(&opt.Reference, "reference", "", "reference sequence ID, matched verbatim [consensus]")

	fs.Float64Var(&opt.ConservationThreshold, "conservation-threshold", 0.8, "conservation threshold in [0,1] [0.8]")
	fs.Float64Var(&opt.MutationThreshold, "mutation-threshold", 0.2, "mutation threshold in [0,1] [0.2]")

	fs.StringVar(&opt.Aligner, "aligner", align.Mafft, "realignment tool: mafft | clustalo ["+align.Mafft+"]")
	fs.DurationVar(&opt.Timeout, "timeout", 5*time.Minute, "realignment timeout [5m]")

	fs.StringVar(&opt.Output, "output", "text", "output format: text | json | tsv [text]")
	fs.BoolVar(&opt.Chart, "chart", false, "render a per-position rate bar chart (text output) [false]")
	fs.IntVar(&opt.ChartWidth, "chart-width", 0, "chart width in cells (0 = auto) [0]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header lines in text/TSV [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")

	fs.StringVar(&opt.ConfigFile, "config", "", "TOML file with default settings")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader
	opt.Explicit = map[string]bool{}
	fs.Visit(func(f *flag.Flag) { opt.Explicit[f.Name] = true })

	return opt, opt.Validate()
}

// Validate enforces the configuration contract before any computation runs.
// Called again after file defaults are merged in.
func (o *Options) Validate() error {
	if o.AlignmentFile == "" {
		return errors.New("--alignment is required")
	}
	if o.ConservationThreshold < 0 || o.ConservationThreshold > 1 {
		return errors.New("--conservation-threshold must be within [0,1]")
	}
	if o.MutationThreshold < 0 || o.MutationThreshold > 1 {
		return errors.New("--mutation-threshold must be within [0,1]")
	}
	if o.Aligner != align.Mafft && o.Aligner != align.ClustalOmega {
		return fmt.Errorf("invalid --aligner %q (want %s or %s)", o.Aligner, align.Mafft, align.ClustalOmega)
	}
	if o.Timeout <= 0 {
		return errors.New("--timeout must be positive")
	}
	if o.Output != "text" && o.Output != "json" && o.Output != "tsv" {
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	if o.ChartWidth < 0 {
		return errors.New("--chart-width must be ≥ 0")
	}
	return nil
}
