// internal/cli/flagset.go
package cli

import (
	"flag"
	"fmt"

	"conserv/internal/version"
)

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: alignment conservation analysis

License: MIT
Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}
