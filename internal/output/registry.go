// internal/output/registry.go
package output

import (
	"fmt"
	"io"
	"sort"

	"conserv-core/analysis"
)

// Options adjust rendering across formats.
type Options struct {
	Header bool
}

// Writers maps an output format to its handler. Formats register themselves
// in init() blocks of their writer files.
var Writers = map[string]func(w io.Writer, res analysis.Result, opt Options) error{}

// Register installs a writer for format (last registration wins).
func Register(format string, fn func(io.Writer, analysis.Result, Options) error) {
	Writers[format] = fn
}

// Write dispatches res to the writer registered for format.
func Write(format string, w io.Writer, res analysis.Result, opt Options) error {
	fn, ok := Writers[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, res, opt)
}

// Formats lists the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(Writers))
	for f := range Writers {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
