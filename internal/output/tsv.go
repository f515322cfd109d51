// internal/output/tsv.go
package output

import (
	"fmt"
	"io"

	"conserv-core/analysis"
)

func init() { Register("tsv", WriteTSV) }

// WriteTSV emits one flat row per classified position, machine-friendly.
func WriteTSV(w io.Writer, res analysis.Result, opt Options) error {
	if opt.Header {
		if _, err := fmt.Fprintln(w, "class\tposition\tresidue\trate"); err != nil {
			return err
		}
	}
	for _, r := range res.Conserved {
		if _, err := fmt.Fprintf(w, "conserved\t%d\t%s\t%.4f\n", r.Position, r.Residue, r.Rate); err != nil {
			return err
		}
	}
	for _, r := range res.Mutated {
		if _, err := fmt.Fprintf(w, "mutated\t%d\t%s\t%.4f\n", r.Position, r.Residue, r.Rate); err != nil {
			return err
		}
	}
	return nil
}
