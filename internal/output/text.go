// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"conserv-core/analysis"
)

func init() { Register("text", WriteText) }

// WriteText renders both classification tables and the summary block.
func WriteText(w io.Writer, res analysis.Result, opt Options) error {
	if err := writeTable(w, "conserved positions", res.Conserved, opt.Header); err != nil {
		return err
	}
	if err := writeTable(w, "highly mutated positions", res.Mutated, opt.Header); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w,
		"overall conservation rate: %.4f\nconserved positions: %d (p-value: %.4f)\nhighly mutated positions: %d (p-value: %.4f)\n",
		res.OverallRate,
		len(res.Conserved), res.PValueConserved,
		len(res.Mutated), res.PValueMutated,
	)
	return err
}

func writeTable(w io.Writer, title string, rows []analysis.ClassifiedPosition, header bool) error {
	if _, err := fmt.Fprintf(w, "# %s\n", title); err != nil {
		return err
	}
	if header {
		if _, err := fmt.Fprintln(w, "position\tresidue\trate"); err != nil {
			return err
		}
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%d\t%s\t%.4f\n", r.Position, r.Residue, r.Rate); err != nil {
			return err
		}
	}
	return nil
}
