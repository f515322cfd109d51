// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"conserv-core/analysis"
)

func init() { Register("json", WriteJSON) }

// WriteJSON emits the full analysis result as indented JSON.
func WriteJSON(w io.Writer, res analysis.Result, _ Options) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
