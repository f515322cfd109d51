// internal/align/align.go
package align

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"conserv-core/alignment"
	"conserv-core/fasta"
)

// Supported external alignment tools.
const (
	Mafft        = "mafft"
	ClustalOmega = "clustalo"
)

// ToolError wraps a failure of the external aligner, keeping the tool name
// for the user-facing message. The tool is assumed idempotent but expensive;
// callers must not retry.
type ToolError struct {
	Tool string
	Err  error
}

func (e *ToolError) Error() string {
	if errors.Is(e.Err, exec.ErrNotFound) {
		return fmt.Sprintf("aligner %s: not found on PATH", e.Tool)
	}
	return fmt.Sprintf("aligner %s: %v", e.Tool, e.Err)
}

func (e *ToolError) Unwrap() error { return e.Err }

// Realign writes records to a scoped temp file, runs the chosen tool with
// ctx bounding its runtime, and parses its stdout back into an aligned set.
// The temp file is removed on every exit path.
func Realign(ctx context.Context, records []fasta.Record, tool string) (alignment.Set, error) {
	var argvTail []string
	switch tool {
	case Mafft:
		argvTail = []string{"--quiet"}
	case ClustalOmega:
		argvTail = []string{"--outfmt=fasta", "--force", "-i"}
	default:
		return nil, fmt.Errorf("unknown aligner %q", tool)
	}

	tmp, err := os.CreateTemp("", "conserv-*.fasta")
	if err != nil {
		return nil, fmt.Errorf("aligner input: %w", err)
	}
	defer os.Remove(tmp.Name())

	werr := fasta.Write(tmp, records)
	if cerr := tmp.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return nil, fmt.Errorf("aligner input: %w", werr)
	}

	var out, errb bytes.Buffer
	cmd := exec.CommandContext(ctx, tool, append(argvTail, tmp.Name())...)
	cmd.Stdout = &out
	cmd.Stderr = &errb
	if err := cmd.Run(); err != nil {
		if msg := bytes.TrimSpace(errb.Bytes()); len(msg) > 0 {
			err = fmt.Errorf("%w: %s", err, msg)
		}
		return nil, &ToolError{Tool: tool, Err: err}
	}

	recs, err := fasta.Parse(&out)
	if err != nil {
		return nil, &ToolError{Tool: tool, Err: err}
	}
	return alignment.Set(recs), nil
}
