// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// Record is a parsed FASTA sequence. The ID is the full header line after
// '>' (trimmed), so reference lookups can match it verbatim.
type Record struct {
	ID  string `json:"id"`
	Seq []byte `json:"seq"`
}

// Parse reads FASTA records from r in input order. A record starts at a '>'
// header line; subsequent non-empty lines are concatenated into its sequence.
func Parse(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 16 * 1024 * 1024 // allow very long single-line sequences
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		recs []Record
		id   string
		open bool
		seq  []byte
	)
	flush := func() {
		if !open {
			return
		}
		recs = append(recs, Record{ID: id, Seq: append([]byte(nil), seq...)})
		seq = seq[:0]
	}
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			flush()
			id = string(bytes.TrimSpace(line[1:]))
			open = true
			continue
		}
		if !open {
			return nil, fmt.Errorf("fasta: sequence data before first header")
		}
		seq = append(seq, line...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fasta scan: %w", err)
	}
	flush()
	return recs, nil
}

// ReadPath parses all records from path. "-" reads stdin; gzip input is
// detected by magic number or a .gz suffix.
func ReadPath(path string) ([]Record, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return Parse(rc)
}
