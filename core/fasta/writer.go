// core/fasta/writer.go
package fasta

import (
	"bufio"
	"fmt"
	"io"
)

const wrapWidth = 60

// Write emits records in FASTA format, wrapping sequence lines at 60
// columns. Used to hand records to an external aligner without keeping a
// fixed on-disk copy around.
func Write(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)
	for _, r := range records {
		if _, err := fmt.Fprintf(bw, ">%s\n", r.ID); err != nil {
			return err
		}
		for off := 0; off < len(r.Seq); off += wrapWidth {
			end := off + wrapWidth
			if end > len(r.Seq) {
				end = len(r.Seq)
			}
			if _, err := bw.Write(r.Seq[off:end]); err != nil {
				return err
			}
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
