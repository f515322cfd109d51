// core/fasta/open.go
package fasta

import (
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// openReader opens path for reading, transparently decompressing gzip input
// (detected by magic number or a .gz suffix). "-" means stdin.
func openReader(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := io.ReadFull(fh, sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, err
	}
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &gzipFile{gr: gr, fh: fh}, nil
	}
	return fh, nil
}

// gzipFile closes both the decompressor and the underlying file.
type gzipFile struct {
	gr *gzip.Reader
	fh *os.File
}

func (g *gzipFile) Read(p []byte) (int, error) { return g.gr.Read(p) }

func (g *gzipFile) Close() error {
	gerr := g.gr.Close()
	if ferr := g.fh.Close(); ferr != nil {
		return ferr
	}
	return gerr
}
