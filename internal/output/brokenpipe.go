// internal/output/brokenpipe.go
package output

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether err means the downstream consumer closed the
// stream early (piping into `head`, say). The app treats that as success.
func IsBrokenPipe(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe)
}
