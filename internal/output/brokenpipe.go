package output

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether err means stdout's reader went away, e.g.
// `fibonacci --big 100000 | head -3`. Apps treat that as a clean exit.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
