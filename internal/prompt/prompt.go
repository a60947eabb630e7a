// Package prompt reads a single integer answer from an interactive console.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrNotANumber is returned when the answer does not start with an integer.
var ErrNotANumber = errors.New("not a number")

// Int writes question to w (if non-empty) and scans one integer from r.
// Like scanf("%d"), leading whitespace is skipped and trailing garbage after
// the digits is left unread.
func Int(r io.Reader, w io.Writer, question string) (int, error) {
	if question != "" {
		if _, err := io.WriteString(w, question); err != nil {
			return 0, err
		}
		if f, ok := w.(interface{ Flush() error }); ok {
			if err := f.Flush(); err != nil {
				return 0, err
			}
		}
	}
	var n int
	if _, err := fmt.Fscan(r, &n); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNotANumber, err)
	}
	return n, nil
}

// ParseInt parses a command-line integer with the same rules as Int.
func ParseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	return n, nil
}
