// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"practicals/internal/clibase"
	"practicals/internal/output"
	"practicals/internal/prompt"
	"practicals/internal/version"
)

// Exit codes shared by every practical.
const (
	ExitOK          = 0
	ExitInput       = 1
	ExitUsage       = 2
	ExitIO          = 3
	ExitInterrupted = 130
)

// Flush flushes outw and maps the result onto an exit code.
// A broken pipe downstream is not an error.
func Flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); output.IsBrokenPipe(err) {
		return code
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitIO
	}
	return code
}

// Usage prints fs usage to outw and returns code after flushing.
func Usage(fs *flag.FlagSet, outw *bufio.Writer, stderr io.Writer, code int) int {
	fs.SetOutput(outw)
	fs.Usage()
	return Flush(outw, stderr, code)
}

// ParseFailed handles a ParseArgs error: help exits 0, a malformed value
// exits ExitInput, anything else prints usage and exits ExitUsage.
func ParseFailed(fs *flag.FlagSet, outw *bufio.Writer, stderr io.Writer, err error, notANumber string) int {
	switch {
	case errors.Is(err, flag.ErrHelp):
		return Usage(fs, outw, stderr, ExitOK)
	case errors.Is(err, prompt.ErrNotANumber):
		_, _ = fmt.Fprintln(stderr, notANumber)
		return Flush(outw, stderr, ExitInput)
	}
	_, _ = fmt.Fprintln(stderr, err)
	return Usage(fs, outw, stderr, ExitUsage)
}

// PrintVersion writes "<name> version <v>".
func PrintVersion(outw *bufio.Writer, stderr io.Writer, name string) int {
	_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
	return Flush(outw, stderr, ExitOK)
}

// Value returns the command-line value, or prompts for it on stdin.
func Value(c clibase.Common, stdin io.Reader, outw *bufio.Writer, question string) (int, error) {
	if c.HasValue {
		return c.Value, nil
	}
	return prompt.Int(stdin, outw, question)
}

// Emit writes report in the chosen format. text renders the console form.
func Emit[T any](w io.Writer, format string, report T, text func(io.Writer, T) error) error {
	switch format {
	case clibase.FormatJSON:
		return output.EncodePretty(w, report)
	case clibase.FormatYAML:
		return output.WriteYAML(w, report)
	case clibase.FormatText, "":
		return text(w, report)
	}
	return fmt.Errorf("unknown output format %q", format)
}

// Finish maps the run result onto an exit code, normalizing cancellation.
func Finish(ctx context.Context, outw *bufio.Writer, stderr io.Writer, err error) int {
	if err != nil {
		if ctx.Err() != nil {
			_ = outw.Flush()
			_, _ = fmt.Fprintln(stderr, "interrupted")
			return ExitInterrupted
		}
		if output.IsBrokenPipe(err) {
			return ExitOK
		}
		_ = outw.Flush()
		_, _ = fmt.Fprintln(stderr, err)
		return ExitIO
	}
	return Flush(outw, stderr, ExitOK)
}
