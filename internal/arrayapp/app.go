package arrayapp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"practicals-core/intbuf"

	"practicals/internal/appcore"
	"practicals/internal/arraycli"
	"practicals/internal/clibase"
	"practicals/internal/output"
	"practicals/internal/prompt"
)

const Name = "arraydemo"

func RunContext(parent context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := arraycli.NewFlagSet(Name)
	fs.SetOutput(io.Discard)
	opts, err := arraycli.ParseArgs(fs, argv)
	if err != nil {
		return appcore.ParseFailed(fs, outw, stderr, err, output.MsgNotANumber)
	}
	if opts.Version {
		return appcore.PrintVersion(outw, stderr, Name)
	}

	n, err := appcore.Value(opts.Common, stdin, outw, output.PromptArray)
	if err != nil {
		if errors.Is(err, prompt.ErrNotANumber) {
			_ = outw.Flush()
			_, _ = fmt.Fprintln(stderr, output.MsgNotANumber)
			return appcore.ExitInput
		}
		return appcore.Finish(parent, outw, stderr, err)
	}

	var arena intbuf.Arena
	err = arena.With(n, func(b *intbuf.Buffer) error {
		if err := b.Fill(opts.Fill); err != nil {
			return err
		}
		if opts.Output == clibase.FormatText {
			return b.Each(func(i, v int) error {
				if err := parent.Err(); err != nil {
					return err
				}
				return output.WriteElement(outw, i, v)
			})
		}
		rep, err := output.ToAPIArray(b)
		if err != nil {
			return err
		}
		return appcore.Emit(outw, opts.Output, rep, output.WriteArrayText)
	})
	for _, bad := range []error{intbuf.ErrNegativeSize, intbuf.ErrTooLarge} {
		if errors.Is(err, bad) {
			_ = outw.Flush()
			_, _ = fmt.Fprintf(stderr, "error: invalid array size %d: %v\n", n, bad)
			return appcore.ExitInput
		}
	}
	if err == nil && arena.Live() != 0 {
		err = fmt.Errorf("%d buffer(s) still allocated after release", arena.Live())
	}
	return appcore.Finish(parent, outw, stderr, err)
}

func Run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdin, stdout, stderr)
}
