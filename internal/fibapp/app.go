package fibapp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strconv"

	"practicals-core/fib"

	"practicals/internal/appcore"
	"practicals/internal/clibase"
	"practicals/internal/cmdutil"
	"practicals/internal/fibcli"
	"practicals/internal/output"
	"practicals/internal/prompt"
	"practicals/pkg/api"
)

const Name = "fibonacci"

func RunContext(parent context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := fibcli.NewFlagSet(Name)
	fs.SetOutput(io.Discard)
	opts, err := fibcli.ParseArgs(fs, argv)
	if err != nil {
		return appcore.ParseFailed(fs, outw, stderr, err, output.MsgNotANumber)
	}
	if opts.Version {
		return appcore.PrintVersion(outw, stderr, Name)
	}

	n, err := appcore.Value(opts.Common, stdin, outw, output.PromptSequence)
	if err != nil {
		if errors.Is(err, prompt.ErrNotANumber) {
			_ = outw.Flush()
			_, _ = fmt.Fprintln(stderr, output.MsgNotANumber)
			return appcore.ExitInput
		}
		return appcore.Finish(parent, outw, stderr, err)
	}
	if n < 1 {
		_ = outw.Flush()
		_, _ = fmt.Fprintln(stderr, output.MsgNotPositive)
		return appcore.ExitInput
	}
	if !opts.Big && fib.Overflows(n) {
		cmdutil.Warnf(stderr, opts.Quiet,
			"n=%d exceeds int32 range; terms beyond F(%d) wrap around (use --big)", n, fib.Int32Limit)
	}

	if opts.Output == clibase.FormatText {
		err = streamText(parent, outw, n, opts.Big)
	} else {
		err = emitReport(outw, n, opts)
		if errors.Is(err, fib.ErrTooLarge) {
			_ = outw.Flush()
			_, _ = fmt.Fprintf(stderr, "error: n=%d is too large for --output %s (use text output)\n", n, opts.Output)
			return appcore.ExitInput
		}
	}
	return appcore.Finish(parent, outw, stderr, err)
}

// streamText prints terms as they are stepped so large n never buffers the sequence.
func streamText(ctx context.Context, w io.Writer, n int, wide bool) error {
	st, err := output.NewSequenceText(w)
	if err != nil {
		return err
	}
	if wide {
		err = fib.EachBig(n, func(_ int, t *big.Int) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return st.Term(t.String())
		})
	} else {
		err = fib.Each(n, func(_ int, t int32) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return st.Term(strconv.FormatInt(int64(t), 10))
		})
	}
	if err != nil {
		return err
	}
	return st.Close()
}

func emitReport(w io.Writer, n int, opts fibcli.Options) error {
	var rep api.SequenceV1
	if opts.Big {
		terms, err := fib.SequenceBig(n)
		if err != nil {
			return err
		}
		rep = output.ToAPISequenceBig(n, terms)
	} else {
		terms, err := fib.Sequence(n)
		if err != nil {
			return err
		}
		rep = output.ToAPISequence(n, terms)
	}
	return appcore.Emit(w, opts.Output, rep, output.WriteSequenceText)
}

func Run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdin, stdout, stderr)
}
