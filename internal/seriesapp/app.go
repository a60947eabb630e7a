package seriesapp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"practicals-core/series"

	"practicals/internal/appcore"
	"practicals/internal/output"
	"practicals/internal/prompt"
	"practicals/internal/seriescli"
)

const Name = "taylor-e"

func RunContext(parent context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := seriescli.NewFlagSet(Name)
	fs.SetOutput(io.Discard)
	opts, err := seriescli.ParseArgs(fs, argv)
	if err != nil {
		return appcore.ParseFailed(fs, outw, stderr, err, output.MsgNotANumber)
	}
	if opts.Version {
		return appcore.PrintVersion(outw, stderr, Name)
	}

	order, err := appcore.Value(opts.Common, stdin, outw, output.PromptSeries)
	if err != nil {
		if errors.Is(err, prompt.ErrNotANumber) {
			_ = outw.Flush()
			_, _ = fmt.Fprintln(stderr, output.MsgNotANumber)
			return appcore.ExitInput
		}
		return appcore.Finish(parent, outw, stderr, err)
	}

	approx, err := series.Approximate(order)
	if err != nil {
		return approxFailed(parent, outw, stderr, order, err)
	}

	err = appcore.Emit(outw, opts.Output, output.ToAPISeries(approx), output.WriteSeriesText)
	return appcore.Finish(parent, outw, stderr, err)
}

// approxFailed reports an out-of-range order as bad input; any other
// error is printed as-is.
func approxFailed(ctx context.Context, outw *bufio.Writer, stderr io.Writer, order int, err error) int {
	if errors.Is(err, series.ErrInvalidOrder) {
		_ = outw.Flush()
		_, _ = fmt.Fprintf(stderr, "error: invalid polynomial order %d: %v\n", order, series.ErrInvalidOrder)
		return appcore.ExitInput
	}
	return appcore.Finish(ctx, outw, stderr, err)
}

func Run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdin, stdout, stderr)
}
