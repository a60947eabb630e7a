package fibcli

import (
	"flag"
	"fmt"
	"io"

	"practicals/internal/clibase"
)

type Options struct {
	clibase.Common

	// Big computes terms with math/big instead of wrapping int32.
	Big bool
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "Fibonacci sequence stepper", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options]        prompt for n on stdin\n", name)
		_, _ = fmt.Fprintf(out, "  %s [options] N      print F(0)..F(N)\n", name)

		_, _ = fmt.Fprintln(out, "\nSequence:")
		_, _ = fmt.Fprintf(out, "      --big                   Arbitrary-precision terms (default wraps past F(46)) [%s]\n", def("big"))
	})
	return fs
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	clibase.Register(fs, &o.Common)
	fs.BoolVar(&o.Big, "big", false, "arbitrary-precision terms [false]")
	if err := clibase.Parse(fs, &o.Common, argv); err != nil {
		return o, err
	}
	return o, nil
}
