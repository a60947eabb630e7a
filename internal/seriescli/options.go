package seriescli

import (
	"flag"
	"fmt"
	"io"

	"practicals/internal/clibase"
)

type Options struct {
	clibase.Common
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "Taylor-series estimate of e", func(out io.Writer, _ func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options]        prompt for the polynomial order on stdin\n", name)
		_, _ = fmt.Fprintf(out, "  %s [options] K      sum 1 + 1/1! + ... + 1/K!\n", name)
		_, _ = fmt.Fprintln(out, "\n  K must be between 1 and 170.")
	})
	return fs
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	clibase.Register(fs, &o.Common)
	err := clibase.Parse(fs, &o.Common, argv)
	return o, err
}
