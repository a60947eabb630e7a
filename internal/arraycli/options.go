package arraycli

import (
	"flag"
	"fmt"
	"io"

	"practicals/internal/clibase"
)

type Options struct {
	clibase.Common

	// Fill is the value written to every slot.
	Fill int
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "dynamic array demo", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options]        prompt for the size on stdin\n", name)
		_, _ = fmt.Fprintf(out, "  %s [options] N      allocate, fill and print N slots\n", name)

		_, _ = fmt.Fprintln(out, "\nArray:")
		_, _ = fmt.Fprintf(out, "      --fill int              Value written to every slot [%s]\n", def("fill"))
	})
	return fs
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	clibase.Register(fs, &o.Common)
	fs.IntVar(&o.Fill, "fill", 1, "value written to every slot [1]")
	err := clibase.Parse(fs, &o.Common, argv)
	return o, err
}
