// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"practicals/internal/cliutil"
	"practicals/internal/prompt"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Common holds CLI fields shared by every practical.
type Common struct {
	// Input: set when the value was given on the command line instead of the prompt.
	Value    int
	HasValue bool

	// Output
	Output string // text|json|yaml

	// Misc
	Quiet   bool
	Version bool
	Help    bool
}

// Register wires shared flags onto fs.
func Register(fs *flag.FlagSet, c *Common) {
	fs.StringVar(&c.Output, "output", FormatText, "output: text | json | yaml [text]")
	fs.StringVar(&c.Output, "o", FormatText, "alias of --output")

	fs.BoolVar(&c.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&c.Help, "h", false, "show this help [false]")
	fs.BoolVar(&c.Help, "help", false, "show this help [false]")
}

// Parse splits argv, parses flags, and finalizes the optional positional value.
func Parse(fs *flag.FlagSet, c *Common, argv []string) error {
	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return err
	}
	if c.Help {
		return flag.ErrHelp
	}
	posArgs = append(posArgs, fs.Args()...)
	return AfterParse(c, posArgs)
}

// AfterParse reads the positional value (if any), then runs shared validation.
func AfterParse(c *Common, posArgs []string) error {
	switch len(posArgs) {
	case 0:
	case 1:
		n, err := prompt.ParseInt(posArgs[0])
		if err != nil {
			return err
		}
		c.Value, c.HasValue = n, true
	default:
		return fmt.Errorf("expected at most one value, got %d", len(posArgs))
	}
	return Validate(c)
}

// Validate applies shared CLI invariants used by all tools.
func Validate(c *Common) error {
	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
	switch c.Output {
	case FormatText, FormatJSON, FormatYAML:
	case "":
		return errors.New("--output must not be empty")
	default:
		return fmt.Errorf("invalid --output %q", c.Output)
	}
	return nil
}
