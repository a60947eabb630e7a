// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"practicals/internal/arrayapp"
	"practicals/internal/fibapp"
	"practicals/internal/output"
	"practicals/internal/seriesapp"
	"practicals/pkg/api"
)

type runFunc func(argv []string, stdin io.Reader, stdout, stderr io.Writer) int

func run(t *testing.T, fn runFunc, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := fn(args, strings.NewReader(stdin), &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestFibonacciPrompted(t *testing.T) {
	code, out, errOut := run(t, fibapp.Run, "5\n")
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errOut)
	}
	want := output.PromptSequence + output.SequenceHeader + "\n0, 1, 1, 2, 3, 5, \n"
	if out != want {
		t.Fatalf("got %q\nwant %q", out, want)
	}
}

func TestFibonacciRejectsNonPositive(t *testing.T) {
	for _, in := range []string{"0", "-4"} {
		code, out, errOut := run(t, fibapp.Run, in)
		if code != 1 {
			t.Fatalf("n=%s: exit %d", in, code)
		}
		if out != output.PromptSequence {
			t.Fatalf("n=%s: sequence output leaked: %q", in, out)
		}
		if strings.TrimSpace(errOut) != output.MsgNotPositive {
			t.Fatalf("n=%s: stderr %q", in, errOut)
		}
	}
}

func TestFibonacciNotANumber(t *testing.T) {
	code, _, errOut := run(t, fibapp.Run, "five")
	if code != 1 || strings.TrimSpace(errOut) != output.MsgNotANumber {
		t.Fatalf("exit %d, stderr %q", code, errOut)
	}
}

func TestFibonacciPositionalSkipsPrompt(t *testing.T) {
	_, prompted, _ := run(t, fibapp.Run, "12")
	code, direct, _ := run(t, fibapp.Run, "", "12")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if output.PromptSequence+direct != prompted {
		t.Fatalf("positional body differs:\n%q\n%q", direct, prompted)
	}
}

func TestFibonacciOverflowWarningAndBig(t *testing.T) {
	code, _, errOut := run(t, fibapp.Run, "", "50")
	if code != 0 || !strings.HasPrefix(errOut, "WARN: n=50") {
		t.Fatalf("exit %d, stderr %q", code, errOut)
	}
	code, _, errOut = run(t, fibapp.Run, "", "-q", "50")
	if code != 0 || errOut != "" {
		t.Fatalf("quiet: exit %d, stderr %q", code, errOut)
	}
	code, out, errOut := run(t, fibapp.Run, "", "--big", "100")
	if code != 0 || errOut != "" {
		t.Fatalf("big: exit %d, stderr %q", code, errOut)
	}
	if !strings.Contains(out, "354224848179261915075, \n") {
		t.Fatalf("F(100) missing: %q", out)
	}
}

func TestFibonacciJSON(t *testing.T) {
	code, out, errOut := run(t, fibapp.Run, "", "-o", "json", "10")
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errOut)
	}
	var seq api.SequenceV1
	if err := json.Unmarshal([]byte(out), &seq); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if seq.N != 10 || len(seq.Terms) != 11 || seq.Terms[10] != "55" || seq.Width != output.WidthInt32 {
		t.Fatalf("bad report: %+v", seq)
	}
}

func TestSeriesOrderOne(t *testing.T) {
	code, out, errOut := run(t, seriesapp.Run, "1\n")
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errOut)
	}
	want := output.PromptSeries +
		"e term for order 1 is 1.00000000000000.\n" +
		"e is estimated as 2.0000000000, with a difference -7.182818e-01\n"
	if out != want {
		t.Fatalf("got %q\nwant %q", out, want)
	}
}

func TestSeriesInvalidInput(t *testing.T) {
	code, out, errOut := run(t, seriesapp.Run, "x")
	if code != 1 || strings.TrimSpace(errOut) != output.MsgNotANumber || out != output.PromptSeries {
		t.Fatalf("nan: exit %d out %q err %q", code, out, errOut)
	}
	for _, in := range []string{"0", "-2", "171"} {
		code, out, errOut := run(t, seriesapp.Run, in)
		if code != 1 || !strings.HasPrefix(errOut, "error: invalid polynomial order") {
			t.Fatalf("order %s: exit %d err %q", in, code, errOut)
		}
		if out != output.PromptSeries {
			t.Fatalf("order %s: unexpected output %q", in, out)
		}
	}
}

func TestSeriesYAML(t *testing.T) {
	code, out, errOut := run(t, seriesapp.Run, "", "--output", "yaml", "10")
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errOut)
	}
	var s api.SeriesV1
	if err := yaml.Unmarshal([]byte(out), &s); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if s.Order != 10 || len(s.Terms) != 10 || s.Difference >= 0 || s.Difference < -1e-6 {
		t.Fatalf("bad report: %+v", s)
	}
}

func TestArrayThree(t *testing.T) {
	code, out, errOut := run(t, arrayapp.Run, "3\n")
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errOut)
	}
	if want := output.PromptArray + "a[0]: 1\na[1]: 1\na[2]: 1\n"; out != want {
		t.Fatalf("got %q\nwant %q", out, want)
	}
}

func TestArrayZeroAndNegative(t *testing.T) {
	code, out, _ := run(t, arrayapp.Run, "0")
	if code != 0 || out != output.PromptArray {
		t.Fatalf("zero: exit %d out %q", code, out)
	}
	code, out, errOut := run(t, arrayapp.Run, "-1")
	if code != 1 || out != output.PromptArray || !strings.Contains(errOut, "negative size") {
		t.Fatalf("negative: exit %d out %q err %q", code, out, errOut)
	}
}

func TestArrayTooLarge(t *testing.T) {
	code, out, errOut := run(t, arrayapp.Run, "1125899906842624\n")
	if code != 1 || out != output.PromptArray {
		t.Fatalf("exit %d out %q", code, out)
	}
	if !strings.HasPrefix(errOut, "error: invalid array size 1125899906842624:") {
		t.Fatalf("stderr %q", errOut)
	}
}

func TestFibonacciReportTooLarge(t *testing.T) {
	for _, args := range [][]string{
		{"-q", "-o", "json", "9223372036854775807"},
		{"-o", "yaml", "--big", "100000"},
	} {
		code, out, errOut := run(t, fibapp.Run, "", args...)
		if code != 1 || out != "" {
			t.Fatalf("%v: exit %d out %q", args, code, out)
		}
		if !strings.Contains(errOut, "too large for --output") {
			t.Fatalf("%v: stderr %q", args, errOut)
		}
	}
}

func TestArrayJSON(t *testing.T) {
	code, out, errOut := run(t, arrayapp.Run, "", "4", "--output", "json")
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errOut)
	}
	var a api.ArrayV1
	if err := json.Unmarshal([]byte(out), &a); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if a.Size != 4 || len(a.Elements) != 4 || a.Elements[3].Index != 3 || a.Elements[3].Value != 1 {
		t.Fatalf("bad report: %+v", a)
	}
}

func TestIdempotentOutput(t *testing.T) {
	apps := map[string]runFunc{"fib": fibapp.Run, "series": seriesapp.Run, "array": arrayapp.Run}
	for name, fn := range apps {
		_, first, _ := run(t, fn, "15\n")
		_, second, _ := run(t, fn, "15\n")
		if first != second {
			t.Fatalf("%s: output differs between identical runs", name)
		}
	}
}

func TestVersionAndHelp(t *testing.T) {
	apps := map[string]runFunc{"fibonacci": fibapp.Run, "taylor-e": seriesapp.Run, "arraydemo": arrayapp.Run}
	for name, fn := range apps {
		code, out, _ := run(t, fn, "", "--version")
		if code != 0 || !strings.HasPrefix(out, name+" version ") {
			t.Fatalf("%s --version: exit %d out %q", name, code, out)
		}
		code, out, _ = run(t, fn, "", "-h")
		if code != 0 || !strings.Contains(out, "Usage:") {
			t.Fatalf("%s -h: exit %d out %q", name, code, out)
		}
		code, _, _ = run(t, fn, "", "--bogus")
		if code != 2 {
			t.Fatalf("%s --bogus: exit %d", name, code)
		}
	}
}
