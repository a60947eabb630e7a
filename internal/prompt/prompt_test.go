package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestIntWritesQuestionAndScans(t *testing.T) {
	var out bytes.Buffer
	n, err := Int(strings.NewReader("  42\n"), &out, "Size of the array: ")
	if err != nil || n != 42 {
		t.Fatalf("got %d, %v", n, err)
	}
	if out.String() != "Size of the array: " {
		t.Fatalf("prompt = %q", out.String())
	}
}

func TestIntNegative(t *testing.T) {
	n, err := Int(strings.NewReader("-7"), &bytes.Buffer{}, "")
	if err != nil || n != -7 {
		t.Fatalf("got %d, %v", n, err)
	}
}

func TestIntRejectsNonNumeric(t *testing.T) {
	for _, in := range []string{"abc\n", "", "\n\n"} {
		if _, err := Int(strings.NewReader(in), &bytes.Buffer{}, "q: "); !errors.Is(err, ErrNotANumber) {
			t.Fatalf("input %q: want ErrNotANumber, got %v", in, err)
		}
	}
}

func TestParseInt(t *testing.T) {
	if n, err := ParseInt(" 12 "); err != nil || n != 12 {
		t.Fatalf("got %d, %v", n, err)
	}
	if _, err := ParseInt("1e3"); !errors.Is(err, ErrNotANumber) {
		t.Fatalf("want ErrNotANumber, got %v", err)
	}
}
