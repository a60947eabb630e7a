// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"practicals/pkg/api"
)

// SequenceText streams Fibonacci terms as "t, " with a line break after
// every TermsPerLine-th term.
type SequenceText struct {
	w       io.Writer
	count   int
	newline bool
}

// NewSequenceText writes the header line and returns a term writer.
func NewSequenceText(w io.Writer) (*SequenceText, error) {
	if _, err := fmt.Fprintln(w, SequenceHeader); err != nil {
		return nil, err
	}
	return &SequenceText{w: w, newline: true}, nil
}

// Term writes one decimal term.
func (s *SequenceText) Term(t string) error {
	if _, err := io.WriteString(s.w, t+", "); err != nil {
		return err
	}
	s.count++
	s.newline = false
	if s.count%TermsPerLine == 0 {
		if _, err := io.WriteString(s.w, "\n"); err != nil {
			return err
		}
		s.newline = true
	}
	return nil
}

// Close terminates the last line if it is still open.
func (s *SequenceText) Close() error {
	if s.newline {
		return nil
	}
	s.newline = true
	_, err := io.WriteString(s.w, "\n")
	return err
}

// WriteSequenceText renders a complete SequenceV1.
func WriteSequenceText(w io.Writer, seq api.SequenceV1) error {
	st, err := NewSequenceText(w)
	if err != nil {
		return err
	}
	for _, t := range seq.Terms {
		if err := st.Term(t); err != nil {
			return err
		}
	}
	return st.Close()
}

// WriteSeriesText prints each term to 14 decimals, then the estimate and its error.
func WriteSeriesText(w io.Writer, s api.SeriesV1) error {
	for _, t := range s.Terms {
		if _, err := fmt.Fprintf(w, "e term for order %d is %1.14f.\n", t.Order, t.Value); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "e is estimated as %.10f, with a difference %e\n", s.Estimate, s.Difference)
	return err
}

// WriteArrayText prints one "a[i]: v" line per element.
func WriteArrayText(w io.Writer, a api.ArrayV1) error {
	for _, e := range a.Elements {
		if err := WriteElement(w, e.Index, e.Value); err != nil {
			return err
		}
	}
	return nil
}

// WriteElement prints a single indexed slot.
func WriteElement(w io.Writer, i, v int) error {
	_, err := fmt.Fprintf(w, "a[%d]: %d\n", i, v)
	return err
}
