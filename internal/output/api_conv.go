// internal/output/api_conv.go
package output

import (
	"fmt"
	"math/big"
	"strconv"

	"practicals-core/series"

	"practicals/pkg/api"
)

// ToAPISequence converts int32 terms into the public wire type.
func ToAPISequence(n int, terms []int32) api.SequenceV1 {
	out := api.SequenceV1{N: n, Width: WidthInt32, Terms: make([]string, len(terms))}
	for i, t := range terms {
		out.Terms[i] = strconv.FormatInt(int64(t), 10)
	}
	return out
}

// ToAPISequenceBig converts arbitrary-precision terms into the public wire type.
func ToAPISequenceBig(n int, terms []*big.Int) api.SequenceV1 {
	out := api.SequenceV1{N: n, Width: WidthBig, Terms: make([]string, len(terms))}
	for i, t := range terms {
		out.Terms[i] = t.String()
	}
	return out
}

// ToAPISeries converts an Approximation into the public wire type.
func ToAPISeries(a series.Approximation) api.SeriesV1 {
	out := api.SeriesV1{
		Order:      a.Order,
		Terms:      make([]api.TermV1, len(a.Terms)),
		Estimate:   a.Estimate,
		Reference:  a.Reference,
		Difference: a.Difference,
	}
	for i, v := range a.Terms {
		out.Terms[i] = api.TermV1{Order: i + 1, Value: v}
	}
	return out
}

// Slots is the read side of an integer buffer.
type Slots interface {
	Len() int
	Each(func(i, v int) error) error
}

// ToAPIArray copies a buffer's contents into the public wire type.
// It must be called while the buffer is still live.
func ToAPIArray(b Slots) (api.ArrayV1, error) {
	out := api.ArrayV1{Size: b.Len(), Elements: make([]api.ElementV1, 0, b.Len())}
	err := b.Each(func(i, v int) error {
		out.Elements = append(out.Elements, api.ElementV1{Index: i, Value: v})
		return nil
	})
	if err != nil {
		return api.ArrayV1{}, fmt.Errorf("snapshot array: %w", err)
	}
	return out, nil
}
