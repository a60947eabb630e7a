package series

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

// MaxOrder keeps every term 1/k! a normal, non-zero float64 (171! overflows).
const MaxOrder = 170

// ErrInvalidOrder is returned for an order outside [1, MaxOrder].
var ErrInvalidOrder = errors.New("order must be between 1 and 170")

// Approximation is one evaluated expansion of e^1.
type Approximation struct {
	Order      int
	Terms      []float64 // Terms[i] = 1/(i+1)!
	Estimate   float64
	Reference  float64
	Difference float64 // Estimate - Reference
}

// Term returns 1/k! for k >= 0.
func Term(k int) (float64, error) {
	if k <= MaxExactFactorial {
		f, err := Factorial(k)
		if err != nil {
			return 0, err
		}
		return 1.0 / float64(f), nil
	}
	f, err := BigFactorial(k)
	if err != nil {
		return 0, err
	}
	q := new(big.Float).Quo(big.NewFloat(1), new(big.Float).SetInt(f))
	v, _ := q.Float64()
	return v, nil
}

// Terms returns the first order terms of the expansion, excluding the leading 1.
func Terms(order int) ([]float64, error) {
	if order < 1 || order > MaxOrder {
		return nil, fmt.Errorf("order %d: %w", order, ErrInvalidOrder)
	}
	terms := make([]float64, order)
	for i := range terms {
		v, err := Term(i + 1)
		if err != nil {
			return nil, err
		}
		terms[i] = v
	}
	return terms, nil
}

// Estimate sums the leading 1 and terms.
func Estimate(terms []float64) float64 {
	e := 1.0
	for _, t := range terms {
		e += t
	}
	return e
}

// Approximate evaluates the expansion to the given order.
func Approximate(order int) (Approximation, error) {
	terms, err := Terms(order)
	if err != nil {
		return Approximation{}, err
	}
	est := Estimate(terms)
	return Approximation{
		Order:      order,
		Terms:      terms,
		Estimate:   est,
		Reference:  math.E,
		Difference: est - math.E,
	}, nil
}
