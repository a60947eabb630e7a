// Package fib steps the Fibonacci recurrence. It is domain-only: no I/O.
package fib

import (
	"errors"
	"fmt"
	"math/big"
)

// Int32Limit is the largest n for which F(0..n) all fit in an int32.
const Int32Limit = 46

// Caps on n for Sequence and SequenceBig, which hold every term in memory.
// Big terms grow by ~0.7 bits per step, so the big cap is much lower.
const (
	MaxReportTerms    = 1 << 20
	MaxBigReportTerms = 1 << 14
)

var (
	// ErrNotPositive is returned for a term count below 1.
	ErrNotPositive = errors.New("the number is not positive")
	ErrTooLarge    = errors.New("too many terms to hold in memory")
)

// Step advances the pair by one position.
// On entry a = F(n-1), b = F(n-2); it returns (F(n), F(n-1)).
// int32 addition wraps on overflow.
func Step(a, b int32) (int32, int32) {
	next := a + b
	return next, a
}

// Overflows reports whether Sequence(n) wraps past int32.
func Overflows(n int) bool { return n > Int32Limit }

// Each calls fn with F(0)..F(n) in order, stopping at the first error.
func Each(n int, fn func(i int, term int32) error) error {
	if n < 1 {
		return fmt.Errorf("n=%d: %w", n, ErrNotPositive)
	}
	a, b := int32(1), int32(0)
	if err := fn(0, b); err != nil {
		return err
	}
	if err := fn(1, a); err != nil {
		return err
	}
	for i := 2; i <= n; i++ {
		a, b = Step(a, b)
		if err := fn(i, a); err != nil {
			return err
		}
		if i == n { // i++ would wrap when n == math.MaxInt
			break
		}
	}
	return nil
}

// EachBig is Each on arbitrary-precision integers. fn must not retain
// or modify term beyond the call unless it copies it.
func EachBig(n int, fn func(i int, term *big.Int) error) error {
	if n < 1 {
		return fmt.Errorf("n=%d: %w", n, ErrNotPositive)
	}
	a, b := big.NewInt(1), big.NewInt(0)
	if err := fn(0, b); err != nil {
		return err
	}
	if err := fn(1, a); err != nil {
		return err
	}
	for i := 2; i <= n; i++ {
		b.Add(a, b)
		a, b = b, a
		if err := fn(i, a); err != nil {
			return err
		}
		if i == n {
			break
		}
	}
	return nil
}

// Sequence returns F(0)..F(n), i.e. n+1 terms.
func Sequence(n int) ([]int32, error) {
	if n > MaxReportTerms {
		return nil, fmt.Errorf("n=%d (max %d): %w", n, MaxReportTerms, ErrTooLarge)
	}
	var out []int32
	if n >= 1 {
		out = make([]int32, 0, n+1)
	}
	err := Each(n, func(_ int, t int32) error {
		out = append(out, t)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SequenceBig is Sequence on arbitrary-precision integers.
func SequenceBig(n int) ([]*big.Int, error) {
	if n > MaxBigReportTerms {
		return nil, fmt.Errorf("n=%d (max %d): %w", n, MaxBigReportTerms, ErrTooLarge)
	}
	var out []*big.Int
	err := EachBig(n, func(_ int, t *big.Int) error {
		out = append(out, new(big.Int).Set(t))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
