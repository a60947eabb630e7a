// Package series approximates Euler's number with the Taylor expansion of e^1.
package series

import (
	"errors"
	"fmt"
	"math/big"
)

// MaxExactFactorial is the largest n whose factorial fits in a uint64.
const MaxExactFactorial = 20

var (
	ErrNegative = errors.New("negative number passed to factorial")
	ErrOverflow = errors.New("factorial overflows uint64")
)

// Factorial computes n! by simple recursion.
func Factorial(n int) (uint64, error) {
	switch {
	case n < 0:
		return 0, fmt.Errorf("factorial(%d): %w", n, ErrNegative)
	case n > MaxExactFactorial:
		return 0, fmt.Errorf("factorial(%d): %w", n, ErrOverflow)
	case n == 0:
		return 1, nil
	}
	prev, err := Factorial(n - 1)
	if err != nil {
		return 0, err
	}
	return uint64(n) * prev, nil
}

// BigFactorial is Factorial without an upper bound.
func BigFactorial(n int) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("factorial(%d): %w", n, ErrNegative)
	}
	if n == 0 {
		return big.NewInt(1), nil
	}
	prev, err := BigFactorial(n - 1)
	if err != nil {
		return nil, err
	}
	return prev.Mul(prev, big.NewInt(int64(n))), nil
}
