// Package intbuf hands out integer buffers whose lifetime is bound to a scope.
//
// Buffers are only reachable inside Arena.With; the arena releases them on
// every exit path and keeps an allocation ledger so callers can verify that
// nothing is still live afterwards.
package intbuf

import (
	"errors"
	"fmt"
)

// MaxSize caps a single buffer at 1<<24 ints (128 MiB on 64-bit).
const MaxSize = 1 << 24

var (
	ErrNegativeSize = errors.New("negative size")
	ErrTooLarge     = errors.New("size exceeds 16777216")
	ErrReleased     = errors.New("buffer used after release")
	ErrIndex        = errors.New("index out of range")
)

// Arena counts allocations and releases. The zero value is ready to use.
type Arena struct {
	allocs   int
	releases int
}

func (a *Arena) Allocs() int   { return a.allocs }
func (a *Arena) Releases() int { return a.releases }
func (a *Arena) Live() int     { return a.allocs - a.releases }

// With allocates a buffer of n ints, runs fn, and releases the buffer before
// returning, including when fn errors or panics.
func (a *Arena) With(n int, fn func(*Buffer) error) error {
	if n < 0 {
		return fmt.Errorf("size %d: %w", n, ErrNegativeSize)
	}
	if n > MaxSize {
		return fmt.Errorf("size %d: %w", n, ErrTooLarge)
	}
	b := &Buffer{data: make([]int, n), arena: a}
	a.allocs++
	defer b.release()
	return fn(b)
}

// Buffer is a contiguous run of ints owned by an Arena scope.
type Buffer struct {
	data  []int
	arena *Arena
}

func (b *Buffer) release() {
	if b.arena == nil {
		return
	}
	b.data = nil
	b.arena.releases++
	b.arena = nil
}

// Released reports whether the owning scope has ended.
func (b *Buffer) Released() bool { return b.arena == nil }

// Len is the number of slots; 0 after release.
func (b *Buffer) Len() int { return len(b.data) }

// Fill sets every slot to v.
func (b *Buffer) Fill(v int) error {
	if b.Released() {
		return ErrReleased
	}
	for i := range b.data {
		b.data[i] = v
	}
	return nil
}

// At returns slot i.
func (b *Buffer) At(i int) (int, error) {
	if b.Released() {
		return 0, ErrReleased
	}
	if i < 0 || i >= len(b.data) {
		return 0, fmt.Errorf("a[%d] of %d: %w", i, len(b.data), ErrIndex)
	}
	return b.data[i], nil
}

// Each calls fn for every slot in index order, stopping at the first error.
func (b *Buffer) Each(fn func(i, v int) error) error {
	if b.Released() {
		return ErrReleased
	}
	for i, v := range b.data {
		if err := fn(i, v); err != nil {
			return err
		}
	}
	return nil
}
