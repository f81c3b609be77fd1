package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned by JumpTo for an index outside the result
	// set. It signals a caller contract violation, not a recoverable state.
	ErrOutOfRange = errors.New("index out of range")
	// ErrEmptyResultSet is returned by Current when the result set has no
	// entries. Callers must check Len before navigating.
	ErrEmptyResultSet = errors.New("result set is empty")
)

// Browser provides stable index-based navigation over one immutable
// ResultSet. It never recomputes or re-sorts; its only state is the cursor.
type Browser struct {
	results ResultSet
	cursor  int
}

// NewBrowser builds a Browser positioned at the first result.
func NewBrowser(results ResultSet) *Browser {
	return &Browser{results: results}
}

// Replace swaps in the result set of a new enumeration run and resets the
// cursor to 0. The previous set is discarded.
func (b *Browser) Replace(results ResultSet) {
	b.results = results
	b.cursor = 0
}

// Results exposes the held result set.
func (b *Browser) Results() ResultSet { return b.results }

func (b *Browser) Len() int    { return b.results.Len() }
func (b *Browser) Cursor() int { return b.cursor }

// First moves the cursor to index 0.
func (b *Browser) First() { b.cursor = 0 }

// Last moves the cursor to the final index; a no-op on an empty set.
func (b *Browser) Last() {
	if n := b.results.Len(); n > 0 {
		b.cursor = n - 1
	}
}

// Next advances the cursor, clamped at the last index.
func (b *Browser) Next() {
	if b.cursor < b.results.Len()-1 {
		b.cursor++
	}
}

// Previous moves the cursor back, clamped at index 0.
func (b *Browser) Previous() {
	if b.cursor > 0 {
		b.cursor--
	}
}

// JumpTo moves the cursor to index i, failing with ErrOutOfRange when i is
// not in [0, Len).
func (b *Browser) JumpTo(i int) error {
	if i < 0 || i >= b.results.Len() {
		return fmt.Errorf("%w: %d of %d", ErrOutOfRange, i, b.results.Len())
	}
	b.cursor = i
	return nil
}

// Current returns the result under the cursor, failing with
// ErrEmptyResultSet when there is none.
func (b *Browser) Current() (ScoredResult, error) {
	if b.results.Empty() {
		return ScoredResult{}, ErrEmptyResultSet
	}
	return b.results.Results[b.cursor], nil
}
