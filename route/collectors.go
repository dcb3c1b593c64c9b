package route

import (
	"fmt"
	"io"
)

type listCollector[E any] struct{}

func (listCollector[E]) Fold(state []E, elem E) []E { return append(state, elem) }
func (listCollector[E]) Finalize(state []E) []E     { return state }

// List collects the elements of a bucket in arrival order.
func List[E any]() Seed[E, []E] {
	return SeedOf[[]E, E, []E](listCollector[E]{}, nil)
}

type setCollector[E comparable] struct{}

func (setCollector[E]) Fold(state map[E]struct{}, elem E) map[E]struct{} {
	state[elem] = struct{}{}
	return state
}

func (setCollector[E]) Finalize(state map[E]struct{}) map[E]struct{} { return state }

// Set collects the distinct elements of a bucket.
func Set[E comparable]() Seed[E, map[E]struct{}] {
	return SeedFunc[map[E]struct{}, E, map[E]struct{}](setCollector[E]{}, func() map[E]struct{} {
		return make(map[E]struct{})
	})
}

type countCollector[E any] struct{}

func (countCollector[E]) Fold(state int, _ E) int { return state + 1 }
func (countCollector[E]) Finalize(state int) int  { return state }

// Count counts the elements of a bucket.
func Count[E any]() Seed[E, int] {
	return SeedOf[int, E, int](countCollector[E]{}, 0)
}

// Reducer is a Collector made of two functions.
type Reducer[S, E, V any] struct {
	FoldFn     func(S, E) S
	FinalizeFn func(S) V
}

func (r Reducer[S, E, V]) Fold(state S, elem E) S { return r.FoldFn(state, elem) }
func (r Reducer[S, E, V]) Finalize(state S) V     { return r.FinalizeFn(state) }

// Reduce starts every bucket from initial and folds with fold.
// A nil fold or finalize panics.
//
// Like SeedOf, initial is copied by value, so a map, a pointer or a slice
// with spare capacity is shared by every bucket. Use ReduceFunc for those.
func Reduce[S, E, V any](fold func(S, E) S, finalize func(S) V, initial S) Seed[E, V] {
	return ReduceFunc(fold, finalize, func() S { return initial })
}

// ReduceFunc is Reduce with a fresh state from newState for every bucket.
func ReduceFunc[S, E, V any](fold func(S, E) S, finalize func(S) V, newState func() S) Seed[E, V] {
	if fold == nil || finalize == nil {
		panic("route.Reduce: nil fold or finalize")
	}
	return SeedFunc[S, E, V](Reducer[S, E, V]{FoldFn: fold, FinalizeFn: finalize}, newState)
}

// WriteSummary is what a Writer bucket finalizes to.
type WriteSummary struct {
	Elements int
	Bytes    int64
}

type writerState struct {
	w       io.Writer
	summary WriteSummary
}

type writerCollector[E any] struct {
	encode func(E) []byte
}

// Fold writes the encoded element.
// A failed write panics with the error, as the pass has no error channel
// of its own.
func (c writerCollector[E]) Fold(state writerState, elem E) writerState {
	n, err := state.w.Write(c.encode(elem))
	if err != nil {
		panic(fmt.Errorf("route.Writer: write failed: %w", err))
	}
	state.summary.Elements++
	state.summary.Bytes += int64(n)
	return state
}

func (writerCollector[E]) Finalize(state writerState) WriteSummary {
	return state.summary
}

// Writer streams each element of a bucket to w.
//
// The pass never opens, flushes or closes w. Use one seed per key, since
// buckets started from the same Writer seed share w.
func Writer[E any](w io.Writer, encode func(E) []byte) Seed[E, WriteSummary] {
	if w == nil || encode == nil {
		panic("route.Writer: nil writer or encoder")
	}
	return SeedFunc[writerState, E, WriteSummary](writerCollector[E]{encode: encode}, func() writerState {
		return writerState{w: w}
	})
}
