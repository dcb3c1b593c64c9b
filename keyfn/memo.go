// Package keyfn helps build key functions for route passes.
//
// Memoize is meant for key functions that are pure but expensive (parsing,
// hashing, normalizing). A pass calls its key function once per element;
// with Memoize, repeated elements across and within passes hit a table
// instead.
//
// WARNING: Do not memoize impure key functions (time, I/O, randomness).
package keyfn

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// ComparableOrStringer is an element usable as a table key: a comparable
// value, or a fmt.Stringer whose String() identifies it.
type ComparableOrStringer any

// Memoize wraps a pure key function with a bounded table.
//
// The table keeps two generations of at most maxSize entries each. When the
// current generation is full the older one is dropped, so memory stays
// bounded without tracking recency.
//
// Elements that are neither comparable nor fmt.Stringer make the returned
// function panic.
func Memoize[E ComparableOrStringer, K any](fn func(E) K, maxSize uint32) func(E) K {
	if fn == nil {
		panic("keyfn.Memoize: nil key function")
	}
	table := newGenTable[K](maxSize)
	return func(e E) K {
		tk := tableKey(e)
		if k, ok := table.load(tk); ok {
			return k
		}
		k := fn(e)
		table.store(tk, k)
		return k
	}
}

func tableKey(e any) any {
	if stringer, ok := e.(fmt.Stringer); ok {
		return stringer.String()
	}
	return e
}

type genTable[V any] struct {
	mu      sync.Mutex
	gens    [2]*sync.Map
	head    atomic.Uint32
	size    atomic.Uint32
	maxSize uint32
}

func newGenTable[V any](maxSize uint32) *genTable[V] {
	if maxSize == 0 {
		panic("keyfn.Memoize: maxSize should be greater than 0")
	}
	return &genTable[V]{
		gens:    [2]*sync.Map{{}, {}},
		maxSize: maxSize,
	}
}

func (t *genTable[V]) load(key any) (V, bool) {
	head := t.head.Load()
	v, ok := t.gens[head].Load(key)
	if !ok {
		v, ok = t.gens[1-head].Load(key)
		if !ok {
			var zero V
			return zero, false
		}
	}
	return v.(V), true
}

func (t *genTable[V]) store(key any, value V) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.size.Load() >= t.maxSize {
		// rotate: the older generation is cleared and becomes the head
		next := 1 - t.head.Load()
		t.gens[next].Clear()
		t.head.Store(next)
		t.size.Store(0)
	}
	t.gens[t.head.Load()].Store(key, value)
	t.size.Add(1)
}
