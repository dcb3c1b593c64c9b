package route

// Collector folds elements of type E into an accumulator state S and turns
// the final state into the value V stored under a bucket's key.
type Collector[S, E, V any] interface {
	Fold(state S, elem E) S
	Finalize(state S) V
}

// Seed is the initial accumulator of a bucket.
// It hides the state type of its collector, so buckets of one pass may use
// different collectors as long as they all finalize to V.
type Seed[E, V any] interface {
	open() bucket[E, V]
}

// SeedOf returns a seed that starts every bucket from initial.
//
// initial is copied by value for each bucket. Reference-typed states
// (maps, pointers) would be shared between buckets; use SeedFunc for those.
func SeedOf[S, E, V any](c Collector[S, E, V], initial S) Seed[E, V] {
	return SeedFunc(c, func() S { return initial })
}

// SeedFunc returns a seed that calls newState once per opened bucket.
func SeedFunc[S, E, V any](c Collector[S, E, V], newState func() S) Seed[E, V] {
	if c == nil || newState == nil {
		panic("route.SeedFunc: nil collector or state constructor")
	}
	return seed[S, E, V]{collector: c, newState: newState}
}

type seed[S, E, V any] struct {
	collector Collector[S, E, V]
	newState  func() S
}

func (s seed[S, E, V]) open() bucket[E, V] {
	return &stateBucket[S, E, V]{
		collector: s.collector,
		state:     s.newState(),
	}
}

type bucket[E, V any] interface {
	fold(elem E)
	finalize() V
}

type stateBucket[S, E, V any] struct {
	collector Collector[S, E, V]
	state     S
}

func (b *stateBucket[S, E, V]) fold(elem E) {
	b.state = b.collector.Fold(b.state, elem)
}

func (b *stateBucket[S, E, V]) finalize() V {
	return b.collector.Finalize(b.state)
}
