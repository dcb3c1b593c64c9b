package route

import "maps"

type verdict uint8

const (
	create verdict = iota + 1
	discard
	invalid
)

func (v verdict) String() string {
	switch v {
	case create:
		return "create"
	case discard:
		return "discard"
	case invalid:
		return "invalid"
	default:
		return "none"
	}
}

// Decision is what a Policy answers for a key that has no bucket yet:
// Create, Discard or Invalid. The zero Decision is none of them.
type Decision[E, V any] struct {
	verdict verdict
	seed    Seed[E, V]
}

func (d Decision[E, V]) String() string {
	return d.verdict.String()
}

// Create starts a new bucket from seed.
func Create[E, V any](seed Seed[E, V]) Decision[E, V] {
	if seed == nil {
		panic("route.Create: nil seed")
	}
	return Decision[E, V]{verdict: create, seed: seed}
}

// Discard drops the element without creating a bucket.
func Discard[E, V any]() Decision[E, V] {
	return Decision[E, V]{verdict: discard}
}

// Invalid aborts the whole pass.
func Invalid[E, V any]() Decision[E, V] {
	return Decision[E, V]{verdict: invalid}
}

// Policy decides what happens to an element whose key has no bucket.
//
// It is consulted on every miss. A key discarded once is asked about again
// the next time it is missed, so a policy may change its mind mid pass.
type Policy[K comparable, E, V any] func(key K) Decision[E, V]

// FromTable builds the table form of a Policy: keys present in seeds get a
// bucket started from their seed, any other key gets fallback.
// A zero fallback means Discard.
//
// The table is copied, so the decision for each key is fixed for every pass
// the returned policy is used in.
func FromTable[K comparable, E, V any](seeds map[K]Seed[E, V], fallback Decision[E, V]) Policy[K, E, V] {
	table := maps.Clone(seeds)
	if fallback.verdict == 0 {
		fallback = Discard[E, V]()
	}
	return func(key K) Decision[E, V] {
		if s, ok := table[key]; ok {
			return Create(s)
		}
		return fallback
	}
}

// DefaultPolicy creates a list bucket for every key, which turns a pass into
// a plain group-by.
func DefaultPolicy[K comparable, E any]() Policy[K, E, []E] {
	return FromTable[K, E, []E](nil, Create(List[E]()))
}
