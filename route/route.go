package route

import (
	"fmt"
	"iter"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Route sends every element of seq to the bucket of its key and returns the
// finalized buckets.
//
// keyFn is called exactly once per element. When a key has no bucket yet,
// policy decides: Create starts a bucket and folds the element into it,
// Discard drops the element, and Invalid stops the pass at once. An aborted
// pass pulls no further elements from seq, finalizes nothing and reports the
// offending element and key through Result.Invalid.
//
// Buckets are finalized exactly once, after seq is exhausted.
// Panics from keyFn, policy or the collectors are not recovered.
func Route[E any, K comparable, V any](
	seq iter.Seq[E],
	keyFn func(E) K,
	policy Policy[K, E, V],
	opts ...Option,
) Result[E, K, V] {
	if seq == nil || keyFn == nil || policy == nil {
		panic("route.Route: nil sequence, key function or policy")
	}

	cfg := newPassConfig(opts)
	logger := cfg.logger.With(
		zap.String("pass", cfg.name),
		zap.String("passId", uuid.New().String()),
	)

	buckets := make(map[K]bucket[E, V])
	elements, discarded := 0, 0

	for elem := range seq {
		elements++
		key := keyFn(elem)

		if b, ok := buckets[key]; ok {
			b.fold(elem)
			continue
		}

		switch d := policy(key); d.verdict {
		case create:
			b := d.seed.open()
			b.fold(elem)
			buckets[key] = b
			if ce := logger.Check(zap.DebugLevel, "bucket opened"); ce != nil {
				ce.Write(zap.Any("key", key))
			}
		case discard:
			discarded++
			if ce := logger.Check(zap.DebugLevel, "element discarded"); ce != nil {
				ce.Write(zap.Any("key", key))
			}
		case invalid:
			logger.Debug("pass aborted",
				zap.Any("key", key),
				zap.Any("element", elem),
				zap.Int("elements", elements),
				zap.Int("dropped_buckets", len(buckets)),
			)
			return Result[E, K, V]{invalid: &InvalidKey[E, K]{Element: elem, Key: key}}
		default:
			// a zero Decision, not built by Create, Discard or Invalid
			panic(fmt.Sprintf("route.Route: no decision for key %v", key))
		}
	}

	out := make(map[K]V, len(buckets))
	for key, b := range buckets {
		out[key] = b.finalize()
	}

	logger.Debug("pass completed",
		zap.Int("elements", elements),
		zap.Int("discarded", discarded),
		zap.Int("buckets", len(out)),
	)
	return Result[E, K, V]{buckets: out}
}

// RouteStrict is Route returning the buckets directly.
// An aborted pass yields an *InvalidKeyError naming the key and the element.
func RouteStrict[E any, K comparable, V any](
	seq iter.Seq[E],
	keyFn func(E) K,
	policy Policy[K, E, V],
	opts ...Option,
) (map[K]V, error) {
	res := Route(seq, keyFn, policy, opts...)
	if err := res.Err(); err != nil {
		return nil, err
	}
	buckets, _ := res.Buckets()
	return buckets, nil
}

// MustRoute is the panic-on-failure variant of RouteStrict.
func MustRoute[E any, K comparable, V any](
	seq iter.Seq[E],
	keyFn func(E) K,
	policy Policy[K, E, V],
	opts ...Option,
) map[K]V {
	buckets, err := RouteStrict(seq, keyFn, policy, opts...)
	if err != nil {
		panic(err)
	}
	return buckets
}

// RouteSlice is Route over the elements of s.
func RouteSlice[E any, K comparable, V any](
	s []E,
	keyFn func(E) K,
	policy Policy[K, E, V],
	opts ...Option,
) Result[E, K, V] {
	return Route(slices.Values(s), keyFn, policy, opts...)
}

// GroupBy groups the elements of seq by key into lists that keep the
// order of seq.
func GroupBy[E any, K comparable](seq iter.Seq[E], keyFn func(E) K, opts ...Option) map[K][]E {
	// DefaultPolicy never answers Invalid.
	buckets, _ := Route(seq, keyFn, DefaultPolicy[K, E](), opts...).Buckets()
	return buckets
}
