// Package route routes the elements of a sequence into keyed buckets and
// accumulates each bucket with its own collector.
//
// A pass is a single left-to-right walk over an iter.Seq. Every element is
// given a key by the caller's key function. If the key already owns a bucket,
// the element is folded into it. Otherwise the Policy is asked what to do with
// the new key:
//
//	Create(seed)  → start a bucket from seed and fold the element into it
//	Discard       → drop the element, no bucket is created
//	Invalid       → stop the pass; nothing is returned but the offender
//
// Once the sequence is exhausted every bucket is finalized exactly once and
// the results are handed back as a map.
//
// Decisions are typed by the element and bucket value types, so a policy
// cannot hand out a seed of the wrong kind.
//
// Policies come in two forms. The function form is asked on every miss, so a
// key discarded once may still get a bucket later. The table form, built with
// FromTable, fixes the decision per key for the life of the policy.
//
// Collectors shipped with the package:
//   - List: elements in arrival order (GroupBy uses it)
//   - Set: distinct elements
//   - Count: number of elements
//   - Reduce: any fold/finalize pair
//   - Writer: elements streamed to an io.Writer the caller owns
//
// Example:
//
//	policy := route.FromTable(map[int]route.Seed[int, map[int]struct{}]{
//	    0: route.Set[int](),
//	    1: route.Set[int](),
//	}, route.Discard[int, map[int]struct{}]())
//
//	sets, err := route.RouteStrict(slices.Values([]int{0, 1, 2, 3, 4, 5}),
//	    func(i int) int { return i % 3 }, policy)
//	// sets == {0: {0, 3}, 1: {1, 4}}
//
// A pass is synchronous and owns its buckets. It starts no goroutines and
// keeps no state between calls, so concurrent passes are independent.
// Resources held by collectors (files, connections) stay with the caller.
package route
