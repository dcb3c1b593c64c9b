package shard

import (
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/rickb777/date/v2/timespan"
)

// Hash returns a key function spreading elements over n shards by the
// xxhash of keyOf(e). The same string always lands in the same shard.
func Hash[E any](n int, keyOf func(E) string) func(E) int {
	if n <= 0 {
		panic("shard.Hash: number of shards must be positive")
	}
	return func(e E) int {
		return int(xxhash.Sum64String(keyOf(e)) % uint64(n))
	}
}

// Period returns a key function putting each element in the UTC span of
// length d that contains at(e).
func Period[E any](d time.Duration, at func(E) time.Time) func(E) timespan.TimeSpan {
	if d <= 0 {
		panic("shard.Period: period must be positive")
	}
	return func(e E) timespan.TimeSpan {
		start := at(e).UTC().Truncate(d)
		return timespan.BetweenTimes(start, start.Add(d))
	}
}

// PeriodName names a period by formatting its start with layout.
func PeriodName(layout string) func(timespan.TimeSpan) string {
	return func(ts timespan.TimeSpan) string {
		return ts.Start().Format(layout)
	}
}
