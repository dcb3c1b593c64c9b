package shard_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/on-the-ground/routefold/shard"
	"github.com/stretchr/testify/assert"
)

func TestHash_StableAndInRange(t *testing.T) {
	key := shard.Hash(7, func(s string) string { return s })

	for i := range 200 {
		s := fmt.Sprintf("user-%d", i)
		k := key(s)
		assert.GreaterOrEqual(t, k, 0)
		assert.Less(t, k, 7)
		assert.Equal(t, k, key(s))
	}
}

func TestHash_SingleShard(t *testing.T) {
	key := shard.Hash(1, func(i int) string { return fmt.Sprint(i) })
	for i := range 50 {
		assert.Zero(t, key(i))
	}
}

func TestHash_NonPositivePanics(t *testing.T) {
	assert.Panics(t, func() { shard.Hash(0, func(s string) string { return s }) })
}

func TestPeriod_BucketsByHour(t *testing.T) {
	key := shard.Period(time.Hour, func(t time.Time) time.Time { return t })

	seoul := time.FixedZone("KST", 9*60*60)
	a := key(time.Date(2025, 3, 1, 10, 5, 0, 0, time.UTC))
	b := key(time.Date(2025, 3, 1, 19, 59, 59, 0, seoul))
	c := key(time.Date(2025, 3, 1, 11, 0, 0, 0, time.UTC))

	assert.Equal(t, a, b, "same instant range regardless of zone")
	assert.NotEqual(t, a, c)
	assert.Equal(t, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), a.Start())
	assert.Equal(t, time.Date(2025, 3, 1, 11, 0, 0, 0, time.UTC), a.End())
}

func TestPeriodName(t *testing.T) {
	key := shard.Period(24*time.Hour, func(t time.Time) time.Time { return t })
	name := shard.PeriodName("2006-01-02")

	assert.Equal(t, "2025-03-01", name(key(time.Date(2025, 3, 1, 23, 0, 0, 0, time.UTC))))
}
