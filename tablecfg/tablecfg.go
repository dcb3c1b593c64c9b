// Package tablecfg loads the table form of a routing policy from YAML.
//
//	keys: [GET, POST]
//	fallback: invalid   # discard | invalid | create
//
// Every listed key gets a bucket from the same seed. Unlisted keys follow
// the fallback; "create" gives them a bucket from that seed too.
package tablecfg

import (
	"errors"
	"fmt"
	"os"

	"github.com/on-the-ground/routefold/route"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFallback is returned for a fallback name Parse does not know.
var ErrUnknownFallback = errors.New("unknown fallback")

// Fallback names the decision for keys missing from the table.
type Fallback string

const (
	FallbackDiscard Fallback = "discard"
	FallbackInvalid Fallback = "invalid"
	FallbackCreate  Fallback = "create"
)

// Config is a static routing table as written in YAML.
type Config struct {
	Keys     []string `yaml:"keys"`
	Fallback Fallback `yaml:"fallback"` // default: discard
}

// Parse reads a Config from YAML.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse table config: %w", err)
	}
	if cfg.Fallback == "" {
		cfg.Fallback = FallbackDiscard
	}
	switch cfg.Fallback {
	case FallbackDiscard, FallbackInvalid, FallbackCreate:
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownFallback, cfg.Fallback)
	}
	return cfg, nil
}

// Load reads a Config from a YAML file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read table config: %w", err)
	}
	return Parse(data)
}

// Policy builds the table form policy described by cfg, with one seed for
// every bucket.
func Policy[E, V any](cfg Config, seed route.Seed[E, V]) route.Policy[string, E, V] {
	return PolicyFor(cfg, func(string) route.Seed[E, V] { return seed })
}

// PolicyFor is Policy with a seed per key, for buckets that must not share
// anything (files, writers).
func PolicyFor[E, V any](cfg Config, seedFor func(key string) route.Seed[E, V]) route.Policy[string, E, V] {
	if cfg.Fallback == FallbackCreate {
		// listed or not, every key gets a bucket
		return func(key string) route.Decision[E, V] {
			return route.Create(seedFor(key))
		}
	}

	seeds := make(map[string]route.Seed[E, V], len(cfg.Keys))
	for _, k := range cfg.Keys {
		seeds[k] = seedFor(k)
	}
	fallback := route.Discard[E, V]()
	if cfg.Fallback == FallbackInvalid {
		fallback = route.Invalid[E, V]()
	}
	return route.FromTable(seeds, fallback)
}
