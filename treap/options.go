package treap

import "math/rand"

// Option customizes a new Engine. Option constructors never panic; a nil
// or zero-value argument is either rejected at the call site (by not being
// representable) or treated as a no-op, following the builder package's
// functional-option convention.
type Option func(*config)

type config struct {
	rng *rand.Rand
}

func newConfig(opts ...Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithSeed makes node priorities reproducible: the Engine draws them from a
// *rand.Rand seeded with seed instead of one seeded from the package-level
// math/rand source. Use this in
// tests and bug reports where the exact tree shape must be pinned down.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies an explicit priority source. A nil r is a no-op, so
// callers can thread an optional *rand.Rand through without a branch.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rng = r
		}
	}
}
