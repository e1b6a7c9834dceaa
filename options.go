package mphf

import "runtime"

const (
	// DefaultGamma is the inflation factor m/n used when no WithGamma
	// option is given. It gives >99% peel success per seed attempt.
	DefaultGamma = 1.27

	// MinGamma and MaxGamma bound the valid gamma range.
	MinGamma = 1.23
	MaxGamma = 2.0

	// DefaultMaxRetries is the number of seed attempts Build tries
	// before giving up with a BuildFailedError.
	DefaultMaxRetries = 16
)

// builderConfig holds Builder's tunable parameters. Exactly one of
// these is ever in play per Builder: construct via defaultConfig and
// apply Options, mirroring prim_kruskal.MSTOptions / dijkstra.Options.
type builderConfig struct {
	gamma       float64
	maxRetries  int
	baseSeed    uint64
	parallelism int
}

// Option configures a Builder. Apply via NewBuilder's variadic opts.
type Option func(*builderConfig)

// WithGamma overrides the default inflation factor m/n. Must be called
// with a value in [MinGamma, MaxGamma]; out-of-range values are caught
// by Build, not by WithGamma itself (symmetric with how this corpus's
// other Option constructors defer validation to the algorithm entry
// point rather than panicking at configuration time).
func WithGamma(gamma float64) Option {
	return func(c *builderConfig) {
		c.gamma = gamma
	}
}

// WithMaxRetries overrides the number of seed attempts Build makes
// before returning a BuildFailedError.
func WithMaxRetries(n int) Option {
	return func(c *builderConfig) {
		c.maxRetries = n
	}
}

// WithBaseSeed fixes the base seed used to derive per-attempt seeds.
// Two builds with identical keys, gamma, MaxRetries and base seed
// always produce byte-identical serializations (see DESIGN.md). The
// default base seed, if this option is never applied, is 0 — Build has
// no hidden source of randomness.
func WithBaseSeed(seed uint64) Option {
	return func(c *builderConfig) {
		c.baseSeed = seed
	}
}

// WithParallelism overrides the number of worker goroutines used to
// hash keys during Build. Defaults to runtime.GOMAXPROCS(0). A value
// < 1 is treated as 1 (no parallelism).
func WithParallelism(workers int) Option {
	return func(c *builderConfig) {
		c.parallelism = workers
	}
}

func defaultConfig() builderConfig {
	return builderConfig{
		gamma:       DefaultGamma,
		maxRetries:  DefaultMaxRetries,
		parallelism: runtime.GOMAXPROCS(0),
	}
}
