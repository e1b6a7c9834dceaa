package mphf

import (
	"context"
	"errors"
	"math"

	"github.com/katalvlaran/mphf/assign"
	"github.com/katalvlaran/mphf/hasher"
	"github.com/katalvlaran/mphf/peel"
	"github.com/katalvlaran/mphf/rankdict"
	"golang.org/x/sync/errgroup"
)

// Builder configures and runs a BDZ construction over a fixed key set.
// Construct with NewBuilder and Option functions, then call Build.
type Builder struct {
	keys [][]byte
	cfg  builderConfig
}

// NewBuilder returns a Builder over keys with the given Options
// applied on top of the package defaults (DefaultGamma,
// DefaultMaxRetries, base seed 0, GOMAXPROCS(0) hashing workers).
// keys is retained, not copied; callers must not mutate it before
// calling Build.
func NewBuilder(keys [][]byte, opts ...Option) *Builder {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Builder{keys: keys, cfg: cfg}
}

// errDegenerateEdge signals that a hashed triple collapsed onto fewer
// than three distinct vertices. Band partitioning (see package hasher)
// makes this unreachable in practice, but Build still retries on it
// rather than assuming the impossible.
var errDegenerateEdge = errors.New("mphf: degenerate edge (unreachable under band partitioning)")

// Build runs the BDZ construction: Init -> Hashing -> Peeling ->
// (Retry | Assigning) -> RankBuilding -> Ready | Failed. It tries up to
// cfg.maxRetries seeds, deriving each deterministically from the
// Builder's base seed and the attempt number, and returns the first
// one that yields a peelable hypergraph.
//
// ctx is checked at each retry boundary; a cancelled or expired ctx
// aborts the loop and returns ctx.Err() instead of continuing to the
// next seed.
func (b *Builder) Build(ctx context.Context) (*MPHF, error) {
	n := uint64(len(b.keys))
	if n == 0 {
		return nil, ErrEmptyKeySet
	}
	if b.cfg.gamma < MinGamma || b.cfg.gamma > MaxGamma {
		return nil, ErrInvalidGamma
	}
	if err := checkDuplicates(b.keys); err != nil {
		return nil, err
	}

	m := computeM(n, b.cfg.gamma)

	for attempt := 0; attempt < b.cfg.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		seed := hasher.Mix64(b.cfg.baseSeed, uint64(attempt))

		edges, err := hashKeysParallel(ctx, b.keys, seed, m, b.cfg.parallelism)
		if err != nil {
			if errors.Is(err, errDegenerateEdge) {
				continue
			}
			return nil, err
		}

		order, ok := peel.Peel(edges, m)
		if !ok {
			continue
		}

		table := assign.Build(edges, order, m)
		dict := rankdict.Build(table)

		return &MPHF{
			n:        n,
			m:        m,
			gamma:    b.cfg.gamma,
			seed:     seed,
			table:    table,
			dict:     dict,
			attempts: attempt + 1,
		}, nil
	}

	return nil, &BuildFailedError{Attempts: b.cfg.maxRetries}
}

// computeM derives the vertex-space size m = ceil(gamma*n), rounded up
// to the next multiple of 3 so the three hash bands are equal-sized.
func computeM(n uint64, gamma float64) uint64 {
	m := uint64(math.Ceil(gamma * float64(n)))
	if m < n {
		m = n
	}
	if r := m % 3; r != 0 {
		m += 3 - r
	}
	if m == 0 {
		m = 3
	}

	return m
}

// checkDuplicates returns ErrDuplicateKey if any two keys are
// byte-identical, catching the one input shape that would otherwise
// waste every retry attempt on an unpeelable hypergraph.
func checkDuplicates(keys [][]byte) error {
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		s := string(k)
		if _, ok := seen[s]; ok {
			return ErrDuplicateKey
		}
		seen[s] = struct{}{}
	}

	return nil
}

// hashKeysParallel partitions keys across workers goroutines and hashes
// each partition to edge triples concurrently, joining at a single
// errgroup.Wait — the one parallel phase the BDZ construction allows
// (peeling and assignment are inherently sequential over the peel
// order).
func hashKeysParallel(ctx context.Context, keys [][]byte, seed, m uint64, workers int) ([]peel.Edge, error) {
	n := len(keys)
	edges := make([]peel.Edge, n)

	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	g, _ := errgroup.WithContext(ctx)
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}

		g.Go(func() error {
			for i := start; i < end; i++ {
				tr := hasher.Hash(keys[i], seed, m)
				if tr.V0 == tr.V1 || tr.V1 == tr.V2 || tr.V0 == tr.V2 {
					return errDegenerateEdge
				}
				edges[i] = peel.Edge{V: [3]uint64{tr.V0, tr.V1, tr.V2}}
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return edges, nil
}
