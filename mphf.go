package mphf

import (
	"github.com/edsrzf/mmap-go"
	"github.com/katalvlaran/mphf/hasher"
	"github.com/katalvlaran/mphf/rankdict"
)

// MPHF is an immutable minimal perfect hash function built by
// Builder.Build (or recovered via Read/Open). Queries are read-only
// and safe for unsynchronized concurrent use from multiple goroutines.
type MPHF struct {
	n        uint64
	m        uint64
	gamma    float64
	seed     uint64
	table    *rankdict.Table
	dict     *rankdict.Dictionary
	attempts int
	backing  mmap.MMap // non-nil iff this MPHF was produced by Open
}

// Stats reports build-time metadata useful for diagnostics and tests;
// none of it is required for Lookup.
type Stats struct {
	Seed     uint64
	Gamma    float64
	M        uint64
	Attempts int
}

// Stats returns the build parameters that produced m.
func (m *MPHF) Stats() Stats {
	return Stats{Seed: m.seed, Gamma: m.gamma, M: m.m, Attempts: m.attempts}
}

// Len returns n, the number of keys this MPHF was built over.
func (m *MPHF) Len() uint64 {
	return m.n
}

// Lookup returns the unique index in [0, n) assigned to key, if key
// was a member of the original key set. For any other key, Lookup
// still returns some value in [0, n) (it cannot detect non-membership)
// deterministically across repeated calls.
//
// Lookup hashes key to its three vertex candidates, sums their 2-bit
// labels modulo 3 (treating the "unused" sentinel 3 as 0) to pick the
// winning vertex, and ranks that vertex over the used-vertex bitmap.
func (m *MPHF) Lookup(key []byte) uint64 {
	tr := hasher.Hash(key, m.seed, m.m)

	var sum int
	g0, g1, g2 := m.table.Get(tr.V0), m.table.Get(tr.V1), m.table.Get(tr.V2)
	if g0 != 3 {
		sum += int(g0)
	}
	if g1 != 3 {
		sum += int(g1)
	}
	if g2 != 3 {
		sum += int(g2)
	}

	var winner uint64
	switch sum % 3 {
	case 0:
		winner = tr.V0
	case 1:
		winner = tr.V1
	default:
		winner = tr.V2
	}

	return m.dict.Rank(winner)
}

// Close releases the backing memory map, if this MPHF was produced by
// Open. It is a no-op for an MPHF built by Builder.Build or recovered
// via Read. Close must be called exactly once for an Open'd MPHF once
// it is no longer needed; looking up keys after Close is undefined.
func (m *MPHF) Close() error {
	if m.backing == nil {
		return nil
	}

	return m.backing.Unmap()
}
