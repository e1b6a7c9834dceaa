// Package mphf builds and queries minimal perfect hash functions (MPHF)
// over a fixed, known-in-advance set of keys using the BDZ construction
// (Botelho-Pagh-Ziviani, 2007): a random 3-uniform hypergraph over the
// keys is peeled via iterative leaf removal, and the peel order is
// turned into a 2-bit-per-vertex label table such that, for every key,
// summing its three vertex labels modulo 3 selects a unique "winning"
// vertex. Ranking that vertex over the set of used vertices produces a
// dense index in [0, n).
//
// 🚀 What is mphf?
//
//	A small, dependency-light library that turns a fixed key set into a
//	constant-time, branch-light lookup table with no wasted space:
//
//	  • Build: hasher + peel + assign + rankdict compose into an MPHF.
//	  • Query: MPHF.Lookup(key) -> index in [0, n), O(1), three table
//	    reads plus one rank lookup.
//	  • Serialize: a fixed on-disk layout with a CRC-64 trailer,
//	    readable either fully in memory (Read) or memory-mapped for
//	    cold start (Open).
//
// ✨ Properties
//
//   - Minimal   — the index space is exactly [0, n), not some larger
//     power of two or hash-table-sized range.
//   - Immutable — an MPHF never changes after Build; queries are safe
//     for concurrent use across goroutines without synchronization.
//   - Caller beware — looking up a key outside the original set returns
//     an arbitrary-but-deterministic index; this library does not store
//     keys and cannot detect membership.
//
// Under the hood, the construction is split into four leaf packages
// plus this root package:
//
//	hasher/   — keyed, band-partitioned 3-vertex hash per key
//	peel/     — XOR-accumulator hypergraph peeling
//	assign/   — 2-bit assignment table g from a peel order
//	rankdict/ — packed table + O(1) SWAR rank dictionary
//
// See NewBuilder and MPHF.Lookup for the primary entry points, and
// MPHF.Write / Read / Open for serialization.
package mphf
