package hasher

import "github.com/spaolacci/murmur3"

// Triple holds the three vertex indices derived from one key. V0, V1 and
// V2 always land in disjoint bands of [0, m), so they are guaranteed
// pairwise distinct without any runtime check.
type Triple struct {
	V0, V1, V2 uint64
}

// Hash derives the band-partitioned triple for key under seed, given the
// current vertex-space size m. Callers must ensure m >= 3; the BDZ
// builder rounds m up to a multiple of 3 before calling this.
//
// The three bands are [0, b), [b, 2b), [2b, m) with b = m/3; the last
// band absorbs any remainder from rounding. h1 seeds band 0, h2 seeds
// band 1, and a splitmix64-style mix of (h1, h2) seeds band 2 so the
// third output is not a trivial function of either raw murmur3 lane.
//
// murmur3.Sum128WithSeed reads data as a byte slice (no native-endian
// integer loads), so Hash is endianness-independent: the same (key,
// seed, m) triple on a big-endian and little-endian host produces an
// identical Triple, which is required for portable serialization.
func Hash(key []byte, seed uint64, m uint64) Triple {
	h1, h2 := murmur3.Sum128WithSeed(key, foldSeed(seed))

	b := m / 3
	lastBand := m - 2*b

	return Triple{
		V0: h1 % b,
		V1: b + (h2 % b),
		V2: 2*b + (Mix64(h1, h2) % lastBand),
	}
}

// foldSeed compresses a 64-bit seed into the 32-bit seed murmur3 accepts.
func foldSeed(seed uint64) uint32 {
	return uint32(seed) ^ uint32(seed>>32)
}

// Mix64 is the splitmix64 finalizer applied to a ^ (b + golden-ratio
// constant + shifted a). Hash uses it to derive a third pseudorandom
// lane decorrelated from h1 and h2 individually; the root mphf package
// reuses it to derive per-attempt seeds deterministically from a base
// seed and an attempt counter.
func Mix64(a, b uint64) uint64 {
	x := a ^ (b + 0x9E3779B97F4A7C15 + (a << 6) + (a >> 2))
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33

	return x
}
