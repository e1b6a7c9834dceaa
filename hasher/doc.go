// Package hasher derives the three band-partitioned vertex indices that
// the BDZ construction needs for each key. It wraps murmur3's 128-bit
// output so the same (key, seed) pair always yields the same triple,
// independent of host endianness.
package hasher
