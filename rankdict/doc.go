// Package rankdict provides the packed 2-bit vertex table used to store
// the BDZ assignment g, and the rank dictionary built over it: an
// auxiliary structure that answers "how many vertices before v are
// used (g[v] != 3)?" in O(1) using a small per-512-vertex block index
// plus a SWAR popcount over the packed table itself.
//
// Space/time: one cumulative uint64 counter per 512 vertices (1/8 bit of
// overhead per vertex), and a rank query that touches one block counter
// plus the packed entries between the block start and v: up to 15
// whole 64-bit words and fewer than 32 trailing single entries.
package rankdict
