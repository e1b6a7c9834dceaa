// Package peel implements the leaf-removal ("peeling") algorithm at the
// heart of the BDZ construction: given a 3-uniform hypergraph (one edge
// per key, three vertex endpoints per edge), determine whether
// iterative removal of degree-1 vertices can remove every edge, and if
// so, in what order.
//
// What & why
//
//   - A hypergraph is peelable if repeatedly picking any vertex of
//     degree 1 and deleting its one remaining incident edge eventually
//     deletes every edge. Peelability is what lets the assignment
//     builder (package assign) derive a 2-bit label per vertex such
//     that every edge has exactly one "winning" vertex.
//   - Peeling is run once per build attempt; an unpeelable hypergraph
//     means the caller must retry with a new seed (see the root mphf
//     package's retry loop), not an error in this package's algorithm.
//
// Algorithm
//
//	Maintain, per vertex: a degree counter and an XOR accumulator of
//	incident edge indices. A degree-1 vertex's accumulator equals the
//	index of its sole surviving edge (XOR of a singleton set). Seed a
//	work queue with every degree-1 vertex; popping a vertex recovers its
//	edge via the accumulator, records the (edge, winner-position) pair,
//	and decrements/re-XORs the edge's other two endpoints, enqueueing
//	any that drop to degree 1. The hypergraph is peelable iff every edge
//	is eventually recorded.
//
// Complexity: O(n) time and space for n edges / m ~= 1.27n vertices,
// using a flat degree array, a flat XOR-accumulator array, and a
// bitset to guard against re-enqueueing an already-queued vertex.
package peel
