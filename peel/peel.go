package peel

import "github.com/bits-and-blooms/bitset"

// Peel attempts to find a peel order for the 3-uniform hypergraph
// described by edges over m vertices. It returns (order, true) if the
// hypergraph is peelable, with len(order) == len(edges) and order[0]
// the first-peeled edge; otherwise it returns (nil, false) and the
// caller (the mphf builder's retry loop) should pick a new seed and
// rebuild the edge list.
//
// Peel never mutates edges and runs single-threaded; it is the
// sequential bottleneck of a build, but at O(n) with small constants
// (a handful of array writes per edge) it is not the dominant cost for
// realistic n.
func Peel(edges []Edge, m uint64) ([]Step, bool) {
	n := len(edges)
	degree := make([]int32, m)
	xorAcc := make([]uint64, m)

	for e, edge := range edges {
		for _, v := range edge.V {
			degree[v]++
			xorAcc[v] ^= uint64(e)
		}
	}

	// enqueued guards against pushing the same vertex onto the queue
	// twice: once a vertex is queued, later degree-1 transitions of the
	// same vertex (which cannot happen under correct bookkeeping, but a
	// naive port can double-enqueue on re-derivation) are ignored.
	enqueued := bitset.New(uint(m))
	queue := make([]uint64, 0, m)
	for v := uint64(0); v < m; v++ {
		if degree[v] == 1 {
			queue = append(queue, v)
			enqueued.Set(uint(v))
		}
	}

	order := make([]Step, 0, n)
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		if degree[v] != 1 {
			// Stale entry: v's last incident edge was already removed
			// as a side effect of peeling one of its neighbors.
			continue
		}

		e := xorAcc[v]
		edge := edges[e]
		w := whichOfThree(v, edge)
		order = append(order, Step{Edge: e, Winner: w})

		degree[v] = 0
		for _, u := range edge.V {
			if u == v {
				continue
			}
			degree[u]--
			xorAcc[u] ^= e
			if degree[u] == 1 && !enqueued.Test(uint(u)) {
				queue = append(queue, u)
				enqueued.Set(uint(u))
			}
		}
	}

	if len(order) != n {
		return nil, false
	}

	return order, true
}

// whichOfThree returns the position (0, 1 or 2) of v within edge.V. v
// is guaranteed to appear exactly once: band partitioning makes the
// three endpoints of any edge pairwise distinct.
func whichOfThree(v uint64, edge Edge) uint8 {
	for i, ev := range edge.V {
		if ev == v {
			return uint8(i)
		}
	}

	// Unreachable for any edge actually produced by package hasher: v
	// was derived from this edge's own accumulator, so it must be one
	// of its three endpoints.
	panic("peel: vertex not found in its own edge")
}
