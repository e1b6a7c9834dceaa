package assign

import (
	"github.com/katalvlaran/mphf/peel"
	"github.com/katalvlaran/mphf/rankdict"
)

// Build derives the packed 2-bit assignment table g from a peel order
// produced by package peel. It walks the order from last-peeled to
// first-peeled; at each step the two non-winner vertices of the edge
// either already carry a label (assigned by a later-peeled edge for
// which they were the winner) or remain the "unused" sentinel 3, which
// this procedure treats as 0 when summing.
//
// Postcondition: for every edge e with recorded winner w,
// (g[e.V[0]] + g[e.V[1]] + g[e.V[2]]) mod 3 == w.
func Build(edges []peel.Edge, order []peel.Step, m uint64) *rankdict.Table {
	table := rankdict.NewTable(m)

	for i := len(order) - 1; i >= 0; i-- {
		step := order[i]
		edge := edges[step.Edge]

		var s int
		for j, v := range edge.V {
			if uint8(j) == step.Winner {
				continue
			}
			g := table.Get(v)
			if g != 3 {
				s += int(g)
			}
		}

		winner := int(step.Winner)
		label := ((winner-s)%3 + 3) % 3
		table.Set(edge.V[step.Winner], uint8(label))
	}

	return table
}

// Verify re-checks the defining postcondition of Build against every
// edge named in order: that the edge's three g-values sum to its
// recorded winner position, modulo 3. It is O(n) and intended for
// tests and defensive assertions, not the query hot path.
func Verify(edges []peel.Edge, order []peel.Step, table *rankdict.Table) bool {
	for _, step := range order {
		edge := edges[step.Edge]
		var sum int
		for _, v := range edge.V {
			if g := table.Get(v); g != 3 {
				sum += int(g)
			}
		}
		if uint8(sum%3) != step.Winner {
			return false
		}
	}
	return true
}
