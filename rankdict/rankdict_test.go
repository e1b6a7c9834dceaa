package rankdict_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mphf/rankdict"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTable_SetGetRoundTrip exercises every 2-bit value at a spread of
// vertex indices, including ones spanning several packed bytes.
func TestTable_SetGetRoundTrip(t *testing.T) {
	const m = 1000
	tbl := rankdict.NewTable(m)

	for v := uint64(0); v < m; v++ {
		assert.Equal(t, uint8(3), tbl.Get(v), "fresh table must start all-unused")
	}

	r := rand.New(rand.NewSource(1))
	want := make([]uint8, m)
	for v := uint64(0); v < m; v++ {
		val := uint8(r.Intn(4))
		want[v] = val
		tbl.Set(v, val)
	}
	for v := uint64(0); v < m; v++ {
		assert.Equal(t, want[v], tbl.Get(v))
	}
}

// TestDictionary_RankMatchesBruteForce checks Rank against a linear
// popcount scan for several block-boundary-straddling table sizes.
func TestDictionary_RankMatchesBruteForce(t *testing.T) {
	sizes := []uint64{1, 3, 511, 512, 513, 1025, 5000}
	r := rand.New(rand.NewSource(2))

	for _, m := range sizes {
		tbl := rankdict.NewTable(m)
		used := make([]bool, m)
		for v := uint64(0); v < m; v++ {
			if r.Intn(3) != 0 { // ~2/3 used
				val := uint8(r.Intn(3)) // 0, 1 or 2: "used"
				tbl.Set(v, val)
				used[v] = true
			}
		}

		dict := rankdict.Build(tbl)

		var running uint64
		for v := uint64(0); v < m; v++ {
			assert.Equal(t, running, dict.Rank(v), "m=%d v=%d", m, v)
			if used[v] {
				running++
			}
		}
		assert.Equal(t, running, dict.Rank(m), "rank(m) must equal total used count")
	}
}

// TestDictionary_FromCounters_RoundTrip checks that reconstructing a
// Dictionary from externally-stored counters (as deserialization does)
// behaves identically to a freshly built one.
func TestDictionary_FromCounters_RoundTrip(t *testing.T) {
	const m = 2000
	tbl := rankdict.NewTable(m)
	for v := uint64(0); v < m; v += 3 {
		tbl.Set(v, uint8(v%3))
	}

	built := rankdict.Build(tbl)
	restored := rankdict.FromCounters(tbl, built.Counters())

	require.Equal(t, built.Counters(), restored.Counters())
	for v := uint64(0); v <= m; v += 7 {
		assert.Equal(t, built.Rank(v), restored.Rank(v))
	}
}
