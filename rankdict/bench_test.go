package rankdict_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mphf/rankdict"
)

func BenchmarkDictionary_Rank(b *testing.B) {
	const m = 1_000_000
	tbl := rankdict.NewTable(m)
	r := rand.New(rand.NewSource(3))
	for v := uint64(0); v < m; v++ {
		if r.Intn(3) != 0 {
			tbl.Set(v, uint8(r.Intn(3)))
		}
	}
	dict := rankdict.Build(tbl)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dict.Rank(uint64(i) % m)
	}
}

func BenchmarkBuild(b *testing.B) {
	const m = 1_000_000
	tbl := rankdict.NewTable(m)
	r := rand.New(rand.NewSource(4))
	for v := uint64(0); v < m; v++ {
		if r.Intn(3) != 0 {
			tbl.Set(v, uint8(r.Intn(3)))
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rankdict.Build(tbl)
	}
}
