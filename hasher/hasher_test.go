package hasher_test

import (
	"testing"

	"github.com/katalvlaran/mphf/hasher"
	"github.com/stretchr/testify/assert"
)

// TestHash_Deterministic checks that repeated calls with the same
// arguments always agree, and that distinct seeds (almost always)
// produce distinct triples.
func TestHash_Deterministic(t *testing.T) {
	key := []byte("banana")
	const m = 99 // multiple of 3

	a := hasher.Hash(key, 42, m)
	b := hasher.Hash(key, 42, m)
	assert.Equal(t, a, b, "same key/seed/m must hash identically")

	c := hasher.Hash(key, 43, m)
	assert.NotEqual(t, a, c, "different seeds should (almost always) diverge")
}

// TestHash_BandsAreDisjoint verifies the partitioning guarantee: V0, V1
// and V2 always land in their respective bands and are therefore always
// pairwise distinct, for a range of keys and seeds.
func TestHash_BandsAreDisjoint(t *testing.T) {
	const m = 300
	b := uint64(m / 3)

	keys := [][]byte{[]byte("apple"), []byte("orange"), []byte(""), []byte("x")}
	for _, k := range keys {
		for seed := uint64(0); seed < 8; seed++ {
			tr := hasher.Hash(k, seed, m)
			assert.Less(t, tr.V0, b)
			assert.GreaterOrEqual(t, tr.V1, b)
			assert.Less(t, tr.V1, 2*b)
			assert.GreaterOrEqual(t, tr.V2, 2*b)
			assert.Less(t, tr.V2, uint64(m))

			assert.NotEqual(t, tr.V0, tr.V1)
			assert.NotEqual(t, tr.V1, tr.V2)
			assert.NotEqual(t, tr.V0, tr.V2)
		}
	}
}

// TestHash_RemainderBandAbsorbsOverflow exercises an m not evenly
// divisible by 3 (the builder normally rounds this away, but Hash
// itself must not panic or misbehave if handed one).
func TestHash_RemainderBandAbsorbsOverflow(t *testing.T) {
	const m = 100 // 100 = 33 + 33 + 34
	tr := hasher.Hash([]byte("kiwi"), 7, m)
	assert.Less(t, tr.V0, uint64(33))
	assert.GreaterOrEqual(t, tr.V1, uint64(33))
	assert.Less(t, tr.V1, uint64(66))
	assert.GreaterOrEqual(t, tr.V2, uint64(66))
	assert.Less(t, tr.V2, uint64(100))
}
