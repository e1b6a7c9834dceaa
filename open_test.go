package mphf_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/mphf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOpen_MmapColdStart writes an MPHF to a file and reopens it via
// Open (memory-mapped), checking lookups agree with the in-memory
// original; the mapping is released by a deferred Close.
func TestOpen_MmapColdStart(t *testing.T) {
	keys := make([][]byte, 5000)
	for i := range keys {
		keys[i] = []byte(fmt.Sprintf("key_%d", i))
	}
	original := build(t, keys)

	path := filepath.Join(t.TempDir(), "mphf.bin")
	f, err := os.Create(path)
	require.NoError(t, err)
	_, err = original.Write(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	restored, err := mphf.Open(path)
	require.NoError(t, err)
	defer restored.Close()

	assert.Equal(t, original.Len(), restored.Len())
	for _, k := range keys {
		assert.Equal(t, original.Lookup(k), restored.Lookup(k))
	}
}

// TestOpen_MissingFile checks the plain os.Open error surfaces as-is.
func TestOpen_MissingFile(t *testing.T) {
	_, err := mphf.Open(filepath.Join(t.TempDir(), "does-not-exist.bin"))
	assert.Error(t, err)
}
