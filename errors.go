package mphf

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Builder.Build.
var (
	// ErrEmptyKeySet indicates the builder was given zero keys (n == 0).
	ErrEmptyKeySet = errors.New("mphf: key set is empty")

	// ErrInvalidGamma indicates a requested gamma outside [MinGamma, MaxGamma].
	ErrInvalidGamma = errors.New("mphf: gamma outside [1.23, 2.0]")

	// ErrDuplicateKey indicates two identical keys were passed to the
	// builder. The caller is responsible for deduplicating its key set;
	// Build checks for this with a pre-build set scan over the raw key
	// bytes, which reports any pair of byte-identical keys.
	ErrDuplicateKey = errors.New("mphf: duplicate key in input set")
)

// BuildFailedError is returned when every seed attempt up to
// MaxRetries failed to produce a peelable hypergraph. The caller may
// retry with a higher gamma or MaxRetries.
type BuildFailedError struct {
	Attempts int
}

func (e *BuildFailedError) Error() string {
	return fmt.Sprintf("mphf: build failed after %d attempts", e.Attempts)
}

// CorruptSerializationError is returned by Read/Open when the magic,
// version, declared lengths, or trailing CRC-64 of a serialized MPHF
// do not check out.
type CorruptSerializationError struct {
	Reason string
}

func (e *CorruptSerializationError) Error() string {
	return fmt.Sprintf("mphf: corrupt serialization: %s", e.Reason)
}
