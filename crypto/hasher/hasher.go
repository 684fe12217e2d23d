// Package hasher defines the hash capability consumed by the tree
// implementations, and a registry of the available capabilities.
// Implementations live in subpackages and register themselves on import.
package hasher

import "fmt"

// TreeHasher provides the hash functions for the tree implementations.
// Implementations must be deterministic: two instances configured for the
// same primitive produce identical digests for identical input.
type TreeHasher interface {
	// ID returns the name of the cryptographic hash function.
	ID() string
	// Size returns the size of the hash output in bytes.
	Size() int
	// Digest hashes all passed byte slices as one message.
	// The passed slices won't be mutated.
	Digest(ms ...[]byte) []byte
	// HashPair computes the hash of an interior node as H(left || right).
	// No domain separation tag is inserted between the two inputs.
	HashPair(left, right []byte) []byte
}

var hashers = make(map[string]func() TreeHasher)

// RegisterHasher registers a hasher constructor for use.
func RegisterHasher(id string, f func() TreeHasher) {
	if _, ok := hashers[id]; ok {
		panic(fmt.Sprintf("RegisterHasher(%v) is already registered", id))
	}
	hashers[id] = f
}

// Hasher returns a new TreeHasher with the given registered id.
func Hasher(id string) (TreeHasher, error) {
	if f, ok := hashers[id]; ok {
		return f(), nil
	}
	return nil, fmt.Errorf("Hasher(%v) is unknown hasher", id)
}
