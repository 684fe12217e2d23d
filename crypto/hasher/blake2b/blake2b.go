// Package blake2b implements the tree hash capability backed by
// unkeyed BLAKE2b-256.
package blake2b

import (
	goblake2b "golang.org/x/crypto/blake2b"

	"github.com/merkle-sys/merkle-go/crypto/hasher"
)

// HasherID is the identifier of the BLAKE2b-256 capability in the registry.
const HasherID = "BLAKE2b-256"

func init() {
	hasher.RegisterHasher(HasherID, New)
}

type blake2bHasher struct{}

// New returns the BLAKE2b-256 tree hasher.
func New() hasher.TreeHasher {
	return blake2bHasher{}
}

func (blake2bHasher) ID() string {
	return HasherID
}

func (blake2bHasher) Size() int {
	return goblake2b.Size256
}

func (blake2bHasher) Digest(ms ...[]byte) []byte {
	// New256 only fails for an oversized key; the unkeyed form cannot.
	h, err := goblake2b.New256(nil)
	if err != nil {
		panic(err)
	}
	for _, m := range ms {
		h.Write(m)
	}
	return h.Sum(nil)
}

func (b blake2bHasher) HashPair(left, right []byte) []byte {
	return b.Digest(left, right)
}
