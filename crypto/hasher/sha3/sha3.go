// Package sha3 implements the tree hash capability backed by SHA3-256.
package sha3

import (
	gosha3 "golang.org/x/crypto/sha3"

	"github.com/merkle-sys/merkle-go/crypto/hasher"
)

// HasherID is the identifier of the SHA3-256 capability in the registry.
const HasherID = "SHA3-256"

// HashSizeByte is the size of a SHA3-256 digest in bytes.
const HashSizeByte = 32

func init() {
	hasher.RegisterHasher(HasherID, New)
}

type sha3Hasher struct{}

// New returns the SHA3-256 tree hasher.
func New() hasher.TreeHasher {
	return sha3Hasher{}
}

func (sha3Hasher) ID() string {
	return HasherID
}

func (sha3Hasher) Size() int {
	return HashSizeByte
}

func (sha3Hasher) Digest(ms ...[]byte) []byte {
	h := gosha3.New256()
	for _, m := range ms {
		h.Write(m)
	}
	return h.Sum(nil)
}

func (s sha3Hasher) HashPair(left, right []byte) []byte {
	return s.Digest(left, right)
}
