// Package sha256 implements the tree hash capability backed by SHA-256.
package sha256

import (
	gosha256 "crypto/sha256"

	"github.com/merkle-sys/merkle-go/crypto/hasher"
)

// HasherID is the identifier of the SHA-256 capability in the registry.
const HasherID = "SHA-256"

func init() {
	hasher.RegisterHasher(HasherID, New)
}

type sha256Hasher struct{}

// New returns the SHA-256 tree hasher.
func New() hasher.TreeHasher {
	return sha256Hasher{}
}

func (sha256Hasher) ID() string {
	return HasherID
}

func (sha256Hasher) Size() int {
	return gosha256.Size
}

func (sha256Hasher) Digest(ms ...[]byte) []byte {
	h := gosha256.New()
	for _, m := range ms {
		h.Write(m)
	}
	return h.Sum(nil)
}

func (s sha256Hasher) HashPair(left, right []byte) []byte {
	return s.Digest(left, right)
}
