package blake2b

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/merkle-sys/merkle-go/crypto/hasher/sha256"
)

func TestDigest(t *testing.T) {
	h := New()
	require.Equal(t, HasherID, h.ID())
	require.Equal(t, 32, h.Size())
	require.Len(t, h.Digest([]byte("hello")), 32)
	require.Equal(t, h.Digest([]byte("hello")), h.Digest([]byte("hello")))
}

func TestDistinctFromSHA256(t *testing.T) {
	msg := []byte("test data")
	require.NotEqual(t, sha256.New().Digest(msg), New().Digest(msg))
}

func TestHashPair(t *testing.T) {
	h := New()
	left := h.Digest([]byte("left"))
	right := h.Digest([]byte("right"))
	require.Equal(t, h.Digest(left, right), h.HashPair(left, right))
}
