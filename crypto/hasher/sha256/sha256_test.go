package sha256

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/merkle-sys/merkle-go/crypto/hasher"
)

func TestDigest(t *testing.T) {
	h := New()
	require.Equal(t, HasherID, h.ID())
	require.Equal(t, 32, h.Size())

	got := hex.EncodeToString(h.Digest([]byte("hello")))
	require.Equal(t,
		"2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		got)
}

func TestDigestVariadic(t *testing.T) {
	h := New()
	// Digest over multiple slices is the digest of their concatenation.
	require.Equal(t, h.Digest([]byte("helloworld")),
		h.Digest([]byte("hello"), []byte("world")))
}

func TestHashPair(t *testing.T) {
	h := New()
	left := h.Digest([]byte("left"))
	right := h.Digest([]byte("right"))
	pair := h.HashPair(left, right)
	require.Len(t, pair, h.Size())
	require.Equal(t, h.Digest(append(append([]byte{}, left...), right...)), pair)
}

func TestRegistered(t *testing.T) {
	reg, err := hasher.Hasher(HasherID)
	require.NoError(t, err)
	require.Equal(t, New().Digest([]byte("x")), reg.Digest([]byte("x")))
}
