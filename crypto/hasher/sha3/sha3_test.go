package sha3

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDigest(t *testing.T) {
	h := New()
	require.Equal(t, HasherID, h.ID())
	require.Equal(t, 32, h.Size())

	got := hex.EncodeToString(h.Digest(nil))
	require.Equal(t,
		"a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a",
		got)
}

func TestDeterministic(t *testing.T) {
	h := New()
	require.Equal(t, h.Digest([]byte("hello")), h.Digest([]byte("hello")))
	require.NotEqual(t, h.Digest([]byte("hello")), h.Digest([]byte("world")))
}

func TestHashPair(t *testing.T) {
	h := New()
	left := h.Digest([]byte("left"))
	right := h.Digest([]byte("right"))
	require.Equal(t, h.Digest(left, right), h.HashPair(left, right))
}
