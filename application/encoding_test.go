package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merkle-sys/merkle-go/crypto/hasher/sha256"
	"github.com/merkle-sys/merkle-go/merkletree"
)

func TestProofRoundTrip(t *testing.T) {
	h := sha256.New()
	tree, err := merkletree.NewMerkleTree([][]byte{
		[]byte("a"), []byte("b"), []byte("c"), []byte("d"),
	}, h)
	require.NoError(t, err)

	proof, err := tree.GenerateProof(2)
	require.NoError(t, err)

	msg, err := MarshalProof(proof)
	require.NoError(t, err)

	decoded, err := UnmarshalProof(msg)
	require.NoError(t, err)
	assert.Equal(t, proof.LeafIndex, decoded.LeafIndex)
	assert.Equal(t, proof.Steps, decoded.Steps)
	assert.True(t, tree.VerifyProofAgainstRoot(decoded, []byte("c")))
}

func TestUnmarshalMalformedJSON(t *testing.T) {
	_, err := UnmarshalProof([]byte("{not json"))
	var serialization merkletree.SerializationError
	require.ErrorAs(t, err, &serialization)
}

func TestUnmarshalBadDirection(t *testing.T) {
	_, err := UnmarshalProof([]byte(`{"leaf_index":0,"steps":[{"hash":"AAE=","direction":7}]}`))
	var invalidProof merkletree.InvalidProofError
	require.ErrorAs(t, err, &invalidProof)
}

func TestUnmarshalInconsistentDigestLength(t *testing.T) {
	_, err := UnmarshalProof([]byte(
		`{"leaf_index":0,"steps":[{"hash":"AAE=","direction":0},{"hash":"AA==","direction":1}]}`))
	var invalidProof merkletree.InvalidProofError
	require.ErrorAs(t, err, &invalidProof)
}
