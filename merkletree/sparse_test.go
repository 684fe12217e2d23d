package merkletree

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSparseConstruction(t *testing.T) {
	s := newTestSparseTree(t, 8)
	assert.Equal(t, uint8(8), s.Depth())
	assert.Equal(t, 0, s.Len())
	assert.True(t, s.IsEmpty())

	var construction TreeConstructionError
	_, err := NewSparseMerkleTree(0, testHasher())
	require.ErrorAs(t, err, &construction)
	_, err = NewSparseMerkleTree(65, testHasher())
	require.ErrorAs(t, err, &construction)

	_, err = NewSparseMerkleTree(1, testHasher())
	require.NoError(t, err)
	_, err = NewSparseMerkleTree(64, testHasher())
	require.NoError(t, err)
}

func TestSparseUpdateAndGet(t *testing.T) {
	s := newTestSparseTree(t, 8)
	require.NoError(t, s.Update(10, []byte("hello")))
	require.NoError(t, s.Update(20, []byte("world")))

	assert.Equal(t, 2, s.Len())
	assert.False(t, s.IsEmpty())
	assert.True(t, s.Contains(10))
	assert.True(t, s.Contains(20))
	assert.False(t, s.Contains(30))

	leaf, ok := s.Get(10)
	require.True(t, ok)
	assert.Equal(t, testHasher().Digest([]byte("hello")), leaf)

	_, ok = s.Get(30)
	assert.False(t, ok)
}

func TestSparseRemove(t *testing.T) {
	s := newTestSparseTree(t, 8)
	require.NoError(t, s.Update(10, []byte("hello")))
	require.True(t, s.Contains(10))

	assert.True(t, s.Remove(10))
	assert.False(t, s.Contains(10))
	assert.False(t, s.Remove(10), "second remove must be a no-op")
}

// Depth 4, 16 slots: updating slot 0 moves the root away from the
// all-empty root, and removing it restores the empty root exactly.
func TestSparseRootComputation(t *testing.T) {
	s := newTestSparseTree(t, 4)
	emptyRoot := append([]byte{}, s.Root()...)

	require.NoError(t, s.Update(0, []byte("test")))
	assert.NotEqual(t, emptyRoot, s.Root())

	require.True(t, s.Remove(0))
	assert.Equal(t, emptyRoot, s.Root())
}

func TestSparseProofRoundTrip(t *testing.T) {
	s := newTestSparseTree(t, 8)
	require.NoError(t, s.Update(10, []byte("hello")))
	require.NoError(t, s.Update(20, []byte("world")))

	proof, err := s.GenerateProof(10)
	require.NoError(t, err)
	assert.Equal(t, int(s.Depth()), proof.Len(), "one step per level")
	assert.True(t, s.VerifyProof(proof, 10, []byte("hello")))
	assert.False(t, s.VerifyProof(proof, 10, []byte("wrong")))
	assert.False(t, s.VerifyProof(proof, 11, []byte("hello")), "index mismatch must fail closed")
}

func TestSparseNonMembership(t *testing.T) {
	s := newTestSparseTree(t, 8)
	require.NoError(t, s.Update(10, []byte("hello")))
	require.NoError(t, s.Update(20, []byte("world")))

	defaultHash := DefaultLeafHash(testHasher().Size())
	proof, err := s.GenerateProof(30)
	require.NoError(t, err)
	assert.Equal(t, int(s.Depth()), proof.Len(), "empty slots get full-length proofs")
	assert.True(t, s.VerifyProof(proof, 30, defaultHash))
	assert.True(t, s.VerifyAbsence(proof, 30))

	// A populated slot is not absent.
	proof, err = s.GenerateProof(10)
	require.NoError(t, err)
	assert.False(t, s.VerifyAbsence(proof, 10))
}

func TestSparseProofInvalidatedByMutation(t *testing.T) {
	s := newTestSparseTree(t, 8)
	require.NoError(t, s.Update(10, []byte("hello")))

	proof, err := s.GenerateProof(10)
	require.NoError(t, err)
	require.True(t, s.VerifyProof(proof, 10, []byte("hello")))

	// Verification is against the current root, not the root at
	// generation time.
	require.NoError(t, s.Update(11, []byte("neighbor")))
	assert.False(t, s.VerifyProof(proof, 10, []byte("hello")))
}

func TestSparseInvalidIndex(t *testing.T) {
	s := newTestSparseTree(t, 4)

	var invalidIndex InvalidIndexError
	err := s.Update(16, []byte("test"))
	require.ErrorAs(t, err, &invalidIndex)
	assert.Equal(t, uint64(16), invalidIndex.Index)
	assert.Equal(t, uint64(16), invalidIndex.Size)

	_, err = s.GenerateProof(16)
	require.ErrorAs(t, err, &invalidIndex)

	require.NoError(t, s.Update(15, []byte("test")))
}

func TestSparseFullDepth(t *testing.T) {
	s := newTestSparseTree(t, 64)
	last := ^uint64(0)
	require.NoError(t, s.Update(last, []byte("edge")))
	require.NoError(t, s.Update(0, []byte("origin")))

	proof, err := s.GenerateProof(last)
	require.NoError(t, err)
	assert.Equal(t, 64, proof.Len())
	assert.True(t, s.VerifyProof(proof, last, []byte("edge")))

	proof, err = s.GenerateProof(1)
	require.NoError(t, err)
	assert.True(t, s.VerifyAbsence(proof, 1))
}

func TestSparseLargeTree(t *testing.T) {
	s := newTestSparseTree(t, 20)
	indices := []uint64{0, 1000, 10000, 100000, 500000}
	for _, i := range indices {
		require.NoError(t, s.Update(i, []byte(fmt.Sprintf("value_%d", i))))
	}
	assert.Equal(t, len(indices), s.Len())

	for _, i := range indices {
		proof, err := s.GenerateProof(i)
		require.NoError(t, err)
		assert.True(t, s.VerifyProof(proof, i, []byte(fmt.Sprintf("value_%d", i))))
	}

	proof, err := s.GenerateProof(999)
	require.NoError(t, err)
	assert.True(t, s.VerifyAbsence(proof, 999))
}

func TestSparseLeafIndicesAndLeaves(t *testing.T) {
	s := newTestSparseTree(t, 8)
	require.NoError(t, s.Update(5, []byte("five")))
	require.NoError(t, s.Update(1, []byte("one")))
	require.NoError(t, s.Update(10, []byte("ten")))

	assert.Equal(t, []uint64{1, 5, 10}, s.LeafIndices())

	leaves := s.Leaves()
	require.Len(t, leaves, 3)
	assert.Equal(t, uint64(1), leaves[0].Index)
	assert.Equal(t, uint64(5), leaves[1].Index)
	assert.Equal(t, uint64(10), leaves[2].Index)
	assert.Equal(t, testHasher().Digest([]byte("one")), leaves[0].Hash)
}

func TestSparseClear(t *testing.T) {
	s := newTestSparseTree(t, 8)
	emptyRoot := append([]byte{}, s.Root()...)
	require.NoError(t, s.Update(10, []byte("hello")))
	require.NoError(t, s.Update(20, []byte("world")))
	require.Equal(t, 2, s.Len())

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.True(t, s.IsEmpty())
	assert.False(t, s.Contains(10))
	assert.Equal(t, emptyRoot, s.Root())
}

func TestSparseStats(t *testing.T) {
	s := newTestSparseTree(t, 8)
	require.NoError(t, s.Update(10, []byte("hello")))
	require.NoError(t, s.Update(20, []byte("world")))

	stats := s.Stats()
	assert.Equal(t, uint8(8), stats.Depth)
	assert.Equal(t, 2, stats.LeafCount)
	assert.Equal(t, uint64(256), stats.MaxLeaves)
	assert.Equal(t, testHasher().ID(), stats.HasherID)
	assert.NotEmpty(t, stats.RootHash)
	assert.NotZero(t, stats.CachedNodes, "stats forces root computation")
}
