package merkletree

import (
	"testing"

	"github.com/merkle-sys/merkle-go/crypto/hasher"
	"github.com/merkle-sys/merkle-go/crypto/hasher/sha256"
)

func testItems(ss ...string) [][]byte {
	items := make([][]byte, len(ss))
	for i, s := range ss {
		items[i] = []byte(s)
	}
	return items
}

func newTestTree(t *testing.T, ss ...string) *MerkleTree {
	m, err := NewMerkleTree(testItems(ss...), sha256.New())
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func newTestSparseTree(t *testing.T, depth uint8) *SparseMerkleTree {
	s, err := NewSparseMerkleTree(depth, sha256.New())
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func testHasher() hasher.TreeHasher {
	return sha256.New()
}
