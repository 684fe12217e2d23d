package merkletree

import (
	"encoding/hex"

	"github.com/merkle-sys/merkle-go/crypto/hasher"
)

// MerkleTree is a dense binary hash tree over an ordered item sequence.
// The structure is immutable after construction and safe for concurrent
// readers. Returned digests reference internal state and must not be
// modified by the caller.
type MerkleTree struct {
	root   *merkleNode
	leaves [][]byte
	hasher hasher.TreeHasher
}

// NewMerkleTree hashes every item into a leaf digest and builds the tree
// bottom-up. It returns ErrEmptyData when items is empty.
//
// A level with an odd node count pairs its last node with itself. This
// keeps every level's pairing total without reordering data, at the cost
// of a known second-preimage caveat for adversarially chosen leaf counts;
// changing it would change every committed root, so it stays as is.
func NewMerkleTree(items [][]byte, h hasher.TreeHasher) (*MerkleTree, error) {
	if len(items) == 0 {
		return nil, ErrEmptyData
	}
	leaves := make([][]byte, len(items))
	for i, item := range items {
		leaves[i] = h.Digest(item)
	}
	return &MerkleTree{
		root:   buildTree(leaves, h),
		leaves: leaves,
		hasher: h,
	}, nil
}

// NewMerkleTreeFromLeaves builds a tree directly over pre-hashed leaf
// digests, skipping the leaf hashing step. The caller is responsible for
// supplying true leaf hashes rather than raw data; raw data here would
// blur the line between leaf and interior digests.
func NewMerkleTreeFromLeaves(leaves [][]byte, h hasher.TreeHasher) (*MerkleTree, error) {
	if len(leaves) == 0 {
		return nil, ErrEmptyData
	}
	owned := make([][]byte, len(leaves))
	for i, leaf := range leaves {
		owned[i] = append([]byte{}, leaf...)
	}
	return &MerkleTree{
		root:   buildTree(owned, h),
		leaves: owned,
		hasher: h,
	}, nil
}

func buildTree(leaves [][]byte, h hasher.TreeHasher) *merkleNode {
	level := make([]*merkleNode, len(leaves))
	for i, leaf := range leaves {
		level[i] = newLeafNode(leaf)
	}
	for len(level) > 1 {
		next := make([]*merkleNode, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			left := level[i]
			right := left // unmatched trailing node is combined with itself
			if i+1 < len(level) {
				right = level[i+1]
			}
			next = append(next, newInteriorNode(h.HashPair(left.hash, right.hash), left, right))
		}
		level = next
	}
	return level[0]
}

// Root returns the digest committing to the whole tree.
func (m *MerkleTree) Root() []byte {
	return m.root.hash
}

// Len returns the number of leaves.
func (m *MerkleTree) Len() int {
	return len(m.leaves)
}

// LeafHash returns the leaf digest at the given index.
func (m *MerkleTree) LeafHash(index int) ([]byte, error) {
	if index < 0 || index >= len(m.leaves) {
		return nil, InvalidIndexError{Index: uint64(index), Size: uint64(len(m.leaves))}
	}
	return m.leaves[index], nil
}

// Leaves returns all leaf digests in insertion order.
func (m *MerkleTree) Leaves() [][]byte {
	return m.leaves
}

// Hasher returns the hash capability the tree commits through.
func (m *MerkleTree) Hasher() hasher.TreeHasher {
	return m.hasher
}

// Height returns the number of interior levels above the leaves,
// which is also the step count of every proof the tree generates.
func (m *MerkleTree) Height() int {
	height := 0
	for n := len(m.leaves); n > 1; n = (n + 1) / 2 {
		height++
	}
	return height
}

// GenerateProof collects the sibling digests along the path from the
// root down to the leaf at the given index. The walk narrows an index
// range at every interior node: a node at the given level spans up to
// 2^level slots, so its left child covers min(2^(level-1), size) of
// them. A range smaller than that only occurs inside a self-duplication
// chain, where both children are the same node and the walk descends
// left. Steps are collected root-to-leaf and reversed, since
// verification folds them leaf-to-root.
func (m *MerkleTree) GenerateProof(index int) (*MerkleProof, error) {
	if index < 0 || index >= len(m.leaves) {
		return nil, InvalidIndexError{Index: uint64(index), Size: uint64(len(m.leaves))}
	}

	var steps []ProofStep
	node := m.root
	start, size := 0, len(m.leaves)
	for level := m.Height(); level > 0; level-- {
		half := 1 << (level - 1)
		if half > size {
			half = size
		}
		if index < start+half {
			steps = append(steps, ProofStep{Hash: node.right.hash, Direction: Right})
			node = node.left
			size = half
		} else {
			steps = append(steps, ProofStep{Hash: node.left.hash, Direction: Left})
			node = node.right
			start += half
			size -= half
		}
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return NewMerkleProof(uint64(index), steps), nil
}

// VerifyProof recomputes the root from leafData through the proof and
// compares it byte-wise against the expected root. A mismatch is a
// definite false, never an error.
func (m *MerkleTree) VerifyProof(proof *MerkleProof, leafData, root []byte) bool {
	return proof.Verify(m.hasher, leafData, root)
}

// VerifyProofAgainstRoot verifies the proof against this tree's own root.
func (m *MerkleTree) VerifyProofAgainstRoot(proof *MerkleProof, leafData []byte) bool {
	return m.VerifyProof(proof, leafData, m.Root())
}

// TreeStats describes a built tree for diagnostics.
type TreeStats struct {
	LeafCount  int
	TreeHeight int
	HasherID   string
	RootHash   string
}

// Stats returns diagnostic information about the tree.
func (m *MerkleTree) Stats() TreeStats {
	return TreeStats{
		LeafCount:  len(m.leaves),
		TreeHeight: m.Height(),
		HasherID:   m.hasher.ID(),
		RootHash:   hex.EncodeToString(m.Root()),
	}
}
