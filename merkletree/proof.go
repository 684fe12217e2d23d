package merkletree

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/merkle-sys/merkle-go/crypto/hasher"
)

// ProofDirection tells on which side a sibling digest sits relative to
// the node being authenticated at that level.
type ProofDirection byte

const (
	// Left means the sibling is the left child; the proven node is on
	// the right.
	Left ProofDirection = iota
	// Right means the sibling is the right child; the proven node is on
	// the left.
	Right
)

func (d ProofDirection) String() string {
	if d == Left {
		return "L"
	}
	return "R"
}

// ProofStep is one level of a Merkle proof: a sibling digest and the
// side it sits on.
type ProofStep struct {
	Hash      []byte         `json:"hash"`
	Direction ProofDirection `json:"direction"`
}

// MerkleProof authenticates that one leaf occupies one index under a
// committed root. Steps are ordered from the leaf's immediate sibling up
// to the step adjacent to the root. A proof for a single-leaf tree has
// no steps. MerkleProof is pure data plus recomputation; it performs no
// I/O and holds no reference to the tree it came from.
type MerkleProof struct {
	LeafIndex uint64      `json:"leaf_index"`
	Steps     []ProofStep `json:"steps"`
}

// NewMerkleProof assembles a proof from a leaf index and its steps in
// leaf-to-root order.
func NewMerkleProof(leafIndex uint64, steps []ProofStep) *MerkleProof {
	return &MerkleProof{LeafIndex: leafIndex, Steps: steps}
}

// Len returns the number of steps.
func (p *MerkleProof) Len() int {
	return len(p.Steps)
}

// IsEmpty reports whether the proof has no steps, which is only true for
// the proof of a single-leaf tree.
func (p *MerkleProof) IsEmpty() bool {
	return len(p.Steps) == 0
}

// ComputeRoot folds the steps over the given leaf digest: a Left step
// combines (sibling, current), a Right step combines (current, sibling).
// The result is the root the proof commits to.
func (p *MerkleProof) ComputeRoot(h hasher.TreeHasher, leafHash []byte) []byte {
	current := leafHash
	for _, step := range p.Steps {
		if step.Direction == Left {
			current = h.HashPair(step.Hash, current)
		} else {
			current = h.HashPair(current, step.Hash)
		}
	}
	return current
}

// Verify hashes leafData and checks the recomputed root against the
// expected root. Any divergence, down to a single bit, is false.
func (p *MerkleProof) Verify(h hasher.TreeHasher, leafData, root []byte) bool {
	return p.VerifyWithLeafHash(h, h.Digest(leafData), root)
}

// VerifyWithLeafHash is Verify for a pre-computed leaf digest.
func (p *MerkleProof) VerifyWithLeafHash(h hasher.TreeHasher, leafHash, root []byte) bool {
	return bytes.Equal(p.ComputeRoot(h, leafHash), root)
}

// String renders the proof in the stable debug form
// "index:<N>, steps:[<D>:<hex>, ...]". This is a human-readable
// rendering, not a canonical wire format.
func (p *MerkleProof) String() string {
	steps := make([]string, len(p.Steps))
	for i, step := range p.Steps {
		steps[i] = step.Direction.String() + ":" + hex.EncodeToString(step.Hash)
	}
	return fmt.Sprintf("index:%d, steps:[%s]", p.LeafIndex, strings.Join(steps, ", "))
}
