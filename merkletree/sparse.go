package merkletree

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/merkle-sys/merkle-go/crypto/hasher"
)

// MaxSparseDepth bounds the sparse tree's index space to the 64-bit word
// used for addressing.
const MaxSparseDepth = 64

// DefaultLeafHash returns the canonical digest of an empty slot: a
// zero-filled digest of the given size. It is a fixed sentinel, not the
// hash of any input, and is equal across calls.
func DefaultLeafHash(size int) []byte {
	return make([]byte, size)
}

// nodeCoord addresses an interior node by its index within a level.
// Level 0 is the leaf level; node (i, l) has children (2i, l-1) and
// (2i+1, l-1), so the root is (0, depth).
type nodeCoord struct {
	index uint64
	level uint8
}

// SparseMerkleTree is a fixed-depth implicit binary tree over up to 2^64
// slots addressed by 64-bit index. Absent slots hold the canonical empty
// digest. Interior hashes are computed on demand and memoized; every
// mutation discards the memo wholesale and the next read recomputes from
// scratch. This trades read-after-write cost for simple, correctness-
// preserving invalidation.
//
// The zero value is not usable; construct with NewSparseMerkleTree.
// Methods are not safe for concurrent use: even read paths populate the
// memo, so callers sharing a tree must serialize writers and exclude
// readers around writes.
type SparseMerkleTree struct {
	leaves map[uint64][]byte
	nodes  map[nodeCoord][]byte
	depth  uint8
	hasher hasher.TreeHasher
	// defaults[l] is the digest of a fully empty subtree of height l;
	// defaults[0] is the canonical empty leaf digest.
	defaults  [][]byte
	rootCache []byte
}

// NewSparseMerkleTree returns an empty sparse tree of the given depth.
// Depth must be between 1 and 64.
func NewSparseMerkleTree(depth uint8, h hasher.TreeHasher) (*SparseMerkleTree, error) {
	if depth == 0 || depth > MaxSparseDepth {
		return nil, TreeConstructionError{
			Reason: fmt.Sprintf("invalid depth: %d, must be between 1 and %d", depth, MaxSparseDepth),
		}
	}
	defaults := make([][]byte, depth+1)
	defaults[0] = DefaultLeafHash(h.Size())
	for l := uint8(1); l <= depth; l++ {
		defaults[l] = h.HashPair(defaults[l-1], defaults[l-1])
	}
	return &SparseMerkleTree{
		leaves:   make(map[uint64][]byte),
		nodes:    make(map[nodeCoord][]byte),
		depth:    depth,
		hasher:   h,
		defaults: defaults,
	}, nil
}

func (t *SparseMerkleTree) checkIndex(index uint64) error {
	if t.depth < MaxSparseDepth && index >= 1<<t.depth {
		return InvalidIndexError{Index: index, Size: 1 << t.depth}
	}
	return nil
}

func (t *SparseMerkleTree) invalidate() {
	t.nodes = make(map[nodeCoord][]byte)
	t.rootCache = nil
}

// Update hashes value into a leaf digest and stores it at index. The
// whole interior memo and the cached root are discarded.
func (t *SparseMerkleTree) Update(index uint64, value []byte) error {
	if err := t.checkIndex(index); err != nil {
		return err
	}
	t.leaves[index] = t.hasher.Digest(value)
	t.invalidate()
	return nil
}

// Remove deletes the leaf at index and reports whether one was present.
// After removal the slot behaves as empty again.
func (t *SparseMerkleTree) Remove(index uint64) bool {
	if _, ok := t.leaves[index]; !ok {
		return false
	}
	delete(t.leaves, index)
	t.invalidate()
	return true
}

// Get returns the stored leaf digest at index, if any.
func (t *SparseMerkleTree) Get(index uint64) ([]byte, bool) {
	leaf, ok := t.leaves[index]
	return leaf, ok
}

// Contains reports whether a leaf is stored at index.
func (t *SparseMerkleTree) Contains(index uint64) bool {
	_, ok := t.leaves[index]
	return ok
}

// Root returns the digest committing to all 2^depth slots, computing and
// caching it if needed.
func (t *SparseMerkleTree) Root() []byte {
	if t.rootCache == nil {
		t.rootCache = t.nodeHash(0, t.depth)
	}
	return t.rootCache
}

// Len returns the number of populated slots.
func (t *SparseMerkleTree) Len() int {
	return len(t.leaves)
}

// IsEmpty reports whether no slot is populated.
func (t *SparseMerkleTree) IsEmpty() bool {
	return len(t.leaves) == 0
}

// Depth returns the configured tree depth.
func (t *SparseMerkleTree) Depth() uint8 {
	return t.depth
}

// nodeHash resolves the digest of the node at (index, level). Leaf-level
// lookups fall back to the empty sentinel; a subtree holding no leaves
// short-circuits to its precomputed per-level default, keeping the cost
// proportional to the populated slots instead of 2^level. Interior
// digests over populated subtrees are memoized per coordinate.
func (t *SparseMerkleTree) nodeHash(index uint64, level uint8) []byte {
	if level == 0 {
		if leaf, ok := t.leaves[index]; ok {
			return leaf
		}
		return t.defaults[0]
	}
	coord := nodeCoord{index: index, level: level}
	if h, ok := t.nodes[coord]; ok {
		return h
	}
	if !t.hasLeafUnder(index, level) {
		return t.defaults[level]
	}
	h := t.hasher.HashPair(
		t.nodeHash(index<<1, level-1),
		t.nodeHash(index<<1|1, level-1),
	)
	t.nodes[coord] = h
	return h
}

// hasLeafUnder reports whether any populated slot falls under the node
// at (index, level). Slot k is under that node exactly when k>>level
// equals index; a shift by 64 covers the whole index space.
func (t *SparseMerkleTree) hasLeafUnder(index uint64, level uint8) bool {
	for k := range t.leaves {
		if k>>level == index {
			return true
		}
	}
	return false
}

// GenerateProof walks from the slot upward: at each level the sibling is
// index XOR 1 and the parent is index >> 1. Exactly depth steps are
// produced whether or not the slot is populated, so the same proof shape
// serves membership and non-membership.
func (t *SparseMerkleTree) GenerateProof(index uint64) (*MerkleProof, error) {
	if err := t.checkIndex(index); err != nil {
		return nil, err
	}
	steps := make([]ProofStep, 0, t.depth)
	current := index
	for level := uint8(0); level < t.depth; level++ {
		direction := Left
		if current&1 == 0 {
			direction = Right
		}
		steps = append(steps, ProofStep{
			Hash:      t.nodeHash(current^1, level),
			Direction: direction,
		})
		current >>= 1
	}
	return NewMerkleProof(index, steps), nil
}

// VerifyProof checks that value occupies index under the tree's current
// root. It fails closed (false, never an error) when the proof's index
// does not match.
//
// The canonical empty digest is committed verbatim: when value is
// byte-equal to it, it is used as the leaf digest without re-hashing,
// so non-membership proofs verify against the same sentinel the tree
// stores for absent slots.
//
// The comparison is against the root at verification time; mutations
// between generation and verification invalidate the proof.
func (t *SparseMerkleTree) VerifyProof(proof *MerkleProof, index uint64, value []byte) bool {
	if proof.LeafIndex != index {
		return false
	}
	leafHash := t.hasher.Digest(value)
	if bytes.Equal(value, t.defaults[0]) {
		leafHash = t.defaults[0]
	}
	return bytes.Equal(proof.ComputeRoot(t.hasher, leafHash), t.Root())
}

// VerifyAbsence checks that the slot at index is empty under the tree's
// current root.
func (t *SparseMerkleTree) VerifyAbsence(proof *MerkleProof, index uint64) bool {
	return t.VerifyProof(proof, index, t.defaults[0])
}

// LeafIndices returns the populated slot indices in ascending order.
func (t *SparseMerkleTree) LeafIndices() []uint64 {
	indices := make([]uint64, 0, len(t.leaves))
	for index := range t.leaves {
		indices = append(indices, index)
	}
	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })
	return indices
}

// SparseLeaf is a populated slot: its index and stored digest.
type SparseLeaf struct {
	Index uint64
	Hash  []byte
}

// Leaves returns the populated slots in ascending index order.
func (t *SparseMerkleTree) Leaves() []SparseLeaf {
	leaves := make([]SparseLeaf, 0, len(t.leaves))
	for index, hash := range t.leaves {
		leaves = append(leaves, SparseLeaf{Index: index, Hash: hash})
	}
	sort.Slice(leaves, func(i, j int) bool { return leaves[i].Index < leaves[j].Index })
	return leaves
}

// Clear removes all leaves and cached hashes.
func (t *SparseMerkleTree) Clear() {
	t.leaves = make(map[uint64][]byte)
	t.invalidate()
}

// SparseTreeStats describes a sparse tree for diagnostics.
type SparseTreeStats struct {
	Depth       uint8
	LeafCount   int
	MaxLeaves   uint64
	CachedNodes int
	HasherID    string
	RootHash    string
}

// Stats returns diagnostic information about the tree. MaxLeaves
// saturates at the largest uint64 for a depth-64 tree. Computing the
// root hex forces root computation if it is not cached.
func (t *SparseMerkleTree) Stats() SparseTreeStats {
	maxLeaves := ^uint64(0)
	if t.depth < MaxSparseDepth {
		maxLeaves = 1 << t.depth
	}
	return SparseTreeStats{
		Depth:       t.depth,
		LeafCount:   len(t.leaves),
		MaxLeaves:   maxLeaves,
		CachedNodes: len(t.nodes),
		HasherID:    t.hasher.ID(),
		RootHash:    hex.EncodeToString(t.Root()),
	}
}
