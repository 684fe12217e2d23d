/*
Package merkletree implements hash-based commitment structures and the
compact proofs that go with them.

Binary Merkle Tree

MerkleTree is a dense binary hash tree over an ordered sequence of items.
The position of an item is semantically significant: it is the index the
proof is generated for. The tree is built bottom-up by pairing adjacent
nodes left to right; a level with an odd node count pairs its last node
with itself. Once built, the tree is immutable and may be shared across
concurrent readers without synchronization.

Sparse Merkle Tree

SparseMerkleTree is a fixed-depth implicit binary tree addressed by a
64-bit index. Slots that were never written implicitly hold a well-known
all-zero digest, which makes proofs of non-membership possible: a proof
for an empty slot verifies against the canonical empty digest. Interior
node hashes are computed lazily and memoized; any mutation discards the
memo and the cached root. The sparse tree is not safe for concurrent use;
callers needing shared access must serialize writers and exclude readers
around writes.

Both structures are generic over the hash capability defined in
crypto/hasher and commit to their contents through it alone.
*/
package merkletree
