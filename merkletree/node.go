package merkletree

// merkleNode is a node of the dense binary tree. A leaf carries only its
// digest; an interior node additionally owns its two children. A node
// never has exactly one child.
//
// An unmatched trailing node on an odd level backs both children of its
// parent. The tree is read-only after construction, so the sharing is
// never observable.
type merkleNode struct {
	hash  []byte
	left  *merkleNode
	right *merkleNode
}

func newLeafNode(hash []byte) *merkleNode {
	return &merkleNode{hash: hash}
}

func newInteriorNode(hash []byte, left, right *merkleNode) *merkleNode {
	return &merkleNode{hash: hash, left: left, right: right}
}

func (n *merkleNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}
