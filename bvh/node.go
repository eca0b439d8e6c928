package bvh

import "github.com/achilleasa/polaris-bvh/types"

// Sentinel index used for absent children or primitives.
const nilIndex int32 = -1

// Node is an entry in the flat BVH node list owned by an Accelerator.
//
// Leaf nodes have both child indices set to -1 and PrimIndex pointing into the
// accelerator's primitive list. Internal nodes have exactly two children and
// PrimIndex set to -1. Child indices always point forward in the node list.
type Node struct {
	BBox types.AABB

	Left  int32
	Right int32

	PrimIndex int32
}

// Create a leaf node.
func newLeaf(bbox types.AABB, primIndex int) Node {
	return Node{
		BBox:      bbox,
		Left:      nilIndex,
		Right:     nilIndex,
		PrimIndex: int32(primIndex),
	}
}

// Returns true if this is a leaf node.
func (n *Node) IsLeaf() bool {
	return n.Left == nilIndex && n.Right == nilIndex
}

// Set left and right child node indices.
func (n *Node) SetChildNodes(left, right int32) {
	n.Left = left
	n.Right = right
	n.PrimIndex = nilIndex
}
