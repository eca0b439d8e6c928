package bvh

import (
	"cmp"
	"time"

	"github.com/achilleasa/polaris-bvh/types"
	"golang.org/x/exp/slices"
)

// Stats collected while building a tree.
type Stats struct {
	Primitives int

	// Internal and leaf node counts.
	Nodes int
	Leafs int

	MaxDepth  int
	BuildTime time.Duration
}

// A primitive together with its cached bounds.
type buildItem struct {
	prim     Primitive
	bbox     types.AABB
	centroid types.Vec3
}

type builder struct {
	// Work list; sub-ranges are sorted in place while partitioning so that
	// each leaf's primitive ends up at a fixed slot.
	items []buildItem

	// Bvh nodes stored as a contiguous list
	nodes []Node

	stats Stats
}

// Build a tree over prims. The returned primitive list is a reordered copy of
// prims; leaf PrimIndex values refer to it. The root node, if any, is stored
// at index 0.
func build(prims []Primitive) ([]Node, []Primitive, Stats) {
	b := &builder{
		items: make([]buildItem, len(prims)),
		nodes: make([]Node, 0, 2*len(prims)),
		stats: Stats{
			Primitives: len(prims),
		},
	}
	if len(prims) == 0 {
		return nil, nil, b.stats
	}

	start := time.Now()
	for index, prim := range prims {
		bbox := prim.BBox()
		b.items[index] = buildItem{
			prim:     prim,
			bbox:     bbox,
			centroid: bbox.Centroid(),
		}
	}

	b.partition(0, len(b.items), 0, 0)

	ordered := make([]Primitive, len(b.items))
	for index, item := range b.items {
		ordered[index] = item.prim
	}
	b.stats.BuildTime = time.Since(start)

	return b.nodes, ordered, b.stats
}

// Partition the work list range [start, end) and return the node index. The
// axis counter selects the split axis (dim % 3) and is incremented for each
// level below a split.
func (b *builder) partition(start, end, dim, depth int) int32 {
	if depth > b.stats.MaxDepth {
		b.stats.MaxDepth = depth
	}

	switch end - start {
	case 1:
		return b.createLeaf(start)
	case 2:
		// Both items become leafs; the axis counter is not advanced.
		nodeIndex := b.createNode()
		left := b.partition(start, start+1, dim, depth+1)
		right := b.partition(start+1, end, dim, depth+1)
		b.linkChildren(nodeIndex, left, right)
		return nodeIndex
	}

	// Sort by centroid along the selected axis, keeping the input order for
	// ties so that builds are deterministic.
	axis := dim % 3
	slices.SortStableFunc(b.items[start:end], func(i1, i2 buildItem) int {
		return cmp.Compare(i1.centroid[axis], i2.centroid[axis])
	})

	mid := start + (end-start)/2

	nodeIndex := b.createNode()
	left := b.partition(start, mid, dim+1, depth+1)
	right := b.partition(mid, end, dim+1, depth+1)
	b.linkChildren(nodeIndex, left, right)
	return nodeIndex
}

// Append a leaf for the work list item at itemIndex and return its index.
func (b *builder) createLeaf(itemIndex int) int32 {
	nodeIndex := int32(len(b.nodes))
	b.nodes = append(b.nodes, newLeaf(b.items[itemIndex].bbox, itemIndex))
	b.stats.Leafs++
	return nodeIndex
}

// Append a placeholder internal node; its children and bounds are filled
// in by linkChildren once both subtrees are built.
func (b *builder) createNode() int32 {
	nodeIndex := int32(len(b.nodes))
	b.nodes = append(b.nodes, Node{
		BBox:      types.EmptyAABB(),
		Left:      nilIndex,
		Right:     nilIndex,
		PrimIndex: nilIndex,
	})
	b.stats.Nodes++
	return nodeIndex
}

// Attach child nodes; the node bounds become the union of the child bounds.
func (b *builder) linkChildren(nodeIndex, left, right int32) {
	node := &b.nodes[nodeIndex]
	node.SetChildNodes(left, right)
	node.BBox = types.Union(b.nodes[left].BBox, b.nodes[right].BBox)
}
