package bvh

import (
	"time"

	"github.com/achilleasa/polaris-bvh/log"
	"github.com/achilleasa/polaris-bvh/types"
)

// Accelerator is a bounding volume hierarchy over a fixed set of primitives.
//
// The tree is built once by New and is read-only afterwards, so Intersect may
// be called concurrently as long as the primitives' own Intersect methods are
// safe for concurrent use. The accelerator keeps references to the supplied
// primitives; it does not copy them.
type Accelerator struct {
	logger log.Logger
	opts   Options

	// Bvh nodes stored as a contiguous list; the root is at index 0.
	nodes []Node

	// Primitives in leaf order.
	prims []Primitive

	stats Stats
}

// Build an accelerator for the given primitives. The prims slice itself is
// left untouched. An empty list yields an accelerator without a tree whose
// queries always miss.
func New(prims []Primitive, opts Options) *Accelerator {
	a := &Accelerator{
		logger: log.New("bvh"),
		opts:   opts.normalize(),
	}

	if a.opts.SplitMethod != SplitNaive {
		a.logger.Debugf("split method %q is not implemented; using %q", a.opts.SplitMethod, SplitNaive)
	}
	if a.opts.MaxPrimsInNode > 1 {
		a.logger.Debugf("ignoring max primitives per leaf (%d); leafs hold a single primitive", a.opts.MaxPrimsInNode)
	}

	if len(prims) == 0 {
		a.logger.Info("no primitives supplied; skipping BVH generation")
		return a
	}

	a.nodes, a.prims, a.stats = build(prims)

	hrs, mins, secs := splitDuration(a.stats.BuildTime)
	a.logger.Noticef(
		"BVH generation complete: time taken: %d hrs, %d mins, %d secs (%d ms); primitives: %d, nodes: %d, leafs: %d, maxDepth: %d",
		hrs, mins, secs, a.stats.BuildTime.Nanoseconds()/1e6,
		a.stats.Primitives, a.stats.Nodes, a.stats.Leafs, a.stats.MaxDepth,
	)
	return a
}

// Intersect the ray with the tree and return the closest hit.
func (a *Accelerator) Intersect(ray types.Ray) Intersection {
	if len(a.nodes) == 0 {
		return Intersection{}
	}

	q := newRayQuery(ray)
	return a.findIntersection(0, &q)
}

// Get the bounding box of all primitives. Returns an empty box if the
// accelerator holds no primitives.
func (a *Accelerator) WorldBound() types.AABB {
	if len(a.nodes) == 0 {
		return types.EmptyAABB()
	}
	return a.nodes[0].BBox
}

// Get the build statistics.
func (a *Accelerator) Stats() Stats {
	return a.stats
}

// Get the (normalized) options the accelerator was built with.
func (a *Accelerator) Options() Options {
	return a.opts
}

// Get the number of primitives in the tree.
func (a *Accelerator) Len() int {
	return len(a.prims)
}

// Get the primitive referenced by a leaf node.
func (a *Accelerator) Primitive(leaf Node) Primitive {
	if leaf.PrimIndex == nilIndex {
		return nil
	}
	return a.prims[leaf.PrimIndex]
}

// Walk visits all tree nodes in depth-first order (node, left subtree, right
// subtree). Returning false from the visitor skips the node's subtree.
func (a *Accelerator) Walk(visitor func(node Node, depth int) bool) {
	if len(a.nodes) == 0 {
		return
	}
	a.walk(0, 0, visitor)
}

func (a *Accelerator) walk(nodeIndex int32, depth int, visitor func(Node, int) bool) {
	node := a.nodes[nodeIndex]
	if !visitor(node, depth) || node.IsLeaf() {
		return
	}
	a.walk(node.Left, depth+1, visitor)
	a.walk(node.Right, depth+1, visitor)
}

// Split a duration into whole hours, minutes and seconds.
func splitDuration(d time.Duration) (hrs, mins, secs int) {
	total := int(d / time.Second)
	hrs = total / 3600
	mins = total/60 - hrs*60
	secs = total - hrs*3600 - mins*60
	return hrs, mins, secs
}
