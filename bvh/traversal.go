package bvh

import "github.com/achilleasa/polaris-bvh/types"

// Per-ray data shared by all slab tests of a single query.
type rayQuery struct {
	ray      types.Ray
	invDir   types.Vec3
	dirIsNeg [3]bool
}

func newRayQuery(ray types.Ray) rayQuery {
	invDir, dirIsNeg := types.SlabParams(ray)
	return rayQuery{
		ray:      ray,
		invDir:   invDir,
		dirIsNeg: dirIsNeg,
	}
}

// Find the closest intersection in the subtree rooted at nodeIndex.
//
// Subtrees whose bounds are missed by the ray are pruned. Otherwise both
// children are always searched, without near/far ordering, and the closer of
// the two hits is returned.
func (a *Accelerator) findIntersection(nodeIndex int32, q *rayQuery) Intersection {
	node := &a.nodes[nodeIndex]
	if !node.BBox.IntersectP(q.ray, q.invDir, q.dirIsNeg) {
		return Intersection{}
	}

	if node.IsLeaf() {
		return a.prims[node.PrimIndex].Intersect(q.ray)
	}

	left := a.findIntersection(node.Left, q)
	right := a.findIntersection(node.Right, q)
	return closest(left, right)
}
