package types

import "math"

// An axis-aligned bounding box defined by its min and max corners.
//
// Boxes are expected to satisfy Min[i] <= Max[i] on every axis. The only
// exception is the value returned by EmptyAABB which acts as the identity
// element for Union.
type AABB struct {
	Min Vec3
	Max Vec3
}

// Create a box enclosing the two points.
func NewAABB(p0, p1 Vec3) AABB {
	return AABB{
		Min: MinVec3(p0, p1),
		Max: MaxVec3(p0, p1),
	}
}

// Return an inverted box that does not enclose any point. Folding other
// boxes into it via Union yields their exact union.
func EmptyAABB() AABB {
	return AABB{
		Min: Vec3{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32},
		Max: Vec3{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32},
	}
}

// Returns true if the box does not enclose any point.
func (b AABB) IsEmpty() bool {
	return b.Min[0] > b.Max[0] || b.Min[1] > b.Max[1] || b.Min[2] > b.Max[2]
}

// Get the box center.
func (b AABB) Centroid() Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Get the vector from the min to the max corner.
func (b AABB) Diagonal() Vec3 {
	return b.Max.Sub(b.Min)
}

// Get the index of the axis with the largest extent.
func (b AABB) MaxExtent() int {
	d := b.Diagonal()
	switch {
	case d[0] > d[1] && d[0] > d[2]:
		return XAxis
	case d[1] > d[2]:
		return YAxis
	default:
		return ZAxis
	}
}

// Calculate the union of two boxes.
func Union(b1, b2 AABB) AABB {
	return AABB{
		Min: MinVec3(b1.Min, b2.Min),
		Max: MaxVec3(b1.Max, b2.Max),
	}
}

// Expand the box so that it encloses point p.
func UnionPoint(b AABB, p Vec3) AABB {
	return AABB{
		Min: MinVec3(b.Min, p),
		Max: MaxVec3(b.Max, p),
	}
}

// Calculate the reciprocal direction and the per-axis negative direction flags
// that are required by IntersectP. These only depend on the ray, so callers
// testing a ray against many boxes should compute them once.
//
// The flags are derived from the reciprocal so that a -0 direction component
// (which yields a -Inf reciprocal) is handled consistently.
func SlabParams(ray Ray) (invDir Vec3, dirIsNeg [3]bool) {
	invDir = ray.Dir.Inverse()
	dirIsNeg = [3]bool{invDir[0] < 0, invDir[1] < 0, invDir[2] < 0}
	return invDir, dirIsNeg
}

// Test whether the ray intersects the box using the slab method. The invDir
// and dirIsNeg arguments must be obtained via SlabParams.
//
// The test accepts rays that touch the box (entry distance equal to the exit
// distance) and rejects boxes that lie entirely behind the ray origin.
// Infinite reciprocals produced by zero direction components propagate
// through the comparisons; NaN slab distances (an origin lying exactly on a
// slab plane with a zero direction component) never narrow the interval.
func (b AABB) IntersectP(ray Ray, invDir Vec3, dirIsNeg [3]bool) bool {
	tEnter := float32(math.Inf(-1))
	tExit := float32(math.Inf(1))

	for axis := XAxis; axis <= ZAxis; axis++ {
		t0 := (b.Min[axis] - ray.Origin[axis]) * invDir[axis]
		t1 := (b.Max[axis] - ray.Origin[axis]) * invDir[axis]
		if dirIsNeg[axis] {
			t0, t1 = t1, t0
		}

		if t0 > tEnter {
			tEnter = t0
		}
		if t1 < tExit {
			tExit = t1
		}
	}

	return tEnter <= tExit && tExit >= 0
}
