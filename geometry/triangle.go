package geometry

import (
	"github.com/achilleasa/polaris-bvh/bvh"
	"github.com/achilleasa/polaris-bvh/types"
)

// Hits closer than this distance are discarded to avoid self-intersections.
const rayEpsilon = 1e-5

// Barycentric coordinates of a triangle hit. They are attached to the
// intersection payload.
type Barycentric struct {
	U, V float32
}

// A triangle primitive.
type Triangle struct {
	// Vertices in counter-clockwise order.
	Vertices [3]types.Vec3

	// Precomputed edges (v1-v0, v2-v0) and the unit face normal.
	edge1  types.Vec3
	edge2  types.Vec3
	normal types.Vec3

	bbox types.AABB
}

// Create new triangle primitive.
func NewTriangle(v0, v1, v2 types.Vec3) *Triangle {
	tri := &Triangle{
		Vertices: [3]types.Vec3{v0, v1, v2},
		edge1:    v1.Sub(v0),
		edge2:    v2.Sub(v0),
	}
	tri.normal = tri.edge1.Cross(tri.edge2).Normalize()
	tri.bbox = types.UnionPoint(types.NewAABB(v0, v1), v2)
	return tri
}

// Get the triangle bounding box.
func (tri *Triangle) BBox() types.AABB {
	return tri.bbox
}

// Get the unit face normal.
func (tri *Triangle) Normal() types.Vec3 {
	return tri.normal
}

// Get the triangle surface area.
func (tri *Triangle) Area() float32 {
	return 0.5 * tri.edge1.Cross(tri.edge2).Len()
}

// Intersect the triangle with a ray using the Möller-Trumbore algorithm. Both
// triangle faces are considered; degenerate triangles are never hit.
func (tri *Triangle) Intersect(ray types.Ray) bvh.Intersection {
	pvec := ray.Dir.Cross(tri.edge2)
	det := tri.edge1.Dot(pvec)
	if det > -1e-8 && det < 1e-8 {
		return bvh.Intersection{}
	}
	invDet := 1.0 / det

	tvec := ray.Origin.Sub(tri.Vertices[0])
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return bvh.Intersection{}
	}

	qvec := tvec.Cross(tri.edge1)
	v := ray.Dir.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return bvh.Intersection{}
	}

	t := tri.edge2.Dot(qvec) * invDet
	if t < rayEpsilon {
		return bvh.Intersection{}
	}

	return bvh.Intersection{
		Hit:       true,
		Distance:  t,
		Point:     ray.At(t),
		Normal:    tri.normal,
		Primitive: tri,
		Payload:   Barycentric{U: u, V: v},
	}
}
