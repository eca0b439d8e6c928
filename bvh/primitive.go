package bvh

import "github.com/achilleasa/polaris-bvh/types"

// The Primitive interface is implemented by all renderable shapes that can be
// partitioned by the BVH builder.
//
// BBox must be deterministic for a given primitive and return a box whose
// min corner is <= its max corner on every axis; malformed boxes are not
// validated and lead to undefined query results. Intersect must not mutate
// the primitive if the accelerator is to be queried from multiple goroutines.
type Primitive interface {
	// Get the primitive's axis-aligned bounding box.
	BBox() types.AABB

	// Intersect the primitive with a ray and return the closest hit in front
	// of the ray origin.
	Intersect(ray types.Ray) Intersection
}

// Intersection describes the result of a ray query. The zero value represents
// a miss.
type Intersection struct {
	Hit bool

	// Parametric distance along the ray.
	Distance float32

	// Hit point and surface normal.
	Point  types.Vec3
	Normal types.Vec3

	// The primitive that was hit.
	Primitive Primitive

	// Primitive-specific shading data (e.g. barycentric coordinates). It is
	// passed through unchanged.
	Payload interface{}
}

// Return the closest of two intersections. If both intersections report the
// same distance the second one wins.
func closest(i1, i2 Intersection) Intersection {
	switch {
	case i1.Hit && i2.Hit:
		if i1.Distance < i2.Distance {
			return i1
		}
		return i2
	case i1.Hit:
		return i1
	case i2.Hit:
		return i2
	}
	return Intersection{}
}

// Intersect the ray with every primitive in the list and return the closest
// hit. This is the reference result that an accelerator must reproduce.
func LinearIntersect(prims []Primitive, ray types.Ray) Intersection {
	var isect Intersection
	for _, prim := range prims {
		isect = closest(isect, prim.Intersect(ray))
	}
	return isect
}
