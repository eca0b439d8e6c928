package geometry

import (
	"math"

	"github.com/achilleasa/polaris-bvh/bvh"
	"github.com/achilleasa/polaris-bvh/types"
)

// A sphere primitive.
type Sphere struct {
	Center types.Vec3
	Radius float32
}

// Create new sphere primitive.
func NewSphere(center types.Vec3, radius float32) *Sphere {
	return &Sphere{
		Center: center,
		Radius: float32(math.Abs(float64(radius))),
	}
}

// Get the sphere bounding box.
func (s *Sphere) BBox() types.AABB {
	r := types.XYZ(s.Radius, s.Radius, s.Radius)
	return types.AABB{
		Min: s.Center.Sub(r),
		Max: s.Center.Add(r),
	}
}

// Intersect the sphere with a ray. If the ray origin lies inside the sphere
// the exit point is reported.
func (s *Sphere) Intersect(ray types.Ray) bvh.Intersection {
	oc := ray.Origin.Sub(s.Center)
	a := ray.Dir.Dot(ray.Dir)
	if a == 0 {
		return bvh.Intersection{}
	}
	halfB := oc.Dot(ray.Dir)
	c := oc.Dot(oc) - s.Radius*s.Radius

	disc := halfB*halfB - a*c
	if disc < 0 {
		return bvh.Intersection{}
	}
	sqrtDisc := float32(math.Sqrt(float64(disc)))

	t := (-halfB - sqrtDisc) / a
	if t < rayEpsilon {
		t = (-halfB + sqrtDisc) / a
		if t < rayEpsilon {
			return bvh.Intersection{}
		}
	}

	point := ray.At(t)
	return bvh.Intersection{
		Hit:       true,
		Distance:  t,
		Point:     point,
		Normal:    point.Sub(s.Center).Normalize(),
		Primitive: s,
	}
}
