package bvh

import (
	"math"
	"math/rand"

	"github.com/achilleasa/polaris-bvh/types"
)

// A box shaped primitive that optionally counts Intersect calls.
type boxPrim struct {
	id    int
	bbox  types.AABB
	calls *int
}

func (p *boxPrim) BBox() types.AABB {
	return p.bbox
}

func (p *boxPrim) Intersect(ray types.Ray) Intersection {
	if p.calls != nil {
		*p.calls++
	}

	tEnter, tExit := slabInterval(p.bbox, ray)
	if tEnter > tExit || tExit < 0 {
		return Intersection{}
	}

	t := tEnter
	if t < 0 {
		t = tExit
	}
	return Intersection{
		Hit:       true,
		Distance:  t,
		Point:     ray.At(t),
		Primitive: p,
		Payload:   p.id,
	}
}

func slabInterval(bbox types.AABB, ray types.Ray) (tEnter, tExit float32) {
	tEnter = float32(math.Inf(-1))
	tExit = float32(math.Inf(1))
	for axis := 0; axis < 3; axis++ {
		inv := 1.0 / ray.Dir[axis]
		t0 := (bbox.Min[axis] - ray.Origin[axis]) * inv
		t1 := (bbox.Max[axis] - ray.Origin[axis]) * inv
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tEnter {
			tEnter = t0
		}
		if t1 < tExit {
			tExit = t1
		}
	}
	return tEnter, tExit
}

// Create a box primitive centered at c with the given half size.
func makeBoxPrim(id int, c types.Vec3, halfSize float32) *boxPrim {
	h := types.XYZ(halfSize, halfSize, halfSize)
	return &boxPrim{
		id:   id,
		bbox: types.NewAABB(c.Sub(h), c.Add(h)),
	}
}

func randomPrims(rng *rand.Rand, count int) []Primitive {
	prims := make([]Primitive, count)
	for index := range prims {
		c := types.XYZ(
			rng.Float32()*100-50,
			rng.Float32()*100-50,
			rng.Float32()*100-50,
		)
		prims[index] = makeBoxPrim(index, c, 0.1+rng.Float32()*2)
	}
	return prims
}

func randomRay(rng *rand.Rand) types.Ray {
	origin := types.XYZ(
		rng.Float32()*160-80,
		rng.Float32()*160-80,
		rng.Float32()*160-80,
	)
	// Aim roughly at the scene so that a fair share of the rays hit something.
	target := types.XYZ(
		rng.Float32()*60-30,
		rng.Float32()*60-30,
		rng.Float32()*60-30,
	)
	return types.NewRay(origin, target.Sub(origin).Normalize())
}
