package reader

import (
	"github.com/achilleasa/polaris-bvh/bvh"
	"github.com/achilleasa/polaris-bvh/geometry"
)

// A named group of triangles.
type Mesh struct {
	Name      string
	Triangles []*geometry.Triangle
}

// The geometry parsed from a scene file.
type Scene struct {
	Meshes []*Mesh
}

// Get the total number of triangles in the scene.
func (sc *Scene) TriangleCount() int {
	count := 0
	for _, mesh := range sc.Meshes {
		count += len(mesh.Triangles)
	}
	return count
}

// Get all scene triangles as a flat primitive list suitable for building a
// BVH. The scene must outlive any accelerator built from the list.
func (sc *Scene) Primitives() []bvh.Primitive {
	prims := make([]bvh.Primitive, 0, sc.TriangleCount())
	for _, mesh := range sc.Meshes {
		for _, tri := range mesh.Triangles {
			prims = append(prims, tri)
		}
	}
	return prims
}
