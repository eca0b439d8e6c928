package types

import (
	"math"
	"testing"
)

func TestUnion(t *testing.T) {
	b1 := NewAABB(XYZ(0, 0, 0), XYZ(1, 1, 1))
	b2 := NewAABB(XYZ(-1, 0.5, 2), XYZ(0.5, 3, 4))

	exp := AABB{Min: XYZ(-1, 0, 0), Max: XYZ(1, 3, 4)}
	if got := Union(b1, b2); got != exp {
		t.Fatalf("expected union to be %v; got %v", exp, got)
	}
	if got := Union(b2, b1); got != exp {
		t.Fatalf("expected union to be commutative; got %v", got)
	}
	if got := Union(b1, b1); got != b1 {
		t.Fatalf("expected union with self to be a no-op; got %v", got)
	}

	b3 := NewAABB(XYZ(5, 5, 5), XYZ(6, 6, 6))
	if Union(Union(b1, b2), b3) != Union(b1, Union(b2, b3)) {
		t.Fatal("expected union to be associative")
	}
}

func TestEmptyAABBIsUnionIdentity(t *testing.T) {
	empty := EmptyAABB()
	if !empty.IsEmpty() {
		t.Fatal("expected empty box to report IsEmpty")
	}

	b := NewAABB(XYZ(-3, 2, 1), XYZ(4, 5, 6))
	if got := Union(empty, b); got != b {
		t.Fatalf("expected union with empty box to be %v; got %v", b, got)
	}
	if got := Union(b, empty); got != b {
		t.Fatalf("expected union with empty box to be %v; got %v", b, got)
	}
	if b.IsEmpty() {
		t.Fatal("expected non-degenerate box not to be empty")
	}

	p := XYZ(1, 2, 3)
	if got := UnionPoint(empty, p); got.Min != p || got.Max != p {
		t.Fatalf("expected point box at %v; got %v", p, got)
	}
}

func TestNewAABBOrdersCorners(t *testing.T) {
	b := NewAABB(XYZ(1, -1, 5), XYZ(-1, 1, 2))
	if b.Min != XYZ(-1, -1, 2) || b.Max != XYZ(1, 1, 5) {
		t.Fatalf("expected min/max corners to be sorted; got %v", b)
	}
}

func TestCentroidAndExtent(t *testing.T) {
	b := NewAABB(XYZ(0, -2, 4), XYZ(10, 2, 6))
	if exp, got := XYZ(5, 0, 5), b.Centroid(); got != exp {
		t.Fatalf("expected centroid %v; got %v", exp, got)
	}
	if exp, got := XYZ(10, 4, 2), b.Diagonal(); got != exp {
		t.Fatalf("expected diagonal %v; got %v", exp, got)
	}
	if exp, got := XAxis, b.MaxExtent(); got != exp {
		t.Fatalf("expected max extent axis %d; got %d", exp, got)
	}
}

func TestIntersectP(t *testing.T) {
	var zero float32
	negZero := float32(math.Copysign(0, -1))
	box := NewAABB(XYZ(-1, -1, -1), XYZ(1, 1, 1))

	type spec struct {
		origin Vec3
		dir    Vec3
		expHit bool
	}
	specs := []spec{
		// Straight through
		{XYZ(0, 0, -5), XYZ(0, 0, 1), true},
		{XYZ(0, 0, 5), XYZ(0, 0, -1), true},
		{XYZ(-5, -5, -5), XYZ(1, 1, 1), true},
		// Origin inside the box
		{XYZ(0, 0, 0), XYZ(1, 0.3, -0.2), true},
		// Pointing away from the box
		{XYZ(0, 0, 5), XYZ(0, 0, 1), false},
		// Passing beside the box
		{XYZ(3, 0, -5), XYZ(0, 0, 1), false},
		{XYZ(-5, 3, 0), XYZ(1, 0.1, 0), false},
		// Grazing a face (touching counts as a hit)
		{XYZ(1, 0, -5), XYZ(0, 0, 1), true},
		{XYZ(-5, 1, 1), XYZ(1, zero, zero), true},
		// Axis aligned rays with zero components
		{XYZ(0.5, 0.5, -5), XYZ(zero, zero, 1), true},
		{XYZ(0.5, 1.5, -5), XYZ(zero, zero, 1), false},
		{XYZ(0.5, 0.5, 5), XYZ(negZero, negZero, -1), true},
		{XYZ(0.5, -1.5, 5), XYZ(negZero, negZero, -1), false},
	}

	for index, s := range specs {
		ray := NewRay(s.origin, s.dir)
		invDir, dirIsNeg := SlabParams(ray)
		if got := box.IntersectP(ray, invDir, dirIsNeg); got != s.expHit {
			t.Fatalf("[spec %d] expected IntersectP to return %t; got %t", index, s.expHit, got)
		}
	}
}

func TestIntersectPEmptyBox(t *testing.T) {
	ray := NewRay(XYZ(0, 0, 0), XYZ(1, 1, 1))
	invDir, dirIsNeg := SlabParams(ray)
	if EmptyAABB().IntersectP(ray, invDir, dirIsNeg) {
		t.Fatal("expected empty box never to be hit")
	}
}

func TestSlabParams(t *testing.T) {
	negZero := float32(math.Copysign(0, -1))
	invDir, dirIsNeg := SlabParams(NewRay(XYZ(0, 0, 0), XYZ(-2, 4, negZero)))

	if invDir[0] != -0.5 || invDir[1] != 0.25 {
		t.Fatalf("expected reciprocal (-0.5, 0.25, -Inf); got %v", invDir)
	}
	if exp := [3]bool{true, false, true}; dirIsNeg != exp {
		t.Fatalf("expected sign flags %v; got %v", exp, dirIsNeg)
	}
}
