package types

import (
	"math"
	"testing"
)

func TestMinMaxVec3(t *testing.T) {
	v1 := XYZ(1, -2, 3)
	v2 := XYZ(-1, 5, 3)

	if exp, got := XYZ(-1, -2, 3), MinVec3(v1, v2); got != exp {
		t.Fatalf("expected min to be %v; got %v", exp, got)
	}
	if exp, got := XYZ(1, 5, 3), MaxVec3(v1, v2); got != exp {
		t.Fatalf("expected max to be %v; got %v", exp, got)
	}
}

func TestVectorOps(t *testing.T) {
	v := XYZ(1, 2, 3)

	if exp, got := XYZ(2, 4, 6), v.Add(v); got != exp {
		t.Fatalf("expected %v; got %v", exp, got)
	}
	if exp, got := XYZ(0, 0, 0), v.Sub(v); got != exp {
		t.Fatalf("expected %v; got %v", exp, got)
	}
	if exp, got := XYZ(1, 4, 9), v.MulVec(v); got != exp {
		t.Fatalf("expected %v; got %v", exp, got)
	}
	if exp, got := float32(14), v.Dot(v); got != exp {
		t.Fatalf("expected dot product to be %f; got %f", exp, got)
	}
	if exp, got := XYZ(0, 0, 1), XYZ(1, 0, 0).Cross(XYZ(0, 1, 0)); got != exp {
		t.Fatalf("expected cross product to be %v; got %v", exp, got)
	}
	if exp, got := float32(3), v.MaxComponent(); got != exp {
		t.Fatalf("expected max component to be %f; got %f", exp, got)
	}

	n := XYZ(0, 3, 4).Normalize()
	if exp := XYZ(0, 0.6, 0.8); math.Abs(float64(n.Sub(exp).Len())) > 1e-6 {
		t.Fatalf("expected normalized vector to be %v; got %v", exp, n)
	}
	if exp, got := XYZ(0, 0, 0), XYZ(0, 0, 0).Normalize(); got != exp {
		t.Fatalf("expected zero vector to stay unchanged; got %v", got)
	}
}

func TestInverse(t *testing.T) {
	var zero float32
	inv := XYZ(2, zero, -4).Inverse()

	if inv[0] != 0.5 || inv[2] != -0.25 {
		t.Fatalf("expected finite reciprocals (0.5, -0.25); got (%f, %f)", inv[0], inv[2])
	}
	if !math.IsInf(float64(inv[1]), 1) {
		t.Fatalf("expected reciprocal of +0 to be +Inf; got %f", inv[1])
	}

	negZero := float32(math.Copysign(0, -1))
	inv = XYZ(negZero, 1, 1).Inverse()
	if !math.IsInf(float64(inv[0]), -1) {
		t.Fatalf("expected reciprocal of -0 to be -Inf; got %f", inv[0])
	}
}

func TestRayAt(t *testing.T) {
	r := NewRay(XYZ(1, 1, 1), XYZ(0, 0, -2))
	if exp, got := XYZ(1, 1, -3), r.At(2); got != exp {
		t.Fatalf("expected point %v; got %v", exp, got)
	}
}
