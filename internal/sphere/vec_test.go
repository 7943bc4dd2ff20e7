package sphere

import (
	"math"
	"testing"
)

func TestVec3Norm(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
		want float64
	}{
		{"zero", Vec3{0, 0, 0}, 0},
		{"unit x", Vec3{1, 0, 0}, 1},
		{"unit z", Vec3{0, 0, 1}, 1},
		{"3-4-5", Vec3{3, 4, 0}, 5},
		{"negative", Vec3{-3, -4, 0}, 5},
		{"3D", Vec3{1, 2, 2}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Norm()
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Norm() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec3Normalized(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
		want Vec3
	}{
		{"unit x", Vec3{5, 0, 0}, Vec3{1, 0, 0}},
		{"diagonal", Vec3{1, 1, 0}, Vec3{1 / math.Sqrt(2), 1 / math.Sqrt(2), 0}},
		{"zero", Vec3{0, 0, 0}, Vec3{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Normalized()
			if !vecClose(got, tt.want, 1e-12) {
				t.Errorf("Normalized() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec3DotCross(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	if got := a.Dot(b); math.Abs(got-32) > 1e-12 {
		t.Errorf("Dot() = %v, want 32", got)
	}

	cross := a.Cross(b)
	want := Vec3{-3, 6, -3}
	if !vecClose(cross, want, 1e-12) {
		t.Errorf("Cross() = %v, want %v", cross, want)
	}

	// Cross product is orthogonal to both inputs.
	if math.Abs(cross.Dot(a)) > 1e-12 || math.Abs(cross.Dot(b)) > 1e-12 {
		t.Errorf("Cross() not orthogonal to inputs: %v", cross)
	}
}

func TestMat3Identity(t *testing.T) {
	id := Identity()
	v := Vec3{0.3, -1.7, 2.5}
	if got := id.MulVec(v); got != v {
		t.Errorf("Identity().MulVec(%v) = %v", v, got)
	}
	if got := id.Det(); math.Abs(got-1) > 1e-15 {
		t.Errorf("Identity().Det() = %v, want 1", got)
	}
}

func TestMat3MulTranspose(t *testing.T) {
	// A rotation composed with its transpose is the identity.
	r := RotationFromAxial(Vec3{0.2, -0.4, 1.1})
	p := r.Mul(r.Transpose())

	id := Identity()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(p[i][j]-id[i][j]) > 1e-12 {
				t.Fatalf("R*R^T [%d][%d] = %v, want %v", i, j, p[i][j], id[i][j])
			}
		}
	}
}

func vecClose(a, b Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}
