package math3d

import (
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// These tests cross-check against mathgl, which shares the column-major
// [16]float32 layout.

func fromMGL(m mgl32.Mat4) Mat4 {
	return Mat4(m)
}

func TestOraclePerspective(t *testing.T) {
	tests := []struct {
		name                     string
		fovy, aspect, near, far float32
	}{
		{"square", ToRadians(90), 1, 0.1, 100},
		{"wide", ToRadians(60), 16.0 / 9.0, 0.5, 50},
		{"narrow", ToRadians(30), 0.75, 1, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got Mat4
			got.PerspectiveNO(tc.fovy, tc.aspect, tc.near, tc.far)
			want := fromMGL(mgl32.Perspective(tc.fovy, tc.aspect, tc.near, tc.far))
			if !closeMat4(got, want, 1e-5) {
				t.Errorf("got %v, want %v", got, want)
			}
		})
	}
}

func TestOracleFrustumOrtho(t *testing.T) {
	var f, o Mat4
	f.Frustum(-2, 1, -1, 3, 0.5, 20)
	o.OrthoNO(-2, 1, -1, 3, 0.5, 20)

	if want := fromMGL(mgl32.Frustum(-2, 1, -1, 3, 0.5, 20)); !closeMat4(f, want, 1e-5) {
		t.Errorf("Frustum = %v, want %v", f, want)
	}
	if want := fromMGL(mgl32.Ortho(-2, 1, -1, 3, 0.5, 20)); !closeMat4(o, want, 1e-5) {
		t.Errorf("Ortho = %v, want %v", o, want)
	}
}

func TestOracleLookAt(t *testing.T) {
	r := rand.New(rand.NewPCG(13, 14))
	for range 50 {
		eye := randVec3(r).Clone().Scale(10)
		center := randVec3(r)
		if eye.Distance(center) < 0.5 {
			continue
		}

		var got Mat4
		got.LookAt(*eye, center, Up())
		want := fromMGL(mgl32.LookAtV(mgl32.Vec3(*eye), mgl32.Vec3(center), mgl32.Vec3{0, 1, 0}))
		if !closeMat4(got, want, 1e-4) {
			t.Fatalf("LookAt(%v, %v) = %v, want %v", *eye, center, got, want)
		}
	}
}

func TestOracleRotate(t *testing.T) {
	r := rand.New(rand.NewPCG(15, 16))
	for range 50 {
		axis := NormalizeVec3(randVec3(r))
		if axis.SquaredMagnitude() == 0 {
			continue
		}
		rad := r.Float32()*8 - 4

		got := Identity4()
		got.Rotate(rad, axis)
		want := fromMGL(mgl32.HomogRotate3D(rad, mgl32.Vec3(axis)))
		if !closeMat4(got, want, 1e-5) {
			t.Fatalf("Rotate(%v, %v) = %v, want %v", rad, axis, got, want)
		}
	}
}

func TestOracleComposeAndInvert(t *testing.T) {
	r := rand.New(rand.NewPCG(17, 18))
	for range 50 {
		tr := randVec3(r)
		sc := V3(0.5+r.Float32(), 0.5+r.Float32(), 0.5+r.Float32())
		rad := r.Float32() * 3

		got := Identity4()
		got.Translate(tr).RotateY(rad).Scale(sc)

		want := mgl32.Translate3D(tr[0], tr[1], tr[2]).
			Mul4(mgl32.HomogRotate3DY(rad)).
			Mul4(mgl32.Scale3D(sc[0], sc[1], sc[2]))
		if !closeMat4(got, fromMGL(want), 1e-5) {
			t.Fatalf("compose = %v, want %v", got, want)
		}

		if d, wd := got.Determinant(), want.Det(); !near(d, wd, 1e-4) {
			t.Fatalf("Determinant = %v, want %v", d, wd)
		}

		inv, ok := InverseMat4(got)
		if !ok {
			t.Fatal("InverseMat4 reported singular")
		}
		if wantInv := fromMGL(want.Inv()); !closeMat4(inv, wantInv, 1e-4) {
			t.Fatalf("inverse = %v, want %v", inv, wantInv)
		}
	}
}
