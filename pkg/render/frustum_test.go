package render

import (
	"testing"

	"github.com/taigrr/neon/pkg/math3d"
)

func TestPlaneDistance(t *testing.T) {
	p := Plane{Normal: math3d.V3(0, 3, 4), D: 10}
	p.normalize()

	tests := []struct {
		name  string
		point math3d.Vec3
		want  float32
	}{
		{"origin", math3d.V3(0, 0, 0), 2},
		{"below", math3d.V3(0, -2, 0), 0.8},
		{"along normal", math3d.V3(0, 0.6, 0.8), 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.Distance(tc.point); !near(got, tc.want, 1e-5) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFrustumContainsPoint(t *testing.T) {
	f := testCamera().Frustum()

	tests := []struct {
		name  string
		point math3d.Vec3
		want  bool
	}{
		{"target", math3d.V3(0, 0, 0), true},
		{"near the near plane", math3d.V3(0, 0, 4.85), true},
		{"behind near plane", math3d.V3(0, 0, 4.95), false},
		{"beyond far plane", math3d.V3(0, 0, -96), false},
		{"left of view", math3d.V3(-10, 0, 0), false},
		{"above view", math3d.V3(0, 10, 0), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := f.ContainsPoint(tc.point); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFrustumIntersectAABB(t *testing.T) {
	f := testCamera().Frustum()

	tests := []struct {
		name string
		box  AABB
		want bool
	}{
		{"around target", AABB{math3d.V3(-1, -1, -1), math3d.V3(1, 1, 1)}, true},
		{"partly visible", AABB{math3d.V3(2, -1, -1), math3d.V3(20, 1, 1)}, true},
		{"behind", AABB{math3d.V3(-1, -1, 6), math3d.V3(1, 1, 8)}, false},
		{"off to the left", AABB{math3d.V3(-30, -1, -1), math3d.V3(-20, 1, 1)}, false},
		{"encloses frustum", AABB{math3d.V3(-500, -500, -500), math3d.V3(500, 500, 500)}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := f.IntersectAABB(tc.box); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestBounds(t *testing.T) {
	b := Bounds(math3d.V3(1, -2, 3), math3d.V3(-1, 4, 0), math3d.V3(0, 0, 5))
	if b.Min != math3d.V3(-1, -2, 0) || b.Max != math3d.V3(1, 4, 5) {
		t.Errorf("bounds = %v..%v", b.Min, b.Max)
	}
	if got := b.Center(); got != math3d.V3(0, 1, 2.5) {
		t.Errorf("center = %v, want (0, 1, 2.5)", got)
	}
	if (Bounds() != AABB{}) {
		t.Error("bounds of no points not zero")
	}
}

func BenchmarkFrustumIntersectAABB(b *testing.B) {
	f := testCamera().Frustum()
	box := AABB{math3d.V3(-1, -1, -1), math3d.V3(1, 1, 1)}
	for b.Loop() {
		_ = f.IntersectAABB(box)
	}
}
