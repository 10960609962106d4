package render

import (
	"github.com/taigrr/neon/pkg/math3d"
)

// Plane is the set of points p with Normal·p + D = 0. Points with a
// positive distance lie on the side the normal points to.
type Plane struct {
	Normal math3d.Vec3
	D      float32
}

func (p *Plane) normalize() {
	l := p.Normal.Magnitude()
	if l == 0 {
		return
	}
	p.Normal.Scale(1 / l)
	p.D /= l
}

// Distance returns the signed distance from the plane to q.
func (p Plane) Distance(q math3d.Vec3) float32 {
	return p.Normal.Dot(q) + p.D
}

// Frustum holds the six view-volume planes with normals pointing inward,
// ordered left, right, bottom, top, near, far.
type Frustum [6]Plane

// FrustumFromMatrix extracts the planes of a view-projection matrix by
// adding and subtracting its rows (Gribb/Hartmann).
func FrustumFromMatrix(m math3d.Mat4) Frustum {
	row := func(i int) math3d.Vec4 {
		return math3d.V4(m[i], m[i+4], m[i+8], m[i+12])
	}
	w := row(3)

	var f Frustum
	for i := range 3 {
		r := row(i)
		for k, v := range [2]math3d.Vec4{math3d.AddVec4(w, r), math3d.SubVec4(w, r)} {
			p := Plane{Normal: v.Vec3(), D: v[3]}
			p.normalize()
			f[2*i+k] = p
		}
	}
	return f
}

// ContainsPoint reports whether q is inside every plane.
func (f Frustum) ContainsPoint(q math3d.Vec3) bool {
	for _, p := range f {
		if p.Distance(q) < 0 {
			return false
		}
	}
	return true
}

// IntersectAABB reports whether any part of b may be inside the frustum.
// For each plane only the corner furthest along the normal is tested.
func (f Frustum) IntersectAABB(b AABB) bool {
	for _, p := range f {
		var far math3d.Vec3
		for i := range far {
			far[i] = b.Min[i]
			if p.Normal[i] >= 0 {
				far[i] = b.Max[i]
			}
		}
		if p.Distance(far) < 0 {
			return false
		}
	}
	return true
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max math3d.Vec3
}

// Bounds returns the smallest box holding every point. It returns the zero
// box for no points.
func Bounds(points ...math3d.Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	b := AABB{Min: points[0], Max: points[0]}
	for _, q := range points[1:] {
		b.Min.Min(q)
		b.Max.Max(q)
	}
	return b
}

// Center returns the middle of the box.
func (b AABB) Center() math3d.Vec3 {
	return math3d.LerpVec3(b.Min, b.Max, 0.5)
}

// Frustum returns the camera's current view frustum.
func (c *Camera) Frustum() Frustum {
	return FrustumFromMatrix(c.ViewProjectionMatrix())
}
