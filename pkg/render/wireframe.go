package render

import (
	"github.com/chewxy/math32"
	"github.com/taigrr/neon/pkg/math3d"
)

// Wireframe draws lines in world space through a camera into a
// framebuffer.
type Wireframe struct {
	camera *Camera
	fb     *Framebuffer
}

// NewWireframe returns a wireframe renderer drawing into fb through camera.
func NewWireframe(camera *Camera, fb *Framebuffer) *Wireframe {
	return &Wireframe{camera: camera, fb: fb}
}

// clipPlanes returns the signed distances of v to the six view-volume
// planes in clip space. v is inside when all are non-negative.
func clipPlanes(v math3d.Vec4) [6]float32 {
	w := v[3]
	return [6]float32{w + v[0], w - v[0], w + v[1], w - v[1], w + v[2], w - v[2]}
}

// clipLine clips the segment a-b to the view volume in homogeneous clip
// space. ok is false when nothing of the segment is visible.
func clipLine(a, b math3d.Vec4) (ca, cb math3d.Vec4, ok bool) {
	t0, t1 := float32(0), float32(1)
	da, db := clipPlanes(a), clipPlanes(b)
	for i := range da {
		switch {
		case da[i] < 0 && db[i] < 0:
			return ca, cb, false
		case da[i] < 0:
			t0 = max(t0, da[i]/(da[i]-db[i]))
		case db[i] < 0:
			t1 = min(t1, da[i]/(da[i]-db[i]))
		}
	}
	if t0 > t1 {
		return ca, cb, false
	}
	ca, cb = a, b
	if t0 > 0 {
		ca = math3d.LerpVec4(a, b, t0)
	}
	if t1 < 1 {
		cb = math3d.LerpVec4(a, b, t1)
	}
	if ca[3] <= 0 || cb[3] <= 0 {
		return ca, cb, false
	}
	return ca, cb, true
}

func (w *Wireframe) screen(clip math3d.Vec4) (int, int) {
	x, y := ndcToScreen(clip.PerspectiveDivide(), w.fb.Width, w.fb.Height)
	return int(math32.Floor(x)), int(math32.Floor(y))
}

// DrawLine3D draws the visible part of the segment p1-p2.
func (w *Wireframe) DrawLine3D(p1, p2 math3d.Vec3, c Color) {
	a, b, ok := clipLine(w.camera.Clip(p1), w.camera.Clip(p2))
	if !ok {
		return
	}
	x0, y0 := w.screen(a)
	x1, y1 := w.screen(b)
	w.fb.DrawLine(x0, y0, x1, y1, c)
}

var boxCorners = [8]math3d.Vec3{
	{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
}

var boxEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0}, // back
	{4, 5}, {5, 6}, {6, 7}, {7, 4}, // front
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// DrawBox draws the edges of the [-1, 1] cube mapped through model. It
// reports false when the box lies outside the view frustum and nothing was
// drawn.
func (w *Wireframe) DrawBox(model math3d.Mat4, c Color) bool {
	var world [8]math3d.Vec3
	for i, p := range boxCorners {
		world[i] = model.Transform(p)
	}
	if !w.camera.Frustum().IntersectAABB(Bounds(world[:]...)) {
		return false
	}
	for _, e := range boxEdges {
		w.DrawLine3D(world[e[0]], world[e[1]], c)
	}
	return true
}

// DrawAxes draws the world axes from the origin, X red, Y green and Z
// blue.
func (w *Wireframe) DrawAxes(length float32) {
	var o math3d.Vec3
	w.DrawLine3D(o, math3d.V3(length, 0, 0), ColorRed)
	w.DrawLine3D(o, math3d.V3(0, length, 0), ColorGreen)
	w.DrawLine3D(o, math3d.V3(0, 0, length), ColorBlue)
}

// DrawGrid draws a size × size grid on the XZ plane at height y.
func (w *Wireframe) DrawGrid(y, size, step float32, c Color) {
	if step <= 0 {
		return
	}
	half := size / 2
	for i := -half; i <= half; i += step {
		w.DrawLine3D(math3d.V3(i, y, -half), math3d.V3(i, y, half), c)
		w.DrawLine3D(math3d.V3(-half, y, i), math3d.V3(half, y, i), c)
	}
}

// DrawPoint marks p with a cross of the given size along each axis.
func (w *Wireframe) DrawPoint(p math3d.Vec3, size float32, c Color) {
	h := size / 2
	for axis := range 3 {
		var d math3d.Vec3
		d[axis] = h
		w.DrawLine3D(math3d.SubVec3(p, d), math3d.AddVec3(p, d), c)
	}
}
