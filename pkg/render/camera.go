package render

import (
	"math"

	"github.com/taigrr/neon/pkg/math3d"
)

// Camera is a perspective camera placed at Eye looking at Target.
type Camera struct {
	Eye    math3d.Vec3
	Target math3d.Vec3
	Up     math3d.Vec3

	FOV    float32 // vertical, radians
	Aspect float32 // width / height
	Near   float32
	Far    float32

	view      math3d.Mat4
	proj      math3d.Mat4
	viewProj  math3d.Mat4
	viewDirty bool
	projDirty bool
	vpDirty   bool
}

// NewCamera returns a camera at eye looking at target with +Y up, a 60°
// field of view and a square aspect.
func NewCamera(eye, target math3d.Vec3) *Camera {
	return &Camera{
		Eye:       eye,
		Target:    target,
		Up:        math3d.Up(),
		FOV:       math.Pi / 3,
		Aspect:    1,
		Near:      0.1,
		Far:       100,
		viewDirty: true,
		projDirty: true,
		vpDirty:   true,
	}
}

// SetEye moves the camera.
func (c *Camera) SetEye(eye math3d.Vec3) {
	c.Eye = eye
	c.viewDirty, c.vpDirty = true, true
}

// LookAt points the camera at target.
func (c *Camera) LookAt(target math3d.Vec3) {
	c.Target = target
	c.viewDirty, c.vpDirty = true, true
}

// SetFOV sets the vertical field of view in radians.
func (c *Camera) SetFOV(fov float32) {
	c.FOV = fov
	c.projDirty, c.vpDirty = true, true
}

// SetAspect sets the width / height ratio.
func (c *Camera) SetAspect(aspect float32) {
	c.Aspect = aspect
	c.projDirty, c.vpDirty = true, true
}

// SetClipPlanes sets the near and far planes. A far of +Inf gives an
// infinite projection.
func (c *Camera) SetClipPlanes(near, far float32) {
	c.Near = near
	c.Far = far
	c.projDirty, c.vpDirty = true, true
}

// Orbit rotates the eye around the target by rad about the up axis.
func (c *Camera) Orbit(rad float32) {
	var rot math3d.Mat4
	if rot.FromRotation(rad, c.Up) == nil {
		return
	}
	offset := math3d.SubVec3(c.Eye, c.Target)
	c.SetEye(math3d.AddVec3(c.Target, rot.TransformDir(offset)))
}

// Forward returns the unit direction from the eye to the target.
func (c *Camera) Forward() math3d.Vec3 {
	return math3d.NormalizeVec3(math3d.SubVec3(c.Target, c.Eye))
}

// ViewMatrix returns the world-to-camera matrix.
func (c *Camera) ViewMatrix() math3d.Mat4 {
	if c.viewDirty {
		c.view.LookAt(c.Eye, c.Target, c.Up)
		c.viewDirty = false
	}
	return c.view
}

// ProjectionMatrix returns the OpenGL-style perspective matrix.
func (c *Camera) ProjectionMatrix() math3d.Mat4 {
	if c.projDirty {
		c.proj.PerspectiveNO(c.FOV, c.Aspect, c.Near, c.Far)
		c.projDirty = false
	}
	return c.proj
}

// ViewProjectionMatrix returns projection · view.
func (c *Camera) ViewProjectionMatrix() math3d.Mat4 {
	if c.vpDirty {
		c.viewProj = math3d.MulMat4(c.ProjectionMatrix(), c.ViewMatrix())
		c.vpDirty = false
	}
	return c.viewProj
}

// Clip transforms a world point to clip space.
func (c *Camera) Clip(p math3d.Vec3) math3d.Vec4 {
	return c.ViewProjectionMatrix().TransformVec4(math3d.V4FromV3(p, 1))
}

// WorldToScreen projects a world point onto a width × height viewport with
// y pointing down. visible is false for points outside the view volume.
func (c *Camera) WorldToScreen(p math3d.Vec3, width, height int) (x, y, depth float32, visible bool) {
	clip := c.Clip(p)
	if clip[3] <= 0 {
		return 0, 0, 0, false
	}
	ndc := clip.PerspectiveDivide()
	for _, v := range ndc {
		if v < -1 || v > 1 {
			return 0, 0, 0, false
		}
	}
	x, y = ndcToScreen(ndc, width, height)
	return x, y, ndc[2], true
}

func ndcToScreen(ndc math3d.Vec3, width, height int) (x, y float32) {
	x = (ndc[0] + 1) * 0.5 * float32(width)
	y = (1 - ndc[1]) * 0.5 * float32(height)
	return x, y
}
