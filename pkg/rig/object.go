package rig

import (
	"github.com/taigrr/neon/pkg/math3d"
	"github.com/taigrr/neon/pkg/transform"
)

// ObjectSize is the box scale of a grabbable object and its satellites.
var ObjectSize = math3d.V3(0.25, 0.25, 0.25)

// GrabRadius is the effector distance within which an object can be
// picked up.
const GrabRadius = 0.25

// Object is a small body the arm can pick up. While held it follows the
// effector.
type Object struct {
	Position math3d.Vec3
	Held     bool
}

// NewObject returns an object resting at pos.
func NewObject(pos math3d.Vec3) *Object {
	return &Object{Position: pos}
}

// InReach reports whether effector is closer than radius to the object.
func (o *Object) InReach(effector math3d.Vec3, radius float32) bool {
	return o.Position.Distance(effector) < radius
}

// Grab picks the object up if effector is in reach and snaps it onto the
// effector. A held object follows the effector regardless of distance.
// Grab reports whether the object is held.
func (o *Object) Grab(effector math3d.Vec3, radius float32) bool {
	if o.Held || o.InReach(effector, radius) {
		o.Held = true
		o.Position = effector
	}
	return o.Held
}

// Release drops the object where it is.
func (o *Object) Release() {
	o.Held = false
}

// Segment returns the object's drawable box.
func (o *Object) Segment() Segment {
	t := transform.New(transform.Translate{V: o.Position})
	return newSegment("object", t.Mat(), o.Position, ObjectSize)
}

// Satellites returns two markers orbiting the object at phase radians: one
// circling the X axis at distance 1 and one circling the Z axis at distance
// 1. Both orbits share the object's translation, and the second is built by
// popping the first orbit's ops off the same op-list.
func (o *Object) Satellites(phase float32) [2]Segment {
	t := transform.New(transform.Translate{V: o.Position})

	t.Push(transform.RotateX{Rad: phase}, transform.Translate{V: math3d.V3(0, 1, 0)})
	m := t.Mat()
	x := newSegment("satellite-x", m, m.Transform(math3d.Vec3{}), ObjectSize)

	t.Pop()
	t.Pop()
	t.Push(transform.RotateZ{Rad: phase}, transform.Translate{V: math3d.V3(1, 0, 0)})
	m = t.Mat()
	z := newSegment("satellite-z", m, m.Transform(math3d.Vec3{}), ObjectSize)

	return [2]Segment{x, z}
}
