// Package rig poses an articulated arm built from a chain of revolute
// joints. Every joint appends its ops to one shared transform.Transform, so
// each segment inherits the transforms of the joints before it.
package rig

import (
	"errors"
	"fmt"
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/neon/pkg/math3d"
	"github.com/taigrr/neon/pkg/transform"
)

// ErrJoint is returned for a joint index outside the rig.
var ErrJoint = errors.New("joint index out of range")

// Axis is the axis a joint rotates around.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "x"
	}
}

func (a Axis) op(rad float32) transform.Op {
	switch a {
	case AxisY:
		return transform.RotateY{Rad: rad}
	case AxisZ:
		return transform.RotateZ{Rad: rad}
	default:
		return transform.RotateX{Rad: rad}
	}
}

// JointSpec describes one joint: translate by Pre to the pivot, rotate
// around Axis, then translate by Post to the segment center. Size scales the
// unit box drawn for the segment and does not affect later joints.
type JointSpec struct {
	Name  string
	Pre   math3d.Vec3
	Axis  Axis
	Post  math3d.Vec3
	Size  math3d.Vec3
	Angle float32 // rest angle in radians
}

// ops returns the joint's contribution to the chain at angle rad.
func (s JointSpec) ops(rad float32) []transform.Op {
	return []transform.Op{
		transform.Translate{V: s.Pre},
		s.Axis.op(rad),
		transform.Translate{V: s.Post},
	}
}

// Joint tracks a joint angle as it springs toward its target.
type Joint struct {
	Spec   JointSpec
	Angle  float64
	Target float64

	velocity float64
	spring   harmonica.Spring
}

func newJoint(fps int, spec JointSpec) Joint {
	return Joint{
		Spec:   spec,
		Angle:  float64(spec.Angle),
		Target: float64(spec.Angle),
		// Frequency 6.0 with damping 1.0 settles quickly without overshoot.
		spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0),
	}
}

// Update advances the joint by one frame.
func (j *Joint) Update() {
	j.Angle, j.velocity = j.spring.Update(j.Angle, j.velocity, j.Target)
}

const settleTolerance = 1e-3

// Settled reports whether the joint has come to rest on its target.
func (j *Joint) Settled() bool {
	return math.Abs(j.Angle-j.Target) < settleTolerance && math.Abs(j.velocity) < settleTolerance
}

// Rig is a base position followed by a chain of joints and a tip offset
// marking the end effector in the last joint's frame. Mount ops, if any,
// place the whole rig in the world ahead of the base translation.
type Rig struct {
	Mount  []transform.Op
	Base   math3d.Vec3
	Tip    math3d.Vec3
	Joints []Joint

	cache *transform.Cache
}

// New returns a rig whose joint springs run at fps frames per second.
func New(fps int, base math3d.Vec3, specs ...JointSpec) *Rig {
	r := &Rig{Base: base}
	for _, s := range specs {
		r.Joints = append(r.Joints, newJoint(fps, s))
	}
	return r
}

// SegmentSize is the box scale of each segment of DefaultArm.
var SegmentSize = math3d.V3(0.125, 0.5, 0.125)

// DefaultArm returns the three-segment arm: a shoulder that swings the
// first segment up from the base, an elbow and a wrist folding back down.
func DefaultArm(fps int) *Rig {
	r := New(fps, math3d.V3(0, -0.25, -1),
		JointSpec{
			Name: "shoulder",
			Axis: AxisX,
			Post: math3d.V3(0, 0.75, 0),
			Size: SegmentSize,
		},
		JointSpec{
			Name:  "elbow",
			Pre:   math3d.V3(0, 0.45, 0),
			Axis:  AxisX,
			Post:  math3d.V3(0, -0.45, 0),
			Size:  SegmentSize,
			Angle: -24.0 / 36 * math.Pi,
		},
		JointSpec{
			Name:  "wrist",
			Pre:   math3d.V3(0, -0.3, 0),
			Axis:  AxisX,
			Post:  math3d.V3(0, -0.3, 0),
			Size:  SegmentSize,
			Angle: 48.0 / 36 * math.Pi,
		},
	)
	r.Tip = math3d.V3(0, -0.75, 0)
	return r
}

// UseCache routes Pose matrix evaluation through c. A nil c disables
// caching.
func (r *Rig) UseCache(c *transform.Cache) {
	r.cache = c
}

// SetTarget sets the angle joint i springs toward.
func (r *Rig) SetTarget(i int, rad float32) error {
	if i < 0 || i >= len(r.Joints) {
		return fmt.Errorf("set target %d of %d: %w", i, len(r.Joints), ErrJoint)
	}
	r.Joints[i].Target = float64(rad)
	return nil
}

// SetAngle moves joint i to rad immediately and makes it the target.
func (r *Rig) SetAngle(i int, rad float32) error {
	if err := r.SetTarget(i, rad); err != nil {
		return err
	}
	r.Joints[i].Angle = float64(rad)
	r.Joints[i].velocity = 0
	return nil
}

// Step advances every joint spring by one frame.
func (r *Rig) Step() {
	for i := range r.Joints {
		r.Joints[i].Update()
	}
}

// Settled reports whether every joint is at rest on its target.
func (r *Rig) Settled() bool {
	for i := range r.Joints {
		if !r.Joints[i].Settled() {
			return false
		}
	}
	return true
}

// Chain returns the rig's op-list at the current joint angles: the mount
// ops, the base translation, three ops per joint, then the tip translation.
func (r *Rig) Chain() *transform.Transform {
	t := transform.New(r.Mount...).Push(transform.Translate{V: r.Base})
	for _, j := range r.Joints {
		t.Push(j.Spec.ops(float32(j.Angle))...)
	}
	return t.Push(transform.Translate{V: r.Tip})
}

// Segment is one drawable part of a pose.
type Segment struct {
	Name string
	// Model maps the unit box to world space.
	Model math3d.Mat4
	// Normal carries object-space normals of the box to world space.
	Normal math3d.Mat3
	// Origin is the segment's pivot in world space.
	Origin math3d.Vec3
}

func newSegment(name string, frame math3d.Mat4, pivot math3d.Vec3, size math3d.Vec3) Segment {
	model := *frame.Clone().Scale(size)
	s := Segment{
		Name:   name,
		Model:  model,
		Origin: pivot,
	}
	if s.Normal.NormalFromMat4(model) == nil {
		s.Normal.Identity()
	}
	return s
}

// Pose is the world-space state of a rig.
type Pose struct {
	Base     math3d.Vec3
	Segments []Segment
	Effector math3d.Vec3
}

// Pose evaluates the chain at the current joint angles.
func (r *Rig) Pose() Pose {
	chain := r.Chain()
	mat := chain.MatAt
	if r.cache != nil {
		mat = func(n int) math3d.Mat4 { return r.cache.MatAt(chain, n) }
	}

	var origin math3d.Vec3
	base := len(r.Mount) + 1
	p := Pose{Base: mat(base).Transform(origin)}
	for i, j := range r.Joints {
		// Ops of joint i sit at [base+3i, base+3i+3).
		pivot := mat(base + 1 + 3*i).Transform(origin)
		p.Segments = append(p.Segments, newSegment(j.Spec.Name, mat(base+3+3*i), pivot, j.Spec.Size))
	}
	p.Effector = mat(chain.Len()).Transform(origin)
	return p
}
