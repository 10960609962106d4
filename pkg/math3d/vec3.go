// Package math3d provides single-precision vectors and column-major matrices
// laid out for direct upload to GLSL uniforms.
//
// Methods that mutate take a pointer receiver and return it so calls can be
// chained; methods that only read take a value receiver. Package-level
// functions such as AddVec3 return new values and never touch their inputs.
package math3d

import "github.com/chewxy/math32"

// Vec3 represents a 3D vector or an RGB color.
type Vec3 [3]float32

// V3 creates a new Vec3.
func V3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// NewVec3 returns a pointer to a zero vector.
func NewVec3() *Vec3 {
	return new(Vec3)
}

// Vec3FromScalar returns a vector with every component set to s.
func Vec3FromScalar(s float32) Vec3 {
	return Vec3{s, s, s}
}

// Vec3FromSlice copies exactly three components out of s.
func Vec3FromSlice(s []float32) (Vec3, error) {
	var v Vec3
	err := fromSlice(v[:], s, "vec3")
	return v, err
}

// Vec3FromBuffer copies three components starting at offset in buf.
func Vec3FromBuffer(buf []float32, offset int) (Vec3, error) {
	var v Vec3
	err := fromBuffer(v[:], buf, offset, "vec3")
	return v, err
}

// Up returns the world up vector (0, 1, 0).
func Up() Vec3 {
	return Vec3{0, 1, 0}
}

// X returns the x component.
func (v Vec3) X() float32 { return v[0] }

// Y returns the y component.
func (v Vec3) Y() float32 { return v[1] }

// Z returns the z component.
func (v Vec3) Z() float32 { return v[2] }

// R returns the first component as red.
func (v Vec3) R() float32 { return v[0] }

// G returns the second component as green.
func (v Vec3) G() float32 { return v[1] }

// B returns the third component as blue.
func (v Vec3) B() float32 { return v[2] }

// Clone returns a new vector holding a copy of v.
func (v Vec3) Clone() *Vec3 {
	c := v
	return &c
}

// Slice returns a view of v's storage. Writes through it change v.
func (v *Vec3) Slice() []float32 {
	return v[:]
}

// Set assigns all three components.
func (v *Vec3) Set(x, y, z float32) *Vec3 {
	v[0], v[1], v[2] = x, y, z
	return v
}

// Copy overwrites v with a.
func (v *Vec3) Copy(a Vec3) *Vec3 {
	*v = a
	return v
}

// Zero sets every component to 0.
func (v *Vec3) Zero() *Vec3 {
	*v = Vec3{}
	return v
}

// Add adds b to v.
func (v *Vec3) Add(b Vec3) *Vec3 {
	v[0] += b[0]
	v[1] += b[1]
	v[2] += b[2]
	return v
}

// Subtract subtracts b from v.
func (v *Vec3) Subtract(b Vec3) *Vec3 {
	v[0] -= b[0]
	v[1] -= b[1]
	v[2] -= b[2]
	return v
}

// Multiply multiplies v by b component-wise.
func (v *Vec3) Multiply(b Vec3) *Vec3 {
	v[0] *= b[0]
	v[1] *= b[1]
	v[2] *= b[2]
	return v
}

// Divide divides v by b component-wise.
func (v *Vec3) Divide(b Vec3) *Vec3 {
	v[0] /= b[0]
	v[1] /= b[1]
	v[2] /= b[2]
	return v
}

// Scale multiplies every component by s.
func (v *Vec3) Scale(s float32) *Vec3 {
	v[0] *= s
	v[1] *= s
	v[2] *= s
	return v
}

// ScaleAndAdd adds b scaled by s to v.
func (v *Vec3) ScaleAndAdd(b Vec3, s float32) *Vec3 {
	v[0] += b[0] * s
	v[1] += b[1] * s
	v[2] += b[2] * s
	return v
}

// Negate flips the sign of every component.
func (v *Vec3) Negate() *Vec3 {
	v[0], v[1], v[2] = -v[0], -v[1], -v[2]
	return v
}

// Invert replaces each component with its reciprocal. Zero components
// become ±Inf.
func (v *Vec3) Invert() *Vec3 {
	v[0], v[1], v[2] = 1/v[0], 1/v[1], 1/v[2]
	return v
}

// Normalize scales v to unit length. A zero vector is left unchanged.
func (v *Vec3) Normalize() *Vec3 {
	l := v.SquaredMagnitude()
	if l > 0 {
		v.Scale(1 / math32.Sqrt(l))
	}
	return v
}

// Cross sets v to v × b.
func (v *Vec3) Cross(b Vec3) *Vec3 {
	ax, ay, az := v[0], v[1], v[2]
	v[0] = ay*b[2] - az*b[1]
	v[1] = az*b[0] - ax*b[2]
	v[2] = ax*b[1] - ay*b[0]
	return v
}

// Lerp moves v toward b by t.
func (v *Vec3) Lerp(b Vec3, t float32) *Vec3 {
	v[0] += t * (b[0] - v[0])
	v[1] += t * (b[1] - v[1])
	v[2] += t * (b[2] - v[2])
	return v
}

// Ceil rounds each component up.
func (v *Vec3) Ceil() *Vec3 {
	v[0], v[1], v[2] = math32.Ceil(v[0]), math32.Ceil(v[1]), math32.Ceil(v[2])
	return v
}

// Floor rounds each component down.
func (v *Vec3) Floor() *Vec3 {
	v[0], v[1], v[2] = math32.Floor(v[0]), math32.Floor(v[1]), math32.Floor(v[2])
	return v
}

// Round rounds each component half away from zero.
func (v *Vec3) Round() *Vec3 {
	v[0], v[1], v[2] = round(v[0]), round(v[1]), round(v[2])
	return v
}

// Min keeps the component-wise minimum of v and b.
func (v *Vec3) Min(b Vec3) *Vec3 {
	v[0], v[1], v[2] = math32.Min(v[0], b[0]), math32.Min(v[1], b[1]), math32.Min(v[2], b[2])
	return v
}

// Max keeps the component-wise maximum of v and b.
func (v *Vec3) Max(b Vec3) *Vec3 {
	v[0], v[1], v[2] = math32.Max(v[0], b[0]), math32.Max(v[1], b[1]), math32.Max(v[2], b[2])
	return v
}

// RotateX rotates v by rad around the X axis passing through origin.
func (v *Vec3) RotateX(origin Vec3, rad float32) *Vec3 {
	s, c := math32.Sincos(rad)
	py, pz := v[1]-origin[1], v[2]-origin[2]
	v[1] = py*c - pz*s + origin[1]
	v[2] = py*s + pz*c + origin[2]
	return v
}

// RotateY rotates v by rad around the Y axis passing through origin.
func (v *Vec3) RotateY(origin Vec3, rad float32) *Vec3 {
	s, c := math32.Sincos(rad)
	px, pz := v[0]-origin[0], v[2]-origin[2]
	v[0] = pz*s + px*c + origin[0]
	v[2] = pz*c - px*s + origin[2]
	return v
}

// RotateZ rotates v by rad around the Z axis passing through origin.
func (v *Vec3) RotateZ(origin Vec3, rad float32) *Vec3 {
	s, c := math32.Sincos(rad)
	px, py := v[0]-origin[0], v[1]-origin[1]
	v[0] = px*c - py*s + origin[0]
	v[1] = px*s + py*c + origin[1]
	return v
}

// TransformMat3 multiplies v by the 3x3 matrix m.
func (v *Vec3) TransformMat3(m Mat3) *Vec3 {
	x, y, z := v[0], v[1], v[2]
	v[0] = x*m[0] + y*m[3] + z*m[6]
	v[1] = x*m[1] + y*m[4] + z*m[7]
	v[2] = x*m[2] + y*m[5] + z*m[8]
	return v
}

// TransformMat4 transforms v as a point (w=1) by m, including the
// homogeneous divide.
func (v *Vec3) TransformMat4(m Mat4) *Vec3 {
	*v = m.Transform(*v)
	return v
}

// Dot returns v · b.
func (v Vec3) Dot(b Vec3) float32 {
	return v[0]*b[0] + v[1]*b[1] + v[2]*b[2]
}

// Magnitude returns the length of v.
func (v Vec3) Magnitude() float32 {
	return math32.Sqrt(v.SquaredMagnitude())
}

// SquaredMagnitude returns the squared length of v.
func (v Vec3) SquaredMagnitude() float32 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

// Distance returns the euclidean distance between v and b.
func (v Vec3) Distance(b Vec3) float32 {
	return math32.Sqrt(v.SquaredDistance(b))
}

// SquaredDistance returns the squared euclidean distance between v and b.
func (v Vec3) SquaredDistance(b Vec3) float32 {
	x, y, z := b[0]-v[0], b[1]-v[1], b[2]-v[2]
	return x*x + y*y + z*z
}

// Angle returns the angle between v and b in [0, π]. It is π/2 when either
// vector has zero length.
func (v Vec3) Angle(b Vec3) float32 {
	return angle(v[:], b[:])
}

// ExactEquals reports whether v and b have identical components.
func (v Vec3) ExactEquals(b Vec3) bool {
	return v == b
}

// Equals reports whether v and b are equal within Epsilon.
func (v Vec3) Equals(b Vec3) bool {
	return approxEqualAll(v[:], b[:])
}

// String formats v for debugging.
func (v Vec3) String() string {
	return formatComponents("Vec3", v[:])
}

// AddVec3 returns a + b.
func AddVec3(a, b Vec3) Vec3 {
	return *a.Clone().Add(b)
}

// SubVec3 returns a - b.
func SubVec3(a, b Vec3) Vec3 {
	return *a.Clone().Subtract(b)
}

// ScaleVec3 returns a * s.
func ScaleVec3(a Vec3, s float32) Vec3 {
	return *a.Clone().Scale(s)
}

// CrossVec3 returns a × b.
func CrossVec3(a, b Vec3) Vec3 {
	return *a.Clone().Cross(b)
}

// NormalizeVec3 returns a scaled to unit length, or a unchanged if it has
// zero length.
func NormalizeVec3(a Vec3) Vec3 {
	return *a.Clone().Normalize()
}

// LerpVec3 returns the linear interpolation between a and b by t.
func LerpVec3(a, b Vec3, t float32) Vec3 {
	return *a.Clone().Lerp(b, t)
}
