package math3d

import "github.com/chewxy/math32"

// Vec4 represents a 4D vector, a homogeneous 3D point or an RGBA color.
type Vec4 [4]float32

// V4 creates a new Vec4.
func V4(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

// V4FromV3 creates a Vec4 from a Vec3 with the given W.
func V4FromV3(v Vec3, w float32) Vec4 {
	return Vec4{v[0], v[1], v[2], w}
}

// NewVec4 returns a pointer to a zero vector.
func NewVec4() *Vec4 {
	return new(Vec4)
}

// Vec4FromScalar returns a vector with every component set to s.
func Vec4FromScalar(s float32) Vec4 {
	return Vec4{s, s, s, s}
}

// Vec4FromSlice copies exactly four components out of s.
func Vec4FromSlice(s []float32) (Vec4, error) {
	var v Vec4
	err := fromSlice(v[:], s, "vec4")
	return v, err
}

// Vec4FromBuffer copies four components starting at offset in buf.
func Vec4FromBuffer(buf []float32, offset int) (Vec4, error) {
	var v Vec4
	err := fromBuffer(v[:], buf, offset, "vec4")
	return v, err
}

// X returns the x component.
func (v Vec4) X() float32 { return v[0] }

// Y returns the y component.
func (v Vec4) Y() float32 { return v[1] }

// Z returns the z component.
func (v Vec4) Z() float32 { return v[2] }

// W returns the w component.
func (v Vec4) W() float32 { return v[3] }

// R returns the first component as red.
func (v Vec4) R() float32 { return v[0] }

// G returns the second component as green.
func (v Vec4) G() float32 { return v[1] }

// B returns the third component as blue.
func (v Vec4) B() float32 { return v[2] }

// A returns the fourth component as alpha.
func (v Vec4) A() float32 { return v[3] }

// Vec3 returns the XYZ portion, ignoring W.
func (v Vec4) Vec3() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

// PerspectiveDivide returns the XYZ portion divided by W. A zero W is
// treated as 1.
func (v Vec4) PerspectiveDivide() Vec3 {
	w := v[3]
	if w == 0 {
		w = 1
	}
	return Vec3{v[0] / w, v[1] / w, v[2] / w}
}

// Clone returns a new vector holding a copy of v.
func (v Vec4) Clone() *Vec4 {
	c := v
	return &c
}

// Slice returns a view of v's storage.
func (v *Vec4) Slice() []float32 {
	return v[:]
}

// Set assigns every component.
func (v *Vec4) Set(x, y, z, w float32) *Vec4 {
	v[0], v[1], v[2], v[3] = x, y, z, w
	return v
}

// Copy overwrites v with a.
func (v *Vec4) Copy(a Vec4) *Vec4 {
	*v = a
	return v
}

// Zero sets every component to 0.
func (v *Vec4) Zero() *Vec4 {
	*v = Vec4{}
	return v
}

// Add adds b to v.
func (v *Vec4) Add(b Vec4) *Vec4 {
	for i := range v {
		v[i] += b[i]
	}
	return v
}

// Subtract subtracts b from v.
func (v *Vec4) Subtract(b Vec4) *Vec4 {
	for i := range v {
		v[i] -= b[i]
	}
	return v
}

// Multiply multiplies v by b component-wise.
func (v *Vec4) Multiply(b Vec4) *Vec4 {
	for i := range v {
		v[i] *= b[i]
	}
	return v
}

// Divide divides v by b component-wise.
func (v *Vec4) Divide(b Vec4) *Vec4 {
	for i := range v {
		v[i] /= b[i]
	}
	return v
}

// Scale multiplies every component by s.
func (v *Vec4) Scale(s float32) *Vec4 {
	for i := range v {
		v[i] *= s
	}
	return v
}

// ScaleAndAdd adds b scaled by s to v.
func (v *Vec4) ScaleAndAdd(b Vec4, s float32) *Vec4 {
	for i := range v {
		v[i] += b[i] * s
	}
	return v
}

// Negate flips the sign of every component.
func (v *Vec4) Negate() *Vec4 {
	for i := range v {
		v[i] = -v[i]
	}
	return v
}

// Invert replaces each component with its reciprocal.
func (v *Vec4) Invert() *Vec4 {
	for i := range v {
		v[i] = 1 / v[i]
	}
	return v
}

// Normalize scales v to unit length. A zero vector is left unchanged.
func (v *Vec4) Normalize() *Vec4 {
	l := v.SquaredMagnitude()
	if l > 0 {
		v.Scale(1 / math32.Sqrt(l))
	}
	return v
}

// Cross sets v to the 4D cross product of v, a and b: the vector orthogonal
// to all three.
func (v *Vec4) Cross(a, b Vec4) *Vec4 {
	p := a[0]*b[1] - a[1]*b[0]
	q := a[0]*b[2] - a[2]*b[0]
	r := a[0]*b[3] - a[3]*b[0]
	s := a[1]*b[2] - a[2]*b[1]
	t := a[1]*b[3] - a[3]*b[1]
	u := a[2]*b[3] - a[3]*b[2]
	g, h, i, j := v[0], v[1], v[2], v[3]

	v[0] = h*u - i*t + j*s
	v[1] = -(g * u) + i*r - j*q
	v[2] = g*t - h*r + j*p
	v[3] = -(g * s) + h*q - i*p
	return v
}

// Lerp moves v toward b by t.
func (v *Vec4) Lerp(b Vec4, t float32) *Vec4 {
	for i := range v {
		v[i] += t * (b[i] - v[i])
	}
	return v
}

// Ceil rounds each component up.
func (v *Vec4) Ceil() *Vec4 {
	for i := range v {
		v[i] = math32.Ceil(v[i])
	}
	return v
}

// Floor rounds each component down.
func (v *Vec4) Floor() *Vec4 {
	for i := range v {
		v[i] = math32.Floor(v[i])
	}
	return v
}

// Round rounds each component half away from zero.
func (v *Vec4) Round() *Vec4 {
	for i := range v {
		v[i] = round(v[i])
	}
	return v
}

// Min keeps the component-wise minimum of v and b.
func (v *Vec4) Min(b Vec4) *Vec4 {
	for i := range v {
		v[i] = math32.Min(v[i], b[i])
	}
	return v
}

// Max keeps the component-wise maximum of v and b.
func (v *Vec4) Max(b Vec4) *Vec4 {
	for i := range v {
		v[i] = math32.Max(v[i], b[i])
	}
	return v
}

// TransformMat4 sets v to m · v.
func (v *Vec4) TransformMat4(m Mat4) *Vec4 {
	*v = m.TransformVec4(*v)
	return v
}

// Dot returns v · b.
func (v Vec4) Dot(b Vec4) float32 {
	return v[0]*b[0] + v[1]*b[1] + v[2]*b[2] + v[3]*b[3]
}

// Magnitude returns the length of v.
func (v Vec4) Magnitude() float32 {
	return math32.Sqrt(v.SquaredMagnitude())
}

// SquaredMagnitude returns the squared length of v.
func (v Vec4) SquaredMagnitude() float32 {
	return v.Dot(v)
}

// Distance returns the euclidean distance between v and b.
func (v Vec4) Distance(b Vec4) float32 {
	return math32.Sqrt(v.SquaredDistance(b))
}

// SquaredDistance returns the squared euclidean distance between v and b.
func (v Vec4) SquaredDistance(b Vec4) float32 {
	d := *b.Clone().Subtract(v)
	return d.Dot(d)
}

// Angle returns the angle between v and b in [0, π]. It is π/2 when either
// vector has zero length.
func (v Vec4) Angle(b Vec4) float32 {
	return angle(v[:], b[:])
}

// ExactEquals reports whether v and b have identical components.
func (v Vec4) ExactEquals(b Vec4) bool {
	return v == b
}

// Equals reports whether v and b are equal within Epsilon.
func (v Vec4) Equals(b Vec4) bool {
	return approxEqualAll(v[:], b[:])
}

// String formats v for debugging.
func (v Vec4) String() string {
	return formatComponents("Vec4", v[:])
}

// AddVec4 returns a + b.
func AddVec4(a, b Vec4) Vec4 {
	return *a.Clone().Add(b)
}

// SubVec4 returns a - b.
func SubVec4(a, b Vec4) Vec4 {
	return *a.Clone().Subtract(b)
}

// ScaleVec4 returns a * s.
func ScaleVec4(a Vec4, s float32) Vec4 {
	return *a.Clone().Scale(s)
}

// NormalizeVec4 returns a scaled to unit length. A zero vector is returned unchanged.
func NormalizeVec4(a Vec4) Vec4 {
	return *a.Clone().Normalize()
}

// LerpVec4 returns the linear interpolation between a and b by t.
func LerpVec4(a, b Vec4, t float32) Vec4 {
	return *a.Clone().Lerp(b, t)
}
