package math3d

import "github.com/chewxy/math32"

// Vec2 represents a 2D vector.
type Vec2 [2]float32

// V2 creates a new Vec2.
func V2(x, y float32) Vec2 {
	return Vec2{x, y}
}

// NewVec2 returns a pointer to a zero vector.
func NewVec2() *Vec2 {
	return new(Vec2)
}

// Vec2FromScalar returns a vector with both components set to s.
func Vec2FromScalar(s float32) Vec2 {
	return Vec2{s, s}
}

// Vec2FromSlice copies exactly two components out of s.
func Vec2FromSlice(s []float32) (Vec2, error) {
	var v Vec2
	err := fromSlice(v[:], s, "vec2")
	return v, err
}

// Vec2FromBuffer copies two components starting at offset in buf.
func Vec2FromBuffer(buf []float32, offset int) (Vec2, error) {
	var v Vec2
	err := fromBuffer(v[:], buf, offset, "vec2")
	return v, err
}

// X returns the x component.
func (v Vec2) X() float32 { return v[0] }

// Y returns the y component.
func (v Vec2) Y() float32 { return v[1] }

// R returns the first component as red.
func (v Vec2) R() float32 { return v[0] }

// G returns the second component as green.
func (v Vec2) G() float32 { return v[1] }

// Clone returns a new vector holding a copy of v.
func (v Vec2) Clone() *Vec2 {
	c := v
	return &c
}

// Slice returns a view of v's storage.
func (v *Vec2) Slice() []float32 {
	return v[:]
}

// Set assigns every component.
func (v *Vec2) Set(x, y float32) *Vec2 {
	v[0], v[1] = x, y
	return v
}

// Copy overwrites v with a.
func (v *Vec2) Copy(a Vec2) *Vec2 {
	*v = a
	return v
}

// Zero sets every component to 0.
func (v *Vec2) Zero() *Vec2 {
	*v = Vec2{}
	return v
}

// Add adds b to v.
func (v *Vec2) Add(b Vec2) *Vec2 {
	v[0] += b[0]
	v[1] += b[1]
	return v
}

// Subtract subtracts b from v.
func (v *Vec2) Subtract(b Vec2) *Vec2 {
	v[0] -= b[0]
	v[1] -= b[1]
	return v
}

// Multiply multiplies v by b component-wise.
func (v *Vec2) Multiply(b Vec2) *Vec2 {
	v[0] *= b[0]
	v[1] *= b[1]
	return v
}

// Divide divides v by b component-wise.
func (v *Vec2) Divide(b Vec2) *Vec2 {
	v[0] /= b[0]
	v[1] /= b[1]
	return v
}

// Scale multiplies every component by s.
func (v *Vec2) Scale(s float32) *Vec2 {
	v[0] *= s
	v[1] *= s
	return v
}

// ScaleAndAdd adds b scaled by s to v.
func (v *Vec2) ScaleAndAdd(b Vec2, s float32) *Vec2 {
	v[0] += b[0] * s
	v[1] += b[1] * s
	return v
}

// Negate flips the sign of every component.
func (v *Vec2) Negate() *Vec2 {
	v[0], v[1] = -v[0], -v[1]
	return v
}

// Invert replaces each component with its reciprocal.
func (v *Vec2) Invert() *Vec2 {
	v[0], v[1] = 1/v[0], 1/v[1]
	return v
}

// Normalize scales v to unit length. A zero vector is left unchanged.
func (v *Vec2) Normalize() *Vec2 {
	l := v.SquaredMagnitude()
	if l > 0 {
		v.Scale(1 / math32.Sqrt(l))
	}
	return v
}

// Lerp moves v toward b by t.
func (v *Vec2) Lerp(b Vec2, t float32) *Vec2 {
	v[0] += t * (b[0] - v[0])
	v[1] += t * (b[1] - v[1])
	return v
}

// Ceil rounds each component up.
func (v *Vec2) Ceil() *Vec2 {
	v[0], v[1] = math32.Ceil(v[0]), math32.Ceil(v[1])
	return v
}

// Floor rounds each component down.
func (v *Vec2) Floor() *Vec2 {
	v[0], v[1] = math32.Floor(v[0]), math32.Floor(v[1])
	return v
}

// Round rounds each component half away from zero.
func (v *Vec2) Round() *Vec2 {
	v[0], v[1] = round(v[0]), round(v[1])
	return v
}

// Min keeps the component-wise minimum of v and b.
func (v *Vec2) Min(b Vec2) *Vec2 {
	v[0], v[1] = math32.Min(v[0], b[0]), math32.Min(v[1], b[1])
	return v
}

// Max keeps the component-wise maximum of v and b.
func (v *Vec2) Max(b Vec2) *Vec2 {
	v[0], v[1] = math32.Max(v[0], b[0]), math32.Max(v[1], b[1])
	return v
}

// Rotate rotates v by rad around origin.
func (v *Vec2) Rotate(origin Vec2, rad float32) *Vec2 {
	s, c := math32.Sincos(rad)
	px, py := v[0]-origin[0], v[1]-origin[1]
	v[0] = px*c - py*s + origin[0]
	v[1] = px*s + py*c + origin[1]
	return v
}

// TransformMat3 transforms v as a 2D point (w=1) by the homogeneous
// matrix m.
func (v *Vec2) TransformMat3(m Mat3) *Vec2 {
	*v = m.MultiplyVec(*v)
	return v
}

// Dot returns v · b.
func (v Vec2) Dot(b Vec2) float32 {
	return v[0]*b[0] + v[1]*b[1]
}

// Cross returns the z component of the 3D cross product of v and b.
func (v Vec2) Cross(b Vec2) float32 {
	return v[0]*b[1] - v[1]*b[0]
}

// Magnitude returns the length of v.
func (v Vec2) Magnitude() float32 {
	return math32.Sqrt(v.SquaredMagnitude())
}

// SquaredMagnitude returns the squared length of v.
func (v Vec2) SquaredMagnitude() float32 {
	return v[0]*v[0] + v[1]*v[1]
}

// Distance returns the euclidean distance between v and b.
func (v Vec2) Distance(b Vec2) float32 {
	return math32.Sqrt(v.SquaredDistance(b))
}

// SquaredDistance returns the squared euclidean distance between v and b.
func (v Vec2) SquaredDistance(b Vec2) float32 {
	x, y := b[0]-v[0], b[1]-v[1]
	return x*x + y*y
}

// Angle returns the angle between v and b in [0, π]. It is π/2 when either
// vector has zero length.
func (v Vec2) Angle(b Vec2) float32 {
	return angle(v[:], b[:])
}

// ExactEquals reports whether v and b have identical components.
func (v Vec2) ExactEquals(b Vec2) bool {
	return v == b
}

// Equals reports whether v and b are equal within Epsilon.
func (v Vec2) Equals(b Vec2) bool {
	return approxEqualAll(v[:], b[:])
}

// String formats v for debugging.
func (v Vec2) String() string {
	return formatComponents("Vec2", v[:])
}

// AddVec2 returns a + b.
func AddVec2(a, b Vec2) Vec2 {
	return *a.Clone().Add(b)
}

// SubVec2 returns a - b.
func SubVec2(a, b Vec2) Vec2 {
	return *a.Clone().Subtract(b)
}

// ScaleVec2 returns a * s.
func ScaleVec2(a Vec2, s float32) Vec2 {
	return *a.Clone().Scale(s)
}

// NormalizeVec2 returns a scaled to unit length. A zero vector is returned unchanged.
func NormalizeVec2(a Vec2) Vec2 {
	return *a.Clone().Normalize()
}

// LerpVec2 returns the linear interpolation between a and b by t.
func LerpVec2(a, b Vec2, t float32) Vec2 {
	return *a.Clone().Lerp(b, t)
}
