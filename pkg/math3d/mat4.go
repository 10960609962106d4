package math3d

import "github.com/chewxy/math32"

// Mat4 is a 4x4 matrix stored in column-major order, matching the layout
// glUniformMatrix4fv expects.
//
// Memory layout (indices):
// | 0  4  8  12 |
// | 1  5  9  13 |
// | 2  6  10 14 |
// | 3  7  11 15 |
//
// For an affine transform:
// | Xx Yx Zx Tx |   X,Y,Z = basis vectors (rotation/scale)
// | Xy Yy Zy Ty |   T = translation
// | Xz Yz Zz Tz |
// | 0  0  0  1  |
//
// The zero value is the zero matrix; use NewMat4 or Identity4 for identity.
type Mat4 [16]float32

var identity4 = Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// Identity4 returns the identity matrix.
func Identity4() Mat4 {
	return identity4
}

// NewMat4 returns a pointer to a new identity matrix.
func NewMat4() *Mat4 {
	m := identity4
	return &m
}

// Mat4FromScalar returns a matrix with all sixteen components set to s.
func Mat4FromScalar(s float32) Mat4 {
	var m Mat4
	for i := range m {
		m[i] = s
	}
	return m
}

// Mat4FromSlice copies exactly sixteen column-major components out of s.
func Mat4FromSlice(s []float32) (Mat4, error) {
	var m Mat4
	err := fromSlice(m[:], s, "mat4")
	return m, err
}

// Mat4FromBuffer copies sixteen components starting at offset in buf.
func Mat4FromBuffer(buf []float32, offset int) (Mat4, error) {
	var m Mat4
	err := fromBuffer(m[:], buf, offset, "mat4")
	return m, err
}

// Clone returns a new matrix holding a copy of m.
func (m Mat4) Clone() *Mat4 {
	c := m
	return &c
}

// Slice returns a view of m's storage, ready for uniform upload.
func (m *Mat4) Slice() []float32 {
	return m[:]
}

// Get returns the element at (row, col).
func (m Mat4) Get(row, col int) float32 {
	return m[row+col*4]
}

// Identity resets m to the identity matrix.
func (m *Mat4) Identity() *Mat4 {
	*m = identity4
	return m
}

// Copy overwrites m with a.
func (m *Mat4) Copy(a Mat4) *Mat4 {
	*m = a
	return m
}

// Transpose transposes m in place.
func (m *Mat4) Transpose() *Mat4 {
	*m = Mat4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
	return m
}

// cofactors returns the twelve 2x2 sub-determinants shared by Invert,
// Adjoint and Determinant.
func (m *Mat4) cofactors() (b [12]float32) {
	b[0] = m[0]*m[5] - m[1]*m[4]
	b[1] = m[0]*m[6] - m[2]*m[4]
	b[2] = m[0]*m[7] - m[3]*m[4]
	b[3] = m[1]*m[6] - m[2]*m[5]
	b[4] = m[1]*m[7] - m[3]*m[5]
	b[5] = m[2]*m[7] - m[3]*m[6]
	b[6] = m[8]*m[13] - m[9]*m[12]
	b[7] = m[8]*m[14] - m[10]*m[12]
	b[8] = m[8]*m[15] - m[11]*m[12]
	b[9] = m[9]*m[14] - m[10]*m[13]
	b[10] = m[9]*m[15] - m[11]*m[13]
	b[11] = m[10]*m[15] - m[11]*m[14]
	return b
}

func (m *Mat4) adjugate(b [12]float32) Mat4 {
	return Mat4{
		m[5]*b[11] - m[6]*b[10] + m[7]*b[9],
		m[2]*b[10] - m[1]*b[11] - m[3]*b[9],
		m[13]*b[5] - m[14]*b[4] + m[15]*b[3],
		m[10]*b[4] - m[9]*b[5] - m[11]*b[3],
		m[6]*b[8] - m[4]*b[11] - m[7]*b[7],
		m[0]*b[11] - m[2]*b[8] + m[3]*b[7],
		m[14]*b[2] - m[12]*b[5] - m[15]*b[1],
		m[8]*b[5] - m[10]*b[2] + m[11]*b[1],
		m[4]*b[10] - m[5]*b[8] + m[7]*b[6],
		m[1]*b[8] - m[0]*b[10] - m[3]*b[6],
		m[12]*b[4] - m[13]*b[2] + m[15]*b[0],
		m[9]*b[2] - m[8]*b[4] - m[11]*b[0],
		m[5]*b[7] - m[4]*b[9] - m[6]*b[6],
		m[0]*b[9] - m[1]*b[7] + m[2]*b[6],
		m[13]*b[1] - m[12]*b[3] - m[14]*b[0],
		m[8]*b[3] - m[9]*b[1] + m[10]*b[0],
	}
}

// Invert inverts m in place. If m is singular it is left unchanged and
// Invert returns nil.
func (m *Mat4) Invert() *Mat4 {
	b := m.cofactors()
	det := b[0]*b[11] - b[1]*b[10] + b[2]*b[9] + b[3]*b[8] - b[4]*b[7] + b[5]*b[6]
	if det == 0 {
		return nil
	}
	*m = m.adjugate(b)
	return m.MultiplyScalar(1 / det)
}

// Adjoint replaces m with its adjugate (the transposed cofactor matrix).
func (m *Mat4) Adjoint() *Mat4 {
	*m = m.adjugate(m.cofactors())
	return m
}

// Determinant returns the determinant of m.
func (m Mat4) Determinant() float32 {
	b := m.cofactors()
	return b[0]*b[11] - b[1]*b[10] + b[2]*b[9] + b[3]*b[8] - b[4]*b[7] + b[5]*b[6]
}

// Multiply sets m to m · b.
func (m *Mat4) Multiply(b Mat4) *Mat4 {
	a := *m
	for col := range 4 {
		b0, b1, b2, b3 := b[col*4], b[col*4+1], b[col*4+2], b[col*4+3]
		for row := range 4 {
			m[col*4+row] = b0*a[row] + b1*a[row+4] + b2*a[row+8] + b3*a[row+12]
		}
	}
	return m
}

// Translate sets m to m · T(v).
func (m *Mat4) Translate(v Vec3) *Mat4 {
	x, y, z := v[0], v[1], v[2]
	m[12] = m[0]*x + m[4]*y + m[8]*z + m[12]
	m[13] = m[1]*x + m[5]*y + m[9]*z + m[13]
	m[14] = m[2]*x + m[6]*y + m[10]*z + m[14]
	m[15] = m[3]*x + m[7]*y + m[11]*z + m[15]
	return m
}

// Scale sets m to m · S(v).
func (m *Mat4) Scale(v Vec3) *Mat4 {
	for i := range 4 {
		m[i] *= v[0]
		m[i+4] *= v[1]
		m[i+8] *= v[2]
	}
	return m
}

// Rotate sets m to m · R(rad, axis). If axis is shorter than Epsilon, m is
// left unchanged and Rotate returns nil.
func (m *Mat4) Rotate(rad float32, axis Vec3) *Mat4 {
	r, ok := axisRotation(rad, axis)
	if !ok {
		return nil
	}
	return m.Multiply(r)
}

// RotateX sets m to m · Rx(rad).
func (m *Mat4) RotateX(rad float32) *Mat4 {
	s, c := math32.Sincos(rad)
	for i := range 4 {
		a1, a2 := m[4+i], m[8+i]
		m[4+i] = a1*c + a2*s
		m[8+i] = a2*c - a1*s
	}
	return m
}

// RotateY sets m to m · Ry(rad).
func (m *Mat4) RotateY(rad float32) *Mat4 {
	s, c := math32.Sincos(rad)
	for i := range 4 {
		a0, a2 := m[i], m[8+i]
		m[i] = a0*c - a2*s
		m[8+i] = a0*s + a2*c
	}
	return m
}

// RotateZ sets m to m · Rz(rad).
func (m *Mat4) RotateZ(rad float32) *Mat4 {
	s, c := math32.Sincos(rad)
	for i := range 4 {
		a0, a1 := m[i], m[4+i]
		m[i] = a0*c + a1*s
		m[4+i] = a1*c - a0*s
	}
	return m
}

func axisRotation(rad float32, axis Vec3) (Mat4, bool) {
	l := axis.Magnitude()
	if l < Epsilon {
		return Mat4{}, false
	}
	x, y, z := axis[0]/l, axis[1]/l, axis[2]/l
	s, c := math32.Sincos(rad)
	t := 1 - c
	return Mat4{
		x*x*t + c, y*x*t + z*s, z*x*t - y*s, 0,
		x*y*t - z*s, y*y*t + c, z*y*t + x*s, 0,
		x*z*t + y*s, y*z*t - x*s, z*z*t + c, 0,
		0, 0, 0, 1,
	}, true
}

// FromTranslation sets m to a translation matrix.
func (m *Mat4) FromTranslation(v Vec3) *Mat4 {
	*m = identity4
	m[12], m[13], m[14] = v[0], v[1], v[2]
	return m
}

// FromScaling sets m to a scaling matrix.
func (m *Mat4) FromScaling(v Vec3) *Mat4 {
	*m = Mat4{}
	m[0], m[5], m[10], m[15] = v[0], v[1], v[2], 1
	return m
}

// FromRotation sets m to a rotation of rad around axis. It returns nil and
// leaves m unchanged when axis is shorter than Epsilon.
func (m *Mat4) FromRotation(rad float32, axis Vec3) *Mat4 {
	r, ok := axisRotation(rad, axis)
	if !ok {
		return nil
	}
	*m = r
	return m
}

// FromXRotation sets m to a rotation of rad around the X axis.
func (m *Mat4) FromXRotation(rad float32) *Mat4 {
	return m.Identity().RotateX(rad)
}

// FromYRotation sets m to a rotation of rad around the Y axis.
func (m *Mat4) FromYRotation(rad float32) *Mat4 {
	return m.Identity().RotateY(rad)
}

// FromZRotation sets m to a rotation of rad around the Z axis.
func (m *Mat4) FromZRotation(rad float32) *Mat4 {
	return m.Identity().RotateZ(rad)
}

// Translation returns the translation component of m.
func (m Mat4) Translation() Vec3 {
	return Vec3{m[12], m[13], m[14]}
}

// Scaling returns the length of each basis vector of m. The result is only
// the original scale when m has no skew.
func (m Mat4) Scaling() Vec3 {
	return Vec3{
		Vec3{m[0], m[1], m[2]}.Magnitude(),
		Vec3{m[4], m[5], m[6]}.Magnitude(),
		Vec3{m[8], m[9], m[10]}.Magnitude(),
	}
}

// Frustum sets m to a perspective frustum with the given bounds.
func (m *Mat4) Frustum(left, right, bottom, top, near, far float32) *Mat4 {
	rl := 1 / (right - left)
	tb := 1 / (top - bottom)
	nf := 1 / (near - far)
	*m = Mat4{
		near * 2 * rl, 0, 0, 0,
		0, near * 2 * tb, 0, 0,
		(right + left) * rl, (top + bottom) * tb, (far + near) * nf, -1,
		0, 0, far * near * 2 * nf, 0,
	}
	return m
}

// PerspectiveNO sets m to a perspective projection mapping near/far to a
// clip-space Z range of [-1, 1] (OpenGL, WebGL). fovy is the vertical field
// of view in radians. An infinite far plane yields an infinite projection.
func (m *Mat4) PerspectiveNO(fovy, aspect, near, far float32) *Mat4 {
	m.perspective(fovy, aspect)
	if math32.IsInf(far, 1) {
		m[10] = -1
		m[14] = -2 * near
	} else {
		nf := 1 / (near - far)
		m[10] = (far + near) * nf
		m[14] = 2 * far * near * nf
	}
	return m
}

// PerspectiveZO sets m to a perspective projection mapping near/far to a
// clip-space Z range of [0, 1] (Vulkan, WebGPU, Metal, DirectX).
func (m *Mat4) PerspectiveZO(fovy, aspect, near, far float32) *Mat4 {
	m.perspective(fovy, aspect)
	if math32.IsInf(far, 1) {
		m[10] = -1
		m[14] = -near
	} else {
		nf := 1 / (near - far)
		m[10] = far * nf
		m[14] = far * near * nf
	}
	return m
}

// Perspective is PerspectiveNO.
func (m *Mat4) Perspective(fovy, aspect, near, far float32) *Mat4 {
	return m.PerspectiveNO(fovy, aspect, near, far)
}

func (m *Mat4) perspective(fovy, aspect float32) {
	f := 1 / math32.Tan(fovy/2)
	*m = Mat4{}
	m[0] = f / aspect
	m[5] = f
	m[11] = -1
}

// OrthoNO sets m to an orthographic projection with a clip-space Z range
// of [-1, 1].
func (m *Mat4) OrthoNO(left, right, bottom, top, near, far float32) *Mat4 {
	m.ortho(left, right, bottom, top)
	nf := 1 / (near - far)
	m[10] = 2 * nf
	m[14] = (far + near) * nf
	return m
}

// OrthoZO sets m to an orthographic projection with a clip-space Z range
// of [0, 1].
func (m *Mat4) OrthoZO(left, right, bottom, top, near, far float32) *Mat4 {
	m.ortho(left, right, bottom, top)
	nf := 1 / (near - far)
	m[10] = nf
	m[14] = near * nf
	return m
}

// Ortho is OrthoNO.
func (m *Mat4) Ortho(left, right, bottom, top, near, far float32) *Mat4 {
	return m.OrthoNO(left, right, bottom, top, near, far)
}

func (m *Mat4) ortho(left, right, bottom, top float32) {
	lr := 1 / (left - right)
	bt := 1 / (bottom - top)
	*m = Mat4{}
	m[0] = -2 * lr
	m[5] = -2 * bt
	m[12] = (left + right) * lr
	m[13] = (top + bottom) * bt
	m[15] = 1
}

// LookAt sets m to a view matrix for a viewer at eye looking at center.
// When eye and center coincide within Epsilon there is no view direction
// and m becomes the identity.
func (m *Mat4) LookAt(eye, center, up Vec3) *Mat4 {
	if absf(eye[0]-center[0]) < Epsilon &&
		absf(eye[1]-center[1]) < Epsilon &&
		absf(eye[2]-center[2]) < Epsilon {
		return m.Identity()
	}

	z := SubVec3(eye, center)
	z.Normalize()
	x := CrossVec3(up, z)
	x.Normalize()
	y := CrossVec3(z, x)
	y.Normalize()

	*m = Mat4{
		x[0], y[0], z[0], 0,
		x[1], y[1], z[1], 0,
		x[2], y[2], z[2], 0,
		-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1,
	}
	return m
}

// TargetTo sets m to a model matrix that places an object at eye facing
// target. It is the inverse of LookAt.
func (m *Mat4) TargetTo(eye, target, up Vec3) *Mat4 {
	z := SubVec3(eye, target)
	z.Normalize()
	x := CrossVec3(up, z)
	x.Normalize()
	y := CrossVec3(z, x)

	*m = Mat4{
		x[0], x[1], x[2], 0,
		y[0], y[1], y[2], 0,
		z[0], z[1], z[2], 0,
		eye[0], eye[1], eye[2], 1,
	}
	return m
}

// Frob returns the Frobenius norm of m.
func (m Mat4) Frob() float32 {
	var sum float32
	for _, v := range m {
		sum += v * v
	}
	return math32.Sqrt(sum)
}

// Add adds b to m element-wise.
func (m *Mat4) Add(b Mat4) *Mat4 {
	for i := range m {
		m[i] += b[i]
	}
	return m
}

// Subtract subtracts b from m element-wise.
func (m *Mat4) Subtract(b Mat4) *Mat4 {
	for i := range m {
		m[i] -= b[i]
	}
	return m
}

// MultiplyScalar multiplies every element of m by s.
func (m *Mat4) MultiplyScalar(s float32) *Mat4 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// MultiplyScalarAndAdd adds b scaled by s to m.
func (m *Mat4) MultiplyScalarAndAdd(b Mat4, s float32) *Mat4 {
	for i := range m {
		m[i] += b[i] * s
	}
	return m
}

// Transform transforms the point p (w=1) by m and divides by the resulting
// w. A zero w is treated as 1.
func (m Mat4) Transform(p Vec3) Vec3 {
	x, y, z := p[0], p[1], p[2]
	w := m[3]*x + m[7]*y + m[11]*z + m[15]
	if w == 0 {
		w = 1
	}
	return Vec3{
		(m[0]*x + m[4]*y + m[8]*z + m[12]) / w,
		(m[1]*x + m[5]*y + m[9]*z + m[13]) / w,
		(m[2]*x + m[6]*y + m[10]*z + m[14]) / w,
	}
}

// TransformDir transforms the direction d (w=0), ignoring translation.
func (m Mat4) TransformDir(d Vec3) Vec3 {
	return Vec3{
		m[0]*d[0] + m[4]*d[1] + m[8]*d[2],
		m[1]*d[0] + m[5]*d[1] + m[9]*d[2],
		m[2]*d[0] + m[6]*d[1] + m[10]*d[2],
	}
}

// TransformVec4 returns m · v.
func (m Mat4) TransformVec4(v Vec4) Vec4 {
	return Vec4{
		m[0]*v[0] + m[4]*v[1] + m[8]*v[2] + m[12]*v[3],
		m[1]*v[0] + m[5]*v[1] + m[9]*v[2] + m[13]*v[3],
		m[2]*v[0] + m[6]*v[1] + m[10]*v[2] + m[14]*v[3],
		m[3]*v[0] + m[7]*v[1] + m[11]*v[2] + m[15]*v[3],
	}
}

// ExactEquals reports whether m and b have identical elements.
func (m Mat4) ExactEquals(b Mat4) bool {
	return m == b
}

// Equals reports whether m and b are equal within Epsilon.
func (m Mat4) Equals(b Mat4) bool {
	return approxEqualAll(m[:], b[:])
}

// String formats m for debugging.
func (m Mat4) String() string {
	return formatComponents("Mat4", m[:])
}

// MulMat4 returns a · b.
func MulMat4(a, b Mat4) Mat4 {
	return *a.Multiply(b)
}

// InverseMat4 returns the inverse of m, or false if m is singular.
func InverseMat4(m Mat4) (Mat4, bool) {
	if m.Invert() == nil {
		return Mat4{}, false
	}
	return m, true
}
