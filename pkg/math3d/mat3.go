package math3d

import "github.com/chewxy/math32"

// Mat3 is a 3x3 matrix stored in column-major order. It serves both as a
// homogeneous 2D transform (Translate, Rotate, Scale, MultiplyVec) and as
// the normal matrix of a 3D model transform (NormalFromMat4).
type Mat3 [9]float32

var identity3 = Mat3{
	1, 0, 0,
	0, 1, 0,
	0, 0, 1,
}

// Identity3 returns the identity matrix.
func Identity3() Mat3 {
	return identity3
}

// NewMat3 returns a pointer to a new identity matrix.
func NewMat3() *Mat3 {
	m := identity3
	return &m
}

// Mat3FromScalar returns a matrix with all nine components set to s.
func Mat3FromScalar(s float32) Mat3 {
	return Mat3{s, s, s, s, s, s, s, s, s}
}

// Mat3FromSlice copies exactly nine column-major components out of s.
func Mat3FromSlice(s []float32) (Mat3, error) {
	var m Mat3
	err := fromSlice(m[:], s, "mat3")
	return m, err
}

// Mat3FromBuffer copies nine components starting at offset in buf.
func Mat3FromBuffer(buf []float32, offset int) (Mat3, error) {
	var m Mat3
	err := fromBuffer(m[:], buf, offset, "mat3")
	return m, err
}

// Clone returns a new matrix holding a copy of m.
func (m Mat3) Clone() *Mat3 {
	c := m
	return &c
}

// Slice returns a view of m's storage.
func (m *Mat3) Slice() []float32 {
	return m[:]
}

// Identity resets m to the identity matrix.
func (m *Mat3) Identity() *Mat3 {
	*m = identity3
	return m
}

// Copy overwrites m with a.
func (m *Mat3) Copy(a Mat3) *Mat3 {
	*m = a
	return m
}

// Transpose transposes m in place.
func (m *Mat3) Transpose() *Mat3 {
	m[1], m[3] = m[3], m[1]
	m[2], m[6] = m[6], m[2]
	m[5], m[7] = m[7], m[5]
	return m
}

func (m *Mat3) adjugate() Mat3 {
	return Mat3{
		m[4]*m[8] - m[5]*m[7],
		m[2]*m[7] - m[1]*m[8],
		m[1]*m[5] - m[2]*m[4],
		m[5]*m[6] - m[3]*m[8],
		m[0]*m[8] - m[2]*m[6],
		m[2]*m[3] - m[0]*m[5],
		m[3]*m[7] - m[4]*m[6],
		m[1]*m[6] - m[0]*m[7],
		m[0]*m[4] - m[1]*m[3],
	}
}

// Invert inverts m in place. If m is singular it is left unchanged and
// Invert returns nil.
func (m *Mat3) Invert() *Mat3 {
	det := m.Determinant()
	if det == 0 {
		return nil
	}
	*m = m.adjugate()
	return m.MultiplyScalar(1 / det)
}

// Adjoint replaces m with its adjugate.
func (m *Mat3) Adjoint() *Mat3 {
	*m = m.adjugate()
	return m
}

// Determinant returns the determinant of m.
func (m Mat3) Determinant() float32 {
	return m[0]*(m[8]*m[4]-m[5]*m[7]) +
		m[1]*(-m[8]*m[3]+m[5]*m[6]) +
		m[2]*(m[7]*m[3]-m[4]*m[6])
}

// Multiply sets m to m · b.
func (m *Mat3) Multiply(b Mat3) *Mat3 {
	a := *m
	for col := range 3 {
		b0, b1, b2 := b[col*3], b[col*3+1], b[col*3+2]
		for row := range 3 {
			m[col*3+row] = b0*a[row] + b1*a[row+3] + b2*a[row+6]
		}
	}
	return m
}

// Translate sets m to m · T(v).
func (m *Mat3) Translate(v Vec2) *Mat3 {
	x, y := v[0], v[1]
	m[6] = x*m[0] + y*m[3] + m[6]
	m[7] = x*m[1] + y*m[4] + m[7]
	m[8] = x*m[2] + y*m[5] + m[8]
	return m
}

// Rotate sets m to m · R(rad).
func (m *Mat3) Rotate(rad float32) *Mat3 {
	s, c := math32.Sincos(rad)
	for i := range 3 {
		a0, a1 := m[i], m[3+i]
		m[i] = c*a0 + s*a1
		m[3+i] = c*a1 - s*a0
	}
	return m
}

// Scale sets m to m · S(v).
func (m *Mat3) Scale(v Vec2) *Mat3 {
	for i := range 3 {
		m[i] *= v[0]
		m[3+i] *= v[1]
	}
	return m
}

// FromTranslation sets m to a translation matrix.
func (m *Mat3) FromTranslation(v Vec2) *Mat3 {
	*m = identity3
	m[6], m[7] = v[0], v[1]
	return m
}

// FromRotation sets m to a rotation of rad around the origin.
func (m *Mat3) FromRotation(rad float32) *Mat3 {
	return m.Identity().Rotate(rad)
}

// FromScaling sets m to a scaling matrix.
func (m *Mat3) FromScaling(v Vec2) *Mat3 {
	*m = identity3
	m[0], m[4] = v[0], v[1]
	return m
}

// FromMat4 sets m to the upper-left 3x3 of a.
func (m *Mat3) FromMat4(a Mat4) *Mat3 {
	*m = Mat3{
		a[0], a[1], a[2],
		a[4], a[5], a[6],
		a[8], a[9], a[10],
	}
	return m
}

// NormalFromMat4 sets m to the inverse transpose of the upper-left 3x3 of
// a, the matrix that carries surface normals through the model transform
// a. It returns nil and leaves m unchanged when a is singular.
func (m *Mat3) NormalFromMat4(a Mat4) *Mat3 {
	var n Mat3
	if n.FromMat4(a).Invert() == nil {
		return nil
	}
	*m = n
	return m.Transpose()
}

// Projection sets m to a 2D projection mapping pixel coordinates with a
// top-left origin to clip space.
func (m *Mat3) Projection(width, height float32) *Mat3 {
	*m = Mat3{
		2 / width, 0, 0,
		0, -2 / height, 0,
		-1, 1, 1,
	}
	return m
}

// Frob returns the Frobenius norm of m.
func (m Mat3) Frob() float32 {
	var sum float32
	for _, v := range m {
		sum += v * v
	}
	return math32.Sqrt(sum)
}

// Add adds b to m element-wise.
func (m *Mat3) Add(b Mat3) *Mat3 {
	for i := range m {
		m[i] += b[i]
	}
	return m
}

// Subtract subtracts b from m element-wise.
func (m *Mat3) Subtract(b Mat3) *Mat3 {
	for i := range m {
		m[i] -= b[i]
	}
	return m
}

// MultiplyScalar multiplies every element of m by s.
func (m *Mat3) MultiplyScalar(s float32) *Mat3 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// MultiplyScalarAndAdd adds b scaled by s to m.
func (m *Mat3) MultiplyScalarAndAdd(b Mat3, s float32) *Mat3 {
	for i := range m {
		m[i] += b[i] * s
	}
	return m
}

// MultiplyVec transforms the 2D point v (w=1) by m.
func (m Mat3) MultiplyVec(v Vec2) Vec2 {
	return Vec2{
		m[0]*v[0] + m[3]*v[1] + m[6],
		m[1]*v[0] + m[4]*v[1] + m[7],
	}
}

// ExactEquals reports whether m and b have identical elements.
func (m Mat3) ExactEquals(b Mat3) bool {
	return m == b
}

// Equals reports whether m and b are equal within Epsilon.
func (m Mat3) Equals(b Mat3) bool {
	return approxEqualAll(m[:], b[:])
}

// String formats m for debugging.
func (m Mat3) String() string {
	return formatComponents("Mat3", m[:])
}

// MulMat3 returns a · b.
func MulMat3(a, b Mat3) Mat3 {
	return *a.Multiply(b)
}
