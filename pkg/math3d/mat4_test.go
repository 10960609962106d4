package math3d

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/chewxy/math32"
)

func randMat4(r *rand.Rand) Mat4 {
	var m Mat4
	for i := range m {
		m[i] = r.Float32()*4 - 2
	}
	return m
}

func closeMat4(a, b Mat4, tol float32) bool {
	for i := range a {
		if !near(a[i], b[i], tol) {
			return false
		}
	}
	return true
}

func TestMat4Identity(t *testing.T) {
	m := NewMat4()
	if *m != Identity4() {
		t.Errorf("NewMat4 = %v, want identity", *m)
	}

	var zero Mat4
	if zero.Determinant() != 0 {
		t.Errorf("zero value determinant = %v, want 0", zero.Determinant())
	}
}

func TestMat4IdentityLaws(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 8))
	id := Identity4()
	for range 100 {
		m := randMat4(r)
		if got := MulMat4(id, m); !got.ExactEquals(m) {
			t.Fatalf("I·M = %v, want %v", got, m)
		}
		if got := MulMat4(m, id); !got.ExactEquals(m) {
			t.Fatalf("M·I = %v, want %v", got, m)
		}
	}
}

func TestMat4InverseRoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(9, 10))
	for range 100 {
		m := Identity4()
		m.Translate(randVec3(r)).
			RotateX(r.Float32() * math32.Pi).
			RotateY(r.Float32() * math32.Pi).
			Scale(V3(1+r.Float32(), 1+r.Float32(), 1+r.Float32()))

		inv, ok := InverseMat4(m)
		if !ok {
			t.Fatalf("InverseMat4(%v) reported singular", m)
		}
		if got := MulMat4(m, inv); !closeMat4(got, Identity4(), 1e-5) {
			t.Fatalf("M·M⁻¹ = %v, want identity", got)
		}
		if got := MulMat4(inv, m); !closeMat4(got, Identity4(), 1e-5) {
			t.Fatalf("M⁻¹·M = %v, want identity", got)
		}
	}
}

func TestMat4InvertSingular(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
	}{
		{"zero", Mat4{}},
		{"all ones", Mat4FromScalar(1)},
		{"flattened", *NewMat4().Scale(V3(1, 0, 1))},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := tc.m
			if m.Invert() != nil {
				t.Fatal("Invert returned non-nil for singular matrix")
			}
			if m != tc.m {
				t.Errorf("singular matrix modified: %v", m)
			}
		})
	}
}

func TestMat4Adjoint(t *testing.T) {
	m := Identity4()
	m.Translate(V3(1, 2, 3)).Scale(V3(2, 4, 8))
	det := m.Determinant()
	if det != 64 {
		t.Fatalf("Determinant = %v, want 64", det)
	}

	adj := *m.Clone().Adjoint()
	inv, _ := InverseMat4(m)
	if !adj.Equals(*inv.MultiplyScalar(det)) {
		t.Errorf("adjoint = %v, want det·inverse = %v", adj, inv)
	}
}

func TestMat4CompositionOrder(t *testing.T) {
	tests := []struct {
		name  string
		build func(*Mat4)
		point Vec3
		want  Vec3
	}{
		{
			name:  "translate then scale keeps origin on the translation",
			build: func(m *Mat4) { m.Translate(V3(1, 0, 0)).Scale(V3(2, 2, 2)) },
			point: V3(0, 0, 0),
			want:  V3(1, 0, 0),
		},
		{
			name:  "translate then scale scales before translating",
			build: func(m *Mat4) { m.Translate(V3(0, -1, 0)).Scale(V3(2, 0.25, 2)) },
			point: V3(1, 1, 1),
			want:  V3(2, -0.75, 2),
		},
		{
			name:  "scale then translate scales the translation",
			build: func(m *Mat4) { m.Scale(V3(2, 2, 2)).Translate(V3(1, 0, 0)) },
			point: V3(0, 0, 0),
			want:  V3(2, 0, 0),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := Identity4()
			tc.build(&m)
			if got := m.Transform(tc.point); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMat4RotateAxis(t *testing.T) {
	tests := []struct {
		name    string
		axis    Vec3
		rotate  func(*Mat4, float32) *Mat4
		fromRot func(*Mat4, float32) *Mat4
	}{
		{"x", V3(1, 0, 0), (*Mat4).RotateX, (*Mat4).FromXRotation},
		{"y", V3(0, 2, 0), (*Mat4).RotateY, (*Mat4).FromYRotation},
		{"z", V3(0, 0, 3), (*Mat4).RotateZ, (*Mat4).FromZRotation},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			const rad = 0.7
			general := Identity4()
			if general.Rotate(rad, tc.axis) == nil {
				t.Fatal("Rotate returned nil for a valid axis")
			}
			specific := Identity4()
			tc.rotate(&specific, rad)
			if !general.Equals(specific) {
				t.Errorf("Rotate(axis) = %v, want %v", general, specific)
			}

			var from Mat4
			tc.fromRot(&from, rad)
			if !from.Equals(specific) {
				t.Errorf("FromRotation = %v, want %v", from, specific)
			}
		})
	}
}

func TestMat4RotateDegenerateAxis(t *testing.T) {
	m := Identity4()
	m.Translate(V3(1, 2, 3))
	before := m

	if m.Rotate(1, V3(0, 0, 0)) != nil {
		t.Error("Rotate with zero axis returned non-nil")
	}
	if m.Rotate(1, V3(1e-7, 0, 0)) != nil {
		t.Error("Rotate with sub-epsilon axis returned non-nil")
	}
	if m != before {
		t.Errorf("matrix modified: %v", m)
	}

	var f Mat4
	if f.FromRotation(1, Vec3{}) != nil {
		t.Error("FromRotation with zero axis returned non-nil")
	}
}

func TestMat4Decompose(t *testing.T) {
	m := Identity4()
	m.Translate(V3(1, 2, 3)).RotateZ(0.4).RotateX(1.1).Scale(V3(2, 3, 4))

	if got := m.Translation(); got != V3(1, 2, 3) {
		t.Errorf("Translation = %v, want (1, 2, 3)", got)
	}
	s := m.Scaling()
	if !near(s[0], 2, 1e-5) || !near(s[1], 3, 1e-5) || !near(s[2], 4, 1e-5) {
		t.Errorf("Scaling = %v, want (2, 3, 4)", s)
	}
	if got := m.Get(1, 3); got != 2 {
		t.Errorf("Get(1, 3) = %v, want 2", got)
	}
}

func TestMat4Transpose(t *testing.T) {
	r := rand.New(rand.NewPCG(11, 12))
	m := randMat4(r)
	tt := *m.Clone().Transpose()
	if tt.Get(0, 1) != m.Get(1, 0) || tt.Get(2, 3) != m.Get(3, 2) {
		t.Errorf("transpose did not swap rows and columns")
	}
	if !tt.Transpose().ExactEquals(m) {
		t.Error("double transpose is not the original")
	}
}

func TestMat4LookAt(t *testing.T) {
	var m Mat4
	m.LookAt(V3(0, 0, 5), V3(0, 0, 0), Up())

	if got := m.Transform(V3(0, 0, 0)); !got.Equals(V3(0, 0, -5)) {
		t.Errorf("origin in view space = %v, want (0, 0, -5)", got)
	}
	if got := m.Transform(V3(1, 0, 0)); !got.Equals(V3(1, 0, -5)) {
		t.Errorf("+X in view space = %v, want (1, 0, -5)", got)
	}

	var target Mat4
	target.TargetTo(V3(0, 0, 5), V3(0, 0, 0), Up())
	if got := MulMat4(m, target); !closeMat4(got, Identity4(), 1e-6) {
		t.Errorf("LookAt·TargetTo = %v, want identity", got)
	}
}

func TestMat4LookAtDegenerate(t *testing.T) {
	m := Identity4()
	m.Translate(V3(4, 5, 6))

	eye := V3(1, 2, 3)
	m.LookAt(eye, V3(1, 2, 3+1e-7), Up())
	if m != Identity4() {
		t.Errorf("got %v, want identity", m)
	}
}

func TestMat4Perspective(t *testing.T) {
	const (
		fovy   = math32.Pi / 2
		aspect = 2
		zNear  = 1
		zFar   = 11
	)

	var no, zo, inf, infZO Mat4
	no.PerspectiveNO(fovy, aspect, zNear, zFar)
	zo.PerspectiveZO(fovy, aspect, zNear, zFar)
	inf.PerspectiveNO(fovy, aspect, zNear, math32.Inf(1))
	infZO.PerspectiveZO(fovy, aspect, zNear, math32.Inf(1))

	tests := []struct {
		name  string
		m     Mat4
		point Vec3
		wantZ float32
	}{
		{"NO near", no, V3(0, 0, -zNear), -1},
		{"NO far", no, V3(0, 0, -zFar), 1},
		{"ZO near", zo, V3(0, 0, -zNear), 0},
		{"ZO far", zo, V3(0, 0, -zFar), 1},
		{"infinite NO near", inf, V3(0, 0, -zNear), -1},
		{"infinite ZO near", infZO, V3(0, 0, -zNear), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.m.Transform(tc.point); !near(got[2], tc.wantZ, 1e-5) {
				t.Errorf("ndc z = %v, want %v", got[2], tc.wantZ)
			}
		})
	}

	if inf[10] != -1 || inf[14] != -2 {
		t.Errorf("infinite projection = %v", inf)
	}
	if !near(no[0], 0.5, 1e-6) || !near(no[5], 1, 1e-6) {
		t.Errorf("focal terms = %v, %v, want 0.5, 1", no[0], no[5])
	}

	var alias Mat4
	alias.Perspective(fovy, aspect, zNear, zFar)
	if alias != no {
		t.Error("Perspective differs from PerspectiveNO")
	}
}

func TestMat4Ortho(t *testing.T) {
	var no, zo Mat4
	no.OrthoNO(-2, 2, -1, 1, 1, 3)
	zo.OrthoZO(-2, 2, -1, 1, 1, 3)

	if got := no.Transform(V3(2, 1, -3)); !got.Equals(V3(1, 1, 1)) {
		t.Errorf("NO corner = %v, want (1, 1, 1)", got)
	}
	if got := zo.Transform(V3(-2, -1, -1)); !got.Equals(V3(-1, -1, 0)) {
		t.Errorf("ZO corner = %v, want (-1, -1, 0)", got)
	}

	var alias Mat4
	alias.Ortho(-2, 2, -1, 1, 1, 3)
	if alias != no {
		t.Error("Ortho differs from OrthoNO")
	}
}

func TestMat4Frustum(t *testing.T) {
	var f, p Mat4
	f.Frustum(-1, 1, -1, 1, 1, 10)
	p.PerspectiveNO(math32.Pi/2, 1, 1, 10)
	if !f.Equals(p) {
		t.Errorf("symmetric frustum = %v, want %v", f, p)
	}
}

func TestMat4TransformZeroW(t *testing.T) {
	m := Identity4()
	m[15] = 0
	if got := m.Transform(V3(1, 2, 3)); got != V3(1, 2, 3) {
		t.Errorf("got %v, want (1, 2, 3)", got)
	}
}

func TestMat4TransformDir(t *testing.T) {
	m := Identity4()
	m.Translate(V3(10, 10, 10)).Scale(V3(2, 2, 2))
	if got := m.TransformDir(V3(1, 0, 0)); got != V3(2, 0, 0) {
		t.Errorf("got %v, want (2, 0, 0)", got)
	}
}

func TestMat4Arithmetic(t *testing.T) {
	a := Identity4()
	b := Mat4FromScalar(2)

	if got := *a.Clone().Add(b); got[0] != 3 || got[1] != 2 {
		t.Errorf("Add = %v", got)
	}
	if got := *a.Clone().Subtract(b); got[0] != -1 || got[1] != -2 {
		t.Errorf("Subtract = %v", got)
	}
	if got := *b.Clone().MultiplyScalar(0.5); got != Mat4FromScalar(1) {
		t.Errorf("MultiplyScalar = %v", got)
	}
	if got := *a.Clone().MultiplyScalarAndAdd(b, 0.5); got[0] != 2 || got[1] != 1 {
		t.Errorf("MultiplyScalarAndAdd = %v", got)
	}
	if got := Identity4().Frob(); got != 2 {
		t.Errorf("Frob = %v, want 2", got)
	}
}

func TestMat4FromSlice(t *testing.T) {
	src := make([]float32, 16)
	for i := range src {
		src[i] = float32(i)
	}

	m, err := Mat4FromSlice(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	src[0] = 99
	if m[0] != 0 || m[15] != 15 {
		t.Errorf("got %v", m)
	}

	if _, err := Mat4FromSlice(src[:15]); !errors.Is(err, ErrShape) {
		t.Errorf("err = %v, want ErrShape", err)
	}
	if _, err := Mat4FromBuffer(append(src, 1, 2), 2); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := Mat4FromBuffer(src, 1); !errors.Is(err, ErrShape) {
		t.Errorf("err = %v, want ErrShape", err)
	}
}
