package math3d

import (
	"errors"
	"fmt"
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Epsilon is the tolerance used by the Equals methods. Differences are
// scaled by max(1, |a|, |b|) so the test is absolute near zero and relative
// for large components.
const Epsilon = 1e-6

// ErrShape is returned when a vector or matrix is built from a component
// source of the wrong length.
var ErrShape = errors.New("math3d: wrong number of components")

func approxEqual[T constraints.Float](a, b T) bool {
	return absf(a-b) <= T(Epsilon)*max(1, absf(a), absf(b))
}

func absf[T constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func approxEqualAll[T constraints.Float](a, b []T) bool {
	for i := range a {
		if !approxEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// round rounds half away from zero. math32 has no Round; the float64 round
// trip is exact for every float32.
func round(x float32) float32 {
	return float32(math.Round(float64(x)))
}

// angle returns the angle between a and b in [0, π]. Both are scaled by
// their largest component first so the products cannot overflow. A zero
// operand gives π/2.
func angle(a, b []float32) float32 {
	var sa, sb float32
	for i := range a {
		sa = max(sa, absf(a[i]))
		sb = max(sb, absf(b[i]))
	}
	var cosine float32
	if sa != 0 && sb != 0 {
		var dot, na, nb float32
		for i := range a {
			x, y := a[i]/sa, b[i]/sb
			dot += x * y
			na += x * x
			nb += y * y
		}
		cosine = dot / math32.Sqrt(na*nb)
	}
	return math32.Acos(clamp(cosine, -1, 1))
}

func clamp(x, lo, hi float32) float32 {
	return math32.Min(math32.Max(x, lo), hi)
}

// ToRadians converts degrees to radians.
func ToRadians(deg float32) float32 {
	return deg * math32.Pi / 180
}

// ToDegrees converts radians to degrees.
func ToDegrees(rad float32) float32 {
	return rad * 180 / math32.Pi
}

func fromSlice(dst []float32, src []float32, kind string) error {
	if len(src) != len(dst) {
		return fmt.Errorf("%s from %d components: %w", kind, len(src), ErrShape)
	}
	copy(dst, src)
	return nil
}

func fromBuffer(dst []float32, buf []float32, offset int, kind string) error {
	if offset < 0 || offset+len(dst) > len(buf) {
		return fmt.Errorf("%s at offset %d of %d-element buffer: %w", kind, offset, len(buf), ErrShape)
	}
	copy(dst, buf[offset:])
	return nil
}

func formatComponents(kind string, c []float32) string {
	s := kind + "("
	for i, v := range c {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprint(v)
	}
	return s + ")"
}
