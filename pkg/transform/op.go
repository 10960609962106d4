package transform

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/taigrr/neon/pkg/math3d"
)

var (
	// ErrUnknownOp is returned when an op name is not one of the supported
	// matrix operations.
	ErrUnknownOp = errors.New("unknown transform op")
	// ErrParams is returned when an op gets the wrong number of parameters
	// or a parameter that is not a number.
	ErrParams = errors.New("bad transform op parameters")
	// ErrDegenerate is reported by Eval for an op that cannot be applied,
	// such as a rotation around a zero-length axis.
	ErrDegenerate = errors.New("degenerate transform op")
)

// Op is one step of a Transform. The set of ops is closed: Translate,
// Scale, Rotate, RotateX, RotateY, RotateZ and Multiply.
type Op interface {
	// Name returns the op's name as accepted by ParseOp.
	Name() string
	// Params returns the op's parameters in ParseOp order.
	Params() []float32

	// apply post-multiplies the op onto m. It reports false and leaves m
	// unchanged when the op is degenerate.
	apply(m *math3d.Mat4) bool
}

// Translate moves by V.
type Translate struct{ V math3d.Vec3 }

// Scale scales each axis by the matching component of V.
type Scale struct{ V math3d.Vec3 }

// Rotate rotates by Rad radians around Axis. Axis need not be normalized
// but must not be shorter than math3d.Epsilon.
type Rotate struct {
	Rad  float32
	Axis math3d.Vec3
}

// RotateX rotates by Rad radians around the X axis.
type RotateX struct{ Rad float32 }

// RotateY rotates by Rad radians around the Y axis.
type RotateY struct{ Rad float32 }

// RotateZ rotates by Rad radians around the Z axis.
type RotateZ struct{ Rad float32 }

// Multiply post-multiplies an arbitrary matrix.
type Multiply struct{ M math3d.Mat4 }

func (Translate) Name() string { return "translate" }
func (Scale) Name() string     { return "scale" }
func (Rotate) Name() string    { return "rotate" }
func (RotateX) Name() string   { return "rotateX" }
func (RotateY) Name() string   { return "rotateY" }
func (RotateZ) Name() string   { return "rotateZ" }
func (Multiply) Name() string  { return "multiply" }

func (o Translate) Params() []float32 { return o.V[:] }
func (o Scale) Params() []float32     { return o.V[:] }
func (o Rotate) Params() []float32    { return []float32{o.Rad, o.Axis[0], o.Axis[1], o.Axis[2]} }
func (o RotateX) Params() []float32   { return []float32{o.Rad} }
func (o RotateY) Params() []float32   { return []float32{o.Rad} }
func (o RotateZ) Params() []float32   { return []float32{o.Rad} }
func (o Multiply) Params() []float32  { return o.M[:] }

func (o Translate) apply(m *math3d.Mat4) bool { m.Translate(o.V); return true }
func (o Scale) apply(m *math3d.Mat4) bool     { m.Scale(o.V); return true }
func (o Rotate) apply(m *math3d.Mat4) bool    { return m.Rotate(o.Rad, o.Axis) != nil }
func (o RotateX) apply(m *math3d.Mat4) bool   { m.RotateX(o.Rad); return true }
func (o RotateY) apply(m *math3d.Mat4) bool   { m.RotateY(o.Rad); return true }
func (o RotateZ) apply(m *math3d.Mat4) bool   { m.RotateZ(o.Rad); return true }
func (o Multiply) apply(m *math3d.Mat4) bool  { m.Multiply(o.M); return true }

func (o Translate) String() string { return formatOp(o) }
func (o Scale) String() string     { return formatOp(o) }
func (o Rotate) String() string    { return formatOp(o) }
func (o RotateX) String() string   { return formatOp(o) }
func (o RotateY) String() string   { return formatOp(o) }
func (o RotateZ) String() string   { return formatOp(o) }
func (o Multiply) String() string  { return formatOp(o) }

// formatOp renders op in the form ParseOps reads back: "name:p0,p1,...".
func formatOp(op Op) string {
	var sb strings.Builder
	sb.WriteString(op.Name())
	for i, p := range op.Params() {
		if i == 0 {
			sb.WriteByte(':')
		} else {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatFloat(float64(p), 'g', -1, 32))
	}
	return sb.String()
}

var arity = map[string]int{
	"translate": 3,
	"scale":     3,
	"rotate":    4,
	"rotateX":   1,
	"rotateY":   1,
	"rotateZ":   1,
	"multiply":  16,
}

// ParseOp builds an op from its name and parameters. Names match the
// math3d.Mat4 methods: translate, scale, rotate, rotateX, rotateY, rotateZ
// and multiply (16 column-major components).
func ParseOp(name string, params ...float32) (Op, error) {
	n, ok := arity[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOp, name)
	}
	if len(params) != n {
		return nil, fmt.Errorf("%w: %s takes %d, got %d", ErrParams, name, n, len(params))
	}

	switch name {
	case "translate":
		return Translate{math3d.V3(params[0], params[1], params[2])}, nil
	case "scale":
		return Scale{math3d.V3(params[0], params[1], params[2])}, nil
	case "rotate":
		return Rotate{Rad: params[0], Axis: math3d.V3(params[1], params[2], params[3])}, nil
	case "rotateX":
		return RotateX{params[0]}, nil
	case "rotateY":
		return RotateY{params[0]}, nil
	case "rotateZ":
		return RotateZ{params[0]}, nil
	default:
		m, err := math3d.Mat4FromSlice(params)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParams, err)
		}
		return Multiply{m}, nil
	}
}

// ParseOps parses a semicolon-separated op list such as
// "translate:0,1,0;rotateX:0.5". Whitespace around tokens is ignored and
// empty entries are skipped.
func ParseOps(s string) ([]Op, error) {
	var ops []Op
	for i, entry := range strings.Split(s, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, args, _ := strings.Cut(entry, ":")
		var params []float32
		if strings.TrimSpace(args) != "" {
			for _, a := range strings.Split(args, ",") {
				f, err := strconv.ParseFloat(strings.TrimSpace(a), 32)
				if err != nil {
					return nil, fmt.Errorf("op %d %q: %w: %w", i, entry, ErrParams, err)
				}
				params = append(params, float32(f))
			}
		}
		op, err := ParseOp(strings.TrimSpace(name), params...)
		if err != nil {
			return nil, fmt.Errorf("op %d: %w", i, err)
		}
		ops = append(ops, op)
	}
	return ops, nil
}
