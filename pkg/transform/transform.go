// Package transform keeps an ordered list of matrix operations and folds
// them into a model matrix on demand.
//
// Ops are applied from the identity in insertion order, each one
// post-multiplied onto the accumulator. The first op is therefore the
// outermost transform: pushing translate then scale yields T·S, which
// scales a point before moving it. Pushing and popping ops gives the
// matrix-stack style used for hierarchical models.
package transform

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/taigrr/neon/pkg/math3d"
)

// Transform is an ordered op-list. The zero value is an empty list. It is
// not safe for concurrent use.
type Transform struct {
	ops []Op
}

// New returns a Transform holding ops.
func New(ops ...Op) *Transform {
	return &Transform{ops: append([]Op(nil), ops...)}
}

// Parse builds a Transform from a ParseOps string.
func Parse(s string) (*Transform, error) {
	ops, err := ParseOps(s)
	if err != nil {
		return nil, err
	}
	return &Transform{ops: ops}, nil
}

// Push appends ops and returns t for chaining.
func (t *Transform) Push(ops ...Op) *Transform {
	t.ops = append(t.ops, ops...)
	return t
}

// AddOp appends the op with the given name and parameters, as accepted by
// ParseOp. Nothing is appended on error.
func (t *Transform) AddOp(name string, params ...float32) error {
	op, err := ParseOp(name, params...)
	if err != nil {
		return err
	}
	t.ops = append(t.ops, op)
	return nil
}

// Pop removes and returns the last op. It reports false when t is empty.
func (t *Transform) Pop() (Op, bool) {
	if len(t.ops) == 0 {
		return nil, false
	}
	op := t.ops[len(t.ops)-1]
	t.ops[len(t.ops)-1] = nil
	t.ops = t.ops[:len(t.ops)-1]
	return op, true
}

// Clear removes every op.
func (t *Transform) Clear() {
	clear(t.ops)
	t.ops = t.ops[:0]
}

// Len returns the number of ops.
func (t *Transform) Len() int {
	return len(t.ops)
}

// Ops returns a copy of the op-list.
func (t *Transform) Ops() []Op {
	return append([]Op(nil), t.ops...)
}

// Clone returns an independent copy of t.
func (t *Transform) Clone() *Transform {
	return New(t.ops...)
}

// String renders t in the form ParseOps reads back.
func (t *Transform) String() string {
	parts := make([]string, len(t.ops))
	for i, op := range t.ops {
		parts[i] = fmt.Sprint(op)
	}
	return strings.Join(parts, ";")
}

// Mat returns the product of every op.
func (t *Transform) Mat() math3d.Mat4 {
	return t.MatAt(len(t.ops))
}

// MatAt returns the product of the first n ops. n is clamped into
// [0, Len()], so a negative n yields the identity rather than counting
// back from the end. A degenerate op leaves the accumulator unchanged.
func (t *Transform) MatAt(n int) math3d.Mat4 {
	m := math3d.Identity4()
	for _, op := range t.ops[:t.clamp(n)] {
		op.apply(&m)
	}
	return m
}

// OpError reports an op that could not be applied.
type OpError struct {
	Index int
	Op    Op
	Err   error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("op %d (%v): %v", e.Index, e.Op, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// Eval is MatAt that reports the first degenerate op as an *OpError
// wrapping ErrDegenerate. The returned matrix skips degenerate ops, so it
// equals MatAt(n) even on error.
func (t *Transform) Eval(n int) (math3d.Mat4, error) {
	m := math3d.Identity4()
	var err error
	for i, op := range t.ops[:t.clamp(n)] {
		if !op.apply(&m) && err == nil {
			err = &OpError{Index: i, Op: op, Err: ErrDegenerate}
		}
	}
	return m, err
}

// Key returns a compact binary encoding of the first n ops, clamped as in
// MatAt. Two prefixes with equal keys produce equal matrices.
func (t *Transform) Key(n int) string {
	buf := make([]byte, 0, 64)
	for _, op := range t.ops[:t.clamp(n)] {
		buf = append(buf, opTag(op))
		for _, p := range op.Params() {
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(p))
		}
	}
	return string(buf)
}

func (t *Transform) clamp(n int) int {
	return min(max(n, 0), len(t.ops))
}

func opTag(op Op) byte {
	switch op.(type) {
	case Translate:
		return 't'
	case Scale:
		return 's'
	case Rotate:
		return 'r'
	case RotateX:
		return 'x'
	case RotateY:
		return 'y'
	case RotateZ:
		return 'z'
	default:
		return 'm'
	}
}
