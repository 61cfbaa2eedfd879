package stairs

import (
	"math"
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cast"
)

// Op names a pointwise binary operator understood by Combine.
type Op uint8

// Arithmetic operators propagate NaN by IEEE rules; comparison and logical
// operators yield 1/0 and force NaN where either operand is NaN.
const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpLt
	OpGt
	OpLe
	OpGe
	OpEq
	OpNe
	OpAnd
	OpOr
	OpXor

	// opFill takes the right operand wherever the left one is NaN.
	opFill
)

var opNames = [...]string{
	OpAdd: "add", OpSub: "sub", OpMul: "mul", OpDiv: "div",
	OpLt: "lt", OpGt: "gt", OpLe: "le", OpGe: "ge", OpEq: "eq", OpNe: "ne",
	OpAnd: "and", OpOr: "or", OpXor: "xor", opFill: "fillna",
}

// String implements fmt.Stringer.
func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}

	return "op(?)"
}

// arithmetic reports whether NaN propagates through op on its own.
func (op Op) arithmetic() bool {
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv, opFill:
		return true
	}

	return false
}

// eval applies op to one pair of levels. Non-arithmetic operators force NaN
// wherever either side is NaN; comparisons on NaN would otherwise read false.
// Division by a pointwise zero yields NaN rather than ±Inf.
func (op Op) eval(a, b float64) float64 {
	if !op.arithmetic() && (isNaN(a) || isNaN(b)) {
		return math.NaN()
	}
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		if b == 0 {
			return math.NaN()
		}

		return a / b
	case OpLt:
		return boolFloat(a < b)
	case OpGt:
		return boolFloat(a > b)
	case OpLe:
		return boolFloat(a <= b)
	case OpGe:
		return boolFloat(a >= b)
	case OpEq:
		return boolFloat(a == b)
	case OpNe:
		return boolFloat(a != b)
	case OpAnd:
		return boolFloat(a != 0 && b != 0)
	case OpOr:
		return boolFloat(a != 0 || b != 0)
	case OpXor:
		return boolFloat((a != 0) != (b != 0))
	case opFill:
		if isNaN(a) {
			return b
		}

		return a
	}

	return math.NaN()
}

func boolFloat(b bool) float64 {
	if b {
		return 1
	}

	return 0
}

// promote turns a binary operand into a *Stairs: *Stairs passes through,
// numeric scalars become constant functions shaped like like. Anything
// else, strings included, is ErrInvalidOperand.
func promote(x any, like *Stairs) (*Stairs, error) {
	switch v := x.(type) {
	case *Stairs:
		if v == nil {
			return nil, errors.WithStack(ErrNilStairs)
		}

		return v, nil
	case nil:
		return nil, errors.Wrap(ErrInvalidOperand, "nil operand")
	}

	switch reflect.TypeOf(x).Kind() {
	case reflect.Float32, reflect.Float64,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		f, err := cast.ToFloat64E(x)
		if err != nil {
			// named numeric types are not known to cast; go through reflect.
			f = reflect.ValueOf(x).Convert(reflect.TypeOf(float64(0))).Float()
		}

		return like.derive(f), nil
	}

	return nil, errors.Wrapf(ErrInvalidOperand, "%T", x)
}
