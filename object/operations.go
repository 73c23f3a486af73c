package object

import (
	"math"

	"github.com/skink-lang/skink/errz"
	"github.com/skink-lang/skink/op"
)

// Compare two objects using the given comparison opcode. Equality is total:
// values of different types are unequal and comparing them never raises.
// Ordering is defined on numbers and on strings (lexicographic); any other
// combination returns an error.
func Compare(opcode op.Code, a, b Object) (Object, error) {
	switch opcode {
	case op.Equal:
		return NewBool(a.Equals(b)), nil
	case op.NotEqual:
		return NewBool(!a.Equals(b)), nil
	}

	comparable, ok := a.(Comparable)
	if !ok {
		return nil, errz.RuntimeErrorf("unable to compare %s and %s", a.Type(), b.Type())
	}
	value, err := comparable.Compare(b)
	if err != nil {
		return nil, err
	}

	switch opcode {
	case op.Less:
		return NewBool(value < 0), nil
	case op.LessEqual:
		return NewBool(value <= 0), nil
	case op.Greater:
		return NewBool(value > 0), nil
	case op.GreaterEqual:
		return NewBool(value >= 0), nil
	default:
		return nil, errz.RuntimeErrorf("unknown comparison opcode: %d", opcode)
	}
}

// BinaryOp performs an arithmetic operation on two objects, given an
// arithmetic opcode.
func BinaryOp(opcode op.Code, a, b Object) (Object, error) {
	if opcode == op.Add {
		return add(a, b)
	}
	left, lok := a.(*Number)
	right, rok := b.(*Number)
	if !lok || !rok {
		return nil, errz.RuntimeErrorf("unsupported operands for %s: %s and %s",
			opcode, a.Type(), b.Type())
	}
	switch opcode {
	case op.Sub:
		return NewNumber(left.Value() - right.Value()), nil
	case op.Mul:
		return NewNumber(left.Value() * right.Value()), nil
	case op.Div:
		if right.Value() == 0 {
			return nil, errz.RuntimeErrorf("division by zero")
		}
		return NewNumber(left.Value() / right.Value()), nil
	case op.Mod:
		if right.Value() == 0 {
			return nil, errz.RuntimeErrorf("division by zero")
		}
		return NewNumber(math.Mod(left.Value(), right.Value())), nil
	default:
		return nil, errz.RuntimeErrorf("unknown arithmetic opcode: %d", opcode)
	}
}

// add implements the ADD opcode: number addition, or string concatenation
// when either operand is a string. The non-string operand is coerced via
// its display string.
func add(a, b Object) (Object, error) {
	if left, ok := a.(*Number); ok {
		if right, ok := b.(*Number); ok {
			return NewNumber(left.Value() + right.Value()), nil
		}
	}
	if left, ok := a.(*String); ok {
		return NewString(left.Value() + ToString(b)), nil
	}
	if right, ok := b.(*String); ok {
		return NewString(ToString(a) + right.Value()), nil
	}
	return nil, errz.RuntimeErrorf("unsupported operands for %s: %s and %s",
		op.Add, a.Type(), b.Type())
}

// Negate returns the arithmetic negation of a number.
func Negate(obj Object) (Object, error) {
	num, ok := obj.(*Number)
	if !ok {
		return nil, errz.RuntimeErrorf("unable to negate type %s", obj.Type())
	}
	return NewNumber(-num.Value()), nil
}

// Not returns the logical inverse of an object's truthiness.
func Not(obj Object) Object {
	return NewBool(!obj.IsTruthy())
}
