package object

import (
	"strconv"

	"github.com/skink-lang/skink/errz"
)

// Number wraps float64 and implements the Object interface. All skink
// numbers are IEEE-754 doubles.
type Number struct {
	value float64
}

func (n *Number) Type() Type {
	return NUMBER
}

func (n *Number) Inspect() string {
	return strconv.FormatFloat(n.value, 'f', -1, 64)
}

func (n *Number) String() string {
	return n.Inspect()
}

func (n *Number) Value() float64 {
	return n.value
}

func (n *Number) Equals(other Object) bool {
	if other, ok := other.(*Number); ok {
		// NaN != NaN per IEEE-754
		return n.value == other.value
	}
	return false
}

func (n *Number) Compare(other Object) (int, error) {
	otherNum, ok := other.(*Number)
	if !ok {
		return 0, errz.RuntimeErrorf("unable to compare number and %s", other.Type())
	}
	switch {
	case n.value < otherNum.value:
		return -1, nil
	case n.value > otherNum.value:
		return 1, nil
	default:
		return 0, nil
	}
}

func (n *Number) IsTruthy() bool {
	return true
}

// NewNumber creates a Number containing the given value.
func NewNumber(value float64) *Number {
	return &Number{value: value}
}
