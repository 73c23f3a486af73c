package object

import "fmt"

// Bool wraps bool and implements the Object interface. The two values are
// singletons; use NewBool to obtain them.
type Bool struct {
	value bool
}

func (b *Bool) Type() Type {
	return BOOL
}

func (b *Bool) Inspect() string {
	return fmt.Sprintf("%t", b.value)
}

func (b *Bool) String() string {
	return b.Inspect()
}

func (b *Bool) Value() bool {
	return b.value
}

func (b *Bool) Equals(other Object) bool {
	if other, ok := other.(*Bool); ok {
		return b.value == other.value
	}
	return false
}

func (b *Bool) IsTruthy() bool {
	return b.value
}

// NewBool returns the singleton Bool for the given value.
func NewBool(value bool) *Bool {
	if value {
		return True
	}
	return False
}
