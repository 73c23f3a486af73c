package object

import "fmt"

// Address is an opaque instruction-pointer or stack-frame marker. The VM
// may place addresses on the operand stack during calls; scripts cannot
// construct them.
type Address struct {
	ptr int
}

func (a *Address) Type() Type {
	return ADDRESS
}

func (a *Address) Inspect() string {
	return fmt.Sprintf("<address %d>", a.ptr)
}

func (a *Address) String() string {
	return a.Inspect()
}

func (a *Address) Value() int {
	return a.ptr
}

func (a *Address) Equals(other Object) bool {
	if other, ok := other.(*Address); ok {
		return a.ptr == other.ptr
	}
	return false
}

func (a *Address) IsTruthy() bool {
	return true
}

// NewAddress creates an Address pointing at the given offset.
func NewAddress(ptr int) *Address {
	return &Address{ptr: ptr}
}
