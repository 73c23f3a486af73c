package object

import "fmt"

// ScriptFunction is a function compiled from skink source. It records the
// entry offset of its body in the chunk's instruction stream. Script
// functions are shared by pointer: the constant pool and any call frames
// reference the same value.
type ScriptFunction struct {
	name  string
	arity int
	ip    int
}

func (f *ScriptFunction) Type() Type {
	return FUNCTION
}

func (f *ScriptFunction) Inspect() string {
	return fmt.Sprintf("<fn %s>", f.name)
}

func (f *ScriptFunction) String() string {
	return f.Inspect()
}

func (f *ScriptFunction) Name() string {
	return f.name
}

func (f *ScriptFunction) Arity() int {
	return f.arity
}

// InstructionPointer returns the offset of the function body's first
// instruction.
func (f *ScriptFunction) InstructionPointer() int {
	return f.ip
}

func (f *ScriptFunction) Equals(other Object) bool {
	return f == other
}

func (f *ScriptFunction) IsTruthy() bool {
	return true
}

// NewScriptFunction creates a ScriptFunction with the given name, arity,
// and entry offset.
func NewScriptFunction(name string, arity, ip int) *ScriptFunction {
	return &ScriptFunction{name: name, arity: arity, ip: ip}
}

// NativeGoFunc is the signature for Go functions installed into the VM as
// skink callables.
type NativeGoFunc func(args []Object) (Object, error)

// NativeFunction wraps a Go function so the host can expose it as a named
// skink callable.
type NativeFunction struct {
	name  string
	arity int
	fn    NativeGoFunc
}

func (f *NativeFunction) Type() Type {
	return FUNCTION
}

func (f *NativeFunction) Inspect() string {
	return fmt.Sprintf("<native %s>", f.name)
}

func (f *NativeFunction) String() string {
	return f.Inspect()
}

func (f *NativeFunction) Name() string {
	return f.name
}

// Arity returns the declared argument count. A negative arity means the
// function is variadic.
func (f *NativeFunction) Arity() int {
	return f.arity
}

// Call invokes the wrapped Go function.
func (f *NativeFunction) Call(args []Object) (Object, error) {
	return f.fn(args)
}

func (f *NativeFunction) Equals(other Object) bool {
	return f == other
}

func (f *NativeFunction) IsTruthy() bool {
	return true
}

// NewNativeFunction creates a NativeFunction with the given name and arity.
// Pass a negative arity for a variadic function.
func NewNativeFunction(name string, arity int, fn NativeGoFunc) *NativeFunction {
	return &NativeFunction{name: name, arity: arity, fn: fn}
}
