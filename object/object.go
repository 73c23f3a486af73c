// Package object provides the standard set of skink value types.
//
// For external users of skink, often an object.Object interface will be
// type asserted to a specific object type, such as *object.Number.
//
// For example:
//
//	switch obj := obj.(type) {
//	case *object.String:
//		// do something with obj.Value()
//	case *object.Number:
//		// do something with obj.Value()
//	}
//
// The Type() method of each object may also be used to get a string
// name of the object type, such as "string" or "number".
package object

// Type of an object as a string.
type Type string

// Type constants
const (
	NIL      Type = "nil"
	BOOL     Type = "bool"
	NUMBER   Type = "number"
	STRING   Type = "string"
	FUNCTION Type = "function"
	ADDRESS  Type = "address"
)

var (
	// Nil is the singleton nil value.
	Nil = &NilType{}

	// True and False are the singleton boolean values.
	True  = &Bool{value: true}
	False = &Bool{value: false}
)

// Object is the interface that all skink value types implement.
type Object interface {
	// Type of the object.
	Type() Type

	// Inspect returns a string representation of the given object, as it
	// would appear in source code or in disassembly output.
	Inspect() string

	// Equals returns true if the given object is equal to this object.
	// Comparing values of different types is defined and returns false.
	Equals(other Object) bool

	// IsTruthy returns true if the object is considered "truthy". Only nil
	// and false are falsy.
	IsTruthy() bool
}

// Comparable is implemented by object types with a defined ordering.
//
//	-1 if this < other
//	 0 if this == other
//	 1 if this > other
type Comparable interface {
	Compare(other Object) (int, error)
}

// ToString returns the display string for an object, as produced by the
// print statement and by string coercion.
func ToString(obj Object) string {
	if s, ok := obj.(*String); ok {
		return s.Value()
	}
	return obj.Inspect()
}
