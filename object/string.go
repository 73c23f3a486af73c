package object

import (
	"fmt"
	"strings"

	"github.com/skink-lang/skink/errz"
)

// String wraps an owned, immutable string and implements the Object
// interface.
type String struct {
	value string
}

func (s *String) Type() Type {
	return STRING
}

func (s *String) Inspect() string {
	return fmt.Sprintf("%q", s.value)
}

func (s *String) String() string {
	return s.value
}

func (s *String) Value() string {
	return s.value
}

func (s *String) Equals(other Object) bool {
	if other, ok := other.(*String); ok {
		return s.value == other.value
	}
	return false
}

func (s *String) Compare(other Object) (int, error) {
	otherStr, ok := other.(*String)
	if !ok {
		return 0, errz.RuntimeErrorf("unable to compare string and %s", other.Type())
	}
	return strings.Compare(s.value, otherStr.value), nil
}

func (s *String) IsTruthy() bool {
	return true
}

// NewString creates a String containing the given value.
func NewString(value string) *String {
	return &String{value: value}
}
