package object

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInspect(t *testing.T) {
	tests := []struct {
		obj  Object
		want string
	}{
		{Nil, "nil"},
		{True, "true"},
		{False, "false"},
		{NewNumber(1.2345), "1.2345"},
		{NewNumber(5), "5"},
		{NewNumber(-4), "-4"},
		{NewString("str"), `"str"`},
		{NewScriptFunction("add", 2, 7), "<fn add>"},
		{NewNativeFunction("test", 0, func(args []Object) (Object, error) {
			return Nil, nil
		}), "<native test>"},
		{NewAddress(3), "<address 3>"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.obj.Inspect())
	}
}

func TestToString(t *testing.T) {
	require.Equal(t, "string", ToString(NewString("string")))
	require.Equal(t, "nil", ToString(Nil))
	require.Equal(t, "1.2345", ToString(NewNumber(1.2345)))
	require.Equal(t, "true", ToString(True))
}

func TestTruthiness(t *testing.T) {
	falsy := []Object{Nil, False}
	for _, obj := range falsy {
		require.False(t, obj.IsTruthy())
	}
	truthy := []Object{
		True,
		NewNumber(0),
		NewNumber(1),
		NewString(""),
		NewString("x"),
		NewScriptFunction("f", 0, 0),
		NewAddress(0),
	}
	for _, obj := range truthy {
		require.True(t, obj.IsTruthy())
	}
	// !!v == truthy(v)
	for _, obj := range append(falsy, truthy...) {
		require.Equal(t, obj.IsTruthy(), Not(Not(obj)).(*Bool).Value())
	}
}

func TestEquality(t *testing.T) {
	require.True(t, Nil.Equals(Nil))
	require.True(t, NewNumber(1).Equals(NewNumber(1)))
	require.True(t, NewString("a").Equals(NewString("a")))
	require.True(t, NewBool(true).Equals(True))

	// values of different types are unequal, never an error
	require.False(t, NewNumber(0).Equals(False))
	require.False(t, NewString("nil").Equals(Nil))
	require.False(t, NewNumber(1).Equals(NewString("1")))

	fn := NewScriptFunction("f", 0, 0)
	require.True(t, fn.Equals(fn))
	require.False(t, fn.Equals(NewScriptFunction("f", 0, 0)))

	require.True(t, NewAddress(2).Equals(NewAddress(2)))
	require.False(t, NewAddress(2).Equals(NewAddress(3)))
}

func TestNumberCompare(t *testing.T) {
	n := NewNumber(2)
	result, err := n.Compare(NewNumber(3))
	require.Nil(t, err)
	require.Equal(t, -1, result)

	result, err = n.Compare(NewNumber(2))
	require.Nil(t, err)
	require.Equal(t, 0, result)

	result, err = n.Compare(NewNumber(1))
	require.Nil(t, err)
	require.Equal(t, 1, result)

	_, err = n.Compare(NewString("2"))
	require.NotNil(t, err)
}

func TestStringCompare(t *testing.T) {
	s := NewString("b")
	result, err := s.Compare(NewString("c"))
	require.Nil(t, err)
	require.Equal(t, -1, result)

	result, err = s.Compare(NewString("a"))
	require.Nil(t, err)
	require.Equal(t, 1, result)

	_, err = s.Compare(NewNumber(1))
	require.NotNil(t, err)
}
