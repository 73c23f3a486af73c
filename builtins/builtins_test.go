package builtins

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skink-lang/skink/object"
)

func TestDefaultsAreCallable(t *testing.T) {
	for name, obj := range Defaults() {
		fn, ok := obj.(*object.NativeFunction)
		require.True(t, ok, name)
		require.Equal(t, name, fn.Name())
	}
}

func TestLen(t *testing.T) {
	result, err := Len([]object.Object{object.NewString("hello")})
	require.Nil(t, err)
	require.True(t, result.Equals(object.NewNumber(5)))

	_, err = Len([]object.Object{object.NewNumber(1)})
	require.NotNil(t, err)
}

func TestTypeOf(t *testing.T) {
	tests := []struct {
		obj  object.Object
		want string
	}{
		{object.Nil, "nil"},
		{object.True, "bool"},
		{object.NewNumber(1), "number"},
		{object.NewString(""), "string"},
		{object.NewScriptFunction("f", 0, 0), "function"},
	}
	for _, tt := range tests {
		result, err := TypeOf([]object.Object{tt.obj})
		require.Nil(t, err)
		require.Equal(t, tt.want, result.(*object.String).Value())
	}
}

func TestStr(t *testing.T) {
	result, err := Str([]object.Object{object.NewNumber(1.5)})
	require.Nil(t, err)
	require.Equal(t, "1.5", result.(*object.String).Value())
}

func TestNum(t *testing.T) {
	result, err := Num([]object.Object{object.NewString("1.5")})
	require.Nil(t, err)
	require.True(t, result.Equals(object.NewNumber(1.5)))

	_, err = Num([]object.Object{object.NewString("abc")})
	require.NotNil(t, err)

	_, err = Num([]object.Object{object.Nil})
	require.NotNil(t, err)
}

func TestMath(t *testing.T) {
	result, err := Abs([]object.Object{object.NewNumber(-3)})
	require.Nil(t, err)
	require.True(t, result.Equals(object.NewNumber(3)))

	result, err = Sqrt([]object.Object{object.NewNumber(9)})
	require.Nil(t, err)
	require.True(t, result.Equals(object.NewNumber(3)))

	result, err = Floor([]object.Object{object.NewNumber(1.9)})
	require.Nil(t, err)
	require.True(t, result.Equals(object.NewNumber(1)))

	result, err = Ceil([]object.Object{object.NewNumber(1.1)})
	require.Nil(t, err)
	require.True(t, result.Equals(object.NewNumber(2)))

	result, err = Pow([]object.Object{object.NewNumber(2), object.NewNumber(10)})
	require.Nil(t, err)
	require.True(t, result.Equals(object.NewNumber(1024)))

	_, err = Sqrt([]object.Object{object.NewString("9")})
	require.NotNil(t, err)
}

func TestRandom(t *testing.T) {
	result, err := Random(nil)
	require.Nil(t, err)
	value := result.(*object.Number).Value()
	require.GreaterOrEqual(t, value, 0.0)
	require.Less(t, value, 1.0)
}

func TestUUID(t *testing.T) {
	result, err := UUID(nil)
	require.Nil(t, err)
	value := result.(*object.String).Value()
	require.Regexp(t, regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[0-9a-f]{4}-[0-9a-f]{12}$`), value)
}
