// Package builtins defines a default set of native functions the host can
// install into a VM.
package builtins

import (
	"math"
	"math/rand"
	"strconv"
	"time"

	"github.com/gofrs/uuid"

	"github.com/skink-lang/skink/errz"
	"github.com/skink-lang/skink/object"
)

// Defaults returns the default native functions keyed by name. Install
// them with vm.SetVar.
func Defaults() map[string]object.Object {
	return map[string]object.Object{
		"len":    object.NewNativeFunction("len", 1, Len),
		"type":   object.NewNativeFunction("type", 1, TypeOf),
		"str":    object.NewNativeFunction("str", 1, Str),
		"num":    object.NewNativeFunction("num", 1, Num),
		"abs":    object.NewNativeFunction("abs", 1, Abs),
		"sqrt":   object.NewNativeFunction("sqrt", 1, Sqrt),
		"floor":  object.NewNativeFunction("floor", 1, Floor),
		"ceil":   object.NewNativeFunction("ceil", 1, Ceil),
		"pow":    object.NewNativeFunction("pow", 2, Pow),
		"clock":  object.NewNativeFunction("clock", 0, Clock),
		"random": object.NewNativeFunction("random", 0, Random),
		"uuid":   object.NewNativeFunction("uuid", 0, UUID),
	}
}

func Len(args []object.Object) (object.Object, error) {
	s, ok := args[0].(*object.String)
	if !ok {
		return nil, errz.RuntimeErrorf("len expected a string (%s given)", args[0].Type())
	}
	return object.NewNumber(float64(len(s.Value()))), nil
}

func TypeOf(args []object.Object) (object.Object, error) {
	return object.NewString(string(args[0].Type())), nil
}

func Str(args []object.Object) (object.Object, error) {
	return object.NewString(object.ToString(args[0])), nil
}

func Num(args []object.Object) (object.Object, error) {
	switch arg := args[0].(type) {
	case *object.Number:
		return arg, nil
	case *object.String:
		value, err := strconv.ParseFloat(arg.Value(), 64)
		if err != nil {
			return nil, errz.RuntimeErrorf("num could not parse %q", arg.Value())
		}
		return object.NewNumber(value), nil
	default:
		return nil, errz.RuntimeErrorf("num expected a number or string (%s given)", args[0].Type())
	}
}

func Abs(args []object.Object) (object.Object, error) {
	n, err := asNumber("abs", args[0])
	if err != nil {
		return nil, err
	}
	return object.NewNumber(math.Abs(n)), nil
}

func Sqrt(args []object.Object) (object.Object, error) {
	n, err := asNumber("sqrt", args[0])
	if err != nil {
		return nil, err
	}
	return object.NewNumber(math.Sqrt(n)), nil
}

func Floor(args []object.Object) (object.Object, error) {
	n, err := asNumber("floor", args[0])
	if err != nil {
		return nil, err
	}
	return object.NewNumber(math.Floor(n)), nil
}

func Ceil(args []object.Object) (object.Object, error) {
	n, err := asNumber("ceil", args[0])
	if err != nil {
		return nil, err
	}
	return object.NewNumber(math.Ceil(n)), nil
}

func Pow(args []object.Object) (object.Object, error) {
	base, err := asNumber("pow", args[0])
	if err != nil {
		return nil, err
	}
	exp, err := asNumber("pow", args[1])
	if err != nil {
		return nil, err
	}
	return object.NewNumber(math.Pow(base, exp)), nil
}

// Clock returns the wall-clock time in fractional seconds.
func Clock(args []object.Object) (object.Object, error) {
	return object.NewNumber(float64(time.Now().UnixNano()) / 1e9), nil
}

func Random(args []object.Object) (object.Object, error) {
	return object.NewNumber(rand.Float64()), nil
}

// UUID returns a new random (v4) UUID string.
func UUID(args []object.Object) (object.Object, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, errz.RuntimeErrorf("uuid: %s", err)
	}
	return object.NewString(id.String()), nil
}

func asNumber(fn string, obj object.Object) (float64, error) {
	n, ok := obj.(*object.Number)
	if !ok {
		return 0, errz.RuntimeErrorf("%s expected a number (%s given)", fn, obj.Type())
	}
	return n.Value(), nil
}
