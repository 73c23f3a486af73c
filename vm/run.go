package vm

import (
	"fmt"

	"github.com/skink-lang/skink/errz"
	"github.com/skink-lang/skink/object"
	"github.com/skink-lang/skink/op"
)

// run is the fetch-decode-execute loop. The instruction pointer is
// advanced at fetch time; jump opcodes overwrite it with an offset
// computed from the jump instruction's own position.
func (vm *VirtualMachine) run() error {
	chunk := vm.chunk
	vm.ip = 0
	vm.frames = vm.frames[:0]

	for vm.ip < chunk.InstructionCount() {
		base := vm.ip
		instr := chunk.InstructionAt(base)
		vm.ip++

		if vm.trace {
			vm.logger.Trace().
				Int("ip", base).
				Str("op", instr.Opcode.String()).
				Uint64("operand", instr.Operand).
				Int("line", chunk.LineAt(base)).
				Msg("exec")
		}

		switch instr.Opcode {
		case op.NoOp:
			// nothing

		case op.Constant:
			chunk.PushStack(chunk.ConstantAt(instr.Operand))

		case op.Nil:
			chunk.PushStack(object.Nil)

		case op.True:
			chunk.PushStack(object.True)

		case op.False:
			chunk.PushStack(object.False)

		case op.Pop:
			chunk.PopStack()

		case op.PopN:
			chunk.PopStackN(int(instr.Operand))

		case op.Swap:
			a := chunk.PopStack()
			b := chunk.PopStack()
			chunk.PushStack(a)
			chunk.PushStack(b)

		case op.Move:
			vm.move(int(instr.Operand))

		case op.LookupLocal:
			chunk.PushStack(chunk.IndexStack(vm.frameBase() + int(instr.Operand)))

		case op.AssignLocal:
			chunk.SetStack(vm.frameBase()+int(instr.Operand), chunk.PeekStack(0))

		case op.LookupGlobal:
			name := vm.constantName(instr.Operand)
			value, ok := chunk.FindGlobal(name)
			if !ok {
				return vm.runtimeError(errz.RuntimeErrorf("undefined variable %s", name), base)
			}
			chunk.PushStack(value)

		case op.DefineGlobal:
			name := vm.constantName(instr.Operand)
			chunk.SetGlobal(name, chunk.PopStack())

		case op.AssignGlobal:
			name := vm.constantName(instr.Operand)
			if _, ok := chunk.FindGlobal(name); !ok {
				return vm.runtimeError(errz.RuntimeErrorf("undefined variable %s", name), base)
			}
			chunk.SetGlobal(name, chunk.PeekStack(0))

		case op.Equal, op.NotEqual, op.Greater, op.GreaterEqual, op.Less, op.LessEqual:
			b := chunk.PopStack()
			a := chunk.PopStack()
			result, err := object.Compare(instr.Opcode, a, b)
			if err != nil {
				return vm.runtimeError(err, base)
			}
			chunk.PushStack(result)

		case op.Add, op.Sub, op.Mul, op.Div, op.Mod:
			b := chunk.PopStack()
			a := chunk.PopStack()
			result, err := object.BinaryOp(instr.Opcode, a, b)
			if err != nil {
				return vm.runtimeError(err, base)
			}
			chunk.PushStack(result)

		case op.Not:
			chunk.PushStack(object.Not(chunk.PopStack()))

		case op.Negate:
			result, err := object.Negate(chunk.PopStack())
			if err != nil {
				return vm.runtimeError(err, base)
			}
			chunk.PushStack(result)

		case op.Print:
			fmt.Fprintf(vm.conf.Output, "%s\n", object.ToString(chunk.PopStack()))

		case op.Jump:
			vm.ip = base + int(instr.Operand)

		case op.JumpIfFalse:
			if !chunk.PeekStack(0).IsTruthy() {
				vm.ip = base + int(instr.Operand)
			}

		case op.Loop:
			vm.ip = base - int(instr.Operand)

		case op.And:
			if !chunk.PeekStack(0).IsTruthy() {
				vm.ip = base + int(instr.Operand)
			} else {
				chunk.PopStack()
			}

		case op.Or:
			if chunk.PeekStack(0).IsTruthy() {
				vm.ip = base + int(instr.Operand)
			} else {
				chunk.PopStack()
			}

		case op.Call:
			if err := vm.call(int(instr.Operand), base); err != nil {
				return err
			}

		case op.Return:
			if len(vm.frames) == 0 {
				return vm.runtimeError(errz.RuntimeErrorf("return outside of a function"), base)
			}
			result := chunk.PopStack()
			f := vm.popFrame()
			chunk.TruncateStack(f.base - 1)
			chunk.PushStack(result)
			vm.ip = f.returnIP

		case op.End:
			return nil

		default:
			return vm.runtimeError(errz.RuntimeErrorf("unknown opcode: %d", instr.Opcode), base)
		}
	}
	return nil
}

// call dispatches CALL. The callee sits at depth argc on the stack with
// the arguments above it.
func (vm *VirtualMachine) call(argc, offset int) error {
	chunk := vm.chunk
	callee := chunk.PeekStack(argc)

	switch callee := callee.(type) {
	case *object.NativeFunction:
		if callee.Arity() >= 0 && argc != callee.Arity() {
			return vm.runtimeError(errz.RuntimeErrorf(
				"%s expected %d arguments but got %d", callee.Name(), callee.Arity(), argc), offset)
		}
		args := make([]object.Object, argc)
		for i := 0; i < argc; i++ {
			args[i] = chunk.IndexStack(chunk.StackSize() - argc + i)
		}
		result, err := callee.Call(args)
		if err != nil {
			return vm.runtimeError(err, offset)
		}
		if result == nil {
			result = object.Nil
		}
		chunk.TruncateStack(chunk.StackSize() - argc - 1)
		chunk.PushStack(result)
		return nil

	case *object.ScriptFunction:
		if argc != callee.Arity() {
			return vm.runtimeError(errz.RuntimeErrorf(
				"%s expected %d arguments but got %d", callee.Name(), callee.Arity(), argc), offset)
		}
		if len(vm.frames) >= MaxFrameDepth {
			return vm.runtimeError(errz.RuntimeErrorf("stack overflow"), offset)
		}
		vm.pushFrame(frame{
			returnIP: vm.ip,
			base:     chunk.StackSize() - argc,
			fn:       callee,
		})
		vm.ip = callee.InstructionPointer()
		return nil

	default:
		return vm.runtimeError(errz.RuntimeErrorf(
			"cannot call value of type %s", callee.Type()), offset)
	}
}

// move rotates the top of the stack down by n slots, shifting the n values
// below it up by one.
func (vm *VirtualMachine) move(n int) {
	chunk := vm.chunk
	size := chunk.StackSize()
	top := chunk.IndexStack(size - 1)
	for i := size - 1; i > size-1-n; i-- {
		chunk.SetStack(i, chunk.IndexStack(i-1))
	}
	chunk.SetStack(size-1-n, top)
}

// constantName reads an interned identifier name from the constant pool.
func (vm *VirtualMachine) constantName(index uint64) string {
	return vm.chunk.ConstantAt(index).(*object.String).Value()
}
