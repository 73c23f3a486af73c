package vm

import "github.com/skink-lang/skink/object"

// frame records where to resume after a call returns. The base is the
// operand-stack index at which the called function's arguments and locals
// begin; the callee value itself sits one slot below.
type frame struct {
	returnIP int
	base     int
	fn       *object.ScriptFunction
}

// frameBase returns the base of the active frame, or 0 when execution is
// at the top level.
func (vm *VirtualMachine) frameBase() int {
	if len(vm.frames) == 0 {
		return 0
	}
	return vm.frames[len(vm.frames)-1].base
}

func (vm *VirtualMachine) pushFrame(f frame) {
	vm.frames = append(vm.frames, f)
}

func (vm *VirtualMachine) popFrame() frame {
	f := vm.frames[len(vm.frames)-1]
	vm.frames = vm.frames[:len(vm.frames)-1]
	return f
}
