package vm

import "github.com/rs/zerolog"

// Option configures a VirtualMachine.
type Option func(*VirtualMachine)

// WithLogger sets the logger used for instruction tracing.
func WithLogger(logger zerolog.Logger) Option {
	return func(vm *VirtualMachine) {
		vm.logger = logger
	}
}

// WithTracing enables per-instruction trace logging. Each executed
// instruction is logged with its offset, opcode, operand, and source line.
func WithTracing() Option {
	return func(vm *VirtualMachine) {
		vm.trace = true
	}
}
