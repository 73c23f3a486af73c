// Package vm provides a VirtualMachine that compiles and executes skink
// scripts against a bytecode chunk.
package vm

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/skink-lang/skink/bytecode"
	"github.com/skink-lang/skink/errz"
	"github.com/skink-lang/skink/object"
	"github.com/skink-lang/skink/parser"
)

const (
	// MaxFrameDepth bounds call nesting; exceeding it is a runtime error.
	MaxFrameDepth = 1024
)

// Config carries the host-provided I/O for a VirtualMachine. A nil Input
// or Output defaults to the process streams.
type Config struct {
	Input  io.Reader
	Output io.Writer
}

// VirtualMachine owns a chunk and executes its instruction stream. Globals
// live on the chunk and survive across scripts run on the same machine.
type VirtualMachine struct {
	conf   Config
	chunk  *bytecode.Chunk
	ip     int
	frames []frame
	logger zerolog.Logger
	trace  bool
}

// New creates a VirtualMachine with the given configuration.
func New(conf Config, options ...Option) *VirtualMachine {
	if conf.Input == nil {
		conf.Input = os.Stdin
	}
	if conf.Output == nil {
		conf.Output = os.Stdout
	}
	vm := &VirtualMachine{
		conf:   conf,
		chunk:  bytecode.NewChunk(),
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		opt(vm)
	}
	return vm
}

// RunScript compiles and executes one script. The chunk is prepared first,
// so compile-time state from a previous script is discarded while globals
// carry over. After a runtime error the operand stack and call frames are
// reset; globals are preserved.
func (vm *VirtualMachine) RunScript(source string) error {
	vm.chunk.Prepare()
	if err := parser.Compile(source, vm.chunk); err != nil {
		return err
	}
	if err := vm.run(); err != nil {
		vm.reset()
		return err
	}
	return nil
}

// Chunk exposes the machine's chunk, primarily for disassembly and tests.
func (vm *VirtualMachine) Chunk() *bytecode.Chunk {
	return vm.chunk
}

// SetVar assigns a global by name, creating it if needed. Use this to
// install native functions before running a script.
func (vm *VirtualMachine) SetVar(name string, value object.Object) {
	vm.chunk.SetGlobal(name, value)
}

// GetVar looks up a global by name.
func (vm *VirtualMachine) GetVar(name string) (object.Object, bool) {
	return vm.chunk.FindGlobal(name)
}

func (vm *VirtualMachine) reset() {
	vm.chunk.TruncateStack(0)
	vm.frames = vm.frames[:0]
	vm.ip = 0
}

// runtimeError annotates an error with the source line of the instruction
// at the given offset.
func (vm *VirtualMachine) runtimeError(err error, offset int) error {
	line := vm.chunk.LineAt(offset)
	if rerr, ok := err.(*errz.RuntimeError); ok {
		return rerr.WithLine(line)
	}
	return errz.RuntimeErrorf("%s", err).WithLine(line)
}
