// Package bytecode defines the Chunk produced by the skink compiler and
// executed by the virtual machine.
package bytecode

import (
	"github.com/skink-lang/skink/object"
	"github.com/skink-lang/skink/op"
)

// Instruction is a single operation in a chunk's code stream. The operand
// is an index, a count, or a jump distance, depending on the opcode.
type Instruction struct {
	Opcode  op.Code
	Operand uint64
}

// Chunk is the central compilation artifact and runtime state container.
// The compiler appends instructions and constants; the VM executes the
// instruction stream against the chunk's operand stack and globals.
//
// The line table is run-length encoded: for the i-th distinct source line
// encountered during compilation, it stores the count of consecutive
// instructions tagged with that line.
type Chunk struct {
	code      []Instruction
	constants []object.Object
	stack     []object.Object
	lines     []lineRun
	globals   map[string]object.Object
	idents    map[string]uint64
}

type lineRun struct {
	line  int
	count int
}

// NewChunk creates an empty chunk.
func NewChunk() *Chunk {
	return &Chunk{
		globals: map[string]object.Object{},
		idents:  map[string]uint64{},
	}
}

// Prepare resets the chunk for compiling a new script. Code, constants, the
// identifier cache, the line table, and the operand stack are cleared;
// globals survive so that scripts run against the same VM share state.
func (c *Chunk) Prepare() {
	c.code = c.code[:0]
	c.constants = c.constants[:0]
	c.stack = c.stack[:0]
	c.lines = c.lines[:0]
	c.idents = map[string]uint64{}
}

// Write appends an instruction and tags it with a source line.
func (c *Chunk) Write(instr Instruction, line int) {
	c.code = append(c.code, instr)
	n := len(c.lines)
	if n > 0 && c.lines[n-1].line == line {
		c.lines[n-1].count++
		return
	}
	c.lines = append(c.lines, lineRun{line: line, count: 1})
}

// WriteConstant appends the value to the constant pool and writes a
// CONSTANT instruction referencing it.
func (c *Chunk) WriteConstant(value object.Object, line int) {
	index := c.InsertConstant(value)
	c.Write(Instruction{Opcode: op.Constant, Operand: index}, line)
}

// InsertConstant appends a value to the constant pool and returns its index.
func (c *Chunk) InsertConstant(value object.Object) uint64 {
	c.constants = append(c.constants, value)
	return uint64(len(c.constants) - 1)
}

// ConstantAt returns the constant at the given index.
func (c *Chunk) ConstantAt(index uint64) object.Object {
	return c.constants[index]
}

// ConstantCount returns the number of constants in the pool.
func (c *Chunk) ConstantCount() int {
	return len(c.constants)
}

// LineAt resolves the source line for the instruction at the given offset
// by walking the run-length encoded line table.
func (c *Chunk) LineAt(offset int) int {
	accum := 0
	line := 0
	for _, run := range c.lines {
		if accum+run.count > offset {
			return run.line
		}
		accum += run.count
		line = run.line
	}
	return line
}

// InstructionCount returns the number of instructions written so far.
func (c *Chunk) InstructionCount() int {
	return len(c.code)
}

// InstructionAt returns the instruction at the given offset.
func (c *Chunk) InstructionAt(offset int) Instruction {
	return c.code[offset]
}

// SetOperand mutates the operand of a previously written instruction. The
// compiler uses this to back-patch forward jumps.
func (c *Chunk) SetOperand(offset int, operand uint64) {
	c.code[offset].Operand = operand
}

// FindIdent returns the constant pool index for an identifier name, if the
// name has been interned.
func (c *Chunk) FindIdent(name string) (uint64, bool) {
	index, ok := c.idents[name]
	return index, ok
}

// AddIdent interns an identifier name: the name is inserted into the
// constant pool as a string and the mapping is cached so that identical
// spellings share a constant slot.
func (c *Chunk) AddIdent(name string) uint64 {
	index := c.InsertConstant(object.NewString(name))
	c.idents[name] = index
	return index
}

// SetGlobal assigns a global by name, creating it if needed.
func (c *Chunk) SetGlobal(name string, value object.Object) {
	c.globals[name] = value
}

// FindGlobal looks up a global by name.
func (c *Chunk) FindGlobal(name string) (object.Object, bool) {
	value, ok := c.globals[name]
	return value, ok
}

// PushStack pushes a value onto the operand stack.
func (c *Chunk) PushStack(value object.Object) {
	c.stack = append(c.stack, value)
}

// PopStack removes and returns the top of the operand stack.
func (c *Chunk) PopStack() object.Object {
	value := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	return value
}

// PopStackN discards the top n values from the operand stack.
func (c *Chunk) PopStackN(n int) {
	c.stack = c.stack[:len(c.stack)-n]
}

// PeekStack returns the value at the given depth, 0 being the top.
func (c *Chunk) PeekStack(depth int) object.Object {
	return c.stack[len(c.stack)-1-depth]
}

// IndexStack returns the value at an absolute stack index.
func (c *Chunk) IndexStack(index int) object.Object {
	return c.stack[index]
}

// SetStack assigns the value at an absolute stack index.
func (c *Chunk) SetStack(index int, value object.Object) {
	c.stack[index] = value
}

// TruncateStack shrinks the operand stack to the given size.
func (c *Chunk) TruncateStack(size int) {
	c.stack = c.stack[:size]
}

// StackSize returns the number of values on the operand stack.
func (c *Chunk) StackSize() int {
	return len(c.stack)
}

// StackEmpty returns true when the operand stack holds no values.
func (c *Chunk) StackEmpty() bool {
	return len(c.stack) == 0
}
