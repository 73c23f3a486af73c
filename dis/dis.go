// Package dis disassembles compiled skink bytecode for debugging.
package dis

import (
	"fmt"
	"io"

	"github.com/skink-lang/skink/bytecode"
	"github.com/skink-lang/skink/op"
)

// Instruction is one disassembled instruction.
type Instruction struct {
	Offset  int
	Name    string
	Operand *uint64
	Info    string
	Line    int
}

// Disassemble decodes every instruction in the chunk. The Info column
// resolves constant operands to their source representation.
func Disassemble(chunk *bytecode.Chunk) []Instruction {
	count := chunk.InstructionCount()
	result := make([]Instruction, 0, count)
	for offset := 0; offset < count; offset++ {
		instr := chunk.InstructionAt(offset)
		info := op.GetInfo(instr.Opcode)

		out := Instruction{
			Offset: offset,
			Name:   info.Name,
			Line:   chunk.LineAt(offset),
		}
		if info.HasOperand {
			operand := instr.Operand
			out.Operand = &operand
			switch instr.Opcode {
			case op.Constant, op.LookupGlobal, op.DefineGlobal, op.AssignGlobal:
				out.Info = chunk.ConstantAt(operand).Inspect()
			}
		}
		result = append(result, out)
	}
	return result
}

// Print writes a fixed-width listing of the instructions. Offsets repeat
// the source line only when it changes, matching conventional chunk dumps.
func Print(instructions []Instruction, w io.Writer) {
	lastLine := 0
	for _, instr := range instructions {
		lineCol := "   |"
		if instr.Line != lastLine {
			lineCol = fmt.Sprintf("%4d", instr.Line)
			lastLine = instr.Line
		}
		operandCol := ""
		if instr.Operand != nil {
			operandCol = fmt.Sprintf("%6d", *instr.Operand)
		}
		if instr.Info != "" {
			fmt.Fprintf(w, "%04d %s %-16s %s  %s\n", instr.Offset, lineCol, instr.Name, operandCol, instr.Info)
		} else if operandCol != "" {
			fmt.Fprintf(w, "%04d %s %-16s %s\n", instr.Offset, lineCol, instr.Name, operandCol)
		} else {
			fmt.Fprintf(w, "%04d %s %s\n", instr.Offset, lineCol, instr.Name)
		}
	}
}
