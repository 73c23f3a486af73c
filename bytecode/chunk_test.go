package bytecode

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skink-lang/skink/object"
	"github.com/skink-lang/skink/op"
)

func TestWriteAddsTheCorrectLine(t *testing.T) {
	chunk := NewChunk()

	chunk.Write(Instruction{Opcode: op.Return}, 1)
	chunk.Write(Instruction{Opcode: op.Return}, 1)
	chunk.Write(Instruction{Opcode: op.Return}, 2)

	require.Equal(t, 1, chunk.LineAt(0))
	require.Equal(t, 1, chunk.LineAt(1))
	require.Equal(t, 2, chunk.LineAt(2))
}

func TestLineAtIsMonotone(t *testing.T) {
	chunk := NewChunk()
	lines := []int{1, 1, 1, 3, 3, 4, 9, 9, 9, 9}
	for _, line := range lines {
		chunk.Write(Instruction{Opcode: op.NoOp}, line)
	}
	prev := 0
	for offset := 0; offset < chunk.InstructionCount(); offset++ {
		line := chunk.LineAt(offset)
		require.GreaterOrEqual(t, line, prev)
		require.Equal(t, lines[offset], line)
		prev = line
	}
}

func TestWriteConstant(t *testing.T) {
	chunk := NewChunk()

	chunk.WriteConstant(object.Nil, 1)
	chunk.WriteConstant(object.NewNumber(1), 1)
	chunk.WriteConstant(object.NewString("str"), 2)

	require.Equal(t, 1, chunk.LineAt(0))
	require.Equal(t, 1, chunk.LineAt(1))
	require.Equal(t, 2, chunk.LineAt(2))

	require.Equal(t, object.Nil, chunk.ConstantAt(0))
	require.True(t, chunk.ConstantAt(1).Equals(object.NewNumber(1)))
	require.True(t, chunk.ConstantAt(2).Equals(object.NewString("str")))

	for offset := 0; offset < chunk.InstructionCount(); offset++ {
		instr := chunk.InstructionAt(offset)
		require.Equal(t, op.Constant, instr.Opcode)
		require.Less(t, int(instr.Operand), chunk.ConstantCount())
	}
}

func TestStackPushPop(t *testing.T) {
	chunk := NewChunk()

	require.True(t, chunk.StackEmpty())

	chunk.PushStack(object.Nil)
	chunk.PushStack(object.NewNumber(1))
	chunk.PushStack(object.NewString("str"))

	require.False(t, chunk.StackEmpty())
	require.Equal(t, 3, chunk.StackSize())
	require.True(t, chunk.PeekStack(0).Equals(object.NewString("str")))
	require.True(t, chunk.PeekStack(2).Equals(object.Nil))

	require.True(t, chunk.PopStack().Equals(object.NewString("str")))
	require.True(t, chunk.PopStack().Equals(object.NewNumber(1)))
	require.True(t, chunk.PopStack().Equals(object.Nil))

	require.True(t, chunk.StackEmpty())
}

func TestStackIndexing(t *testing.T) {
	chunk := NewChunk()
	chunk.PushStack(object.NewNumber(1))
	chunk.PushStack(object.NewNumber(2))
	chunk.PushStack(object.NewNumber(3))

	require.True(t, chunk.IndexStack(0).Equals(object.NewNumber(1)))
	chunk.SetStack(0, object.NewNumber(9))
	require.True(t, chunk.IndexStack(0).Equals(object.NewNumber(9)))

	chunk.PopStackN(2)
	require.Equal(t, 1, chunk.StackSize())

	chunk.TruncateStack(0)
	require.True(t, chunk.StackEmpty())
}

func TestIdentifierInterning(t *testing.T) {
	chunk := NewChunk()

	_, found := chunk.FindIdent("x")
	require.False(t, found)

	index := chunk.AddIdent("x")
	again, found := chunk.FindIdent("x")
	require.True(t, found)
	require.Equal(t, index, again)

	other := chunk.AddIdent("y")
	require.NotEqual(t, index, other)

	require.True(t, chunk.ConstantAt(index).Equals(object.NewString("x")))
}

func TestSetOperand(t *testing.T) {
	chunk := NewChunk()
	chunk.Write(Instruction{Opcode: op.Jump}, 1)
	chunk.SetOperand(0, 42)
	require.Equal(t, uint64(42), chunk.InstructionAt(0).Operand)
}

func TestPrepareKeepsGlobals(t *testing.T) {
	chunk := NewChunk()
	chunk.Write(Instruction{Opcode: op.NoOp}, 1)
	chunk.WriteConstant(object.NewNumber(1), 1)
	chunk.AddIdent("x")
	chunk.PushStack(object.Nil)
	chunk.SetGlobal("answer", object.NewNumber(42))

	chunk.Prepare()

	require.Equal(t, 0, chunk.InstructionCount())
	require.Equal(t, 0, chunk.ConstantCount())
	require.True(t, chunk.StackEmpty())
	_, found := chunk.FindIdent("x")
	require.False(t, found)

	value, ok := chunk.FindGlobal("answer")
	require.True(t, ok)
	require.True(t, value.Equals(object.NewNumber(42)))
}
