// Package op defines opcodes used by the skink compiler and virtual machine.
package op

// Code is an integer opcode that indicates an operation to execute.
type Code uint8

const (
	// NoOp does nothing.
	NoOp Code = iota

	// Constants
	Constant // push constants[operand]
	Nil
	True
	False

	// Stack
	Pop
	PopN // discard the top N values
	Swap // exchange the top two values
	Move // rotate the top value down by N slots

	// Variables
	LookupLocal
	AssignLocal
	LookupGlobal
	DefineGlobal
	AssignGlobal

	// Comparison
	Equal
	NotEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	// Arithmetic
	Add
	Sub
	Mul
	Div
	Mod

	// Unary
	Not
	Negate

	// Output
	Print

	// Jumps
	Jump        // ip += operand
	JumpIfFalse // ip += operand when the top of stack is falsy
	Loop        // ip -= operand
	And         // short-circuit: jump forward when falsy, else pop
	Or          // short-circuit: jump forward when truthy, else pop

	// Calls
	Call
	Return

	// Halt execution
	End
)

// Info contains information about an opcode.
type Info struct {
	Code       Code
	Name       string
	HasOperand bool
}

var infos = make([]Info, 256)

func init() {
	type opInfo struct {
		op         Code
		name       string
		hasOperand bool
	}
	ops := []opInfo{
		{NoOp, "NO_OP", false},
		{Constant, "CONSTANT", true},
		{Nil, "NIL", false},
		{True, "TRUE", false},
		{False, "FALSE", false},
		{Pop, "POP", false},
		{PopN, "POP_N", true},
		{Swap, "SWAP", false},
		{Move, "MOVE", true},
		{LookupLocal, "LOOKUP_LOCAL", true},
		{AssignLocal, "ASSIGN_LOCAL", true},
		{LookupGlobal, "LOOKUP_GLOBAL", true},
		{DefineGlobal, "DEFINE_GLOBAL", true},
		{AssignGlobal, "ASSIGN_GLOBAL", true},
		{Equal, "EQUAL", false},
		{NotEqual, "NOT_EQUAL", false},
		{Greater, "GREATER", false},
		{GreaterEqual, "GREATER_EQUAL", false},
		{Less, "LESS", false},
		{LessEqual, "LESS_EQUAL", false},
		{Add, "ADD", false},
		{Sub, "SUB", false},
		{Mul, "MUL", false},
		{Div, "DIV", false},
		{Mod, "MOD", false},
		{Not, "NOT", false},
		{Negate, "NEGATE", false},
		{Print, "PRINT", false},
		{Jump, "JUMP", true},
		{JumpIfFalse, "JUMP_IF_FALSE", true},
		{Loop, "LOOP", true},
		{And, "AND", true},
		{Or, "OR", true},
		{Call, "CALL", true},
		{Return, "RETURN", false},
		{End, "END", false},
	}
	for _, o := range ops {
		infos[o.op] = Info{
			Code:       o.op,
			Name:       o.name,
			HasOperand: o.hasOperand,
		}
	}
}

// GetInfo returns information about the given opcode.
func GetInfo(op Code) Info {
	return infos[op]
}

// String returns the mnemonic name of the opcode.
func (c Code) String() string {
	return infos[c].Name
}
