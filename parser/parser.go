// Package parser implements the skink single-pass compiler: a Pratt
// precedence parser that emits bytecode directly into a chunk while
// tracking lexical scopes and local variable slots. There is no separate
// AST phase.
package parser

import (
	"github.com/skink-lang/skink/bytecode"
	"github.com/skink-lang/skink/errz"
	"github.com/skink-lang/skink/op"
	"github.com/skink-lang/skink/scanner"
	"github.com/skink-lang/skink/token"
)

// local is a compile-time record of a declared local variable. Locals are
// addressed at runtime by their index in the parser's locals stack,
// relative to the active call frame's base.
type local struct {
	name        token.Token
	depth       int
	initialized bool
}

// loopContext tracks the state needed to compile break and continue inside
// the innermost enclosing loop.
type loopContext struct {
	continueTarget int
	depth          int
	breaks         []int
	enclosing      *loopContext
}

// Parser consumes a token sequence and emits bytecode into a chunk.
type Parser struct {
	tokens     []token.Token
	pos        int
	chunk      *bytecode.Chunk
	locals     []local
	scopeDepth int
	loop       *loopContext
	inFunction bool

	// name of the global being declared, while compiling its initializer
	declaringGlobal string
}

// New creates a Parser over the given tokens, targeting the given chunk.
func New(tokens []token.Token, chunk *bytecode.Chunk) *Parser {
	return &Parser{tokens: tokens, chunk: chunk}
}

// Compile scans and parses the source, emitting bytecode into the chunk.
// The returned error, if any, is a *errz.CompileError.
func Compile(source string, chunk *bytecode.Chunk) error {
	tokens, err := scanner.New(source).Scan()
	if err != nil {
		return err
	}
	return New(tokens, chunk).Parse()
}

// Parse compiles declarations until end of input, then emits an END
// instruction so the VM halts after the final statement.
func (p *Parser) Parse() error {
	for !p.check(token.EOF) {
		if err := p.declaration(); err != nil {
			return err
		}
	}
	p.chunk.Write(bytecode.Instruction{Opcode: op.End}, p.current().Line)
	return nil
}

func (p *Parser) current() token.Token {
	return p.tokens[p.pos]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.pos-1]
}

func (p *Parser) advance() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
}

func (p *Parser) check(typ token.Type) bool {
	return p.current().Type == typ
}

func (p *Parser) match(typ token.Type) bool {
	if !p.check(typ) {
		return false
	}
	p.advance()
	return true
}

func (p *Parser) consume(typ token.Type, message string) error {
	if p.check(typ) {
		p.advance()
		return nil
	}
	return p.errorAt(p.current(), message)
}

func (p *Parser) errorAt(tok token.Token, format string, args ...interface{}) error {
	return errz.CompileErrorf(tok.Line, tok.Column, format, args...)
}

// emit writes an instruction tagged with the line of the previous token.
func (p *Parser) emit(opcode op.Code) {
	p.chunk.Write(bytecode.Instruction{Opcode: opcode}, p.previous().Line)
}

func (p *Parser) emitWithOperand(opcode op.Code, operand uint64) {
	p.chunk.Write(bytecode.Instruction{Opcode: opcode, Operand: operand}, p.previous().Line)
}

// emitJump writes a forward jump with a placeholder operand and returns
// the instruction's offset for later patching.
func (p *Parser) emitJump(opcode op.Code) int {
	location := p.chunk.InstructionCount()
	p.emit(opcode)
	return location
}

// patchJump back-patches a forward jump to land on the next instruction to
// be written. The operand is the distance from the jump instruction.
func (p *Parser) patchJump(location int) {
	offset := p.chunk.InstructionCount() - location
	p.chunk.SetOperand(location, uint64(offset))
}

// emitLoop writes a backward jump to the given instruction offset.
func (p *Parser) emitLoop(target int) {
	delta := p.chunk.InstructionCount() - target
	p.emitWithOperand(op.Loop, uint64(delta))
}

func (p *Parser) beginScope() {
	p.scopeDepth++
}

// endScope discards the locals declared in the scope being left and emits
// a POP_N to remove their runtime slots.
func (p *Parser) endScope() {
	p.scopeDepth--
	count := 0
	for len(p.locals) > 0 && p.locals[len(p.locals)-1].depth > p.scopeDepth {
		p.locals = p.locals[:len(p.locals)-1]
		count++
	}
	p.emitWithOperand(op.PopN, uint64(count))
}

// localsAboveDepth counts the locals declared deeper than the given scope
// depth without discarding them. Break and continue use this to unwind the
// runtime stack while the compile-time records stay live for the rest of
// the block.
func (p *Parser) localsAboveDepth(depth int) int {
	count := 0
	for i := len(p.locals) - 1; i >= 0; i-- {
		if p.locals[i].depth <= depth {
			break
		}
		count++
	}
	return count
}

func (p *Parser) addLocal(name token.Token) {
	p.locals = append(p.locals, local{name: name, depth: p.scopeDepth})
}

// resolveLocal searches the locals stack from innermost outward. It
// returns the slot index when the name resolves to a local; reading a
// local inside its own initializer is a compile error.
func (p *Parser) resolveLocal(name token.Token) (int, bool, error) {
	for i := len(p.locals) - 1; i >= 0; i-- {
		if p.locals[i].name.Lexeme == name.Lexeme {
			if !p.locals[i].initialized {
				return 0, false, p.errorAt(name, "cannot read a variable in its own initializer")
			}
			return i, true, nil
		}
	}
	return 0, false, nil
}

// identifierConstant interns the identifier's name in the chunk so that
// identical spellings share a constant pool slot.
func (p *Parser) identifierConstant(name token.Token) uint64 {
	if index, ok := p.chunk.FindIdent(name.Lexeme); ok {
		return index
	}
	return p.chunk.AddIdent(name.Lexeme)
}

// declareVariable records a new local in the current scope. Declaring the
// same name twice in one scope is a compile error. At global scope this is
// a no-op: globals are late-bound by name.
func (p *Parser) declareVariable() error {
	if p.scopeDepth == 0 {
		return nil
	}
	name := p.previous()
	for i := len(p.locals) - 1; i >= 0; i-- {
		l := p.locals[i]
		if l.initialized && l.depth < p.scopeDepth {
			break
		}
		if l.name.Lexeme == name.Lexeme {
			return p.errorAt(name, "variable with same name already declared in scope")
		}
	}
	p.addLocal(name)
	return nil
}

// parseVariable consumes an identifier and declares it. The returned index
// is the interned name constant at global scope, and 0 for locals.
func (p *Parser) parseVariable(message string) (uint64, error) {
	if err := p.consume(token.IDENT, message); err != nil {
		return 0, err
	}
	if err := p.declareVariable(); err != nil {
		return 0, err
	}
	if p.scopeDepth > 0 {
		return 0, nil
	}
	return p.identifierConstant(p.previous()), nil
}

// defineVariable emits DEFINE_GLOBAL at global scope. At local scope the
// initializer's value is already sitting at the local's slot; the local is
// simply marked readable.
func (p *Parser) defineVariable(global uint64) {
	if p.scopeDepth == 0 {
		p.emitWithOperand(op.DefineGlobal, global)
		return
	}
	p.locals[len(p.locals)-1].initialized = true
}

func (p *Parser) beginLoop(continueTarget int) {
	p.loop = &loopContext{
		continueTarget: continueTarget,
		depth:          p.scopeDepth,
		enclosing:      p.loop,
	}
}

// endLoop patches every pending break to land on the next instruction to
// be written, then restores the enclosing loop context.
func (p *Parser) endLoop() {
	for _, location := range p.loop.breaks {
		p.patchJump(location)
	}
	p.loop = p.loop.enclosing
}
