package parser

import (
	"github.com/skink-lang/skink/object"
	"github.com/skink-lang/skink/op"
	"github.com/skink-lang/skink/token"
)

func (p *Parser) declaration() error {
	if p.match(token.LET) {
		return p.letDeclaration()
	}
	if p.match(token.FN) {
		return p.fnDeclaration()
	}
	return p.statement()
}

func (p *Parser) statement() error {
	switch {
	case p.match(token.PRINT):
		return p.printStatement()
	case p.match(token.IF):
		return p.ifStatement()
	case p.match(token.WHILE):
		return p.whileStatement()
	case p.match(token.FOR):
		return p.forStatement()
	case p.match(token.LOOP):
		return p.loopStatement()
	case p.match(token.BREAK):
		return p.breakStatement()
	case p.match(token.CONTINUE):
		return p.continueStatement()
	case p.match(token.RETURN):
		return p.returnStatement()
	case p.match(token.LBRACE):
		p.beginScope()
		if err := p.blockStatement(); err != nil {
			return err
		}
		p.endScope()
		return nil
	case p.match(token.CLASS):
		return p.errorAt(p.previous(), "class declarations are not supported")
	default:
		return p.expressionStatement()
	}
}

// letDeclaration compiles "let NAME (= expr)? ;". At global scope the
// value is stored by name; at local scope it stays on the stack at the
// new local's slot.
func (p *Parser) letDeclaration() error {
	global, err := p.parseVariable("expect variable name")
	if err != nil {
		return err
	}
	if p.scopeDepth == 0 {
		p.declaringGlobal = p.previous().Lexeme
	}
	if p.match(token.EQUAL) {
		if err := p.expression(); err != nil {
			p.declaringGlobal = ""
			return err
		}
	} else {
		p.emit(op.Nil)
	}
	p.declaringGlobal = ""
	if err := p.consume(token.SEMICOLON, "expect ';' after variable declaration"); err != nil {
		return err
	}
	p.defineVariable(global)
	return nil
}

// fnDeclaration compiles "fn NAME(params) { body }". The body is emitted
// inline behind an unconditional jump; the function constant records the
// body's entry offset and arity. Control reaching the end of the body
// returns nil implicitly.
func (p *Parser) fnDeclaration() error {
	global, err := p.parseVariable("expect function name")
	if err != nil {
		return err
	}
	name := p.previous()

	jumpOver := p.emitJump(op.Jump)
	entry := p.chunk.InstructionCount()

	savedLocals := p.locals
	savedDepth := p.scopeDepth
	savedLoop := p.loop
	savedInFunction := p.inFunction
	p.locals = nil
	p.scopeDepth = 1
	p.loop = nil
	p.inFunction = true

	arity, err := p.functionBody()

	p.locals = savedLocals
	p.scopeDepth = savedDepth
	p.loop = savedLoop
	p.inFunction = savedInFunction
	if err != nil {
		return err
	}

	p.patchJump(jumpOver)

	fn := object.NewScriptFunction(name.Lexeme, arity, entry)
	index := p.chunk.InsertConstant(fn)
	p.emitWithOperand(op.Constant, index)
	p.defineVariable(global)
	return nil
}

// functionBody compiles the parameter list and body block. Parameters are
// bound as the first locals of the function scope, matching the slots the
// arguments occupy above the frame base at runtime.
func (p *Parser) functionBody() (int, error) {
	if err := p.consume(token.LPAREN, "expect '(' after function name"); err != nil {
		return 0, err
	}
	arity := 0
	if !p.check(token.RPAREN) {
		for {
			if err := p.consume(token.IDENT, "expect parameter name"); err != nil {
				return 0, err
			}
			if err := p.declareVariable(); err != nil {
				return 0, err
			}
			p.locals[len(p.locals)-1].initialized = true
			arity++
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	if err := p.consume(token.RPAREN, "expect ')' after parameters"); err != nil {
		return 0, err
	}
	if err := p.consume(token.LBRACE, "expect '{' before function body"); err != nil {
		return 0, err
	}
	if err := p.blockStatement(); err != nil {
		return 0, err
	}
	p.emit(op.Nil)
	p.emit(op.Return)
	return arity, nil
}

func (p *Parser) printStatement() error {
	if err := p.expression(); err != nil {
		return err
	}
	if err := p.consume(token.SEMICOLON, "expected ';' after value"); err != nil {
		return err
	}
	p.emit(op.Print)
	return nil
}

func (p *Parser) expressionStatement() error {
	if err := p.expression(); err != nil {
		return err
	}
	if err := p.consume(token.SEMICOLON, "expected ';' after value"); err != nil {
		return err
	}
	p.emit(op.Pop)
	return nil
}

// blockStatement compiles declarations until the closing brace. Scoping is
// the caller's concern: statement blocks wrap this in begin/endScope while
// function bodies rely on RETURN to unwind.
func (p *Parser) blockStatement() error {
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		if err := p.declaration(); err != nil {
			return err
		}
	}
	return p.consume(token.RBRACE, "expect '}' after block")
}

func (p *Parser) scopedBlock() error {
	p.beginScope()
	if err := p.blockStatement(); err != nil {
		return err
	}
	p.endScope()
	return nil
}

// ifStatement compiles the condition, a conditional jump over the then
// block, and an unconditional jump over the else branch. The condition
// value is popped explicitly on both paths.
func (p *Parser) ifStatement() error {
	if err := p.expression(); err != nil {
		return err
	}
	if err := p.consume(token.LBRACE, "expect '{' after condition"); err != nil {
		return err
	}

	thenJump := p.emitJump(op.JumpIfFalse)
	p.emit(op.Pop)
	if err := p.scopedBlock(); err != nil {
		return err
	}

	elseJump := p.emitJump(op.Jump)
	p.patchJump(thenJump)
	p.emit(op.Pop)

	if p.match(token.ELSE) {
		if err := p.statement(); err != nil {
			return err
		}
	}
	p.patchJump(elseJump)
	return nil
}

func (p *Parser) whileStatement() error {
	loopStart := p.chunk.InstructionCount()
	p.beginLoop(loopStart)

	if err := p.expression(); err != nil {
		return err
	}
	if err := p.consume(token.LBRACE, "expect '{' after condition"); err != nil {
		return err
	}

	exitJump := p.emitJump(op.JumpIfFalse)
	p.emit(op.Pop)
	if err := p.scopedBlock(); err != nil {
		return err
	}
	p.emitLoop(loopStart)

	p.patchJump(exitJump)
	p.emit(op.Pop)
	p.endLoop()
	return nil
}

// loopStatement compiles "loop { ... }", an unconditional loop exited
// only by break.
func (p *Parser) loopStatement() error {
	loopStart := p.chunk.InstructionCount()
	p.beginLoop(loopStart)

	if err := p.consume(token.LBRACE, "expect '{' after 'loop'"); err != nil {
		return err
	}
	if err := p.scopedBlock(); err != nil {
		return err
	}
	p.emitLoop(loopStart)
	p.endLoop()
	return nil
}

// forStatement compiles "for init; cond; incr { body }". The increment
// clause is emitted before the body behind a jump, so the body loops back
// to the increment and the increment loops back to the condition.
func (p *Parser) forStatement() error {
	p.beginScope()

	// initializer
	switch {
	case p.match(token.SEMICOLON):
		// no initializer
	case p.match(token.LET):
		if err := p.letDeclaration(); err != nil {
			return err
		}
	default:
		if err := p.expressionStatement(); err != nil {
			return err
		}
	}

	loopStart := p.chunk.InstructionCount()

	// condition; an absent condition is always true
	if p.check(token.SEMICOLON) {
		p.emit(op.True)
	} else {
		if err := p.expression(); err != nil {
			return err
		}
	}
	if err := p.consume(token.SEMICOLON, "expect ';' after loop condition"); err != nil {
		return err
	}

	exitJump := p.emitJump(op.JumpIfFalse)
	p.emit(op.Pop)
	bodyJump := p.emitJump(op.Jump)

	incrementStart := p.chunk.InstructionCount()
	p.beginLoop(incrementStart)
	if !p.check(token.LBRACE) {
		if err := p.expression(); err != nil {
			return err
		}
		p.emit(op.Pop)
	}
	p.emitLoop(loopStart)
	p.patchJump(bodyJump)

	if err := p.consume(token.LBRACE, "expect '{' before loop body"); err != nil {
		return err
	}
	if err := p.scopedBlock(); err != nil {
		return err
	}
	p.emitLoop(incrementStart)

	p.patchJump(exitJump)
	p.emit(op.Pop)
	p.endLoop()

	p.endScope()
	return nil
}

// breakStatement unwinds the locals declared inside the loop and jumps to
// a location patched in at loop end.
func (p *Parser) breakStatement() error {
	if p.loop == nil {
		return p.errorAt(p.previous(), "cannot use 'break' outside of a loop")
	}
	if err := p.consume(token.SEMICOLON, "expect ';' after 'break'"); err != nil {
		return err
	}
	if count := p.localsAboveDepth(p.loop.depth); count > 0 {
		p.emitWithOperand(op.PopN, uint64(count))
	}
	p.loop.breaks = append(p.loop.breaks, p.emitJump(op.Jump))
	return nil
}

func (p *Parser) continueStatement() error {
	if p.loop == nil {
		return p.errorAt(p.previous(), "cannot use 'continue' outside of a loop")
	}
	if err := p.consume(token.SEMICOLON, "expect ';' after 'continue'"); err != nil {
		return err
	}
	if count := p.localsAboveDepth(p.loop.depth); count > 0 {
		p.emitWithOperand(op.PopN, uint64(count))
	}
	p.emitLoop(p.loop.continueTarget)
	return nil
}

func (p *Parser) returnStatement() error {
	if !p.inFunction {
		return p.errorAt(p.previous(), "cannot return from top-level code")
	}
	if p.match(token.SEMICOLON) {
		p.emit(op.Nil)
		p.emit(op.Return)
		return nil
	}
	if err := p.expression(); err != nil {
		return err
	}
	if err := p.consume(token.SEMICOLON, "expect ';' after return value"); err != nil {
		return err
	}
	p.emit(op.Return)
	return nil
}
