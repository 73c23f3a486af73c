package parser

import (
	"strconv"

	"github.com/skink-lang/skink/object"
	"github.com/skink-lang/skink/op"
	"github.com/skink-lang/skink/token"
)

// precedence levels, low to high
type precedence int

const (
	precNone precedence = iota
	precAssignment
	precOr
	precAnd
	precEquality
	precComparison
	precTerm
	precFactor
	precUnary
	precCall
	precPrimary
)

// parseFn is a prefix or infix handler. canAssign is true when the parse
// is at assignment precedence, allowing an identifier prefix to consume a
// trailing "=".
type parseFn func(p *Parser, canAssign bool) error

// rule is the Pratt triple for one token type.
type rule struct {
	prefix     parseFn
	infix      parseFn
	precedence precedence
}

var rules map[token.Type]rule

func init() {
	rules = map[token.Type]rule{
		token.LPAREN:     {prefix: groupingExpr, infix: callExpr, precedence: precCall},
		token.MINUS:      {prefix: unaryExpr, infix: binaryExpr, precedence: precTerm},
		token.PLUS:       {infix: binaryExpr, precedence: precTerm},
		token.STAR:       {infix: binaryExpr, precedence: precFactor},
		token.SLASH:      {infix: binaryExpr, precedence: precFactor},
		token.MODULUS:    {infix: binaryExpr, precedence: precFactor},
		token.BANG:       {prefix: unaryExpr},
		token.BANG_EQ:    {infix: binaryExpr, precedence: precEquality},
		token.EQUAL_EQ:   {infix: binaryExpr, precedence: precEquality},
		token.GREATER:    {infix: binaryExpr, precedence: precComparison},
		token.GREATER_EQ: {infix: binaryExpr, precedence: precComparison},
		token.LESS:       {infix: binaryExpr, precedence: precComparison},
		token.LESS_EQ:    {infix: binaryExpr, precedence: precComparison},
		token.AND:        {infix: andExpr, precedence: precAnd},
		token.OR:         {infix: orExpr, precedence: precOr},
		token.NUMBER:     {prefix: numberExpr},
		token.STRING:     {prefix: stringExpr},
		token.IDENT:      {prefix: variableExpr},
		token.TRUE:       {prefix: literalExpr},
		token.FALSE:      {prefix: literalExpr},
		token.NIL:        {prefix: literalExpr},
	}
}

func ruleFor(typ token.Type) rule {
	return rules[typ]
}

// parsePrecedence is the Pratt precedence climber: dispatch the previous
// token's prefix rule, then fold infix rules while the current token binds
// at least as tightly as the requested level.
func (p *Parser) parsePrecedence(level precedence) error {
	p.advance()
	prefix := ruleFor(p.previous().Type).prefix
	if prefix == nil {
		return p.errorAt(p.previous(), "expected an expression")
	}

	canAssign := level <= precAssignment
	if err := prefix(p, canAssign); err != nil {
		return err
	}

	for level <= ruleFor(p.current().Type).precedence {
		p.advance()
		infix := ruleFor(p.previous().Type).infix
		if err := infix(p, canAssign); err != nil {
			return err
		}
	}

	if canAssign && p.match(token.EQUAL) {
		return p.errorAt(p.previous(), "invalid assignment target")
	}
	return nil
}

func (p *Parser) expression() error {
	return p.parsePrecedence(precAssignment)
}

func groupingExpr(p *Parser, _ bool) error {
	if err := p.expression(); err != nil {
		return err
	}
	return p.consume(token.RPAREN, "expect ')' after expression")
}

func unaryExpr(p *Parser, _ bool) error {
	operator := p.previous().Type
	if err := p.parsePrecedence(precUnary); err != nil {
		return err
	}
	switch operator {
	case token.BANG:
		p.emit(op.Not)
	case token.MINUS:
		p.emit(op.Negate)
	default:
		return p.errorAt(p.previous(), "invalid unary operator")
	}
	return nil
}

// binaryExpr compiles the right operand one level above the operator's
// own precedence, making binary operators left-associative.
func binaryExpr(p *Parser, _ bool) error {
	operator := p.previous().Type
	if err := p.parsePrecedence(ruleFor(operator).precedence + 1); err != nil {
		return err
	}
	switch operator {
	case token.EQUAL_EQ:
		p.emit(op.Equal)
	case token.BANG_EQ:
		p.emit(op.NotEqual)
	case token.GREATER:
		p.emit(op.Greater)
	case token.GREATER_EQ:
		p.emit(op.GreaterEqual)
	case token.LESS:
		p.emit(op.Less)
	case token.LESS_EQ:
		p.emit(op.LessEqual)
	case token.PLUS:
		p.emit(op.Add)
	case token.MINUS:
		p.emit(op.Sub)
	case token.STAR:
		p.emit(op.Mul)
	case token.SLASH:
		p.emit(op.Div)
	case token.MODULUS:
		p.emit(op.Mod)
	default:
		return p.errorAt(p.previous(), "invalid binary operator")
	}
	return nil
}

func literalExpr(p *Parser, _ bool) error {
	switch p.previous().Type {
	case token.NIL:
		p.emit(op.Nil)
	case token.TRUE:
		p.emit(op.True)
	case token.FALSE:
		p.emit(op.False)
	default:
		return p.errorAt(p.previous(), "invalid literal type")
	}
	return nil
}

func numberExpr(p *Parser, _ bool) error {
	value, err := strconv.ParseFloat(p.previous().Lexeme, 64)
	if err != nil {
		return p.errorAt(p.previous(), "unparsable number")
	}
	p.chunk.WriteConstant(object.NewNumber(value), p.previous().Line)
	return nil
}

func stringExpr(p *Parser, _ bool) error {
	p.chunk.WriteConstant(object.NewString(p.previous().Lexeme), p.previous().Line)
	return nil
}

func variableExpr(p *Parser, canAssign bool) error {
	return p.namedVariable(p.previous(), canAssign)
}

// namedVariable emits a load or, when an "=" follows in assignment
// position, a store for the named variable. Locals are addressed by slot;
// globals by interned name constant.
func (p *Parser) namedVariable(name token.Token, canAssign bool) error {
	var get, set op.Code
	var index uint64

	slot, isLocal, err := p.resolveLocal(name)
	if err != nil {
		return err
	}
	if isLocal {
		get, set = op.LookupLocal, op.AssignLocal
		index = uint64(slot)
	} else {
		if name.Lexeme == p.declaringGlobal {
			return p.errorAt(name, "cannot read a variable in its own initializer")
		}
		get, set = op.LookupGlobal, op.AssignGlobal
		index = p.identifierConstant(name)
	}

	if canAssign && p.match(token.EQUAL) {
		if err := p.expression(); err != nil {
			return err
		}
		p.emitWithOperand(set, index)
		return nil
	}
	p.emitWithOperand(get, index)
	return nil
}

// andExpr and orExpr compile short-circuit jumps. The emitted opcodes
// leave the left operand in place when short-circuiting and pop it when
// evaluation continues with the right operand.
func andExpr(p *Parser, _ bool) error {
	endJump := p.emitJump(op.And)
	if err := p.parsePrecedence(precAnd); err != nil {
		return err
	}
	p.patchJump(endJump)
	return nil
}

func orExpr(p *Parser, _ bool) error {
	endJump := p.emitJump(op.Or)
	if err := p.parsePrecedence(precOr); err != nil {
		return err
	}
	p.patchJump(endJump)
	return nil
}

// callExpr compiles the argument list after a callee expression and emits
// CALL with the argument count.
func callExpr(p *Parser, _ bool) error {
	argc, err := p.argumentList()
	if err != nil {
		return err
	}
	p.emitWithOperand(op.Call, uint64(argc))
	return nil
}

func (p *Parser) argumentList() (int, error) {
	argc := 0
	if !p.check(token.RPAREN) {
		for {
			if err := p.expression(); err != nil {
				return 0, err
			}
			argc++
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	if err := p.consume(token.RPAREN, "expect ')' after arguments"); err != nil {
		return 0, err
	}
	return argc, nil
}
