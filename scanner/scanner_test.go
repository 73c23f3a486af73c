package scanner

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skink-lang/skink/errz"
	"github.com/skink-lang/skink/token"
)

func scan(t *testing.T, source string) []token.Token {
	t.Helper()
	tokens, err := New(source).Scan()
	require.Nil(t, err)
	return tokens
}

func TestSingleCharacterTokens(t *testing.T) {
	tokens := scan(t, "( ) { } , . ; + - * / %")
	types := []token.Type{
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE,
		token.COMMA, token.DOT, token.SEMICOLON, token.PLUS,
		token.MINUS, token.STAR, token.SLASH, token.MODULUS,
		token.EOF,
	}
	require.Len(t, tokens, len(types))
	for i, typ := range types {
		require.Equal(t, typ, tokens[i].Type)
	}
}

func TestTwoCharacterOperators(t *testing.T) {
	tests := []struct {
		source string
		types  []token.Type
	}{
		{"!=", []token.Type{token.BANG_EQ, token.EOF}},
		{"==", []token.Type{token.EQUAL_EQ, token.EOF}},
		{"<=", []token.Type{token.LESS_EQ, token.EOF}},
		{">=", []token.Type{token.GREATER_EQ, token.EOF}},
		{"! = < >", []token.Type{token.BANG, token.EQUAL, token.LESS, token.GREATER, token.EOF}},
		{"=  =", []token.Type{token.EQUAL, token.EQUAL, token.EOF}},
	}
	for _, tt := range tests {
		tokens := scan(t, tt.source)
		require.Len(t, tokens, len(tt.types), tt.source)
		for i, typ := range tt.types {
			require.Equal(t, typ, tokens[i].Type, tt.source)
		}
	}
}

func TestKeywords(t *testing.T) {
	tokens := scan(t, "and break class continue else false fn for if let loop nil or print return true while")
	types := []token.Type{
		token.AND, token.BREAK, token.CLASS, token.CONTINUE, token.ELSE,
		token.FALSE, token.FN, token.FOR, token.IF, token.LET, token.LOOP,
		token.NIL, token.OR, token.PRINT, token.RETURN, token.TRUE,
		token.WHILE, token.EOF,
	}
	require.Len(t, tokens, len(types))
	for i, typ := range types {
		require.Equal(t, typ, tokens[i].Type)
	}
}

func TestIdentifiers(t *testing.T) {
	tokens := scan(t, "foo _bar @baz f2 whiles fns")
	require.Len(t, tokens, 7)
	for _, tok := range tokens[:6] {
		require.Equal(t, token.IDENT, tok.Type)
	}
	require.Equal(t, "foo", tokens[0].Lexeme)
	require.Equal(t, "_bar", tokens[1].Lexeme)
	require.Equal(t, "@baz", tokens[2].Lexeme)
	require.Equal(t, "f2", tokens[3].Lexeme)
	require.Equal(t, "whiles", tokens[4].Lexeme)
	require.Equal(t, "fns", tokens[5].Lexeme)
}

func TestNumbers(t *testing.T) {
	tokens := scan(t, "0 123 1.25")
	require.Equal(t, token.NUMBER, tokens[0].Type)
	require.Equal(t, "0", tokens[0].Lexeme)
	require.Equal(t, "123", tokens[1].Lexeme)
	require.Equal(t, "1.25", tokens[2].Lexeme)
}

func TestNumberTrailingDotIsNotConsumed(t *testing.T) {
	tokens := scan(t, "1.")
	require.Equal(t, token.NUMBER, tokens[0].Type)
	require.Equal(t, "1", tokens[0].Lexeme)
	require.Equal(t, token.DOT, tokens[1].Type)
}

func TestStringLexemeExcludesQuotes(t *testing.T) {
	tokens := scan(t, `"hello world"`)
	require.Equal(t, token.STRING, tokens[0].Type)
	require.Equal(t, "hello world", tokens[0].Lexeme)
}

func TestStringWithNewlines(t *testing.T) {
	tokens := scan(t, "\"a\nb\" x")
	require.Equal(t, token.STRING, tokens[0].Type)
	require.Equal(t, "a\nb", tokens[0].Lexeme)
	// the identifier after the string is on line 2
	require.Equal(t, token.IDENT, tokens[1].Type)
	require.Equal(t, 2, tokens[1].Line)
}

func TestComments(t *testing.T) {
	tokens := scan(t, "1 # a comment\n2")
	require.Equal(t, "1", tokens[0].Lexeme)
	require.Equal(t, "2", tokens[1].Lexeme)
	require.Equal(t, 2, tokens[1].Line)
	require.Equal(t, token.EOF, tokens[2].Type)
}

func TestPositions(t *testing.T) {
	tokens := scan(t, "let x = 1;\nprint x;")
	// let
	require.Equal(t, 1, tokens[0].Line)
	require.Equal(t, 1, tokens[0].Column)
	// x
	require.Equal(t, 1, tokens[1].Line)
	require.Equal(t, 5, tokens[1].Column)
	// print
	require.Equal(t, 2, tokens[5].Line)
	require.Equal(t, 1, tokens[5].Column)
	// second x
	require.Equal(t, 2, tokens[6].Line)
	require.Equal(t, 7, tokens[6].Column)
}

func TestUnterminatedString(t *testing.T) {
	_, err := New(`"abc`).Scan()
	require.NotNil(t, err)
	cerr, ok := err.(*errz.CompileError)
	require.True(t, ok)
	require.Equal(t, "unterminated string", cerr.Message)
	require.Equal(t, "1:1 -> unterminated string", cerr.Error())
}

func TestInvalidCharacter(t *testing.T) {
	_, err := New("let x = 1 $").Scan()
	require.NotNil(t, err)
	cerr, ok := err.(*errz.CompileError)
	require.True(t, ok)
	require.Equal(t, 1, cerr.Line)
	require.Equal(t, 11, cerr.Column)
}

func TestEOFOnly(t *testing.T) {
	tokens := scan(t, "   \t\n  # just a comment\n")
	require.Len(t, tokens, 1)
	require.Equal(t, token.EOF, tokens[0].Type)
}
