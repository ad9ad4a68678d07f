package lexer

import (
	"fmt"

	"github.com/conneroisu/mathex/pkg/symtab"
)

// TokenType classifies a single lexical token.
type TokenType int

const (
	TOKEN_EOF     = iota // end of input
	TOKEN_ILLEGAL        // an unresolved identifier or unrecognized byte

	TOKEN_NUMBER // a numeric literal, e.g. 3.14

	// TOKEN_SYMBOL is any identifier that resolved against the symbol
	// table: a constant, a variable, a function, or a closure. Which one
	// it is lives in the attached Symbol.Kind; the parser branches on it.
	TOKEN_SYMBOL

	// Arithmetic operators.
	TOKEN_PLUS    // "+"
	TOKEN_MINUS   // "-"
	TOKEN_STAR    // "*"
	TOKEN_SLASH   // "/"
	TOKEN_PERCENT // "%"
	TOKEN_CARET   // "^"

	// Comparison operators.
	TOKEN_LT // "<"
	TOKEN_GT // ">"
	TOKEN_LE // "<="
	TOKEN_GE // ">="
	TOKEN_EQ // "=="
	TOKEN_NE // "!="

	// Structural tokens.
	TOKEN_COMMA  // ","
	TOKEN_LPAREN // "("
	TOKEN_RPAREN // ")"
)

var tokenNames = map[TokenType]string{
	TOKEN_EOF:     "EOF",
	TOKEN_ILLEGAL: "ILLEGAL",
	TOKEN_NUMBER:  "NUMBER",
	TOKEN_SYMBOL:  "SYMBOL",
	TOKEN_PLUS:    "PLUS",
	TOKEN_MINUS:   "MINUS",
	TOKEN_STAR:    "STAR",
	TOKEN_SLASH:   "SLASH",
	TOKEN_PERCENT: "PERCENT",
	TOKEN_CARET:   "CARET",
	TOKEN_LT:      "LT",
	TOKEN_GT:      "GT",
	TOKEN_LE:      "LE",
	TOKEN_GE:      "GE",
	TOKEN_EQ:      "EQ",
	TOKEN_NE:      "NE",
	TOKEN_COMMA:   "COMMA",
	TOKEN_LPAREN:  "LPAREN",
	TOKEN_RPAREN:  "RPAREN",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}

	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token is a complete lexical unit, positioned by a 1-based byte offset
// into the source so parse errors can report the single offset the
// external interface promises.
type Token struct {
	Type   TokenType
	Offset int // 1-based byte offset of the token's first character (last character for an unbound identifier)

	Literal string // raw source text (numbers and illegal identifiers)
	Number  float64
	Symbol  *symtab.Symbol // set when Type == TOKEN_SYMBOL
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
