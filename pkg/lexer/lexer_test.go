package lexer

import (
	"testing"

	"github.com/conneroisu/mathex/pkg/symtab"
)

func TestNextToken(t *testing.T) {
	input := `3 + 4 * 2 / (1 - 5) ^ 2 % 3 <= sin(pi)`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TOKEN_NUMBER, "3"},
		{TOKEN_PLUS, ""},
		{TOKEN_NUMBER, "4"},
		{TOKEN_STAR, ""},
		{TOKEN_NUMBER, "2"},
		{TOKEN_SLASH, ""},
		{TOKEN_LPAREN, ""},
		{TOKEN_NUMBER, "1"},
		{TOKEN_MINUS, ""},
		{TOKEN_NUMBER, "5"},
		{TOKEN_RPAREN, ""},
		{TOKEN_CARET, ""},
		{TOKEN_NUMBER, "2"},
		{TOKEN_PERCENT, ""},
		{TOKEN_NUMBER, "3"},
		{TOKEN_LE, ""},
		{TOKEN_SYMBOL, "sin"},
		{TOKEN_LPAREN, ""},
		{TOKEN_SYMBOL, "pi"},
		{TOKEN_RPAREN, ""},
		{TOKEN_EOF, ""},
	}

	l := New(input, symtab.New(nil))

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%s, got=%s", i, tt.expectedType, tok.Type)
		}

		if tt.expectedLiteral != "" && tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestUnresolvedIdentifierIsIllegal(t *testing.T) {
	l := New("x + 1", symtab.New(nil))

	tok := l.NextToken()
	if tok.Type != TOKEN_ILLEGAL {
		t.Fatalf("expected ILLEGAL for unbound identifier, got=%s", tok.Type)
	}

	if tok.Offset != 1 {
		t.Fatalf("expected offset 1, got=%d", tok.Offset)
	}
}

func TestDecimalNumber(t *testing.T) {
	l := New("3.14", symtab.New(nil))

	tok := l.NextToken()
	if tok.Type != TOKEN_NUMBER {
		t.Fatalf("expected NUMBER, got=%s", tok.Type)
	}

	if tok.Number != 3.14 {
		t.Fatalf("expected 3.14, got=%v", tok.Number)
	}
}

func TestScientificNotation(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"1e3", 1000},
		{"1E3", 1000},
		{"5e-5", 0.00005},
		{"1.5e+2", 150},
		{"1.5E2", 150},
	}

	for _, tt := range tests {
		l := New(tt.input, symtab.New(nil))

		tok := l.NextToken()
		if tok.Type != TOKEN_NUMBER {
			t.Fatalf("%q: expected NUMBER, got=%s", tt.input, tok.Type)
		}

		if tok.Number != tt.expected {
			t.Fatalf("%q: expected %v, got=%v", tt.input, tt.expected, tok.Number)
		}

		if eof := l.NextToken(); eof.Type != TOKEN_EOF {
			t.Fatalf("%q: expected a single NUMBER token, trailing=%s", tt.input, eof.Type)
		}
	}
}

func TestScientificNotationDoesNotConsumeBareConstantE(t *testing.T) {
	l := New("1e", symtab.New(nil))

	num := l.NextToken()
	if num.Type != TOKEN_NUMBER || num.Literal != "1" {
		t.Fatalf("expected NUMBER \"1\", got=%s %q", num.Type, num.Literal)
	}

	sym := l.NextToken()
	if sym.Type != TOKEN_SYMBOL || sym.Literal != "e" {
		t.Fatalf("expected SYMBOL \"e\" (the built-in constant), got=%s %q", sym.Type, sym.Literal)
	}
}

func TestVariableResolvesFromTable(t *testing.T) {
	var x float64 = 7
	table := symtab.New([]symtab.Symbol{
		{Name: "x", Kind: symtab.KindVariable, Ptr: &x},
	})

	l := New("x", table)
	tok := l.NextToken()

	if tok.Type != TOKEN_SYMBOL {
		t.Fatalf("expected SYMBOL, got=%s", tok.Type)
	}

	if tok.Symbol.Kind != symtab.KindVariable || tok.Symbol.Ptr != &x {
		t.Fatalf("expected variable symbol bound to x, got=%+v", tok.Symbol)
	}
}
