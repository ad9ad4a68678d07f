package parser

import (
	"github.com/conneroisu/mathex/pkg/lexer"
	"github.com/conneroisu/mathex/pkg/symtab"
	"github.com/conneroisu/mathex/pkg/tree"
)

// Parser is a recursive-descent parser over the grammar
//
//	list       ::= comparison {"," comparison}
//	comparison ::= additive [("<"|">"|"<="|">="|"=="|"!=") additive]
//	additive   ::= term {("+"|"-") term}
//	term       ::= factor {("*"|"/"|"%") factor}
//	factor     ::= power {"^" power}      (left-assoc default; see assoc_*.go)
//	power      ::= {("-"|"+")} base
//	base       ::= NUMBER | constant | variable | call | "(" list ")"
//
// It constant-folds in place: every call to newFunc collapses a pure
// subtree whose children are already constants into a single
// *tree.ConstantNode before the caller ever sees it, so the tree handed
// back by Parse never contains a foldable node.
type Parser struct {
	lex *lexer.Lexer

	cur, peek lexer.Token
	err       *ParseError
}

// New creates a Parser reading tokens from l.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{lex: l}
	p.advance()
	p.advance()

	return p
}

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.lex.NextToken()
}

// fail records the first parse error. Subsequent calls are no-ops: there
// is no recovery, so only the first fault is ever reported.
func (p *Parser) fail(offset int) {
	if p.err == nil {
		p.err = &ParseError{Offset: offset}
	}
}

func (p *Parser) failed() bool { return p.err != nil }

// expect consumes cur if it matches tt, else records a parse error at
// cur's offset and leaves the token stream where it is.
func (p *Parser) expect(tt lexer.TokenType) bool {
	if p.cur.Type == tt {
		p.advance()

		return true
	}

	p.fail(p.cur.Offset)

	return false
}

// Parse parses source as one list expression and requires it to consume
// every token; anything left over is itself a parse error at the offset
// of the first unconsumed token.
func Parse(source string, symbols ...symtab.Symbol) (tree.Node, error) {
	table := symtab.New(symbols)
	p := New(lexer.New(source, table))

	n := p.list()
	if !p.failed() && p.cur.Type != lexer.TOKEN_EOF {
		p.fail(p.cur.Offset)
	}

	if p.err != nil {
		return nil, *p.err
	}

	return n, nil
}

func (p *Parser) list() tree.Node {
	left := p.comparison()

	for !p.failed() && p.cur.Type == lexer.TOKEN_COMMA {
		p.advance()
		right := p.comparison()
		left = p.newFunc(commaSymbol, []tree.Node{left, right})
	}

	return left
}

var compareSymbols = map[lexer.TokenType]*symtab.Symbol{
	lexer.TOKEN_LT: ltSymbol,
	lexer.TOKEN_GT: gtSymbol,
	lexer.TOKEN_LE: leSymbol,
	lexer.TOKEN_GE: geSymbol,
	lexer.TOKEN_EQ: eqSymbol,
	lexer.TOKEN_NE: neSymbol,
}

func (p *Parser) comparison() tree.Node {
	left := p.additive()

	if sym, ok := compareSymbols[p.cur.Type]; ok && !p.failed() {
		p.advance()
		right := p.additive()
		left = p.newFunc(sym, []tree.Node{left, right})
	}

	return left
}

func (p *Parser) additive() tree.Node {
	left := p.term()

	for !p.failed() {
		var sym *symtab.Symbol

		switch p.cur.Type {
		case lexer.TOKEN_PLUS:
			sym = addSymbol
		case lexer.TOKEN_MINUS:
			sym = subSymbol
		default:
			return left
		}

		p.advance()
		right := p.term()
		left = p.newFunc(sym, []tree.Node{left, right})
	}

	return left
}

func (p *Parser) term() tree.Node {
	left := p.factor()

	for !p.failed() {
		var sym *symtab.Symbol

		switch p.cur.Type {
		case lexer.TOKEN_STAR:
			sym = mulSymbol
		case lexer.TOKEN_SLASH:
			sym = divSymbol
		case lexer.TOKEN_PERCENT:
			sym = modSymbol
		default:
			return left
		}

		p.advance()
		right := p.factor()
		left = p.newFunc(sym, []tree.Node{left, right})
	}

	return left
}

// power parses a possibly-signed base: the sign(s) bind tighter than '^',
// so "-2^2" is pow(-2, 2) = 4, not -(2^2).
func (p *Parser) power() tree.Node {
	negate := false

	for !p.failed() {
		switch p.cur.Type {
		case lexer.TOKEN_MINUS:
			negate = !negate

			p.advance()
		case lexer.TOKEN_PLUS:
			p.advance()
		default:
			b := p.base()
			if negate {
				return p.newFunc(negSymbol, []tree.Node{b})
			}

			return b
		}
	}

	return &tree.ConstantNode{}
}

func (p *Parser) base() tree.Node {
	switch p.cur.Type {
	case lexer.TOKEN_NUMBER:
		n := &tree.ConstantNode{Value: p.cur.Number}
		p.advance()

		return n

	case lexer.TOKEN_LPAREN:
		p.advance()
		n := p.list()
		p.expect(lexer.TOKEN_RPAREN)

		return n

	case lexer.TOKEN_SYMBOL:
		return p.symbolCall()

	default:
		p.fail(p.cur.Offset)

		return &tree.ConstantNode{}
	}
}

// symbolCall parses a resolved identifier: a constant, a variable
// reference, or a call to a function/closure of its declared arity.
func (p *Parser) symbolCall() tree.Node {
	sym := p.cur.Symbol
	p.advance()

	switch sym.Kind {
	case symtab.KindConstant:
		return &tree.ConstantNode{Value: sym.Value}

	case symtab.KindVariable:
		return &tree.VariableNode{Ptr: sym.Ptr}

	default: // KindFunction, KindClosure
		return p.call(sym)
	}
}

// call parses the arguments for a function/closure symbol of fixed
// arity. Arity 0 accepts optional empty parens; arity 1 additionally
// accepts a single bare argument (no parens) parsed at power precedence,
// matching the evaluator's implicit single-argument call form; arity 2
// and above always require parens and a comma-separated argument list.
func (p *Parser) call(sym *symtab.Symbol) tree.Node {
	var args []tree.Node

	switch {
	case sym.Arity == 0:
		if p.cur.Type == lexer.TOKEN_LPAREN {
			p.advance()
			p.expect(lexer.TOKEN_RPAREN)
		}

	case sym.Arity == 1 && p.cur.Type != lexer.TOKEN_LPAREN:
		args = []tree.Node{p.power()}

	default:
		p.expect(lexer.TOKEN_LPAREN)

		for i := 0; i < sym.Arity; i++ {
			if i > 0 {
				p.expect(lexer.TOKEN_COMMA)
			}

			args = append(args, p.comparison())
		}

		p.expect(lexer.TOKEN_RPAREN)
	}

	return p.newFunc(sym, args)
}

// newFunc builds a FuncNode and immediately constant-folds it when every
// child is already constant and the symbol is pure (not a closure).
func (p *Parser) newFunc(sym *symtab.Symbol, args []tree.Node) tree.Node {
	n := &tree.FuncNode{Symbol: sym, Children: args}
	if tree.IsConstant(n) {
		v := tree.Eval(n)
		tree.Free(n)

		return &tree.ConstantNode{Value: v}
	}

	return n
}
