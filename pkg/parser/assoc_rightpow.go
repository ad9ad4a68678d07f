//go:build rightpow

package parser

import (
	"github.com/conneroisu/mathex/pkg/lexer"
	"github.com/conneroisu/mathex/pkg/tree"
)

// factor implements right-to-left chaining of '^': "2^3^2" is 2^(3^2) =
// 512. Build with -tags rightpow to select this variant; the default
// build is assoc_default.go's left-to-right chaining.
//
// Unlike the default build, a leading sign here binds looser than '^',
// not to its own operand: it is parsed ahead of the whole chain and
// applied to the chain's final result, so "-2^2" is -(2^2) = -4 and
// "-a^b" is -(a^b), matching the real evaluator's right-associative
// power semantics.
func (p *Parser) factor() tree.Node {
	negate := false

	for !p.failed() {
		switch p.cur.Type {
		case lexer.TOKEN_MINUS:
			negate = !negate

			p.advance()
		case lexer.TOKEN_PLUS:
			p.advance()
		default:
			return p.powerFactor(negate)
		}
	}

	return &tree.ConstantNode{}
}

// powerFactor parses a base and an optional right-associative '^' chain,
// then applies a sign already consumed by factor to the chain as a
// whole. The right operand of '^' recurses through factor so it may
// carry its own sign and its own further chaining.
func (p *Parser) powerFactor(negate bool) tree.Node {
	left := p.base()

	result := left
	if !p.failed() && p.cur.Type == lexer.TOKEN_CARET {
		p.advance()
		right := p.factor()
		result = p.newFunc(powSymbol, []tree.Node{left, right})
	}

	if negate {
		return p.newFunc(negSymbol, []tree.Node{result})
	}

	return result
}
