//go:build !rightpow

package parser

import (
	"github.com/conneroisu/mathex/pkg/lexer"
	"github.com/conneroisu/mathex/pkg/tree"
)

// factor implements left-to-right chaining of '^': "2^3^2" is (2^3)^2 =
// 64. This is the default build; compile with -tags rightpow for
// right-to-left chaining instead (see assoc_rightpow.go).
func (p *Parser) factor() tree.Node {
	left := p.power()

	for !p.failed() && p.cur.Type == lexer.TOKEN_CARET {
		p.advance()
		right := p.power()
		left = p.newFunc(powSymbol, []tree.Node{left, right})
	}

	return left
}
