// Package lexer provides lexical analysis for arithmetic expressions.
//
// The lexer is the first stage of the evaluation pipeline, converting raw
// source text into a stream of tokens the parser consumes. It differs from
// a conventional scanner in one respect: identifiers are resolved against
// a symtab.Table as soon as they are read, using longest-match. A name the
// table does not bind becomes an ILLEGAL token at the offset of its last
// byte, rather than an IDENT token the parser has to resolve later.
//
// Token Recognition:
//   - Numbers: decimal literals (3, 3.14, .5) with an optional e/E exponent
//     carrying its own optional sign (1e3, 5e-5, 1.5E+2)
//   - Symbols: any identifier bound in the symbol table (constant,
//     variable, function, or closure — the parser branches on Symbol.Kind)
//   - Operators: +, -, *, /, %, ^, <, >, <=, >=, ==, !=
//   - Delimiters: (, ), ,
//
// Position Tracking:
//   - Every token carries a single 1-based byte offset into the source
//     (its first byte; for an unbound identifier, its last byte),
//     matching the evaluator's external error contract (a single offset,
//     not a line/column pair).
//
// Usage Example:
//
//	table := symtab.New(nil)
//	l := lexer.New("atan(1)*4 - pi", table)
//	for {
//	    tok := l.NextToken()
//	    if tok.Type == lexer.TOKEN_EOF {
//	        break
//	    }
//	}
package lexer
