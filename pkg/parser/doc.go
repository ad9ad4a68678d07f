// Package parser implements a recursive descent parser for arithmetic
// expressions, with inline constant folding and a single-offset error
// contract.
//
// Architecture:
//
// The parser is a classic precedence-climbing descent over seven
// productions named after the grammar they implement: list, comparison,
// additive, term, factor, power, base. There is no separate lexing pass
// held in memory; tokens are pulled one at a time from a lexer.Lexer with
// one token of lookahead (cur/peek).
//
// Operators (highest to lowest precedence):
//  1. unary +/- (power)
//  2. ^ (factor; left-associative by default, see assoc_default.go /
//     assoc_rightpow.go)
//  3. * / % (term)
//  4. + - (additive)
//  5. < > <= >= == != (comparison; non-chaining, at most one per level)
//  6. , (list; evaluates and discards the left operand, like C's comma)
//
// Constant Folding:
//
// Every binary/unary/call node is built through newFunc, which
// immediately evaluates and replaces it with a *tree.ConstantNode when
// every child is already constant and the operator has no closure
// context to consult. A compiled tree therefore never contains a node
// that newFunc could have folded.
//
// Error Handling:
//
// Parsing stops at the first fault — there is no recovery and no
// multi-error collection. ParseError carries a single 1-based byte
// offset, matching the evaluator's external interface contract.
//
// Usage Example:
//
//	tree, err := parser.Parse("atan(1)*4 - pi", symtab.Constant("k", 2))
//	if err != nil {
//	    var perr parser.ParseError
//	    errors.As(err, &perr)
//	    fmt.Println("bad expression at offset", perr.Offset)
//	}
package parser
