// Package mathex compiles and evaluates small real-arithmetic
// expressions: numeric literals, the usual arithmetic and comparison
// operators, a fixed set of built-in math functions, and caller-supplied
// variables, constants, functions, and closures.
//
// Two ways to use it: Interp for a single one-shot evaluation, or Compile
// followed by repeated (*Expr).Eval calls when the same expression will
// be evaluated many times against changing variable storage.
package mathex

import (
	"github.com/conneroisu/mathex/pkg/parser"
	"github.com/conneroisu/mathex/pkg/symtab"
	"github.com/conneroisu/mathex/pkg/tree"
)

// Symbol is one entry of the merged symbol table passed to Compile or
// Interp: a constant, a variable, a function, or a closure. Build one
// with Constant, Variable, Function, or Closure.
type Symbol = symtab.Symbol

// ParseError is returned by Compile/Interp on a malformed expression. It
// carries the single 1-based byte offset of the first offending token.
type ParseError = parser.ParseError

// Constant declares a fixed numeric value, such as a domain parameter.
func Constant(name string, value float64) Symbol { return symtab.Constant(name, value) }

// Variable declares a reference to caller-owned storage. ptr must stay
// valid for as long as any compiled Expr referencing it is in use.
func Variable(name string, ptr *float64) Symbol { return symtab.Variable(name, ptr) }

// Function declares a pure function of arity 0-7.
func Function(name string, arity int, fn func(args []float64) float64) Symbol {
	return symtab.Function(name, arity, fn)
}

// Closure declares a function of arity 0-7 that also receives ctx, a
// caller-owned context read fresh on every Eval call rather than
// captured once at compile time.
func Closure(name string, arity int, fn func(ctx any, args []float64) float64, ctx any) Symbol {
	return symtab.Closure(name, arity, fn, ctx)
}

// Expr is a compiled expression tree, ready for repeated evaluation.
type Expr struct {
	root tree.Node
}

// Compile parses source once against the merged table of built-ins and
// symbols, constant-folding as it goes, and returns the reusable result.
// The returned *Expr must be released with Close when no longer needed.
func Compile(source string, symbols ...Symbol) (*Expr, error) {
	n, err := parser.Parse(source, symbols...)
	if err != nil {
		return nil, err
	}

	return &Expr{root: n}, nil
}

// Eval evaluates the compiled tree against the current value of every
// variable and closure context it references. Each function node it
// evaluates allocates its argument array on the heap (the array escapes
// into the function call). It may be called any number of times, including
// concurrently, as long as the caller does not mutate that storage from
// another goroutine at the same time.
func (e *Expr) Eval() float64 {
	return tree.Eval(e.root)
}

// Close releases the nodes this Expr owns. It never touches caller-owned
// variable storage or closure contexts. Close is a no-op on a nil *Expr
// and must not be called more than once on the same Expr.
func (e *Expr) Close() {
	if e == nil {
		return
	}

	tree.Free(e.root)
	e.root = nil
}

// Interp compiles source, evaluates it once, and releases it. It is the
// one-shot convenience form of Compile/Eval/Close.
func Interp(source string, symbols ...Symbol) (float64, error) {
	e, err := Compile(source, symbols...)
	if err != nil {
		return 0, err
	}
	defer e.Close()

	return e.Eval(), nil
}
