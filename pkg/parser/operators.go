package parser

import (
	"math"

	"github.com/conneroisu/mathex/pkg/symtab"
)

// These are the operator symbols the parser folds binary/unary syntax
// into FuncNodes around. They are never exposed through the symbol
// table's Lookup and so can never collide with a caller-supplied or
// built-in name; they exist purely as the Fn carriers newFunc needs.
var (
	addSymbol = &symtab.Symbol{Name: "+", Kind: symtab.KindFunction, Arity: 2, Fn: func(a []float64) float64 { return a[0] + a[1] }}
	subSymbol = &symtab.Symbol{Name: "-", Kind: symtab.KindFunction, Arity: 2, Fn: func(a []float64) float64 { return a[0] - a[1] }}
	mulSymbol = &symtab.Symbol{Name: "*", Kind: symtab.KindFunction, Arity: 2, Fn: func(a []float64) float64 { return a[0] * a[1] }}
	divSymbol = &symtab.Symbol{Name: "/", Kind: symtab.KindFunction, Arity: 2, Fn: func(a []float64) float64 { return a[0] / a[1] }}
	modSymbol = &symtab.Symbol{Name: "%", Kind: symtab.KindFunction, Arity: 2, Fn: func(a []float64) float64 { return math.Mod(a[0], a[1]) }}
	powSymbol = &symtab.Symbol{Name: "^", Kind: symtab.KindFunction, Arity: 2, Fn: func(a []float64) float64 { return math.Pow(a[0], a[1]) }}

	negSymbol = &symtab.Symbol{Name: "neg", Kind: symtab.KindFunction, Arity: 1, Fn: func(a []float64) float64 { return -a[0] }}

	commaSymbol = &symtab.Symbol{Name: ",", Kind: symtab.KindFunction, Arity: 2, Fn: func(a []float64) float64 { return a[1] }}

	ltSymbol = &symtab.Symbol{Name: "<", Kind: symtab.KindFunction, Arity: 2, Fn: boolFn(func(a, b float64) bool { return a < b })}
	gtSymbol = &symtab.Symbol{Name: ">", Kind: symtab.KindFunction, Arity: 2, Fn: boolFn(func(a, b float64) bool { return a > b })}
	leSymbol = &symtab.Symbol{Name: "<=", Kind: symtab.KindFunction, Arity: 2, Fn: boolFn(func(a, b float64) bool { return a <= b })}
	geSymbol = &symtab.Symbol{Name: ">=", Kind: symtab.KindFunction, Arity: 2, Fn: boolFn(func(a, b float64) bool { return a >= b })}
	eqSymbol = &symtab.Symbol{Name: "==", Kind: symtab.KindFunction, Arity: 2, Fn: boolFn(func(a, b float64) bool { return a == b })}
	neSymbol = &symtab.Symbol{Name: "!=", Kind: symtab.KindFunction, Arity: 2, Fn: boolFn(func(a, b float64) bool { return a != b })}
)

// boolFn renders a comparison as a Func returning 1 for true, 0 for
// false — the only two values a real-valued comparison can produce.
func boolFn(cmp func(a, b float64) bool) symtab.Func {
	return func(args []float64) float64 {
		if cmp(args[0], args[1]) {
			return 1
		}

		return 0
	}
}
