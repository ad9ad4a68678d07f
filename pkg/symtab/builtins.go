package symtab

import "math"

// builtins is the base layer of every Table: the constants and functions
// defined by this package regardless of what the caller supplies. "log" is
// intentionally absent here; it is added by log_default.go or log_natlog.go
// depending on the natlog build tag.
var builtins = map[string]Symbol{
	"pi": {Name: "pi", Kind: KindConstant, Value: math.Pi},
	"e":  {Name: "e", Kind: KindConstant, Value: math.E},

	"abs":   {Name: "abs", Kind: KindFunction, Arity: 1, Fn: unary(math.Abs)},
	"acos":  {Name: "acos", Kind: KindFunction, Arity: 1, Fn: unary(math.Acos)},
	"asin":  {Name: "asin", Kind: KindFunction, Arity: 1, Fn: unary(math.Asin)},
	"atan":  {Name: "atan", Kind: KindFunction, Arity: 1, Fn: unary(math.Atan)},
	"ceil":  {Name: "ceil", Kind: KindFunction, Arity: 1, Fn: unary(math.Ceil)},
	"cos":   {Name: "cos", Kind: KindFunction, Arity: 1, Fn: unary(math.Cos)},
	"cosh":  {Name: "cosh", Kind: KindFunction, Arity: 1, Fn: unary(math.Cosh)},
	"exp":   {Name: "exp", Kind: KindFunction, Arity: 1, Fn: unary(math.Exp)},
	"fac":   {Name: "fac", Kind: KindFunction, Arity: 1, Fn: fac},
	"floor": {Name: "floor", Kind: KindFunction, Arity: 1, Fn: unary(math.Floor)},
	"ln":    {Name: "ln", Kind: KindFunction, Arity: 1, Fn: unary(math.Log)},
	"log10": {Name: "log10", Kind: KindFunction, Arity: 1, Fn: unary(math.Log10)},
	"sin":   {Name: "sin", Kind: KindFunction, Arity: 1, Fn: unary(math.Sin)},
	"sinh":  {Name: "sinh", Kind: KindFunction, Arity: 1, Fn: unary(math.Sinh)},
	"sqrt":  {Name: "sqrt", Kind: KindFunction, Arity: 1, Fn: unary(math.Sqrt)},
	"tan":   {Name: "tan", Kind: KindFunction, Arity: 1, Fn: unary(math.Tan)},
	"tanh":  {Name: "tanh", Kind: KindFunction, Arity: 1, Fn: unary(math.Tanh)},

	"atan2": {Name: "atan2", Kind: KindFunction, Arity: 2, Fn: binary(math.Atan2)},
	"pow":   {Name: "pow", Kind: KindFunction, Arity: 2, Fn: binary(math.Pow)},
	"ncr":   {Name: "ncr", Kind: KindFunction, Arity: 2, Fn: ncr},
	"npr":   {Name: "npr", Kind: KindFunction, Arity: 2, Fn: npr},

	"if": {Name: "if", Kind: KindFunction, Arity: 3, Fn: ifThenElse},
}

// unary adapts a single-argument math function to the Func signature the
// tree evaluator calls with a fixed-size argument slice.
func unary(f func(float64) float64) Func {
	return func(args []float64) float64 { return f(args[0]) }
}

// binary adapts a two-argument math function to the Func signature.
func binary(f func(float64, float64) float64) Func {
	return func(args []float64) float64 { return f(args[0], args[1]) }
}

// fac computes n! by truncating n to a non-negative integer and
// multiplying, exactly as the original evaluator's fac does. It is not
// rendered as math.Gamma(n+1): Gamma has a pole at every non-positive
// integer (Gamma(0) is +Inf, not NaN, so fac(-1) would come out +Inf
// instead of the required NaN) and disagrees with the truncating
// definition everywhere n is non-integral (fac(4.8) must be 24, not
// Gamma(5.8)).
func fac(args []float64) float64 {
	n := args[0]
	if n < 0 {
		return math.NaN()
	}

	ni := uint64(n)

	result := 1.0
	for i := uint64(1); i <= ni; i++ {
		result *= float64(i)
	}

	return result
}

// ncr computes the binomial coefficient n-choose-r iteratively so that
// overflow produces +Inf and an invalid domain (n<0, r<0, or r>n) produces
// NaN without any special-casing beyond the explicit guard below.
func ncr(args []float64) float64 {
	n, r := args[0], args[1]
	if n < 0 || r < 0 || r > n {
		return math.NaN()
	}

	ni, ri := int64(n), int64(r)
	if ri > ni-ri {
		ri = ni - ri
	}

	result := 1.0
	for i := int64(0); i < ri; i++ {
		result *= float64(ni-i) / float64(i+1)
	}

	return result
}

// npr computes the number of permutations of r items from n as the
// falling product n * (n-1) * ... * (n-r+1).
func npr(args []float64) float64 {
	n, r := args[0], args[1]
	if n < 0 || r < 0 || r > n {
		return math.NaN()
	}

	result := 1.0
	for i := 0.0; i < r; i++ {
		result *= n - i
	}

	return result
}

// ifThenElse is the built-in ternary: a non-zero condition selects the
// first branch. All three arguments are evaluated by the tree walker
// before this is called; there is no short-circuiting.
func ifThenElse(args []float64) float64 {
	if args[0] != 0 {
		return args[1]
	}

	return args[2]
}
