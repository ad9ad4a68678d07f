//go:build natlog

package symtab

import "math"

// log is natural log under the natlog build tag, the alternate convention
// from the evaluator's default base-10 behavior (log_default.go).
func init() {
	builtins["log"] = Symbol{Name: "log", Kind: KindFunction, Arity: 1, Fn: unary(math.Log)}
}
