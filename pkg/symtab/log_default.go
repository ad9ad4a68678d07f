//go:build !natlog

package symtab

import "math"

// log defaults to base-10 logarithm, matching the upstream evaluator's
// behavior when built without its natural-log convention switch. Build
// with -tags natlog to get natural log instead (see log_natlog.go).
func init() {
	builtins["log"] = Symbol{Name: "log", Kind: KindFunction, Arity: 1, Fn: unary(math.Log10)}
}
