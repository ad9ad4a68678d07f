// doc.go documents the layout of this package:
//
//   symtab.go:      Table and Symbol types, merge/lookup logic.
//   builtins.go:     the fixed built-in constants and math functions.
//   log_default.go:  "log" = log10, selected unless built with -tags natlog.
//   log_natlog.go:   "log" = natural log, selected with -tags natlog.
package symtab
