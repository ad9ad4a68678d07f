// Package symtab implements the merged symbol table that resolves
// identifiers encountered while lexing an expression.
//
// A table is a read-only overlay: the built-in constants and functions form
// the base layer, and any caller-supplied symbols are layered on top of it.
// A caller symbol with the same name as a built-in shadows it; among
// caller-supplied symbols that share a name, the first one wins and later
// duplicates are silently dropped. Once constructed a Table is never
// mutated again, so it is safe to share across concurrent Compile calls.
package symtab

// Kind classifies what a Symbol resolves to.
type Kind int

const (
	// KindConstant is a fixed numeric value, such as pi.
	KindConstant Kind = iota
	// KindVariable references a float64 owned by the caller.
	KindVariable
	// KindFunction is a pure function of 0-7 arguments.
	KindFunction
	// KindClosure is a function of 0-7 arguments plus an opaque,
	// caller-owned context consulted fresh on every call.
	KindClosure
)

// Func is a pure built-in or user-supplied function body.
type Func func(args []float64) float64

// ClosureFunc is a function body that also receives a caller-owned context,
// read live on every invocation rather than captured at compile time.
type ClosureFunc func(ctx any, args []float64) float64

// Symbol is one entry of the merged symbol table.
type Symbol struct {
	Name  string
	Kind  Kind
	Value float64 // KindConstant

	Ptr *float64 // KindVariable: caller-owned storage, never freed by this package

	Arity     int         // KindFunction, KindClosure: 0-7
	Fn        Func        // KindFunction
	ClosureFn ClosureFunc // KindClosure
	Ctx       any         // KindClosure: caller-owned, re-read on every Eval
}

// Table is the merged, read-only view of built-ins and caller symbols.
type Table struct {
	entries map[string]*Symbol
}

// New builds a Table from the built-in set overlaid with user, in
// declaration order. The first symbol with a given name wins; a later
// duplicate (whether user-vs-user or user-vs-builtin) is ignored.
func New(user []Symbol) *Table {
	t := &Table{entries: make(map[string]*Symbol, len(builtins)+len(user))}

	for i := range user {
		s := user[i]
		if _, exists := t.entries[s.Name]; !exists {
			t.entries[s.Name] = &s
		}
	}

	for name, sym := range builtins {
		if _, exists := t.entries[name]; !exists {
			cp := sym
			t.entries[name] = &cp
		}
	}

	return t
}

// Lookup resolves name against the merged table. The second return value
// is false when the name is unbound anywhere in the table, at which point
// the caller (the lexer) reports an unresolved-identifier error.
func (t *Table) Lookup(name string) (*Symbol, bool) {
	s, ok := t.entries[name]

	return s, ok
}

// Constant declares a fixed numeric value.
func Constant(name string, value float64) Symbol {
	return Symbol{Name: name, Kind: KindConstant, Value: value}
}

// Variable declares a reference to caller-owned storage. ptr must remain
// valid for as long as any compiled tree referencing it is in use.
func Variable(name string, ptr *float64) Symbol {
	return Symbol{Name: name, Kind: KindVariable, Ptr: ptr}
}

// Function declares a pure function of arity 0-7.
func Function(name string, arity int, fn Func) Symbol {
	return Symbol{Name: name, Kind: KindFunction, Arity: arity, Fn: fn}
}

// Closure declares a function of arity 0-7 that also receives ctx, a
// caller-owned context consulted fresh on every Eval call rather than
// captured once at compile time.
func Closure(name string, arity int, fn ClosureFunc, ctx any) Symbol {
	return Symbol{Name: name, Kind: KindClosure, Arity: arity, ClosureFn: fn, Ctx: ctx}
}
