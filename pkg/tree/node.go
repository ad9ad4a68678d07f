// Package tree implements the compiled expression tree: its node types,
// the pure post-order evaluator, and the ownership-aware destructor.
package tree

import "github.com/conneroisu/mathex/pkg/symtab"

// Node is any node of a compiled expression tree.
type Node interface {
	// eval returns this node's value. Functions recompute their
	// children every call; nothing is memoized, matching the contract
	// that Eval on an unchanged tree is a pure function of the caller's
	// live storage.
	eval() float64
}

// ConstantNode is a literal or a constant-folded subtree. It is owned by
// the tree that contains it and is released by Free.
type ConstantNode struct {
	Value float64
}

func (n *ConstantNode) eval() float64 { return n.Value }

// VariableNode references a float64 owned by the caller. The tree borrows
// the pointer; Free must never dereference or clear the pointee, only its
// own reference to it.
type VariableNode struct {
	Ptr *float64
}

func (n *VariableNode) eval() float64 { return *n.Ptr }

// FuncNode applies a built-in or user-supplied function (or closure) to
// its evaluated children. Symbol is a borrowed reference to the caller's
// (or the built-in table's) entry; Children are owned interior nodes.
type FuncNode struct {
	Symbol   *symtab.Symbol
	Children []Node
}

func (n *FuncNode) eval() float64 {
	var args [7]float64
	for i, c := range n.Children {
		args[i] = Eval(c)
	}

	switch n.Symbol.Kind {
	case symtab.KindClosure:
		return n.Symbol.ClosureFn(n.Symbol.Ctx, args[:len(n.Children)])
	default:
		return n.Symbol.Fn(args[:len(n.Children)])
	}
}

// IsConstant reports whether n is foldable immediately: a ConstantNode
// itself, or a pure (non-closure) FuncNode every one of whose children is
// already constant. The parser uses this right after building a node to
// fold it in place.
func IsConstant(n Node) bool {
	switch v := n.(type) {
	case *ConstantNode:
		return true
	case *VariableNode:
		return false
	case *FuncNode:
		if v.Symbol.Kind == symtab.KindClosure {
			return false
		}
		for _, c := range v.Children {
			if !IsConstant(c) {
				return false
			}
		}

		return true
	default:
		return false
	}
}
