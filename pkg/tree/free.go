package tree

// Free releases every node this tree owns: interior FuncNodes and
// ConstantNodes. It never touches what a VariableNode or a FuncNode's
// Symbol merely references — caller-owned storage, built-in table
// entries, and closure contexts are left untouched. Free(nil) is a no-op.
// Free clears the Children and Symbol of every FuncNode it reaches, so
// evaluating a freed FuncNode panics on the nil Symbol rather than making
// a silent dangling read; ConstantNode and VariableNode values are left
// as they are, and calling Free again on a freed tree does nothing.
func Free(n Node) {
	if n == nil {
		return
	}

	fn, ok := n.(*FuncNode)
	if !ok {
		return
	}

	for _, c := range fn.Children {
		Free(c)
	}

	fn.Children = nil
	fn.Symbol = nil
}
