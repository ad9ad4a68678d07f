// doc.go documents the layout of this package:
//
//   node.go: Node interface and its three variants (Constant, Variable,
//            Func), plus IsConstant, the fold-ability test the parser
//            uses to collapse a pure subtree into a single Constant.
//   eval.go: Eval, the public post-order evaluator entry point.
//   free.go: Free, the ownership-aware destructor.
package tree
