// walk.go
//
// Recursive traversal over the AST. Walk dispatches on the concrete node
// type with one case per kind, the same shape the printer uses; it is the
// single place that knows how to reach every owned child, including list
// elements and the Parameter/DictEntry auxiliary records.
package lamc

// Visitor is called for every node in pre-order. Returning false skips the
// node's children.
type Visitor func(Node) bool

// Walk visits n and its entire subtree. Auxiliary records (parameters, dict
// entries) are not nodes themselves; their owned child nodes are visited.
func Walk(n Node, v Visitor) {
	if n == nil || !v(n) {
		return
	}
	switch x := n.(type) {
	case *BinaryExpr:
		Walk(x.Left, v)
		Walk(x.Right, v)
	case *UnaryExpr:
		Walk(x.Operand, v)
	case *Literal, *Identifier:
		// leaves
	case *CallExpr:
		Walk(x.Callee, v)
		for _, a := range x.Args {
			Walk(a, v)
		}
	case *IndexExpr:
		Walk(x.Object, v)
		Walk(x.Index, v)
	case *MemberExpr:
		Walk(x.Object, v)
	case *ArrayExpr:
		for _, e := range x.Elements {
			Walk(e, v)
		}
	case *DictExpr:
		for _, entry := range x.Entries {
			Walk(entry.Key, v)
			Walk(entry.Value, v)
		}
	case *VarDecl:
		Walk(x.Init, v)
	case *AssignStmt:
		Walk(x.Target, v)
		Walk(x.Value, v)
	case *ExprStmt:
		Walk(x.Expr, v)
	case *IfStmt:
		Walk(x.Condition, v)
		Walk(x.Then, v)
		Walk(x.Else, v)
	case *WhileStmt:
		Walk(x.Condition, v)
		Walk(x.Body, v)
	case *ForStmt:
		Walk(x.Iterable, v)
		Walk(x.Body, v)
	case *LoopStmt:
		Walk(x.Body, v)
	case *ReturnStmt:
		Walk(x.Value, v)
	case *BreakStmt, *ContinueStmt:
		// leaves
	case *BlockStmt:
		for _, s := range x.Stmts {
			Walk(s, v)
		}
	case *FunctionDecl:
		for _, p := range x.Params {
			Walk(p.Default, v)
		}
		Walk(x.Body, v)
	case *ClassDecl:
		for _, f := range x.Fields {
			Walk(f, v)
		}
		for _, m := range x.Methods {
			Walk(m, v)
		}
	case *ImportStmt:
		// leaf
	case *Program:
		for _, d := range x.Decls {
			Walk(d, v)
		}
	}
}

// CountNodes returns the number of nodes reachable from n, n included.
// Because Walk reaches every owned child exactly once, the count doubles as
// a teardown-totality check in tests.
func CountNodes(n Node) int {
	count := 0
	Walk(n, func(Node) bool {
		count++
		return true
	})
	return count
}
