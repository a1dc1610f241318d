package syntax

// WalkFunc is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type WalkFunc func(node Node) bool

// Walk traverses an AST in depth-first order.
// If f returns false, children are not visited.
func Walk(node Node, f WalkFunc) {
	if node == nil || !f(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, c := range n.Classes {
			Walk(c, f)
		}

	case *ClassDef:
		for _, m := range n.Members {
			Walk(m, f)
		}

	case *MethodDef:
		Walk(n.ReturnType, f)
		for _, p := range n.Formals {
			Walk(p, f)
		}
		if n.Body != nil {
			Walk(n.Body, f)
		}

	case *VarDef:
		Walk(n.VarType, f)

	case *Block:
		for _, s := range n.Stmts {
			Walk(s, f)
		}

	case *While:
		Walk(n.Cond, f)
		Walk(n.Body, f)

	case *For:
		if n.Init != nil {
			Walk(n.Init, f)
		}
		if n.Cond != nil {
			Walk(n.Cond, f)
		}
		if n.Update != nil {
			Walk(n.Update, f)
		}
		Walk(n.Body, f)

	case *Foreach:
		Walk(n.Var, f)
		Walk(n.Source, f)
		Walk(n.Cond, f)
		Walk(n.Body, f)

	case *If:
		Walk(n.Cond, f)
		Walk(n.Then, f)
		if n.Else != nil {
			Walk(n.Else, f)
		}

	case *GuardedIf:
		for _, g := range n.Guards {
			Walk(g, f)
		}

	case *Guard:
		Walk(n.Cond, f)
		Walk(n.Body, f)

	case *Return:
		if n.Result != nil {
			Walk(n.Result, f)
		}

	case *Print:
		for _, e := range n.Args {
			Walk(e, f)
		}

	case *ObjectCopy:
		Walk(n.X, f)

	case *Assign:
		Walk(n.Target, f)
		Walk(n.Value, f)

	case *ExprStmt:
		Walk(n.X, f)

	case *Ident:
		if n.Owner != nil {
			Walk(n.Owner, f)
		}

	case *Unary:
		Walk(n.X, f)

	case *Binary:
		Walk(n.X, f)
		Walk(n.Y, f)

	case *Call:
		if n.Receiver != nil {
			Walk(n.Receiver, f)
		}
		for _, a := range n.Args {
			Walk(a, f)
		}

	case *NewArray:
		Walk(n.Elem, f)
		Walk(n.Length, f)

	case *Indexed:
		Walk(n.Array, f)
		Walk(n.Index, f)

	case *ArrayRange:
		Walk(n.Array, f)
		Walk(n.From, f)
		Walk(n.To, f)

	case *ArrayElement:
		Walk(n.Array, f)
		Walk(n.Index, f)
		Walk(n.Default, f)

	case *ArrayConstant:
		for _, e := range n.Elems {
			Walk(e, f)
		}

	case *ArrayComp:
		Walk(n.Source, f)
		Walk(n.Cond, f)
		Walk(n.Result, f)

	case *TypeCast:
		Walk(n.X, f)

	case *TypeTest:
		Walk(n.X, f)

	case *ArrayType:
		Walk(n.Elem, f)

		// Leaf nodes: Skip, Break, DeductedVar, Literal, Null, This,
		// ReadInt, ReadLine, NewClass, BasicType, ClassType, DeductedType.
	}
}

// Inspect traverses an AST and calls f for each node.
// Convenience wrapper around Walk.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, WalkFunc(f))
}
