package ast

// Walk traverses node depth-first, calling fn for each node visited. If fn
// returns false for a node, Walk does not descend into that node's children
// (but still returns to the caller to continue with siblings).
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, c := range n.Classes {
			Walk(c, fn)
		}
		for _, s := range n.Main {
			Walk(s, fn)
		}

	case *ClassDecl:
		for _, m := range n.ClassMethods {
			Walk(m, fn)
		}
		for _, m := range n.InstanceMethods {
			Walk(m, fn)
		}

	case *Method:
		for _, s := range n.Body {
			Walk(s, fn)
		}

	case *Return:
		Walk(n.Expr, fn)

	case *If:
		Walk(n.Cond, fn)
		for _, s := range n.Then {
			Walk(s, fn)
		}
		for _, s := range n.Else {
			Walk(s, fn)
		}

	case *AssignLvar:
		Walk(n.Expr, fn)

	case *AssignIvar:
		Walk(n.Expr, fn)

	case *ArrayExpr:
		for _, e := range n.Elems {
			Walk(e, fn)
		}

	case *ClassSpecialization:
		Walk(n.ClassExpr, fn)
		for _, a := range n.TypeArgs {
			Walk(a, fn)
		}

	case *MethodCall:
		Walk(n.Receiver, fn)
		for _, a := range n.Args {
			Walk(a, fn)
		}

	case *Lambda:
		for _, s := range n.Body {
			Walk(s, fn)
		}

	case *LambdaCall:
		Walk(n.Callee, fn)
		for _, a := range n.Args {
			Walk(a, fn)
		}
	}
}

// FindReturns collects every Return node reachable from body, recursing
// into If branches but not into nested Lambda bodies (a lambda's returns
// belong to the lambda, not the enclosing method).
func FindReturns(body []Stmt) []*Return {
	var out []*Return
	var visit func(node Node) bool
	visit = func(node Node) bool {
		if _, ok := node.(*Lambda); ok {
			return false
		}
		if ret, ok := node.(*Return); ok {
			out = append(out, ret)
		}
		return true
	}
	for _, s := range body {
		Walk(s, visit)
	}
	return out
}
