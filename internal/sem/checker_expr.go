package sem

import (
	"github.com/shiika-lang/shiika-core/internal/ast"
	"github.com/shiika-lang/shiika-core/internal/diag"
)

var voidType Type = &Raw{Name: "Void"}
var boolType Type = &Raw{Name: "Bool"}

// checkExpr is add_type for a single node: it computes x's type, records
// it (erroring if x was already visited), and returns the environment
// visible to whatever statement follows x in its enclosing sequence.
func (c *Checker) checkExpr(env *Env, expr ast.Expr) (Type, *Env, error) {
	switch x := expr.(type) {
	case *ast.Literal:
		return c.checkLiteral(env, x)
	case *ast.LvarRef:
		lv, err := env.FindLvar(x.Name)
		if err != nil {
			return nil, nil, err
		}
		t, err := c.record(x, lv.Type)
		return t, env, err
	case *ast.IvarRef:
		t, err := env.FindIvar(x.Name)
		if err != nil {
			return nil, nil, err
		}
		t, err = c.record(x, t)
		return t, env, err
	case *ast.ConstRef:
		cb, err := env.FindConst(x.Name)
		if err != nil {
			return nil, nil, err
		}
		t, err := c.record(x, cb.Type)
		return t, env, err
	case *ast.Return:
		return c.checkReturn(env, x)
	case *ast.If:
		return c.checkIf(env, x)
	case *ast.AssignLvar:
		return c.checkAssignLvar(env, x)
	case *ast.AssignIvar:
		return c.checkAssignIvar(env, x)
	case *ast.ArrayExpr:
		return c.checkArrayExpr(env, x)
	case *ast.ClassSpecialization:
		return c.checkClassSpecialization(env, x)
	case *ast.MethodCall:
		t, nextEnv, err := c.checkCall(env, x.Receiver, x.Method, x.Args)
		if err != nil {
			return nil, nil, err
		}
		t, err = c.record(x, t)
		return t, nextEnv, err
	case *ast.Lambda:
		return c.checkLambda(env, x)
	case *ast.LambdaCall:
		t, nextEnv, err := c.checkCall(env, x.Callee, "call", x.Args)
		if err != nil {
			return nil, nil, err
		}
		t, err = c.record(x, t)
		return t, nextEnv, err
	default:
		return nil, nil, diag.Newf(diag.KindProgram, diag.CodeUnsupported, "unsupported expression node %T", expr)
	}
}

func (c *Checker) checkLiteral(env *Env, lit *ast.Literal) (Type, *Env, error) {
	var name string
	switch lit.Kind {
	case ast.IntLiteral:
		name = "Int"
	case ast.FloatLiteral:
		name = "Float"
	case ast.BoolLiteral:
		name = "Bool"
	default:
		return nil, nil, diag.Newf(diag.KindProgram, diag.CodeUnsupported, "unknown literal kind %d", lit.Kind)
	}
	t, err := c.record(lit, &Raw{Name: name})
	return t, env, err
}

func (c *Checker) checkReturn(env *Env, ret *ast.Return) (Type, *Env, error) {
	_, _, err := c.checkExpr(env, ret.Expr)
	if err != nil {
		return nil, nil, err
	}
	t, err := c.record(ret, voidType)
	return t, env, err
}

func (c *Checker) checkIf(env *Env, ifExpr *ast.If) (Type, *Env, error) {
	condType, _, err := c.checkExpr(env, ifExpr.Cond)
	if err != nil {
		return nil, nil, err
	}
	if !Equal(condType, boolType) {
		return nil, nil, diag.Newf(diag.KindType, diag.CodeIfCondNotBool, "if condition must be Bool, got %s", condType.String())
	}
	thenType, _, err := c.checkStmts(env, ifExpr.Then)
	if err != nil {
		return nil, nil, err
	}
	elseType, _, err := c.checkStmts(env, ifExpr.Else)
	if err != nil {
		return nil, nil, err
	}
	thenVoid := Equal(thenType, voidType)
	elseVoid := Equal(elseType, voidType)
	var result Type
	switch {
	case !thenVoid && !elseVoid:
		if !Equal(thenType, elseType) {
			return nil, nil, diag.Newf(diag.KindType, diag.CodeIfBranchMismatch, "if branches disagree: %s vs %s", thenType.String(), elseType.String())
		}
		result = thenType
	case thenVoid && elseVoid:
		result = voidType
	case thenVoid:
		result = elseType
	default:
		result = thenType
	}
	t, err := c.record(ifExpr, result)
	// Branch-local bindings never leak: the env following an If is the
	// outer env, unchanged (spec §4.2, §5 scope discipline).
	return t, env, err
}

func (c *Checker) checkAssignLvar(env *Env, assign *ast.AssignLvar) (Type, *Env, error) {
	exprType, _, err := c.checkExpr(env, assign.Expr)
	if err != nil {
		return nil, nil, err
	}
	if Equal(exprType, voidType) {
		return nil, nil, diag.Newf(diag.KindProgram, diag.CodeVoidAssignment, "cannot assign Void to %q", assign.Name)
	}
	existing, lookupErr := env.FindLvar(assign.Name)
	var nextEnv *Env
	if lookupErr == nil {
		if existing.Kind != LvarVar {
			return nil, nil, diag.Newf(diag.KindProgram, diag.CodeReassignLet, "%q is read-only; declare it with var to reassign", assign.Name).
				WithNote("declared without var")
		}
		if !ConformsTo(env, exprType, existing.Type) {
			return nil, nil, diag.Newf(diag.KindType, diag.CodeReassignType, "%q is %s, cannot assign %s", assign.Name, existing.Type.String(), exprType.String())
		}
		nextEnv = env.WithLocal(&Lvar{Name: assign.Name, Type: existing.Type, Kind: LvarVar})
	} else {
		kind := LvarLet
		if assign.IsVar {
			kind = LvarVar
		}
		nextEnv = env.WithLocal(&Lvar{Name: assign.Name, Type: exprType, Kind: kind})
	}
	t, err := c.record(assign, exprType)
	return t, nextEnv, err
}

func (c *Checker) checkAssignIvar(env *Env, assign *ast.AssignIvar) (Type, *Env, error) {
	exprType, _, err := c.checkExpr(env, assign.Expr)
	if err != nil {
		return nil, nil, err
	}
	ivarType, err := env.FindIvar(assign.Name)
	if err != nil {
		return nil, nil, err
	}
	if !Equal(ivarType, exprType) {
		return nil, nil, diag.Newf(diag.KindType, diag.CodeTypeMismatch, "ivar %q is %s, cannot assign %s", assign.Name, ivarType.String(), exprType.String())
	}
	t, err := c.record(assign, exprType)
	return t, env, err
}

func (c *Checker) checkArrayExpr(env *Env, arr *ast.ArrayExpr) (Type, *Env, error) {
	var elemType Type
	for i, elem := range arr.Elems {
		t, _, err := c.checkExpr(env, elem)
		if err != nil {
			return nil, nil, err
		}
		if i == 0 {
			elemType = t
		} else if !Equal(elemType, t) {
			return nil, nil, diag.Newf(diag.KindType, diag.CodeArrayElemMismatch, "array elements must share one type: %s vs %s", elemType.String(), t.String())
		}
	}
	if elemType == nil {
		return nil, nil, diag.New(diag.KindProgram, diag.CodeUnsupported, "empty array literal has no element type")
	}
	if _, err := c.registry.Specialize("Array", []Type{elemType}); err != nil {
		return nil, nil, err
	}
	t, err := c.record(arr, &Spe{Name: "Array", Args: []Type{elemType}})
	return t, env, err
}

func (c *Checker) checkClassSpecialization(env *Env, spec *ast.ClassSpecialization) (Type, *Env, error) {
	classType, _, err := c.checkExpr(env, spec.ClassExpr)
	if err != nil {
		return nil, nil, err
	}
	genMeta, ok := classType.(*GenMeta)
	if !ok {
		return nil, nil, diag.Newf(diag.KindType, diag.CodeNotGeneric, "%s is not a generic class", classType.String())
	}
	args := make([]Type, len(spec.TypeArgs))
	for i, argExpr := range spec.TypeArgs {
		t, _, err := c.checkExpr(env, argExpr)
		if err != nil {
			return nil, nil, err
		}
		meta, ok := t.(*Meta)
		if !ok {
			return nil, nil, diag.Newf(diag.KindType, diag.CodeNotClassConst, "type argument %d is not a class constant", i+1)
		}
		args[i] = &Raw{Name: meta.Name}
	}
	if _, err := c.registry.Specialize(genMeta.Name, args); err != nil {
		return nil, nil, err
	}
	t, err := c.record(spec, &SpeMeta{Name: genMeta.Name, Args: args})
	return t, env, err
}

func (c *Checker) checkLambda(env *Env, lam *ast.Lambda) (Type, *Env, error) {
	inner := NewEnv(c.registry).WithSelf(env.Self(), env.SelfType())
	for _, name := range lam.Captures {
		lv, err := env.FindLvar(name)
		if err != nil {
			return nil, nil, err
		}
		inner = inner.WithLocal(lv)
	}
	paramTypes := make([]Type, len(lam.Params))
	lvars := make([]*Lvar, len(lam.Params))
	for i, p := range lam.Params {
		t, err := c.resolveTypeSpec(env, p.Type)
		if err != nil {
			return nil, nil, err
		}
		paramTypes[i] = t
		lvars[i] = &Lvar{Name: p.Name, Type: t, Kind: LvarParam}
	}
	inner = inner.WithLocals(lvars)
	bodyType, _, err := c.checkStmts(inner, lam.Body)
	if err != nil {
		return nil, nil, err
	}
	args := append(append([]Type(nil), paramTypes...), bodyType)
	if _, err := c.registry.Specialize("Fn", args); err != nil {
		return nil, nil, err
	}
	t, err := c.record(lam, &Spe{Name: "Fn", Args: args})
	return t, env, err
}
