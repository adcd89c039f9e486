package sem

import (
	"github.com/shiika-lang/shiika-core/internal/ast"
	"github.com/shiika-lang/shiika-core/internal/diag"
)

// checkCall implements the shared shape of MethodCall and LambdaCall
// (LambdaCall is a method call on the `call` method of a Fn value, per
// Design Note 9.2): type the arguments, then the receiver, resolve the
// method, arity- and type-check the arguments against its signature, and
// yield the declared return type. Order matches spec §4.2's MethodCall
// rule literally: "type args, then receiver".
func (c *Checker) checkCall(env *Env, receiver ast.Expr, methodName string, argExprs []ast.Expr) (Type, *Env, error) {
	argTypes := make([]Type, len(argExprs))
	for i, a := range argExprs {
		t, _, err := c.checkExpr(env, a)
		if err != nil {
			return nil, nil, err
		}
		argTypes[i] = t
	}
	recvType, _, err := c.checkExpr(env, receiver)
	if err != nil {
		return nil, nil, err
	}
	info, err := env.FindMethodInfo(recvType, methodName)
	if err != nil {
		return nil, nil, err
	}
	if err := c.checkArgs(env, info, argTypes); err != nil {
		return nil, nil, err
	}
	return info.Sig.ReturnType, env, nil
}

// checkArgs validates argTypes against info's signature, honoring the
// single-vararg tie-break rules of spec §4.3: head params precede the
// vararg, tail params follow it, and exceeding head+tail count is
// permitted only when a vararg parameter is present.
func (c *Checker) checkArgs(env *Env, info *MethodInfo, argTypes []Type) error {
	params := info.Sig.ParamTypes
	vIdx := -1
	if info.Decl != nil {
		vIdx = varargIndex(info.Decl.Params)
	}
	if vIdx < 0 {
		if len(argTypes) != len(params) {
			return diag.Newf(diag.KindType, diag.CodeArityMismatch, "%s expects %d argument(s), got %d", info.Sig.Name, len(params), len(argTypes))
		}
		for i, pt := range params {
			if !ConformsTo(env, argTypes[i], pt) {
				return diag.Newf(diag.KindType, diag.CodeTypeMismatch, "argument %d to %s: expected %s, got %s", i+1, info.Sig.Name, pt.String(), argTypes[i].String())
			}
		}
		return nil
	}

	head := params[:vIdx]
	tail := params[vIdx+1:]
	minArity := len(head) + len(tail)
	if len(argTypes) < minArity {
		return diag.Newf(diag.KindType, diag.CodeArityMismatch, "%s expects at least %d argument(s), got %d", info.Sig.Name, minArity, len(argTypes))
	}
	for i, pt := range head {
		if !ConformsTo(env, argTypes[i], pt) {
			return diag.Newf(diag.KindType, diag.CodeTypeMismatch, "argument %d to %s: expected %s, got %s", i+1, info.Sig.Name, pt.String(), argTypes[i].String())
		}
	}
	tailStart := len(argTypes) - len(tail)
	for i, pt := range tail {
		at := argTypes[tailStart+i]
		if !ConformsTo(env, at, pt) {
			return diag.Newf(diag.KindType, diag.CodeTypeMismatch, "argument %d to %s: expected %s, got %s", tailStart+i+1, info.Sig.Name, pt.String(), at.String())
		}
	}
	elemType, ok := arrayElemType(params[vIdx])
	if !ok {
		return diag.Newf(diag.KindProgram, diag.CodeBadVararg, "vararg parameter of %s is not declared Array<E>", info.Sig.Name)
	}
	for i := len(head); i < tailStart; i++ {
		if !Equal(argTypes[i], elemType) {
			return diag.Newf(diag.KindType, diag.CodeBadVararg, "vararg element %d to %s: expected %s, got %s", i-len(head)+1, info.Sig.Name, elemType.String(), argTypes[i].String())
		}
	}
	if _, err := c.registry.Specialize("Array", []Type{elemType}); err != nil {
		return err
	}
	return nil
}
