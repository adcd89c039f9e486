package sem

import (
	"github.com/shiika-lang/shiika-core/internal/ast"
	"github.com/shiika-lang/shiika-core/internal/diag"
)

// checkClassDecl type-checks one user-declared class: its instance
// variables, its instance methods (against the class itself), and its
// class methods (against the companion metaclass) — spec §4.4.
func (c *Checker) checkClassDecl(env *Env, decl *ast.ClassDecl) error {
	ci, err := env.FindClass(decl.Name)
	if err != nil {
		return err
	}
	mci, err := env.FindMetaClass(decl.Name)
	if err != nil {
		return err
	}

	var typarams map[string]Type
	var instanceSelfType, metaSelfType Type
	if decl.IsGeneric() {
		typarams = make(map[string]Type, len(decl.TypeParams))
		paramTypes := make([]Type, len(decl.TypeParams))
		for i, p := range decl.TypeParams {
			typarams[p] = &Param{Name: p}
			paramTypes[i] = &Param{Name: p}
		}
		instanceSelfType = &Spe{Name: decl.Name, Args: paramTypes}
		metaSelfType = &GenMeta{Name: decl.Name, Params: append([]string(nil), decl.TypeParams...)}
	} else {
		instanceSelfType = &Raw{Name: decl.Name}
		metaSelfType = &Meta{Name: decl.Name}
	}

	instEnv := env.WithSelf(ci, instanceSelfType)
	metaEnv := env.WithSelf(mci, metaSelfType)
	if typarams != nil {
		instEnv = instEnv.WithTypeParams(typarams)
		metaEnv = metaEnv.WithTypeParams(typarams)
	}

	ivars := ci.IVars()
	for _, iv := range decl.IVars {
		if _, exists := ivars[iv.Name]; exists {
			return diag.Newf(diag.KindProgram, diag.CodeDuplicateIvar, "ivar %q declared more than once on %s", iv.Name, decl.Name)
		}
		t, err := c.resolveTypeSpec(instEnv, iv.Type)
		if err != nil {
			return err
		}
		ivars[iv.Name] = t
	}

	for _, m := range decl.InstanceMethods {
		if err := c.checkMethod(instEnv, ci.InstanceMethods(), m, ivars); err != nil {
			return err
		}
	}

	// Synthesize `new` on the companion metaclass now that `initialize`
	// (if any) has a resolved signature. Generic classes get no such
	// preinstalled `new`: it only appears on each SpecializedMetaClass,
	// once type arguments are known (spec §4.5).
	if !decl.IsGeneric() {
		var paramTypes []Type
		var initDecl *ast.Method
		if initInfo, ok := ci.InstanceMethods()["initialize"]; ok && initInfo.Sig != nil {
			paramTypes = initInfo.Sig.ParamTypes
			initDecl = initInfo.Decl
		}
		mci.InstanceMethods()["new"] = &MethodInfo{
			Decl: initDecl,
			Sig:  &Method{Name: "new", ParamTypes: paramTypes, ReturnType: &Raw{Name: decl.Name}},
		}
	}

	for _, m := range decl.ClassMethods {
		if err := c.checkMethod(metaEnv, mci.InstanceMethods(), m, map[string]Type{}); err != nil {
			return err
		}
	}

	c.NodeTypes[decl] = instanceSelfType
	return nil
}

// checkMethod implements spec §4.3: resolve the signature, thread the
// body (unless it is the opaque sentinel), validate the body's trailing
// type against the declared return type, and check every nested Return.
// ivars accumulates instance variables declared implicitly by this
// method's IParams (only meaningful when m is the class's initializer).
func (c *Checker) checkMethod(env *Env, methodMap map[string]*MethodInfo, m *ast.Method, ivars map[string]Type) error {
	if err := validateVarargCount(m.Name, m.Params); err != nil {
		return err
	}

	isInit := m.Name == "initialize"
	paramTypes := make([]Type, len(m.Params))
	lvars := make([]*Lvar, len(m.Params))
	for i, p := range m.Params {
		t, err := c.resolveTypeSpec(env, p.Type)
		if err != nil {
			return err
		}
		paramTypes[i] = t
		lvars[i] = &Lvar{Name: p.Name, Type: t, Kind: LvarParam}
		if isInit && p.IsIParam {
			if _, exists := ivars[p.Name]; exists {
				return diag.Newf(diag.KindProgram, diag.CodeDuplicateIvar, "ivar %q declared more than once", p.Name)
			}
			ivars[p.Name] = t
		}
	}

	returnType, err := c.resolveTypeSpec(env, m.ReturnType)
	if err != nil {
		return err
	}

	if !ast.IsOpaqueBody(m.Body) {
		bodyEnv := env.WithLocals(lvars)
		bodyType, _, err := c.checkStmts(bodyEnv, m.Body)
		if err != nil {
			return err
		}
		if !Equal(returnType, voidType) {
			lastIsReturn := false
			if n := len(m.Body); n > 0 {
				_, lastIsReturn = m.Body[n-1].(*ast.Return)
			}
			if !lastIsReturn && !Equal(bodyType, returnType) {
				return diag.Newf(diag.KindType, diag.CodeReturnMismatch, "%s declared to return %s, body yields %s", m.Name, returnType.String(), bodyType.String())
			}
			for _, ret := range ast.FindReturns(m.Body) {
				retType := c.NodeTypes[ret.Expr]
				if !Equal(retType, returnType) {
					return diag.Newf(diag.KindType, diag.CodeReturnMismatch, "return in %s yields %s, declared to return %s", m.Name, retType.String(), returnType.String())
				}
			}
		}
	}

	sig := &Method{Name: m.Name, ParamTypes: paramTypes, ReturnType: returnType}
	info, ok := methodMap[m.Name]
	if !ok {
		info = &MethodInfo{Decl: m}
		methodMap[m.Name] = info
	}
	info.Sig = sig
	return nil
}
