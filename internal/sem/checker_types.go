package sem

import (
	"github.com/shiika-lang/shiika-core/internal/ast"
	"github.com/shiika-lang/shiika-core/internal/diag"
)

// resolveTypeSpec resolves a syntactic type annotation against env: a
// bare name is either an in-scope type parameter or a known class (Raw);
// a generic spec's arguments are resolved recursively and the resulting
// specialization is materialized in the registry, since a type spec that
// names Spe(g, ts) is itself a "use" of that specialization under
// Invariant 3.
func (c *Checker) resolveTypeSpec(env *Env, spec ast.TypeSpec) (Type, error) {
	switch s := spec.(type) {
	case *ast.NamedTypeSpec:
		if t, ok := env.TypeParam(s.Name); ok {
			return t, nil
		}
		if _, err := env.FindClass(s.Name); err != nil {
			return nil, err
		}
		return &Raw{Name: s.Name}, nil
	case *ast.GenericTypeSpec:
		args := make([]Type, len(s.Args))
		for i, a := range s.Args {
			t, err := c.resolveTypeSpec(env, a)
			if err != nil {
				return nil, err
			}
			args[i] = t
		}
		if _, err := c.registry.Specialize(s.Name, args); err != nil {
			return nil, err
		}
		return &Spe{Name: s.Name, Args: args}, nil
	default:
		return nil, diag.Newf(diag.KindProgram, diag.CodeUnsupported, "unsupported type spec %T", spec)
	}
}

// varargIndex returns the index of params' single vararg parameter, or -1
// if it has none (spec §3.3 invariant 5: at most one). Callers must have
// already validated that count via validateVarargCount.
func varargIndex(params []*ast.Param) int {
	for i, p := range params {
		if p.IsVararg {
			return i
		}
	}
	return -1
}

// validateVarargCount enforces spec §3.3 invariant 5: a parameter list may
// declare at most one vararg parameter.
func validateVarargCount(methodName string, params []*ast.Param) error {
	count := 0
	for _, p := range params {
		if p.IsVararg {
			count++
		}
	}
	if count > 1 {
		return diag.Newf(diag.KindProgram, diag.CodeBadVararg, "method %q declares %d vararg parameters, at most one is allowed", methodName, count)
	}
	return nil
}

// arrayElemType extracts E from a resolved Spe("Array", [E]) type, used to
// type-check the trailing arguments gathered by a vararg parameter.
func arrayElemType(t Type) (Type, bool) {
	spe, ok := t.(*Spe)
	if !ok || spe.Name != "Array" || len(spe.Args) != 1 {
		return nil, false
	}
	return spe.Args[0], true
}
