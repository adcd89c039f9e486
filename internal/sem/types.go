// Package sem is the semantic-analysis core: the type-term algebra, the
// name-resolution environment, the class registry and specialization
// engine, and the type checker that ties them together behind Analyze.
package sem

import "strings"

// Type is a value of the closed, eight-variant type algebra. Every variant
// below implements it; there are no others (spec §3.1).
type Type interface {
	// String renders the type the way diagnostics quote it.
	String() string
	isType()
}

// Raw is a nominal, non-generic class.
type Raw struct{ Name string }

func (t *Raw) String() string { return t.Name }
func (*Raw) isType()          {}

// Meta is the metaclass of Raw(Name): the type of that class used as a
// constant.
type Meta struct{ Name string }

func (t *Meta) String() string { return "Meta:" + t.Name }
func (*Meta) isType()          {}

// GenMeta is the metaclass of an unspecialized generic class.
type GenMeta struct {
	Name   string
	Params []string
}

func (t *GenMeta) String() string {
	return "Meta:" + t.Name + "<" + strings.Join(t.Params, ",") + ">"
}
func (*GenMeta) isType() {}

// Spe is a generic class specialized at concrete type arguments.
type Spe struct {
	Name string
	Args []Type
}

func (t *Spe) String() string { return t.Name + "<" + joinTypes(t.Args) + ">" }
func (*Spe) isType()          {}

// SpeMeta is the metaclass of Spe(Name, Args).
type SpeMeta struct {
	Name string
	Args []Type
}

func (t *SpeMeta) String() string { return "Meta:" + t.Name + "<" + joinTypes(t.Args) + ">" }
func (*SpeMeta) isType()          {}

// Param is a free type parameter in scope within a generic class's body.
type Param struct{ Name string }

func (t *Param) String() string { return t.Name }
func (*Param) isType()          {}

// Method is a method signature: its name, parameter types, and return type.
type Method struct {
	Name       string
	ParamTypes []Type
	ReturnType Type
}

func (t *Method) String() string {
	return t.Name + "(" + joinTypes(t.ParamTypes) + ") -> " + t.ReturnType.String()
}
func (*Method) isType() {}

// noParent is the sentinel pseudo-type marking the absence of a
// superclass; it is the ultimate ancestor every superclass_template chain
// walks to.
type noParent struct{}

func (*noParent) String() string { return "__noparent__" }
func (*noParent) isType()        {}

// NoParent is the sentinel value representing "this class has no
// superclass" — the root of every subclassing chain (the superclass_template
// of Object and of its metaclass Meta:Object).
var NoParent Type = &noParent{}

// IsNoParent reports whether t is the NoParent sentinel.
func IsNoParent(t Type) bool {
	_, ok := t.(*noParent)
	return ok
}

func joinTypes(ts []Type) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.String()
	}
	return strings.Join(parts, ",")
}

// Equal reports whether a and b are the same type term, comparing
// structurally (spec §3.1 "Structural equality on tree of variants").
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	switch x := a.(type) {
	case *Raw:
		y, ok := b.(*Raw)
		return ok && x.Name == y.Name
	case *Meta:
		y, ok := b.(*Meta)
		return ok && x.Name == y.Name
	case *GenMeta:
		y, ok := b.(*GenMeta)
		return ok && x.Name == y.Name && equalStrings(x.Params, y.Params)
	case *Spe:
		y, ok := b.(*Spe)
		return ok && x.Name == y.Name && equalTypeSlices(x.Args, y.Args)
	case *SpeMeta:
		y, ok := b.(*SpeMeta)
		return ok && x.Name == y.Name && equalTypeSlices(x.Args, y.Args)
	case *Param:
		y, ok := b.(*Param)
		return ok && x.Name == y.Name
	case *Method:
		y, ok := b.(*Method)
		return ok && x.Name == y.Name && Equal(x.ReturnType, y.ReturnType) && equalTypeSlices(x.ParamTypes, y.ParamTypes)
	case *noParent:
		_, ok := b.(*noParent)
		return ok
	default:
		return false
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalTypeSlices(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// ToKey returns the canonical string form of t used as a class-registry
// specialization cache key (spec §3.1, §4.5 step 1).
func ToKey(t Type) string { return t.String() }

// KeyForArgs joins the per-argument keys the way the specialization engine
// keys its cache (spec §4.5 step 1: `join(",", map(to_key, type_args))`).
func KeyForArgs(args []Type) string { return joinTypes(args) }

// Substitute replaces every Param(p) occurring in t with subst[p], leaving
// p untouched (and t structurally shared) when subst has no entry for it.
func Substitute(t Type, subst map[string]Type) Type {
	switch x := t.(type) {
	case *Param:
		if repl, ok := subst[x.Name]; ok {
			return repl
		}
		return x
	case *Spe:
		return &Spe{Name: x.Name, Args: substituteAll(x.Args, subst)}
	case *SpeMeta:
		return &SpeMeta{Name: x.Name, Args: substituteAll(x.Args, subst)}
	case *Method:
		return &Method{
			Name:       x.Name,
			ParamTypes: substituteAll(x.ParamTypes, subst),
			ReturnType: Substitute(x.ReturnType, subst),
		}
	default:
		// Raw, Meta, GenMeta and NoParent never contain a free Param.
		return t
	}
}

func substituteAll(ts []Type, subst map[string]Type) []Type {
	if len(ts) == 0 {
		return ts
	}
	out := make([]Type, len(ts))
	for i, t := range ts {
		out[i] = Substitute(t, subst)
	}
	return out
}
