package sem

import "github.com/shiika-lang/shiika-core/internal/ast"

// MethodInfo pairs a method's declaration (its body, for the classes that
// actually type-check one) with its resolved signature. Sig is nil until
// the class/method pass resolves it (spec §4.3 step 4).
type MethodInfo struct {
	Decl *ast.Method
	Sig  *Method
}

// ClassInfo is the closed sum of class-entity variants named by spec §3.2
// and Design Note 9.1: UserClass, GenericClass, SpecializedClass, MetaClass,
// GenericMetaClass, SpecializedMetaClass.
type ClassInfo interface {
	// Name is the registry key this entry is stored under.
	Name() string
	// Superclass is this class's superclass_template: Raw(name) (or
	// Meta(name) for a metaclass entry), or NoParent for the two classes at
	// the root of each chain (Object, Meta:Object).
	Superclass() Type
	IVars() map[string]Type
	ClassMethods() map[string]*MethodInfo
	InstanceMethods() map[string]*MethodInfo
	isClassInfo()
}

// UserClass is an ordinary, non-generic user-declared class.
type UserClass struct {
	NameV            string
	SuperclassName   string // "" only for Object
	IVarsV           map[string]Type
	ClassMethodsV    map[string]*MethodInfo
	InstanceMethodsV map[string]*MethodInfo
}

func (c *UserClass) Name() string { return c.NameV }
func (c *UserClass) Superclass() Type {
	if c.SuperclassName == "" {
		return NoParent
	}
	return &Raw{Name: c.SuperclassName}
}
func (c *UserClass) IVars() map[string]Type                  { return c.IVarsV }
func (c *UserClass) ClassMethods() map[string]*MethodInfo    { return c.ClassMethodsV }
func (c *UserClass) InstanceMethods() map[string]*MethodInfo { return c.InstanceMethodsV }
func (*UserClass) isClassInfo()                              {}

// GenericClass extends UserClass with an ordered list of type-parameter
// names and a cache of on-demand specializations keyed by the specialized
// name, Name + "<" + KeyForArgs(type args) + ">".
type GenericClass struct {
	NameV            string
	SuperclassName   string
	TypeParams       []string
	IVarsV           map[string]Type
	ClassMethodsV    map[string]*MethodInfo
	InstanceMethodsV map[string]*MethodInfo
	Specializations  map[string]*SpecializedClass
}

func (c *GenericClass) Name() string { return c.NameV }
func (c *GenericClass) Superclass() Type {
	if c.SuperclassName == "" {
		return NoParent
	}
	return &Raw{Name: c.SuperclassName}
}
func (c *GenericClass) IVars() map[string]Type                  { return c.IVarsV }
func (c *GenericClass) ClassMethods() map[string]*MethodInfo    { return c.ClassMethodsV }
func (c *GenericClass) InstanceMethods() map[string]*MethodInfo { return c.InstanceMethodsV }
func (*GenericClass) isClassInfo()                               {}

// typeParamSubst builds the Param-name -> concrete-type substitution for a
// set of type arguments positionally matched against the generic's
// TypeParams.
func (c *GenericClass) typeParamSubst(args []Type) map[string]Type {
	subst := make(map[string]Type, len(c.TypeParams))
	for i, p := range c.TypeParams {
		if i < len(args) {
			subst[p] = args[i]
		}
	}
	return subst
}

// SpecializedClass is a concrete class produced by applying type arguments
// to a generic class. Its methods are lazily substituted copies of the
// generic's, memoized in methodCache (spec §4.5 step 4).
type SpecializedClass struct {
	ID          string // uuid, pure metadata (SPEC_FULL §4.9)
	Generic     *GenericClass
	TypeArgs    []Type
	ivars       map[string]Type
	methodCache map[string]*MethodInfo
}

func (c *SpecializedClass) Name() string { return c.Generic.NameV + "<" + KeyForArgs(c.TypeArgs) + ">" }
func (c *SpecializedClass) Superclass() Type {
	if c.Generic.SuperclassName == "" {
		return NoParent
	}
	return &Raw{Name: c.Generic.SuperclassName}
}
func (c *SpecializedClass) IVars() map[string]Type { return c.ivars }

// ClassMethods is empty: a generic class's own class methods are carried by
// its metaclass (GenericMetaClass/SpecializedMetaClass), never by the
// instance-side SpecializedClass.
func (c *SpecializedClass) ClassMethods() map[string]*MethodInfo { return nil }

func (c *SpecializedClass) InstanceMethods() map[string]*MethodInfo {
	out := make(map[string]*MethodInfo, len(c.Generic.InstanceMethodsV))
	for name := range c.Generic.InstanceMethodsV {
		out[name], _ = c.resolveMethod(name)
	}
	return out
}
func (*SpecializedClass) isClassInfo() {}

// resolveMethod returns the specialized signature for method name,
// computing and memoizing it on first request.
func (c *SpecializedClass) resolveMethod(name string) (*MethodInfo, bool) {
	if cached, ok := c.methodCache[name]; ok {
		return cached, true
	}
	generic, ok := c.Generic.InstanceMethodsV[name]
	if !ok || generic.Sig == nil {
		return nil, false
	}
	subst := c.Generic.typeParamSubst(c.TypeArgs)
	info := &MethodInfo{Decl: generic.Decl, Sig: Substitute(generic.Sig, subst).(*Method)}
	c.methodCache[name] = info
	return info, true
}

// MetaClass is the companion metaclass of a non-generic UserClass: the
// type of that class used as a constant. Its instance methods are the
// class's class methods plus a synthetic `new`.
type MetaClass struct {
	Of               *UserClass
	ClassMethodsV    map[string]*MethodInfo // unused: a metaclass has no class-of-its-own methods
	InstanceMethodsV map[string]*MethodInfo // Of's class methods + synthetic `new`
}

func (c *MetaClass) Name() string { return "Meta:" + c.Of.NameV }
func (c *MetaClass) Superclass() Type {
	if c.Of.SuperclassName == "" {
		return NoParent
	}
	return &Meta{Name: c.Of.SuperclassName}
}
func (c *MetaClass) IVars() map[string]Type                  { return nil }
func (c *MetaClass) ClassMethods() map[string]*MethodInfo    { return nil }
func (c *MetaClass) InstanceMethods() map[string]*MethodInfo { return c.InstanceMethodsV }
func (*MetaClass) isClassInfo()                              {}

// GenericMetaClass is the companion metaclass of an unspecialized generic
// class. Unlike MetaClass, it does NOT preinstall `new` (spec §4.5): `new`
// only exists on each SpecializedMetaClass, once type arguments are known.
type GenericMetaClass struct {
	Of               *GenericClass
	InstanceMethodsV map[string]*MethodInfo
}

func (c *GenericMetaClass) Name() string { return "Meta:" + c.Of.NameV }
func (c *GenericMetaClass) Superclass() Type {
	if c.Of.SuperclassName == "" {
		return NoParent
	}
	return &Meta{Name: c.Of.SuperclassName}
}
func (c *GenericMetaClass) IVars() map[string]Type                  { return nil }
func (c *GenericMetaClass) ClassMethods() map[string]*MethodInfo    { return nil }
func (c *GenericMetaClass) InstanceMethods() map[string]*MethodInfo { return c.InstanceMethodsV }
func (*GenericMetaClass) isClassInfo()                              {}

// SpecializedMetaClass is the metaclass of a SpecializedClass: the generic
// metaclass's class methods, substituted, plus a freshly materialized `new`
// whose return type is Spe(generic.Name, type_args).
type SpecializedMetaClass struct {
	ID          string
	Of          *SpecializedClass
	methodCache map[string]*MethodInfo
}

func (c *SpecializedMetaClass) Name() string { return "Meta:" + c.Of.Name() }
func (c *SpecializedMetaClass) Superclass() Type {
	if c.Of.Generic.SuperclassName == "" {
		return NoParent
	}
	return &Meta{Name: c.Of.Generic.SuperclassName}
}
func (c *SpecializedMetaClass) IVars() map[string]Type               { return nil }
func (c *SpecializedMetaClass) ClassMethods() map[string]*MethodInfo { return nil }

func (c *SpecializedMetaClass) InstanceMethods() map[string]*MethodInfo {
	out := make(map[string]*MethodInfo, len(c.Of.Generic.ClassMethodsV)+1)
	for name := range c.Of.Generic.ClassMethodsV {
		out[name], _ = c.resolveClassMethod(name)
	}
	out["new"], _ = c.resolveNew()
	return out
}
func (*SpecializedMetaClass) isClassInfo() {}

func (c *SpecializedMetaClass) resolveClassMethod(name string) (*MethodInfo, bool) {
	if cached, ok := c.methodCache[name]; ok {
		return cached, true
	}
	generic, ok := c.Of.Generic.ClassMethodsV[name]
	if !ok || generic.Sig == nil {
		return nil, false
	}
	subst := c.Of.Generic.typeParamSubst(c.Of.TypeArgs)
	info := &MethodInfo{Decl: generic.Decl, Sig: Substitute(generic.Sig, subst).(*Method)}
	c.methodCache[name] = info
	return info, true
}

func (c *SpecializedMetaClass) resolveNew() (*MethodInfo, bool) {
	if cached, ok := c.methodCache["new"]; ok {
		return cached, true
	}
	init, hasInit := c.Of.Generic.InstanceMethodsV["initialize"]
	var paramTypes []Type
	var initDecl *ast.Method
	if hasInit && init.Sig != nil {
		subst := c.Of.Generic.typeParamSubst(c.Of.TypeArgs)
		paramTypes = Substitute(init.Sig, subst).(*Method).ParamTypes
		initDecl = init.Decl
	}
	sig := &Method{Name: "new", ParamTypes: paramTypes, ReturnType: &Spe{Name: c.Of.Generic.NameV, Args: c.Of.TypeArgs}}
	info := &MethodInfo{Decl: initDecl, Sig: sig}
	c.methodCache["new"] = info
	return info, true
}
