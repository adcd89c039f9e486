package sem

import "github.com/shiika-lang/shiika-core/internal/diag"

// FindLvar resolves a local variable (or parameter) by name. Type
// parameters are not looked up here; they are resolved separately via
// Env.TypeParam.
func (e *Env) FindLvar(name string) (*Lvar, error) {
	if lv, ok := e.locals[name]; ok {
		return lv, nil
	}
	return nil, diag.Newf(diag.KindName, diag.CodeUnknownLvar, "unknown local variable %q", name)
}

// FindIvar resolves an instance variable against the enclosing class
// (spec §7 NameError: "ivar reference outside ... or to an undeclared
// ivar").
func (e *Env) FindIvar(name string) (Type, error) {
	if e.self == nil {
		return nil, diag.Newf(diag.KindName, diag.CodeNoSelf, "ivar %q referenced outside of a class body", name)
	}
	if t, ok := e.self.IVars()[name]; ok {
		return t, nil
	}
	return nil, diag.Newf(diag.KindName, diag.CodeUnknownIvar, "unknown instance variable %q on %s", name, e.self.Name())
}

// FindConst resolves a bare class-name reference to its metaclass binding.
func (e *Env) FindConst(name string) (*ConstBinding, error) {
	ci, ok := e.registry.Lookup(name)
	if !ok {
		return nil, diag.Newf(diag.KindName, diag.CodeUnknownConst, "unknown constant %q", name)
	}
	switch c := ci.(type) {
	case *GenericClass:
		return &ConstBinding{Name: name, Type: &GenMeta{Name: c.NameV, Params: c.TypeParams}}, nil
	default:
		return &ConstBinding{Name: name, Type: &Meta{Name: name}}, nil
	}
}

// FindClass resolves a class (non-meta) registry entry by name.
func (e *Env) FindClass(name string) (ClassInfo, error) {
	ci, ok := e.registry.Lookup(name)
	if !ok {
		return nil, diag.Newf(diag.KindName, diag.CodeUnknownClass, "unknown class %q", name)
	}
	return ci, nil
}

// FindMetaClass resolves the metaclass entry "Meta:"+name.
func (e *Env) FindMetaClass(name string) (ClassInfo, error) {
	ci, ok := e.registry.Lookup("Meta:" + name)
	if !ok {
		return nil, diag.Newf(diag.KindName, diag.CodeUnknownClass, "unknown class %q", name)
	}
	return ci, nil
}

// FindMethodInfo resolves methodName against receiverType, dispatching on
// the receiver's type-term variant per spec §4.2's method-call rule, and
// specializing a generic class on demand when the receiver is a bare
// Spe/SpeMeta the registry hasn't materialized yet. It returns the
// MethodInfo (declaration + resolved signature) rather than just the
// signature so callers can still see which parameter, if any, is a
// vararg — a fact the Method type term itself does not carry.
func (e *Env) FindMethodInfo(receiverType Type, methodName string) (*MethodInfo, error) {
	ci, err := e.classInfoFor(receiverType)
	if err != nil {
		return nil, err
	}
	info, ok := ci.InstanceMethods()[methodName]
	if !ok || info.Sig == nil {
		return nil, diag.Newf(diag.KindName, diag.CodeUnknownMethod, "unknown method %q on %s", methodName, receiverType.String())
	}
	return info, nil
}

// FindMethod is FindMethodInfo, returning just the resolved signature.
func (e *Env) FindMethod(receiverType Type, methodName string) (*Method, error) {
	info, err := e.FindMethodInfo(receiverType, methodName)
	if err != nil {
		return nil, err
	}
	return info.Sig, nil
}

func (e *Env) classInfoFor(t Type) (ClassInfo, error) {
	switch x := t.(type) {
	case *Raw:
		return e.FindClass(x.Name)
	case *Meta:
		return e.FindMetaClass(x.Name)
	case *GenMeta:
		return e.FindMetaClass(x.Name)
	case *Spe:
		return e.registry.Specialize(x.Name, x.Args)
	case *SpeMeta:
		sc, err := e.registry.Specialize(x.Name, x.Args)
		if err != nil {
			return nil, err
		}
		mc, _ := e.registry.Lookup("Meta:" + sc.Name())
		return mc, nil
	default:
		return nil, diag.Newf(diag.KindType, diag.CodeBadReceiver, "%s is not a valid method-call receiver", t.String())
	}
}

// ConformsTo reports whether sub is sup or one of sup's descendants,
// walking superclass_template chains by name (spec §4.2 If-branch
// widening and §4.3 return-type checking both reduce to this).
func ConformsTo(e *Env, sub, sup Type) bool {
	if Equal(sub, sup) {
		return true
	}
	switch sub.(type) {
	case *Meta, *GenMeta, *SpeMeta, *Param:
		// Type-parameter and metaclass variants only conform by equality.
		return false
	}
	cur := sub
	for {
		ci, err := e.classInfoFor(cur)
		if err != nil {
			return false
		}
		parent := ci.Superclass()
		if IsNoParent(parent) {
			return false
		}
		if Equal(parent, sup) {
			return true
		}
		cur = parent
	}
}
