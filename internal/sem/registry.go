package sem

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shiika-lang/shiika-core/internal/ast"
	"github.com/shiika-lang/shiika-core/internal/diag"
	"github.com/sirupsen/logrus"
)

// Registry is the class registry and on-demand generic specialization
// engine (spec §4.4, §4.5). It is the one structure in the model that is
// genuinely mutated in place: Seed populates it once, and specialization
// memoizes new entries into it as the checker encounters them (spec §5).
type Registry struct {
	classes map[string]ClassInfo
	logger  *logrus.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{classes: make(map[string]ClassInfo)}
}

// SetLogger attaches an optional structured logger (spec_full §4.8). Purely
// observational: a nil logger (the default) disables logging entirely.
func (r *Registry) SetLogger(logger *logrus.Logger) { r.logger = logger }

// Seed registers every user-declared (and stdlib-provided) class together
// with its companion metaclass, satisfying spec Invariant 1 before any
// type-checking runs. Order is irrelevant: superclass names are resolved
// lazily by lookup, not baked in at seed time.
func (r *Registry) Seed(decls []*ast.ClassDecl) error {
	for _, decl := range decls {
		if _, exists := r.classes[decl.Name]; exists {
			return diag.Newf(diag.KindProgram, diag.CodeUnsupported, "class %q declared more than once", decl.Name)
		}
		if decl.IsGeneric() {
			r.seedGeneric(decl)
		} else {
			r.seedUser(decl)
		}
		if r.logger != nil {
			r.logger.WithField("class", decl.Name).Debug("seeded class")
		}
	}
	return nil
}

func (r *Registry) seedUser(decl *ast.ClassDecl) {
	uc := &UserClass{
		NameV:            decl.Name,
		SuperclassName:   decl.Superclass,
		IVarsV:           map[string]Type{},
		ClassMethodsV:    methodInfoMap(decl.ClassMethods),
		InstanceMethodsV: methodInfoMap(decl.InstanceMethods),
	}
	r.classes[uc.NameV] = uc
	r.classes["Meta:"+uc.NameV] = &MetaClass{
		Of:               uc,
		InstanceMethodsV: map[string]*MethodInfo{},
	}
}

func (r *Registry) seedGeneric(decl *ast.ClassDecl) {
	gc := &GenericClass{
		NameV:            decl.Name,
		SuperclassName:   decl.Superclass,
		TypeParams:       append([]string(nil), decl.TypeParams...),
		IVarsV:           map[string]Type{},
		ClassMethodsV:    methodInfoMap(decl.ClassMethods),
		InstanceMethodsV: methodInfoMap(decl.InstanceMethods),
		Specializations:  map[string]*SpecializedClass{},
	}
	r.classes[gc.NameV] = gc
	// The generic metaclass shares gc's class-method map, so the signatures
	// the checker resolves for it are the ones SpecializedMetaClass
	// substitutes.
	r.classes["Meta:"+gc.NameV] = &GenericMetaClass{
		Of:               gc,
		InstanceMethodsV: gc.ClassMethodsV,
	}
}

func methodInfoMap(methods []*ast.Method) map[string]*MethodInfo {
	out := make(map[string]*MethodInfo, len(methods))
	for _, m := range methods {
		out[m.Name] = &MethodInfo{Decl: m}
	}
	return out
}

// Lookup resolves a registry key (a class name, or "Meta:"+name) to its
// ClassInfo.
func (r *Registry) Lookup(name string) (ClassInfo, bool) {
	ci, ok := r.classes[name]
	return ci, ok
}

// MustLookup is Lookup, raising a NameError diagnostic when name is
// absent (spec §7 NameError: "reference to an unknown ... class").
func (r *Registry) MustLookup(name string) (ClassInfo, error) {
	ci, ok := r.Lookup(name)
	if !ok {
		return nil, diag.Newf(diag.KindName, diag.CodeUnknownClass, "unknown class %q", name)
	}
	return ci, nil
}

// Specialize returns the SpecializedClass for generic instantiated at
// args, materializing and memoizing it on first request (spec §4.5). The
// generic class itself must already be seeded.
func (r *Registry) Specialize(genericName string, args []Type) (*SpecializedClass, error) {
	ci, ok := r.Lookup(genericName)
	if !ok {
		return nil, diag.Newf(diag.KindName, diag.CodeUnknownClass, "unknown class %q", genericName)
	}
	gc, ok := ci.(*GenericClass)
	if !ok {
		return nil, diag.Newf(diag.KindProgram, diag.CodeNotGeneric, "%q is not a generic class", genericName)
	}
	key := gc.NameV + "<" + KeyForArgs(args) + ">"
	if existing, ok := gc.Specializations[key]; ok {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"class": genericName, "args": KeyForArgs(args), "cache": "hit"}).Debug("specialize")
		}
		return existing, nil
	}
	if r.logger != nil {
		r.logger.WithFields(logrus.Fields{"class": genericName, "args": KeyForArgs(args), "cache": "miss"}).Debug("specialize")
	}
	subst := gc.typeParamSubst(args)
	sc := &SpecializedClass{
		ID:          uuid.NewString(),
		Generic:     gc,
		TypeArgs:    append([]Type(nil), args...),
		ivars:       substituteTypeMap(gc.IVarsV, subst),
		methodCache: map[string]*MethodInfo{},
	}
	gc.Specializations[key] = sc
	r.classes[sc.Name()] = sc
	r.classes["Meta:"+sc.Name()] = &SpecializedMetaClass{
		ID:          uuid.NewString(),
		Of:          sc,
		methodCache: map[string]*MethodInfo{},
	}
	return sc, nil
}

func substituteTypeMap(m map[string]Type, subst map[string]Type) map[string]Type {
	out := make(map[string]Type, len(m))
	for k, v := range m {
		out[k] = Substitute(v, subst)
	}
	return out
}

// Names returns every registered key in sorted order, used by the CLI
// (cmd/shiikac) to render a deterministic specialization report.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.classes))
	for name := range r.classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
