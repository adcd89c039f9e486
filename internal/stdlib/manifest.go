// Package stdlib is the opaque provider of built-in class definitions
// named by spec §6: a fixed manifest of Object, Int, Float, Bool, Void,
// the generic Array<T>, and the anonymous-function class Fn, plus the
// canonical "create object" body marker every builtin method body uses in
// place of real statements.
package stdlib

import "github.com/shiika-lang/shiika-core/internal/ast"

// NewObjectMarker is the sentinel body every builtin method carries
// instead of real statements — the evaluator supplies their behavior
// natively. The synthesized metaclass `new` has no body of its own and
// does not carry it.
var NewObjectMarker = ast.OpaqueBody

// Manifest is the concrete standard-library provider: the seed class
// declarations the facade hands to the registry before any user code is
// type-checked.
type Manifest struct {
	Classes map[string]*ast.ClassDecl
	// Order is the declaration order ClassDecls returns, and so the order in
	// which the facade seeds and type-checks these classes (Object first).
	// Seeding itself does not depend on it: superclass names are resolved
	// lazily by lookup.
	Order []string
}

// ClassDecls returns the manifest's classes in seeding order.
func (m *Manifest) ClassDecls() []*ast.ClassDecl {
	out := make([]*ast.ClassDecl, 0, len(m.Order))
	for _, name := range m.Order {
		if decl, ok := m.Classes[name]; ok {
			out = append(out, decl)
		}
	}
	return out
}

func opaqueMethod(name string, params []*ast.Param, ret ast.TypeSpec) *ast.Method {
	return ast.NewMethod(name, params, ret, []ast.Stmt{NewObjectMarker})
}

func named(name string) ast.TypeSpec { return &ast.NamedTypeSpec{Name: name} }

func param(name, typeName string) *ast.Param {
	return &ast.Param{Name: name, Type: named(typeName)}
}

// LoadManifest builds the default standard-library manifest purely in Go,
// with no external file.
func LoadManifest() *Manifest {
	m := &Manifest{Classes: map[string]*ast.ClassDecl{}}

	addClass(m, &ast.ClassDecl{
		Name:       "Object",
		Superclass: "",
		InstanceMethods: []*ast.Method{
			opaqueMethod("==", []*ast.Param{param("other", "Object")}, named("Bool")),
			opaqueMethod("to_s", nil, named("Object")),
		},
	})
	addClass(m, &ast.ClassDecl{
		Name:       "Int",
		Superclass: "Object",
		InstanceMethods: []*ast.Method{
			opaqueMethod("+", []*ast.Param{param("other", "Int")}, named("Int")),
			opaqueMethod("-", []*ast.Param{param("other", "Int")}, named("Int")),
			opaqueMethod("*", []*ast.Param{param("other", "Int")}, named("Int")),
			opaqueMethod("<", []*ast.Param{param("other", "Int")}, named("Bool")),
			opaqueMethod("to_f", nil, named("Float")),
		},
	})
	addClass(m, &ast.ClassDecl{
		Name:       "Float",
		Superclass: "Object",
		InstanceMethods: []*ast.Method{
			opaqueMethod("+", []*ast.Param{param("other", "Float")}, named("Float")),
			opaqueMethod("-", []*ast.Param{param("other", "Float")}, named("Float")),
			opaqueMethod("*", []*ast.Param{param("other", "Float")}, named("Float")),
		},
	})
	addClass(m, &ast.ClassDecl{
		Name:       "Bool",
		Superclass: "Object",
		InstanceMethods: []*ast.Method{
			opaqueMethod("!", nil, named("Bool")),
		},
	})
	addClass(m, &ast.ClassDecl{
		Name:       "Void",
		Superclass: "Object",
	})
	addClass(m, &ast.ClassDecl{
		Name:       "Array",
		Superclass: "Object",
		TypeParams: []string{"T"},
		InstanceMethods: []*ast.Method{
			ast.NewMethod("push", []*ast.Param{{Name: "elem", Type: named("T")}}, &ast.GenericTypeSpec{Name: "Array", Args: []ast.TypeSpec{named("T")}}, []ast.Stmt{NewObjectMarker}),
			opaqueMethod("length", nil, named("Int")),
			ast.NewMethod("at", []*ast.Param{param("index", "Int")}, named("T"), []ast.Stmt{NewObjectMarker}),
		},
	})
	addClass(m, &ast.ClassDecl{
		Name:       "Fn",
		Superclass: "Object",
		TypeParams: []string{"P1", "R"},
		InstanceMethods: []*ast.Method{
			ast.NewMethod("call", []*ast.Param{{Name: "arg", Type: named("P1")}}, named("R"), []ast.Stmt{NewObjectMarker}),
		},
	})

	return m
}

func addClass(m *Manifest, decl *ast.ClassDecl) {
	m.Classes[decl.Name] = decl
	m.Order = append(m.Order, decl.Name)
}
