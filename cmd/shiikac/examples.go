package main

import "github.com/shiika-lang/shiika-core/internal/ast"

// exampleProgram builds one of a handful of canned program trees directly
// via the internal/ast constructors. There is no parser in this repo
// (spec §1 "Out of scope"); this is how the CLI demonstration harness
// feeds Analyze without one.
type exampleProgram struct {
	Name        string
	Description string
	Build       func() *ast.Program
}

var examples = []exampleProgram{
	{
		Name:        "class-method",
		Description: `class A; def self.foo -> Int; 1 + 1; end; end`,
		Build: func() *ast.Program {
			foo := ast.NewMethod("foo", nil, &ast.NamedTypeSpec{Name: "Int"}, []ast.Stmt{
				&ast.MethodCall{Receiver: ast.NewIntLiteral("1"), Method: "+", Args: []ast.Expr{ast.NewIntLiteral("1")}},
			})
			a := &ast.ClassDecl{Name: "A", Superclass: "Object", ClassMethods: []*ast.Method{foo}}
			return ast.NewProgram([]*ast.ClassDecl{a}, nil)
		},
	},
	{
		Name:        "reassign-let",
		Description: `a = 1; a = 2 -- raises ProgramError (missing var)`,
		Build: func() *ast.Program {
			return ast.NewProgram(nil, []ast.Stmt{
				&ast.AssignLvar{Name: "a", Expr: ast.NewIntLiteral("1")},
				&ast.AssignLvar{Name: "a", Expr: ast.NewIntLiteral("2")},
			})
		},
	},
	{
		Name:        "reassign-var",
		Description: `var a = 1; a = 2 -- ok`,
		Build: func() *ast.Program {
			return ast.NewProgram(nil, []ast.Stmt{
				&ast.AssignLvar{Name: "a", Expr: ast.NewIntLiteral("1"), IsVar: true},
				&ast.AssignLvar{Name: "a", Expr: ast.NewIntLiteral("2")},
			})
		},
	},
	{
		Name:        "bad-if-cond",
		Description: `if 1; 1; end -- raises TypeError`,
		Build: func() *ast.Program {
			return ast.NewProgram(nil, []ast.Stmt{
				&ast.If{Cond: ast.NewIntLiteral("1"), Then: []ast.Stmt{ast.NewIntLiteral("1")}},
			})
		},
	},
	{
		Name:        "array-reassign",
		Description: `arr = [1,2,3]; arr = [true] -- raises ProgramError`,
		Build: func() *ast.Program {
			return ast.NewProgram(nil, []ast.Stmt{
				&ast.AssignLvar{Name: "arr", Expr: &ast.ArrayExpr{Elems: []ast.Expr{
					ast.NewIntLiteral("1"), ast.NewIntLiteral("2"), ast.NewIntLiteral("3"),
				}}},
				&ast.AssignLvar{Name: "arr", Expr: &ast.ArrayExpr{Elems: []ast.Expr{
					ast.NewBoolLiteral("true"),
				}}},
			})
		},
	},
	{
		Name:        "generic-pair",
		Description: `class Pair<A,B>; def fst -> A; @a; end; end; Pair<Int,Bool> (specialized twice)`,
		Build: func() *ast.Program {
			fst := ast.NewMethod("fst", nil, &ast.NamedTypeSpec{Name: "A"}, []ast.Stmt{
				&ast.IvarRef{Name: "a"},
			})
			pair := &ast.ClassDecl{
				Name:            "Pair",
				Superclass:      "Object",
				TypeParams:      []string{"A", "B"},
				IVars:           []*ast.IVarDecl{{Name: "a", Type: &ast.NamedTypeSpec{Name: "A"}}, {Name: "b", Type: &ast.NamedTypeSpec{Name: "B"}}},
				InstanceMethods: []*ast.Method{fst},
			}
			specialize := func() ast.Expr {
				return &ast.ClassSpecialization{
					ClassExpr: &ast.ConstRef{Name: "Pair"},
					TypeArgs:  []ast.Expr{&ast.ConstRef{Name: "Int"}, &ast.ConstRef{Name: "Bool"}},
				}
			}
			return ast.NewProgram([]*ast.ClassDecl{pair}, []ast.Stmt{specialize(), specialize()})
		},
	},
	{
		Name:        "bad-return",
		Description: `def self.foo -> Int; true; end -- raises TypeError`,
		Build: func() *ast.Program {
			foo := ast.NewMethod("foo", nil, &ast.NamedTypeSpec{Name: "Int"}, []ast.Stmt{
				ast.NewBoolLiteral("true"),
			})
			a := &ast.ClassDecl{Name: "A", Superclass: "Object", ClassMethods: []*ast.Method{foo}}
			return ast.NewProgram([]*ast.ClassDecl{a}, nil)
		},
	},
}

func findExample(name string) *exampleProgram {
	for i := range examples {
		if examples[i].Name == name {
			return &examples[i]
		}
	}
	return nil
}
