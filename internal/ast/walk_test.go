package ast_test

import (
	"testing"

	"github.com/shiika-lang/shiika-core/internal/ast"
	"github.com/stretchr/testify/assert"
)

func TestWalkVisitsNestedIfBranches(t *testing.T) {
	body := []ast.Stmt{
		&ast.If{
			Cond: ast.NewBoolLiteral("true"),
			Then: []ast.Stmt{ast.NewIntLiteral("1")},
			Else: []ast.Stmt{ast.NewIntLiteral("2")},
		},
	}

	var literals []*ast.Literal
	ast.Walk(&ast.Method{Body: body}, func(n ast.Node) bool {
		if lit, ok := n.(*ast.Literal); ok {
			literals = append(literals, lit)
		}
		return true
	})

	assert.Len(t, literals, 3) // cond, then-branch, else-branch
}

func TestFindReturnsCollectsNestedBranches(t *testing.T) {
	body := []ast.Stmt{
		&ast.If{
			Cond: ast.NewBoolLiteral("true"),
			Then: []ast.Stmt{&ast.Return{Expr: ast.NewIntLiteral("1")}},
			Else: []ast.Stmt{&ast.Return{Expr: ast.NewIntLiteral("2")}},
		},
		&ast.Return{Expr: ast.NewIntLiteral("3")},
	}

	rets := ast.FindReturns(body)
	assert.Len(t, rets, 3)
}

func TestFindReturnsDoesNotDescendIntoLambdaBodies(t *testing.T) {
	body := []ast.Stmt{
		&ast.Lambda{Body: []ast.Stmt{&ast.Return{Expr: ast.NewIntLiteral("1")}}},
		&ast.Return{Expr: ast.NewIntLiteral("2")},
	}

	rets := ast.FindReturns(body)
	assert.Len(t, rets, 1)
	assert.Equal(t, "2", rets[0].Expr.(*ast.Literal).Raw)
}

func TestIsOpaqueBody(t *testing.T) {
	assert.True(t, ast.IsOpaqueBody([]ast.Stmt{ast.OpaqueBody}))
	assert.False(t, ast.IsOpaqueBody([]ast.Stmt{ast.NewIntLiteral("1")}))
	assert.False(t, ast.IsOpaqueBody(nil))
}

func TestIsGeneric(t *testing.T) {
	plain := &ast.ClassDecl{Name: "A"}
	generic := &ast.ClassDecl{Name: "Pair", TypeParams: []string{"A", "B"}}

	assert.False(t, plain.IsGeneric())
	assert.True(t, generic.IsGeneric())
}
