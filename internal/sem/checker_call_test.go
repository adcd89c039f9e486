package sem_test

import (
	"testing"

	"github.com/shiika-lang/shiika-core/internal/ast"
	"github.com/shiika-lang/shiika-core/internal/diag"
	"github.com/shiika-lang/shiika-core/internal/sem"
	"github.com/shiika-lang/shiika-core/internal/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func varargArrayType(elem string) ast.TypeSpec {
	return &ast.GenericTypeSpec{Name: "Array", Args: []ast.TypeSpec{&ast.NamedTypeSpec{Name: elem}}}
}

func sumClass() *ast.ClassDecl {
	sum := ast.NewMethod("sum", []*ast.Param{
		{Name: "first", Type: &ast.NamedTypeSpec{Name: "Int"}},
		{Name: "rest", Type: varargArrayType("Int"), IsVararg: true},
	}, &ast.NamedTypeSpec{Name: "Int"}, []ast.Stmt{
		&ast.LvarRef{Name: "first"},
	})
	return &ast.ClassDecl{Name: "A", Superclass: "Object", ClassMethods: []*ast.Method{sum}}
}

// TestVarargCallAcceptsZeroOrMoreTrailingElements covers spec §4.3's
// head/tail/vararg-element call-site rules.
func TestVarargCallAcceptsZeroOrMoreTrailingElements(t *testing.T) {
	callWith := func(trailing int) *ast.Program {
		args := []ast.Expr{ast.NewIntLiteral("1")}
		for i := 0; i < trailing; i++ {
			args = append(args, ast.NewIntLiteral("2"))
		}
		call := &ast.MethodCall{Receiver: &ast.ConstRef{Name: "A"}, Method: "sum", Args: args}
		return ast.NewProgram([]*ast.ClassDecl{sumClass()}, []ast.Stmt{call})
	}

	for _, n := range []int{0, 1, 3} {
		_, err := sem.Analyze(callWith(n), stdlib.LoadManifest())
		assert.NoError(t, err, "expected %d trailing vararg elements to typecheck", n)
	}
}

func TestVarargCallRejectsMismatchedElementType(t *testing.T) {
	call := &ast.MethodCall{
		Receiver: &ast.ConstRef{Name: "A"},
		Method:   "sum",
		Args:     []ast.Expr{ast.NewIntLiteral("1"), ast.NewBoolLiteral("true")},
	}
	prog := ast.NewProgram([]*ast.ClassDecl{sumClass()}, []ast.Stmt{call})

	_, err := sem.Analyze(prog, stdlib.LoadManifest())
	require.Error(t, err)
	assert.Equal(t, diag.CodeBadVararg, err.(*diag.Diagnostic).Code)
}

func TestVarargCallRejectsBelowMinArity(t *testing.T) {
	call := &ast.MethodCall{Receiver: &ast.ConstRef{Name: "A"}, Method: "sum", Args: nil}
	prog := ast.NewProgram([]*ast.ClassDecl{sumClass()}, []ast.Stmt{call})

	_, err := sem.Analyze(prog, stdlib.LoadManifest())
	require.Error(t, err)
	assert.Equal(t, diag.CodeArityMismatch, err.(*diag.Diagnostic).Code)
}

// TestMethodWithTwoVarargParamsIsRejected covers spec §3.3 invariant 5: at
// most one vararg parameter per method.
func TestMethodWithTwoVarargParamsIsRejected(t *testing.T) {
	bad := ast.NewMethod("bad", []*ast.Param{
		{Name: "a", Type: varargArrayType("Int"), IsVararg: true},
		{Name: "b", Type: varargArrayType("Int"), IsVararg: true},
	}, &ast.NamedTypeSpec{Name: "Void"}, []ast.Stmt{})
	a := &ast.ClassDecl{Name: "A", Superclass: "Object", ClassMethods: []*ast.Method{bad}}
	prog := ast.NewProgram([]*ast.ClassDecl{a}, nil)

	_, err := sem.Analyze(prog, stdlib.LoadManifest())
	require.Error(t, err)
	assert.Equal(t, diag.CodeBadVararg, err.(*diag.Diagnostic).Code)
}
