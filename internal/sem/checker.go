package sem

import (
	"github.com/shiika-lang/shiika-core/internal/ast"
	"github.com/shiika-lang/shiika-core/internal/diag"
)

// Checker walks a program tree, computing and recording the type of every
// node (spec §4.2's add_type protocol) against a shared Registry.
type Checker struct {
	registry  *Registry
	NodeTypes map[ast.Node]Type
	checked   map[ast.Node]bool
}

// NewChecker creates a checker bound to registry. NodeTypes accumulates
// the resolved type of every node add_type visits, mirroring the way the
// teacher's own Checker.ExprTypes records one type per expression.
func NewChecker(registry *Registry) *Checker {
	return &Checker{
		registry:  registry,
		NodeTypes: make(map[ast.Node]Type),
		checked:   make(map[ast.Node]bool),
	}
}

// record stores node's type, raising CodeDoubleAddType if add_type has
// already visited it (spec §4.2: "A node calling add_type twice on the
// same instance must error").
func (c *Checker) record(node ast.Node, t Type) (Type, error) {
	if c.checked[node] {
		return nil, diag.New(diag.KindProgram, diag.CodeDoubleAddType, "node already type-checked")
	}
	c.checked[node] = true
	c.NodeTypes[node] = t
	return t, nil
}

// CheckClassDecls type-checks each of decls in turn (spec §4.4), used for
// both the standard-library manifest's classes and the program's own.
func (c *Checker) CheckClassDecls(env *Env, decls []*ast.ClassDecl) error {
	for _, decl := range decls {
		if err := c.checkClassDecl(env, decl); err != nil {
			return err
		}
	}
	return nil
}

// CheckProgram type-checks every user class and then the top-level
// statement sequence, in that order (spec §2 control flow).
func (c *Checker) CheckProgram(env *Env, prog *ast.Program) error {
	if err := c.CheckClassDecls(env, prog.Classes); err != nil {
		return err
	}
	_, _, err := c.checkStmts(env, prog.Main)
	return err
}

// checkStmts threads env through a statement sequence left to right,
// returning the last statement's type (Void if the sequence is empty) and
// the env visible to whatever follows the sequence (spec §4.2 Main / If).
func (c *Checker) checkStmts(env *Env, stmts []ast.Stmt) (Type, *Env, error) {
	cur := env
	var last Type = &Raw{Name: "Void"}
	for _, stmt := range stmts {
		t, nextEnv, err := c.checkExpr(cur, stmt)
		if err != nil {
			return nil, nil, err
		}
		last = t
		cur = nextEnv
	}
	return last, cur, nil
}
