package sem

import (
	"github.com/shiika-lang/shiika-core/internal/ast"
	"github.com/shiika-lang/shiika-core/internal/stdlib"
)

// Result is Analyze's output: spec §2's "typed_program" plus the final
// class registry, which by construction already contains every
// specialization materialized during the run (spec §4.5's "flatten" step
// is a no-op here since Specialize inserts directly into the shared
// class map rather than into a per-generic side table).
type Result struct {
	Program   *ast.Program
	NodeTypes map[ast.Node]Type
	Registry  *Registry
}

// Analyze is the Program Facade named in spec §2: it seeds the registry
// with the standard-library manifest and the program's own class
// declarations, builds a root environment exposing them, and
// type-checks every class and then the top-level statement sequence.
func Analyze(program *ast.Program, manifest *stdlib.Manifest, opts ...Option) (*Result, error) {
	cfg := &options{}
	for _, opt := range opts {
		opt(cfg)
	}

	registry := NewRegistry()
	registry.SetLogger(cfg.logger)

	if err := registry.Seed(manifest.ClassDecls()); err != nil {
		return nil, err
	}
	if err := registry.Seed(program.Classes); err != nil {
		return nil, err
	}

	env := NewEnv(registry)
	checker := NewChecker(registry)
	if err := checker.CheckClassDecls(env, manifest.ClassDecls()); err != nil {
		return nil, err
	}
	if err := checker.CheckProgram(env, program); err != nil {
		return nil, err
	}

	return &Result{
		Program:   program,
		NodeTypes: checker.NodeTypes,
		Registry:  registry,
	}, nil
}
