package main

import (
	"fmt"

	"github.com/shiika-lang/shiika-core/internal/diag"
	"github.com/shiika-lang/shiika-core/internal/sem"
	"github.com/shiika-lang/shiika-core/internal/stdlib"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <example-name>",
		Short: "Run an embedded demo program through the semantic core",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args[0])
		},
	}
}

func runAnalyze(cmd *cobra.Command, name string) error {
	ex := findExample(name)
	if ex == nil {
		return fmt.Errorf("unknown example %q; see `shiikac list-examples`", name)
	}

	manifest, err := loadManifest()
	if err != nil {
		return err
	}

	opts := []sem.Option{}
	if logger := facadeLogger(); logger != nil {
		opts = append(opts, sem.WithLogger(logger))
	}

	result, err := sem.Analyze(ex.Build(), manifest, opts...)
	if err != nil {
		if d, ok := err.(*diag.Diagnostic); ok {
			cmd.Print(diag.NewFormatter().Format(d))
			return nil
		}
		return err
	}

	cmd.Printf("analyzed %q: %d node(s) typed, %d class(es) registered\n", name, len(result.NodeTypes), len(result.Registry.Names()))
	for _, n := range result.Registry.Names() {
		cmd.Printf("  %s\n", n)
	}
	return nil
}

func loadManifest() (*stdlib.Manifest, error) {
	if manifestPath == "" {
		return stdlib.LoadManifest(), nil
	}
	return stdlib.LoadManifestFile(manifestPath)
}
