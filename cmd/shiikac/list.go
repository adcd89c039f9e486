package main

import "github.com/spf13/cobra"

func newListExamplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-examples",
		Short: "List the embedded demo program names",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, ex := range examples {
				cmd.Printf("%-16s %s\n", ex.Name, ex.Description)
			}
			return nil
		},
	}
}
