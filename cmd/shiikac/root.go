package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	manifestPath string
	verbose      bool
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "shiikac",
		Short: "Debugging harness for the shiika semantic-analysis core",
	}
	root.PersistentFlags().StringVar(&manifestPath, "manifest", "", "YAML file augmenting the standard-library manifest")
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "attach a debug-level logger to the facade")

	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newListExamplesCmd())
	return root
}

func facadeLogger() *logrus.Logger {
	if !verbose {
		return nil
	}
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)
	return logger
}
