package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// newRootCmd builds the depscope command tree: analyze and validate-config,
// per SPEC_FULL.md §9's cobra-based CLI description.
func newRootCmd() *cobra.Command {
	log := logrus.New()

	root := &cobra.Command{
		Use:           "depscope",
		Short:         "Analyse .NET project dependency graphs for extraction candidates",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	var verbose bool
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	}

	root.AddCommand(newAnalyzeCmd(log))
	root.AddCommand(newValidateConfigCmd())
	return root
}
