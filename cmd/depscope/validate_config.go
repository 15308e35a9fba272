package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/archscope/depscope/config"
)

func newValidateConfigCmd() *cobra.Command {
	var configFlag string

	cmd := &cobra.Command{
		Use:   "validate-config",
		Short: "Validate a depscope YAML config file without running the pipeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configFlag == "" {
				return fmt.Errorf("validate-config: --config is required")
			}
			cfg, err := config.LoadFile(configFlag)
			if err != nil {
				return fmt.Errorf("validate-config: %w", err)
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("validate-config: %w", err)
			}
			fmt.Printf("%s is valid (weights sum to %.4f)\n", configFlag, cfg.ScoringWeights.Sum())
			return nil
		},
	}

	cmd.Flags().StringVarP(&configFlag, "config", "c", "", "path to the YAML config file")
	return cmd
}
