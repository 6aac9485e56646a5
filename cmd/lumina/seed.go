package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Validate the seed fixtures and print them as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, err := loadSeed()
		if err != nil {
			return err
		}

		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(seed)
	},
}
