package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-survival/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game tuning",
	Long: `Print the built-in survival.yaml.

Save it to ~/.survival/configs/survival.yaml or ./configs/survival.yaml
to override the defaults, or pass a copy with 'survival play --config'.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprint(cmd.OutOrStdout(), string(config.DefaultYAML()))
		return err
	},
}
