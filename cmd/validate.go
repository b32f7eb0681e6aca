package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the site manifest and report every problem",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd)

		cfg, err := loadConfig(cmd, logger)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d head tags, %d stylesheets)\n",
			configPath, len(cfg.HeadTags()), len(cfg.CustomStylesheets()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
