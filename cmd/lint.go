package cmd

import (
	"fmt"

	"github.com/HalfToothed/gostman-site/javascript"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Check inline head scripts for syntax problems",
	Long:  `lint parses the inline body of every script head tag. Findings are warnings unless --strict is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		strict, _ := cmd.Flags().GetBool("strict")
		logger := newLogger(cmd)

		cfg, err := loadConfig(cmd, logger)
		if err != nil {
			return err
		}

		findings := javascript.LintInlineScripts(cfg)
		for _, f := range findings {
			fmt.Fprintln(cmd.OutOrStdout(), f.String())
		}
		logger.Info().Int("findings", len(findings)).Msg("inline scripts checked")

		if strict && javascript.HasErrors(findings) {
			return errors.New("inline scripts have syntax errors")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lintCmd)
	lintCmd.Flags().Bool("strict", false, "Fail when an inline script does not parse")
}
