package cmd

import (
	"fmt"
	"os"

	"github.com/HalfToothed/gostman-site/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the Gostman site manifest",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		logger := newLogger(cmd)

		if _, err := os.Stat(configPath); err == nil && !force {
			return errors.Errorf("%s already exists (use --force to overwrite)", configPath)
		}

		data, err := config.ManifestFromInput(config.Gostman()).Encode()
		if err != nil {
			return err
		}

		err = os.WriteFile(configPath, data, 0644)
		if err != nil {
			return errors.WithStack(err)
		}

		logger.Info().Str("path", configPath).Msg("manifest written")
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "Overwrite an existing manifest")
}
