package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/HalfToothed/gostman-site/config"
	"github.com/HalfToothed/gostman-site/handlers"
	"github.com/HalfToothed/gostman-site/report"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the normalized configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		logger := newLogger(cmd)

		cfg, err := loadConfig(cmd, logger)
		if err != nil {
			return err
		}

		var out []byte
		switch format {
		case "yaml":
			out, err = config.EncodeManifest(cfg)
		case "json":
			out, err = json.MarshalIndent(handlers.NewConfigView(cfg), "", "  ")
			out = append(out, '\n')
		case "text":
			var s string
			s, err = report.Summary(cfg)
			out = []byte(s)
		default:
			return errors.Errorf("unknown format %q (want yaml, json or text)", format)
		}
		if err != nil {
			return errors.Wrapf(err, "printing %s", format)
		}

		_, err = fmt.Fprint(cmd.OutOrStdout(), string(out))
		return err
	},
}

func init() {
	rootCmd.AddCommand(printCmd)
	printCmd.Flags().StringP("format", "f", "yaml", "Output format: yaml, json or text")
}
