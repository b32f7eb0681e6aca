package cmd

import (
	"fmt"
	"os"

	"github.com/HalfToothed/gostman-site/config"
	"github.com/HalfToothed/gostman-site/logging"
	"github.com/HalfToothed/gostman-site/report"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
)

var errInvalidConfig = errors.New("site config is invalid")

var rootCmd = &cobra.Command{
	Use:           "gostman-site",
	Short:         "Gostman docs site configuration",
	Long:          `gostman-site composes and validates the configuration handed to the Gostman documentation site builder.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "site.yaml", "Path to the site manifest")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

func newLogger(cmd *cobra.Command) zerolog.Logger {
	return logging.New(logging.Config{
		Level:   logLevel,
		Output:  cmd.ErrOrStderr(),
		Console: true,
	})
}

// loadConfig composes the manifest at --config. Violations are printed to
// stderr and reported as errInvalidConfig.
func loadConfig(cmd *cobra.Command, logger zerolog.Logger) (config.SiteConfig, error) {
	cfg, err := config.Load(configPath)
	if err == nil {
		logger.Debug().
			Str("path", configPath).
			Int("head_tags", len(cfg.HeadTags())).
			Int("social_links", len(cfg.SocialLinks())).
			Msg("site config composed")
		return cfg, nil
	}

	var verr *config.ValidationError
	if !errors.As(err, &verr) {
		return config.SiteConfig{}, err
	}

	logger.Warn().
		Str("path", configPath).
		Int("violations", len(verr.Violations())).
		Msg("site config rejected")

	out, rerr := report.Violations(verr)
	if rerr != nil {
		return config.SiteConfig{}, errors.Wrap(rerr, "rendering violations")
	}
	fmt.Fprint(cmd.ErrOrStderr(), out)

	return config.SiteConfig{}, errInvalidConfig
}
