package cmd

import (
	"net/http"
	"time"

	"github.com/HalfToothed/gostman-site/handlers"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the composed configuration over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")
		logger := newLogger(cmd)

		cfg, err := loadConfig(cmd, logger)
		if err != nil {
			return err
		}

		server := &http.Server{
			Addr:              ":" + port,
			Handler:           handlers.SetupRouter(cfg, logger),
			ReadHeaderTimeout: 10 * time.Second,
		}

		logger.Info().Str("addr", server.Addr).Str("site", cfg.PublicURL()).Msg("starting server")
		return server.ListenAndServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "9010", "Port to run the server on")
}
