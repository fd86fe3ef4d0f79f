// Package cmd wires the sqlgate command line: the HTTP server and a few
// offline helpers.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"sqlgate/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "sqlgate",
	Short:         "Read-only SQL gateway with natural-language translation",
	Long:          `sqlgate exposes a small HTTP API that runs read-only SQL against a MySQL or SQL Server database and forwards natural-language requests to a translation service.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd, args)
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a TOML configuration file")
}

// setupLogging replaces the global zerolog logger according to cfg.
func setupLogging(cfg config.LoggingConfig, out io.Writer) {
	var writer io.Writer = zerolog.ConsoleWriter{Out: out}
	if cfg.Format == "json" {
		writer = out
	}
	logger := zerolog.New(writer).With().Timestamp().Logger()

	if cfg.Verbose {
		log.Logger = logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = logger.Level(zerolog.InfoLevel)
	}
}
