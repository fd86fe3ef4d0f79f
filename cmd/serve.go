package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"sqlgate/ai"
	"sqlgate/cache"
	"sqlgate/config"
	"sqlgate/gateway"
	"sqlgate/handlers"
	"sqlgate/journal"
	"sqlgate/pool"
	"sqlgate/telemetry"
)

const shutdownTimeout = 10 * time.Second

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP gateway",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "Listen port (overrides PORT and the config file)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if servePort != "" {
		cfg.Port = servePort
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	setupLogging(cfg.Logging, os.Stderr)
	if !cfg.Logging.Verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics := telemetry.New(cfg.Prometheus.Enabled)

	p, err := pool.New(cfg.Database, metrics)
	if err != nil {
		return err
	}
	defer p.Close()

	var translator handlers.Translator
	if cfg.Translator.BaseURL != "" {
		translator = ai.New(cfg.Translator.BaseURL, time.Duration(cfg.Translator.TimeoutSeconds)*time.Second)
		log.Info().Str("base_url", cfg.Translator.BaseURL).Msg("Translation service configured")
	} else {
		log.Warn().Msg("TRANSLATOR_URL not set, translation endpoints disabled")
	}

	var j handlers.Journal
	if cfg.Journal.Path != "" {
		opened, err := journal.Open(cfg.Journal.Path)
		if err != nil {
			return err
		}
		defer opened.Close()
		j = opened
		log.Info().Str("path", cfg.Journal.Path).Msg("Translation journal enabled")
	}

	healthTTL := time.Duration(cfg.Translator.HealthTTLSeconds) * time.Second
	h := handlers.New(gateway.New(p, metrics), translator, j, cache.New(healthTTL), healthTTL)
	router := handlers.NewRouter(cfg, h, metrics)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("driver", cfg.Database.Driver).
			Int("pool_size", cfg.Database.PoolSize).
			Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("Graceful shutdown failed")
	}
	return nil
}
