package main

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/finfold/bankstat/internal/common"
	"github.com/finfold/bankstat/internal/config"
	"github.com/finfold/bankstat/internal/engine"
	"github.com/finfold/bankstat/internal/server"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the statement parsing HTTP API",
		Long: `Start an HTTP server exposing the parse engine.

Statements are uploaded as multipart form posts:
  curl -F file=@statement.csv http://localhost:8080/api/v1/statements/parse`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", "", "listen address (default :8080)")
	_ = viper.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	// Local development convenience; a missing .env is fine.
	if err := godotenv.Load(); err == nil {
		slog.Debug("Loaded environment from .env")
	}

	cfg := config.LoadServerConfig()
	srv := server.New(engine.New(), cfg)

	slog.Info("Starting statement server", "addr", cfg.Addr)
	if err := srv.Run(cmd.Context()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return common.NewUserError("statement server failed", err)
	}

	slog.Info("Server stopped")
	return nil
}
