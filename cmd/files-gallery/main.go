package main

import (
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/pavel-fokin/files-gallery/internal/logging"
	"github.com/pavel-fokin/files-gallery/internal/server"
)

var rootCmd = &cobra.Command{
	Use:           "files-gallery",
	Short:         "Upload files and browse them as a paginated gallery",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	_ = godotenv.Load()

	rootCmd.AddCommand(serveCmd, historyCmd)
	if err := rootCmd.Execute(); err != nil {
		slog.Error("failed to execute command", "error", err)
		os.Exit(1)
	}
}

func loadConfig() (*server.Config, error) {
	cfg := server.Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.SetDefault(logging.New(os.Stdout, cfg.LogLevel))
	return &cfg, nil
}
