package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/pavel-fokin/files-gallery/internal/files"
	"github.com/pavel-fokin/files-gallery/internal/fs"
	"github.com/pavel-fokin/files-gallery/internal/server"
	"github.com/pavel-fokin/files-gallery/internal/sqlite"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := os.MkdirAll(cfg.UploadsDir, 0755); err != nil {
			return fmt.Errorf("failed to create uploads directory: %w", err)
		}

		options := []files.Option{}
		if cfg.DBPath != "" {
			repo, err := sqlite.NewRepository(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("failed to initialize repository: %w", err)
			}
			defer repo.Close()
			options = append(options, files.WithJournal(repo))
		}

		fileService := files.NewService(fs.NewStorage(cfg.UploadsDir), options...)
		srv := server.New(cfg, fileService)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			slog.Info("Server running", "address", fmt.Sprintf("http://localhost:%d", cfg.Port))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			slog.Info("Stopping server")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})

		return g.Wait()
	},
}
