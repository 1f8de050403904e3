package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pavel-fokin/files-gallery/internal/files"
	"github.com/pavel-fokin/files-gallery/internal/fs"
	"github.com/pavel-fokin/files-gallery/internal/sqlite"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print the most recent uploads from the upload journal",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, err := cmd.Flags().GetInt("limit")
		if err != nil {
			return fmt.Errorf("failed to get limit: %w", err)
		}

		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cfg.DBPath == "" {
			return fmt.Errorf("GALLERY_DB_PATH is not set")
		}

		repo, err := sqlite.NewRepository(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("failed to initialize repository: %w", err)
		}
		defer repo.Close()

		fileService := files.NewService(fs.NewStorage(cfg.UploadsDir), files.WithJournal(repo))
		uploads, err := fileService.History(cmd.Context(), limit)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		for _, upload := range uploads {
			if err := enc.Encode(upload); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of uploads to print")
}
