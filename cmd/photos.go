package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eitanbaron2006/smartalbum-ai-3/internal/config"
	"github.com/eitanbaron2006/smartalbum-ai-3/internal/database"
	"github.com/eitanbaron2006/smartalbum-ai-3/internal/database/mariadb"
	"github.com/eitanbaron2006/smartalbum-ai-3/internal/database/postgres"
	"github.com/eitanbaron2006/smartalbum-ai-3/internal/photos"
)

var photosCmd = &cobra.Command{
	Use:   "photos",
	Short: "Manage the photo catalog",
	Long:  `Import photos into the catalog from a local folder or a PhotoPrism gallery database.`,
}

var photosImportCmd = &cobra.Command{
	Use:   "import [folder-path]",
	Short: "Register photos with the catalog",
	Long: `Import photos into the photo catalog.

A folder is walked recursively and every image file is probed for its
natural dimensions with a worker pool. Files whose perceptual hashes
collide are reported as likely duplicates but still imported.

With --gallery the photos come from the PhotoPrism MariaDB instance named
by GALLERY_DATABASE_URL instead. Gallery photos carry no local file, so
the server cannot generate thumbnails for them.

Example:
  smartalbum photos import /path/to/photos
  smartalbum photos import --workers 8 /path/to/photos
  smartalbum photos import --gallery`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPhotosImport,
}

func init() {
	rootCmd.AddCommand(photosCmd)
	photosCmd.AddCommand(photosImportCmd)

	photosImportCmd.Flags().Int("workers", 4, "Number of concurrent probe workers")
	photosImportCmd.Flags().Bool("gallery", false, "Import from the gallery database instead of a folder")
}

// initPhotoStore connects to PostgreSQL and returns the photo repository.
func initPhotoStore(cfg *config.Config) (database.PhotoWriter, error) {
	if cfg.Database.URL == "" {
		return nil, errors.New("DATABASE_URL environment variable is required")
	}
	if err := postgres.Initialize(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize PostgreSQL: %w", err)
	}
	return postgres.NewPhotoRepository(postgres.GetGlobalPool()), nil
}

func runPhotosImport(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	gallery := mustGetBool(cmd, "gallery")
	workers := mustGetInt(cmd, "workers")

	if !gallery && len(args) == 0 {
		return errors.New("folder path is required unless --gallery is set")
	}

	writer, err := initPhotoStore(cfg)
	if err != nil {
		return err
	}
	ctx := context.Background()

	if gallery {
		if cfg.Gallery.DatabaseURL == "" {
			return errors.New("GALLERY_DATABASE_URL environment variable is required")
		}
		pool, err := mariadb.NewPool(cfg.Gallery.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to gallery database: %w", err)
		}
		defer pool.Close()

		count, err := photos.ImportGallery(ctx, pool, writer)
		if err != nil {
			return err
		}
		fmt.Printf("Imported %d photo(s) from the gallery database\n", count)
		return nil
	}

	result, err := photos.ImportDirectory(ctx, args[0], workers, writer)
	if err != nil {
		return err
	}

	for _, e := range result.Errors {
		fmt.Printf("Failed: %v\n", e)
	}
	for _, d := range result.Duplicates {
		fmt.Printf("Likely duplicates (distance %d):\n  %s\n  %s\n", d.Distance, d.FileA, d.FileB)
	}

	fmt.Printf("\nDone! Imported %d photo(s)\n", result.Imported)
	return nil
}
