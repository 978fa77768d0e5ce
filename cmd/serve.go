package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eitanbaron2006/smartalbum-ai-3/internal/config"
	"github.com/eitanbaron2006/smartalbum-ai-3/internal/database"
	"github.com/eitanbaron2006/smartalbum-ai-3/internal/database/postgres"
	"github.com/eitanbaron2006/smartalbum-ai-3/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the album editor API server",
	Long: `Start the Smart Album web server.
The server exposes the layout catalog, the transform clamp, and the
album/page/photo state as a JSON API, plus rendered page previews.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Int("port", 8080, "Port to listen on")
	serveCmd.Flags().String("host", "0.0.0.0", "Host to bind to")
	serveCmd.Flags().Bool("debug", false, "Log at debug level in a human-readable format")
}

// registerServeBackends registers the PostgreSQL repositories for the serve command.
func registerServeBackends(pool *postgres.Pool) {
	albumRepo := postgres.NewAlbumRepository(pool)
	photoRepo := postgres.NewPhotoRepository(pool)
	database.RegisterPostgresBackend(
		func() database.AlbumWriter { return albumRepo },
		func() database.PhotoWriter { return photoRepo },
	)
	fmt.Printf("Using PostgreSQL backend\n")
}

// resolveServeHostPort resolves port and host from flags and environment variables.
func resolveServeHostPort(cmd *cobra.Command) (int, string) {
	port := mustGetInt(cmd, "port")
	host := mustGetString(cmd, "host")

	if envPort := os.Getenv("WEB_PORT"); envPort != "" {
		fmt.Sscanf(envPort, "%d", &port)
	}
	if envHost := os.Getenv("WEB_HOST"); envHost != "" {
		host = envHost
	}
	return port, host
}

// newServeLogger builds the server logger. Debug mode switches to the
// console encoder with debug-level output.
func newServeLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	if cfg.Database.URL == "" {
		return errors.New("DATABASE_URL environment variable is required")
	}

	fmt.Printf("Connecting to PostgreSQL database...\n")
	if err := postgres.Initialize(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize PostgreSQL: %w", err)
	}

	registerServeBackends(postgres.GetGlobalPool())
	port, host := resolveServeHostPort(cmd)

	logger, err := newServeLogger(mustGetBool(cmd, "debug"))
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()

	server := web.NewServer(cfg, port, host, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nShutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			fmt.Printf("Error during shutdown: %v\n", err)
		}
	}()

	fmt.Printf("Starting Smart Album server on http://%s:%d\n", host, port)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.Start(); err != nil {
		return fmt.Errorf("starting server: %w", err)
	}
	return nil
}
