package config

import (
	"os"
	"strconv"
)

type Config struct {
	Web      WebConfig
	Database DatabaseConfig
	Gallery  GalleryConfig
	Editor   EditorConfig
}

type WebConfig struct {
	Host string // defaults to empty (all interfaces)
	Port int    // defaults to 8080
}

type DatabaseConfig struct {
	URL          string // PostgreSQL connection URL
	MaxOpenConns int    // Maximum open connections (default 25)
	MaxIdleConns int    // Maximum idle connections (default 5)
}

type GalleryConfig struct {
	DatabaseURL string // MariaDB DSN for direct PhotoPrism database access (e.g., photoprism:photoprism@tcp(mariadb:3306)/photoprism)
}

type EditorConfig struct {
	MaxPhotosPerPage int // page capacity used by the distributor (default 4)
	PreviewWidth     int // page preview container width in px (default 1200)
	PreviewHeight    int // page preview container height in px (default 900)
}

// envInt reads an environment variable and parses it as a positive integer.
// Returns the default value if the env var is unset, empty, or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

func Load() *Config {
	return &Config{
		Web: WebConfig{
			Host: os.Getenv("WEB_HOST"),
			Port: envInt("WEB_PORT", 8080),
		},
		Database: DatabaseConfig{
			URL:          os.Getenv("DATABASE_URL"),
			MaxOpenConns: envInt("DATABASE_MAX_OPEN_CONNS", 25),
			MaxIdleConns: envInt("DATABASE_MAX_IDLE_CONNS", 5),
		},
		Gallery: GalleryConfig{
			DatabaseURL: os.Getenv("GALLERY_DATABASE_URL"),
		},
		Editor: EditorConfig{
			MaxPhotosPerPage: envInt("EDITOR_MAX_PHOTOS_PER_PAGE", 4),
			PreviewWidth:     envInt("EDITOR_PREVIEW_WIDTH", 1200),
			PreviewHeight:    envInt("EDITOR_PREVIEW_HEIGHT", 900),
		},
	}
}
