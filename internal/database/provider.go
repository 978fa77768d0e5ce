package database

import (
	"context"
	"fmt"
)

var (
	postgresAlbumWriter func() AlbumWriter
	postgresPhotoWriter func() PhotoWriter
	postgresInitialized bool
)

// RegisterPostgresBackend registers PostgreSQL repository constructors.
// This is called by the postgres package to avoid import cycles.
func RegisterPostgresBackend(
	albumWriter func() AlbumWriter,
	photoWriter func() PhotoWriter,
) {
	postgresAlbumWriter = albumWriter
	postgresPhotoWriter = photoWriter
	postgresInitialized = true
}

// IsInitialized returns whether the PostgreSQL backend has been initialized.
func IsInitialized() bool {
	return postgresInitialized
}

// ResetForTesting clears all registered constructors.
// Tests register mocks and restore a clean slate in t.Cleanup.
func ResetForTesting() {
	postgresAlbumWriter = nil
	postgresPhotoWriter = nil
	postgresInitialized = false
}

// GetAlbumReader returns an AlbumReader from the PostgreSQL backend
func GetAlbumReader(ctx context.Context) (AlbumReader, error) {
	if !postgresInitialized {
		return nil, fmt.Errorf("PostgreSQL backend not initialized: DATABASE_URL is required")
	}
	if postgresAlbumWriter == nil {
		return nil, fmt.Errorf("PostgreSQL album writer not registered")
	}
	return postgresAlbumWriter(), nil
}

// GetAlbumWriter returns an AlbumWriter from the PostgreSQL backend
func GetAlbumWriter(ctx context.Context) (AlbumWriter, error) {
	if !postgresInitialized {
		return nil, fmt.Errorf("PostgreSQL backend not initialized: DATABASE_URL is required")
	}
	if postgresAlbumWriter == nil {
		return nil, fmt.Errorf("PostgreSQL album writer not registered")
	}
	return postgresAlbumWriter(), nil
}

// GetPhotoReader returns a PhotoReader from the PostgreSQL backend
func GetPhotoReader(ctx context.Context) (PhotoReader, error) {
	if !postgresInitialized {
		return nil, fmt.Errorf("PostgreSQL backend not initialized: DATABASE_URL is required")
	}
	if postgresPhotoWriter == nil {
		return nil, fmt.Errorf("PostgreSQL photo writer not registered")
	}
	return postgresPhotoWriter(), nil
}

// GetPhotoWriter returns a PhotoWriter from the PostgreSQL backend
func GetPhotoWriter(ctx context.Context) (PhotoWriter, error) {
	if !postgresInitialized {
		return nil, fmt.Errorf("PostgreSQL backend not initialized: DATABASE_URL is required")
	}
	if postgresPhotoWriter == nil {
		return nil, fmt.Errorf("PostgreSQL photo writer not registered")
	}
	return postgresPhotoWriter(), nil
}
