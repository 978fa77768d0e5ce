package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/eitanbaron2006/smartalbum-ai-3/internal/database"
)

// PhotoRepository provides PostgreSQL-backed photo catalog storage
type PhotoRepository struct {
	pool *Pool
}

// NewPhotoRepository creates a new PhotoRepository
func NewPhotoRepository(pool *Pool) *PhotoRepository {
	return &PhotoRepository{pool: pool}
}

func (r *PhotoRepository) SavePhoto(ctx context.Context, photo *database.Photo) error {
	if photo.CreatedAt.IsZero() {
		photo.CreatedAt = time.Now()
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO photos (uid, source_path, file_name, width, height, created_at) VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (uid) DO UPDATE SET source_path = EXCLUDED.source_path, file_name = EXCLUDED.file_name, width = EXCLUDED.width, height = EXCLUDED.height`,
		photo.UID, photo.SourcePath, photo.FileName, photo.Width, photo.Height, photo.CreatedAt)
	if err != nil {
		return fmt.Errorf("save photo: %w", err)
	}
	return nil
}

func (r *PhotoRepository) SavePhotos(ctx context.Context, photos []database.Photo) error {
	tx, err := r.pool.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	for i := range photos {
		p := &photos[i]
		if p.CreatedAt.IsZero() {
			p.CreatedAt = now
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO photos (uid, source_path, file_name, width, height, created_at) VALUES ($1, $2, $3, $4, $5, $6)
			 ON CONFLICT (uid) DO UPDATE SET source_path = EXCLUDED.source_path, file_name = EXCLUDED.file_name, width = EXCLUDED.width, height = EXCLUDED.height`,
			p.UID, p.SourcePath, p.FileName, p.Width, p.Height, p.CreatedAt)
		if err != nil {
			return fmt.Errorf("save photo %s: %w", p.UID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save photos: %w", err)
	}
	return nil
}

func (r *PhotoRepository) GetPhoto(ctx context.Context, uid string) (*database.Photo, error) {
	var p database.Photo
	err := r.pool.QueryRow(ctx,
		`SELECT uid, source_path, file_name, width, height, created_at FROM photos WHERE uid = $1`, uid).
		Scan(&p.UID, &p.SourcePath, &p.FileName, &p.Width, &p.Height, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get photo: %w", err)
	}
	return &p, nil
}

func (r *PhotoRepository) ListPhotos(ctx context.Context) ([]database.Photo, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT uid, source_path, file_name, width, height, created_at FROM photos ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	defer rows.Close()
	var photos []database.Photo
	for rows.Next() {
		var p database.Photo
		if err := rows.Scan(&p.UID, &p.SourcePath, &p.FileName, &p.Width, &p.Height, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan photo: %w", err)
		}
		photos = append(photos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate photos: %w", err)
	}
	return photos, nil
}

func (r *PhotoRepository) HasPhoto(ctx context.Context, uid string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM photos WHERE uid = $1)`, uid).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("has photo: %w", err)
	}
	return exists, nil
}

func (r *PhotoRepository) CountPhotos(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM photos`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count photos: %w", err)
	}
	return count, nil
}

func (r *PhotoRepository) DeletePhoto(ctx context.Context, uid string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM photos WHERE uid = $1`, uid)
	if err != nil {
		return fmt.Errorf("delete photo: %w", err)
	}
	return nil
}
