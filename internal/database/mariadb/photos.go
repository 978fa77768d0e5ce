package mariadb

import (
	"context"
	"fmt"
)

// GalleryPhoto is a photo record pulled from a PhotoPrism gallery database.
type GalleryPhoto struct {
	UID      string
	FileName string
	Width    int
	Height   int
}

// GetGalleryPhotos returns all non-deleted gallery photos with the
// dimensions of their primary file.
func (p *Pool) GetGalleryPhotos(ctx context.Context) ([]GalleryPhoto, error) {
	query := `
		SELECT p.photo_uid, f.file_name, f.file_width, f.file_height
		FROM photos p
		JOIN files f ON f.photo_uid = p.photo_uid
		WHERE f.file_primary = 1
		  AND f.deleted_at IS NULL
		  AND p.deleted_at IS NULL
		ORDER BY p.photo_uid
	`

	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query gallery photos: %w", err)
	}
	defer rows.Close()

	var photos []GalleryPhoto
	for rows.Next() {
		var gp GalleryPhoto
		if err := rows.Scan(&gp.UID, &gp.FileName, &gp.Width, &gp.Height); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		photos = append(photos, gp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return photos, nil
}
