package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/eitanbaron2006/smartalbum-ai-3/internal/database"
)

// AlbumRepository provides PostgreSQL-backed album storage
type AlbumRepository struct {
	pool *Pool
}

// NewAlbumRepository creates a new AlbumRepository
func NewAlbumRepository(pool *Pool) *AlbumRepository {
	return &AlbumRepository{pool: pool}
}

func newID() string {
	return uuid.New().String()
}

// --- Albums ---

func (r *AlbumRepository) CreateAlbum(ctx context.Context, album *database.Album) error {
	if album.ID == "" {
		album.ID = newID()
	}
	if album.MaxPhotosPerPage < 1 {
		album.MaxPhotosPerPage = database.DefaultMaxPhotosPerPage
	}
	now := time.Now()
	album.CreatedAt = now
	album.UpdatedAt = now
	_, err := r.pool.Exec(ctx,
		`INSERT INTO albums (id, title, slug, max_photos_per_page, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		album.ID, album.Title, album.Slug, album.MaxPhotosPerPage, album.CreatedAt, album.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create album: %w", err)
	}
	return nil
}

func (r *AlbumRepository) GetAlbum(ctx context.Context, id string) (*database.Album, error) {
	var a database.Album
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, slug, max_photos_per_page, created_at, updated_at FROM albums WHERE id = $1`, id).
		Scan(&a.ID, &a.Title, &a.Slug, &a.MaxPhotosPerPage, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get album: %w", err)
	}
	return &a, nil
}

func (r *AlbumRepository) ListAlbums(ctx context.Context) ([]database.AlbumWithCounts, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT a.id, a.title, a.slug, a.max_photos_per_page, a.created_at, a.updated_at,
			(SELECT COUNT(*) FROM album_photos WHERE album_id = a.id) as photo_count,
			(SELECT COUNT(*) FROM album_pages WHERE album_id = a.id) as page_count
		 FROM albums a ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list albums: %w", err)
	}
	defer rows.Close()
	var albums []database.AlbumWithCounts
	for rows.Next() {
		var a database.AlbumWithCounts
		if err := rows.Scan(&a.ID, &a.Title, &a.Slug, &a.MaxPhotosPerPage, &a.CreatedAt, &a.UpdatedAt,
			&a.PhotoCount, &a.PageCount); err != nil {
			return nil, fmt.Errorf("scan album: %w", err)
		}
		albums = append(albums, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate albums: %w", err)
	}
	return albums, nil
}

func (r *AlbumRepository) UpdateAlbum(ctx context.Context, album *database.Album) error {
	album.UpdatedAt = time.Now()
	_, err := r.pool.Exec(ctx,
		`UPDATE albums SET title = $1, slug = $2, max_photos_per_page = $3, updated_at = $4 WHERE id = $5`,
		album.Title, album.Slug, album.MaxPhotosPerPage, album.UpdatedAt, album.ID)
	if err != nil {
		return fmt.Errorf("update album: %w", err)
	}
	return nil
}

func (r *AlbumRepository) DeleteAlbum(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM albums WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete album: %w", err)
	}
	return nil
}

// --- Album photos ---

func (r *AlbumRepository) GetAlbumPhotos(ctx context.Context, albumID string) ([]database.AlbumPhoto, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT album_id, photo_uid, sort_order, added_at
		 FROM album_photos WHERE album_id = $1 ORDER BY sort_order`, albumID)
	if err != nil {
		return nil, fmt.Errorf("get album photos: %w", err)
	}
	defer rows.Close()
	var photos []database.AlbumPhoto
	for rows.Next() {
		var p database.AlbumPhoto
		if err := rows.Scan(&p.AlbumID, &p.PhotoUID, &p.SortOrder, &p.AddedAt); err != nil {
			return nil, fmt.Errorf("scan album photo: %w", err)
		}
		photos = append(photos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate album photos: %w", err)
	}
	return photos, nil
}

func (r *AlbumRepository) AddAlbumPhotos(ctx context.Context, albumID string, photoUIDs []string) error {
	tx, err := r.pool.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Continue numbering after the current tail
	var maxOrder sql.NullInt64
	if err := tx.QueryRowContext(ctx,
		`SELECT MAX(sort_order) FROM album_photos WHERE album_id = $1`, albumID).
		Scan(&maxOrder); err != nil {
		return fmt.Errorf("get max photo sort order: %w", err)
	}
	next := 0
	if maxOrder.Valid {
		next = int(maxOrder.Int64) + 1
	}

	for _, uid := range photoUIDs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO album_photos (album_id, photo_uid, sort_order) VALUES ($1, $2, $3) ON CONFLICT (album_id, photo_uid) DO NOTHING`,
			albumID, uid, next)
		if err != nil {
			return fmt.Errorf("add photo %s: %w", uid, err)
		}
		next++
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit add album photos: %w", err)
	}
	return nil
}

// --- Pages ---

func (r *AlbumRepository) GetPage(ctx context.Context, pageID string) (*database.AlbumPage, error) {
	var p database.AlbumPage
	err := r.pool.QueryRow(ctx,
		`SELECT id, album_id, layout, background, sort_order, created_at, updated_at
		 FROM album_pages WHERE id = $1`, pageID).
		Scan(&p.ID, &p.AlbumID, &p.Layout, &p.Background, &p.SortOrder, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get page: %w", err)
	}
	slots, err := r.getPageSlots(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.Slots = slots
	return &p, nil
}

func (r *AlbumRepository) GetPages(ctx context.Context, albumID string) ([]database.AlbumPage, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, album_id, layout, background, sort_order, created_at, updated_at
		 FROM album_pages WHERE album_id = $1 ORDER BY sort_order`, albumID)
	if err != nil {
		return nil, fmt.Errorf("get pages: %w", err)
	}
	defer rows.Close()
	var pages []database.AlbumPage
	for rows.Next() {
		var p database.AlbumPage
		if err := rows.Scan(&p.ID, &p.AlbumID, &p.Layout, &p.Background, &p.SortOrder, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan page: %w", err)
		}
		pages = append(pages, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pages: %w", err)
	}

	// Batch-load all slots for the album in one query
	slotRows, err := r.pool.Query(ctx,
		`SELECT ps.page_id, ps.slot_index, ps.photo_uid, ps.offset_x, ps.offset_y, ps.scale
		 FROM page_slots ps
		 JOIN album_pages ap ON ap.id = ps.page_id
		 WHERE ap.album_id = $1
		 ORDER BY ps.page_id, ps.slot_index`, albumID)
	if err != nil {
		return nil, fmt.Errorf("get all slots for album: %w", err)
	}
	defer slotRows.Close()
	slotsByPage := make(map[string][]database.PageSlot)
	for slotRows.Next() {
		var pageID string
		var s database.PageSlot
		if err := slotRows.Scan(&pageID, &s.SlotIndex, &s.PhotoUID, &s.OffsetX, &s.OffsetY, &s.Scale); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		slotsByPage[pageID] = append(slotsByPage[pageID], s)
	}
	if err := slotRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate slots: %w", err)
	}

	for i := range pages {
		pages[i].Slots = slotsByPage[pages[i].ID]
	}
	return pages, nil
}

func (r *AlbumRepository) ReplacePages(ctx context.Context, albumID string, pages []database.AlbumPage) error {
	tx, err := r.pool.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Slots go with their pages through the FK cascade
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM album_pages WHERE album_id = $1`, albumID); err != nil {
		return fmt.Errorf("delete old pages: %w", err)
	}

	now := time.Now()
	for i := range pages {
		p := &pages[i]
		if p.ID == "" {
			p.ID = newID()
		}
		p.AlbumID = albumID
		p.SortOrder = i
		p.CreatedAt = now
		p.UpdatedAt = now

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO album_pages (id, album_id, layout, background, sort_order, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			p.ID, p.AlbumID, p.Layout, p.Background, p.SortOrder, p.CreatedAt, p.UpdatedAt); err != nil {
			return fmt.Errorf("insert page %d: %w", i, err)
		}

		for _, s := range p.Slots {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO page_slots (page_id, slot_index, photo_uid, offset_x, offset_y, scale) VALUES ($1, $2, $3, $4, $5, $6)`,
				p.ID, s.SlotIndex, s.PhotoUID, s.OffsetX, s.OffsetY, s.Scale); err != nil {
				return fmt.Errorf("insert slot %d of page %d: %w", s.SlotIndex, i, err)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace pages: %w", err)
	}
	return nil
}

func (r *AlbumRepository) UpdatePageLayout(ctx context.Context, pageID string, layout string) error {
	tx, err := r.pool.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE album_pages SET layout = $1, updated_at = NOW() WHERE id = $2`,
		layout, pageID)
	if err != nil {
		return fmt.Errorf("update page layout: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("update page layout: page %s not found", pageID)
	}

	// A new layout invalidates old pan/zoom, back to the identity placement
	if _, err := tx.ExecContext(ctx,
		`UPDATE page_slots SET offset_x = $1, offset_y = $2, scale = $3 WHERE page_id = $4`,
		database.DefaultOffsetX, database.DefaultOffsetY, database.DefaultScale, pageID); err != nil {
		return fmt.Errorf("reset slot transforms: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit update page layout: %w", err)
	}
	return nil
}

func (r *AlbumRepository) UpdatePageBackground(ctx context.Context, pageID string, background string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE album_pages SET background = $1, updated_at = NOW() WHERE id = $2`,
		background, pageID)
	if err != nil {
		return fmt.Errorf("update page background: %w", err)
	}
	return nil
}

// --- Slots ---

func (r *AlbumRepository) getPageSlots(ctx context.Context, pageID string) ([]database.PageSlot, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT slot_index, photo_uid, offset_x, offset_y, scale FROM page_slots WHERE page_id = $1 ORDER BY slot_index`, pageID)
	if err != nil {
		return nil, fmt.Errorf("get page slots: %w", err)
	}
	defer rows.Close()
	var slots []database.PageSlot
	for rows.Next() {
		var s database.PageSlot
		if err := rows.Scan(&s.SlotIndex, &s.PhotoUID, &s.OffsetX, &s.OffsetY, &s.Scale); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate page slots: %w", err)
	}
	return slots, nil
}

func (r *AlbumRepository) UpdateSlotTransform(ctx context.Context, pageID string, slotIndex int, x, y, scale float64) error {
	res, err := r.pool.Exec(ctx,
		`UPDATE page_slots SET offset_x = $1, offset_y = $2, scale = $3 WHERE page_id = $4 AND slot_index = $5`,
		x, y, scale, pageID, slotIndex)
	if err != nil {
		return fmt.Errorf("update slot transform: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("update slot transform: slot %d of page %s not found", slotIndex, pageID)
	}
	return nil
}

func (r *AlbumRepository) SwapSlots(ctx context.Context, pageID string, slotA int, slotB int) error {
	tx, err := r.pool.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("swap slots begin tx: %w", err)
	}
	defer tx.Rollback()

	// Read the photos of both slots
	rows, err := tx.QueryContext(ctx,
		`SELECT slot_index, photo_uid FROM page_slots WHERE page_id = $1 AND slot_index IN ($2, $3)`,
		pageID, slotA, slotB)
	if err != nil {
		return fmt.Errorf("swap slots read: %w", err)
	}
	photoBySlot, err := scanSlotPhotos(rows)
	if err != nil {
		return fmt.Errorf("swap slots scan: %w", err)
	}

	if len(photoBySlot) != 2 {
		return fmt.Errorf("swap slots: expected 2 slots, found %d", len(photoBySlot))
	}

	// Delete both slots to avoid unique constraint violations
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM page_slots WHERE page_id = $1 AND slot_index IN ($2, $3)`,
		pageID, slotA, slotB); err != nil {
		return fmt.Errorf("swap slots delete: %w", err)
	}

	// Re-insert with exchanged photos. The old pan/zoom was tuned for the
	// other slot's shape, so both transforms go back to identity.
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO page_slots (page_id, slot_index, photo_uid, offset_x, offset_y, scale) VALUES ($1, $2, $3, $4, $5, $6), ($1, $7, $8, $9, $10, $11)`,
		pageID,
		slotA, photoBySlot[slotB], database.DefaultOffsetX, database.DefaultOffsetY, database.DefaultScale,
		slotB, photoBySlot[slotA], database.DefaultOffsetX, database.DefaultOffsetY, database.DefaultScale); err != nil {
		return fmt.Errorf("swap slots insert: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("swap slots commit: %w", err)
	}
	return nil
}

func scanSlotPhotos(rows *sql.Rows) (map[int]string, error) {
	defer rows.Close()
	result := make(map[int]string)
	for rows.Next() {
		var idx int
		var uid string
		if err := rows.Scan(&idx, &uid); err != nil {
			return nil, fmt.Errorf("scan slot row: %w", err)
		}
		result[idx] = uid
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate slot rows: %w", err)
	}
	return result, nil
}
