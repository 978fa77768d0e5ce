package database

import (
	"context"
)

// AlbumReader provides read-only access to albums, pages and slots
type AlbumReader interface {
	// GetAlbum retrieves an album by ID, returns nil if not found
	GetAlbum(ctx context.Context, id string) (*Album, error)
	// ListAlbums returns all albums with photo/page counts, newest first
	ListAlbums(ctx context.Context) ([]AlbumWithCounts, error)
	// GetAlbumPhotos returns an album's photo membership in sort order
	GetAlbumPhotos(ctx context.Context, albumID string) ([]AlbumPhoto, error)
	// GetPages returns an album's pages in sort order, slots included
	GetPages(ctx context.Context, albumID string) ([]AlbumPage, error)
	// GetPage retrieves a single page with its slots, returns nil if not found
	GetPage(ctx context.Context, pageID string) (*AlbumPage, error)
}

// AlbumWriter provides write access to albums, pages and slots
type AlbumWriter interface {
	AlbumReader

	// CreateAlbum stores a new album, assigning an ID when empty
	CreateAlbum(ctx context.Context, album *Album) error
	// UpdateAlbum updates title, slug and max-photos-per-page
	UpdateAlbum(ctx context.Context, album *Album) error
	// DeleteAlbum removes an album and everything under it
	DeleteAlbum(ctx context.Context, id string) error

	// AddAlbumPhotos appends photos to the album's membership, skipping
	// UIDs already present
	AddAlbumPhotos(ctx context.Context, albumID string, photoUIDs []string) error

	// ReplacePages atomically swaps an album's full page set for the given
	// one, in slice order. Used by the distributor.
	ReplacePages(ctx context.Context, albumID string, pages []AlbumPage) error

	// UpdatePageLayout switches a page's layout template and resets all its
	// slot transforms to identity in the same transaction
	UpdatePageLayout(ctx context.Context, pageID string, layout string) error
	// UpdatePageBackground sets a page's background override
	UpdatePageBackground(ctx context.Context, pageID string, background string) error

	// UpdateSlotTransform persists a slot's pan/zoom state
	UpdateSlotTransform(ctx context.Context, pageID string, slotIndex int, x, y, scale float64) error
	// SwapSlots exchanges the photos of two slots and resets both
	// transforms to identity
	SwapSlots(ctx context.Context, pageID string, slotA, slotB int) error
}

// PhotoReader provides read-only access to the photo catalog
type PhotoReader interface {
	// GetPhoto retrieves a photo by UID, returns nil if not found
	GetPhoto(ctx context.Context, uid string) (*Photo, error)
	// ListPhotos returns all registered photos, newest first
	ListPhotos(ctx context.Context) ([]Photo, error)
	// HasPhoto checks if a photo is registered
	HasPhoto(ctx context.Context, uid string) (bool, error)
	// CountPhotos returns the number of registered photos
	CountPhotos(ctx context.Context) (int, error)
}

// PhotoWriter provides write access to the photo catalog
type PhotoWriter interface {
	PhotoReader

	// SavePhoto upserts a photo's metadata by UID
	SavePhoto(ctx context.Context, photo *Photo) error
	// SavePhotos upserts a batch of photos in one transaction
	SavePhotos(ctx context.Context, photos []Photo) error
	// DeletePhoto removes a photo from the catalog
	DeletePhoto(ctx context.Context, uid string) error
}
