package database

import (
	"time"
)

// Album represents a stored photo album
type Album struct {
	ID               string
	Title            string
	Slug             string
	MaxPhotosPerPage int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// AlbumWithCounts is an album with aggregate counts for list views
type AlbumWithCounts struct {
	Album
	PhotoCount int
	PageCount  int
}

// AlbumPhoto is one entry of an album's ordered photo membership
type AlbumPhoto struct {
	AlbumID   string
	PhotoUID  string
	SortOrder int
	AddedAt   time.Time
}

// AlbumPage is a stored page: the layout template it uses (by name), an
// optional background override, and its position within the album
type AlbumPage struct {
	ID         string
	AlbumID    string
	Layout     string
	Background string
	SortOrder  int
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Slots      []PageSlot
}

// PageSlot is one photo placement on a page with its pan/zoom state.
// OffsetX/OffsetY are pixel offsets from centered position, Scale the zoom
// factor; {0, 0, 1} is the identity placement.
type PageSlot struct {
	SlotIndex int
	PhotoUID  string
	OffsetX   float64
	OffsetY   float64
	Scale     float64
}

// Photo is a registered photo's metadata. Width/Height are the natural
// pixel dimensions in display orientation, the clamp engine's image-size
// input.
type Photo struct {
	UID        string
	SourcePath string
	FileName   string
	Width      int
	Height     int
	CreatedAt  time.Time
}
