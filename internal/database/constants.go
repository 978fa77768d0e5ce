package database

// Slot transform column defaults. New slots start at the identity
// placement: centered, minimum cover zoom.
const (
	// DefaultOffsetX is the initial horizontal pan offset in pixels
	DefaultOffsetX = 0.0

	// DefaultOffsetY is the initial vertical pan offset in pixels
	DefaultOffsetY = 0.0

	// DefaultScale is the initial zoom factor (1 = minimum cover)
	DefaultScale = 1.0
)

// DefaultMaxPhotosPerPage is used when an album is created without an
// explicit per-page photo limit
const DefaultMaxPhotosPerPage = 4
