// Package mock provides mock implementations of database interfaces for testing.
package mock

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/eitanbaron2006/smartalbum-ai-3/internal/database"
)

// MockAlbumWriter is a mock implementation of database.AlbumWriter
type MockAlbumWriter struct {
	mu          sync.RWMutex
	albums      map[string]*database.Album
	albumPhotos map[string][]database.AlbumPhoto // keyed by albumID
	pages       map[string]*database.AlbumPage   // slots kept inline

	albumCounter int
	pageCounter  int

	// Error injection
	GetAlbumError             error
	ListAlbumsError           error
	CreateAlbumError          error
	UpdateAlbumError          error
	DeleteAlbumError          error
	GetAlbumPhotosError       error
	AddAlbumPhotosError       error
	GetPagesError             error
	GetPageError              error
	ReplacePagesError         error
	UpdatePageLayoutError     error
	UpdatePageBackgroundError error
	UpdateSlotTransformError  error
	SwapSlotsError            error
}

// NewMockAlbumWriter creates a new mock album writer
func NewMockAlbumWriter() *MockAlbumWriter {
	return &MockAlbumWriter{
		albums:      make(map[string]*database.Album),
		albumPhotos: make(map[string][]database.AlbumPhoto),
		pages:       make(map[string]*database.AlbumPage),
	}
}

// AddAlbum adds an album to the mock store
func (m *MockAlbumWriter) AddAlbum(album database.Album) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.albums[album.ID] = &album
}

// AddPage adds a page (with its slots) to the mock store
func (m *MockAlbumWriter) AddPage(page database.AlbumPage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pages[page.ID] = &page
}

// SetAlbumPhotos sets the photo membership for an album
func (m *MockAlbumWriter) SetAlbumPhotos(albumID string, photos []database.AlbumPhoto) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.albumPhotos[albumID] = photos
}

func (m *MockAlbumWriter) GetAlbum(ctx context.Context, id string) (*database.Album, error) {
	if m.GetAlbumError != nil {
		return nil, m.GetAlbumError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.albums[id]
	if !ok {
		return nil, nil
	}
	album := *a
	return &album, nil
}

func (m *MockAlbumWriter) ListAlbums(ctx context.Context) ([]database.AlbumWithCounts, error) {
	if m.ListAlbumsError != nil {
		return nil, m.ListAlbumsError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []database.AlbumWithCounts
	for _, a := range m.albums {
		awc := database.AlbumWithCounts{Album: *a}
		awc.PhotoCount = len(m.albumPhotos[a.ID])
		for _, p := range m.pages {
			if p.AlbumID == a.ID {
				awc.PageCount++
			}
		}
		result = append(result, awc)
	}
	return result, nil
}

func (m *MockAlbumWriter) CreateAlbum(ctx context.Context, album *database.Album) error {
	if m.CreateAlbumError != nil {
		return m.CreateAlbumError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.albumCounter++
	album.ID = fmt.Sprintf("album-%d", m.albumCounter)
	m.albums[album.ID] = album
	return nil
}

func (m *MockAlbumWriter) UpdateAlbum(ctx context.Context, album *database.Album) error {
	if m.UpdateAlbumError != nil {
		return m.UpdateAlbumError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.albums[album.ID] = album
	return nil
}

func (m *MockAlbumWriter) DeleteAlbum(ctx context.Context, id string) error {
	if m.DeleteAlbumError != nil {
		return m.DeleteAlbumError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.albums, id)
	delete(m.albumPhotos, id)
	for pageID, p := range m.pages {
		if p.AlbumID == id {
			delete(m.pages, pageID)
		}
	}
	return nil
}

func (m *MockAlbumWriter) GetAlbumPhotos(ctx context.Context, albumID string) ([]database.AlbumPhoto, error) {
	if m.GetAlbumPhotosError != nil {
		return nil, m.GetAlbumPhotosError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.albumPhotos[albumID], nil
}

func (m *MockAlbumWriter) AddAlbumPhotos(ctx context.Context, albumID string, photoUIDs []string) error {
	if m.AddAlbumPhotosError != nil {
		return m.AddAlbumPhotosError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	existing := make(map[string]struct{})
	for _, p := range m.albumPhotos[albumID] {
		existing[p.PhotoUID] = struct{}{}
	}
	for _, uid := range photoUIDs {
		if _, dup := existing[uid]; dup {
			continue
		}
		existing[uid] = struct{}{}
		m.albumPhotos[albumID] = append(m.albumPhotos[albumID], database.AlbumPhoto{
			AlbumID:   albumID,
			PhotoUID:  uid,
			SortOrder: len(m.albumPhotos[albumID]),
		})
	}
	return nil
}

func (m *MockAlbumWriter) GetPages(ctx context.Context, albumID string) ([]database.AlbumPage, error) {
	if m.GetPagesError != nil {
		return nil, m.GetPagesError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []database.AlbumPage
	for _, p := range m.pages {
		if p.AlbumID == albumID {
			result = append(result, copyPage(p))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].SortOrder < result[j].SortOrder })
	return result, nil
}

func (m *MockAlbumWriter) GetPage(ctx context.Context, pageID string) (*database.AlbumPage, error) {
	if m.GetPageError != nil {
		return nil, m.GetPageError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.pages[pageID]
	if !ok {
		return nil, nil
	}
	page := copyPage(p)
	return &page, nil
}

func (m *MockAlbumWriter) ReplacePages(ctx context.Context, albumID string, pages []database.AlbumPage) error {
	if m.ReplacePagesError != nil {
		return m.ReplacePagesError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for pageID, p := range m.pages {
		if p.AlbumID == albumID {
			delete(m.pages, pageID)
		}
	}
	for i := range pages {
		p := &pages[i]
		if p.ID == "" {
			m.pageCounter++
			p.ID = fmt.Sprintf("page-%d", m.pageCounter)
		}
		p.AlbumID = albumID
		p.SortOrder = i
		stored := copyPage(p)
		m.pages[p.ID] = &stored
	}
	return nil
}

func (m *MockAlbumWriter) UpdatePageLayout(ctx context.Context, pageID string, layout string) error {
	if m.UpdatePageLayoutError != nil {
		return m.UpdatePageLayoutError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.pages[pageID]
	if !ok {
		return fmt.Errorf("update page layout: page %s not found", pageID)
	}
	p.Layout = layout
	for i := range p.Slots {
		p.Slots[i].OffsetX = database.DefaultOffsetX
		p.Slots[i].OffsetY = database.DefaultOffsetY
		p.Slots[i].Scale = database.DefaultScale
	}
	return nil
}

func (m *MockAlbumWriter) UpdatePageBackground(ctx context.Context, pageID string, background string) error {
	if m.UpdatePageBackgroundError != nil {
		return m.UpdatePageBackgroundError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.pages[pageID]; ok {
		p.Background = background
	}
	return nil
}

func (m *MockAlbumWriter) UpdateSlotTransform(ctx context.Context, pageID string, slotIndex int, x, y, scale float64) error {
	if m.UpdateSlotTransformError != nil {
		return m.UpdateSlotTransformError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.pages[pageID]
	if !ok {
		return fmt.Errorf("update slot transform: slot %d of page %s not found", slotIndex, pageID)
	}
	for i := range p.Slots {
		if p.Slots[i].SlotIndex == slotIndex {
			p.Slots[i].OffsetX = x
			p.Slots[i].OffsetY = y
			p.Slots[i].Scale = scale
			return nil
		}
	}
	return fmt.Errorf("update slot transform: slot %d of page %s not found", slotIndex, pageID)
}

func (m *MockAlbumWriter) SwapSlots(ctx context.Context, pageID string, slotA int, slotB int) error {
	if m.SwapSlotsError != nil {
		return m.SwapSlotsError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.pages[pageID]
	if !ok {
		return fmt.Errorf("swap slots: expected 2 slots, found 0")
	}
	var idxA, idxB = -1, -1
	for i := range p.Slots {
		if p.Slots[i].SlotIndex == slotA {
			idxA = i
		}
		if p.Slots[i].SlotIndex == slotB {
			idxB = i
		}
	}
	if idxA < 0 || idxB < 0 {
		found := 0
		if idxA >= 0 {
			found++
		}
		if idxB >= 0 {
			found++
		}
		return fmt.Errorf("swap slots: expected 2 slots, found %d", found)
	}
	p.Slots[idxA].PhotoUID, p.Slots[idxB].PhotoUID = p.Slots[idxB].PhotoUID, p.Slots[idxA].PhotoUID
	for _, i := range []int{idxA, idxB} {
		p.Slots[i].OffsetX = database.DefaultOffsetX
		p.Slots[i].OffsetY = database.DefaultOffsetY
		p.Slots[i].Scale = database.DefaultScale
	}
	return nil
}

func copyPage(p *database.AlbumPage) database.AlbumPage {
	page := *p
	page.Slots = make([]database.PageSlot, len(p.Slots))
	copy(page.Slots, p.Slots)
	return page
}

// MockPhotoWriter is a mock implementation of database.PhotoWriter
type MockPhotoWriter struct {
	mu     sync.RWMutex
	photos map[string]*database.Photo

	// Error injection
	GetPhotoError    error
	ListPhotosError  error
	HasPhotoError    error
	CountPhotosError error
	SavePhotoError   error
	SavePhotosError  error
	DeletePhotoError error
}

// NewMockPhotoWriter creates a new mock photo writer
func NewMockPhotoWriter() *MockPhotoWriter {
	return &MockPhotoWriter{
		photos: make(map[string]*database.Photo),
	}
}

// AddPhoto adds a photo to the mock store
func (m *MockPhotoWriter) AddPhoto(photo database.Photo) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.photos[photo.UID] = &photo
}

func (m *MockPhotoWriter) GetPhoto(ctx context.Context, uid string) (*database.Photo, error) {
	if m.GetPhotoError != nil {
		return nil, m.GetPhotoError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.photos[uid]
	if !ok {
		return nil, nil
	}
	photo := *p
	return &photo, nil
}

func (m *MockPhotoWriter) ListPhotos(ctx context.Context) ([]database.Photo, error) {
	if m.ListPhotosError != nil {
		return nil, m.ListPhotosError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []database.Photo
	for _, p := range m.photos {
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].UID < result[j].UID })
	return result, nil
}

func (m *MockPhotoWriter) HasPhoto(ctx context.Context, uid string) (bool, error) {
	if m.HasPhotoError != nil {
		return false, m.HasPhotoError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.photos[uid]
	return ok, nil
}

func (m *MockPhotoWriter) CountPhotos(ctx context.Context) (int, error) {
	if m.CountPhotosError != nil {
		return 0, m.CountPhotosError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.photos), nil
}

func (m *MockPhotoWriter) SavePhoto(ctx context.Context, photo *database.Photo) error {
	if m.SavePhotoError != nil {
		return m.SavePhotoError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *photo
	m.photos[photo.UID] = &stored
	return nil
}

func (m *MockPhotoWriter) SavePhotos(ctx context.Context, photos []database.Photo) error {
	if m.SavePhotosError != nil {
		return m.SavePhotosError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range photos {
		stored := photos[i]
		m.photos[stored.UID] = &stored
	}
	return nil
}

func (m *MockPhotoWriter) DeletePhoto(ctx context.Context, uid string) error {
	if m.DeletePhotoError != nil {
		return m.DeletePhotoError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.photos, uid)
	return nil
}

// Verify interface compliance
var _ database.AlbumWriter = (*MockAlbumWriter)(nil)
var _ database.PhotoWriter = (*MockPhotoWriter)(nil)
