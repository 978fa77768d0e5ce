package handlers

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/eitanbaron2006/smartalbum-ai-3/internal/database"
	"github.com/eitanbaron2006/smartalbum-ai-3/internal/database/mock"
)

// setupPhotoTest registers a MockPhotoWriter via the database provider
// system and returns it along with a PhotosHandler. Cleanup deregisters
// the mock.
func setupPhotoTest(t *testing.T) (*mock.MockPhotoWriter, *PhotosHandler) {
	t.Helper()

	mockPW := mock.NewMockPhotoWriter()
	database.RegisterPostgresBackend(
		nil,
		func() database.PhotoWriter { return mockPW },
	)
	t.Cleanup(database.ResetForTesting)

	return mockPW, NewPhotosHandler(testConfig())
}

// writeThumbSource writes a JPEG of the given dimensions into a temp dir
// and returns its path.
func writeThumbSource(t *testing.T, width, height int) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}

	path := filepath.Join(t.TempDir(), "photo.jpg")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test image: %v", err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return path
}

// --- Register ---

func TestPhotosHandler_Register_Success(t *testing.T) {
	mockPW, handler := setupPhotoTest(t)

	body := bytes.NewBufferString(`{"uid": "ph1", "sourcePath": "/photos/dog.jpg", "fileName": "dog.jpg", "width": 2000, "height": 1000}`)
	req := httptest.NewRequest("POST", "/api/v1/photos", body)
	recorder := httptest.NewRecorder()
	handler.Register(recorder, req)

	assertStatusCode(t, recorder, http.StatusCreated)

	var resp photoResponse
	parseJSONResponse(t, recorder, &resp)
	if resp.UID != "ph1" || resp.Width != 2000 || resp.Height != 1000 {
		t.Errorf("unexpected response: %+v", resp)
	}

	stored, _ := mockPW.GetPhoto(req.Context(), "ph1")
	if stored == nil || stored.FileName != "dog.jpg" {
		t.Errorf("expected photo persisted, got %+v", stored)
	}
}

func TestPhotosHandler_Register_Upsert(t *testing.T) {
	mockPW, handler := setupPhotoTest(t)
	mockPW.AddPhoto(database.Photo{UID: "ph1", Width: 100, Height: 100})

	body := bytes.NewBufferString(`{"uid": "ph1", "fileName": "dog.jpg", "width": 2000, "height": 1000}`)
	req := httptest.NewRequest("POST", "/api/v1/photos", body)
	recorder := httptest.NewRecorder()
	handler.Register(recorder, req)

	assertStatusCode(t, recorder, http.StatusCreated)

	stored, _ := mockPW.GetPhoto(req.Context(), "ph1")
	if stored.Width != 2000 || stored.Height != 1000 {
		t.Errorf("expected dimensions updated, got %dx%d", stored.Width, stored.Height)
	}
}

func TestPhotosHandler_Register_MissingUID(t *testing.T) {
	_, handler := setupPhotoTest(t)

	body := bytes.NewBufferString(`{"fileName": "dog.jpg", "width": 100, "height": 100}`)
	req := httptest.NewRequest("POST", "/api/v1/photos", body)
	recorder := httptest.NewRecorder()
	handler.Register(recorder, req)

	assertStatusCode(t, recorder, http.StatusBadRequest)
	assertJSONError(t, recorder, "uid is required")
}

func TestPhotosHandler_Register_NegativeDimensions(t *testing.T) {
	_, handler := setupPhotoTest(t)

	body := bytes.NewBufferString(`{"uid": "ph1", "width": -5, "height": 100}`)
	req := httptest.NewRequest("POST", "/api/v1/photos", body)
	recorder := httptest.NewRecorder()
	handler.Register(recorder, req)

	assertStatusCode(t, recorder, http.StatusBadRequest)
	assertJSONError(t, recorder, "width and height must not be negative")
}

func TestPhotosHandler_Register_InvalidBody(t *testing.T) {
	_, handler := setupPhotoTest(t)

	body := bytes.NewBufferString(`{bad`)
	req := httptest.NewRequest("POST", "/api/v1/photos", body)
	recorder := httptest.NewRecorder()
	handler.Register(recorder, req)

	assertStatusCode(t, recorder, http.StatusBadRequest)
	assertJSONError(t, recorder, errInvalidRequestBody)
}

// --- List / Get ---

func TestPhotosHandler_List_Success(t *testing.T) {
	mockPW, handler := setupPhotoTest(t)
	mockPW.AddPhoto(database.Photo{UID: "ph1", FileName: "a.jpg", Width: 200, Height: 100})
	mockPW.AddPhoto(database.Photo{UID: "ph2", FileName: "b.jpg", Width: 100, Height: 200})

	req := httptest.NewRequest("GET", "/api/v1/photos", nil)
	recorder := httptest.NewRecorder()
	handler.List(recorder, req)

	assertStatusCode(t, recorder, http.StatusOK)

	var resp []photoResponse
	parseJSONResponse(t, recorder, &resp)
	if len(resp) != 2 {
		t.Fatalf("expected 2 photos, got %d", len(resp))
	}
	if resp[0].UID != "ph1" || resp[1].UID != "ph2" {
		t.Errorf("expected photos ordered by uid, got %s, %s", resp[0].UID, resp[1].UID)
	}
}

func TestPhotosHandler_List_RepositoryError(t *testing.T) {
	mockPW, handler := setupPhotoTest(t)
	mockPW.ListPhotosError = errMock

	req := httptest.NewRequest("GET", "/api/v1/photos", nil)
	recorder := httptest.NewRecorder()
	handler.List(recorder, req)

	assertStatusCode(t, recorder, http.StatusInternalServerError)
	assertJSONError(t, recorder, "failed to list photos")
}

func TestPhotosHandler_Get_Success(t *testing.T) {
	mockPW, handler := setupPhotoTest(t)
	mockPW.AddPhoto(database.Photo{
		UID:       "ph1",
		FileName:  "dog.jpg",
		Width:     2000,
		Height:    1000,
		CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	})

	req := httptest.NewRequest("GET", "/api/v1/photos/ph1", nil)
	req = requestWithChiParams(req, map[string]string{"uid": "ph1"})
	recorder := httptest.NewRecorder()
	handler.Get(recorder, req)

	assertStatusCode(t, recorder, http.StatusOK)

	var resp photoResponse
	parseJSONResponse(t, recorder, &resp)
	if resp.Width != 2000 || resp.Height != 1000 {
		t.Errorf("unexpected dimensions: %dx%d", resp.Width, resp.Height)
	}
	if resp.CreatedAt != "2026-03-01T10:00:00Z" {
		t.Errorf("unexpected createdAt: %s", resp.CreatedAt)
	}
}

func TestPhotosHandler_Get_NotFound(t *testing.T) {
	_, handler := setupPhotoTest(t)

	req := httptest.NewRequest("GET", "/api/v1/photos/nope", nil)
	req = requestWithChiParams(req, map[string]string{"uid": "nope"})
	recorder := httptest.NewRecorder()
	handler.Get(recorder, req)

	assertStatusCode(t, recorder, http.StatusNotFound)
	assertJSONError(t, recorder, "photo not found")
}

// --- Thumbnail ---

func getThumbnail(t *testing.T, handler *PhotosHandler, uid, size string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", "/api/v1/photos/"+uid+"/thumb/"+size, nil)
	req = requestWithChiParams(req, map[string]string{"uid": uid, "size": size})
	recorder := httptest.NewRecorder()
	handler.Thumbnail(recorder, req)
	return recorder
}

func TestPhotosHandler_Thumbnail_Success(t *testing.T) {
	mockPW, handler := setupPhotoTest(t)
	path := writeThumbSource(t, 200, 100)
	mockPW.AddPhoto(database.Photo{UID: "ph1", SourcePath: path, FileName: "photo.jpg", Width: 200, Height: 100})

	recorder := getThumbnail(t, handler, "ph1", "50")

	assertStatusCode(t, recorder, http.StatusOK)
	assertContentType(t, recorder, "image/jpeg")
	if cc := recorder.Header().Get("Cache-Control"); cc != "public, max-age=86400" {
		t.Errorf("unexpected Cache-Control: %s", cc)
	}

	thumb, err := jpeg.Decode(recorder.Body)
	if err != nil {
		t.Fatalf("response is not a decodable JPEG: %v", err)
	}
	if thumb.Bounds().Dx() != 50 || thumb.Bounds().Dy() != 25 {
		t.Errorf("expected 50x25 thumbnail, got %dx%d", thumb.Bounds().Dx(), thumb.Bounds().Dy())
	}
}

func TestPhotosHandler_Thumbnail_InvalidSize(t *testing.T) {
	_, handler := setupPhotoTest(t)

	recorder := getThumbnail(t, handler, "ph1", "abc")

	assertStatusCode(t, recorder, http.StatusBadRequest)
	assertJSONError(t, recorder, "invalid size")
}

func TestPhotosHandler_Thumbnail_SizeOutOfRange(t *testing.T) {
	_, handler := setupPhotoTest(t)

	for _, size := range []string{"8", "4096"} {
		recorder := getThumbnail(t, handler, "ph1", size)
		assertStatusCode(t, recorder, http.StatusBadRequest)
		assertJSONError(t, recorder, "size out of range")
	}
}

func TestPhotosHandler_Thumbnail_PhotoNotFound(t *testing.T) {
	_, handler := setupPhotoTest(t)

	recorder := getThumbnail(t, handler, "nope", "200")

	assertStatusCode(t, recorder, http.StatusNotFound)
	assertJSONError(t, recorder, "photo not found")
}

func TestPhotosHandler_Thumbnail_NoLocalFile(t *testing.T) {
	mockPW, handler := setupPhotoTest(t)
	mockPW.AddPhoto(database.Photo{UID: "ph1", FileName: "remote.jpg", Width: 200, Height: 100})

	recorder := getThumbnail(t, handler, "ph1", "200")

	assertStatusCode(t, recorder, http.StatusNotFound)
	assertJSONError(t, recorder, "photo has no local file")
}

func TestPhotosHandler_Thumbnail_FileMissing(t *testing.T) {
	mockPW, handler := setupPhotoTest(t)
	mockPW.AddPhoto(database.Photo{UID: "ph1", SourcePath: filepath.Join(t.TempDir(), "gone.jpg"), Width: 200, Height: 100})

	recorder := getThumbnail(t, handler, "ph1", "200")

	assertStatusCode(t, recorder, http.StatusNotFound)
	assertJSONError(t, recorder, "photo file not found")
}

func TestPhotosHandler_StorageUnavailable(t *testing.T) {
	_, handler := setupPhotoTest(t)
	database.ResetForTesting()

	req := httptest.NewRequest("GET", "/api/v1/photos", nil)
	recorder := httptest.NewRecorder()
	handler.List(recorder, req)

	assertStatusCode(t, recorder, http.StatusInternalServerError)
	assertJSONError(t, recorder, "photo storage not available")
}
