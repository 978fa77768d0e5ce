package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eitanbaron2006/smartalbum-ai-3/internal/database"
)

func TestConfigHandler_Get(t *testing.T) {
	handler := NewConfigHandler(testConfig())

	req := httptest.NewRequest("GET", "/api/v1/config", nil)
	recorder := httptest.NewRecorder()
	handler.Get(recorder, req)

	assertStatusCode(t, recorder, http.StatusOK)
	assertContentType(t, recorder, "application/json")

	var resp ConfigResponse
	parseJSONResponse(t, recorder, &resp)

	if resp.MaxPhotosPerPage != 4 {
		t.Errorf("expected maxPhotosPerPage 4, got %d", resp.MaxPhotosPerPage)
	}
	if resp.PreviewWidth != 1200 || resp.PreviewHeight != 900 {
		t.Errorf("unexpected preview size: %dx%d", resp.PreviewWidth, resp.PreviewHeight)
	}
	if resp.MinScale != 1 || resp.MaxScale != 5 {
		t.Errorf("unexpected scale range: [%g, %g]", resp.MinScale, resp.MaxScale)
	}
	if len(resp.CuratedCounts) == 0 {
		t.Fatal("expected curated counts")
	}
	for i, c := range resp.CuratedCounts {
		if c != i+1 {
			t.Errorf("expected curated counts 1..%d, got %v", len(resp.CuratedCounts), resp.CuratedCounts)
			break
		}
	}
	if resp.StorageWritable {
		t.Error("expected storageWritable=false without a registered backend")
	}
}

func TestConfigHandler_Get_StorageWritable(t *testing.T) {
	database.RegisterPostgresBackend(nil, nil)
	t.Cleanup(database.ResetForTesting)

	handler := NewConfigHandler(testConfig())

	req := httptest.NewRequest("GET", "/api/v1/config", nil)
	recorder := httptest.NewRecorder()
	handler.Get(recorder, req)

	var resp ConfigResponse
	parseJSONResponse(t, recorder, &resp)
	if !resp.StorageWritable {
		t.Error("expected storageWritable=true with a registered backend")
	}
}
