package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ayusman/tinsel/internal/store"
)

// fakeGallery records the scene mutations the handler issues.
type fakeGallery struct {
	added   []string
	removed []string
}

func (g *fakeGallery) AddPhoto(id, fileName string) { g.added = append(g.added, id) }
func (g *fakeGallery) RemovePhoto(id string) bool {
	g.removed = append(g.removed, id)
	return true
}

func newTestHandler(t *testing.T) (*PhotosHandler, *fakeGallery, *store.Store) {
	t.Helper()

	st, err := store.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	gallery := &fakeGallery{}
	return NewPhotosHandler(st, gallery), gallery, st
}

func TestPhotosHandler_Create(t *testing.T) {
	h, gallery, _ := newTestHandler(t)

	body := strings.NewReader(`{"fileName":"tree.jpg","title":"The Tree"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/photos", body)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (%s)", rec.Code, rec.Body.String())
	}

	var photo store.Photo
	if err := json.NewDecoder(rec.Body).Decode(&photo); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if photo.ID == "" || photo.FileName != "tree.jpg" {
		t.Errorf("created photo = %+v", photo)
	}

	if len(gallery.added) != 1 || gallery.added[0] != photo.ID {
		t.Errorf("scene not updated: added = %v", gallery.added)
	}
}

func TestPhotosHandler_CreateRejectsMissingFileName(t *testing.T) {
	h, gallery, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/photos", strings.NewReader(`{"title":"x"}`))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if len(gallery.added) != 0 {
		t.Error("scene must not change on a rejected request")
	}
}

func TestPhotosHandler_List(t *testing.T) {
	h, _, st := newTestHandler(t)

	if _, err := st.Photos().Add("a.jpg", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Photos().Add("b.jpg", ""); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/photos", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Photos []store.Photo `json:"photos"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Photos) != 2 {
		t.Errorf("len(photos) = %d, want 2", len(resp.Photos))
	}
}

func TestPhotosHandler_Delete(t *testing.T) {
	h, gallery, st := newTestHandler(t)

	photo, err := st.Photos().Add("gone.jpg", "")
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/photos/"+photo.ID, nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if len(gallery.removed) != 1 || gallery.removed[0] != photo.ID {
		t.Errorf("scene not updated: removed = %v", gallery.removed)
	}

	// Deleting again is a 404 and must not touch the scene.
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/photos/"+photo.ID, nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", rec.Code)
	}
	if len(gallery.removed) != 1 {
		t.Error("scene changed on a failed delete")
	}
}

func TestPhotosHandler_MethodNotAllowed(t *testing.T) {
	h, _, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPut, "/api/photos", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}
