// Package api provides the HTTP API handlers for the display.
package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ayusman/tinsel/internal/store"
)

// Gallery is the live scene surface the photo API drives: adding or
// removing a photo changes the animated item set immediately, not just
// the library on disk.
type Gallery interface {
	AddPhoto(id, fileName string)
	RemovePhoto(id string) bool
}

// PhotosHandler handles HTTP requests for photo resources.
type PhotosHandler struct {
	store   *store.Store
	gallery Gallery
}

// NewPhotosHandler creates a PhotosHandler. gallery may be nil, in which
// case changes only affect the library.
func NewPhotosHandler(s *store.Store, gallery Gallery) *PhotosHandler {
	return &PhotosHandler{store: s, gallery: gallery}
}

// ServeHTTP routes photo requests.
// Expected paths: /api/photos or /api/photos/{id}
func (h *PhotosHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/photos")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		case http.MethodPost:
			h.create(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	id := path
	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

type createPhotoRequest struct {
	FileName string `json:"fileName"`
	Title    string `json:"title"`
}

type listPhotosResponse struct {
	Photos []store.Photo `json:"photos"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// list handles GET /api/photos.
func (h *PhotosHandler) list(w http.ResponseWriter, r *http.Request) {
	photos, err := h.store.Photos().List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if photos == nil {
		photos = []store.Photo{}
	}

	writeJSON(w, http.StatusOK, listPhotosResponse{Photos: photos})
}

// create handles POST /api/photos.
func (h *PhotosHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createPhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.FileName == "" {
		writeError(w, http.StatusBadRequest, "fileName is required")
		return
	}

	photo, err := h.store.Photos().Add(req.FileName, req.Title)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if h.gallery != nil {
		h.gallery.AddPhoto(photo.ID, photo.FileName)
	}

	writeJSON(w, http.StatusCreated, photo)
}

// get handles GET /api/photos/{id}.
func (h *PhotosHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	photo, err := h.store.Photos().Get(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if photo == nil {
		writeError(w, http.StatusNotFound, "photo not found")
		return
	}

	writeJSON(w, http.StatusOK, photo)
}

// delete handles DELETE /api/photos/{id}.
func (h *PhotosHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	removed, err := h.store.Photos().Remove(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, "photo not found")
		return
	}

	if h.gallery != nil {
		h.gallery.RemovePhoto(id)
	}

	w.WriteHeader(http.StatusNoContent)
}
