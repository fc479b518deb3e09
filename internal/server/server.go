// Package server provides the HTTP control plane and the scene feed for
// the display front-end.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ayusman/tinsel/internal/capture"
	"github.com/ayusman/tinsel/internal/scene"
	"github.com/ayusman/tinsel/internal/server/api"
	"github.com/ayusman/tinsel/internal/store"
)

// Config holds the server configuration.
type Config struct {
	StaticDir string
	Store     *store.Store
	Scene     *scene.Scene
	Camera    capture.Camera
	// TrackingError reports the persistent landmark-source error, if any.
	TrackingError func() error
}

// Server is the HTTP server for the display.
type Server struct {
	config Config
	mux    *http.ServeMux
	start  time.Time
}

// New creates a Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)

	if s.config.Store != nil {
		// A nil *scene.Scene wrapped in the interface would defeat the
		// handler's nil check, so only assign when a scene exists.
		var gallery api.Gallery
		if s.config.Scene != nil {
			gallery = s.config.Scene
		}
		photosHandler := api.NewPhotosHandler(s.config.Store, gallery)
		s.mux.Handle("/api/photos", photosHandler)
		s.mux.Handle("/api/photos/", photosHandler)
	}

	if s.config.Scene != nil {
		s.mux.Handle("/api/scene", NewSceneFeedHandler(s.config.Scene))
	}

	if s.config.Camera != nil {
		s.mux.Handle("/api/stream", NewStreamHandler(s.config.Camera))
	}

	if s.config.StaticDir != "" {
		fs := http.FileServer(http.Dir(s.config.StaticDir))
		s.mux.Handle("/", fs)
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]interface{}{
		"status": "ok",
		"uptime": time.Since(s.start).String(),
	}

	if s.config.Scene != nil {
		response["mode"] = s.config.Scene.Mode().String()
		response["items"] = s.config.Scene.ItemCount()
	}

	if s.config.TrackingError != nil {
		if err := s.config.TrackingError(); err != nil {
			response["tracking"] = err.Error()
		} else {
			response["tracking"] = "ok"
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
