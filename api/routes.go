package api

import (
	"encoding/json"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"tagcomposer/composer"
	"tagcomposer/status"
)

func RegisterRoutes(c *composer.Composer, notifier *status.Notifier, staticFS fs.FS) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	h := &handler{composer: c, status: notifier}

	r.Get("/api/state", h.getState)

	// Editor
	r.Put("/api/editor", h.putEditor)
	r.Put("/api/editor/selection", h.putSelection)
	r.Post("/api/editor/insert", h.insertTag)
	r.Post("/api/editor/cursor/take", h.takeCursor)
	r.Post("/api/editor/clear", h.clearEditor)
	r.Post("/api/editor/copy", h.copyEditor)

	// Tags
	r.Get("/api/tags", h.listTags)
	r.Post("/api/tags", h.addTag)
	r.Put("/api/tags/{id}", h.updateTag)
	r.Delete("/api/tags/{id}", h.deleteTag)
	r.Post("/api/tags/reset", h.resetTags)
	r.Post("/api/tags/markers", h.deriveMarkers)

	// Add/edit forms
	r.Put("/api/forms/new", h.putNewForm)
	r.Post("/api/forms/new/submit", h.submitNewForm)
	r.Post("/api/forms/edit/{id}", h.beginEdit)
	r.Put("/api/forms/edit", h.putEditForm)
	r.Post("/api/forms/edit/submit", h.submitEditForm)

	// WebSocket
	r.Get("/api/ws", h.handleWS)

	// Static sub-FS: strip the "static/" prefix present in the embed.FS.
	// In dev mode staticFS is already rooted at static/, so Sub returns a
	// wrapper unconditionally (no error) but the sub-FS would look for
	// static/static/* which does not exist. Stat index.html to detect this.
	staticSub, err := fs.Sub(staticFS, "static")
	if err != nil {
		staticSub = staticFS
	} else if _, statErr := fs.Stat(staticSub, "index.html"); statErr != nil {
		staticSub = staticFS
	}

	// Serve HTML by reading from the FS directly.
	// Using http.FileServer with r.URL.Path ending in "index.html" triggers
	// Go's built-in redirect to "./", so avoid that by reading the file manually.
	r.Get("/", serveFile(staticSub, "index.html"))

	fileServer := http.FileServer(http.FS(staticSub))
	r.Get("/css/*", fileServer.ServeHTTP)
	r.Get("/js/*", fileServer.ServeHTTP)

	return r
}

// serveFile returns a handler that reads a single file from fsys and sends it.
func serveFile(fsys fs.FS, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(content)
	}
}

type handler struct {
	composer *composer.Composer
	status   *status.Notifier
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// errorBody carries the failure and the status message it produced.
type errorBody struct {
	Error  string `json:"error"`
	Status string `json:"status,omitempty"`
}
