package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/omccomas/terminal/internal/server/models"
)

type fileResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

func toFileResponse(f *models.File) fileResponse {
	return fileResponse{ID: f.ID, Name: f.Name, URL: f.URL, CreatedAt: f.CreatedAt}
}

type presignResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

func presignFileHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, url, err := d.Files.PresignUpload(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, presignResponse{Key: key, URL: url})
	}
}

type registerFileRequest struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

func registerFileHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerFileRequest
		if err := decodeJSON(r, &req); err != nil || req.Name == "" || req.URL == "" {
			badRequest(w, "name and url are required")
			return
		}

		f, err := d.Files.Register(r.Context(), UserID(r.Context()), req.Name, req.URL)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toFileResponse(f))
	}
}

func listFilesHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := d.Files.List(r.Context(), UserID(r.Context()))
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]fileResponse, 0, len(list))
		for i := range list {
			out = append(out, toFileResponse(&list[i]))
		}

		writeJSON(w, http.StatusOK, map[string][]fileResponse{"files": out})
	}
}

func getFileHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := d.Files.Get(r.Context(), UserID(r.Context()), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toFileResponse(f))
	}
}

// resolveFileHandler looks a file up by display name, newest first, for
// clients that only know the name they uploaded under.
func resolveFileHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("name")
		if name == "" {
			badRequest(w, "name query parameter is required")
			return
		}

		f, err := d.Files.Resolve(r.Context(), UserID(r.Context()), name)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toFileResponse(f))
	}
}
