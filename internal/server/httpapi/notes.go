package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/omccomas/terminal/internal/server/models"
)

type noteResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func toNoteResponse(n *models.Note) noteResponse {
	return noteResponse{ID: n.ID, Title: n.Title, Content: n.Content, CreatedAt: n.CreatedAt}
}

type createNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func createNoteHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createNoteRequest
		if err := decodeJSON(r, &req); err != nil || req.Title == "" {
			badRequest(w, "title is required")
			return
		}

		note, err := d.Notes.Create(r.Context(), UserID(r.Context()), req.Title, req.Content)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toNoteResponse(note))
	}
}

func listNoteTitlesHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		titles, err := d.Notes.ListTitles(r.Context(), UserID(r.Context()))
		if err != nil {
			writeError(w, err)
			return
		}
		if titles == nil {
			titles = []string{}
		}

		writeJSON(w, http.StatusOK, map[string][]string{"titles": titles})
	}
}

func getNoteHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		note, err := d.Notes.Get(r.Context(), UserID(r.Context()), chi.URLParam(r, "title"))
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toNoteResponse(note))
	}
}
