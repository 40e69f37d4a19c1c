package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/omccomas/terminal/internal/server/models"
)

type bookmarkResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

func toBookmarkResponse(b *models.Bookmark) bookmarkResponse {
	return bookmarkResponse{ID: b.ID, Name: b.Name, URL: b.URL}
}

type addBookmarkRequest struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

func addBookmarkHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addBookmarkRequest
		if err := decodeJSON(r, &req); err != nil || req.Name == "" || req.URL == "" {
			badRequest(w, "name and url are required")
			return
		}

		b, err := d.Bookmarks.Add(r.Context(), UserID(r.Context()), req.Name, req.URL)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toBookmarkResponse(b))
	}
}

func listBookmarksHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := d.Bookmarks.List(r.Context(), UserID(r.Context()))
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]bookmarkResponse, 0, len(list))
		for i := range list {
			out = append(out, toBookmarkResponse(&list[i]))
		}

		writeJSON(w, http.StatusOK, map[string][]bookmarkResponse{"bookmarks": out})
	}
}

func getBookmarkHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := d.Bookmarks.Get(r.Context(), UserID(r.Context()), chi.URLParam(r, "name"))
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toBookmarkResponse(b))
	}
}

func removeBookmarkHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := d.Bookmarks.Remove(r.Context(), UserID(r.Context()), chi.URLParam(r, "name")); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
