package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/omccomas/terminal/internal/server/models"
)

type messageResponse struct {
	ID        string    `json:"id"`
	From      string    `json:"from"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func toMessageResponse(m *models.Message) messageResponse {
	return messageResponse{ID: m.ID, From: m.SenderUsername, Content: m.Content, CreatedAt: m.CreatedAt}
}

type sendMessageRequest struct {
	To      string `json:"to"`
	Content string `json:"content"`
}

func sendMessageHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sendMessageRequest
		if err := decodeJSON(r, &req); err != nil || req.To == "" || req.Content == "" {
			badRequest(w, "to and content are required")
			return
		}

		m, err := d.Messages.Send(r.Context(), UserID(r.Context()), req.To, req.Content)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toMessageResponse(m))
	}
}

func inboxHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := d.Messages.Inbox(r.Context(), UserID(r.Context()))
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]messageResponse, 0, len(list))
		for i := range list {
			out = append(out, toMessageResponse(&list[i]))
		}

		writeJSON(w, http.StatusOK, map[string][]messageResponse{"messages": out})
	}
}

func deleteMessageHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := d.Messages.Delete(r.Context(), UserID(r.Context()), chi.URLParam(r, "id")); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
