package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/omccomas/terminal/internal/server/models"
)

type macroResponse struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Steps []string `json:"steps"`
}

func toMacroResponse(m *models.Macro) macroResponse {
	steps := m.Steps
	if steps == nil {
		steps = []string{}
	}
	return macroResponse{ID: m.ID, Name: m.Name, Steps: steps}
}

type createMacroRequest struct {
	Name  string   `json:"name"`
	Steps []string `json:"steps"`
}

func createMacroHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createMacroRequest
		if err := decodeJSON(r, &req); err != nil || req.Name == "" || len(req.Steps) == 0 {
			badRequest(w, "name and steps are required")
			return
		}

		m, err := d.Macros.Create(r.Context(), UserID(r.Context()), req.Name, req.Steps)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toMacroResponse(m))
	}
}

func listMacrosHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := d.Macros.List(r.Context(), UserID(r.Context()))
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]macroResponse, 0, len(list))
		for i := range list {
			out = append(out, toMacroResponse(&list[i]))
		}

		writeJSON(w, http.StatusOK, map[string][]macroResponse{"macros": out})
	}
}

func getMacroHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := d.Macros.Get(r.Context(), UserID(r.Context()), chi.URLParam(r, "name"))
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toMacroResponse(m))
	}
}

func removeMacroHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := d.Macros.Remove(r.Context(), UserID(r.Context()), chi.URLParam(r, "name")); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
