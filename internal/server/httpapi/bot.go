package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type chatRequest struct {
	Question string `json:"question"`
}

type chatResponse struct {
	Answer string `json:"answer"`
}

func chatHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := decodeJSON(r, &req); err != nil || req.Question == "" {
			badRequest(w, "question is required")
			return
		}

		answer, err := d.Chat.Ask(r.Context(), req.Question)
		if err != nil {
			d.Logger.Error(r.Context(), "chat proxy failed", "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, chatResponse{Answer: answer})
	}
}

type asciiRequest struct {
	Prompt string `json:"prompt"`
}

type asciiResponse struct {
	Lines []string `json:"lines"`
}

func asciiHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req asciiRequest
		if err := decodeJSON(r, &req); err != nil || req.Prompt == "" {
			badRequest(w, "prompt is required")
			return
		}

		lines, err := d.Chat.Draw(r.Context(), req.Prompt)
		if err != nil {
			d.Logger.Error(r.Context(), "ascii proxy failed", "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, asciiResponse{Lines: lines})
	}
}

// stockHandler serves quotes through the redis cache when one is configured,
// falling back to the provider on a miss. Cache failures only cost the
// caching, never the quote.
func stockHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		symbol := chi.URLParam(r, "symbol")
		ctx := r.Context()

		if d.QuoteCache != nil {
			if q, err := d.QuoteCache.Get(ctx, symbol); err == nil && q != nil {
				writeJSON(w, http.StatusOK, q)
				return
			} else if err != nil {
				d.Logger.Warn(ctx, "quote cache read failed", "symbol", symbol, "error", err)
			}
		}

		q, err := d.Quotes.Daily(ctx, symbol)
		if err != nil {
			writeError(w, err)
			return
		}

		if d.QuoteCache != nil {
			if err := d.QuoteCache.Set(ctx, q); err != nil {
				d.Logger.Warn(ctx, "quote cache write failed", "symbol", symbol, "error", err)
			}
		}

		writeJSON(w, http.StatusOK, q)
	}
}
