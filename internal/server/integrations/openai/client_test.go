package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func completionServer(t *testing.T, content string, gotReq *chatRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(gotReq); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": content}},
			},
		})
	}))
}

func TestAsk(t *testing.T) {
	var req chatRequest
	srv := completionServer(t, "42", &req)
	defer srv.Close()

	c := NewClient(srv.URL, "key", "gpt-4o-mini")
	answer, err := c.Ask(context.Background(), "meaning of life?")
	if err != nil {
		t.Fatalf("Ask error: %v", err)
	}
	if answer != "42" {
		t.Errorf("want 42, got %q", answer)
	}

	if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
		t.Fatalf("unexpected messages: %+v", req.Messages)
	}
	if req.Messages[1].Content != "meaning of life?" {
		t.Errorf("question not forwarded: %+v", req.Messages[1])
	}
}

func TestDraw_SplitsLines(t *testing.T) {
	var req chatRequest
	srv := completionServer(t, " /\\_/\\\n( o.o )", &req)
	defer srv.Close()

	c := NewClient(srv.URL, "key", "gpt-4o-mini")
	lines, err := c.Draw(context.Background(), "a cat")
	if err != nil {
		t.Fatalf("Draw error: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("want 2 lines, got %d: %q", len(lines), lines)
	}
	if req.Messages[0].Content != asciiSystemPrompt {
		t.Errorf("unexpected system prompt: %q", req.Messages[0].Content)
	}
}

func TestComplete_RetriesOn429(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]any{"content": "ok"}}},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key", "gpt-4o-mini")
	answer, err := c.Ask(context.Background(), "q")
	if err != nil {
		t.Fatalf("Ask error after retry: %v", err)
	}
	if answer != "ok" || calls != 2 {
		t.Errorf("answer=%q calls=%d", answer, calls)
	}
}
