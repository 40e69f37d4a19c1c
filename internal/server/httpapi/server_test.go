package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omccomas/terminal/internal/common"
	"github.com/omccomas/terminal/internal/logging"
	"github.com/omccomas/terminal/internal/server/auth"
	"github.com/omccomas/terminal/internal/server/config"
	"github.com/omccomas/terminal/internal/server/integrations/stocks"
	"github.com/omccomas/terminal/internal/server/models"
	"github.com/omccomas/terminal/internal/server/services"
)

const testSecret = "test-secret"

func testRouter(t *testing.T, d Deps) http.Handler {
	t.Helper()
	cfg := &config.Config{EndpointAddr: ":0", SecretKey: testSecret}
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	if d.Logger == nil {
		d.Logger = log
	}
	return NewRouter(cfg, log, d)
}

func authHeader(t *testing.T, userID string) string {
	t.Helper()
	token, err := auth.GenerateToken(userID, []byte(testSecret), time.Minute)
	require.NoError(t, err)
	return common.BearerPrefix + token
}

func doJSON(t *testing.T, h http.Handler, method, path, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if bearer != "" {
		req.Header.Set(common.AccessTokenHeaderName, bearer)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

type stubNotes struct {
	notes map[string]*models.Note
}

func (s *stubNotes) Create(_ context.Context, userID, title, content string) (*models.Note, error) {
	if _, ok := s.notes[title]; ok {
		return nil, common.ErrorConflict
	}
	n := &models.Note{ID: "n-1", UserID: userID, Title: title, Content: content}
	s.notes[title] = n
	return n, nil
}

func (s *stubNotes) ListTitles(context.Context, string) ([]string, error) {
	var out []string
	for t := range s.notes {
		out = append(out, t)
	}
	return out, nil
}

func (s *stubNotes) Get(_ context.Context, _, title string) (*models.Note, error) {
	if n, ok := s.notes[title]; ok {
		return n, nil
	}
	return nil, common.ErrorNotFound
}

func TestAuthRequired(t *testing.T) {
	h := testRouter(t, Deps{Notes: &stubNotes{notes: map[string]*models.Note{}}})

	rr := doJSON(t, h, http.MethodGet, "/api/notes/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = doJSON(t, h, http.MethodGet, "/api/notes/", "Bearer garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestNoteLifecycle(t *testing.T) {
	h := testRouter(t, Deps{Notes: &stubNotes{notes: map[string]*models.Note{}}})
	bearer := authHeader(t, "u-1")

	rr := doJSON(t, h, http.MethodPost, "/api/notes/", bearer, createNoteRequest{Title: "groceries", Content: "milk"})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doJSON(t, h, http.MethodGet, "/api/notes/groceries", bearer, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var got noteResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "milk", got.Content)

	// duplicate titles map to 409
	rr = doJSON(t, h, http.MethodPost, "/api/notes/", bearer, createNoteRequest{Title: "groceries"})
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = doJSON(t, h, http.MethodGet, "/api/notes/missing", bearer, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

type stubUsers struct {
	taken map[string]bool
}

func (s *stubUsers) Register(_ context.Context, login string, salt, verifier []byte) (*models.User, error) {
	return &models.User{ID: "u-1", Login: login, Salt: salt, Verifier: verifier}, nil
}

func (s *stubUsers) GetSalt(context.Context, string) ([]byte, error) {
	return []byte{1, 2, 3}, nil
}

func (s *stubUsers) Login(_ context.Context, login string, _ []byte) (*models.User, *services.TokenPair, error) {
	if login != "alice" {
		return nil, nil, common.ErrorUnauthorized
	}
	return &models.User{ID: "u-1", Login: login}, &services.TokenPair{AccessToken: "a", RefreshToken: "r"}, nil
}

func (s *stubUsers) RefreshToken(context.Context, string) (*services.TokenPair, error) {
	return &services.TokenPair{AccessToken: "a2", RefreshToken: "r2"}, nil
}

func (s *stubUsers) Profile(_ context.Context, userID string) (*models.User, error) {
	return &models.User{ID: userID, Login: "alice", Username: "al"}, nil
}

func (s *stubUsers) SetUsername(_ context.Context, _, username string) error {
	if s.taken[username] {
		return common.ErrorConflict
	}
	return nil
}

func TestLoginEndpoint(t *testing.T) {
	h := testRouter(t, Deps{Users: &stubUsers{}})

	rr := doJSON(t, h, http.MethodPost, "/api/auth/login", "", loginRequest{Login: "alice", Verifier: []byte("v")})
	require.Equal(t, http.StatusOK, rr.Code)

	var got tokenResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "a", got.AccessToken)
	assert.Equal(t, "alice", got.User.Login)

	rr = doJSON(t, h, http.MethodPost, "/api/auth/login", "", loginRequest{Login: "mallory", Verifier: []byte("v")})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestSetUsername_Conflict(t *testing.T) {
	h := testRouter(t, Deps{Users: &stubUsers{taken: map[string]bool{"taken": true}}})
	bearer := authHeader(t, "u-1")

	rr := doJSON(t, h, http.MethodPut, "/api/me/username", bearer, setUsernameRequest{Username: "taken"})
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = doJSON(t, h, http.MethodPut, "/api/me/username", bearer, setUsernameRequest{Username: "fresh"})
	assert.Equal(t, http.StatusOK, rr.Code)
}

type stubQuotes struct {
	calls int
	quote *stocks.Quote
}

func (s *stubQuotes) Daily(_ context.Context, symbol string) (*stocks.Quote, error) {
	s.calls++
	if s.quote == nil {
		return nil, common.ErrorNotFound
	}
	return s.quote, nil
}

type memQuoteCache struct {
	m map[string]*stocks.Quote
}

func (c *memQuoteCache) Get(_ context.Context, symbol string) (*stocks.Quote, error) {
	return c.m[symbol], nil
}

func (c *memQuoteCache) Set(_ context.Context, q *stocks.Quote) error {
	c.m[q.Symbol] = q
	return nil
}

func TestStockQuote_CachesResult(t *testing.T) {
	src := &stubQuotes{quote: &stocks.Quote{Symbol: "AAPL", Date: "2026-08-27", Close: "15"}}
	cache := &memQuoteCache{m: map[string]*stocks.Quote{}}
	h := testRouter(t, Deps{Quotes: src, QuoteCache: cache})
	bearer := authHeader(t, "u-1")

	rr := doJSON(t, h, http.MethodGet, "/api/stocks/AAPL", bearer, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	// second request is served from the cache
	rr = doJSON(t, h, http.MethodGet, "/api/stocks/AAPL", bearer, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1, src.calls)
}

func TestStockQuote_UnknownSymbol(t *testing.T) {
	h := testRouter(t, Deps{Quotes: &stubQuotes{}})
	bearer := authHeader(t, "u-1")

	rr := doJSON(t, h, http.MethodGet, "/api/stocks/NOPE", bearer, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

type stubChat struct{}

func (stubChat) Ask(_ context.Context, q string) (string, error) {
	return "answer to " + q, nil
}

func (stubChat) Draw(context.Context, string) ([]string, error) {
	return []string{"(\\_/)", "(o.o)"}, nil
}

func TestChatProxy(t *testing.T) {
	h := testRouter(t, Deps{Chat: stubChat{}})
	bearer := authHeader(t, "u-1")

	rr := doJSON(t, h, http.MethodPost, "/api/chat", bearer, chatRequest{Question: "why"})
	require.Equal(t, http.StatusOK, rr.Code)

	var got chatResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "answer to why", got.Answer)

	rr = doJSON(t, h, http.MethodPost, "/api/chat", bearer, chatRequest{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

type stubMessages struct {
	deleted []string
}

func (s *stubMessages) Send(_ context.Context, senderID, to, content string) (*models.Message, error) {
	if to == "nobody" {
		return nil, common.ErrorNotFound
	}
	return &models.Message{ID: "m-1", SenderID: senderID, Content: content}, nil
}

func (s *stubMessages) Inbox(context.Context, string) ([]models.Message, error) {
	return []models.Message{{ID: "m-1", SenderUsername: "al", Content: "hi"}}, nil
}

func (s *stubMessages) Delete(_ context.Context, _, id string) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func TestMessages(t *testing.T) {
	msgs := &stubMessages{}
	h := testRouter(t, Deps{Messages: msgs})
	bearer := authHeader(t, "u-1")

	rr := doJSON(t, h, http.MethodPost, "/api/messages/", bearer, sendMessageRequest{To: "nobody", Content: "hi"})
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = doJSON(t, h, http.MethodPost, "/api/messages/", bearer, sendMessageRequest{To: "al", Content: "hi"})
	assert.Equal(t, http.StatusCreated, rr.Code)

	rr = doJSON(t, h, http.MethodGet, "/api/messages/", bearer, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, h, http.MethodDelete, "/api/messages/m-1", bearer, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, []string{"m-1"}, msgs.deleted)
}
