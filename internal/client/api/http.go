package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/omccomas/terminal/internal/common"
)

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = 90 * time.Second
	}
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) SetTokens(access, refresh string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = access
	c.refreshToken = refresh
}

func (c *HTTPClient) ClearTokens() {
	c.SetTokens("", "")
}

func (c *HTTPClient) tokens() (string, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.accessToken, c.refreshToken
}

// statusError maps an HTTP status onto the shared sentinels so handlers can
// use errors.Is regardless of which transport produced the failure.
func statusError(status int, body []byte) error {
	switch status {
	case http.StatusNotFound:
		return common.ErrorNotFound
	case http.StatusConflict:
		return common.ErrorConflict
	case http.StatusUnauthorized:
		return common.ErrorUnauthorized
	case http.StatusBadRequest:
		var e struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &e) == nil && e.Error != "" {
			return fmt.Errorf("bad request: %s", e.Error)
		}
		return fmt.Errorf("bad request")
	default:
		return fmt.Errorf("server returned status %d: %w", status, common.ErrorInternal)
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path string, reqBody, respBody any) error {
	if err := c.doOnce(ctx, method, path, reqBody, respBody, true); err != nil {
		return err
	}
	return nil
}

// doOnce performs a request. On a 401 with a refresh token on hand it rotates
// the pair once and retries; a second 401 is surfaced to the caller.
func (c *HTTPClient) doOnce(ctx context.Context, method, path string, reqBody, respBody any, allowRefresh bool) error {
	var buf io.Reader
	if reqBody != nil {
		b, err := json.Marshal(reqBody)
		if err != nil {
			return err
		}
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return err
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	access, refresh := c.tokens()
	if access != "" {
		req.Header.Set(common.AccessTokenHeaderName, common.BearerPrefix+access)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request error: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized && allowRefresh && refresh != "" && !strings.HasPrefix(path, "/api/auth/") {
		tokens, err := c.Refresh(ctx, refresh)
		if err != nil {
			return common.ErrorUnauthorized
		}
		c.SetTokens(tokens.AccessToken, tokens.RefreshToken)
		return c.doOnce(ctx, method, path, reqBody, respBody, false)
	}

	if resp.StatusCode >= 400 {
		return statusError(resp.StatusCode, body)
	}

	if respBody != nil && len(body) > 0 {
		if err := json.Unmarshal(body, respBody); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

func (c *HTTPClient) Register(ctx context.Context, login string, salt, verifier []byte) error {
	req := map[string]any{"login": login, "salt": salt, "verifier": verifier}
	return c.do(ctx, http.MethodPost, "/api/auth/register", req, nil)
}

func (c *HTTPClient) GetSalt(ctx context.Context, login string) ([]byte, error) {
	var resp struct {
		Salt []byte `json:"salt"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/salt", map[string]string{"login": login}, &resp); err != nil {
		return nil, err
	}
	return resp.Salt, nil
}

func (c *HTTPClient) Login(ctx context.Context, login string, verifier []byte) (*Session, error) {
	var session Session
	req := map[string]any{"login": login, "verifier": verifier}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", req, &session); err != nil {
		return nil, err
	}
	c.SetTokens(session.AccessToken, session.RefreshToken)
	return &session, nil
}

func (c *HTTPClient) Refresh(ctx context.Context, refreshToken string) (*Tokens, error) {
	var tokens Tokens
	req := map[string]string{"refresh_token": refreshToken}
	if err := c.doOnce(ctx, http.MethodPost, "/api/auth/refresh", req, &tokens, false); err != nil {
		return nil, err
	}
	return &tokens, nil
}

func (c *HTTPClient) Profile(ctx context.Context) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodGet, "/api/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) SetUsername(ctx context.Context, username string) error {
	return c.do(ctx, http.MethodPut, "/api/me/username", map[string]string{"username": username}, nil)
}

func (c *HTTPClient) CreateNote(ctx context.Context, title, content string) (*Note, error) {
	var n Note
	req := map[string]string{"title": title, "content": content}
	if err := c.do(ctx, http.MethodPost, "/api/notes/", req, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

func (c *HTTPClient) ListNoteTitles(ctx context.Context) ([]string, error) {
	var resp struct {
		Titles []string `json:"titles"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/notes/", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Titles, nil
}

func (c *HTTPClient) GetNote(ctx context.Context, title string) (*Note, error) {
	var n Note
	if err := c.do(ctx, http.MethodGet, "/api/notes/"+url.PathEscape(title), nil, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

func (c *HTTPClient) AddBookmark(ctx context.Context, name, bookmarkURL string) (*Bookmark, error) {
	var b Bookmark
	req := map[string]string{"name": name, "url": bookmarkURL}
	if err := c.do(ctx, http.MethodPost, "/api/bookmarks/", req, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *HTTPClient) ListBookmarks(ctx context.Context) ([]Bookmark, error) {
	var resp struct {
		Bookmarks []Bookmark `json:"bookmarks"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/bookmarks/", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Bookmarks, nil
}

func (c *HTTPClient) GetBookmark(ctx context.Context, name string) (*Bookmark, error) {
	var b Bookmark
	if err := c.do(ctx, http.MethodGet, "/api/bookmarks/"+url.PathEscape(name), nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *HTTPClient) RemoveBookmark(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodDelete, "/api/bookmarks/"+url.PathEscape(name), nil, nil)
}

func (c *HTTPClient) CreateMacro(ctx context.Context, name string, steps []string) (*Macro, error) {
	var m Macro
	req := map[string]any{"name": name, "steps": steps}
	if err := c.do(ctx, http.MethodPost, "/api/macros/", req, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *HTTPClient) ListMacros(ctx context.Context) ([]Macro, error) {
	var resp struct {
		Macros []Macro `json:"macros"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/macros/", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Macros, nil
}

func (c *HTTPClient) GetMacro(ctx context.Context, name string) (*Macro, error) {
	var m Macro
	if err := c.do(ctx, http.MethodGet, "/api/macros/"+url.PathEscape(name), nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *HTTPClient) RemoveMacro(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodDelete, "/api/macros/"+url.PathEscape(name), nil, nil)
}

func (c *HTTPClient) PresignUpload(ctx context.Context) (*PresignedUpload, error) {
	var p PresignedUpload
	if err := c.do(ctx, http.MethodPost, "/api/files/presign", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Upload PUTs file content directly to the presigned object-store URL; no
// bearer token is attached since the URL carries its own signature.
func (c *HTTPClient) Upload(ctx context.Context, presignedURL string, data []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, presignedURL, bytes.NewReader(data))
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upload error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("upload failed with status %d", resp.StatusCode)
	}
	return nil
}

func (c *HTTPClient) RegisterFile(ctx context.Context, name, fileURL string) (*File, error) {
	var f File
	req := map[string]string{"name": name, "url": fileURL}
	if err := c.do(ctx, http.MethodPost, "/api/files/", req, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (c *HTTPClient) ListFiles(ctx context.Context) ([]File, error) {
	var resp struct {
		Files []File `json:"files"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/files/", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Files, nil
}

func (c *HTTPClient) GetFile(ctx context.Context, id string) (*File, error) {
	var f File
	if err := c.do(ctx, http.MethodGet, "/api/files/"+url.PathEscape(id), nil, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (c *HTTPClient) ResolveFile(ctx context.Context, name string) (*File, error) {
	var f File
	if err := c.do(ctx, http.MethodGet, "/api/files/resolve?name="+url.QueryEscape(name), nil, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (c *HTTPClient) SendMessage(ctx context.Context, to, content string) (*Message, error) {
	var m Message
	req := map[string]string{"to": to, "content": content}
	if err := c.do(ctx, http.MethodPost, "/api/messages/", req, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *HTTPClient) Inbox(ctx context.Context) ([]Message, error) {
	var resp struct {
		Messages []Message `json:"messages"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/messages/", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Messages, nil
}

func (c *HTTPClient) DeleteMessage(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/messages/"+url.PathEscape(id), nil, nil)
}

func (c *HTTPClient) Ask(ctx context.Context, question string) (string, error) {
	var resp struct {
		Answer string `json:"answer"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/chat", map[string]string{"question": question}, &resp); err != nil {
		return "", err
	}
	return resp.Answer, nil
}

func (c *HTTPClient) Draw(ctx context.Context, prompt string) ([]string, error) {
	var resp struct {
		Lines []string `json:"lines"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/ascii", map[string]string{"prompt": prompt}, &resp); err != nil {
		return nil, err
	}
	return resp.Lines, nil
}

func (c *HTTPClient) StockQuote(ctx context.Context, symbol string) (*Quote, error) {
	var q Quote
	if err := c.do(ctx, http.MethodGet, "/api/stocks/"+url.PathEscape(symbol), nil, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

var _ Client = (*HTTPClient)(nil)
