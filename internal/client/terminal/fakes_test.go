package terminal

import (
	"context"
	"io"

	"github.com/omccomas/terminal/internal/client/api"
	"github.com/omccomas/terminal/internal/client/config"
	"github.com/omccomas/terminal/internal/client/store"
	"github.com/omccomas/terminal/internal/common"
)

// fakeClient embeds the Client interface; tests override only the methods a
// handler actually calls, and anything else panics loudly.
type fakeClient struct {
	api.Client

	calls int

	notes     map[string]*api.Note
	bookmarks map[string]*api.Bookmark
	macros    map[string]*api.Macro
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		notes:     map[string]*api.Note{},
		bookmarks: map[string]*api.Bookmark{},
		macros:    map[string]*api.Macro{},
	}
}

func (f *fakeClient) SetTokens(_, _ string) {}
func (f *fakeClient) ClearTokens()          {}

func (f *fakeClient) CreateNote(_ context.Context, title, content string) (*api.Note, error) {
	f.calls++
	if _, ok := f.notes[title]; ok {
		return nil, common.ErrorConflict
	}
	n := &api.Note{ID: "n-1", Title: title, Content: content}
	f.notes[title] = n
	return n, nil
}

func (f *fakeClient) RemoveBookmark(_ context.Context, name string) error {
	f.calls++
	if _, ok := f.bookmarks[name]; !ok {
		return common.ErrorNotFound
	}
	delete(f.bookmarks, name)
	return nil
}

func (f *fakeClient) GetMacro(_ context.Context, name string) (*api.Macro, error) {
	f.calls++
	if m, ok := f.macros[name]; ok {
		return m, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeClient) CreateMacro(_ context.Context, name string, steps []string) (*api.Macro, error) {
	f.calls++
	m := &api.Macro{ID: "m-1", Name: name, Steps: steps}
	f.macros[name] = m
	return m, nil
}

// fakeStore is an in-memory PrefStore.
type fakeStore struct {
	prefs   map[string]string
	session *store.Session
}

func newFakeStore() *fakeStore {
	return &fakeStore{prefs: map[string]string{}}
}

func (s *fakeStore) GetPref(_ context.Context, key string) (string, error) {
	return s.prefs[key], nil
}

func (s *fakeStore) SetPref(_ context.Context, key, value string) error {
	s.prefs[key] = value
	return nil
}

func (s *fakeStore) SaveSession(_ context.Context, sess *store.Session) error {
	s.session = sess
	return nil
}

func (s *fakeStore) LoadSession(_ context.Context) (*store.Session, error) {
	if s.session == nil {
		return nil, common.ErrorNotFound
	}
	return s.session, nil
}

func (s *fakeStore) ClearSession(_ context.Context) error {
	s.session = nil
	return nil
}

func newTestApp(client api.Client, st PrefStore) *App {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.MacroStepDelay = 0
	cfg.BootSequence = false

	return newApp(cfg, client, st, io.Discard)
}

func signedInApp(client api.Client, st PrefStore) *App {
	a := newTestApp(client, st)
	a.session = &store.Session{Login: "alice", Username: "al", AccessToken: "acc", RefreshToken: "ref"}
	return a
}
