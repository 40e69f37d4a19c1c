package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/omccomas/terminal/internal/common"
	"github.com/omccomas/terminal/internal/dbx"
	"github.com/omccomas/terminal/internal/server/models"
	"github.com/omccomas/terminal/internal/server/repositories/bookmarks"
	"github.com/omccomas/terminal/internal/server/repositories/files"
	"github.com/omccomas/terminal/internal/server/repositories/macros"
	"github.com/omccomas/terminal/internal/server/repositories/messages"
	"github.com/omccomas/terminal/internal/server/repositories/notes"
	"github.com/omccomas/terminal/internal/server/repositories/refreshtokens"
	"github.com/omccomas/terminal/internal/server/repositories/users"
)

// fakeManager vends in-memory repositories regardless of the DBTX handed in,
// so service rules can be tested without a database.
type fakeManager struct {
	users    *fakeUsersRepo
	tokens   *fakeTokensRepo
	messages *fakeMessagesRepo
}

func newFakeManager() *fakeManager {
	return &fakeManager{
		users:    &fakeUsersRepo{byUsername: map[string]*models.User{}},
		tokens:   &fakeTokensRepo{tokens: map[string]*models.RefreshToken{}},
		messages: &fakeMessagesRepo{byID: map[string]*models.Message{}},
	}
}

func (m *fakeManager) Users(dbx.DBTX) users.Repository                 { return m.users }
func (m *fakeManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository { return m.tokens }
func (m *fakeManager) Messages(dbx.DBTX) messages.Repository           { return m.messages }
func (m *fakeManager) Notes(dbx.DBTX) notes.Repository                 { return nil }
func (m *fakeManager) Bookmarks(dbx.DBTX) bookmarks.Repository         { return nil }
func (m *fakeManager) Macros(dbx.DBTX) macros.Repository               { return nil }
func (m *fakeManager) Files(dbx.DBTX) files.Repository                 { return nil }
func (m *fakeManager) RunMigrations(context.Context, *sql.DB) error    { return nil }

type fakeUsersRepo struct {
	byLogin    map[string]*models.User
	byID       map[string]*models.User
	byUsername map[string]*models.User
}

func (r *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	u.ID = "u-" + u.Login
	return u, nil
}

func (r *fakeUsersRepo) GetByLogin(_ context.Context, login string) (*models.User, error) {
	if u, ok := r.byLogin[login]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (r *fakeUsersRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	if u, ok := r.byID[id]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (r *fakeUsersRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	if u, ok := r.byUsername[username]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (r *fakeUsersRepo) SetUsername(_ context.Context, userID, username string) error {
	if _, taken := r.byUsername[username]; taken {
		return common.ErrorConflict
	}
	r.byUsername[username] = &models.User{ID: userID, Username: username}
	return nil
}

type fakeTokensRepo struct {
	tokens map[string]*models.RefreshToken
}

func (r *fakeTokensRepo) Create(_ context.Context, userID, token string, validity time.Duration) error {
	r.tokens[token] = &models.RefreshToken{Token: token, UserID: userID, Expires: time.Now().Add(validity)}
	return nil
}

func (r *fakeTokensRepo) Find(_ context.Context, token string) (*models.RefreshToken, error) {
	if t, ok := r.tokens[token]; ok {
		return t, nil
	}
	return nil, common.ErrorNotFound
}

func (r *fakeTokensRepo) Delete(_ context.Context, token string) error {
	delete(r.tokens, token)
	return nil
}

type fakeMessagesRepo struct {
	byID map[string]*models.Message
	next int
}

func (r *fakeMessagesRepo) Create(_ context.Context, m *models.Message) (*models.Message, error) {
	r.next++
	m.ID = "m-" + string(rune('0'+r.next))
	r.byID[m.ID] = m
	return m, nil
}

func (r *fakeMessagesRepo) ListInbox(_ context.Context, userID string) ([]models.Message, error) {
	var out []models.Message
	for _, m := range r.byID {
		if m.RecipientID == userID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeMessagesRepo) GetByID(_ context.Context, id string) (*models.Message, error) {
	if m, ok := r.byID[id]; ok {
		return m, nil
	}
	return nil, common.ErrorNotFound
}

func (r *fakeMessagesRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.byID, id)
	return nil
}
