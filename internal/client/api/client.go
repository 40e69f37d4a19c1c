// Package api is the typed HTTP client for the terminal backend. It mirrors
// the server's JSON API and translates HTTP statuses back into the shared
// sentinel errors.
package api

import (
	"context"
	"time"
)

type User struct {
	ID       string `json:"id"`
	Login    string `json:"login"`
	Username string `json:"username,omitempty"`
}

type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type Session struct {
	Tokens
	User User `json:"user"`
}

type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type Bookmark struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

type Macro struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Steps []string `json:"steps"`
}

type File struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

type Message struct {
	ID        string    `json:"id"`
	From      string    `json:"from"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type Quote struct {
	Symbol string `json:"symbol"`
	Date   string `json:"date"`
	Open   string `json:"open"`
	High   string `json:"high"`
	Low    string `json:"low"`
	Close  string `json:"close"`
	Volume string `json:"volume"`
}

type PresignedUpload struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// Client is the command handlers' view of the backend.
type Client interface {
	Register(ctx context.Context, login string, salt, verifier []byte) error
	GetSalt(ctx context.Context, login string) ([]byte, error)
	Login(ctx context.Context, login string, verifier []byte) (*Session, error)
	Refresh(ctx context.Context, refreshToken string) (*Tokens, error)
	Profile(ctx context.Context) (*User, error)
	SetUsername(ctx context.Context, username string) error

	CreateNote(ctx context.Context, title, content string) (*Note, error)
	ListNoteTitles(ctx context.Context) ([]string, error)
	GetNote(ctx context.Context, title string) (*Note, error)

	AddBookmark(ctx context.Context, name, url string) (*Bookmark, error)
	ListBookmarks(ctx context.Context) ([]Bookmark, error)
	GetBookmark(ctx context.Context, name string) (*Bookmark, error)
	RemoveBookmark(ctx context.Context, name string) error

	CreateMacro(ctx context.Context, name string, steps []string) (*Macro, error)
	ListMacros(ctx context.Context) ([]Macro, error)
	GetMacro(ctx context.Context, name string) (*Macro, error)
	RemoveMacro(ctx context.Context, name string) error

	PresignUpload(ctx context.Context) (*PresignedUpload, error)
	Upload(ctx context.Context, presignedURL string, data []byte) error
	RegisterFile(ctx context.Context, name, url string) (*File, error)
	ListFiles(ctx context.Context) ([]File, error)
	GetFile(ctx context.Context, id string) (*File, error)
	ResolveFile(ctx context.Context, name string) (*File, error)

	SendMessage(ctx context.Context, to, content string) (*Message, error)
	Inbox(ctx context.Context) ([]Message, error)
	DeleteMessage(ctx context.Context, id string) error

	Ask(ctx context.Context, question string) (string, error)
	Draw(ctx context.Context, prompt string) ([]string, error)
	StockQuote(ctx context.Context, symbol string) (*Quote, error)

	// SetTokens installs the bearer credentials used on authenticated calls.
	SetTokens(access, refresh string)
	ClearTokens()
}
