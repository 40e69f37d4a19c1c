// Package httpapi exposes the terminal backend as a JSON HTTP API: auth,
// owner-scoped resources, and the chat/ascii/stock proxies the client's
// bot commands call.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/omccomas/terminal/internal/logging"
	"github.com/omccomas/terminal/internal/server/config"
	"github.com/omccomas/terminal/internal/server/integrations/stocks"
	"github.com/omccomas/terminal/internal/server/models"
	"github.com/omccomas/terminal/internal/server/services"
)

// The handler layer depends on these narrow interfaces rather than the
// concrete services so tests can substitute fakes.
type (
	UserService interface {
		Register(ctx context.Context, login string, salt, verifier []byte) (*models.User, error)
		GetSalt(ctx context.Context, login string) ([]byte, error)
		Login(ctx context.Context, login string, verifier []byte) (*models.User, *services.TokenPair, error)
		RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
		Profile(ctx context.Context, userID string) (*models.User, error)
		SetUsername(ctx context.Context, userID, username string) error
	}

	NoteService interface {
		Create(ctx context.Context, userID, title, content string) (*models.Note, error)
		ListTitles(ctx context.Context, userID string) ([]string, error)
		Get(ctx context.Context, userID, title string) (*models.Note, error)
	}

	BookmarkService interface {
		Add(ctx context.Context, userID, name, url string) (*models.Bookmark, error)
		List(ctx context.Context, userID string) ([]models.Bookmark, error)
		Get(ctx context.Context, userID, name string) (*models.Bookmark, error)
		Remove(ctx context.Context, userID, name string) error
	}

	MacroService interface {
		Create(ctx context.Context, userID, name string, steps []string) (*models.Macro, error)
		List(ctx context.Context, userID string) ([]models.Macro, error)
		Get(ctx context.Context, userID, name string) (*models.Macro, error)
		Remove(ctx context.Context, userID, name string) error
	}

	FileService interface {
		PresignUpload(ctx context.Context) (string, string, error)
		Register(ctx context.Context, userID, name, url string) (*models.File, error)
		List(ctx context.Context, userID string) ([]models.File, error)
		Get(ctx context.Context, userID, id string) (*models.File, error)
		Resolve(ctx context.Context, userID, name string) (*models.File, error)
	}

	MessageService interface {
		Send(ctx context.Context, senderID, recipientUsername, content string) (*models.Message, error)
		Inbox(ctx context.Context, userID string) ([]models.Message, error)
		Delete(ctx context.Context, userID, messageID string) error
	}

	ChatClient interface {
		Ask(ctx context.Context, question string) (string, error)
		Draw(ctx context.Context, prompt string) ([]string, error)
	}

	QuoteSource interface {
		Daily(ctx context.Context, symbol string) (*stocks.Quote, error)
	}

	QuoteCache interface {
		Get(ctx context.Context, symbol string) (*stocks.Quote, error)
		Set(ctx context.Context, q *stocks.Quote) error
	}
)

// Deps carries everything the route handlers need. QuoteCache may be nil
// when no redis instance is configured.
type Deps struct {
	Users      UserService
	Notes      NoteService
	Bookmarks  BookmarkService
	Macros     MacroService
	Files      FileService
	Messages   MessageService
	Chat       ChatClient
	Quotes     QuoteSource
	QuoteCache QuoteCache
	Logger     logging.Logger
}

type Server struct {
	http   *http.Server
	logger logging.Logger
}

func New(cfg *config.Config, log logging.Logger, d Deps) *Server {
	r := NewRouter(cfg, log, d)

	s := &http.Server{
		Addr:              cfg.EndpointAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	return &Server{http: s, logger: log}
}

// NewRouter builds the chi router with the full middleware chain and route
// table. Split out from New so handler tests can mount it on httptest.
func NewRouter(cfg *config.Config, log logging.Logger, d Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.GetHead)
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	// The completion proxy can take a while; the timeout covers everything else.
	r.Use(middleware.Timeout(90 * time.Second))
	r.Use(accessLog(log))

	secret := []byte(cfg.SecretKey)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", registerHandler(d))
			r.Post("/salt", saltHandler(d))
			r.Post("/login", loginHandler(d))
			r.Post("/refresh", refreshHandler(d))
		})

		r.Group(func(r chi.Router) {
			r.Use(bearerAuth(secret))

			r.Get("/me", profileHandler(d))
			r.Put("/me/username", setUsernameHandler(d))

			r.Route("/notes", func(r chi.Router) {
				r.Post("/", createNoteHandler(d))
				r.Get("/", listNoteTitlesHandler(d))
				r.Get("/{title}", getNoteHandler(d))
			})

			r.Route("/bookmarks", func(r chi.Router) {
				r.Post("/", addBookmarkHandler(d))
				r.Get("/", listBookmarksHandler(d))
				r.Get("/{name}", getBookmarkHandler(d))
				r.Delete("/{name}", removeBookmarkHandler(d))
			})

			r.Route("/macros", func(r chi.Router) {
				r.Post("/", createMacroHandler(d))
				r.Get("/", listMacrosHandler(d))
				r.Get("/{name}", getMacroHandler(d))
				r.Delete("/{name}", removeMacroHandler(d))
			})

			r.Route("/files", func(r chi.Router) {
				r.Post("/presign", presignFileHandler(d))
				r.Post("/", registerFileHandler(d))
				r.Get("/", listFilesHandler(d))
				r.Get("/resolve", resolveFileHandler(d))
				r.Get("/{id}", getFileHandler(d))
			})

			r.Route("/messages", func(r chi.Router) {
				r.Post("/", sendMessageHandler(d))
				r.Get("/", inboxHandler(d))
				r.Delete("/{id}", deleteMessageHandler(d))
			})

			r.Post("/chat", chatHandler(d))
			r.Post("/ascii", asciiHandler(d))
			r.Get("/stocks/{symbol}", stockHandler(d))
		})
	})

	return r
}

// Start runs the HTTP server and blocks until an error or shutdown.
func (s *Server) Start() error {
	s.logger.Info(context.Background(), "http server listening", "addr", s.http.Addr)
	err := s.http.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info(ctx, "http server shutting down")
	return s.http.Shutdown(ctx)
}
