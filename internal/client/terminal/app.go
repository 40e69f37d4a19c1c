// Package terminal implements the interactive client: a command interpreter
// over a running transcript, with handlers for notes, bookmarks, macros,
// files, messaging, and the bot/stock proxies.
package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/omccomas/terminal/internal/client/api"
	"github.com/omccomas/terminal/internal/client/config"
	"github.com/omccomas/terminal/internal/client/store"

	_ "modernc.org/sqlite"
)

// noteState tracks the interactive note-creation flow. While it is not
// idle, every input line bypasses command dispatch.
type noteState int

const (
	noteIdle noteState = iota
	noteAwaitingTitle
	noteAwaitingContent
)

const defaultColor = "#FFFFFF"

// maxMacroDepth caps recursive macro replay (a macro invoking a macro).
const maxMacroDepth = 8

// PrefStore is the slice of the local store the interpreter needs.
type PrefStore interface {
	GetPref(ctx context.Context, key string) (string, error)
	SetPref(ctx context.Context, key, value string) error
	SaveSession(ctx context.Context, sess *store.Session) error
	LoadSession(ctx context.Context) (*store.Session, error)
	ClearSession(ctx context.Context) error
}

// Handler executes one command against the transcript. Handlers never
// return errors; failures become transcript lines.
type Handler func(ctx context.Context, cmd *Command)

type App struct {
	config     *config.Config
	client     api.Client
	store      PrefStore
	transcript *Transcript

	registry map[string]Handler

	session    *store.Session
	color      string
	showLines  bool
	noteState  noteState
	noteTitle  string
	macroDepth int

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	db, err := store.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	st := store.New(db)
	client := api.NewHTTPClient(cfg.ServerURL, cfg.RequestTimeout)

	app := newApp(cfg, client, st, os.Stdout)
	app.reader = bufio.NewReader(os.Stdin)

	app.restoreState(ctx)

	return app, nil
}

// newApp wires an App without touching disk or network. Tests build their
// own with fakes.
func newApp(cfg *config.Config, client api.Client, st PrefStore, out io.Writer) *App {
	app := &App{
		config:     cfg,
		client:     client,
		store:      st,
		transcript: NewTranscript(),
		color:      defaultColor,
		out:        out,
	}
	app.registerHandlers()
	return app
}

func (a *App) registerHandlers() {
	a.registry = map[string]Handler{
		"help":        a.cmdHelp,
		"clear":       a.cmdClear,
		"about":       a.cmdAbout,
		"date":        a.cmdDate,
		"time":        a.cmdTime,
		"echo":        a.cmdEcho,
		"color":       a.cmdColor,
		"togglelines": a.cmdToggleLines,
		"copylast":    a.cmdCopyLast,
		"search":      a.cmdSearch,
		"open":        a.cmdOpen,
		"signin":      a.cmdSignIn,
		"signup":      a.cmdSignUp,
		"signout":     a.cmdSignOut,
		"whoami":      a.cmdWhoAmI,
		"username":    a.cmdUsername,
		"newnote":     a.cmdNewNote,
		"viewnotes":   a.cmdViewNotes,
		"view":        a.cmdView,
		"bm":          a.cmdBookmark,
		"macro":       a.cmdMacro,
		"file":        a.cmdFile,
		"whisper":     a.cmdWhisper,
		"messages":    a.cmdMessages,
		"message":     a.cmdMessage,
		"bot":         a.cmdBot,
		"draw":        a.cmdDraw,
		"stock":       a.cmdStock,
	}
}

// restoreState loads persisted preferences and any saved session.
func (a *App) restoreState(ctx context.Context) {
	if color, err := a.store.GetPref(ctx, store.PrefColor); err == nil && color != "" {
		a.color = color
	}
	if lines, err := a.store.GetPref(ctx, store.PrefLineNumbers); err == nil {
		a.showLines = lines == "showLines"
	}
	if sess, err := a.store.LoadSession(ctx); err == nil {
		a.session = sess
		a.client.SetTokens(sess.AccessToken, sess.RefreshToken)
	}
}

func (a *App) isSignedIn() bool {
	return a.session != nil
}

// displayName is the public username when set, otherwise the login.
func (a *App) displayName() string {
	if a.session == nil {
		return ""
	}
	if a.session.Username != "" {
		return a.session.Username
	}
	return a.session.Login
}

// Execute processes one input line: echo it, then either feed the note flow
// or dispatch exactly one handler. Unknown names append a single line.
func (a *App) Execute(ctx context.Context, line string) {
	if a.noteState != noteIdle {
		a.processNewNote(ctx, line)
		return
	}

	cmd := ParseCommand(line)
	a.transcript.Append("> " + line)

	handler, ok := a.registry[cmd.Name]
	if !ok {
		a.transcript.Append(fmt.Sprintf("Unknown command: %s", cmd.Name))
		return
	}

	handler(ctx, cmd)
}

// Run is the interactive loop: optional boot sequence, then read-dispatch-
// render until EOF or exit.
func (a *App) Run(ctx context.Context) {
	if a.config.BootSequence {
		a.playBootSequence()
	}

	fmt.Fprintln(a.out, "Welcome to Terminal Version 0.1.0 | This is a virtual terminal interface. You can interact with the app by typing commands. For a list of available commands, type 'help' and press Enter.")

	for {
		fmt.Fprint(a.out, "> ")

		line, err := a.reader.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimRight(line, "\r\n")

		trimmed := strings.TrimSpace(line)
		if a.noteState == noteIdle && (trimmed == "exit" || trimmed == "quit") {
			fmt.Fprintln(a.out, "Goodbye")
			return
		}

		before := a.transcript.Len()
		a.Execute(ctx, line)
		a.renderNewLines(before)

		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}

// sleep is the inter-step pause used by macro replay.
func (a *App) sleep() {
	if a.config.MacroStepDelay > 0 {
		time.Sleep(a.config.MacroStepDelay)
	}
}
