package terminal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/omccomas/terminal/internal/common"
)

// cmdBookmark covers bm -add, bm -ls, bm -rm, and the "bm <name>" open
// fallback. Failures are always transcript lines; nothing escapes.
func (a *App) cmdBookmark(ctx context.Context, cmd *Command) {
	if !a.isSignedIn() {
		a.transcript.Append("You are not signed in")
		return
	}

	if len(cmd.Args) == 0 {
		a.transcript.Append("Usage: bm -add <name> <url> | bm -ls | bm -rm <name> | bm <name>")
		return
	}

	switch cmd.Args[0] {
	case "-add":
		a.bookmarkAdd(ctx, cmd.Args[1:])
	case "-ls":
		a.bookmarkList(ctx)
	case "-rm":
		a.bookmarkRemove(ctx, cmd.Args[1:])
	default:
		a.bookmarkOpen(ctx, stripQuotes(strings.Join(cmd.Args, " ")))
	}
}

func (a *App) bookmarkAdd(ctx context.Context, args []string) {
	if len(args) < 1 {
		a.transcript.Append("Missing bookmark name")
		return
	}
	if len(args) < 2 {
		a.transcript.Append("Missing bookmark URL")
		return
	}

	name := stripQuotes(args[0])
	url := args[1]

	b, err := a.client.AddBookmark(ctx, name, url)
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			a.transcript.Append(fmt.Sprintf("A bookmark named '%s' already exists", name))
		} else {
			a.transcript.Append("Error: " + err.Error())
		}
		return
	}

	a.transcript.Append(fmt.Sprintf("Bookmark '%s' -> %s saved", b.Name, b.URL))
}

func (a *App) bookmarkList(ctx context.Context) {
	list, err := a.client.ListBookmarks(ctx)
	if err != nil {
		a.transcript.Append("Error: " + err.Error())
		return
	}

	if len(list) == 0 {
		a.transcript.Append("You have no bookmarks")
		return
	}

	a.transcript.Append("Your bookmarks:")
	for _, b := range list {
		a.transcript.Append(fmt.Sprintf("  %s -> %s", b.Name, b.URL))
	}
}

func (a *App) bookmarkRemove(ctx context.Context, args []string) {
	if len(args) < 1 {
		a.transcript.Append("Missing bookmark name")
		return
	}

	name := stripQuotes(args[0])

	if err := a.client.RemoveBookmark(ctx, name); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			a.transcript.Append(fmt.Sprintf("Bookmark '%s' not found", name))
		} else {
			a.transcript.Append("Error: " + err.Error())
		}
		return
	}

	a.transcript.Append(fmt.Sprintf("Bookmark '%s' removed", name))
}

func (a *App) bookmarkOpen(ctx context.Context, name string) {
	b, err := a.client.GetBookmark(ctx, name)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			a.transcript.Append(fmt.Sprintf("Bookmark '%s' not found", name))
		} else {
			a.transcript.Append("Error: " + err.Error())
		}
		return
	}

	if err := openInBrowser(b.URL); err != nil {
		a.transcript.Append("Error: could not open browser")
		return
	}

	a.transcript.Append("Opening " + b.URL)
}
