package terminal

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/omccomas/terminal/internal/client/store"
)

var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// nowFn is a test seam for date/time output.
var nowFn = time.Now

func (a *App) cmdHelp(_ context.Context, _ *Command) {
	a.transcript.Append(
		"Available commands: help, clear, about, date, time, echo, signin, signup, signout, whoami, username,",
		"newnote, viewnotes, view, bm, macro, file, whisper, messages, message, bot, draw, stock,",
		"search, open, copylast, color, togglelines, exit",
	)
}

func (a *App) cmdClear(_ context.Context, _ *Command) {
	a.transcript.Clear()
}

func (a *App) cmdAbout(_ context.Context, _ *Command) {
	a.transcript.Append("This is a terminal-like interface built by Owen McComas.")
}

func (a *App) cmdDate(_ context.Context, _ *Command) {
	a.transcript.Append("Current Date: " + nowFn().Format("1/2/2006"))
}

func (a *App) cmdTime(_ context.Context, _ *Command) {
	a.transcript.Append("Current Time: " + nowFn().Format("3:04:05 PM"))
}

func (a *App) cmdEcho(_ context.Context, cmd *Command) {
	a.transcript.Append(cmd.ArgText)
}

// cmdColor sets the transcript text color. Invalid codes leave the persisted
// color untouched.
func (a *App) cmdColor(ctx context.Context, cmd *Command) {
	arg := cmd.ArgText

	switch {
	case arg == "":
		a.transcript.Append("Missing color code")
	case arg == "default":
		a.setColor(ctx, defaultColor)
		a.transcript.Append("Color reset to default")
	case hexColorRe.MatchString(arg):
		a.setColor(ctx, arg)
		a.transcript.Append("Color set to " + arg)
	default:
		a.transcript.Append("Invalid color code")
	}
}

func (a *App) setColor(ctx context.Context, color string) {
	a.color = color
	if err := a.store.SetPref(ctx, store.PrefColor, color); err != nil {
		a.transcript.Append("Error saving color preference")
	}
}

func (a *App) cmdToggleLines(ctx context.Context, _ *Command) {
	a.showLines = !a.showLines

	value := "hideLines"
	if a.showLines {
		value = "showLines"
	}
	if err := a.store.SetPref(ctx, store.PrefLineNumbers, value); err != nil {
		a.transcript.Append("Error saving line preference")
	}

	if a.showLines {
		a.transcript.Append("Line numbers on")
	} else {
		a.transcript.Append("Line numbers off")
	}
}

// cmdCopyLast copies the last N transcript lines to the clipboard. The echo
// of the copylast command itself is excluded.
func (a *App) cmdCopyLast(_ context.Context, cmd *Command) {
	n := 1
	if cmd.ArgText != "" {
		parsed, err := strconv.Atoi(cmd.ArgText)
		if err != nil || parsed < 1 {
			a.transcript.Append("Invalid line count")
			return
		}
		n = parsed
	}

	lines := a.transcript.Last(n + 1)
	if len(lines) > 0 {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		a.transcript.Append("Nothing to copy")
		return
	}

	if err := writeClipboard(strings.Join(lines, "\n")); err != nil {
		a.transcript.Append("Error: could not access clipboard")
		return
	}

	if len(lines) == 1 {
		a.transcript.Append("Copied last line to clipboard")
	} else {
		a.transcript.Append(fmt.Sprintf("Copied last %d lines to clipboard", len(lines)))
	}
}

func (a *App) cmdSearch(_ context.Context, cmd *Command) {
	if cmd.ArgText == "" {
		a.transcript.Append("Missing search query")
		return
	}

	target := a.config.SearchURL + url.QueryEscape(cmd.ArgText)
	if err := openInBrowser(target); err != nil {
		a.transcript.Append("Error: could not open browser")
		return
	}

	a.transcript.Append("Searching for: " + cmd.ArgText)
}

func (a *App) cmdOpen(_ context.Context, cmd *Command) {
	if cmd.ArgText == "" {
		a.transcript.Append("Missing URL")
		return
	}

	target := cmd.ArgText
	if !strings.HasPrefix(target, "http://") && !strings.HasPrefix(target, "https://") {
		target = "https://" + target
	}

	if err := openInBrowser(target); err != nil {
		a.transcript.Append("Error: could not open browser")
		return
	}

	a.transcript.Append("Opening " + target)
}
