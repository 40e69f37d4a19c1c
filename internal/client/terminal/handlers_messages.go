package terminal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/omccomas/terminal/internal/common"
)

// cmdWhisper sends a direct message to another user by public username.
func (a *App) cmdWhisper(ctx context.Context, cmd *Command) {
	if !a.isSignedIn() {
		a.transcript.Append("You are not signed in")
		return
	}

	if len(cmd.Args) < 1 {
		a.transcript.Append("Missing recipient username")
		return
	}
	if len(cmd.Args) < 2 {
		a.transcript.Append("Missing message")
		return
	}

	to := stripQuotes(cmd.Args[0])
	content := strings.Join(cmd.Args[1:], " ")

	a.transcript.Append("Sending...")

	if _, err := a.client.SendMessage(ctx, to, content); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			a.transcript.Append(fmt.Sprintf("No user named '%s'", to))
		} else {
			a.transcript.Append("Error: " + err.Error())
		}
		return
	}

	a.transcript.Append("Message sent to " + to)
}

func (a *App) cmdMessages(ctx context.Context, _ *Command) {
	if !a.isSignedIn() {
		a.transcript.Append("You are not signed in")
		return
	}

	list, err := a.client.Inbox(ctx)
	if err != nil {
		a.transcript.Append("Error: " + err.Error())
		return
	}

	if len(list) == 0 {
		a.transcript.Append("You have no messages")
		return
	}

	a.transcript.Append("Your messages:")
	for _, m := range list {
		a.transcript.Append(fmt.Sprintf("  [%s] %s: %s", m.ID, m.From, m.Content))
	}
}

// cmdMessage handles "message rm <id>". Only the recipient can delete.
func (a *App) cmdMessage(ctx context.Context, cmd *Command) {
	if !a.isSignedIn() {
		a.transcript.Append("You are not signed in")
		return
	}

	if len(cmd.Args) < 1 || cmd.Args[0] != "rm" {
		a.transcript.Append("Usage: message rm <id>")
		return
	}
	if len(cmd.Args) < 2 {
		a.transcript.Append("Missing message id")
		return
	}

	id := cmd.Args[1]

	if err := a.client.DeleteMessage(ctx, id); err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			a.transcript.Append("Message not found")
		case errors.Is(err, common.ErrorUnauthorized):
			a.transcript.Append("You can only delete messages sent to you")
		default:
			a.transcript.Append("Error: " + err.Error())
		}
		return
	}

	a.transcript.Append("Message deleted")
}
