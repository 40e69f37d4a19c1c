package terminal

import (
	"context"
	"errors"
	"fmt"

	"github.com/omccomas/terminal/internal/common"
)

func (a *App) cmdNewNote(_ context.Context, _ *Command) {
	if !a.isSignedIn() {
		a.transcript.Append("You are not signed in")
		return
	}

	a.noteState = noteAwaitingTitle
	a.transcript.Append("Title your new note:")
}

// processNewNote consumes input while the note flow is active. The flow
// returns to idle after the content line, on success or failure.
func (a *App) processNewNote(ctx context.Context, line string) {
	a.transcript.Append("> " + line)

	switch a.noteState {
	case noteAwaitingTitle:
		a.noteTitle = line
		a.noteState = noteAwaitingContent
		a.transcript.Append(fmt.Sprintf("Note titled '%s' created. Enter the content:", line))

	case noteAwaitingContent:
		a.transcript.Append("Saving...")

		_, err := a.client.CreateNote(ctx, a.noteTitle, line)
		if err != nil {
			if errors.Is(err, common.ErrorConflict) {
				a.transcript.Append(fmt.Sprintf("A note titled '%s' already exists", a.noteTitle))
			} else {
				a.transcript.Append("Error saving note")
			}
		} else {
			a.transcript.Append(fmt.Sprintf("Note titled '%s' saved.", a.noteTitle))
		}

		a.noteTitle = ""
		a.noteState = noteIdle
	}
}

func (a *App) cmdViewNotes(ctx context.Context, _ *Command) {
	if !a.isSignedIn() {
		a.transcript.Append("You are not signed in")
		return
	}

	titles, err := a.client.ListNoteTitles(ctx)
	if err != nil {
		a.transcript.Append("Error: " + err.Error())
		return
	}

	if len(titles) == 0 {
		a.transcript.Append("You have no notes")
		return
	}

	a.transcript.Append("Your notes:")
	for _, title := range titles {
		a.transcript.Append("  " + title)
	}
}

func (a *App) cmdView(ctx context.Context, cmd *Command) {
	if !a.isSignedIn() {
		a.transcript.Append("You are not signed in")
		return
	}

	if cmd.ArgText == "" {
		a.transcript.Append("Missing note title")
		return
	}

	title := stripQuotes(cmd.ArgText)

	note, err := a.client.GetNote(ctx, title)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			a.transcript.Append("Note not found")
		} else {
			a.transcript.Append("Error: " + err.Error())
		}
		return
	}

	a.transcript.Append(note.Title, note.Content)
}
