package terminal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnknownCommand_AppendsExactlyOneLine(t *testing.T) {
	client := newFakeClient()
	a := newTestApp(client, newFakeStore())

	a.Execute(context.Background(), "frobnicate now")

	lines := a.transcript.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "> frobnicate now", lines[0])
	assert.Equal(t, "Unknown command: frobnicate", lines[1])
	assert.Zero(t, client.calls, "unknown commands must not reach the server")
}

func TestEmptyInput_IsUnknownWithEmptyName(t *testing.T) {
	a := newTestApp(newFakeClient(), newFakeStore())

	a.Execute(context.Background(), "   ")

	lines := a.transcript.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "Unknown command: ", lines[1])
}

func TestClear_EmptiesTranscript(t *testing.T) {
	a := newTestApp(newFakeClient(), newFakeStore())
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		a.Execute(ctx, "echo hello")
	}
	require.NotZero(t, a.transcript.Len())

	a.Execute(ctx, "clear")
	assert.Zero(t, a.transcript.Len())
}

func TestEcho_JoinsArgsExactly(t *testing.T) {
	a := newTestApp(newFakeClient(), newFakeStore())

	a.Execute(context.Background(), "echo hello world")

	lines := a.transcript.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "hello world", lines[1])
}

func TestDispatch_IsCaseInsensitive(t *testing.T) {
	a := newTestApp(newFakeClient(), newFakeStore())

	a.Execute(context.Background(), "ECHO hi")

	lines := a.transcript.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "hi", lines[1])
}

func TestWhoAmI(t *testing.T) {
	a := newTestApp(newFakeClient(), newFakeStore())
	a.Execute(context.Background(), "whoami")
	assert.Contains(t, a.transcript.Lines(), "You are not signed in")

	a = signedInApp(newFakeClient(), newFakeStore())
	a.Execute(context.Background(), "whoami")
	assert.Contains(t, a.transcript.Lines(), "You are al")
}

func TestNewNoteFlow_PersistsAndReturnsToIdle(t *testing.T) {
	client := newFakeClient()
	a := signedInApp(client, newFakeStore())
	ctx := context.Background()

	a.Execute(ctx, "newnote")
	assert.Contains(t, a.transcript.Lines(), "Title your new note:")

	a.Execute(ctx, "My Title")
	assert.Contains(t, a.transcript.Lines(), "Note titled 'My Title' created. Enter the content:")

	a.Execute(ctx, "My Content")
	assert.Contains(t, a.transcript.Lines(), "Note titled 'My Title' saved.")

	note := client.notes["My Title"]
	require.NotNil(t, note)
	assert.Equal(t, "My Content", note.Content)

	// flow is back to idle: next line is a fresh command
	a.Execute(ctx, "echo back to normal")
	assert.Contains(t, a.transcript.Lines(), "back to normal")
	assert.Len(t, client.notes, 1)
}

func TestNewNoteFlow_RequiresSession(t *testing.T) {
	a := newTestApp(newFakeClient(), newFakeStore())

	a.Execute(context.Background(), "newnote")

	assert.Contains(t, a.transcript.Lines(), "You are not signed in")
	assert.Equal(t, noteIdle, a.noteState)
}

func TestNewNoteFlow_ErrorReturnsToIdle(t *testing.T) {
	client := newFakeClient()
	client.notes["dup"] = nil
	a := signedInApp(client, newFakeStore())
	ctx := context.Background()

	a.Execute(ctx, "newnote")
	a.Execute(ctx, "dup")
	a.Execute(ctx, "content")

	assert.Contains(t, a.transcript.Lines(), "A note titled 'dup' already exists")
	assert.Equal(t, noteIdle, a.noteState)
}
