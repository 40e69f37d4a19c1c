package terminal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/omccomas/terminal/internal/common"
)

// cmdFile covers file upload, file list, file grab, and file getid.
func (a *App) cmdFile(ctx context.Context, cmd *Command) {
	if !a.isSignedIn() {
		a.transcript.Append("You are not signed in")
		return
	}

	if len(cmd.Args) == 0 {
		a.transcript.Append("Usage: file upload <path> [name] | file list | file grab <id> | file getid <name>")
		return
	}

	switch cmd.Args[0] {
	case "upload":
		a.fileUpload(ctx, cmd.Args[1:])
	case "list":
		a.fileList(ctx)
	case "grab":
		a.fileGrab(ctx, cmd.Args[1:])
	case "getid":
		a.fileGetID(ctx, cmd.Args[1:])
	default:
		a.transcript.Append(fmt.Sprintf("Unknown file action: %s", cmd.Args[0]))
	}
}

// fileUpload reads a local file, PUTs it to a presigned URL, then registers
// the upload so it shows up in file list.
func (a *App) fileUpload(ctx context.Context, args []string) {
	if len(args) < 1 {
		a.transcript.Append("Missing file path")
		return
	}

	path := args[0]
	name := filepath.Base(path)
	if len(args) > 1 {
		name = stripQuotes(strings.Join(args[1:], " "))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		a.transcript.Append("Error: could not read " + path)
		return
	}

	a.transcript.Append("Uploading...")

	presigned, err := a.client.PresignUpload(ctx)
	if err != nil {
		a.transcript.Append("Error: " + err.Error())
		return
	}

	if err := a.client.Upload(ctx, presigned.URL, data); err != nil {
		a.transcript.Append("Error: " + err.Error())
		return
	}

	hostedURL := strings.SplitN(presigned.URL, "?", 2)[0]

	f, err := a.client.RegisterFile(ctx, name, hostedURL)
	if err != nil {
		a.transcript.Append("Error: " + err.Error())
		return
	}

	a.transcript.Append(fmt.Sprintf("File '%s' uploaded (id %s)", f.Name, f.ID))
}

func (a *App) fileList(ctx context.Context) {
	list, err := a.client.ListFiles(ctx)
	if err != nil {
		a.transcript.Append("Error: " + err.Error())
		return
	}

	if len(list) == 0 {
		a.transcript.Append("You have no files")
		return
	}

	a.transcript.Append("Your files:")
	for _, f := range list {
		a.transcript.Append(fmt.Sprintf("  %s  %s", f.ID, f.Name))
	}
}

func (a *App) fileGrab(ctx context.Context, args []string) {
	if len(args) < 1 {
		a.transcript.Append("Missing file id")
		return
	}

	f, err := a.client.GetFile(ctx, args[0])
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			a.transcript.Append("File not found")
		} else {
			a.transcript.Append("Error: " + err.Error())
		}
		return
	}

	if err := openInBrowser(f.URL); err != nil {
		a.transcript.Append("Error: could not open browser")
		return
	}

	a.transcript.Append("Opening " + f.URL)
}

func (a *App) fileGetID(ctx context.Context, args []string) {
	if len(args) < 1 {
		a.transcript.Append("Missing file name")
		return
	}

	name := stripQuotes(strings.Join(args, " "))

	f, err := a.client.ResolveFile(ctx, name)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			a.transcript.Append("File not found")
		} else {
			a.transcript.Append("Error: " + err.Error())
		}
		return
	}

	a.transcript.Append(fmt.Sprintf("%s: %s", f.Name, f.ID))
}
