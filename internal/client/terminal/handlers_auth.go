package terminal

import (
	"context"
	"errors"
	"fmt"

	"github.com/omccomas/terminal/internal/client/store"
	"github.com/omccomas/terminal/internal/common"
	"github.com/omccomas/terminal/internal/cryptox"
)

func (a *App) cmdSignIn(ctx context.Context, _ *Command) {
	if a.isSignedIn() {
		a.transcript.Append("Welcome back, " + a.displayName())
		return
	}

	login, err := a.promptText("Enter your login:")
	if err != nil || login == "" {
		a.transcript.Append("Missing login")
		return
	}

	password, err := a.promptPassword()
	if err != nil {
		a.transcript.Append("Error reading password")
		return
	}
	defer cryptox.Wipe(password)

	a.transcript.Append("Checking...")

	salt, err := a.client.GetSalt(ctx, login)
	if err != nil {
		a.transcript.Append("Error: could not reach server")
		return
	}

	key := cryptox.DeriveMasterKey(password, salt)
	defer cryptox.Wipe(key)
	verifier := cryptox.MakeVerifier(key)

	session, err := a.client.Login(ctx, login, verifier)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			a.transcript.Append("Invalid login or password")
		} else {
			a.transcript.Append("Error: " + err.Error())
		}
		return
	}

	a.session = &store.Session{
		Login:        session.User.Login,
		Username:     session.User.Username,
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
	}
	if err := a.store.SaveSession(ctx, a.session); err != nil {
		a.transcript.Append("Warning: could not save session")
	}

	a.transcript.Append("Welcome back, " + a.displayName())
}

func (a *App) cmdSignUp(ctx context.Context, _ *Command) {
	login, err := a.promptText("Choose a login:")
	if err != nil || login == "" {
		a.transcript.Append("Missing login")
		return
	}

	password, err := a.promptPassword()
	if err != nil {
		a.transcript.Append("Error reading password")
		return
	}
	defer cryptox.Wipe(password)

	salt := common.GenerateRandByteArray(32)
	key := cryptox.DeriveMasterKey(password, salt)
	defer cryptox.Wipe(key)
	verifier := cryptox.MakeVerifier(key)

	if err := a.client.Register(ctx, login, salt, verifier); err != nil {
		if errors.Is(err, common.ErrorConflict) {
			a.transcript.Append("Login already taken")
		} else {
			a.transcript.Append("Error: " + err.Error())
		}
		return
	}

	a.transcript.Append(fmt.Sprintf("Account '%s' created. Use signin to continue.", login))
}

func (a *App) cmdSignOut(ctx context.Context, _ *Command) {
	if !a.isSignedIn() {
		a.transcript.Append("Goodbye")
		return
	}

	a.transcript.Append("Signing Out...")

	a.session = nil
	a.client.ClearTokens()
	if err := a.store.ClearSession(ctx); err != nil {
		a.transcript.Append("Warning: could not clear saved session")
	}

	a.transcript.Append("Goodbye")
}

func (a *App) cmdWhoAmI(_ context.Context, _ *Command) {
	if a.isSignedIn() {
		a.transcript.Append("You are " + a.displayName())
	} else {
		a.transcript.Append("You are not signed in")
	}
}

// cmdUsername claims or changes the public handle used for messaging.
func (a *App) cmdUsername(ctx context.Context, cmd *Command) {
	if !a.isSignedIn() {
		a.transcript.Append("You are not signed in")
		return
	}

	if len(cmd.Args) < 2 || (cmd.Args[0] != "-create" && cmd.Args[0] != "-edit") {
		a.transcript.Append("Usage: username -create <name> | username -edit <name>")
		return
	}

	name := stripQuotes(cmd.Args[1])

	if err := a.client.SetUsername(ctx, name); err != nil {
		if errors.Is(err, common.ErrorConflict) {
			a.transcript.Append("Username already taken")
		} else {
			a.transcript.Append("Error: " + err.Error())
		}
		return
	}

	a.session.Username = name
	if err := a.store.SaveSession(ctx, a.session); err != nil {
		a.transcript.Append("Warning: could not save session")
	}

	a.transcript.Append("Username set to " + name)
}
