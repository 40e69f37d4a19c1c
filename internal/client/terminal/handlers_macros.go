package terminal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/omccomas/terminal/internal/common"
)

// cmdMacro covers macro -create, macro -ls, macro -rm, and "macro <name>"
// which replays the stored steps through the interpreter.
func (a *App) cmdMacro(ctx context.Context, cmd *Command) {
	if !a.isSignedIn() {
		a.transcript.Append("You are not signed in")
		return
	}

	if len(cmd.Args) == 0 {
		a.transcript.Append("Usage: macro -create <name> <step> - <step> ... | macro -ls | macro -rm <name> | macro <name>")
		return
	}

	switch cmd.Args[0] {
	case "-create":
		a.macroCreate(ctx, cmd.Args[1:])
	case "-ls":
		a.macroList(ctx)
	case "-rm":
		a.macroRemove(ctx, cmd.Args[1:])
	default:
		a.macroRun(ctx, stripQuotes(strings.Join(cmd.Args, " ")))
	}
}

// parseMacroSteps splits the step text on the " - " delimiter, so flags
// inside a step (bm -ls) survive.
func parseMacroSteps(text string) []string {
	var steps []string
	for _, step := range strings.Split(text, " - ") {
		step = strings.TrimSpace(step)
		if step != "" {
			steps = append(steps, step)
		}
	}
	return steps
}

func (a *App) macroCreate(ctx context.Context, args []string) {
	if len(args) < 1 {
		a.transcript.Append("Missing macro name")
		return
	}
	if len(args) < 2 {
		a.transcript.Append("Missing macro steps")
		return
	}

	name := stripQuotes(args[0])
	steps := parseMacroSteps(strings.Join(args[1:], " "))
	if len(steps) == 0 {
		a.transcript.Append("Missing macro steps")
		return
	}

	m, err := a.client.CreateMacro(ctx, name, steps)
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			a.transcript.Append(fmt.Sprintf("A macro named '%s' already exists", name))
		} else {
			a.transcript.Append("Error: " + err.Error())
		}
		return
	}

	a.transcript.Append(fmt.Sprintf("Macro '%s' saved with %d steps", m.Name, len(m.Steps)))
}

func (a *App) macroList(ctx context.Context) {
	list, err := a.client.ListMacros(ctx)
	if err != nil {
		a.transcript.Append("Error: " + err.Error())
		return
	}

	if len(list) == 0 {
		a.transcript.Append("You have no macros")
		return
	}

	a.transcript.Append("Your macros:")
	for _, m := range list {
		a.transcript.Append(fmt.Sprintf("  %s: %s", m.Name, strings.Join(m.Steps, " - ")))
	}
}

func (a *App) macroRemove(ctx context.Context, args []string) {
	if len(args) < 1 {
		a.transcript.Append("Missing macro name")
		return
	}

	name := stripQuotes(args[0])

	if err := a.client.RemoveMacro(ctx, name); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			a.transcript.Append(fmt.Sprintf("Macro '%s' not found", name))
		} else {
			a.transcript.Append("Error: " + err.Error())
		}
		return
	}

	a.transcript.Append(fmt.Sprintf("Macro '%s' removed", name))
}

// macroRun replays each stored step through Execute with the configured
// delay. Depth is capped so a macro that invokes itself terminates.
func (a *App) macroRun(ctx context.Context, name string) {
	if a.macroDepth >= maxMacroDepth {
		a.transcript.Append("Macro nesting too deep")
		return
	}

	m, err := a.client.GetMacro(ctx, name)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			a.transcript.Append(fmt.Sprintf("Macro '%s' not found", name))
		} else {
			a.transcript.Append("Error: " + err.Error())
		}
		return
	}

	a.transcript.Append(fmt.Sprintf("Running macro '%s'", m.Name))

	a.macroDepth++
	defer func() { a.macroDepth-- }()

	for i, step := range m.Steps {
		if i > 0 {
			a.sleep()
		}
		a.Execute(ctx, step)
	}
}
