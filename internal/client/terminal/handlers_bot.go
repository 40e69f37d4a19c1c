package terminal

import (
	"context"
	"fmt"
	"strings"
)

// cmdBot handles "bot ask <question>", proxied through the backend to the
// completion endpoint.
func (a *App) cmdBot(ctx context.Context, cmd *Command) {
	if len(cmd.Args) < 1 || cmd.Args[0] != "ask" {
		a.transcript.Append("Usage: bot ask <question>")
		return
	}

	question := strings.Join(cmd.Args[1:], " ")
	if question == "" {
		a.transcript.Append("Missing question")
		return
	}

	a.transcript.Append("Thinking...")

	answer, err := a.client.Ask(ctx, question)
	if err != nil {
		a.transcript.Append("Error: " + err.Error())
		return
	}

	a.transcript.Append(answer)
}

func (a *App) cmdDraw(ctx context.Context, cmd *Command) {
	if cmd.ArgText == "" {
		a.transcript.Append("Missing prompt")
		return
	}

	a.transcript.Append("Drawing...")

	lines, err := a.client.Draw(ctx, cmd.ArgText)
	if err != nil {
		a.transcript.Append("Error: " + err.Error())
		return
	}

	a.transcript.Append(lines...)
}

func (a *App) cmdStock(ctx context.Context, cmd *Command) {
	if cmd.ArgText == "" {
		a.transcript.Append("Missing ticker symbol")
		return
	}

	symbol := strings.ToUpper(cmd.Args[0])

	q, err := a.client.StockQuote(ctx, symbol)
	if err != nil {
		a.transcript.Append(fmt.Sprintf("No data for %s", symbol))
		return
	}

	a.transcript.Append(
		fmt.Sprintf("%s (%s)", q.Symbol, q.Date),
		fmt.Sprintf("  Open: %s  High: %s  Low: %s  Close: %s  Volume: %s",
			q.Open, q.High, q.Low, q.Close, q.Volume),
	)
}
