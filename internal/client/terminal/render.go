package terminal

import (
	"fmt"
	"strconv"
)

const ansiReset = "\x1b[0m"

// ansiColor converts a "#RRGGBB" preference into a truecolor escape, or ""
// when the color cannot be parsed.
func ansiColor(hex string) string {
	if !hexColorRe.MatchString(hex) {
		return ""
	}

	r, _ := strconv.ParseUint(hex[1:3], 16, 8)
	g, _ := strconv.ParseUint(hex[3:5], 16, 8)
	b, _ := strconv.ParseUint(hex[5:7], 16, 8)

	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)
}

// renderNewLines prints the transcript lines appended since the given
// length. When a clear shrank the transcript, nothing new is printed.
func (a *App) renderNewLines(since int) {
	lines := a.transcript.Lines()
	if since > len(lines) {
		return
	}

	color := ansiColor(a.color)

	for i := since; i < len(lines); i++ {
		prefix := ""
		if a.showLines {
			prefix = fmt.Sprintf("%4d  ", i+1)
		}

		if color != "" {
			fmt.Fprintf(a.out, "%s%s%s%s\n", color, prefix, lines[i], ansiReset)
		} else {
			fmt.Fprintf(a.out, "%s%s\n", prefix, lines[i])
		}
	}
}
