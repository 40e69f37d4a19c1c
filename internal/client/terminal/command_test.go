package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    *Command
		wantArg string
	}{
		{"simple", "help", &Command{Name: "help", Args: []string{}}, ""},
		{"case folded", "ECHO Hello", &Command{Name: "echo", Args: []string{"Hello"}}, "Hello"},
		{"multi arg", "echo  hello   world", &Command{Name: "echo", Args: []string{"hello", "world"}}, "hello world"},
		{"empty", "", &Command{}, ""},
		{"blank", "   ", &Command{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseCommand(tt.line)
			assert.Equal(t, tt.want.Name, got.Name)
			assert.Equal(t, tt.wantArg, got.ArgText)
			if len(tt.want.Args) > 0 {
				assert.Equal(t, tt.want.Args, got.Args)
			}
		})
	}
}

func TestStripQuotes(t *testing.T) {
	assert.Equal(t, "my name", stripQuotes(`"my name"`))
	assert.Equal(t, "plain", stripQuotes("plain"))
	assert.Equal(t, `"unbalanced`, stripQuotes(`"unbalanced`))
	assert.Equal(t, `"`, stripQuotes(`"`))
}

func TestTranscript_AppendAndLast(t *testing.T) {
	tr := NewTranscript()
	tr.Append("a", "b", "c")

	assert.Equal(t, 3, tr.Len())
	assert.Equal(t, []string{"b", "c"}, tr.Last(2))
	assert.Equal(t, []string{"a", "b", "c"}, tr.Last(10))
	assert.Empty(t, tr.Last(0))

	tr.Clear()
	assert.Zero(t, tr.Len())
}

func TestTranscript_LinesIsACopy(t *testing.T) {
	tr := NewTranscript()
	tr.Append("a")

	lines := tr.Lines()
	lines[0] = "mutated"

	assert.Equal(t, []string{"a"}, tr.Lines())
}

func TestLoadingBar(t *testing.T) {
	assert.Equal(t, 50, len([]rune(loadingBar(0))))
	assert.Equal(t, 50, len([]rune(loadingBar(100))))
	assert.NotContains(t, loadingBar(100), "░")
	assert.NotContains(t, loadingBar(0), "█")
	assert.Contains(t, loadingBar(50), "█")
	assert.Contains(t, loadingBar(50), "░")
}

func TestAnsiColor(t *testing.T) {
	assert.Equal(t, "\x1b[38;2;255;255;255m", ansiColor("#FFFFFF"))
	assert.Equal(t, "\x1b[38;2;0;255;0m", ansiColor("#00FF00"))
	assert.Empty(t, ansiColor("nope"))
}
