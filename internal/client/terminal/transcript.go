package terminal

import "sync"

// Transcript is the ordered, append-only history of display lines. Handlers
// only ever append; the clear command replaces the whole sequence with an
// empty one. The mutex covers appends scheduled from replayed macro steps.
type Transcript struct {
	mu    sync.Mutex
	lines []string
}

func NewTranscript() *Transcript {
	return &Transcript{}
}

func (t *Transcript) Append(lines ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lines = append(t.lines, lines...)
}

func (t *Transcript) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lines = nil
}

// Lines returns a copy of the transcript.
func (t *Transcript) Lines() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.lines))
	copy(out, t.lines)
	return out
}

func (t *Transcript) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.lines)
}

// Last returns up to n trailing lines in display order.
func (t *Transcript) Last(n int) []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if n <= 0 {
		return nil
	}
	if n > len(t.lines) {
		n = len(t.lines)
	}
	out := make([]string, n)
	copy(out, t.lines[len(t.lines)-n:])
	return out
}
