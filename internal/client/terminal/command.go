package terminal

import "strings"

// Command is one parsed input line. Name is case-folded; Args keep their
// original casing. ArgText is the argument tail joined by single spaces.
type Command struct {
	Name    string
	Args    []string
	ArgText string
}

// ParseCommand splits a line on whitespace. An empty or blank line yields a
// Command with an empty Name, which dispatch reports as unknown.
func ParseCommand(line string) *Command {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return &Command{}
	}

	return &Command{
		Name:    strings.ToLower(fields[0]),
		Args:    fields[1:],
		ArgText: strings.Join(fields[1:], " "),
	}
}

// stripQuotes removes one pair of surrounding double quotes, matching how
// bookmark and macro names may be entered.
func stripQuotes(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}
