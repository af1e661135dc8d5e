package cli

import (
	"os"

	"golang.org/x/term"
)

// colorEnabled decides whether alert escapes are written. Precedence:
// --no-color, then NO_COLOR (any non-empty value), then TERM=dumb, then
// whether out is a terminal.
func colorEnabled(noColor bool, getenv func(string) string, out any) bool {
	if noColor {
		return false
	}
	if getenv("NO_COLOR") != "" {
		return false
	}
	if getenv("TERM") == "dumb" {
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
