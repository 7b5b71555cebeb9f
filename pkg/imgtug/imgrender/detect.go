package imgrender

import (
	"os"
	"strings"
)

var osGetenv = os.Getenv

// Detect picks a renderer from the environment of the hosting terminal.
// Only cheap environment checks are made, no terminal queries.
func Detect() Kind {
	switch strings.ToLower(osGetenv("TERM_PROGRAM")) {
	case "kitty", "ghostty":
		return KindKitty
	case "iterm.app", "wezterm":
		return KindITerm2
	}
	term := osGetenv("TERM")
	switch {
	case term == "xterm-kitty", term == "xterm-ghostty":
		return KindKitty
	case strings.Contains(term, "sixel"), strings.HasPrefix(term, "foot"), term == "mlterm":
		return KindSixel
	}
	if osGetenv("KITTY_WINDOW_ID") != "" {
		return KindKitty
	}
	if osGetenv("ITERM_SESSION_ID") != "" || osGetenv("LC_TERMINAL") == "iTerm2" || osGetenv("WEZTERM_EXECUTABLE") != "" {
		return KindITerm2
	}
	return KindHalfblocks
}
