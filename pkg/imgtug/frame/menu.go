package frame

import (
	"fmt"
	"strings"
)

// MenuItem is one key binding shown in the help view.
type MenuItem struct {
	Title   string
	HotKeys []string
}

func (mi MenuItem) String() string {
	return fmt.Sprintf("%-12s %s", strings.Join(mi.HotKeys, "/"), mi.Title)
}

// HelpItems lists the key bindings of the browser in display order.
var HelpItems = []MenuItem{
	{Title: "Move selection up", HotKeys: []string{"↑", "k"}},
	{Title: "Move selection down", HotKeys: []string{"↓", "j"}},
	{Title: "First / last entry", HotKeys: []string{"Home", "End"}},
	{Title: "Open directory", HotKeys: []string{"Enter"}},
	{Title: "Parent directory", HotKeys: []string{"Backspace", "←"}},
	{Title: "Copy prompt to clipboard", HotKeys: []string{"y"}},
	{Title: "Toggle raw XMP", HotKeys: []string{"x"}},
	{Title: "Toggle help", HotKeys: []string{"?", "F1"}},
	{Title: "Quit", HotKeys: []string{"q", "Ctrl+C"}},
}

// DefaultStatusText is the legend of the status bar.
const DefaultStatusText = "Press ? for help, y to yank, q to quit."
