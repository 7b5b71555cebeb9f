package frame

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Wrap breaks text into lines of at most width display cells. Words are
// never split: a word wider than width gets a line of its own. Runs of
// whitespace collapse to a single space.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if width <= 0 {
		return []string{strings.Join(words, " ")}
	}
	var lines []string
	line := words[0]
	lineWidth := runewidth.StringWidth(line)
	for _, word := range words[1:] {
		wordWidth := runewidth.StringWidth(word)
		if lineWidth+1+wordWidth <= width {
			line += " " + word
			lineWidth += 1 + wordWidth
			continue
		}
		lines = append(lines, line)
		line, lineWidth = word, wordWidth
	}
	return append(lines, line)
}
