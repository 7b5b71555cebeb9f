// Package chroma2tcell turns chroma token streams into text with tview
// color tags, ready for tview.Print.
package chroma2tcell

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/rivo/tview"
)

const DefaultStyle = "dracula"

var getStyle = styles.Get

var getFallbackStyle = func() *chroma.Style {
	return styles.Fallback
}

// ColorizeLines highlights text and splits the result into lines. Every
// line carries balanced color tags so lines can be printed one by one.
func ColorizeLines(text, styleName string, lexer chroma.Lexer) ([]string, error) {
	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return nil, err
	}

	style := getStyle(styleName)
	if style == nil {
		style = getFallbackStyle()
	}

	lines := []string{""}
	var sb strings.Builder
	write := func(value, colorText string) {
		value = tview.Escape(value)
		if colorText == "" {
			sb.WriteString(value)
			return
		}
		sb.WriteString("[" + colorText + "]")
		sb.WriteString(value)
		sb.WriteString("[-]")
	}
	for _, token := range iterator.Tokens() {
		var colorText string
		if color := style.Get(token.Type); !color.IsZero() && color.Colour.IsSet() {
			colorText = color.Colour.String()
		}
		parts := strings.Split(token.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				lines[len(lines)-1] = sb.String()
				sb.Reset()
				lines = append(lines, "")
			}
			if part != "" {
				write(part, colorText)
			}
		}
	}
	lines[len(lines)-1] = sb.String()
	if text == "" || strings.HasSuffix(text, "\n") {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

// ColorizeXML highlights an XML document, e.g. an XMP packet.
func ColorizeXML(xml, styleName string, getLexer func(string) chroma.Lexer) ([]string, error) {
	lexer := getLexer("xml")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	if styleName == "" {
		styleName = DefaultStyle
	}
	return ColorizeLines(xml, styleName, lexer)
}
