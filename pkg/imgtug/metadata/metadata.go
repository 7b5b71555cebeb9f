// Package metadata extracts descriptive fields embedded in image files:
// XMP packets and the generation parameters written by image generators.
package metadata

import (
	"fmt"
	"strings"
)

// Field is one key/value pair shown in the metadata pane.
type Field struct {
	Key   string
	Value string
}

func (f Field) String() string {
	return f.Key + ": " + f.Value
}

// Metadata is what is known about one image file.
type Metadata struct {
	Fields []Field

	Format string
	Width  int
	Height int
	Size   int64

	// RawXMP is the XMP packet as stored in the file, if any.
	RawXMP string
}

// Found reports whether any descriptive field was extracted.
func (m *Metadata) Found() bool {
	return m != nil && len(m.Fields) > 0
}

// Get returns the value of the first field named key.
func (m *Metadata) Get(key string) (string, bool) {
	if m == nil {
		return "", false
	}
	for _, f := range m.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

func (m *Metadata) add(key, value string) {
	key, value = strings.TrimSpace(key), strings.TrimSpace(value)
	if key == "" {
		return
	}
	m.Fields = append(m.Fields, Field{Key: key, Value: value})
}

// Dimensions describes the image, e.g. "PNG 512x768".
func (m *Metadata) Dimensions() string {
	if m == nil || m.Format == "" {
		return ""
	}
	return fmt.Sprintf("%s %dx%d", strings.ToUpper(m.Format), m.Width, m.Height)
}

// YankText is what gets copied to the clipboard: the prompt when there is
// one, otherwise every field on its own line.
func (m *Metadata) YankText() string {
	if prompt, ok := m.Get(PromptKey); ok {
		return prompt
	}
	if m == nil {
		return ""
	}
	lines := make([]string, len(m.Fields))
	for i, f := range m.Fields {
		lines[i] = f.String()
	}
	return strings.Join(lines, "\n")
}

// ParseError reports a metadata block that is present but unreadable.
type ParseError struct {
	Path  string
	Block string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s metadata of %s: %v", e.Block, e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
