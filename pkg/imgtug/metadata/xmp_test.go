package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXMPDescription(t *testing.T) {
	description, found, err := xmpDescription(xmpPacket("  hello world  "))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "hello world", description)

	_, found, err = xmpDescription(`<x:xmpmeta xmlns:x="adobe:ns:meta/"><rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"></rdf:RDF></x:xmpmeta>`)
	require.NoError(t, err)
	assert.False(t, found)

	_, _, err = xmpDescription("<rdf:RDF")
	assert.Error(t, err)
}

func TestXMPDescription_NestedElements(t *testing.T) {
	description, found, err := xmpDescription(xmpPacket("a cat <b>big</b> on a mat Steps: 20"))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "a cat big on a mat Steps: 20", description)
}

func TestParseGenerationText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Field
	}{
		{
			name: "prompt_and_parameters",
			text: "a cat Steps: 20, Size: 512x512",
			want: []Field{{"Prompt", "a cat"}, {"Steps", "20"}, {"Size", "512x512"}},
		},
		{
			name: "no_steps",
			text: "just a description",
			want: []Field{{"Description", "just a description"}},
		},
		{
			name: "entries_without_separator_are_skipped",
			text: "p Steps: 1, garbage, Seed: 2",
			want: []Field{{"Prompt", "p"}, {"Steps", "1"}, {"Seed", "2"}},
		},
		{
			name: "empty",
			text: "   ",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Metadata
			parseGenerationText(&m, tt.text)
			assert.Equal(t, tt.want, m.Fields)
		})
	}
}
