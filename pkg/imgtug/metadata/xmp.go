package metadata

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

const (
	nsRDF = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	nsDC  = "http://purl.org/dc/elements/1.1/"
)

// xmpDescriptionPath is rdf:RDF/rdf:Description/dc:description/rdf:Alt/rdf:li
// relative to the packet root.
var xmpDescriptionPath = []xml.Name{
	{Space: nsRDF, Local: "RDF"},
	{Space: nsRDF, Local: "Description"},
	{Space: nsDC, Local: "description"},
	{Space: nsRDF, Local: "Alt"},
	{Space: nsRDF, Local: "li"},
}

// xmpDescription returns the text of the first dc:description alternative
// of an XMP packet. found is false when the packet has no description.
func xmpDescription(packet string) (description string, found bool, err error) {
	decoder := xml.NewDecoder(strings.NewReader(packet))
	decoder.Strict = false
	var stack []xml.Name
	var sb strings.Builder
	// stack depth of the matched rdf:li, 0 while outside of it
	targetDepth := 0
	for {
		token, tokenErr := decoder.Token()
		if tokenErr != nil {
			if errors.Is(tokenErr, io.EOF) {
				break
			}
			return "", false, tokenErr
		}
		switch t := token.(type) {
		case xml.StartElement:
			stack = append(stack, t.Name)
			if targetDepth == 0 && matchesPath(stack) {
				targetDepth = len(stack)
			}
		case xml.EndElement:
			if targetDepth > 0 && len(stack) == targetDepth {
				return strings.TrimSpace(sb.String()), true, nil
			}
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			if targetDepth > 0 {
				sb.Write(t)
			}
		}
	}
	if len(stack) > 0 && targetDepth == 0 {
		return "", false, errors.New("unexpected end of XMP packet")
	}
	return "", false, nil
}

// matchesPath reports whether the element stack ends with the description
// path; the packet root (x:xmpmeta) may or may not be present.
func matchesPath(stack []xml.Name) bool {
	if len(stack) < len(xmpDescriptionPath) {
		return false
	}
	tail := stack[len(stack)-len(xmpDescriptionPath):]
	for i, name := range xmpDescriptionPath {
		if tail[i] != name {
			return false
		}
	}
	return true
}

// parseXMP adds the fields found in an XMP packet to m.
func parseXMP(m *Metadata, packet string) error {
	m.RawXMP = packet
	description, found, err := xmpDescription(packet)
	if err != nil {
		return err
	}
	if found {
		parseGenerationText(m, description)
	}
	return nil
}
