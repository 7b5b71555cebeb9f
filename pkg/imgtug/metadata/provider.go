package metadata

import (
	"bufio"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Provider extracts metadata of one image file.
type Provider interface {
	Extract(path string) (*Metadata, error)
}

var _ Provider = (*FileProvider)(nil)

// FileProvider reads metadata straight from image files.
type FileProvider struct{}

func NewFileProvider() *FileProvider {
	return &FileProvider{}
}

var osOpen = os.Open

// Extract always returns a non-nil Metadata when the file can be opened.
// A malformed metadata block is reported as *ParseError next to whatever
// was read before the failure.
func (p *FileProvider) Extract(path string) (*Metadata, error) {
	f, err := osOpen(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	m := &Metadata{}
	if info, statErr := f.Stat(); statErr == nil {
		m.Size = info.Size()
	}
	if cfg, format, cfgErr := image.DecodeConfig(bufio.NewReader(f)); cfgErr == nil {
		m.Format, m.Width, m.Height = format, cfg.Width, cfg.Height
	}
	if _, err = f.Seek(0, io.SeekStart); err != nil {
		return m, fmt.Errorf("rewind %s: %w", path, err)
	}

	r := bufio.NewReader(f)
	head, _ := r.Peek(len(pngSignature))
	switch {
	case string(head) == pngSignature:
		return m, p.extractPNG(m, path, r)
	case len(head) >= 2 && head[0] == 0xFF && head[1] == 0xD8:
		return m, p.extractJPEG(m, path, r)
	default:
		return m, nil
	}
}

// extractPNG prefers the XMP packet and falls back to the "parameters"
// text chunk.
func (p *FileProvider) extractPNG(m *Metadata, path string, r io.Reader) error {
	chunks, err := readPNGTextChunks(r)
	var xmpPacket, parameters string
	for _, chunk := range chunks {
		switch {
		case chunk.Keyword == xmpKeyword && xmpPacket == "":
			xmpPacket = chunk.Text
		case strings.EqualFold(chunk.Keyword, parametersKeyword) && parameters == "":
			parameters = chunk.Text
		}
	}
	if xmpPacket != "" {
		if xmpErr := parseXMP(m, xmpPacket); xmpErr != nil {
			return &ParseError{Path: path, Block: "XMP", Err: xmpErr}
		}
	}
	if !m.Found() && parameters != "" {
		parseGenerationText(m, parameters)
	}
	if err != nil {
		return &ParseError{Path: path, Block: "PNG", Err: err}
	}
	return nil
}

func (p *FileProvider) extractJPEG(m *Metadata, path string, r io.Reader) error {
	packet, err := readJPEGXMP(r)
	if err != nil {
		return &ParseError{Path: path, Block: "JPEG", Err: err}
	}
	if packet == "" {
		return nil
	}
	if err = parseXMP(m, packet); err != nil {
		return &ParseError{Path: path, Block: "XMP", Err: err}
	}
	return nil
}
