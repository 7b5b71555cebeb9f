package metadata

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const pngSignature = "\x89PNG\r\n\x1a\n"

const (
	xmpKeyword        = "XML:com.adobe.xmp"
	parametersKeyword = "parameters"
)

// maxTextChunk bounds the text chunks we are willing to hold in memory.
const maxTextChunk = 8 << 20

// textChunk is a decoded tEXt, zTXt or iTXt chunk.
type textChunk struct {
	Keyword string
	Text    string
}

// readPNGTextChunks walks the chunks of a PNG stream and returns its text
// chunks. Image data chunks are skipped without being read into memory.
func readPNGTextChunks(r io.Reader) ([]textChunk, error) {
	signature := make([]byte, len(pngSignature))
	if _, err := io.ReadFull(r, signature); err != nil {
		return nil, fmt.Errorf("read signature: %w", err)
	}
	if string(signature) != pngSignature {
		return nil, errors.New("not a PNG file")
	}
	var chunks []textChunk
	header := make([]byte, 8)
	for {
		if _, err := io.ReadFull(r, header); err != nil {
			if errors.Is(err, io.EOF) {
				return chunks, nil
			}
			return chunks, fmt.Errorf("read chunk header: %w", err)
		}
		length := binary.BigEndian.Uint32(header[:4])
		chunkType := string(header[4:8])
		switch chunkType {
		case "tEXt", "zTXt", "iTXt":
			if length > maxTextChunk {
				return chunks, fmt.Errorf("%s chunk too large: %d bytes", chunkType, length)
			}
			data := make([]byte, length)
			if _, err := io.ReadFull(r, data); err != nil {
				return chunks, fmt.Errorf("read %s chunk: %w", chunkType, err)
			}
			chunk, err := decodeTextChunk(chunkType, data)
			if err != nil {
				return chunks, err
			}
			chunks = append(chunks, chunk)
			if _, err := io.CopyN(io.Discard, r, 4); err != nil {
				return chunks, fmt.Errorf("read %s crc: %w", chunkType, err)
			}
		case "IEND":
			return chunks, nil
		default:
			if _, err := io.CopyN(io.Discard, r, int64(length)+4); err != nil {
				return chunks, fmt.Errorf("skip %s chunk: %w", chunkType, err)
			}
		}
	}
}

func decodeTextChunk(chunkType string, data []byte) (textChunk, error) {
	keyword, rest, ok := bytes.Cut(data, []byte{0})
	if !ok {
		return textChunk{}, fmt.Errorf("%s chunk without keyword terminator", chunkType)
	}
	chunk := textChunk{Keyword: string(keyword)}
	switch chunkType {
	case "tEXt":
		chunk.Text = latin1ToUTF8(rest)
	case "zTXt":
		if len(rest) < 1 {
			return chunk, errors.New("zTXt chunk without compression method")
		}
		text, err := inflate(rest[1:])
		if err != nil {
			return chunk, fmt.Errorf("zTXt %q: %w", chunk.Keyword, err)
		}
		chunk.Text = latin1ToUTF8(text)
	case "iTXt":
		if len(rest) < 2 {
			return chunk, errors.New("iTXt chunk too short")
		}
		compressed := rest[0] == 1
		rest = rest[2:]
		// language tag, then translated keyword
		for i := 0; i < 2; i++ {
			var found bool
			if _, rest, found = bytes.Cut(rest, []byte{0}); !found {
				return chunk, fmt.Errorf("iTXt %q: truncated header", chunk.Keyword)
			}
		}
		if compressed {
			text, err := inflate(rest)
			if err != nil {
				return chunk, fmt.Errorf("iTXt %q: %w", chunk.Keyword, err)
			}
			rest = text
		}
		chunk.Text = string(rest)
	}
	return chunk, nil
}

func inflate(data []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = zr.Close()
	}()
	return io.ReadAll(io.LimitReader(zr, maxTextChunk))
}

func latin1ToUTF8(b []byte) string {
	runes := make([]rune, len(b))
	for i, c := range b {
		runes[i] = rune(c)
	}
	return string(runes)
}
