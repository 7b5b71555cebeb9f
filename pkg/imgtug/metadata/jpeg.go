package metadata

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const jpegXMPHeader = "http://ns.adobe.com/xap/1.0/\x00"

// readJPEGXMP returns the XMP packet stored in an APP1 segment, or "" if the
// file has none. Scanning stops at the start of the compressed image data.
func readJPEGXMP(r io.Reader) (string, error) {
	marker := make([]byte, 2)
	if _, err := io.ReadFull(r, marker); err != nil {
		return "", fmt.Errorf("read SOI: %w", err)
	}
	if marker[0] != 0xFF || marker[1] != 0xD8 {
		return "", errors.New("not a JPEG file")
	}
	for {
		if _, err := io.ReadFull(r, marker); err != nil {
			return "", fmt.Errorf("read marker: %w", err)
		}
		if marker[0] != 0xFF {
			return "", fmt.Errorf("invalid marker %#x", marker[0])
		}
		// any number of 0xFF fill bytes may precede the marker code
		for marker[1] == 0xFF {
			if _, err := io.ReadFull(r, marker[1:]); err != nil {
				return "", fmt.Errorf("read marker: %w", err)
			}
		}
		switch code := marker[1]; {
		case code == 0xD9 || code == 0xDA:
			// EOI or start of scan
			return "", nil
		case code == 0x01 || (code >= 0xD0 && code <= 0xD7):
			// markers without a length
			continue
		}
		lengthBytes := make([]byte, 2)
		if _, err := io.ReadFull(r, lengthBytes); err != nil {
			return "", fmt.Errorf("read segment length: %w", err)
		}
		length := int(binary.BigEndian.Uint16(lengthBytes)) - 2
		if length < 0 {
			return "", fmt.Errorf("invalid segment length %d", length+2)
		}
		if marker[1] != 0xE1 {
			if _, err := io.CopyN(io.Discard, r, int64(length)); err != nil {
				return "", fmt.Errorf("skip segment: %w", err)
			}
			continue
		}
		data := make([]byte, length)
		if _, err := io.ReadFull(r, data); err != nil {
			return "", fmt.Errorf("read APP1: %w", err)
		}
		if packet, ok := bytes.CutPrefix(data, []byte(jpegXMPHeader)); ok {
			return string(packet), nil
		}
	}
}
