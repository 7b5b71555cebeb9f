package metadata

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func testImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x % 256), G: uint8(y % 256), B: 0, A: 255})
		}
	}
	return img
}

func pngChunk(chunkType string, data []byte) []byte {
	var b bytes.Buffer
	_ = binary.Write(&b, binary.BigEndian, uint32(len(data)))
	b.WriteString(chunkType)
	b.Write(data)
	crc := crc32.NewIEEE()
	crc.Write([]byte(chunkType))
	crc.Write(data)
	_ = binary.Write(&b, binary.BigEndian, crc.Sum32())
	return b.Bytes()
}

func iTXt(keyword, text string, compressed bool) []byte {
	var b bytes.Buffer
	b.WriteString(keyword)
	b.WriteByte(0)
	if compressed {
		b.Write([]byte{1, 0})
	} else {
		b.Write([]byte{0, 0})
	}
	b.WriteString("en")
	b.WriteByte(0)
	b.WriteByte(0)
	if compressed {
		zw := zlib.NewWriter(&b)
		_, _ = zw.Write([]byte(text))
		_ = zw.Close()
	} else {
		b.WriteString(text)
	}
	return pngChunk("iTXt", b.Bytes())
}

func tEXt(keyword, text string) []byte {
	return pngChunk("tEXt", append([]byte(keyword+"\x00"), text...))
}

// writePNG encodes a small PNG and inserts the given chunks before IEND.
func writePNG(t *testing.T, dir, name string, chunks ...[]byte) string {
	t.Helper()
	var encoded bytes.Buffer
	if err := png.Encode(&encoded, testImage(32, 16)); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	data := encoded.Bytes()
	iend := data[len(data)-12:]
	out := append([]byte{}, data[:len(data)-12]...)
	for _, chunk := range chunks {
		out = append(out, chunk...)
	}
	out = append(out, iend...)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, out, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// writeJPEG encodes a small JPEG with an optional XMP APP1 segment.
func writeJPEG(t *testing.T, dir, name, packet string) string {
	t.Helper()
	var encoded bytes.Buffer
	if err := jpeg.Encode(&encoded, testImage(20, 10), nil); err != nil {
		t.Fatalf("failed to encode jpeg: %v", err)
	}
	data := encoded.Bytes()
	out := append([]byte{}, data[:2]...)
	if packet != "" {
		payload := append([]byte(jpegXMPHeader), packet...)
		out = append(out, 0xFF, 0xE1)
		out = binary.BigEndian.AppendUint16(out, uint16(len(payload)+2))
		out = append(out, payload...)
	}
	out = append(out, data[2:]...)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, out, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func xmpPacket(description string) string {
	return `<?xpacket begin="" id="W5M0MpCehiHzreSzNTczkc9d"?>
<x:xmpmeta xmlns:x="adobe:ns:meta/">
 <rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#">
  <rdf:Description rdf:about="" xmlns:dc="http://purl.org/dc/elements/1.1/">
   <dc:description>
    <rdf:Alt>
     <rdf:li xml:lang="x-default">` + description + `</rdf:li>
    </rdf:Alt>
   </dc:description>
  </rdf:Description>
 </rdf:RDF>
</x:xmpmeta>
<?xpacket end="w"?>`
}
