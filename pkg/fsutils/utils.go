package fsutils

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Decoder decodes
type Decoder interface {
	Decode(o any) error
}

type tomlDecoder struct {
	d *toml.Decoder
}

func (t tomlDecoder) Decode(o any) error {
	_, err := t.d.Decode(o)
	return err
}

func NewJSONDecoder(r io.Reader) Decoder {
	return json.NewDecoder(r)
}

func NewYAMLDecoder(r io.Reader) Decoder {
	return yaml.NewDecoder(r)
}

func NewTOMLDecoder(r io.Reader) Decoder {
	return tomlDecoder{d: toml.NewDecoder(r)}
}

// DecoderFor picks a decoder factory by file extension.
func DecoderFor(filePath string) (func(r io.Reader) Decoder, error) {
	switch ext := strings.ToLower(filepath.Ext(filePath)); ext {
	case ".yaml", ".yml":
		return NewYAMLDecoder, nil
	case ".toml":
		return NewTOMLDecoder, nil
	case ".json":
		return NewJSONDecoder, nil
	default:
		return nil, fmt.Errorf("unsupported config file extension %q", ext)
	}
}

// ReadConfigFile decodes filePath with the decoder matching its extension.
func ReadConfigFile(filePath string, required bool, o any) error {
	newDecoder, err := DecoderFor(filePath)
	if err != nil {
		return err
	}
	return ReadFile(filePath, required, o, newDecoder)
}

func ReadFile(filePath string, required bool, o any, newDecoder func(r io.Reader) Decoder) (err error) {
	var file *os.File
	if file, err = os.Open(filePath); err != nil {
		if os.IsNotExist(err) && !required {
			err = nil
		}
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close file %v: %w", filePath, closeErr)
		}
	}()
	decoder := newDecoder(file)
	if err = decoder.Decode(o); err != nil {
		if err == io.EOF {
			// empty file
			return nil
		}
		return fmt.Errorf("failed to decode %v: %w", filePath, err)
	}
	return nil
}

func DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err // some other error
	}
	return info.IsDir(), nil
}

var osUserHomeDir = os.UserHomeDir

// ExpandHome expands leading ~ to the user's home directory.
func ExpandHome(p string) string {
	if p == "" {
		return p
	}
	if strings.HasPrefix(p, "~/") || p == "~" {
		home, err := osUserHomeDir()
		if err == nil {
			if p == "~" {
				return home
			}
			return filepath.Join(home, strings.TrimPrefix(p, "~/"))
		}
	}
	return p
}
