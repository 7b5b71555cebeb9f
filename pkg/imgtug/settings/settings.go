// Package settings maps the optional config file of imgtug to runtime
// values.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/datatug/imgtug/pkg/fsutils"
	"github.com/datatug/imgtug/pkg/imgtug/frame"
	"github.com/datatug/imgtug/pkg/imgtug/imgrender"
	"github.com/datatug/imgtug/pkg/imgtug/masks"
)

const UserDir = "~/.imgtug"

// configFileNames are probed in order when no config file is given.
var configFileNames = []string{"config.yaml", "config.yml", "config.toml", "config.json"}

var osUserHomeDir = os.UserHomeDir

// Settings are loaded once at start up.
type Settings struct {
	// Messages maps a base file name to the text shown below its metadata.
	Messages      map[string]string `yaml:"messages" toml:"messages" json:"messages"`
	ImagePatterns []string          `yaml:"image_patterns" toml:"image_patterns" json:"image_patterns"`
	Renderer      string            `yaml:"renderer" toml:"renderer" json:"renderer"`
	StatusText    string            `yaml:"status_text" toml:"status_text" json:"status_text"`
	LogFile       string            `yaml:"log_file" toml:"log_file" json:"log_file"`
	LogLevel      string            `yaml:"log_level" toml:"log_level" json:"log_level"`
	XMLStyle      string            `yaml:"xml_style" toml:"xml_style" json:"xml_style"`
}

// DefaultMessages is used when the config file has no messages section.
func DefaultMessages() map[string]string {
	return map[string]string{
		"00001.png":  "this is the image of a cat.",
		"image2.png": "Message for Image 2",
	}
}

func Default() Settings {
	return Settings{
		Messages:      DefaultMessages(),
		ImagePatterns: append([]string(nil), masks.DefaultImagePatterns...),
		Renderer:      string(imgrender.KindAuto),
		StatusText:    frame.DefaultStatusText,
		LogLevel:      "info",
		XMLStyle:      "dracula",
	}
}

// GetUserDir returns the absolute path of UserDir.
func GetUserDir() (string, error) {
	userHomeDir, err := osUserHomeDir()
	if err != nil {
		return UserDir, err
	}
	return filepath.Join(userHomeDir, UserDir[2:]), nil
}

// Load reads the config file at path over the defaults. With an empty path
// the first existing config file of the user directory is used, if any.
// An explicitly given file must exist.
func Load(path string) (Settings, error) {
	s := Default()
	required := path != ""
	if path == "" {
		var err error
		if path, err = findConfigFile(); err != nil || path == "" {
			return s, err
		}
	}
	path = fsutils.ExpandHome(path)
	var fromFile Settings
	if err := fsutils.ReadConfigFile(path, required, &fromFile); err != nil {
		return s, fmt.Errorf("failed to load settings: %w", err)
	}
	s.merge(fromFile)
	return s, s.Validate()
}

func findConfigFile() (string, error) {
	dir, err := GetUserDir()
	if err != nil {
		// no home directory, run with defaults
		return "", nil
	}
	exists, err := fsutils.DirExists(dir)
	if err != nil {
		return "", fmt.Errorf("failed to check user dir %s: %w", dir, err)
	}
	if !exists {
		return "", nil
	}
	for _, name := range configFileNames {
		p := filepath.Join(dir, name)
		info, statErr := os.Stat(p)
		if statErr == nil && !info.IsDir() {
			return p, nil
		}
		if statErr != nil && !os.IsNotExist(statErr) {
			return "", fmt.Errorf("failed to check config file %s: %w", p, statErr)
		}
	}
	return "", nil
}

func (s *Settings) merge(o Settings) {
	if o.Messages != nil {
		s.Messages = o.Messages
	}
	if len(o.ImagePatterns) > 0 {
		s.ImagePatterns = o.ImagePatterns
	}
	if o.Renderer != "" {
		s.Renderer = o.Renderer
	}
	if o.StatusText != "" {
		s.StatusText = o.StatusText
	}
	if o.LogFile != "" {
		s.LogFile = o.LogFile
	}
	if o.LogLevel != "" {
		s.LogLevel = o.LogLevel
	}
	if o.XMLStyle != "" {
		s.XMLStyle = o.XMLStyle
	}
}

// Validate checks the values that are parsed later on.
func (s Settings) Validate() error {
	if _, err := s.RendererKind(); err != nil {
		return err
	}
	if _, err := s.Mask(); err != nil {
		return err
	}
	if _, err := parseLevel(s.LogLevel); err != nil {
		return err
	}
	return nil
}

func (s Settings) RendererKind() (imgrender.Kind, error) {
	return imgrender.ParseKind(s.Renderer)
}

// Mask compiles ImagePatterns, e.g. ["*.png", "*.jpg", "!*.thumb.png"].
func (s Settings) Mask() (*masks.Mask, error) {
	if len(s.ImagePatterns) == 0 {
		return masks.Images(), nil
	}
	return masks.NewMask("Images", s.ImagePatterns...)
}
