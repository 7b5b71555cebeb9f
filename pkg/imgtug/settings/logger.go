package settings

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/datatug/imgtug/pkg/fsutils"
	"github.com/sirupsen/logrus"
)

var osOpenFile = os.OpenFile

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func parseLevel(level string) (logrus.Level, error) {
	if strings.TrimSpace(level) == "" {
		return logrus.InfoLevel, nil
	}
	l, err := logrus.ParseLevel(level)
	if err != nil {
		return l, fmt.Errorf("invalid log level: %w", err)
	}
	return l, nil
}

// NewLogger creates the application logger. The terminal belongs to the
// browser, so log records go to LogFile or nowhere. The returned closer
// must be called on exit.
func (s Settings) NewLogger() (*logrus.Logger, io.Closer, error) {
	level, err := parseLevel(s.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	log := logrus.New()
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	if s.LogFile == "" {
		log.SetOutput(io.Discard)
		return log, nopCloser{}, nil
	}
	path := fsutils.ExpandHome(s.LogFile)
	if dir := filepath.Dir(path); dir != "" {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	f, err := osOpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	return log, f, nil
}
