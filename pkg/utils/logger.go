package utils

import (
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// SetupLogging points logrus at path. The TUI owns the terminal, so logs
// never go to stdout. An empty path discards everything.
func SetupLogging(level, path string) (io.Closer, error) {
	parsed, err := log.ParseLevel(level)
	if err != nil {
		log.WithField("logLevel", level).WithError(err).Warn("Incorrect log level. Using INFO instead.")
		parsed = log.InfoLevel
	}
	log.SetLevel(parsed)
	log.SetFormatter(&log.TextFormatter{DisableColors: true, FullTimestamp: true})

	if path == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return f, nil
}
