// Package logging configures the global logrus logger for a terminal UI,
// where stdout belongs to the renderer.
package logging

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup points the global logger at path, or discards output when path is empty.
// The returned closer releases the log file.
func Setup(path, level string) (io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{DisableColors: true, FullTimestamp: true})

	if path == "" {
		log.SetOutput(io.Discard)
		return nopCloser{}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return f, nil
}
