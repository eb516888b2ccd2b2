package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lixenwraith/starlock/parameter"
)

// maxLogSize triggers rotation of the previous session's log
const maxLogSize = 10 * 1024 * 1024

// setupLogging opens <dir>/starlock.log when debug is set and returns a text logger over it.
// Without debug every record is discarded; the terminal owns stdout and stderr.
// The returned file is nil when logging is disabled.
func setupLogging(debug bool, dir string) (*slog.Logger, *os.File, error) {
	if !debug {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nil, nil
	}
	if dir == "" {
		dir = parameter.LogDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, parameter.LogFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		stem := strings.TrimSuffix(parameter.LogFileName, filepath.Ext(parameter.LogFileName))
		rotated := filepath.Join(dir, fmt.Sprintf("%s-%s.log", stem, time.Now().Format("20060102-150405")))
		if err := os.Rename(path, rotated); err != nil {
			return nil, nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, f, nil
}
