// Package logging configures the application logger. The TUI owns the
// terminal, so logs are written to a file; anything that fails to open
// degrades to a nop logger rather than breaking the app.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const envLogPath = "PATHWISE_LOG"

// Open builds a JSON file logger at path, creating parent directories
// as needed. On failure it returns a nop logger alongside the error so
// callers can keep going.
func Open(path string) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zap.NewNop(), fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zap.NewNop(), fmt.Errorf("open log file: %w", err)
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(f),
		zapcore.InfoLevel,
	)
	return zap.New(core), nil
}

// DefaultLogPath returns the log file location: $PATHWISE_LOG if set,
// otherwise the user cache directory.
func DefaultLogPath() string {
	if p := os.Getenv(envLogPath); p != "" {
		return p
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return "pathwise.log"
	}
	return filepath.Join(dir, "pathwise", "pathwise.log")
}
