package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects level, encoding and destination
// An empty File discards output, keeping the terminal free for the screen
type Config struct {
	Level  string
	Format string // "console" or "json"
	File   string
}

// New builds a zap logger from cfg
// Unknown levels fall back to info
func New(cfg Config) (*zap.Logger, error) {
	if cfg.File == "" {
		return zap.NewNop(), nil
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Sampling = nil
	zapConfig.DisableStacktrace = true

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)

	if cfg.Format == "json" {
		zapConfig.Encoding = "json"
	} else {
		zapConfig.Encoding = "console"
		zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	if dir := filepath.Dir(cfg.File); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log dir: %w", err)
		}
	}
	zapConfig.OutputPaths = []string{cfg.File}
	zapConfig.ErrorOutputPaths = []string{cfg.File}

	lg, err := zapConfig.Build(zap.AddCaller())
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return lg, nil
}

// OrNop returns lg, or a no-op logger when lg is nil
func OrNop(lg *zap.Logger) *zap.Logger {
	if lg == nil {
		return zap.NewNop()
	}
	return lg
}
