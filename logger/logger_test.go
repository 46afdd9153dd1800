package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewWithoutFileIsNop(t *testing.T) {
	lg, err := New(Config{Level: "debug"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if lg.Core().Enabled(zapcore.DebugLevel) {
		t.Error("Expected no-op core when no file is configured")
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "remote.log")

	lg, err := New(Config{Level: "debug", Format: "json", File: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	lg.Info("remote attached")
	_ = lg.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"remote attached"`) {
		t.Errorf("log file missing entry: %s", data)
	}
}

func TestNewUnknownLevelFallsBackToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "remote.log")
	lg, err := New(Config{Level: "chatty", File: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if lg.Core().Enabled(zapcore.DebugLevel) {
		t.Error("Expected debug disabled at fallback level")
	}
	if !lg.Core().Enabled(zapcore.InfoLevel) {
		t.Error("Expected info enabled at fallback level")
	}
}

func TestOrNop(t *testing.T) {
	if OrNop(nil) == nil {
		t.Error("Expected non-nil logger")
	}
}
