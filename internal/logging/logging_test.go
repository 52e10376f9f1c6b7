package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	logger, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logger == nil {
		t.Fatalf("expected logger instance")
	}
	_ = logger.Sync()
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(WithLevel("loud")); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scanner-map.log")

	logger, err := New(WithLevel("warn"), WithFile(path, 1, 1, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Info("filtered out")
	logger.Warn("kept in file")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "kept in file") {
		t.Fatalf("expected warn entry in log file, got %q", content)
	}
	if strings.Contains(content, "filtered out") {
		t.Fatalf("expected info entry to be filtered, got %q", content)
	}
	if !strings.Contains(content, `"timestamp"`) {
		t.Fatalf("expected ISO8601 timestamp key, got %q", content)
	}
}
