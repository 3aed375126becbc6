package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestSetup_WritesToFile(t *testing.T) {
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetLevel(log.InfoLevel)
	})
	path := filepath.Join(t.TempDir(), "timeline.log")

	closer, err := Setup(path, "debug")
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	log.WithField("task", "task-1").Debug("focus moved")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	if !strings.Contains(got, "focus moved") || !strings.Contains(got, "task=task-1") {
		t.Errorf("log file missing entry: %q", got)
	}
}

func TestSetup_DiscardWithoutPath(t *testing.T) {
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	closer, err := Setup("", "warn")
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if log.GetLevel() != log.WarnLevel {
		t.Errorf("level = %v, want warn", log.GetLevel())
	}
	if err := closer.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestSetup_BadLevel(t *testing.T) {
	if _, err := Setup("", "chatty"); err == nil {
		t.Error("expected error for bad level")
	}
}

func TestSetup_BadPath(t *testing.T) {
	if _, err := Setup(filepath.Join(t.TempDir(), "missing", "x.log"), "info"); err == nil {
		t.Error("expected error for unwritable path")
	}
}
