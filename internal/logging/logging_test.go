package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewWritesStructuredLines(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "brickball", log.InfoLevel)

	logger.Info("game over", "score", 26)
	logger.Debug("hidden")

	out := buf.String()
	for _, want := range []string{"brickball", "game over", "score=26"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
	if strings.Contains(out, "hidden") {
		t.Error("debug line should be filtered at info level")
	}
}

func TestFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "brickball.log")
	logger, closer, err := File("brickball", FileOptions{Path: path, Level: "debug"})
	if err != nil {
		t.Fatalf("File() failed: %v", err)
	}

	logger.Debug("ball released", "tick", 180)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "tick=180") {
		t.Errorf("log file = %q, expected the debug line", data)
	}
}

func TestFileLoggerBadLevel(t *testing.T) {
	_, _, err := File("brickball", FileOptions{Path: filepath.Join(t.TempDir(), "x.log"), Level: "loud"})
	if err == nil {
		t.Fatal("expected an error for an unknown level")
	}
}
