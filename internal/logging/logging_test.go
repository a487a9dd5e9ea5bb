package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level     string
		debugSeen bool
		wantErr   bool
	}{
		{"", false, false},
		{"info", false, false},
		{"debug", true, false},
		{"warn", false, false},
		{"chatty", false, true},
	}

	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := New(&buf, tc.level)
			if (err != nil) != tc.wantErr {
				t.Fatalf("New(%q) error = %v, wantErr %v", tc.level, err, tc.wantErr)
			}
			if err != nil {
				return
			}

			logger.Debug("probe")
			if got := strings.Contains(buf.String(), "probe"); got != tc.debugSeen {
				t.Errorf("debug line written = %v, expected %v", got, tc.debugSeen)
			}
		})
	}
}

func TestOpenFileMarkers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "spectrum.log")

	for run := 0; run < 2; run++ {
		logger, err := OpenFile(path, "info")
		if err != nil {
			t.Fatalf("OpenFile() failed: %v", err)
		}
		logger.Info("Run started", "difficulty", "easy")
		if err := logger.Close(); err != nil {
			t.Fatalf("Close() failed: %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	out := string(data)

	// Append mode keeps both sessions
	if n := strings.Count(out, "LAUNCHING"); n != 2 {
		t.Errorf("found %d launch markers, expected 2", n)
	}
	if n := strings.Count(out, "SHUTTING DOWN"); n != 2 {
		t.Errorf("found %d shutdown markers, expected 2", n)
	}
	if !strings.Contains(out, "difficulty=easy") {
		t.Errorf("structured field missing from log:\n%s", out)
	}
}
