package utils

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		wantDebug bool
	}{
		{"production drops debug", false, false},
		{"debug keeps debug", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var file, console bytes.Buffer
			log := newLogger(AppConfig{Name: "studio-test", Debug: tt.debug}, &file, &console)

			log.Debug("debug line")
			log.Info("booking created")

			lines := strings.Split(strings.TrimSpace(file.String()), "\n")
			var last map[string]any
			if err := json.Unmarshal([]byte(lines[len(lines)-1]), &last); err != nil {
				t.Fatalf("file sink is not JSON: %v (%q)", err, file.String())
			}
			if last["msg"] != "booking created" || last["app"] != "studio-test" {
				t.Errorf("entry = %v", last)
			}
			if _, ok := last["timestamp"]; !ok {
				t.Errorf("entry missing timestamp: %v", last)
			}

			if got := strings.Contains(file.String(), "debug line"); got != tt.wantDebug {
				t.Errorf("debug entry written = %v, want %v", got, tt.wantDebug)
			}
			if !strings.Contains(console.String(), "booking created") {
				t.Errorf("console sink missing entry: %q", console.String())
			}
		})
	}
}

func TestLogFilename(t *testing.T) {
	if got := logFilename(AppConfig{LogPath: "logs/"}); got != filepath.Join("logs", "studio-site.log") {
		t.Errorf("logFilename() = %q", got)
	}
	if got := logFilename(AppConfig{LogPath: "/var/log/app", Name: "site"}); got != "/var/log/app/site.log" {
		t.Errorf("logFilename() = %q", got)
	}
}
