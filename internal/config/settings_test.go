package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write settings: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	s, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if *s != Default() {
		t.Errorf("Load(\"\") = %+v, want defaults", *s)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeSettings(t, `
ssh:
  port: "2323"
web:
  displayHost: play.example.com
log:
  level: debug
`)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if s.SSH.Port != "2323" {
		t.Errorf("ssh.port = %q, want 2323", s.SSH.Port)
	}
	if s.SSH.Host != Default().SSH.Host {
		t.Errorf("ssh.host = %q, want the default", s.SSH.Host)
	}
	if s.Web.DisplayHost != "play.example.com" {
		t.Errorf("web.displayHost = %q", s.Web.DisplayHost)
	}
	if s.Log.Level != "debug" {
		t.Errorf("log.level = %q, want debug", s.Log.Level)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeSettings(t, "web:\n  port: \"9000\"\n")
	t.Setenv("WEB_PORT", "9100")
	t.Setenv("SSH_DISPLAY_HOST", "env.example.com")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s.Web.Port != "9100" {
		t.Errorf("web.port = %q, want 9100", s.Web.Port)
	}
	if s.Web.DisplayHost != "env.example.com" {
		t.Errorf("web.displayHost = %q, want env.example.com", s.Web.DisplayHost)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"non-numeric port", "ssh:\n  port: abc\n", "ssh.port"},
		{"port out of range", "web:\n  port: \"70000\"\n", "web.port"},
		{"unknown level", "log:\n  level: loud\n", "log.level"},
		{"zero scale", "desktop:\n  scale: 0\n", "desktop.scale"},
		{"bad yaml", "ssh: [\n", "parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeSettings(t, tt.body))
			if err == nil {
				t.Fatal("Load() accepted invalid settings")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing file succeeded")
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := LogSettings{Level: "warn"}.NewLogger(&buf, "test")
	if err != nil {
		t.Fatalf("NewLogger() error: %v", err)
	}
	defer closer.Close()

	if logger.GetLevel() != log.WarnLevel {
		t.Errorf("level = %v, want warn", logger.GetLevel())
	}
	logger.Info("hidden")
	logger.Warn("shown")
	if out := buf.String(); strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("unexpected log output %q", out)
	}
}

func TestNewLoggerToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	logger, closer, err := LogSettings{Level: "info", File: path}.NewLogger(os.Stderr, "")
	if err != nil {
		t.Fatalf("NewLogger() error: %v", err)
	}
	logger.Info("to file")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Errorf("log file = %q", data)
	}
}
