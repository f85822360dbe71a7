package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Settings holds the runtime settings shared by the binaries in cmd/.
type Settings struct {
	SSH     SSHSettings     `yaml:"ssh"`
	Web     WebSettings     `yaml:"web"`
	Log     LogSettings     `yaml:"log"`
	Desktop DesktopSettings `yaml:"desktop"`
}

// SSHSettings configures the SSH game server.
type SSHSettings struct {
	Host    string `yaml:"host"`
	Port    string `yaml:"port"`
	HostKey string `yaml:"hostKey"` // Empty lets wish generate a key
}

// WebSettings configures the landing page server.
type WebSettings struct {
	Host        string `yaml:"host"`
	Port        string `yaml:"port"`
	DisplayHost string `yaml:"displayHost"` // Host shown in the ssh command on the page
}

// LogSettings configures the logger built by NewLogger.
type LogSettings struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DesktopSettings configures the desktop window.
type DesktopSettings struct {
	Title string  `yaml:"title"`
	Scale float64 `yaml:"scale"`
}

// Default returns the settings used when no file or environment overrides are given.
func Default() Settings {
	return Settings{
		SSH: SSHSettings{
			Host:    "::",
			Port:    "2222",
			HostKey: "/app/keys/host_key",
		},
		Web: WebSettings{
			Host:        "0.0.0.0",
			Port:        "8080",
			DisplayHost: "your-server.com",
		},
		Log: LogSettings{
			Level: "info",
		},
		Desktop: DesktopSettings{
			Title: "Space Invaders",
			Scale: 1,
		},
	}
}

// Load reads settings from the YAML file at path on top of Default, applies environment
// overrides and validates the result. An empty path skips the file.
func Load(path string) (*Settings, error) {
	s := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read settings file: %w", err)
		}
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
		}
	}

	s.applyEnv()

	if err := validateSettings(&s); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return &s, nil
}

func validateSettings(s *Settings) error {
	if err := validatePort("ssh.port", s.SSH.Port); err != nil {
		return err
	}
	if err := validatePort("web.port", s.Web.Port); err != nil {
		return err
	}
	if _, err := log.ParseLevel(s.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if s.Desktop.Scale <= 0 {
		return fmt.Errorf("desktop.scale must be > 0, got %v", s.Desktop.Scale)
	}
	return nil
}

func validatePort(field, port string) error {
	n, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("%s must be a number, got %q", field, port)
	}
	if n < 1 || n > 65535 {
		return fmt.Errorf("%s must be between 1 and 65535, got %d", field, n)
	}
	return nil
}

// NewLogger builds a logger writing to w at the configured level. When a log file is
// configured it is opened for appending and used instead of w; the returned closer
// releases it.
func (l LogSettings) NewLogger(w io.Writer, prefix string) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(l.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log.level: %w", err)
	}

	var closer io.Closer = nopCloser{}
	if l.File != "" {
		f, err := os.OpenFile(l.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
