// Package config loads the runtime settings shared by the binaries in cmd/.
package config

import "os"

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// envBinding ties an environment variable to the setting it overrides.
type envBinding struct {
	key   string
	field *string
}

func (s *Settings) envBindings() []envBinding {
	return []envBinding{
		{"SSH_HOST", &s.SSH.Host},
		{"SSH_PORT", &s.SSH.Port},
		{"SSH_HOST_KEY", &s.SSH.HostKey},
		{"WEB_HOST", &s.Web.Host},
		{"WEB_PORT", &s.Web.Port},
		{"SSH_DISPLAY_HOST", &s.Web.DisplayHost},
		{"LOG_LEVEL", &s.Log.Level},
		{"LOG_FILE", &s.Log.File},
	}
}

// applyEnv overrides settings with any environment variables that are set.
func (s *Settings) applyEnv() {
	for _, b := range s.envBindings() {
		*b.field = GetEnv(b.key, *b.field)
	}
}
