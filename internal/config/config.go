// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keep the struct flat with koanf tags so file and env layers line up.
// - Provide New() for defaults; Load layers file and env on top.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// RoundsFile optionally points at a YAML file of extra round
	// definitions merged over the built-in registry.
	RoundsFile string `koanf:"rounds_file"`

	// MetricsEnabled toggles Prometheus metric recording.
	MetricsEnabled bool `koanf:"metrics_enabled"`

	// ShutdownGraceSeconds bounds graceful HTTP shutdown.
	ShutdownGraceSeconds int `koanf:"shutdown_grace_seconds"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:             "info",
		Addr:                 ":9080",
		RoundsFile:           "",
		MetricsEnabled:       true,
		ShutdownGraceSeconds: 10,
	}
}
