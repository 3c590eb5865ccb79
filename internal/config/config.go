package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/all-dot-files/tick/internal/timefmt"
)

const (
	DefaultConfigDir  = ".config/tick"
	DefaultConfigFile = "config.yaml"
)

// Color modes accepted by Config.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the user's stopwatch shell preferences
type Config struct {
	// Stopwatch name shown in the prompt
	Name string `yaml:"name,omitempty"`

	// Subsecond digits shown when displaying times (0-9)
	Precision int `yaml:"precision"`

	// Color output: "auto", "always" or "never"
	Color string `yaml:"color,omitempty"`

	// Logging
	LogLevel  string `yaml:"log_level,omitempty"`
	LogFormat string `yaml:"log_format,omitempty"` // "text" or "json"

	// Debug mode
	Debug bool `yaml:"debug,omitempty"`
}

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() *Config {
	return &Config{
		Precision: 2,
		Color:     ColorAuto,
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// Validate checks field ranges after loading
func (c *Config) Validate() error {
	if c.Precision < 0 || c.Precision > timefmt.MaxPrecision {
		return fmt.Errorf("precision %d out of range 0-%d", c.Precision, timefmt.MaxPrecision)
	}
	switch c.Color {
	case "", ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("unknown color mode %q (use auto, always or never)", c.Color)
	}
	return nil
}

// Manager handles configuration persistence
type Manager struct {
	configPath string
	config     *Config
}

// NewManager creates a new configuration manager
func NewManager(configPath string) (*Manager, error) {
	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		configPath = filepath.Join(home, DefaultConfigDir, DefaultConfigFile)
	}

	return &Manager{configPath: configPath}, nil
}

// GetConfigPath returns the path to the configuration file
func (m *Manager) GetConfigPath() string {
	return m.configPath
}

// Load loads the configuration from disk. A missing file yields the
// defaults; a malformed file is an error.
func (m *Manager) Load() error {
	data, err := os.ReadFile(m.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			m.config = DefaultConfig()
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", m.configPath, err)
	}

	m.config = config
	return nil
}

// Get returns the current configuration, loading defaults if needed
func (m *Manager) Get() *Config {
	if m.config == nil {
		m.config = DefaultConfig()
	}
	return m.config
}

// Save writes the configuration to disk
func (m *Manager) Save() error {
	cfg := m.Get()
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(m.configPath), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(m.configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
