// Package config loads the volumectl command line configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pion/logging"
	"github.com/pion/volumectl"
	"github.com/pion/volumectl/pkg/channel"
)

const (
	// DefaultBaseDir is the configuration directory name under the home directory
	DefaultBaseDir = ".volumectl"
	// DefaultConfigFile is the default configuration filename
	DefaultConfigFile = "config.yaml"
)

// Config is the on-disk configuration. Zero values mean "use the library
// default".
type Config struct {
	// Driver is the label of the audio service to use (e.g. "coreaudio",
	// "audiotest"). Empty picks the highest priority registered service.
	Driver string `yaml:"driver,omitempty"`

	// MaxProbeFailures is the failure budget of the channel probe.
	MaxProbeFailures int `yaml:"max_probe_failures,omitempty"`

	// MaxChannels bounds the number of elements the channel probe tests.
	MaxChannels int `yaml:"max_channels,omitempty"`

	// ProbePolicy is "cumulative" or "consecutive".
	ProbePolicy string `yaml:"probe_policy,omitempty"`

	// LogLevel is one of disabled, error, warn, info, debug, trace.
	LogLevel string `yaml:"log_level,omitempty"`

	path string
}

// DefaultPath returns ~/.volumectl/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, DefaultBaseDir, DefaultConfigFile), nil
}

// Load reads the configuration at path, or at DefaultPath when path is
// empty. A missing file yields an empty configuration.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := &Config{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.path = path

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Path returns the file the configuration was loaded from.
func (c *Config) Path() string {
	return c.path
}

// Validate checks field values without touching any device.
func (c *Config) Validate() error {
	if c.MaxProbeFailures < 0 {
		return fmt.Errorf("max_probe_failures must not be negative, got %d", c.MaxProbeFailures)
	}
	if c.MaxChannels < 0 {
		return fmt.Errorf("max_channels must not be negative, got %d", c.MaxChannels)
	}
	if _, err := channel.ParsePolicy(c.ProbePolicy); err != nil {
		return err
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// SessionOptions translates the probe settings into session options. The
// driver and the log level are resolved by the caller.
func (c *Config) SessionOptions() ([]volumectl.SessionOption, error) {
	policy, err := channel.ParsePolicy(c.ProbePolicy)
	if err != nil {
		return nil, err
	}

	opts := []volumectl.SessionOption{volumectl.WithProbePolicy(policy)}
	if c.MaxProbeFailures > 0 {
		opts = append(opts, volumectl.WithMaxProbeFailures(c.MaxProbeFailures))
	}
	if c.MaxChannels > 0 {
		opts = append(opts, volumectl.WithMaxChannels(c.MaxChannels))
	}
	return opts, nil
}

// ParseLogLevel parses a level name. Empty means warn.
func ParseLogLevel(s string) (logging.LogLevel, error) {
	switch strings.ToLower(s) {
	case "disabled", "off":
		return logging.LogLevelDisabled, nil
	case "error":
		return logging.LogLevelError, nil
	case "warn", "warning", "":
		return logging.LogLevelWarn, nil
	case "info":
		return logging.LogLevelInfo, nil
	case "debug":
		return logging.LogLevelDebug, nil
	case "trace":
		return logging.LogLevelTrace, nil
	default:
		return logging.LogLevelDisabled, fmt.Errorf("unknown log level %q", s)
	}
}
