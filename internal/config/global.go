// Where: cli/internal/config/global.go
// What: Global config load/save helpers.
// Why: Manage ~/.acb/config.yaml consistently.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/poruru/amplify-config-bridge/cli/internal/constants"
	"github.com/poruru/amplify-config-bridge/cli/internal/envutil"
	"github.com/poruru/amplify-config-bridge/cli/internal/renderer"
	"github.com/poruru/amplify-config-bridge/cli/meta"
	"gopkg.in/yaml.v3"
)

// GlobalConfig represents the ~/.acb/config.yaml global configuration.
// It tracks tool-wide defaults that survive between invocations.
type GlobalConfig struct {
	Version       int    `yaml:"version"`
	DefaultFormat string `yaml:"default_format,omitempty"`
}

// DefaultGlobalConfig returns an initialized GlobalConfig.
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{
		Version:       1,
		DefaultFormat: renderer.FormatJSON,
	}
}

// Normalize fills zero values with defaults.
func Normalize(cfg GlobalConfig) GlobalConfig {
	if cfg.Version == 0 {
		cfg.Version = DefaultGlobalConfig().Version
	}
	if cfg.DefaultFormat == "" {
		cfg.DefaultFormat = DefaultGlobalConfig().DefaultFormat
	}
	return cfg
}

// GlobalConfigPath returns the path to the global config file.
// Respects brand-specific CONFIG_PATH and CONFIG_HOME environment variables.
func GlobalConfigPath() (string, error) {
	if override := strings.TrimSpace(envutil.GetHostEnv(constants.HostSuffixConfigPath)); override != "" {
		path := override
		if !filepath.IsAbs(path) {
			if abs, err := filepath.Abs(path); err == nil {
				path = abs
			}
		}
		return path, nil
	}
	if override := strings.TrimSpace(envutil.GetHostEnv(constants.HostSuffixConfigHome)); override != "" {
		return filepath.Join(override, "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, meta.HomeDir, "config.yaml"), nil
}

// EnsureGlobalConfig creates the global config file if it doesn't exist.
func EnsureGlobalConfig() error {
	path, err := GlobalConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return SaveGlobalConfig(path, DefaultGlobalConfig())
		}
		return err
	}
	return nil
}

// LoadGlobalConfig reads and parses the global configuration file.
func LoadGlobalConfig(path string) (GlobalConfig, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return GlobalConfig{}, err
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return GlobalConfig{}, err
	}
	return cfg, nil
}

// LoadGlobalConfigWithDefaults loads the global config, substituting
// defaults when the file does not exist yet. The returned path is where the
// config lives (or would live).
func LoadGlobalConfigWithDefaults() (string, GlobalConfig, error) {
	path, err := GlobalConfigPath()
	if err != nil {
		return "", GlobalConfig{}, err
	}
	cfg, err := LoadGlobalConfig(path)
	if err != nil {
		if os.IsNotExist(err) {
			return path, DefaultGlobalConfig(), nil
		}
		return path, GlobalConfig{}, err
	}
	return path, Normalize(cfg), nil
}

// SaveGlobalConfig writes a GlobalConfig to the specified path.
func SaveGlobalConfig(path string, cfg GlobalConfig) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, payload, 0o644)
}
