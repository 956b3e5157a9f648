// Where: cli/internal/config/global_test.go
// What: Tests for global config load/save helpers.
// Why: Ensure defaults / normalization despite missing files.
package config

import (
	"path/filepath"
	"testing"

	"github.com/poruru/amplify-config-bridge/cli/internal/constants"
	"github.com/poruru/amplify-config-bridge/cli/internal/envutil"
	"github.com/poruru/amplify-config-bridge/cli/internal/renderer"
)

func TestLoadGlobalConfigWithDefaults_MissingFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(envutil.HostEnvKey(constants.HostSuffixConfigHome), dir)
	t.Setenv(envutil.HostEnvKey(constants.HostSuffixConfigPath), "")

	path, cfg, err := LoadGlobalConfigWithDefaults()
	if err != nil {
		t.Fatalf("load global config: %v", err)
	}
	if path == "" {
		t.Fatalf("expected path, got empty")
	}
	if cfg.Version == 0 {
		t.Fatalf("expected version initialized, got %d", cfg.Version)
	}
	if cfg.DefaultFormat != renderer.FormatJSON {
		t.Fatalf("expected json default format, got %s", cfg.DefaultFormat)
	}
}

func TestLoadGlobalConfigWithDefaults_Normalize(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(envutil.HostEnvKey(constants.HostSuffixConfigHome), dir)
	t.Setenv(envutil.HostEnvKey(constants.HostSuffixConfigPath), "")

	path, err := GlobalConfigPath()
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	if err := SaveGlobalConfig(path, GlobalConfig{Version: 0, DefaultFormat: ""}); err != nil {
		t.Fatalf("save config: %v", err)
	}

	resolvedPath, normalized, err := LoadGlobalConfigWithDefaults()
	if err != nil {
		t.Fatalf("load global config: %v", err)
	}
	if resolvedPath != path {
		t.Fatalf("expected %s, got %s", path, resolvedPath)
	}
	if normalized.Version == 0 {
		t.Fatalf("expected normalized version")
	}
	if normalized.DefaultFormat == "" {
		t.Fatalf("expected normalized format")
	}
}

func TestGlobalConfigPathOverride(t *testing.T) {
	override := filepath.Join(t.TempDir(), "custom.yaml")
	t.Setenv(envutil.HostEnvKey(constants.HostSuffixConfigPath), override)

	path, err := GlobalConfigPath()
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	if path != override {
		t.Fatalf("expected override path %s, got %s", override, path)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	saved := GlobalConfig{Version: 1, DefaultFormat: renderer.FormatYAML}
	if err := SaveGlobalConfig(path, saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := LoadGlobalConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded != saved {
		t.Fatalf("round trip mismatch: %+v != %+v", loaded, saved)
	}
}
