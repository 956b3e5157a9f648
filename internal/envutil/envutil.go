// Package envutil provides helper functions for environment variable handling.
package envutil

import (
	"os"
	"strings"

	"github.com/poruru/amplify-config-bridge/cli/meta"
)

// HostEnvKey constructs a host-level environment variable name
// by combining ENV_PREFIX with the given suffix.
// Example: HostEnvKey("CONFIG_HOME") returns "ACB_CONFIG_HOME" when ENV_PREFIX=ACB
func HostEnvKey(suffix string) string {
	prefix := strings.TrimSpace(os.Getenv("ENV_PREFIX"))
	if prefix == "" {
		prefix = meta.DefaultEnvPrefix
	}
	return prefix + "_" + suffix
}

// GetHostEnv retrieves a host-level environment variable.
// Example: GetHostEnv("CONFIG_HOME") returns the value of ACB_CONFIG_HOME
func GetHostEnv(suffix string) string {
	return os.Getenv(HostEnvKey(suffix))
}

// SetHostEnv sets a host-level environment variable.
func SetHostEnv(suffix, value string) {
	_ = os.Setenv(HostEnvKey(suffix), value)
}
