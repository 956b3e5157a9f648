// Where: cli/meta/meta.go
// What: Brand constants shared across the CLI.
// Why: Keep naming (binary, home dir, env prefix) in one place.
package meta

const (
	// Name is the CLI binary name.
	Name = "acb"

	// HomeDir is the per-user configuration directory under $HOME.
	HomeDir = ".acb"

	// DefaultEnvPrefix is the prefix used for host-level environment
	// variables when ENV_PREFIX is not set.
	DefaultEnvPrefix = "ACB"
)
