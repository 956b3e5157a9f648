// Where: cli/internal/constants/env.go
// What: Environment variable naming constants.
// Why: Centralize environment variable names to avoid typos and inconsistencies.
package constants

// Host-level suffixes combined with the brand prefix by envutil.
// Example: HostSuffixConfigHome resolves to ACB_CONFIG_HOME.
const (
	// Configuration file resolution
	HostSuffixConfigPath = "CONFIG_PATH"
	HostSuffixConfigHome = "CONFIG_HOME"

	// S3 acquisition overrides (local stacks)
	HostSuffixS3Endpoint = "S3_ENDPOINT"
	HostSuffixS3Region   = "S3_REGION"
	HostSuffixAccessKey  = "S3_ACCESS_KEY"
	HostSuffixSecretKey  = "S3_SECRET_KEY"

	// Logging
	HostSuffixLogLevel = "LOG_LEVEL"
)
