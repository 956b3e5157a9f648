// Where: cli/internal/app/input.go
// What: Legacy config input resolution shared by commands.
// Why: Every command accepts the same path / URI / stdin argument.
package app

import (
	"fmt"
	"os"

	"github.com/poruru/amplify-config-bridge/cli/internal/exports"
)

// defaultInputCandidates are probed in order when no input argument is given.
var defaultInputCandidates = []string{
	"amplifyconfiguration.json",
	"aws-exports.json",
}

func newLoader(deps Dependencies) *exports.Loader {
	return &exports.Loader{Stdin: deps.Stdin, Fetcher: deps.Fetcher}
}

// resolveInput returns the location to load the legacy config from. An empty
// argument falls back to the conventional generated file names in the
// current directory.
func resolveInput(input string) (string, error) {
	if input != "" {
		return input, nil
	}
	for _, candidate := range defaultInputCandidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no legacy config found (tried %v); pass a path, s3:// URI, or -", defaultInputCandidates)
}
