// Where: cli/cmd/acb/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/poruru/amplify-config-bridge/cli/internal/app"
	"github.com/poruru/amplify-config-bridge/cli/internal/exports"
)

var newFetcher = func() exports.ObjectFetcher {
	return &exports.S3Fetcher{}
}

// buildDependencies constructs all runtime dependencies required by the CLI.
func buildDependencies() app.Dependencies {
	return app.Dependencies{
		Out:     os.Stdout,
		Stdin:   os.Stdin,
		LogOut:  os.Stderr,
		Fetcher: newFetcher(),
	}
}
