// Where: cli/cmd/acb/main.go
// What: CLI entrypoint.
// Why: Execute acb commands with configured dependencies.
package main

import (
	"os"

	"github.com/poruru/amplify-config-bridge/cli/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], buildDependencies()))
}
