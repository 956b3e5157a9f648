// Where: cli/internal/app/validate_cmd.go
// What: The validate command: schema-check a legacy config.
// Why: Surface generation problems before anyone ships a broken config.
package app

import (
	"context"
	"io"

	"github.com/poruru/amplify-config-bridge/cli/internal/exports"
	"github.com/poruru/amplify-config-bridge/cli/internal/ui"
)

func runValidate(cli CLI, deps Dependencies, out io.Writer) int {
	location, err := resolveInput(cli.Validate.Input)
	if err != nil {
		return exitWithError(out, err)
	}

	legacy, err := newLoader(deps).Load(context.Background(), location)
	if err != nil {
		return exitWithError(out, err)
	}

	if err := exports.Validate(legacy); err != nil {
		return exitWithError(out, err)
	}

	ui.New(out).Success(location + " is a valid legacy config")
	return 0
}
