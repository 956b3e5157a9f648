// Where: cli/internal/app/convert.go
// What: The convert command: legacy config in, resources config out.
// Why: This is the tool's main job.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/poruru/amplify-config-bridge/cli/internal/config"
	"github.com/poruru/amplify-config-bridge/cli/internal/exports"
	"github.com/poruru/amplify-config-bridge/cli/internal/renderer"
	"github.com/poruru/amplify-config-bridge/cli/internal/translator"
	"github.com/poruru/amplify-config-bridge/cli/internal/ui"
)

func runConvert(cli CLI, deps Dependencies, out io.Writer) int {
	location, err := resolveInput(cli.Convert.Input)
	if err != nil {
		return exitWithError(out, err)
	}

	legacy, err := newLoader(deps).Load(context.Background(), location)
	if err != nil {
		return exitWithError(out, err)
	}

	if cli.Convert.Strict {
		if err := exports.Validate(legacy); err != nil {
			return exitWithError(out, err)
		}
	}

	resources, err := translator.New(deps.Logger).Translate(legacy)
	if err != nil {
		var invalid *translator.InvalidConfigError
		if errors.As(err, &invalid) {
			fmt.Fprintln(out, invalid.Message)
			fmt.Fprintln(out, invalid.RecoverySuggestion)
			return 1
		}
		return exitWithError(out, err)
	}

	format, err := resolveFormat(cli.Convert.Format)
	if err != nil {
		return exitWithError(out, err)
	}

	payload, err := renderer.Render(resources, format)
	if err != nil {
		return exitWithError(out, err)
	}

	output := cli.Convert.Output
	if output == "-" {
		if _, err := out.Write(payload); err != nil {
			return exitWithError(out, err)
		}
		return 0
	}
	if output == "" {
		output = renderer.DefaultFileName(format)
	}
	if err := os.WriteFile(output, payload, 0o644); err != nil {
		return exitWithError(out, err)
	}

	ui.New(out).Success(fmt.Sprintf("wrote %s (%s)", output, format))
	return 0
}

// resolveFormat picks the output format: the flag wins, then the global
// config default.
func resolveFormat(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	_, cfg, err := config.LoadGlobalConfigWithDefaults()
	if err != nil {
		return "", err
	}
	return cfg.DefaultFormat, nil
}
