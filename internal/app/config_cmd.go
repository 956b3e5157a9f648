// Where: cli/internal/app/config_cmd.go
// What: Configuration management commands.
// Why: Allow setting internal CLI params like the default output format.
package app

import (
	"fmt"
	"io"

	"github.com/poruru/amplify-config-bridge/cli/internal/config"
	"github.com/poruru/amplify-config-bridge/cli/internal/renderer"
)

// ConfigCmd groups configuration subcommands.
type ConfigCmd struct {
	SetFormat ConfigSetFormatCmd `cmd:"" name:"set-format" help:"Set the default output format"`
}

type ConfigSetFormatCmd struct {
	Format string `arg:"" help:"Output format: json|yaml|dart|swift"`
}

// runConfigSetFormat updates the global configuration with a new default
// output format.
func runConfigSetFormat(cli CLI, _ Dependencies, out io.Writer) int {
	format := cli.Config.SetFormat.Format
	switch format {
	case renderer.FormatJSON, renderer.FormatYAML, renderer.FormatDart, renderer.FormatSwift:
	default:
		return exitWithError(out, fmt.Errorf("unsupported output format: %s", format))
	}

	path, cfg, err := config.LoadGlobalConfigWithDefaults()
	if err != nil {
		return exitWithError(out, err)
	}

	cfg.DefaultFormat = format
	if err := config.SaveGlobalConfig(path, cfg); err != nil {
		return exitWithError(out, err)
	}

	fmt.Fprintf(out, "updated default_format: %s\n", format)
	return 0
}
