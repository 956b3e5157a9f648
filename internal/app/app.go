// Where: cli/internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/poruru/amplify-config-bridge/cli/internal/config"
	"github.com/poruru/amplify-config-bridge/cli/internal/exports"
	"github.com/poruru/amplify-config-bridge/cli/internal/version"
	"github.com/rs/zerolog"
)

// Dependencies holds all injected dependencies required for CLI command
// execution. It enables dependency injection for testing and allows swapping
// the legacy config acquisition backend.
type Dependencies struct {
	Out     io.Writer
	Stdin   io.Reader
	LogOut  io.Writer
	Fetcher exports.ObjectFetcher

	// Logger is populated by Run once global flags are parsed.
	Logger zerolog.Logger
}

// CLI defines the command-line interface structure parsed by Kong.
// It contains global flags and all subcommand definitions.
type CLI struct {
	EnvFile string `name:"env-file" help:"Path to .env file (AWS credentials for s3:// inputs)"`
	Verbose bool   `short:"v" help:"Enable debug diagnostics"`

	Convert  ConvertCmd  `cmd:"" help:"Translate a legacy config into the nested resources config"`
	Validate ValidateCmd `cmd:"" help:"Validate a legacy config against the embedded schema"`
	Info     InfoCmd     `cmd:"" help:"Show a summary of the translated sections"`
	Config   ConfigCmd   `cmd:"" name:"config" help:"Manage configuration"`
	Version  VersionCmd  `cmd:"" help:"Show version information"`
}

type ConvertCmd struct {
	Input  string `arg:"" optional:"" help:"Legacy config path, s3:// URI, or - for stdin"`
	Output string `short:"o" help:"Output path (- for stdout; default: conventional file for the format)"`
	Format string `short:"f" help:"Output format: json|yaml|dart|swift (default: global config)"`
	Strict bool   `help:"Schema-validate the legacy config before translating"`
}

type ValidateCmd struct {
	Input string `arg:"" optional:"" help:"Legacy config path, s3:// URI, or - for stdin"`
}

type InfoCmd struct {
	Input string `arg:"" optional:"" help:"Legacy config path, s3:// URI, or - for stdin"`
}

type VersionCmd struct{}

// Run is the main entry point for CLI command execution. It parses the
// command-line arguments, identifies the requested command, and dispatches
// to the appropriate handler. Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	deps.Out = out

	if err := config.EnsureGlobalConfig(); err != nil {
		return exitWithError(out, err)
	}

	if len(args) == 0 {
		return runNoArgs(out)
	}

	cli := CLI{}
	parser, err := kong.New(&cli)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintln(out, err)
		return 1
	}

	// Load environment file if provided or if .env exists in current directory
	if cli.EnvFile != "" {
		if err := godotenv.Load(cli.EnvFile); err != nil {
			fmt.Fprintf(out, "Warning: failed to load env file %s: %v\n", cli.EnvFile, err)
		}
	} else if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintf(out, "Warning: failed to load .env: %v\n", err)
		}
	}

	deps.Logger = newLogger(deps.LogOut, cli.Verbose)

	command := ctx.Command()
	if exitCode, handled := dispatchCommand(command, cli, deps, out); handled {
		return exitCode
	}

	fmt.Fprintln(out, "unknown command")
	return 1
}

func newLogger(logOut io.Writer, verbose bool) zerolog.Logger {
	if logOut == nil {
		logOut = os.Stderr
	}
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: logOut}).
		With().Timestamp().Logger().Level(level)
}

type commandHandler func(CLI, Dependencies, io.Writer) int

type prefixHandler struct {
	prefix  string
	handler commandHandler
}

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	exactHandlers := map[string]commandHandler{
		"convert":  runConvert,
		"validate": runValidate,
		"info":     runInfo,
		"version":  func(_ CLI, _ Dependencies, out io.Writer) int { return runVersion(out) },
	}

	if handler, ok := exactHandlers[command]; ok {
		return handler(cli, deps, out), true
	}

	prefixHandlers := []prefixHandler{
		{prefix: "convert", handler: runConvert},
		{prefix: "validate", handler: runValidate},
		{prefix: "info", handler: runInfo},
		{prefix: "config set-format", handler: runConfigSetFormat},
	}

	for _, entry := range prefixHandlers {
		if strings.HasPrefix(command, entry.prefix) {
			return entry.handler(cli, deps, out), true
		}
	}

	return 1, false
}

// runVersion prints the version information of the CLI.
func runVersion(out io.Writer) int {
	fmt.Fprintln(out, version.GetVersion())
	return 0
}

// runNoArgs handles invocation without arguments: show a short usage hint.
func runNoArgs(out io.Writer) int {
	fmt.Fprintln(out, "usage: acb <convert|validate|info|config|version> [flags]")
	fmt.Fprintln(out, "run 'acb --help' for details")
	return 1
}
