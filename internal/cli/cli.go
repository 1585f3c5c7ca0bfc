package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"camlaunch/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("camlaunch", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
camlaunch - resolve declarative camera launch descriptions and start drivers.

Usage:
  camlaunch [options] [DESCRIPTION]

Arguments:
  DESCRIPTION
    Name of a built-in camera description (e.g. "chameleon"), unless -f is
    given.

Options:
`)
		flagSet.PrintDefaults()
	}

	fileFlag := flagSet.String("f", "", "Path to a .launch.hcl file or a directory containing them.")
	shareDirFlag := flagSet.String("share-dir", "", "Resource root handed to the description as share_dir. Bypasses the share search path.")
	dryRunFlag := flagSet.Bool("dry-run", false, "Print the resolved launch requests as YAML instead of spawning.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	overrides := make(map[string]string)
	flagSet.Func("arg", "Override a declared argument as name=value. Repeatable.", func(raw string) error {
		name, value, found := strings.Cut(raw, "=")
		if !found || name == "" {
			return fmt.Errorf("invalid -arg %q: want name=value", raw)
		}
		overrides[name] = value
		return nil
	})

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	camera := ""
	if flagSet.NArg() > 0 {
		camera = flagSet.Arg(0)
	}

	if camera == "" && *fileFlag == "" {
		slog.Debug("No description selected, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Camera:     camera,
		LaunchPath: *fileFlag,
		ShareDir:   *shareDirFlag,
		Overrides:  overrides,
		DryRun:     *dryRunFlag,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.")
	return config, false, nil
}
