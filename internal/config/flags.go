package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses the client command-line flags from args.
//
// Flags:
//
//	-strict           enforce email shape and password equality
//	-submit-timeout   submission timeout (e.g. "5s")
//	-inline           render without the alternate screen
//	-input-width      text input width in cells
//	-log-file         log file path
//	-log-level        log level (debug, info, warn, error)
//	-c/-config        json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	var (
		strict         bool
		submitTimeout  time.Duration
		inline         bool
		inputWidth     int
		logFile        string
		logLevel       string
		jsonConfigPath string
	)

	fs.BoolVar(&strict, "strict", false, "Enforce email shape and password equality")
	fs.DurationVar(&submitTimeout, "submit-timeout", 0, "Submission timeout (e.g., 5s)")
	fs.BoolVar(&inline, "inline", false, "Render without the alternate screen")
	fs.IntVar(&inputWidth, "input-width", 0, "Text input width in cells")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			StrictValidation: strict,
			SubmitTimeout:    submitTimeout,
		},
		UI: UI{
			Inline:     inline,
			InputWidth: inputWidth,
		},
		Log: Log{
			File:  logFile,
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
