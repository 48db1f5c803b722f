package config

import (
	"fmt"
	"time"
)

// ClientApp holds form behaviour settings.
type ClientApp struct {
	// StrictValidation adds email shape and password equality checks.
	StrictValidation bool
	// SubmitTimeout bounds one call into the submission seam.
	SubmitTimeout time.Duration
}

// ClientUI holds terminal rendering settings.
type ClientUI struct {
	// AltScreen runs the program in the terminal's alternate screen.
	AltScreen bool
	// InputWidth is the width of every text input.
	InputWidth int
}

// ClientLog holds logger settings.
type ClientLog struct {
	File  string
	Level string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App ClientApp
	UI  ClientUI
	Log ClientLog
}

// GetClientConfig builds and validates a client config view from the merged
// structured configuration. args are the command-line arguments without the
// program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			StrictValidation: cfg.App.StrictValidation,
			SubmitTimeout:    cfg.App.SubmitTimeout,
		},
		UI: ClientUI{
			AltScreen:  !cfg.UI.Inline,
			InputWidth: cfg.UI.InputWidth,
		},
		Log: ClientLog{
			File:  cfg.Log.File,
			Level: cfg.Log.Level,
		},
	}

	return clientCfg, clientCfg.validate()
}
