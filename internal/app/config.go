package app

import (
	"io"
	"os"

	"github.com/raysh454/yobu/internal/webclient"
)

// Config contains the runtime configuration for a single invocation. We keep
// this small on purpose; every knob here exists because a component reads it.
type Config struct {
	// WebClientCfg configures the outbound HTTP collaborator.
	WebClientCfg webclient.Config

	// Out receives the rendered response. os.Stdout in the binary, a
	// buffer in tests.
	Out io.Writer
}

// DefaultConfig returns a Config populated with the defaults the binary runs
// with.
func DefaultConfig() *Config {
	return &Config{
		WebClientCfg: webclient.DefaultConfig(),
		Out:          os.Stdout,
	}
}
