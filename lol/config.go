package lol

import (
	"fmt"
	"io"
	"os"

	"go-simpler.org/env"
)

// Config is the logger configuration read from the environment.
type Config struct {
	Level       string `env:"LOG_LEVEL" default:"info" usage:"off, fatal, error, warn, info, debug or trace"`
	NoTimestamp bool   `env:"LOG_NO_TIMESTAMP" default:"false" usage:"omit the timestamp at the start of each line"`
}

// LoadConfig reads Config from the environment and applies it to Main. A
// malformed value leaves the current settings in place.
func LoadConfig() (c *Config) {
	c = &Config{}
	if err := env.Load(c, nil); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "lol: loading config:", err)
		return
	}
	c.Apply()
	return
}

// Apply sets the level and timestamp switch from the configuration.
func (c *Config) Apply() {
	NoTimeStamp.Store(c.NoTimestamp)
	SetLogLevel(c.Level)
}

// PrintUsage prints the environment variables that configure the logger.
func (c *Config) PrintUsage(w io.Writer) { env.Usage(c, w, nil) }
