package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// ColorMode controls when colored output is used.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // color when stdout is a terminal
	ColorAlways                  // always use color
	ColorNever                   // never use color
)

// ParseColorMode parses the --color flag value.
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
}

// DefaultBytes is the number of bytes read per file when -c is not given.
const DefaultBytes = 1024

// Config holds all configuration for a gohead run.
type Config struct {
	Bytes       int
	Quiet       bool
	Verbose     bool
	JSONOutput  bool
	Color       ColorMode
	Workers     int
	Text        bool
	ExcludeFile string
	Excludes    []string
	LogLevel    string
	Paths       []string
}

// Validate checks that the config is valid and returns an error if not.
func (c *Config) Validate() error {
	if c.Bytes < 0 {
		return fmt.Errorf("invalid byte count: %d", c.Bytes)
	}
	if c.Quiet && c.Verbose {
		return fmt.Errorf("cannot use -q (quiet) and -v (verbose) together")
	}
	if c.Workers < 0 {
		return fmt.Errorf("invalid worker count: %d", c.Workers)
	}
	if c.LogLevel != "" {
		if _, err := log.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
		}
	}
	return nil
}

// logLevel returns the configured level, defaulting to warn.
func (c *Config) logLevel() log.Level {
	if c.LogLevel == "" {
		return log.WarnLevel
	}
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.WarnLevel
	}
	return lvl
}
