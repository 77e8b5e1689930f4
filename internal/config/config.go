// Package config provides configuration for chesscore.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Verbosity levels.
const (
	Silent     = 0 // nothing on LogFile
	Summary    = 1 // one line per command
	Commentary = 2 // running commentary, one line per move
)

// Config holds all program configuration.
type Config struct {
	Verbosity int          `yaml:"verbosity"`
	Perft     PerftConfig  `yaml:"perft"`
	Output    OutputConfig `yaml:"output"`

	// Output streams
	OutputFile io.Writer `yaml:"-"`
	LogFile    io.Writer `yaml:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Summary,
		Perft:      *NewPerftConfig(),
		Output:     *NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least
// level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if c.Verbosity < Silent || c.Verbosity > Commentary {
		return fmt.Errorf("verbosity %d out of range %d..%d: %w",
			c.Verbosity, Silent, Commentary, errors.ErrInvalidConfig)
	}
	if err := c.Perft.Validate(); err != nil {
		return err
	}
	return c.Output.Validate()
}
