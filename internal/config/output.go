package config

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Notation selects how moves are written.
type Notation int

const (
	ShortNotation      Notation = iota // piece letter + destination (Nf3, e4)
	CoordinateNotation                 // origin + destination (g1f3, e2e4)
)

var notationNames = map[Notation]string{
	ShortNotation:      "short",
	CoordinateNotation: "coordinate",
}

func (n Notation) String() string {
	if name, ok := notationNames[n]; ok {
		return name
	}
	return fmt.Sprintf("Notation(%d)", int(n))
}

// ParseNotation converts a notation name into a Notation.
func ParseNotation(s string) (Notation, error) {
	for n, name := range notationNames {
		if name == s {
			return n, nil
		}
	}
	return 0, fmt.Errorf("unknown notation %q: %w", s, errors.ErrInvalidConfig)
}

// MarshalYAML writes the notation by name.
func (n Notation) MarshalYAML() (interface{}, error) {
	return n.String(), nil
}

// UnmarshalYAML reads a notation name.
func (n *Notation) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseNotation(s)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Notation is the move notation for move lists
	Notation Notation `yaml:"notation"`

	// Coordinates prints rank and file labels around board diagrams
	Coordinates bool `yaml:"coordinates"`
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Notation:    CoordinateNotation,
		Coordinates: true,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if _, ok := notationNames[o.Notation]; !ok {
		return fmt.Errorf("notation %d: %w", int(o.Notation), errors.ErrInvalidConfig)
	}
	return nil
}
