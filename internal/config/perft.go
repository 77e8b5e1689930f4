package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// PerftConfig holds settings for move-path enumeration.
type PerftConfig struct {
	// Depth is the default search depth in plies
	Depth int `yaml:"depth"`

	// Workers is the number of goroutines counting root subtrees
	Workers int `yaml:"workers"`

	// HashCache enables the shared transposition cache
	HashCache bool `yaml:"hash"`

	// HashCapacity limits cache entries (0 = unlimited)
	HashCapacity int `yaml:"hash_capacity"`
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Depth:   3,
		Workers: runtime.NumCPU(),
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 {
		return fmt.Errorf("perft depth %d is negative: %w", p.Depth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if p.HashCapacity < 0 {
		return fmt.Errorf("hash capacity %d is negative: %w", p.HashCapacity, errors.ErrInvalidConfig)
	}
	return nil
}
