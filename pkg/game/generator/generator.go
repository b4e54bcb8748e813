// Package generator builds the board of a round: it places treasure, coins, hearts and
// traps without overlap and picks the player's start cell.
package generator

import (
	"fmt"
	"math/rand"

	"treasurehunt/pkg/engine/world"
	"treasurehunt/pkg/game/rules"
)

// GridGenerator is an interface for board generation algorithms
type GridGenerator interface {
	// Generate builds a board and selects a start cell according to cfg.Policy.Start.
	Generate(cfg rules.RoundConfig, rng *rand.Rand) (*world.Grid, world.Position, error)
	// GenerateAround builds a board that keeps start free for the player.
	GenerateAround(cfg rules.RoundConfig, rng *rand.Rand, start world.Position) (*world.Grid, error)
}

// Available generators
var (
	Scatter = &ScatterGenerator{}
)

// DefaultGenerator is the default board generator
var DefaultGenerator GridGenerator = Scatter

// Generate builds a board with the default generator
func Generate(cfg rules.RoundConfig, rng *rand.Rand) (*world.Grid, world.Position, error) {
	return DefaultGenerator.Generate(cfg, rng)
}

// GenerateAround builds a board with the default generator, keeping start empty
func GenerateAround(cfg rules.RoundConfig, rng *rand.Rand, start world.Position) (*world.Grid, error) {
	return DefaultGenerator.GenerateAround(cfg, rng, start)
}

// ConfigError reports a round configuration that cannot produce a board
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid round config: %s: %s", e.Field, e.Reason)
}

// Validate checks that cfg can produce a board with at least one free cell for the player
func Validate(cfg rules.RoundConfig) error {
	if cfg.Rows < 1 || cfg.Cols < 1 {
		return &ConfigError{Field: "grid", Reason: fmt.Sprintf("dimensions %dx%d must be at least 1x1", cfg.Rows, cfg.Cols)}
	}
	if cfg.Rows > rules.MaxGridSize || cfg.Cols > rules.MaxGridSize {
		return &ConfigError{
			Field:  "grid",
			Reason: fmt.Sprintf("dimensions %dx%d too large (max %dx%d)", cfg.Rows, cfg.Cols, rules.MaxGridSize, rules.MaxGridSize),
		}
	}
	for _, content := range world.SpecialContents() {
		if n := cfg.CountOf(content); n < 0 {
			return &ConfigError{Field: content.String(), Reason: fmt.Sprintf("count %d is negative", n)}
		}
	}
	if total, capacity := cfg.SpecialCount(), cfg.Rows*cfg.Cols-1; total > capacity {
		return &ConfigError{
			Field:  "items",
			Reason: fmt.Sprintf("%d items do not fit on a %dx%d grid with a free start cell (max %d)", total, cfg.Rows, cfg.Cols, capacity),
		}
	}
	return nil
}
