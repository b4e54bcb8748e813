// Package rules holds the difficulty presets and per-round configuration of a treasure hunt.
// A RoundConfig is computed at round start and never changes for the life of that round.
package rules

import (
	"strings"
	"time"

	"treasurehunt/pkg/engine/world"
)

// Difficulty selects a preset of grid size, budgets and visibility
type Difficulty int

const (
	Easy Difficulty = iota
	Normal
	Hard
)

// String returns the name of the difficulty
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	default:
		return "normal"
	}
}

// ParseDifficulty decodes a difficulty name. Unknown names return Normal and false.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, true
	case "normal", "medium":
		return Normal, true
	case "hard":
		return Hard, true
	}
	return Normal, false
}

// MarshalText encodes the difficulty by name
func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a difficulty name, falling back to Normal
func (d *Difficulty) UnmarshalText(b []byte) error {
	*d, _ = ParseDifficulty(string(b))
	return nil
}

// BudgetPolicy decides what happens when the move or time budget runs out
type BudgetPolicy int

const (
	// EndGame ends the game immediately.
	EndGame BudgetPolicy = iota
	// LoseLife costs one life and respawns a fresh round on the same level.
	LoseLife
)

// String returns the name of the policy
func (p BudgetPolicy) String() string {
	if p == LoseLife {
		return "lose-life"
	}
	return "end-game"
}

// StartPolicy selects where the player spawns on a new game
type StartPolicy int

const (
	// StartRandom picks a uniformly random cell left empty after item placement.
	StartRandom StartPolicy = iota
	// StartCorner always spawns at (0,0).
	StartCorner
)

// Policy collects the behaviours that differ between game variants
type Policy struct {
	// ClampScore keeps the score from going below zero on a trap.
	ClampScore bool
	// OnBudgetExhausted applies when moves or time run out.
	OnBudgetExhausted BudgetPolicy
	// KeepScoreOnRestart carries the score into a restarted game instead of zeroing it.
	KeepScoreOnRestart bool
	// Start selects the spawn cell of a new game. Level-ups keep the player where they stand.
	Start StartPolicy
}

// RoundConfig holds every parameter of a single round
type RoundConfig struct {
	Difficulty Difficulty
	Level      int

	Rows int
	Cols int

	Treasures int
	Coins     int
	Hearts    int
	Traps     int

	// MoveBudget is the number of moves allowed per round; zero means unlimited.
	MoveBudget int
	// TimeBudget is the wall-clock time allowed per round; zero means unlimited.
	TimeBudget time.Duration

	Visibility world.Visibility

	MaxLives      int
	TreasureScore int
	CoinScore     int
	HeartScore    int
	TrapPenalty   int
	LevelBonus    int

	// PlacementAttempts bounds random sampling per item before the row-major fallback scan.
	PlacementAttempts int

	Policy Policy
}

// Default tuning shared by every difficulty
const (
	DefaultGridSize          = 6
	CompactGridSize          = 5
	DefaultMaxLives          = 3
	DefaultTreasureScore     = 10
	DefaultCoinScore         = 5
	DefaultHeartScore        = 15
	DefaultTrapPenalty       = 5
	DefaultLevelBonus        = 20
	DefaultPlacementAttempts = 200

	// MaxGridSize bounds both board dimensions.
	MaxGridSize = 50
	// maxScaledLevel is where item growth stops: past it the counts exceed any board
	// of at most MaxGridSize x MaxGridSize and are trimmed anyway.
	maxScaledLevel = 2 * MaxGridSize * MaxGridSize
)

// SpecialCount returns the total number of items placed on the board
func (c RoundConfig) SpecialCount() int {
	return c.Treasures + c.Coins + c.Hearts + c.Traps
}

// CountOf returns the configured count for a content type
func (c RoundConfig) CountOf(content world.CellContent) int {
	switch content {
	case world.Treasure:
		return c.Treasures
	case world.Coin:
		return c.Coins
	case world.Heart:
		return c.Hearts
	case world.Trap:
		return c.Traps
	default:
		return 0
	}
}

// HasMoveBudget returns true if moves are limited
func (c RoundConfig) HasMoveBudget() bool {
	return c.MoveBudget > 0
}

// HasTimeBudget returns true if time is limited
func (c RoundConfig) HasTimeBudget() bool {
	return c.TimeBudget > 0
}

// Base returns the level-1 preset for a difficulty
func Base(d Difficulty) RoundConfig {
	cfg := RoundConfig{
		Difficulty:        d,
		Level:             1,
		Rows:              DefaultGridSize,
		Cols:              DefaultGridSize,
		Treasures:         3,
		Coins:             2,
		Hearts:            1,
		Traps:             3,
		MaxLives:          DefaultMaxLives,
		TreasureScore:     DefaultTreasureScore,
		CoinScore:         DefaultCoinScore,
		HeartScore:        DefaultHeartScore,
		TrapPenalty:       DefaultTrapPenalty,
		LevelBonus:        DefaultLevelBonus,
		PlacementAttempts: DefaultPlacementAttempts,
		Visibility: world.Visibility{
			Shape:  world.ShapeSquare,
			Radius: 1,
			Mode:   world.RevealPersistent,
		},
		Policy: Policy{
			ClampScore:        true,
			OnBudgetExhausted: LoseLife,
			Start:             StartRandom,
		},
	}

	switch d {
	case Easy:
		cfg.Traps = 2
		cfg.Visibility.Radius = 2
	case Hard:
		cfg.Rows, cfg.Cols = 7, 7
		cfg.Traps = 5
		cfg.MoveBudget = 40
		cfg.TimeBudget = 2 * time.Minute
		cfg.Visibility.Shape = world.ShapePlus
		cfg.Policy.OnBudgetExhausted = EndGame
	default:
		cfg.MoveBudget = 60
	}
	return cfg
}

// ForLevel returns the preset for a difficulty scaled to the given level.
// Treasure and traps grow by level/2, coins by level/3. Counts are trimmed (traps first,
// then coins, hearts, treasures) so the items always fit with one cell to spare.
func ForLevel(d Difficulty, level int) RoundConfig {
	return Scale(Base(d), level)
}

// Scale applies level scaling to a level-1 config, keeping its grid and policies
func Scale(base RoundConfig, level int) RoundConfig {
	if level < 1 {
		level = 1
	}
	cfg := base
	cfg.Level = level
	growth := min(level, maxScaledLevel)
	cfg.Treasures = base.Treasures + growth/2
	cfg.Coins = base.Coins + growth/3
	cfg.Traps = base.Traps + growth/2
	fitItems(&cfg)
	return cfg
}

// WithGridSize returns a copy of cfg on a rows x cols board with counts trimmed to fit
func WithGridSize(cfg RoundConfig, rows, cols int) RoundConfig {
	cfg.Rows = rows
	cfg.Cols = cols
	fitItems(&cfg)
	return cfg
}

// fitItems trims counts until they fit. Boards outside 1..MaxGridSize are left for
// the generator to reject.
func fitItems(cfg *RoundConfig) {
	if cfg.Rows < 1 || cfg.Cols < 1 || cfg.Rows > MaxGridSize || cfg.Cols > MaxGridSize {
		return
	}
	capacity := cfg.Rows*cfg.Cols - 1
	for _, n := range []*int{&cfg.Traps, &cfg.Coins, &cfg.Hearts, &cfg.Treasures} {
		over := cfg.SpecialCount() - capacity
		if over <= 0 {
			return
		}
		// Keep at least one treasure so the round can be cleared.
		floor := 0
		if n == &cfg.Treasures {
			floor = 1
		}
		*n = max(floor, *n-over)
	}
}
