package generator

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"treasurehunt/pkg/engine/world"
	"treasurehunt/pkg/game/rules"
)

// ScatterGenerator places every item on a uniformly random free cell
type ScatterGenerator struct{}

// Generate creates a new board and picks the start cell
func (g *ScatterGenerator) Generate(cfg rules.RoundConfig, rng *rand.Rand) (*world.Grid, world.Position, error) {
	if err := Validate(cfg); err != nil {
		return nil, world.Position{}, err
	}

	reserved := mapset.New[world.Position]()
	if cfg.Policy.Start == rules.StartCorner {
		reserved.Put(world.Pos(0, 0))
	}

	grid := world.NewGrid(cfg.Rows, cfg.Cols)
	if err := placeItems(grid, cfg, rng, &reserved); err != nil {
		return nil, world.Position{}, err
	}

	if cfg.Policy.Start == rules.StartCorner {
		return grid, world.Pos(0, 0), nil
	}

	start, ok := randomEmpty(grid, rng)
	if !ok {
		return nil, world.Position{}, &ConfigError{Field: "start", Reason: "no empty cell left for the player"}
	}
	return grid, start, nil
}

// GenerateAround creates a new board that leaves start empty
func (g *ScatterGenerator) GenerateAround(cfg rules.RoundConfig, rng *rand.Rand, start world.Position) (*world.Grid, error) {
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	if start.Row < 0 || start.Row >= cfg.Rows || start.Col < 0 || start.Col >= cfg.Cols {
		return nil, &ConfigError{Field: "start", Reason: "start " + start.String() + " is outside the grid"}
	}

	reserved := mapset.New[world.Position]()
	reserved.Put(start)

	grid := world.NewGrid(cfg.Rows, cfg.Cols)
	if err := placeItems(grid, cfg, rng, &reserved); err != nil {
		return nil, err
	}
	return grid, nil
}

// placeItems places every configured item in treasure, coin, heart, trap order
func placeItems(grid *world.Grid, cfg rules.RoundConfig, rng *rand.Rand, reserved *mapset.Set[world.Position]) error {
	attempts := cfg.PlacementAttempts
	if attempts <= 0 {
		attempts = rules.DefaultPlacementAttempts
	}

	for _, content := range world.SpecialContents() {
		for i := 0; i < cfg.CountOf(content); i++ {
			pos, ok := findFreeCell(grid, rng, reserved, attempts)
			if !ok {
				return &ConfigError{Field: content.String(), Reason: "board has no free cell left"}
			}
			grid.Place(pos, content)
		}
	}
	return nil
}

// findFreeCell samples random cells up to attempts times, then falls back to the first
// free cell in row-major order so placement always terminates.
func findFreeCell(grid *world.Grid, rng *rand.Rand, reserved *mapset.Set[world.Position], attempts int) (world.Position, bool) {
	for attempt := 0; attempt < attempts; attempt++ {
		p := world.Pos(rng.Intn(grid.Rows()), rng.Intn(grid.Cols()))
		if isFree(grid, reserved, p) {
			return p, true
		}
	}

	var found world.Position
	ok := false
	grid.ForEachCell(func(row, col int, cell *world.Cell) {
		if ok {
			return
		}
		p := world.Pos(row, col)
		if isFree(grid, reserved, p) {
			found, ok = p, true
		}
	})
	return found, ok
}

func isFree(grid *world.Grid, reserved *mapset.Set[world.Position], p world.Position) bool {
	if reserved.Has(p) {
		return false
	}
	cell := grid.CellAt(p)
	return cell != nil && cell.IsEmpty()
}

// randomEmpty picks a uniformly random empty cell
func randomEmpty(grid *world.Grid, rng *rand.Rand) (world.Position, bool) {
	empty := grid.Positions(world.Empty)
	if len(empty) == 0 {
		return world.Position{}, false
	}
	return empty[rng.Intn(len(empty))], true
}
