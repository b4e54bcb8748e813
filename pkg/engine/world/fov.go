package world

import (
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// PositionSet is a set of grid positions
type PositionSet = mapset.Set[Position]

// Shape selects which cells around the player fall inside the field of view.
type Shape int

const (
	// ShapeSquare covers every cell within Chebyshev distance Radius.
	// Radius 1 is the 8-neighbourhood, radius 2 the 5x5 block.
	ShapeSquare Shape = iota
	// ShapePlus covers only the four cardinal arms of length Radius.
	ShapePlus
	// ShapeDiamond covers every cell within Manhattan distance Radius.
	ShapeDiamond
)

// String returns the name of the shape
func (s Shape) String() string {
	switch s {
	case ShapeSquare:
		return "square"
	case ShapePlus:
		return "plus"
	case ShapeDiamond:
		return "diamond"
	default:
		return "unknown"
	}
}

// MarshalText encodes the shape by name
func (s Shape) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ParseShape decodes a shape name
func ParseShape(s string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "square", "block":
		return ShapeSquare, nil
	case "plus", "cross":
		return ShapePlus, nil
	case "diamond":
		return ShapeDiamond, nil
	}
	return ShapeSquare, fmt.Errorf("unknown visibility shape %q", s)
}

// RevealMode selects whether seen cells stay revealed.
type RevealMode int

const (
	// RevealPersistent keeps every cell ever seen revealed until the round ends.
	RevealPersistent RevealMode = iota
	// RevealTransient shows only the cells currently inside the field of view.
	RevealTransient
)

// String returns the name of the mode
func (m RevealMode) String() string {
	if m == RevealTransient {
		return "transient"
	}
	return "persistent"
}

// Visibility is the field-of-view policy of a round
type Visibility struct {
	Shape  Shape
	Radius int
	Mode   RevealMode
}

// Covers reports whether the offset (dr, dc) from the center lies inside the shape.
func (v Visibility) Covers(dr, dc int) bool {
	if dr == 0 && dc == 0 {
		return true
	}
	switch v.Shape {
	case ShapePlus:
		if dr != 0 && dc != 0 {
			return false
		}
		return manhattanDist(dr, dc) <= v.Radius
	case ShapeDiamond:
		return manhattanDist(dr, dc) <= v.Radius
	default:
		return chebyshevDist(dr, dc) <= v.Radius
	}
}

// VisibleFrom returns the in-bounds positions inside the field of view around center.
// The center itself is always included, even with a zero or negative radius.
func VisibleFrom(grid *Grid, center Position, v Visibility) []Position {
	if grid == nil || !grid.Contains(center) {
		return nil
	}

	visible := []Position{center}
	for dr := -v.Radius; dr <= v.Radius; dr++ {
		for dc := -v.Radius; dc <= v.Radius; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if !v.Covers(dr, dc) {
				continue
			}
			p := Position{Row: center.Row + dr, Col: center.Col + dc}
			if grid.Contains(p) {
				visible = append(visible, p)
			}
		}
	}
	return visible
}

// VisibleSet returns VisibleFrom as a set
func VisibleSet(grid *Grid, center Position, v Visibility) PositionSet {
	set := mapset.New[Position]()
	for _, p := range VisibleFrom(grid, center, v) {
		set.Put(p)
	}
	return set
}

// Reveal adds every position inside the field of view around center to revealed and
// returns it. Positions are only ever added.
func Reveal(grid *Grid, revealed PositionSet, center Position, v Visibility) PositionSet {
	for _, p := range VisibleFrom(grid, center, v) {
		revealed.Put(p)
	}
	return revealed
}

// chebyshevDist returns Chebyshev (chessboard) distance for (dr, dc).
func chebyshevDist(dr, dc int) int {
	absDr := abs(dr)
	absDc := abs(dc)
	if absDr > absDc {
		return absDr
	}
	return absDc
}

// manhattanDist returns Manhattan (taxicab) distance for (dr, dc).
func manhattanDist(dr, dc int) int {
	return abs(dr) + abs(dc)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
