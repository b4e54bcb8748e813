// Package world provides generic 2D grid primitives for the treasure hunt board:
// positions, directions, cells holding a single content value, and visibility shapes.
package world

import (
	"fmt"
	"strings"
)

// CellContent is what a cell holds. Each cell holds at most one special item.
type CellContent int

// Cell content values
const (
	Empty CellContent = iota
	Treasure
	Coin
	Heart
	Trap
)

// SpecialContents lists every non-empty content in placement order
func SpecialContents() []CellContent {
	return []CellContent{Treasure, Coin, Heart, Trap}
}

// String returns the name of the content
func (c CellContent) String() string {
	switch c {
	case Empty:
		return "empty"
	case Treasure:
		return "treasure"
	case Coin:
		return "coin"
	case Heart:
		return "heart"
	case Trap:
		return "trap"
	default:
		return "unknown"
	}
}

// IsSpecial returns true for every content other than Empty
func (c CellContent) IsSpecial() bool {
	return c >= Treasure && c <= Trap
}

// ParseCellContent decodes a content name. "bomb" is accepted as an alias for trap.
func ParseCellContent(s string) (CellContent, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "empty", "":
		return Empty, true
	case "treasure":
		return Treasure, true
	case "coin":
		return Coin, true
	case "heart":
		return Heart, true
	case "trap", "bomb":
		return Trap, true
	}
	return Empty, false
}

// MarshalText encodes the content by name
func (c CellContent) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a content name
func (c *CellContent) UnmarshalText(b []byte) error {
	v, ok := ParseCellContent(string(b))
	if !ok {
		return fmt.Errorf("unknown cell content %q", string(b))
	}
	*c = v
	return nil
}

// Position is a (row, col) coordinate on the grid
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Pos is shorthand for Position{Row: row, Col: col}
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Step returns the position one unit away in the given direction
func (p Position) Step(dir Direction) Position {
	dr, dc := dir.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// String returns "(row,col)"
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Cell represents a single tile of the board
type Cell struct {
	Row     int
	Col     int
	Content CellContent
}

// NewCell creates a new empty cell at the given position
func NewCell(row, col int) *Cell {
	return &Cell{Row: row, Col: col}
}

// Position returns the cell's coordinate
func (c *Cell) Position() Position {
	return Position{Row: c.Row, Col: c.Col}
}

// IsEmpty returns true if the cell holds nothing
func (c *Cell) IsEmpty() bool {
	return c.Content == Empty
}

// Take clears the cell and returns what it held
func (c *Cell) Take() CellContent {
	content := c.Content
	c.Content = Empty
	return content
}
