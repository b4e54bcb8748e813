package world

import "strings"

// Direction represents one of the four movement directions
type Direction int

// Direction constants
const (
	Up Direction = iota
	Right
	Down
	Left
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{Up, Right, Down, Left}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// IsValid returns true if the direction is one of the four movement directions
func (d Direction) IsValid() bool {
	return d >= Up && d <= Left
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Right:
		return Left
	case Left:
		return Right
	default:
		return d
	}
}

// Delta returns the row and column offsets for this direction
func (d Direction) Delta() (rowDelta, colDelta int) {
	switch d {
	case Up:
		return -1, 0
	case Right:
		return 0, 1
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 0
	}
}

// ParseDirection accepts up/down/left/right and the compass aliases north/south/west/east.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u", "north", "n":
		return Up, true
	case "down", "d", "south", "s":
		return Down, true
	case "left", "l", "west", "w":
		return Left, true
	case "right", "r", "east", "e":
		return Right, true
	}
	return Up, false
}

// MarshalText encodes the direction by name
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a direction name; unknown names decode to an invalid direction.
func (d *Direction) UnmarshalText(b []byte) error {
	dir, ok := ParseDirection(string(b))
	if !ok {
		*d = Direction(-1)
		return nil
	}
	*d = dir
	return nil
}
