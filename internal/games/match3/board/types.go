// Package board implements the match-3 board engine: grid generation,
// run detection, cascade resolution and the move controller.
// This package is UI-agnostic and deterministic for a given RNG source.
package board

import "fmt"

// BlockType is the kind of block occupying a cell.
// Only equality is meaningful; the numeric order carries no semantics.
type BlockType uint8

const (
	Red BlockType = iota
	Blue
	Green
	Yellow
	Purple
	Pink
	blockTypeCount // Sentinel value for iteration
)

// MaxKinds is the number of block types the engine knows about.
const MaxKinds = int(blockTypeCount)

// MinKinds is the smallest type set a board can be played with.
const MinKinds = 2

// String returns the string representation of a block type.
func (b BlockType) String() string {
	switch b {
	case Red:
		return "red"
	case Blue:
		return "blue"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Purple:
		return "purple"
	case Pink:
		return "pink"
	default:
		return "unknown"
	}
}

// Char returns a single letter used for ASCII dumps and test fixtures.
func (b BlockType) Char() rune {
	switch b {
	case Red:
		return 'R'
	case Blue:
		return 'B'
	case Green:
		return 'G'
	case Yellow:
		return 'Y'
	case Purple:
		return 'P'
	case Pink:
		return 'K'
	default:
		return '?'
	}
}

// Valid reports whether b is one of the known block types.
func (b BlockType) Valid() bool {
	return b < blockTypeCount
}

// ParseBlockType converts a letter or name into a BlockType.
func ParseBlockType(s string) (BlockType, bool) {
	for t := Red; t < blockTypeCount; t++ {
		if s == t.String() || (len(s) == 1 && rune(s[0]) == t.Char()) {
			return t, true
		}
	}
	return Red, false
}

// AllBlockTypes returns every block type in declaration order.
func AllBlockTypes() []BlockType {
	types := make([]BlockType, 0, MaxKinds)
	for t := Red; t < blockTypeCount; t++ {
		types = append(types, t)
	}
	return types
}

// Coord addresses a cell. Row grows downward, Col grows to the right.
type Coord struct {
	Row int
	Col int
}

// At is a convenience constructor for Coord.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Manhattan returns the Manhattan distance to another coordinate.
func (c Coord) Manhattan(other Coord) int {
	dr := c.Row - other.Row
	dc := c.Col - other.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// Adjacent reports whether other is an orthogonal neighbour of c.
// Diagonal, equal and distant pairs are not adjacent.
func (c Coord) Adjacent(other Coord) bool {
	return c.Manhattan(other) == 1
}

// less orders coordinates row-major.
func (c Coord) less(other Coord) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}
