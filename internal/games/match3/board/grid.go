package board

import (
	"fmt"
	"strings"
)

// Grid is a fixed-size rows x cols board of block types.
// Cells are stored in row-major order: index = row*cols + col.
type Grid struct {
	rows  int
	cols  int
	cells []BlockType
}

// NewGrid creates a grid with every cell set to the first block type.
func NewGrid(rows, cols int) *Grid {
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]BlockType, rows*cols),
	}
}

// ParseGrid builds a grid from rows of type letters (see BlockType.Char).
// Whitespace inside a row is ignored, so "R B R" and "RBR" are equivalent.
func ParseGrid(lines ...string) (*Grid, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("board: parse grid: no rows")
	}

	var g *Grid
	for r, line := range lines {
		line = strings.Join(strings.Fields(line), "")
		if g == nil {
			g = NewGrid(len(lines), len(line))
		}
		if len(line) != g.cols {
			return nil, fmt.Errorf("board: parse grid: row %d has %d cells, want %d", r, len(line), g.cols)
		}
		for c, ch := range line {
			t, ok := ParseBlockType(string(ch))
			if !ok {
				return nil, fmt.Errorf("board: parse grid: unknown block %q at %v", ch, At(r, c))
			}
			g.Set(At(r, c), t)
		}
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

func (g *Grid) index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Get returns the block at c. The caller guarantees c is in bounds.
func (g *Grid) Get(c Coord) BlockType {
	return g.cells[g.index(c)]
}

// Set stores t at c. The caller guarantees c is in bounds.
func (g *Grid) Set(c Coord, t BlockType) {
	g.cells[g.index(c)] = t
}

// Swap exchanges the blocks at a and b.
func (g *Grid) Swap(a, b Coord) {
	ia, ib := g.index(a), g.index(b)
	g.cells[ia], g.cells[ib] = g.cells[ib], g.cells[ia]
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]BlockType, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		rows:  g.rows,
		cols:  g.cols,
		cells: cells,
	}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, t := range g.cells {
		if t != other.cells[i] {
			return false
		}
	}
	return true
}

// Cells returns the grid contents as a fresh [row][col] slice.
func (g *Grid) Cells() [][]BlockType {
	out := make([][]BlockType, g.rows)
	for r := range out {
		out[r] = make([]BlockType, g.cols)
		copy(out[r], g.cells[r*g.cols:(r+1)*g.cols])
	}
	return out
}

// String renders the grid as rows of type letters.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			sb.WriteRune('\n')
		}
		for c := 0; c < g.cols; c++ {
			sb.WriteRune(g.Get(At(r, c)).Char())
		}
	}
	return sb.String()
}
