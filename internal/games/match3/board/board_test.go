package board

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSource replays fixed values, then falls back to a seeded rand.
type scriptedSource struct {
	vals     []int
	next     int
	fallback *rand.Rand
}

func script(vals ...int) *scriptedSource {
	return &scriptedSource{vals: vals, fallback: rand.New(rand.NewSource(1))}
}

func (s *scriptedSource) Intn(n int) int {
	if s.next < len(s.vals) {
		v := s.vals[s.next]
		s.next++
		return v % n
	}
	return s.fallback.Intn(n)
}

func mustGrid(t *testing.T, lines ...string) *Grid {
	t.Helper()
	g, err := ParseGrid(lines...)
	require.NoError(t, err)
	return g
}

func TestParseGrid(t *testing.T) {
	g := mustGrid(t, "R B G", "YPK")
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.Equal(t, Green, g.Get(At(0, 2)))
	assert.Equal(t, Pink, g.Get(At(1, 2)))
	assert.Equal(t, "RBG\nYPK", g.String())

	_, err := ParseGrid("RB", "RBG")
	assert.ErrorContains(t, err, "row 1 has 3 cells")

	_, err = ParseGrid("RX")
	assert.ErrorContains(t, err, "unknown block")

	_, err = ParseGrid()
	assert.Error(t, err)
}

func TestGridCloneIsDeep(t *testing.T) {
	g := mustGrid(t, "RB", "GY")
	c := g.Clone()
	c.Set(At(0, 0), Pink)

	assert.Equal(t, Red, g.Get(At(0, 0)))
	assert.False(t, g.Equal(c))
	assert.False(t, g.Equal(nil))

	cells := g.Cells()
	cells[1][1] = Purple
	assert.Equal(t, Yellow, g.Get(At(1, 1)))
}

func TestParseBlockType(t *testing.T) {
	for _, bt := range AllBlockTypes() {
		byName, ok := ParseBlockType(bt.String())
		require.True(t, ok, bt.String())
		assert.Equal(t, bt, byName)

		byChar, ok := ParseBlockType(string(bt.Char()))
		require.True(t, ok, string(bt.Char()))
		assert.Equal(t, bt, byChar)
	}

	_, ok := ParseBlockType("orange")
	assert.False(t, ok)
	assert.False(t, blockTypeCount.Valid())
}

func TestAdjacent(t *testing.T) {
	tests := []struct {
		name string
		a, b Coord
		want bool
	}{
		{"right neighbour", At(2, 2), At(2, 3), true},
		{"left neighbour", At(2, 2), At(2, 1), true},
		{"upper neighbour", At(2, 2), At(1, 2), true},
		{"lower neighbour", At(2, 2), At(3, 2), true},
		{"same cell", At(2, 2), At(2, 2), false},
		{"diagonal", At(2, 2), At(3, 3), false},
		{"two apart in a row", At(2, 2), At(2, 4), false},
		{"two apart in a column", At(0, 0), At(2, 0), false},
		{"far away", At(0, 0), At(5, 7), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Adjacent(tt.b))
			assert.Equal(t, tt.want, tt.b.Adjacent(tt.a))
		})
	}
}
