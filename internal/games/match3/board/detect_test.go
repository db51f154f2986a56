package board

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		grid []string
		want []Coord
	}{
		{
			name: "no runs",
			grid: []string{"RBG", "BGR", "GRB"},
			want: []Coord{},
		},
		{
			name: "pairs are not runs",
			grid: []string{"RRB", "BBR", "RRB"},
			want: []Coord{},
		},
		{
			name: "horizontal run of four",
			grid: []string{"RRRRB", "BGBGY", "GBGBY"},
			want: []Coord{At(0, 0), At(0, 1), At(0, 2), At(0, 3)},
		},
		{
			name: "vertical run reaching the last row",
			grid: []string{"RB", "RB", "RG"},
			want: []Coord{At(0, 0), At(1, 0), At(2, 0)},
		},
		{
			name: "crossing runs share a cell once",
			grid: []string{"BRB", "RRR", "BRB"},
			want: []Coord{At(0, 1), At(1, 0), At(1, 1), At(1, 2), At(2, 1)},
		},
		{
			name: "two runs in one row",
			grid: []string{"RRRBGGG", "BGBRBRB", "GBGGRGR"},
			want: []Coord{At(0, 0), At(0, 1), At(0, 2), At(0, 4), At(0, 5), At(0, 6)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGrid(t, tt.grid...)
			got := Detect(g)

			if diff := cmp.Diff(tt.want, got.Coords()); diff != "" {
				t.Errorf("Detect() mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, len(tt.want) > 0, HasMatch(g))
		})
	}
}

func TestRuns(t *testing.T) {
	g := mustGrid(t, "BRB", "RRR", "BRB")

	want := []Run{
		{Start: At(1, 0), Length: 3, Orientation: Horizontal, Type: Red},
		{Start: At(0, 1), Length: 3, Orientation: Vertical, Type: Red},
	}
	if diff := cmp.Diff(want, Runs(g)); diff != "" {
		t.Errorf("Runs() mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]Coord{At(0, 1), At(1, 1), At(2, 1)}, want[1].Coords()); diff != "" {
		t.Errorf("Run.Coords() mismatch (-want +got):\n%s", diff)
	}
}

func TestMatchSet(t *testing.T) {
	m := NewMatchSet(At(1, 1), At(0, 2), At(1, 1))
	assert.Equal(t, 2, m.Len())
	assert.True(t, m.Has(At(0, 2)))
	assert.False(t, m.Has(At(2, 0)))
	assert.Equal(t, []Coord{At(0, 2), At(1, 1)}, m.Coords())
	assert.True(t, NewMatchSet().Empty())
}

func TestFindMove(t *testing.T) {
	t.Run("finds a scoring swap", func(t *testing.T) {
		g := mustGrid(t, "RRB", "BRR", "BBR")

		a, b, ok := FindMove(g)
		assert.True(t, ok)
		assert.Equal(t, At(0, 0), a)
		assert.Equal(t, At(1, 0), b)

		g.Swap(a, b)
		assert.True(t, HasMatch(g))
	})

	t.Run("leaves the grid untouched", func(t *testing.T) {
		g := mustGrid(t, "RRB", "BRR", "BBR")
		before := g.Clone()
		FindMove(g)
		assert.True(t, before.Equal(g))
	})

	t.Run("no type appears three times", func(t *testing.T) {
		g := mustGrid(t, "RBG", "YPK", "RBG")
		_, _, ok := FindMove(g)
		assert.False(t, ok)
	})
}
