package board

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCollapsesAndRefills(t *testing.T) {
	g := mustGrid(t,
		"YBG",
		"GBY",
		"RGB",
		"RYG",
	)
	src := script(int(Blue), int(Purple))
	r := NewResolver(NewGenerator(src, MaxKinds), 10)

	res := r.Resolve(g, NewMatchSet(At(2, 0), At(3, 0)), nil)

	want := mustGrid(t,
		"BBG",
		"PBY",
		"YGB",
		"GYG",
	)
	if diff := cmp.Diff(want.String(), g.String()); diff != "" {
		t.Errorf("grid mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 20, res.TotalPoints)
	assert.Equal(t, 1, res.Cascades)
	// One fresh block per removed cell.
	assert.Equal(t, 2, src.next)
}

func TestResolveCascades(t *testing.T) {
	// Swapped board: the top row is a run. The first refill brings a
	// vertical run in column 0, the second refill is clean.
	g := mustGrid(t,
		"RRR",
		"BRB",
		"BBR",
	)
	r := NewResolver(NewGenerator(script(1, 0, 1, 0, 1, 0), 2), 10)

	var seen []int
	res := r.Resolve(g, Detect(g), func(step CascadeStep) {
		seen = append(seen, step.Index)
	})

	require.Equal(t, 2, res.Cascades)
	assert.Len(t, res.Steps, 2)
	assert.Equal(t, []int{1, 2}, seen)
	assert.Equal(t, 60, res.TotalPoints)

	assert.Equal(t, []Coord{At(0, 0), At(0, 1), At(0, 2)}, res.Steps[0].Matched)
	assert.Equal(t, []Coord{At(0, 0), At(1, 0), At(2, 0)}, res.Steps[1].Matched)
	assert.Equal(t, "BRB\nBRB\nBBR", res.Steps[0].Grid.String())
	assert.Equal(t, "RRB\nBRB\nRBR", res.Steps[1].Grid.String())

	assert.True(t, Detect(g).Empty())
	assert.True(t, res.Steps[1].Grid.Equal(g))
}

func TestResolveTerminatesOnRandomBoards(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		eng, err := NewGame(Options{Rows: 8, Cols: 8, Kinds: 4, Seed: seed})
		require.NoError(t, err)

		a, b, ok := eng.Hint()
		if !ok {
			continue
		}
		_, err = eng.SelectCell(a)
		require.NoError(t, err)
		out, err := eng.SelectCell(b)
		require.NoError(t, err)

		require.Equal(t, OutcomeCommitted, out.Kind)
		require.GreaterOrEqual(t, out.Cascades, 1)
		assert.False(t, HasMatch(eng.grid), "seed %d left a run", seed)
	}
}
