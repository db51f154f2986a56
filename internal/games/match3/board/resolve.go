package board

// CascadeStep is one clear, collapse and refill pass of a resolution.
type CascadeStep struct {
	// Index is 1 for the clear triggered by the swap itself.
	Index   int
	Matched []Coord
	Points  int
	// Grid is a copy of the board after the step's refill.
	Grid *Grid
}

// Resolution summarizes a complete cascade.
type Resolution struct {
	Steps       []CascadeStep
	TotalPoints int
	Cascades    int
}

// Resolver clears matches, collapses columns and refills until the board
// holds no run.
type Resolver struct {
	gen           *Generator
	pointsPerCell int
}

// NewResolver creates a resolver that refills from gen and awards
// pointsPerCell for every cleared cell.
func NewResolver(gen *Generator, pointsPerCell int) *Resolver {
	return &Resolver{gen: gen, pointsPerCell: pointsPerCell}
}

// Resolve runs the cascade loop on g starting from the initial match set.
// onStep, if not nil, is called after each step has been fully applied.
// Resolution only stops once a detector pass over g comes back empty.
func (r *Resolver) Resolve(g *Grid, initial MatchSet, onStep func(CascadeStep)) Resolution {
	var res Resolution
	matched := initial

	for !matched.Empty() {
		step := CascadeStep{
			Index:   len(res.Steps) + 1,
			Matched: matched.Coords(),
			Points:  matched.Len() * r.pointsPerCell,
		}

		r.collapse(g, matched)
		step.Grid = g.Clone()

		res.Steps = append(res.Steps, step)
		res.TotalPoints += step.Points
		if onStep != nil {
			onStep(step)
		}

		matched = Detect(g)
	}

	res.Cascades = len(res.Steps)
	return res
}

// collapse removes the matched cells, lets the survivors of every column
// fall, and refills the vacated top cells. Columns are refilled left to
// right, each from the top down.
func (r *Resolver) collapse(g *Grid, matched MatchSet) {
	for c := 0; c < g.cols; c++ {
		write := g.rows - 1
		for row := g.rows - 1; row >= 0; row-- {
			if matched.Has(At(row, c)) {
				continue
			}
			if write != row {
				g.Set(At(write, c), g.Get(At(row, c)))
			}
			write--
		}
		// Rows 0..write are vacated, exactly one per removed cell.
		for row := 0; row <= write; row++ {
			g.Set(At(row, c), r.gen.Random())
		}
	}
}
