package board

// Source is the randomness the engine draws block types from.
// *math/rand.Rand satisfies it.
type Source interface {
	// Intn returns a value in [0, n). n is always > 0.
	Intn(n int) int
}

const (
	maxRepairPasses = 64
	maxFillAttempts = 8
)

// Generator produces random block types and match-free grids.
type Generator struct {
	src   Source
	kinds int
}

// NewGenerator creates a generator drawing from the first kinds block types.
// kinds is clamped to [MinKinds, MaxKinds].
func NewGenerator(src Source, kinds int) *Generator {
	if kinds < MinKinds {
		kinds = MinKinds
	}
	if kinds > MaxKinds {
		kinds = MaxKinds
	}
	return &Generator{src: src, kinds: kinds}
}

// Kinds returns how many block types the generator draws from.
func (g *Generator) Kinds() int {
	return g.kinds
}

// Random returns a uniformly random block type.
func (g *Generator) Random() BlockType {
	return BlockType(g.src.Intn(g.kinds))
}

// RandomExcept returns a uniformly random block type different from t.
func (g *Generator) RandomExcept(t BlockType) BlockType {
	v := BlockType(g.src.Intn(g.kinds - 1))
	if v >= t {
		v++
	}
	return v
}

// Generate returns a rows x cols grid with no horizontal or vertical run
// of MinRun or more equal blocks.
func (g *Generator) Generate(rows, cols int) *Grid {
	grid := NewGrid(rows, cols)
	for attempt := 0; attempt < maxFillAttempts; attempt++ {
		g.fill(grid)
		g.sweep(grid)
		if g.repair(grid) {
			return grid
		}
	}
	g.construct(grid)
	return grid
}

func (g *Generator) fill(grid *Grid) {
	for i := range grid.cells {
		grid.cells[i] = g.Random()
	}
}

// sweep is the single local correction pass: a cell equal to its two left
// neighbours or to its two upper neighbours is resampled.
func (g *Generator) sweep(grid *Grid) {
	for r := 0; r < grid.rows; r++ {
		for c := 0; c < grid.cols; c++ {
			here := At(r, c)
			if c >= 2 && grid.Get(here) == grid.Get(At(r, c-1)) && grid.Get(here) == grid.Get(At(r, c-2)) {
				grid.Set(here, g.RandomExcept(grid.Get(here)))
			}
			if r >= 2 && grid.Get(here) == grid.Get(At(r-1, c)) && grid.Get(here) == grid.Get(At(r-2, c)) {
				grid.Set(here, g.RandomExcept(grid.Get(here)))
			}
		}
	}
}

// repair breaks every remaining run by resampling one of its cells, until a
// detector pass is clean or the pass budget runs out.
func (g *Generator) repair(grid *Grid) bool {
	for pass := 0; pass < maxRepairPasses; pass++ {
		runs := Runs(grid)
		if len(runs) == 0 {
			return true
		}
		for _, run := range runs {
			c := run.Coords()[g.src.Intn(run.Length)]
			grid.Set(c, g.RandomExcept(grid.Get(c)))
		}
	}
	return !HasMatch(grid)
}

// construct fills the grid so that no run can form. Each cell is drawn from
// the types that would not complete a run with its left or upper pair.
// With only two types that choice can be empty, so a checkerboard is used.
func (g *Generator) construct(grid *Grid) {
	if g.kinds == MinKinds {
		a := g.Random()
		b := g.RandomExcept(a)
		for r := 0; r < grid.rows; r++ {
			for c := 0; c < grid.cols; c++ {
				if (r+c)%2 == 0 {
					grid.Set(At(r, c), a)
				} else {
					grid.Set(At(r, c), b)
				}
			}
		}
		return
	}

	allowed := make([]BlockType, 0, g.kinds)
	for r := 0; r < grid.rows; r++ {
		for c := 0; c < grid.cols; c++ {
			allowed = allowed[:0]
			for t := BlockType(0); int(t) < g.kinds; t++ {
				if c >= 2 && grid.Get(At(r, c-1)) == t && grid.Get(At(r, c-2)) == t {
					continue
				}
				if r >= 2 && grid.Get(At(r-1, c)) == t && grid.Get(At(r-2, c)) == t {
					continue
				}
				allowed = append(allowed, t)
			}
			grid.Set(At(r, c), allowed[g.src.Intn(len(allowed))])
		}
	}
}
