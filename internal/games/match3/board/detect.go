package board

import "sort"

// MinRun is the shortest run of equal blocks that counts as a match.
const MinRun = 3

// Orientation tells whether a run lies along a row or a column.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// Run is a maximal line of MinRun or more equal blocks.
type Run struct {
	Start       Coord
	Length      int
	Orientation Orientation
	Type        BlockType
}

// Coords returns the cells covered by the run, from Start onward.
func (r Run) Coords() []Coord {
	coords := make([]Coord, r.Length)
	for i := range coords {
		if r.Orientation == Horizontal {
			coords[i] = At(r.Start.Row, r.Start.Col+i)
		} else {
			coords[i] = At(r.Start.Row+i, r.Start.Col)
		}
	}
	return coords
}

// MatchSet is the deduplicated set of cells found in one detection pass.
type MatchSet map[Coord]struct{}

// NewMatchSet creates a set holding the given coordinates.
func NewMatchSet(coords ...Coord) MatchSet {
	m := make(MatchSet, len(coords))
	for _, c := range coords {
		m.Add(c)
	}
	return m
}

// Add inserts c into the set.
func (m MatchSet) Add(c Coord) {
	m[c] = struct{}{}
}

// Has reports whether c is in the set.
func (m MatchSet) Has(c Coord) bool {
	_, ok := m[c]
	return ok
}

// Len returns the number of matched cells.
func (m MatchSet) Len() int {
	return len(m)
}

// Empty reports whether the pass found no match.
func (m MatchSet) Empty() bool {
	return len(m) == 0
}

// Coords returns the members sorted row-major.
func (m MatchSet) Coords() []Coord {
	coords := make([]Coord, 0, len(m))
	for c := range m {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool {
		return coords[i].less(coords[j])
	})
	return coords
}

// Runs scans every row left to right and every column top to bottom and
// returns each maximal run of at least MinRun equal blocks.
// Horizontal runs come first, each group in scan order.
func Runs(g *Grid) []Run {
	var runs []Run

	for r := 0; r < g.rows; r++ {
		start := 0
		for c := 1; c <= g.cols; c++ {
			if c < g.cols && g.Get(At(r, c)) == g.Get(At(r, start)) {
				continue
			}
			// Run [start, c) ended
			if length := c - start; length >= MinRun {
				runs = append(runs, Run{
					Start:       At(r, start),
					Length:      length,
					Orientation: Horizontal,
					Type:        g.Get(At(r, start)),
				})
			}
			start = c
		}
	}

	for c := 0; c < g.cols; c++ {
		start := 0
		for r := 1; r <= g.rows; r++ {
			if r < g.rows && g.Get(At(r, c)) == g.Get(At(start, c)) {
				continue
			}
			if length := r - start; length >= MinRun {
				runs = append(runs, Run{
					Start:       At(start, c),
					Length:      length,
					Orientation: Vertical,
					Type:        g.Get(At(start, c)),
				})
			}
			start = r
		}
	}

	return runs
}

// Detect returns the union of all runs on the grid.
// An empty set means the grid holds no match.
func Detect(g *Grid) MatchSet {
	matched := make(MatchSet)
	for _, run := range Runs(g) {
		for _, c := range run.Coords() {
			matched.Add(c)
		}
	}
	return matched
}

// HasMatch is a cheaper form of !Detect(g).Empty().
func HasMatch(g *Grid) bool {
	return len(Runs(g)) > 0
}

// FindMove returns a swap that would produce at least one run.
// ok is false when the board has no valid move left.
// Candidates are tried row-major, right neighbour before lower neighbour.
func FindMove(g *Grid) (a, b Coord, ok bool) {
	work := g.Clone()
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			from := At(r, c)
			for _, to := range []Coord{At(r, c+1), At(r+1, c)} {
				if !g.InBounds(to) || g.Get(from) == g.Get(to) {
					continue
				}
				work.Swap(from, to)
				found := runThrough(work, from) || runThrough(work, to)
				work.Swap(from, to)
				if found {
					return from, to, true
				}
			}
		}
	}
	return Coord{}, Coord{}, false
}

// runThrough reports whether the cell at c is part of a run.
func runThrough(g *Grid, c Coord) bool {
	t := g.Get(c)
	count := func(dr, dc int) int {
		n := 0
		for p := At(c.Row+dr, c.Col+dc); g.InBounds(p) && g.Get(p) == t; p = At(p.Row+dr, p.Col+dc) {
			n++
		}
		return n
	}
	return 1+count(0, -1)+count(0, 1) >= MinRun || 1+count(-1, 0)+count(1, 0) >= MinRun
}
